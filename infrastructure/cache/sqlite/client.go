// ABOUTME: SQLite-backed durable cache tier for persistent caching
// ABOUTME: Stores serialized content entries in a file that survives application restarts

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"newsfeed-api/core/interfaces"
)

// ErrNotFound is returned for a missing or expired key
var ErrNotFound = errors.New("key not found or expired")

const (
	maxKeyLength           = 255
	defaultCleanupInterval = 5 * time.Minute
)

// Client implements the Cache interface using SQLite
type Client struct {
	db       *sql.DB
	filePath string
	logger   interfaces.Logger
	now      func() time.Time

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// NewSQLiteCache creates a new SQLite cache client
func NewSQLiteCache(filePath string) (*Client, error) {
	return NewSQLiteCacheWithLogger(filePath, nil)
}

// NewSQLiteCacheWithLogger creates a new SQLite cache client that reports
// background cleanup failures to logger
func NewSQLiteCacheWithLogger(filePath string, logger interfaces.Logger) (*Client, error) {
	if filePath == "" {
		filePath = "newsfeed-cache.db"
	}

	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	// one writer keeps sqlite from returning SQLITE_BUSY under concurrent commits
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	client := &Client{
		db:       db,
		filePath: filePath,
		logger:   logger,
		now:      time.Now,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}

	if err := client.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	go client.cleanupRoutine(defaultCleanupInterval)

	return client, nil
}

// initSchema creates the entries table if it doesn't exist.
// An expiry of 0 means the entry never expires.
func (c *Client) initSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS cache_entries (
			key TEXT PRIMARY KEY,
			value BLOB NOT NULL,
			stored_at INTEGER NOT NULL,
			expiry INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_cache_entries_expiry ON cache_entries(expiry);
	`

	_, err := c.db.Exec(query)
	return err
}

func validateKey(key string) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}
	if len(key) > maxKeyLength {
		return fmt.Errorf("key too long: %d bytes (max %d)", len(key), maxKeyLength)
	}
	return nil
}

// Get retrieves a value from the cache
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, err
	}

	var value []byte
	query := "SELECT value FROM cache_entries WHERE key = ? AND (expiry = 0 OR expiry > ?)"
	err := c.db.QueryRowContext(ctx, query, key, c.now().UnixMilli()).Scan(&value)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get value: %w", err)
	}

	return value, nil
}

// Set stores a value in the cache. A zero ttl never expires.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := validateKey(key); err != nil {
		return err
	}
	if len(value) == 0 {
		return errors.New("value cannot be empty")
	}

	now := c.now()
	var expiry int64
	if ttl > 0 {
		expiry = now.Add(ttl).UnixMilli()
	}

	query := `
		INSERT OR REPLACE INTO cache_entries (key, value, stored_at, expiry)
		VALUES (?, ?, ?, ?)
	`

	if _, err := c.db.ExecContext(ctx, query, key, value, now.UnixMilli(), expiry); err != nil {
		return fmt.Errorf("failed to set value: %w", err)
	}

	return nil
}

// Delete removes a value from the cache
func (c *Client) Delete(ctx context.Context, key string) error {
	if err := validateKey(key); err != nil {
		return err
	}

	if _, err := c.db.ExecContext(ctx, "DELETE FROM cache_entries WHERE key = ?", key); err != nil {
		return fmt.Errorf("failed to delete value: %w", err)
	}

	return nil
}

// Clear removes all values from the cache
func (c *Client) Clear(ctx context.Context) error {
	if _, err := c.db.ExecContext(ctx, "DELETE FROM cache_entries"); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}
	return nil
}

func (c *Client) cleanupRoutine(interval time.Duration) {
	defer close(c.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if _, err := c.cleanup(context.Background()); err != nil && c.logger != nil {
				c.logger.Warn("SQLite cache cleanup failed", map[string]interface{}{
					"file":  c.filePath,
					"error": err.Error(),
				})
			}
		case <-c.stop:
			return
		}
	}
}

// cleanup removes expired entries and returns how many were dropped
func (c *Client) cleanup(ctx context.Context) (int64, error) {
	res, err := c.db.ExecContext(ctx, "DELETE FROM cache_entries WHERE expiry != 0 AND expiry <= ?", c.now().UnixMilli())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Close stops the cleanup routine and closes the database connection
func (c *Client) Close() error {
	c.stopOnce.Do(func() {
		close(c.stop)
		<-c.done
	})
	return c.db.Close()
}

// Stats returns cache statistics
func (c *Client) Stats(ctx context.Context) (map[string]interface{}, error) {
	stats := make(map[string]interface{})

	var count int
	if err := c.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM cache_entries").Scan(&count); err != nil {
		return nil, err
	}
	stats["total_entries"] = count

	var expired int
	err := c.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM cache_entries WHERE expiry != 0 AND expiry <= ?", c.now().UnixMilli(),
	).Scan(&expired)
	if err != nil {
		return nil, err
	}
	stats["expired_entries"] = expired

	var pageCount, pageSize int
	if err := c.db.QueryRowContext(ctx, "PRAGMA page_count").Scan(&pageCount); err == nil {
		if err := c.db.QueryRowContext(ctx, "PRAGMA page_size").Scan(&pageSize); err == nil {
			stats["db_size_bytes"] = pageCount * pageSize
		}
	}

	stats["file_path"] = c.filePath

	return stats, nil
}
