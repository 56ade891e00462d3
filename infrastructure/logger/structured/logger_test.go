package structured

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsfeed-api/core/interfaces"
)

var (
	_ interfaces.Logger = (*Logger)(nil)
	_ interfaces.Logger = Nop{}
)

func TestLogger_JSONFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(&buf, Options{Level: "debug"})

	logger.Info("Content refreshed", map[string]interface{}{
		"items": 12,
		"tier":  "durable",
	})

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Content refreshed", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, float64(12), entry["items"])
	assert.Equal(t, "durable", entry["tier"])
}

func TestLogger_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(&buf, Options{Format: "text"})

	logger.Warn("Body fetch failed", map[string]interface{}{"item_id": 3})
	out := buf.String()
	assert.Contains(t, out, "level=warning")
	assert.Contains(t, out, `msg="Body fetch failed"`)
	assert.Contains(t, out, "item_id=3")
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriterLogger(&buf, Options{Level: "warn"})

	logger.Debug("hidden", nil)
	logger.Info("hidden", nil)
	assert.Empty(t, buf.String())

	logger.Error("shown", nil)
	assert.Contains(t, buf.String(), "shown")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, logrus.ErrorLevel, ParseLevel(" ERROR "))
	assert.Equal(t, logrus.InfoLevel, ParseLevel("loud"))
	assert.Equal(t, logrus.InfoLevel, ParseLevel(""))
}

func TestLogger_RotatedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "api.log")
	logger := NewLogger(Options{File: path})

	logger.Info("written to file", nil)
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "written to file"))
}

func TestNop(t *testing.T) {
	logger := NewNop()
	logger.Debug("x", nil)
	logger.Info("x", nil)
	logger.Warn("x", nil)
	logger.Error("x", map[string]interface{}{"k": "v"})
}
