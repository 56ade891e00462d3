// ABOUTME: Network side of the content manager: index fetch and body hydration
// ABOUTME: Per-item body failures are isolated and recorded as sentinel bodies

package content

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/sync/errgroup"

	"newsfeed-api/core/domain"
	coreerrors "newsfeed-api/core/errors"
)

// maxIndexBytes caps the index payload read from the wire
const maxIndexBytes = 8 << 20

// LoadIndex fetches and validates the index resource.
// It returns a *errors.NetworkError or *errors.ValidationError on failure
// and never touches the cache tiers.
func (m *Manager) LoadIndex(ctx context.Context) ([]domain.ContentItem, error) {
	if m.opts.IndexURL == "" {
		return nil, &coreerrors.NetworkError{Err: errors.New("index URL not configured")}
	}

	data, err := m.fetch(ctx, m.opts.IndexURL, maxIndexBytes)
	if err != nil {
		m.logWarn("Index fetch failed", map[string]interface{}{
			"url":   m.opts.IndexURL,
			"error": err.Error(),
		})
		return nil, err
	}

	items, err := ParseIndex(data, m.opts.Limits)
	if err != nil {
		m.logWarn("Index rejected", map[string]interface{}{
			"url":   m.opts.IndexURL,
			"error": err.Error(),
		})
		return nil, err
	}

	m.logDebug("Index loaded", map[string]interface{}{
		"url":   m.opts.IndexURL,
		"items": len(items),
		"bytes": len(data),
	})
	return items, nil
}

// HydrateBodies fetches every item's body and stores the result in both
// cache tiers. The returned list always has the same length as items and
// every element carries a body.
func (m *Manager) HydrateBodies(ctx context.Context, items []domain.ContentItem) []domain.ContentItem {
	started := m.opts.Now()
	hydrated := m.hydrate(ctx, items)
	m.commit(ctx, started, hydrated)
	return domain.CloneItems(hydrated)
}

// hydrate resolves bodies without committing anything
func (m *Manager) hydrate(ctx context.Context, items []domain.ContentItem) []domain.ContentItem {
	out := domain.CloneItems(items)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(m.opts.HydrateConcurrency)

	for i := range out {
		item := &out[i]
		g.Go(func() error {
			m.hydrateOne(gctx, item)
			// per-item failures are already recorded on the item
			return nil
		})
	}
	_ = g.Wait()

	return out
}

func (m *Manager) hydrateOne(ctx context.Context, item *domain.ContentItem) {
	item.AdditionalImages = cleanImages(item.AdditionalImages)

	target, ok := m.opts.ResolveBodyURL(item.Content)
	if !ok {
		m.logDebug("Skipping unsupported body reference", map[string]interface{}{
			"item_id": item.ID,
			"content": item.Content,
		})
		item.SetBody(domain.BodyUnavailable)
		return
	}

	data, err := m.fetch(ctx, target, m.opts.MaxBodyBytes)
	if err != nil {
		partial := &coreerrors.PartialContentError{ItemID: item.ID, URL: target, Err: err}
		m.logWarn("Body fetch failed", map[string]interface{}{
			"item_id": item.ID,
			"title":   item.Title,
			"error":   partial.Error(),
		})
		item.SetBody(domain.BodyLoadFailed)
		return
	}

	body := string(data)
	if strings.TrimSpace(body) == "" {
		body = domain.BodyEmpty
	}
	item.SetBody(body)
}

// fetch performs one GET under the per-request timeout. A response larger
// than limit is rejected whole rather than truncated.
func (m *Manager) fetch(ctx context.Context, target string, limit int64) ([]byte, error) {
	if m.deps.HTTPClient == nil {
		return nil, &coreerrors.NetworkError{URL: target, Err: errors.New("HTTP client not configured")}
	}

	reqCtx, cancel := context.WithTimeout(ctx, m.opts.RequestTimeout)
	defer cancel()

	resp, err := m.deps.HTTPClient.Get(reqCtx, target)
	if err != nil {
		return nil, &coreerrors.NetworkError{URL: target, Err: err}
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return nil, &coreerrors.NetworkError{URL: target, StatusCode: resp.StatusCode()}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body(), limit+1))
	if err != nil {
		return nil, &coreerrors.NetworkError{URL: target, Err: err}
	}
	if int64(len(data)) > limit {
		return nil, &coreerrors.ValidationError{
			Field:   "body",
			Message: fmt.Sprintf("response from %s exceeds %d bytes", target, limit),
			Index:   -1,
		}
	}
	return data, nil
}

func cleanImages(images []string) []string {
	out := make([]string, 0, len(images))
	for _, img := range images {
		if strings.TrimSpace(img) != "" {
			out = append(out, img)
		}
	}
	return out
}
