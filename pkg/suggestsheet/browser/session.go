package browser

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Session is one exclusively owned browser tab plus the fetcher that uses it.
type Session struct {
	*Fetcher
	page Page
}

// OpenSession launches Chrome and loads the base search page once.
func OpenSession(ctx context.Context, cfg BrowserConfig, opts FetchOptions, logger *zap.Logger) (*Session, error) {
	page, err := NewChromePage(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return NewSession(ctx, page, opts, nil, logger)
}

// NewSession wraps an already open page. The page is closed if the base
// search page cannot be loaded.
func NewSession(ctx context.Context, page Page, opts FetchOptions, sleep Sleeper, logger *zap.Logger) (*Session, error) {
	if err := page.Navigate(ctx, opts.BaseURL); err != nil {
		_ = page.Close()
		return nil, fmt.Errorf("open %s: %w", opts.BaseURL, err)
	}
	return &Session{
		Fetcher: NewFetcher(page, opts, sleep, logger),
		page:    page,
	}, nil
}

// Close shuts the browser down.
func (s *Session) Close() error {
	return s.page.Close()
}
