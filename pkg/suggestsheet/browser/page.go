// Package browser drives a search page to read autocomplete suggestions.
package browser

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
)

// Page is the slice of browser behaviour the fetcher relies on.
type Page interface {
	// Navigate loads url and waits for the document body.
	Navigate(ctx context.Context, url string) error
	// ClearInput waits for the element matching selector and empties it.
	ClearInput(ctx context.Context, selector string) error
	// TypeText sends text as key events to the element matching selector.
	TypeText(ctx context.Context, selector, text string) error
	// WaitVisible blocks until an element matching selector is visible.
	WaitVisible(ctx context.Context, selector string) error
	// DocumentHTML returns the outer HTML of the current document.
	DocumentHTML(ctx context.Context) (string, error)
	// Close releases the browser.
	Close() error
}

// BrowserConfig holds Chrome launch settings.
type BrowserConfig struct {
	// Headless runs Chrome without a window.
	Headless bool
	// ExecPath overrides the Chrome binary. Empty means auto-detect.
	ExecPath string
	// UserAgent overrides the browser user agent when set.
	UserAgent string
	// WaitTimeout bounds every page action.
	WaitTimeout time.Duration
}

// DefaultBrowserConfig returns the launch settings used when none are given.
func DefaultBrowserConfig() BrowserConfig {
	return BrowserConfig{
		Headless: true,
		UserAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
			"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		WaitTimeout: 10 * time.Second,
	}
}

// chromePage is a Page backed by a chromedp browser tab.
type chromePage struct {
	ctx     context.Context
	cancel  context.CancelFunc
	timeout time.Duration
}

// NewChromePage launches Chrome and opens a tab. The browser lives until
// Close is called or parent is cancelled.
func NewChromePage(parent context.Context, cfg BrowserConfig) (Page, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", cfg.Headless),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-notifications", true),
	)
	if cfg.UserAgent != "" {
		opts = append(opts, chromedp.UserAgent(cfg.UserAgent))
	}
	if cfg.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(cfg.ExecPath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(parent, opts...)
	ctx, cancel := chromedp.NewContext(allocCtx)

	// Start the browser now so launch failures surface here.
	if err := chromedp.Run(ctx); err != nil {
		cancel()
		allocCancel()
		return nil, fmt.Errorf("start browser: %w", err)
	}

	timeout := cfg.WaitTimeout
	if timeout <= 0 {
		timeout = DefaultBrowserConfig().WaitTimeout
	}

	return &chromePage{
		ctx: ctx,
		cancel: func() {
			cancel()
			allocCancel()
		},
		timeout: timeout,
	}, nil
}

// run executes actions on the tab, bounded by the page timeout and by ctx.
func (p *chromePage) run(ctx context.Context, actions ...chromedp.Action) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	runCtx, cancel := context.WithTimeout(p.ctx, p.timeout)
	defer cancel()
	stop := context.AfterFunc(ctx, cancel)
	defer stop()

	err := chromedp.Run(runCtx, actions...)
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("timed out after %s: %w", p.timeout, err)
	}
	return err
}

func (p *chromePage) Navigate(ctx context.Context, url string) error {
	return p.run(ctx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
	)
}

func (p *chromePage) ClearInput(ctx context.Context, selector string) error {
	return p.run(ctx,
		chromedp.WaitReady(selector, chromedp.ByQuery),
		chromedp.SetValue(selector, "", chromedp.ByQuery),
	)
}

func (p *chromePage) TypeText(ctx context.Context, selector, text string) error {
	return p.run(ctx, chromedp.SendKeys(selector, text, chromedp.ByQuery))
}

func (p *chromePage) WaitVisible(ctx context.Context, selector string) error {
	return p.run(ctx, chromedp.WaitVisible(selector, chromedp.ByQuery))
}

func (p *chromePage) DocumentHTML(ctx context.Context) (string, error) {
	var html string
	if err := p.run(ctx, chromedp.OuterHTML("html", &html, chromedp.ByQuery)); err != nil {
		return "", err
	}
	return html, nil
}

func (p *chromePage) Close() error {
	err := chromedp.Cancel(p.ctx)
	p.cancel()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
