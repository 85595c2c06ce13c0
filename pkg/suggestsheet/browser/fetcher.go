package browser

import (
	"context"
	"fmt"
	"time"

	"github.com/ukaji3/suggestsheet-go/pkg/suggestsheet/models"
	"github.com/ukaji3/suggestsheet-go/pkg/suggestsheet/parser"
	"go.uber.org/zap"
)

// FetchOptions describes the search page and the typing rhythm.
type FetchOptions struct {
	// BaseURL is the search page loaded at start and after every fetch.
	BaseURL string
	// InputSelector locates the search box.
	InputSelector string
	// ItemSelector locates one autocomplete suggestion element.
	ItemSelector string
	// TypeDelay is the pause after each typed character.
	TypeDelay time.Duration
	// SettleDelay is the pause after the whole keyword is typed.
	SettleDelay time.Duration
	// ResetDelay is the pause after returning to BaseURL.
	ResetDelay time.Duration
}

// DefaultFetchOptions returns the settings for Google's search page.
func DefaultFetchOptions() FetchOptions {
	return FetchOptions{
		BaseURL:       "https://www.google.com",
		InputSelector: `[name="q"]`,
		ItemSelector:  `li[role="presentation"] div.wM6W7d`,
		TypeDelay:     200 * time.Millisecond,
		SettleDelay:   time.Second,
		ResetDelay:    time.Second,
	}
}

// Sleeper pauses for d or until ctx is done.
type Sleeper func(ctx context.Context, d time.Duration)

// ContextSleep is the Sleeper used outside of tests.
func ContextSleep(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

// Fetcher types keywords into a Page and reads back suggestions.
type Fetcher struct {
	page   Page
	opts   FetchOptions
	sleep  Sleeper
	logger *zap.Logger
}

// NewFetcher returns a Fetcher over page. A nil sleep uses ContextSleep and a
// nil logger discards output.
func NewFetcher(page Page, opts FetchOptions, sleep Sleeper, logger *zap.Logger) *Fetcher {
	if sleep == nil {
		sleep = ContextSleep
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Fetcher{page: page, opts: opts, sleep: sleep, logger: logger}
}

// Fetch returns the longest and shortest suggestion offered for keyword.
// Failures are logged and reported as an empty result. Whatever happens, the
// page is sent back to the base URL before Fetch returns.
func (f *Fetcher) Fetch(ctx context.Context, keyword string) models.Suggestions {
	defer f.reset(ctx)

	texts, err := f.collect(ctx, keyword)
	if err != nil {
		f.logger.Warn("Error getting suggestions",
			zap.String("keyword", keyword),
			zap.Error(err))
		return models.Suggestions{}
	}

	result := parser.Classify(texts)
	f.logger.Debug("Suggestions fetched",
		zap.String("keyword", keyword),
		zap.Int("count", len(texts)),
		zap.String("longest", result.Longest),
		zap.String("shortest", result.Shortest))
	return result
}

func (f *Fetcher) collect(ctx context.Context, keyword string) ([]string, error) {
	if err := f.page.ClearInput(ctx, f.opts.InputSelector); err != nil {
		return nil, fmt.Errorf("search input: %w", err)
	}

	for _, r := range keyword {
		if err := f.page.TypeText(ctx, f.opts.InputSelector, string(r)); err != nil {
			return nil, fmt.Errorf("type keyword: %w", err)
		}
		f.sleep(ctx, f.opts.TypeDelay)
	}
	f.sleep(ctx, f.opts.SettleDelay)

	if err := f.page.WaitVisible(ctx, f.opts.ItemSelector); err != nil {
		return nil, fmt.Errorf("wait for suggestions: %w", err)
	}

	html, err := f.page.DocumentHTML(ctx)
	if err != nil {
		return nil, fmt.Errorf("read page: %w", err)
	}

	items, err := parser.ExtractSuggestionItems(html, f.opts.ItemSelector)
	if err != nil {
		return nil, err
	}
	return parser.FilterSuggestions(items, keyword), nil
}

// reset loads the base page again. The reset runs even when ctx has been
// cancelled so the tab is left in a known state.
func (f *Fetcher) reset(ctx context.Context) {
	navCtx := context.WithoutCancel(ctx)
	if err := f.page.Navigate(navCtx, f.opts.BaseURL); err != nil {
		f.logger.Warn("Error resetting search page",
			zap.String("url", f.opts.BaseURL),
			zap.Error(err))
	}
	f.sleep(ctx, f.opts.ResetDelay)
}
