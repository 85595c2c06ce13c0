package parser

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/ukaji3/suggestsheet-go/pkg/suggestsheet/models"
)

// serializerEscapes undoes the entities x/net/html emits for quotes and
// carriage returns. A browser's innerHTML leaves those characters as-is.
var serializerEscapes = strings.NewReplacer(
	"&#39;", "'",
	"&#34;", `"`,
	"&#13;", "\r",
)

// ExtractSuggestionItems parses a page snapshot and returns the inner HTML of
// every element matching selector, in document order.
func ExtractSuggestionItems(html, selector string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}

	var items []string
	doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
		inner, err := sel.Html()
		if err != nil {
			return
		}
		items = append(items, serializerEscapes.Replace(inner))
	})
	return items, nil
}

// FilterSuggestions sanitizes raw suggestion markup and drops empty entries
// and entries equal to keyword (case-insensitive).
func FilterSuggestions(raw []string, keyword string) []string {
	texts := make([]string, 0, len(raw))
	for _, item := range raw {
		text := Sanitize(item)
		if text == "" || strings.EqualFold(text, keyword) {
			continue
		}
		texts = append(texts, text)
	}
	return texts
}

// Classify picks the longest and shortest texts by character count.
// The first text wins a tie. An empty input yields empty strings.
func Classify(texts []string) models.Suggestions {
	if len(texts) == 0 {
		return models.Suggestions{}
	}

	longest, shortest := texts[0], texts[0]
	maxLen := utf8.RuneCountInString(longest)
	minLen := maxLen
	for _, text := range texts[1:] {
		n := utf8.RuneCountInString(text)
		if n > maxLen {
			longest, maxLen = text, n
		}
		if n < minLen {
			shortest, minLen = text, n
		}
	}

	return models.Suggestions{Longest: longest, Shortest: shortest}
}
