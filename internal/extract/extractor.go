// Package extract pulls entity names and the next-page link out of a parsed
// category page.
package extract

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"
)

// categorySelector targets list items inside the category column container.
// Both marker classes are required; MediaWiki renders short listings without
// the columns class and those pages carry no entries we want.
const categorySelector = "div.mw-category.mw-category-columns li"

// NextPageMatcher decides whether an anchor's visible text is the
// "next page" navigation link.
type NextPageMatcher func(text string) bool

// ExactLabel returns a matcher that requires an exact, case-sensitive match
// with the given label. MediaWiki localizes navigation wording, so the label
// is configuration, not a constant here.
func ExactLabel(label string) NextPageMatcher {
	return func(text string) bool {
		return text == label
	}
}

// Extractor extracts entity names and pagination links from category pages.
type Extractor struct {
	matchNext NextPageMatcher
	logger    zerolog.Logger
}

// New creates an Extractor using the given next-page matcher.
func New(matchNext NextPageMatcher, logger zerolog.Logger) *Extractor {
	return &Extractor{
		matchNext: matchNext,
		logger:    logger,
	}
}

// Names returns the raw entity names on the page, in document order.
// A list item contributes a name only if it holds an anchor with a non-empty
// title attribute; items without one are skipped silently. Malformed or
// unexpected markup yields an empty slice, never an error.
func (e *Extractor) Names(doc *goquery.Document) []string {
	var names []string

	doc.Find(categorySelector).Each(func(i int, li *goquery.Selection) {
		anchor := li.Find("a[title]").First()
		if anchor.Length() == 0 {
			return
		}
		title, _ := anchor.Attr("title")
		if title == "" {
			return
		}
		e.logger.Debug().Str("name", title).Msg("Found entity name")
		names = append(names, title)
	})

	return names
}

// NextPage searches the whole document for an anchor whose visible text
// matches the configured next-page label and which carries an href.
// The second return value is false on the final page.
func (e *Extractor) NextPage(doc *goquery.Document) (string, bool) {
	var (
		next  string
		found bool
	)

	doc.Find("a[href]").EachWithBreak(func(i int, a *goquery.Selection) bool {
		if len(a.Nodes) == 0 {
			return true
		}
		if !e.matchNext(collapsedText(a.Nodes[0])) {
			return true
		}
		href, ok := a.Attr("href")
		if !ok || href == "" {
			return true
		}
		next = href
		found = true
		return false
	})

	return next, found
}
