// Package crawler walks a paginated category listing and accumulates the
// entity names found on every page.
package crawler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"

	"github.com/zizevskikh-dev/wiki-animals-parser/internal/urlutil"
	"github.com/zizevskikh-dev/wiki-animals-parser/pkg/models"
)

// ErrPageLimitReached reports that the crawl hit the configured page
// ceiling while the listing still advertised a next page. The ceiling is an
// abort condition, never a silent truncation of the result.
var ErrPageLimitReached = errors.New("page limit reached before pagination was exhausted")

// Fetcher retrieves and parses a single page.
type Fetcher interface {
	Fetch(ctx context.Context, pageURL string) (*goquery.Document, error)
}

// Extractor pulls entity names and the next-page reference from a parsed page.
type Extractor interface {
	Names(doc *goquery.Document) []string
	NextPage(doc *goquery.Document) (string, bool)
}

// Crawler drives fetch+extract cycles across a pagination chain.
//
// Each Crawl call owns its own accumulator; a Crawler is safe to reuse for
// independent crawls, sequentially.
type Crawler struct {
	baseURL  string
	fetcher  Fetcher
	extract  Extractor
	maxPages int
	logger   zerolog.Logger

	// OnPage, when set, is invoked after every parsed page with the page
	// number and the running name total. Used for terminal progress.
	OnPage func(page, totalNames int)
}

// New creates a Crawler rooted at baseURL. maxPages of zero means unbounded,
// which matches the upstream listing assumption of finite, acyclic pagination.
func New(baseURL string, fetcher Fetcher, extract Extractor, maxPages int, logger zerolog.Logger) *Crawler {
	return &Crawler{
		baseURL:  baseURL,
		fetcher:  fetcher,
		extract:  extract,
		maxPages: maxPages,
		logger:   logger,
	}
}

// Crawl follows the pagination chain starting at startPath and returns every
// raw name discovered, in discovery order, duplicates included.
//
// The traversal is an explicit loop rather than recursion, so crawl depth is
// not bounded by the call stack. Any fetch failure aborts the whole crawl:
// the partial accumulator is discarded and the error propagates unwrapped.
func (c *Crawler) Crawl(ctx context.Context, startPath string) (*models.CrawlResult, error) {
	start := time.Now()

	c.logger.Info().Str("start_path", startPath).Msg("Starting crawl")

	var names []string
	pages := 0

	for next := startPath; ; {
		if c.maxPages > 0 && pages >= c.maxPages {
			c.logger.Error().
				Int("max_pages", c.maxPages).
				Msg("Pagination still continues at page ceiling, aborting")
			return nil, fmt.Errorf("%w (max_pages=%d)", ErrPageLimitReached, c.maxPages)
		}

		pageURL, err := urlutil.Resolve(c.baseURL, next)
		if err != nil {
			return nil, err
		}

		doc, err := c.fetcher.Fetch(ctx, pageURL)
		if err != nil {
			return nil, err
		}

		names = append(names, c.extract.Names(doc)...)
		pages++

		c.logger.Info().Int("names", len(names)).Msg("Entity names collected")
		c.logger.Debug().Int("pages", pages).Msg("Pages parsed")

		if c.OnPage != nil {
			c.OnPage(pages, len(names))
		}

		ref, ok := c.extract.NextPage(doc)
		if !ok {
			c.logger.Info().Msg("Next page not found, finishing crawl")
			break
		}
		next = ref
	}

	c.logger.Info().
		Int("pages", pages).
		Int("names", len(names)).
		Dur("elapsed", time.Since(start)).
		Msg("Crawl completed")

	return &models.CrawlResult{
		Names:       names,
		PagesParsed: pages,
		StartedAt:   start,
		Duration:    time.Since(start).Milliseconds(),
	}, nil
}
