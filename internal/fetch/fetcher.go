// Package fetch retrieves one category page at a time and parses it into a
// queryable document. There is deliberately no retry and no local recovery:
// any failure aborts the crawl that issued the fetch.
package fetch

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"
)

// Options configures the HTTP behavior of a Fetcher.
type Options struct {
	Timeout   time.Duration
	UserAgent string
	Proxy     string
}

// Fetcher retrieves pages over HTTP and parses them with goquery.
type Fetcher struct {
	client    *http.Client
	userAgent string
	logger    zerolog.Logger
}

// New creates a Fetcher with a keep-alive HTTP client.
func New(opts Options, logger zerolog.Logger) *Fetcher {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}

	if opts.Proxy != "" {
		if proxyURL, err := url.Parse(opts.Proxy); err == nil {
			transport.Proxy = http.ProxyURL(proxyURL)
		} else {
			logger.Warn().Str("proxy", opts.Proxy).Err(err).Msg("Invalid proxy URL, ignoring")
		}
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   opts.Timeout,
	}

	return &Fetcher{
		client:    client,
		userAgent: opts.UserAgent,
		logger:    logger,
	}
}

// Fetch retrieves the page at the given absolute URL and parses its markup.
// Any transport failure or non-2xx status is returned as a *FetchError.
func (f *Fetcher) Fetch(ctx context.Context, pageURL string) (*goquery.Document, error) {
	start := time.Now()

	f.logger.Debug().Str("url", pageURL).Msg("Fetching URL")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, &FetchError{URL: pageURL, Err: err}
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: pageURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{URL: pageURL, StatusCode: resp.StatusCode, Err: ErrBadStatus}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, &FetchError{URL: pageURL, StatusCode: resp.StatusCode, Err: ErrParseError}
	}

	f.logger.Debug().
		Str("url", pageURL).
		Int("status", resp.StatusCode).
		Int64("response_time_ms", time.Since(start).Milliseconds()).
		Msg("Fetch completed")

	return doc, nil
}

// CloseIdleConnections releases pooled connections. Safe to call after the
// crawl is done.
func (f *Fetcher) CloseIdleConnections() {
	f.client.CloseIdleConnections()
}
