package models

import "time"

// CrawlResult holds everything a finished crawl produced.
//
// Names are raw extracted entity names in discovery order; duplicates are
// preserved here and only removed during aggregation.
type CrawlResult struct {
	Names       []string  `json:"names"`
	PagesParsed int       `json:"pages_parsed"`
	StartedAt   time.Time `json:"started_at"`
	Duration    int64     `json:"duration_ms"`
}

// AggregationRow is one output record of the first-letter aggregation:
// a single uppercase character and the number of distinct normalized
// names starting with it.
type AggregationRow struct {
	Letter string `json:"letter"`
	Count  int    `json:"count"`
}
