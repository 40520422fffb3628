package config

import "time"

// Default constants for application configuration
const (
	DefaultLogLevel    = "info"
	DefaultJSONLog     = false
	DefaultUserAgent   = "WikiAnimalsParser/1.0 (https://github.com/zizevskikh-dev/wiki-animals-parser)"
	DefaultHTTPTimeout = 30 * time.Second
	DefaultEnvFile     = ".env"

	// DefaultMaxPages of zero keeps the crawl unbounded; the ceiling is an
	// opt-in guard against cyclic pagination.
	DefaultMaxPages = 0

	// DefaultNextPageLabel is the Russian Wikipedia pagination wording.
	DefaultNextPageLabel = "Следующая страница"
)
