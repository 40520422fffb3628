package urlutil

import (
	"fmt"
	"net/url"
)

// ValidateURL performs basic sanity checks on an absolute URL string
func ValidateURL(urlStr string) error {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("invalid URL scheme: must be http or https, got %s", parsed.Scheme)
	}

	if parsed.Host == "" {
		return fmt.Errorf("invalid URL: missing host")
	}

	return nil
}

// Resolve joins a relative locator against a base URL. Percent-escapes in
// the locator are decoded before joining, so category paths copied out of a
// browser address bar ("/wiki/%D0%9A...") and already-decoded ones resolve
// to the same page. The result keeps the path in decoded, human-readable
// form; the HTTP client re-encodes it on the wire.
func Resolve(base, ref string) (string, error) {
	decoded, err := url.PathUnescape(ref)
	if err != nil {
		// Not valid percent-encoding, use the locator as-is
		decoded = ref
	}

	u, err := url.Parse(decoded)
	if err != nil {
		return "", fmt.Errorf("invalid relative URL %q: %w", ref, err)
	}
	if !u.IsAbs() {
		baseURL, err := url.Parse(base)
		if err != nil {
			return "", fmt.Errorf("invalid base URL %q: %w", base, err)
		}
		u = baseURL.ResolveReference(u)
	}
	return display(u), nil
}

// display renders a URL without re-encoding the path. url.URL.String would
// percent-encode non-ASCII path segments again, undoing the decode above.
func display(u *url.URL) string {
	s := u.Scheme + "://" + u.Host + u.Path
	if u.RawQuery != "" {
		s += "?" + u.RawQuery
	}
	if u.Fragment != "" {
		s += "#" + u.Fragment
	}
	return s
}
