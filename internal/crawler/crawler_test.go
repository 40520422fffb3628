package crawler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/zizevskikh-dev/wiki-animals-parser/internal/extract"
	"github.com/zizevskikh-dev/wiki-animals-parser/internal/fetch"
)

const nextLabel = "Следующая страница"

// categoryPage renders a minimal category listing with the given names and
// an optional next-page link.
func categoryPage(names []string, next string) string {
	page := `<html><body><div class="mw-category mw-category-columns"><ul>`
	for _, name := range names {
		page += fmt.Sprintf(`<li><a href="/wiki/%s" title="%s">%s</a></li>`, name, name, name)
	}
	page += `<li>no link in this item</li></ul></div>`
	if next != "" {
		page += fmt.Sprintf(`<a href="%s">%s</a>`, next, nextLabel)
	}
	page += `</body></html>`
	return page
}

func newTestCrawler(baseURL string, maxPages int) *Crawler {
	fetcher := fetch.New(fetch.Options{
		Timeout:   5 * time.Second,
		UserAgent: "wiki-animals-parser test",
	}, zerolog.Nop())
	extractor := extract.New(extract.ExactLabel(nextLabel), zerolog.Nop())
	return New(baseURL, fetcher, extractor, maxPages, zerolog.Nop())
}

func TestCrawler_Crawl_FollowsPagination(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/wiki/start", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(categoryPage([]string{"Аист", "Барсук"}, "/wiki/page2")))
	})
	mux.HandleFunc("/wiki/page2", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(categoryPage([]string{"Выдра"}, "/wiki/page3")))
	})
	mux.HandleFunc("/wiki/page3", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(categoryPage([]string{"Гепард", "Дрозд"}, "")))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	c := newTestCrawler(server.URL, 0)

	result, err := c.Crawl(context.Background(), "/wiki/start")
	if err != nil {
		t.Fatalf("Crawl failed: %v", err)
	}

	if result.PagesParsed != 3 {
		t.Errorf("expected 3 pages parsed, got %d", result.PagesParsed)
	}
	want := []string{"Аист", "Барсук", "Выдра", "Гепард", "Дрозд"}
	if len(result.Names) != len(want) {
		t.Fatalf("expected %d names, got %d: %v", len(want), len(result.Names), result.Names)
	}
	for i := range want {
		if result.Names[i] != want[i] {
			t.Errorf("name %d = %q, want %q (discovery order must hold)", i, result.Names[i], want[i])
		}
	}
}

func TestCrawler_Crawl_SinglePage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(categoryPage([]string{"Ёж"}, "")))
	}))
	defer server.Close()

	c := newTestCrawler(server.URL, 0)

	result, err := c.Crawl(context.Background(), "/")
	if err != nil {
		t.Fatalf("Crawl failed: %v", err)
	}
	if result.PagesParsed != 1 {
		t.Errorf("expected 1 page parsed, got %d", result.PagesParsed)
	}
	if len(result.Names) != 1 || result.Names[0] != "Ёж" {
		t.Errorf("unexpected names: %v", result.Names)
	}
}

func TestCrawler_Crawl_PreservesDuplicates(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/p1", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(categoryPage([]string{"Волк", "Волк"}, "/p2")))
	})
	mux.HandleFunc("/p2", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(categoryPage([]string{"Волк"}, "")))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	c := newTestCrawler(server.URL, 0)

	result, err := c.Crawl(context.Background(), "/p1")
	if err != nil {
		t.Fatalf("Crawl failed: %v", err)
	}
	if len(result.Names) != 3 {
		t.Errorf("expected duplicates preserved (3 names), got %v", result.Names)
	}
}

func TestCrawler_Crawl_FetchFailureAborts(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/p1", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(categoryPage([]string{"Аист"}, "/p2")))
	})
	mux.HandleFunc("/p2", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	c := newTestCrawler(server.URL, 0)

	result, err := c.Crawl(context.Background(), "/p1")
	if err == nil {
		t.Fatal("expected error from failed second page, got nil")
	}
	if result != nil {
		t.Errorf("expected no partial result, got %+v", result)
	}

	var fe *fetch.FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("expected *fetch.FetchError, got %T", err)
	}
	if fe.StatusCode != http.StatusInternalServerError {
		t.Errorf("expected status 500 in error, got %d", fe.StatusCode)
	}
}

func TestCrawler_Crawl_DecodesPercentEncodedPaths(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(categoryPage([]string{"Аист"}, "")))
	}))
	defer server.Close()

	c := newTestCrawler(server.URL, 0)

	if _, err := c.Crawl(context.Background(), "/wiki/%D0%90%D0%B8%D1%81%D1%82"); err != nil {
		t.Fatalf("Crawl failed: %v", err)
	}
	if gotPath != "/wiki/Аист" {
		t.Errorf("expected decoded request path, got %q", gotPath)
	}
}

func TestCrawler_Crawl_PageLimit(t *testing.T) {
	// Two pages linked in a cycle: without a ceiling this would never stop.
	mux := http.NewServeMux()
	mux.HandleFunc("/a", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(categoryPage([]string{"Аист"}, "/b")))
	})
	mux.HandleFunc("/b", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(categoryPage([]string{"Барсук"}, "/a")))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	c := newTestCrawler(server.URL, 5)

	_, err := c.Crawl(context.Background(), "/a")
	if !errors.Is(err, ErrPageLimitReached) {
		t.Fatalf("expected ErrPageLimitReached, got %v", err)
	}
}

func TestCrawler_Crawl_OnPageHook(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/p1", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(categoryPage([]string{"Аист", "Барсук"}, "/p2")))
	})
	mux.HandleFunc("/p2", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(categoryPage([]string{"Выдра"}, "")))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	c := newTestCrawler(server.URL, 0)

	var pages, lastTotal int
	c.OnPage = func(page, totalNames int) {
		pages = page
		lastTotal = totalNames
	}

	if _, err := c.Crawl(context.Background(), "/p1"); err != nil {
		t.Fatalf("Crawl failed: %v", err)
	}
	if pages != 2 {
		t.Errorf("expected OnPage called through page 2, got %d", pages)
	}
	if lastTotal != 3 {
		t.Errorf("expected running total 3 on final page, got %d", lastTotal)
	}
}
