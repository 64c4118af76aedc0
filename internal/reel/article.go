package reel

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// userAgent is sent when fetching articles; some news sites reject Go's default.
const userAgent = "Mozilla/5.0 (compatible; dagenreels/1.0)"

// FetchError reports that the article itself could not be retrieved or parsed.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch article %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// FetchArticle downloads url and returns the text of its <p> elements,
// one trimmed paragraph per line. Empty paragraphs are dropped.
func FetchArticle(ctx context.Context, hc *http.Client, url string) (string, error) {
	if hc == nil {
		hc = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := hc.Do(req)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &FetchError{URL: url, Err: fmt.Errorf("status %d", resp.StatusCode)}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", &FetchError{URL: url, Err: fmt.Errorf("parse html: %w", err)}
	}
	return ExtractParagraphs(doc), nil
}

// ExtractParagraphs joins the trimmed text of every <p> in doc with newlines.
func ExtractParagraphs(doc *goquery.Document) string {
	var paras []string
	doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		if text := strings.TrimSpace(s.Text()); text != "" {
			paras = append(paras, text)
		}
	})
	return strings.Join(paras, "\n")
}
