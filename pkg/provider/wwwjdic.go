package provider

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/japaniel/sentencer/pkg/record"
)

// DefaultWWWJDICURL is the WWWJDIC "backdoor" entry point for the Tanaka corpus
// example search. The lookup word is appended followed by "=1".
const DefaultWWWJDICURL = "https://www.edrdg.org/cgi-bin/wwwjdic/wwwjdic?1ZEU"

// Responses are small plain pages; anything bigger is not a WWWJDIC result.
const maxBodySize = 2 * 1024 * 1024

var reSentenceID = regexp.MustCompile(`#ID=.*$`)

// WWWJDIC scrapes example sentences from the WWWJDIC example search.
// The result format is hard-coded and will break if the service changes it.
type WWWJDIC struct {
	baseURL    string
	httpClient *http.Client
	log        *slog.Logger
}

// NewWWWJDIC creates a provider for baseURL; an empty baseURL selects DefaultWWWJDICURL.
func NewWWWJDIC(baseURL string, timeout time.Duration, logger *slog.Logger) *WWWJDIC {
	if baseURL == "" {
		baseURL = DefaultWWWJDICURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &WWWJDIC{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger.With("adapter", "wwwjdic"),
	}
}

// Sentences fetches and parses the example list for word.
func (p *WWWJDIC) Sentences(ctx context.Context, word string) ([]record.Pair, error) {
	reqURL := p.baseURL + url.QueryEscape(word) + "=1"
	p.log.DebugContext(ctx, "wwwjdic request", slog.String("word", word), slog.String("url", reqURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("wwwjdic: create request: %w", err)
	}
	req.Header.Set("User-Agent", "sentencer-cli")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9,ja;q=0.8")

	start := time.Now()
	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: wwwjdic %q: %v", ErrUnavailable, word, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: wwwjdic %q: status %d", ErrUnavailable, word, resp.StatusCode)
	}

	pairs, err := ParseWWWJDIC(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("%w: wwwjdic %q: %v", ErrUnavailable, word, err)
	}

	p.log.DebugContext(ctx, "wwwjdic response",
		slog.String("word", word),
		slog.Int("sentences", len(pairs)),
		slog.Duration("elapsed", time.Since(start)),
	)
	return pairs, nil
}

// ParseWWWJDIC extracts the sentence pairs from a WWWJDIC example page. Results sit
// in the first <pre> block as lines of the form
//
//	A: 猫がいる。	There is a cat.#ID=1234_5678
//
// Lines that do not start with "A" are the B-line indices and are skipped, as are
// lines without a translation column.
func ParseWWWJDIC(r io.Reader) ([]record.Pair, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	var pairs []record.Pair
	block := doc.Find("pre").First().Text()
	for _, line := range strings.Split(block, "\n") {
		if !strings.HasPrefix(line, "A") {
			continue
		}
		line = strings.TrimPrefix(line, "A:")
		line = reSentenceID.ReplaceAllString(line, "")
		parts := strings.Split(strings.TrimSpace(line), "\t")
		if len(parts) < 2 {
			continue
		}
		pairs = append(pairs, record.Pair{
			Example:     strings.TrimSpace(parts[0]),
			Translation: strings.TrimSpace(parts[1]),
		})
	}
	return pairs, nil
}
