package feed

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/mmcdole/gofeed"
)

// Fetcher retrieves and parses one feed per call. Stateless apart from its
// HTTP client; every error surfaces to the caller so a failed source can be
// skipped without touching the rest of the cycle.
type Fetcher struct {
	httpClient *http.Client
	parser     *gofeed.Parser
	relayURL   string
	userAgent  string
}

func NewFetcher(httpClient *http.Client, relayURL, userAgent string) *Fetcher {
	return &Fetcher{
		httpClient: httpClient,
		parser:     gofeed.NewParser(),
		relayURL:   relayURL,
		userAgent:  userAgent,
	}
}

// Fetch retrieves sourceURL (through the relay when one is configured),
// parses the markup and projects each entry to title/link/description.
func (f *Fetcher) Fetch(ctx context.Context, sourceURL string) ([]Item, error) {
	data, err := f.fetch(ctx, sourceURL)
	if err != nil {
		return nil, err
	}

	parsed, err := f.parser.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	items := make([]Item, 0, len(parsed.Items))
	for _, entry := range parsed.Items {
		items = append(items, Item{
			Title:       entry.Title,
			Link:        entry.Link,
			Description: entry.Description,
		})
	}

	return items, nil
}

func (f *Fetcher) fetch(ctx context.Context, sourceURL string) ([]byte, error) {
	requestURL := sourceURL
	if f.relayURL != "" {
		requestURL = f.relayURL + "?url=" + url.QueryEscape(sourceURL) +
			"&timestamp=" + strconv.FormatInt(time.Now().UnixMilli(), 10)
	}

	req, err := http.NewRequestWithContext(ctx, "GET", requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if f.relayURL != "" {
		return unwrapRelay(body)
	}
	return body, nil
}

// unwrapRelay extracts feed markup from the relay's JSON envelope. The relay
// echoes fetched bytes back as {"contents": "<rss...>", "status": {...}}.
func unwrapRelay(body []byte) ([]byte, error) {
	var envelope struct {
		Contents string `json:"contents"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to decode relay envelope: %w", err)
	}
	if envelope.Contents == "" {
		return nil, fmt.Errorf("relay envelope has no contents")
	}
	return []byte(envelope.Contents), nil
}
