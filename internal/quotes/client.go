// Package quotes fetches general wisdom quotes from an external API and
// degrades to a local fallback list when the API is unavailable.
package quotes

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"strings"
	"time"

	"log/slog"

	"github.com/Soskid107/Hikma-bot-sub000/core/logger"
	"github.com/Soskid107/Hikma-bot-sub000/core/telegram/netutil"
)

// Quote is one piece of wisdom with attribution.
type Quote struct {
	Content string `json:"content"`
	Author  string `json:"author"`
}

// Options configure the client; zero values get sane defaults.
type Options struct {
	BaseURL string
	Timeout time.Duration
	Client  *http.Client
}

// Client calls a quotable-style API (GET {base}/quotes/random?tags=…).
type Client struct {
	baseURL string
	http    *http.Client
}

const defaultTimeout = 5 * time.Second

// NewClient builds a client with one transparent retry on transient errors.
func NewClient(opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	httpClient := opts.Client
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/"),
		http:    httpClient,
	}
}

// Random returns a quote for the given tags. It never fails: on any API
// problem a quote from the local fallback list is returned instead.
func (c *Client) Random(ctx context.Context, tags ...string) Quote {
	q, err := c.fetch(ctx, tags)
	if err != nil {
		logger.Warn(ctx, "service.quotes", "quote.fallback",
			slog.String("err", err.Error()),
		)
		return fallbackQuotes[rand.Intn(len(fallbackQuotes))]
	}
	return q
}

func (c *Client) fetch(ctx context.Context, tags []string) (Quote, error) {
	if c.baseURL == "" {
		return Quote{}, fmt.Errorf("quote api not configured")
	}

	endpoint := c.baseURL + "/quotes/random"
	if len(tags) > 0 {
		endpoint += "?tags=" + url.QueryEscape(strings.Join(tags, ","))
	}

	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		q, err := c.doRequest(ctx, endpoint)
		if err == nil {
			return q, nil
		}
		lastErr = err
		if !netutil.ShouldRetry(err) {
			break
		}
	}
	return Quote{}, lastErr
}

func (c *Client) doRequest(ctx context.Context, endpoint string) (Quote, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Quote{}, fmt.Errorf("build quote request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return Quote{}, fmt.Errorf("quote request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return Quote{}, fmt.Errorf("quote api status: %s", resp.Status)
	}

	// The API returns either a single object or a one-element array.
	body, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return Quote{}, fmt.Errorf("read quote response: %w", err)
	}

	var single Quote
	if err := json.Unmarshal(body, &single); err == nil && single.Content != "" {
		return single, nil
	}
	var list []Quote
	if err := json.Unmarshal(body, &list); err == nil && len(list) > 0 && list[0].Content != "" {
		return list[0], nil
	}
	return Quote{}, fmt.Errorf("quote api returned no usable quote")
}

// fallbackQuotes keep /wisdom working when the API is down.
var fallbackQuotes = []Quote{
	{Content: "The journey of a thousand miles begins with a single step.", Author: "Lao Tzu"},
	{Content: "He who has health has hope; and he who has hope has everything.", Author: "Arabian proverb"},
	{Content: "Patience is the companion of wisdom.", Author: "Augustine"},
	{Content: "The natural healing force within each of us is the greatest force in getting well.", Author: "Hippocrates"},
	{Content: "Knowing yourself is the beginning of all wisdom.", Author: "Aristotle"},
	{Content: "Sleep is the best meditation.", Author: "Dalai Lama"},
}
