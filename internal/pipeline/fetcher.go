package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"

	"github.com/credlab/veracity/internal/cache"
	"github.com/credlab/veracity/internal/model"
	"github.com/credlab/veracity/internal/util"
	"github.com/credlab/veracity/internal/worker"
)

// Placeholder returned when an article cannot be retrieved. The analysis
// still runs over it and the result is flagged as degraded.
const unavailableText = "Article content could not be retrieved."

// Fetcher retrieves readable article text from URLs
type Fetcher struct {
	httpClient *http.Client
	robots     *util.RobotsChecker
	limiter    *worker.Limiter
	store      cache.Cache // nil disables caching
	cacheTTL   model.CacheConfig
	userAgent  string
	maxBytes   int64
}

// NewFetcher creates a new Fetcher from the configuration
func NewFetcher(cfg *model.Config) *Fetcher {
	var store cache.Cache
	if cfg.Cache.Enabled {
		if cfg.Cache.DiskDir != "" {
			store = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.DiskDir, cfg.Cache.DiskTTL)
		} else {
			store = cache.NewMemoryCache(cfg.Cache.MemoryTTL, cfg.Cache.MemoryTTL)
		}
	}

	return &Fetcher{
		httpClient: &http.Client{
			Timeout: cfg.HTTP.Timeout,
			Transport: &http.Transport{
				Proxy: util.NewProxyFunc(cfg.HTTP.HTTPProxy, cfg.HTTP.HTTPSProxy, cfg.HTTP.NoProxy),
			},
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		robots:    util.NewRobotsChecker(cfg.HTTP.UserAgent, cfg.HTTP.Timeout),
		limiter:   worker.NewLimiter(cfg.Concurrency.FetchRate, cfg.Concurrency.FetchBurst),
		store:     store,
		cacheTTL:  cfg.Cache,
		userAgent: cfg.HTTP.UserAgent,
		maxBytes:  cfg.HTTP.MaxBodyBytes,
	}
}

// FetchArticleText retrieves the readable text of the article at the given
// URL. Failures never surface as errors: the returned degraded flag is set
// and a placeholder takes the text's place, so the analysis can proceed.
func (f *Fetcher) FetchArticleText(ctx context.Context, rawURL string) (string, bool) {
	if f.store != nil {
		if cached, found := f.store.Get(rawURL); found {
			return cached, false
		}
	}

	if !f.robots.IsAllowed(ctx, rawURL) {
		slog.Warn("fetch disallowed by robots.txt", "url", rawURL)
		return unavailableText, true
	}

	if err := f.limiter.Wait(ctx, rawURL); err != nil {
		slog.Warn("rate limiter wait failed", "url", rawURL, "error", err)
		return unavailableText, true
	}

	text, err := f.fetchWithRetry(ctx, rawURL)
	if err != nil {
		slog.Warn("article fetch failed", "url", rawURL, "error", err)
		return unavailableText, true
	}

	if f.store != nil {
		_ = f.store.Set(rawURL, text, f.cacheTTL.MemoryTTL)
	}

	return text, false
}

const maxFetchAttempts = 3

// fetchSleepFunc is overridable in tests
var fetchSleepFunc = time.Sleep

func (f *Fetcher) fetchWithRetry(ctx context.Context, rawURL string) (string, error) {
	var lastErr error
	for attempt := 1; attempt <= maxFetchAttempts; attempt++ {
		text, err := f.fetch(ctx, rawURL)
		if err == nil {
			return text, nil
		}
		lastErr = err
		if !isRetryableFetchError(err) {
			return "", err
		}
		if attempt < maxFetchAttempts {
			fetchSleepFunc(time.Duration(attempt) * time.Second)
		}
	}
	return "", lastErr
}

// isRetryableFetchError reports whether the fetch should be attempted again.
// Transient server statuses and connection failures are retryable; client
// errors and body read failures are not.
func isRetryableFetchError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	for _, status := range []string{"status: 500", "status: 502", "status: 503", "status: 504", "status: 429"} {
		if strings.Contains(msg, status) {
			return true
		}
	}
	if strings.HasPrefix(msg, "fetch: ") {
		return strings.Contains(msg, "connection refused") || strings.Contains(msg, "connection reset")
	}
	return false
}

func (f *Fetcher) fetch(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	limitedReader := io.LimitReader(resp.Body, f.maxBytes)
	body, err := io.ReadAll(limitedReader)
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}

	text := ExtractReadableText(string(body))
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("no readable text at %s", rawURL)
	}

	return text, nil
}

// skippedElements never contribute visible article text
var skippedElements = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"iframe":   true,
	"nav":      true,
	"footer":   true,
	"aside":    true,
}

// ExtractReadableText pulls visible text out of an HTML document. When the
// document has an <article> or <main> container only its contents are used,
// mirroring how article bodies are laid out on news sites.
func ExtractReadableText(rawHTML string) string {
	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return ""
	}

	if container := findContainer(doc); container != nil {
		doc = container
	}

	var sb strings.Builder
	collectText(doc, &sb)

	return strings.Join(strings.Fields(sb.String()), " ")
}

// findContainer locates the first <article> or <main> element, if any
func findContainer(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && (n.Data == "article" || n.Data == "main") {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findContainer(c); found != nil {
			return found
		}
	}
	return nil
}

func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.ElementNode && skippedElements[n.Data] {
		return
	}
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
		sb.WriteString(" ")
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}
}
