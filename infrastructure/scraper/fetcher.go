package scraper

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	pErrors "partyline/errors"

	"github.com/gabriel-vasile/mimetype"
	"github.com/valyala/fasthttp"
)

const (
	maxRedirects     = 5
	defaultUserAgent = "partyline/1.0 (+page fetcher)"
)

type Config struct {
	Timeout         time.Duration
	MaxContentBytes int
	UserAgent       string
}

// Fetcher downloads pages with fasthttp and hands back markdown.
type Fetcher struct {
	client  *fasthttp.Client
	timeout time.Duration
	agent   string
	log     *slog.Logger
}

func NewFetcher(cfg Config, log *slog.Logger) *Fetcher {
	agent := cfg.UserAgent
	if agent == "" {
		agent = defaultUserAgent
	}
	return &Fetcher{
		client: &fasthttp.Client{
			Name:                agent,
			MaxResponseBodySize: cfg.MaxContentBytes,
			ReadTimeout:         cfg.Timeout,
			WriteTimeout:        cfg.Timeout,
		},
		timeout: cfg.Timeout,
		agent:   agent,
		log:     log,
	}
}

// Fetch follows up to maxRedirects redirects. HTML is converted to markdown,
// plain text is returned as-is, anything else is refused.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	body, contentType, err := f.get(ctx, url)
	if err != nil {
		return "", err
	}

	detected := mimetype.Detect(body)
	f.log.Debug("Page fetched",
		"url", url,
		"bytes", len(body),
		"content_type", contentType,
		"detected", detected.String())

	switch {
	case detected.Is("text/html") || strings.HasPrefix(contentType, "text/html"):
		md, err := ToMarkdown(bytes.NewReader(body))
		if err != nil {
			return "", fmt.Errorf("%w: %s: %v", pErrors.ErrFetchFailed, url, err)
		}
		return md, nil
	case detected.Is("text/plain"), strings.HasPrefix(contentType, "text/plain"):
		return strings.TrimSpace(string(body)), nil
	default:
		return "", fmt.Errorf("%w: %s (%s)", pErrors.ErrUnsupportedContent, detected.String(), url)
	}
}

func (f *Fetcher) get(ctx context.Context, url string) ([]byte, string, error) {
	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.SetUserAgent(f.agent)
	req.Header.Set("Accept", "text/html,text/plain;q=0.9,*/*;q=0.5")

	for redirects := 0; ; redirects++ {
		if err := ctx.Err(); err != nil {
			return nil, "", fmt.Errorf("%w: %s: %v", pErrors.ErrFetchFailed, url, err)
		}
		if err := f.client.DoTimeout(req, resp, f.budget(ctx)); err != nil {
			return nil, "", fmt.Errorf("%w: %s: %v", pErrors.ErrFetchFailed, url, err)
		}
		status := resp.StatusCode()
		if fasthttp.StatusCodeIsRedirect(status) {
			location := resp.Header.Peek(fasthttp.HeaderLocation)
			if len(location) == 0 || redirects >= maxRedirects {
				return nil, "", fmt.Errorf("%w: %s: too many or empty redirects", pErrors.ErrFetchFailed, url)
			}
			req.URI().UpdateBytes(location)
			resp.Reset()
			continue
		}
		if status < 200 || status >= 300 {
			return nil, "", fmt.Errorf("%w: %s: status %d", pErrors.ErrFetchFailed, url, status)
		}
		body := append([]byte(nil), resp.Body()...)
		return body, string(resp.Header.ContentType()), nil
	}
}

// budget is the configured timeout, shortened by the context deadline.
func (f *Fetcher) budget(ctx context.Context) time.Duration {
	timeout := f.timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if deadline, ok := ctx.Deadline(); ok {
		if left := time.Until(deadline); left < timeout {
			timeout = left
		}
	}
	return timeout
}
