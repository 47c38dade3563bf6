package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html/charset"
	"golang.org/x/time/rate"
)

// ErrTimeout reports that the wall-clock deadline elapsed before the body
// finished downloading. Partial bytes are discarded, never returned.
var ErrTimeout = errors.New("fetch: timeout")

// StatusError reports a non-2xx response.
type StatusError struct {
	Status  int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetch: status %d: %s", e.Status, e.Message)
}

// Result carries the decoded document and its response envelope.
type Result struct {
	// Body is the document text decoded to UTF-8.
	Body   string
	Status int
	Header http.Header
}

// DefaultTimeout bounds a whole fetch when the client does not set one.
const DefaultTimeout = 15 * time.Second

// Some portals serve degraded or challenge content to clients they do not
// recognize as browsers, so the default identity is a real browser string.
const defaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

const defaultAcceptLanguage = "ja,en-US;q=0.9,en;q=0.8"

// Client issues single GET requests with a browser-like identity and a hard
// timeout covering connect through full body read. It performs no retries;
// retry and backoff policy belongs to the caller.
type Client struct {
	HTTPClient     *http.Client
	UserAgent      string
	AcceptLanguage string
	// Timeout bounds the whole request including body read. Zero means
	// DefaultTimeout.
	Timeout time.Duration
	// Limiter, when set, paces requests across all goroutines sharing this
	// client instance.
	Limiter *rate.Limiter
	// RedirectMaxHops caps redirect following to avoid loops. Zero means
	// default (5).
	RedirectMaxHops int
}

// Get fetches one document and decodes it to UTF-8 honoring the declared
// charset; older Japanese portals still serve Shift_JIS. On deadline it
// returns ErrTimeout, on a non-2xx status a *StatusError.
func (c *Client) Get(ctx context.Context, rawURL string) (*Result, error) {
	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	if req.URL == nil || !isHTTPScheme(req.URL) {
		return nil, fmt.Errorf("unsupported URL scheme: %q", rawURL)
	}
	ua := c.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	req.Header.Set("User-Agent", ua)
	al := c.AcceptLanguage
	if al == "" {
		al = defaultAcceptLanguage
	}
	req.Header.Set("Accept-Language", al)
	req.Header.Set("Accept", "text/html,application/xhtml+xml;q=0.9,*/*;q=0.8")

	resp, err := c.getHTTPClient().Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, ErrTimeout
		}
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}

	r, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("charset: %w", err)
	}
	b, err := io.ReadAll(r)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || ctx.Err() == context.DeadlineExceeded {
			return nil, ErrTimeout
		}
		return nil, fmt.Errorf("read body: %w", err)
	}
	return &Result{Body: string(b), Status: resp.StatusCode, Header: resp.Header}, nil
}

func (c *Client) getHTTPClient() *http.Client {
	if c.HTTPClient != nil {
		// Clone to attach our redirect policy without mutating caller's client
		base := *c.HTTPClient
		base.CheckRedirect = c.checkRedirectFunc()
		return &base
	}
	return &http.Client{CheckRedirect: c.checkRedirectFunc()}
}

func (c *Client) checkRedirectFunc() func(req *http.Request, via []*http.Request) error {
	max := c.RedirectMaxHops
	if max <= 0 {
		max = 5
	}
	return func(req *http.Request, via []*http.Request) error {
		if len(via) >= max {
			return errors.New("too many redirects")
		}
		if req.URL == nil || !isHTTPScheme(req.URL) {
			return errors.New("redirect to unsupported scheme")
		}
		return nil
	}
}

func isHTTPScheme(u *url.URL) bool {
	if u == nil {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	return scheme == "http" || scheme == "https"
}
