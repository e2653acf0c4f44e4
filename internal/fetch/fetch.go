// Package fetch provides the built-in HTTP flavour: plain net/http requests with
// manual status checks and manual JSON decoding.
package fetch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 10 * time.Second

// DefaultUserAgent is the user agent string for HTTP requests.
const DefaultUserAgent = "api-demo/1.0 (net/http)"

// Result holds the raw response of a request.
type Result struct {
	URL         string
	Body        []byte
	ContentType string
	StatusCode  int
}

// Error represents an error during a request. StatusCode is set only for non-2xx responses.
type Error struct {
	URL        string
	Message    string
	StatusCode int
	Cause      error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// HTTPStatus returns the non-2xx response status, or 0 for any other failure.
func (e *Error) HTTPStatus() int {
	return e.StatusCode
}

// Options configures the fetch behavior.
type Options struct {
	Timeout   time.Duration
	UserAgent string
	Headers   map[string]string
	// Client overrides the HTTP client built from Timeout.
	Client *http.Client
	// Check, when set, runs against every 2xx body before it is decoded.
	Check func(body []byte) error
	// Contracts makes Client validate each body against the schema of its endpoint.
	Contracts bool
}

// DefaultOptions returns sensible defaults for fetching.
func DefaultOptions() *Options {
	return &Options{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

func (o *Options) httpClient() *http.Client {
	if o.Client != nil {
		return o.Client
	}
	return &http.Client{Timeout: o.Timeout}
}

// Do sends a request and returns the raw response. A non-2xx status returns the
// result together with an *Error.
func Do(ctx context.Context, method, urlStr string, body []byte, opts *Options) (*Result, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	parsedURL, err := url.Parse(urlStr)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, &Error{
			URL:     urlStr,
			Message: "invalid URL",
			Cause:   err,
		}
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, urlStr, reader)
	if err != nil {
		return nil, &Error{
			URL:     urlStr,
			Message: "failed to create request",
			Cause:   err,
		}
	}

	req.Header.Set("User-Agent", opts.UserAgent)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json; charset=UTF-8")
	}
	for key, value := range opts.Headers {
		req.Header.Set(key, value)
	}

	resp, err := opts.httpClient().Do(req)
	if err != nil {
		return nil, &Error{
			URL:     urlStr,
			Message: "HTTP request failed",
			Cause:   err,
		}
	}
	defer func() { _ = resp.Body.Close() }()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{
			URL:     urlStr,
			Message: "failed to read response body",
			Cause:   err,
		}
	}

	result := &Result{
		URL:         urlStr,
		Body:        bodyBytes,
		ContentType: resp.Header.Get("Content-Type"),
		StatusCode:  resp.StatusCode,
	}

	// net/http never fails on a status code; the check is ours to make
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return result, &Error{
			URL:        urlStr,
			Message:    fmt.Sprintf("HTTP status %d", resp.StatusCode),
			StatusCode: resp.StatusCode,
		}
	}

	return result, nil
}

// GetJSON issues a GET and decodes the JSON body into out.
func GetJSON(ctx context.Context, urlStr string, opts *Options, out any) error {
	result, err := Do(ctx, http.MethodGet, urlStr, nil, opts)
	if err != nil {
		return err
	}
	return decode(result, opts, out)
}

// PostJSON encodes in as the request body, issues a POST and decodes the JSON response into out.
func PostJSON(ctx context.Context, urlStr string, in any, opts *Options, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to encode request body: %w", err)
	}
	result, err := Do(ctx, http.MethodPost, urlStr, payload, opts)
	if err != nil {
		return err
	}
	return decode(result, opts, out)
}

func decode(result *Result, opts *Options, out any) error {
	if opts != nil && opts.Check != nil {
		if err := opts.Check(result.Body); err != nil {
			return &Error{
				URL:     result.URL,
				Message: "response failed contract check",
				Cause:   err,
			}
		}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(result.Body, out); err != nil {
		return &Error{
			URL:     result.URL,
			Message: "failed to decode JSON body",
			Cause:   err,
		}
	}
	return nil
}
