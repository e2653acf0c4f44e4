// Package placeholder provides the third-party HTTP flavour: a resty client for the
// placeholder REST API with automatic JSON handling and status mapping.
package placeholder

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"resty.dev/v3"

	"github.com/jonathan/api-demo/internal/types"
)

// DefaultBaseURL is the public placeholder API.
const DefaultBaseURL = "https://jsonplaceholder.typicode.com"

// DefaultUserAgent is sent with every request.
const DefaultUserAgent = "api-demo/1.0 (resty)"

// RequestIDHeader carries a fresh uuid per request.
const RequestIDHeader = "X-Request-ID"

// Config configures a Client.
type Config struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
	// HTTPClient, when set, is wrapped instead of resty's default client.
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// Client talks to the placeholder REST API through resty.
type Client struct {
	resty  *resty.Client
	logger *slog.Logger

	closeOnce sync.Once
	closeErr  error
}

// NewClient creates a Client from cfg, filling unset fields with defaults.
func NewClient(cfg Config) *Client {
	client := resty.New()
	if cfg.HTTPClient != nil {
		client = resty.NewWithClient(cfg.HTTPClient)
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	client.SetBaseURL(strings.TrimRight(baseURL, "/"))
	client.SetHeader("User-Agent", userAgent)
	client.SetHeader("Accept", "application/json")
	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}

	return &Client{
		resty:  client,
		logger: logger,
	}
}

// Close releases the underlying resty client. It is safe to call more than once.
func (c *Client) Close() error {
	c.closeOnce.Do(func() {
		c.closeErr = c.resty.Close()
	})
	return c.closeErr
}

func (c *Client) request(ctx context.Context) *resty.Request {
	return c.resty.R().
		SetContext(ctx).
		SetHeader(RequestIDHeader, uuid.NewString())
}

// GetPost loads GET /posts/{id}.
func (c *Client) GetPost(ctx context.Context, id int) (*types.Post, error) {
	var post types.Post
	resp, err := c.request(ctx).
		SetResult(&post).
		SetPathParam("id", fmt.Sprint(id)).
		Get("/posts/{id}")
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	return &post, nil
}

// ListUsers loads GET /users.
func (c *Client) ListUsers(ctx context.Context) ([]types.User, error) {
	var users []types.User
	resp, err := c.request(ctx).
		SetResult(&users).
		Get("/users")
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser loads GET /users/{id}. The id is passed through as typed by the user.
func (c *Client) GetUser(ctx context.Context, id string) (*types.User, error) {
	var user types.User
	resp, err := c.request(ctx).
		SetResult(&user).
		SetPathParam("id", id).
		Get("/users/{id}")
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListPostsByUser loads GET /posts?userId={id}.
func (c *Client) ListPostsByUser(ctx context.Context, userID string) ([]types.Post, error) {
	var posts []types.Post
	resp, err := c.request(ctx).
		SetResult(&posts).
		SetQueryParam("userId", userID).
		Get("/posts")
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	return posts, nil
}

// CreatePost sends POST /posts and returns the server-echoed record.
func (c *Client) CreatePost(ctx context.Context, p types.NewPost) (*types.Post, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid post payload: %w", err)
	}
	var created types.Post
	resp, err := c.request(ctx).
		SetBody(p).
		SetResult(&created).
		Post("/posts")
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	return &created, nil
}

// check turns a transport error or a 4xx/5xx response into an error.
func (c *Client) check(resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}

	c.logger.Debug("api response",
		slog.String("method", resp.Request.Method),
		slog.String("url", resp.Request.URL),
		slog.Int("status", resp.StatusCode()),
		slog.String("request_id", resp.Request.Header.Get(RequestIDHeader)),
	)

	if resp.IsError() {
		return &StatusError{
			Method:     resp.Request.Method,
			URL:        resp.Request.URL,
			StatusCode: resp.StatusCode(),
			Body:       resp.String(),
		}
	}
	return nil
}
