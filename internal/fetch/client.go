package fetch

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/jonathan/api-demo/internal/schemas"
	"github.com/jonathan/api-demo/internal/types"
)

// Client talks to the placeholder REST API with the built-in flavour.
type Client struct {
	baseURL string
	opts    *Options
}

// NewClient creates a Client rooted at baseURL. A nil opts uses DefaultOptions.
func NewClient(baseURL string, opts *Options) *Client {
	if opts == nil {
		opts = DefaultOptions()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		opts:    opts,
	}
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// optsFor returns the options for an endpoint answering with the named schema.
func (c *Client) optsFor(schema string) *Options {
	if !c.opts.Contracts || c.opts.Check != nil {
		return c.opts
	}
	o := *c.opts
	o.Check = schemas.Checker(schema)
	return &o
}

// GetPost loads GET /posts/{id}.
func (c *Client) GetPost(ctx context.Context, id int) (*types.Post, error) {
	var post types.Post
	if err := GetJSON(ctx, fmt.Sprintf("%s/posts/%d", c.baseURL, id), c.optsFor(schemas.Post), &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// ListUsers loads GET /users.
func (c *Client) ListUsers(ctx context.Context) ([]types.User, error) {
	var users []types.User
	if err := GetJSON(ctx, c.baseURL+"/users", c.optsFor(schemas.Users), &users); err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser loads GET /users/{id}.
func (c *Client) GetUser(ctx context.Context, id string) (*types.User, error) {
	var user types.User
	if err := GetJSON(ctx, c.baseURL+"/users/"+url.PathEscape(id), c.optsFor(schemas.User), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListPostsByUser loads GET /posts?userId={id}.
func (c *Client) ListPostsByUser(ctx context.Context, userID string) ([]types.Post, error) {
	q := url.Values{}
	q.Set("userId", userID)
	var posts []types.Post
	if err := GetJSON(ctx, c.baseURL+"/posts?"+q.Encode(), c.optsFor(schemas.Posts), &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// CreatePost sends POST /posts and returns the echoed record.
func (c *Client) CreatePost(ctx context.Context, p types.NewPost) (*types.Post, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid post payload: %w", err)
	}
	var created types.Post
	if err := PostJSON(ctx, c.baseURL+"/posts", p, c.optsFor(schemas.CreatedPost), &created); err != nil {
		return nil, err
	}
	return &created, nil
}
