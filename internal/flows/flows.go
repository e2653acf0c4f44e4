// Package flows implements the user-driven request flows of the demo. Each flow
// owns its state, issues requests without blocking the caller and records the
// outcome of every request in a token-guarded slot.
package flows

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jonathan/api-demo/internal/outcome"
	"github.com/jonathan/api-demo/internal/types"
)

// PostSource loads a single post.
type PostSource interface {
	GetPost(ctx context.Context, id int) (*types.Post, error)
}

// UserSource lists users and creates posts.
type UserSource interface {
	ListUsers(ctx context.Context) ([]types.User, error)
	CreatePost(ctx context.Context, p types.NewPost) (*types.Post, error)
}

// ProfileSource loads a user and the posts that user owns.
type ProfileSource interface {
	GetUser(ctx context.Context, id string) (*types.User, error)
	ListPostsByUser(ctx context.Context, userID string) ([]types.Post, error)
}

// API is satisfied by both client flavours.
type API interface {
	PostSource
	UserSource
	ProfileSource
}

type settings struct {
	policy  outcome.Policy
	logger  *slog.Logger
	payload types.NewPost
}

// Option configures a flow.
type Option func(*settings)

// WithPolicy selects how overlapping requests on one slot are resolved.
func WithPolicy(p outcome.Policy) Option {
	return func(s *settings) { s.policy = p }
}

// WithLogger sets the flow logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) { s.logger = l }
}

// WithPayload replaces the body sent by UserDirectory.SendPost.
func WithPayload(p types.NewPost) Option {
	return func(s *settings) { s.payload = p }
}

func newSettings(opts []Option) settings {
	s := settings{
		policy:  outcome.LatestIssued,
		logger:  slog.Default(),
		payload: types.DefaultNewPost,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// statusError is implemented by the status errors of both client flavours.
type statusError interface {
	HTTPStatus() int
}

// httpStatus returns the non-2xx status carried by err, or 0.
func httpStatus(err error) int {
	var se statusError
	if errors.As(err, &se) {
		return se.HTTPStatus()
	}
	return 0
}
