package flows

import (
	"context"
	"log/slog"
	"sync"

	"github.com/sourcegraph/conc"

	"github.com/jonathan/api-demo/internal/outcome"
	"github.com/jonathan/api-demo/internal/types"
)

// UsersFailedPrefix prefixes the error text of a failed user listing.
const UsersFailedPrefix = "Failed to fetch users! "

// DirectoryState is a snapshot of a UserDirectory.
type DirectoryState struct {
	// Fetched distinguishes "never run" from "ran and returned nothing".
	Fetched bool
	Users   outcome.Outcome[[]types.User]
	Submit  outcome.Outcome[types.Post]
	// LastCreated survives later submit failures.
	LastCreated *types.Post
}

// UserDirectory runs two independent manual actions: listing users and
// submitting the fixed post payload. Each action has its own slot.
type UserDirectory struct {
	api     UserSource
	payload types.NewPost
	logger  *slog.Logger

	users  *outcome.Slot[[]types.User]
	submit *outcome.Slot[types.Post]

	mu          sync.Mutex
	fetched     bool
	lastCreated *types.Post

	wg conc.WaitGroup
}

// NewUserDirectory creates a UserDirectory with both slots idle.
func NewUserDirectory(api UserSource, opts ...Option) *UserDirectory {
	s := newSettings(opts)
	return &UserDirectory{
		api:     api,
		payload: s.payload,
		logger:  s.logger.With(slog.String("flow", "user_directory")),
		users:   outcome.NewSlot[[]types.User](s.policy),
		submit:  outcome.NewSlot[types.Post](s.policy),
	}
}

// FetchUsers issues GET /users once.
func (d *UserDirectory) FetchUsers(ctx context.Context) outcome.Token {
	d.mu.Lock()
	d.fetched = true
	d.mu.Unlock()

	tok := d.users.Begin()
	d.wg.Go(func() {
		users, err := d.api.ListUsers(ctx)
		if err != nil {
			if d.users.Fail(tok, UsersFailedPrefix+err.Error()) {
				d.logger.Warn("user listing failed", slog.Any("error", err))
			}
			return
		}
		if users == nil {
			users = []types.User{}
		}
		if d.users.Succeed(tok, users) {
			d.logger.Debug("users loaded", slog.Int("count", len(users)))
		}
	})
	return tok
}

// SendPost submits the configured payload once. A failure leaves the last
// created record in place.
func (d *UserDirectory) SendPost(ctx context.Context) outcome.Token {
	tok := d.submit.Begin()
	payload := d.payload
	d.wg.Go(func() {
		created, err := d.api.CreatePost(ctx, payload)
		if err != nil {
			if d.submit.Fail(tok, err.Error()) {
				d.logger.Warn("post submit failed", slog.Any("error", err))
			}
			return
		}
		d.mu.Lock()
		defer d.mu.Unlock()
		if d.submit.Succeed(tok, *created) {
			d.lastCreated = created
			d.logger.Debug("post created", slog.Int("id", created.ID))
		}
	})
	return tok
}

// State returns a snapshot of both slots.
func (d *UserDirectory) State() DirectoryState {
	d.mu.Lock()
	defer d.mu.Unlock()
	st := DirectoryState{
		Fetched: d.fetched,
		Users:   d.users.Snapshot(),
		Submit:  d.submit.Snapshot(),
	}
	if d.lastCreated != nil {
		c := *d.lastCreated
		st.LastCreated = &c
	}
	return st
}

// Wait blocks until every issued request has resolved.
func (d *UserDirectory) Wait() {
	d.wg.Wait()
}
