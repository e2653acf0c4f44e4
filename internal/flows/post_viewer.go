package flows

import (
	"context"
	"log/slog"
	"sync"

	"github.com/sourcegraph/conc"

	"github.com/jonathan/api-demo/internal/outcome"
	"github.com/jonathan/api-demo/internal/types"
)

// InitialPostID is the id loaded on mount.
const InitialPostID = 1

// PostFetchFailed is shown when the API answers with a non-2xx status.
const PostFetchFailed = "Failed to fetch post!"

// PostViewState is a snapshot of a PostViewer.
type PostViewState struct {
	ID      int
	Outcome outcome.Outcome[types.Post]
}

// PostViewer loads one post whenever its id changes.
type PostViewer struct {
	api    PostSource
	slot   *outcome.Slot[types.Post]
	logger *slog.Logger

	mu     sync.Mutex
	id     int
	cancel context.CancelFunc

	wg conc.WaitGroup
}

// NewPostViewer creates an idle PostViewer.
func NewPostViewer(api PostSource, opts ...Option) *PostViewer {
	s := newSettings(opts)
	return &PostViewer{
		api:    api,
		slot:   outcome.NewSlot[types.Post](s.policy),
		logger: s.logger.With(slog.String("flow", "post_viewer")),
	}
}

// Mount loads the initial post.
func (v *PostViewer) Mount(ctx context.Context) outcome.Token {
	return v.SetID(ctx, InitialPostID)
}

// SetID records the new id and issues exactly one request for it. Under the
// latest-issued policy the superseded request is cancelled; under the
// last-resolved policy every request runs to completion and the last to
// resolve wins.
func (v *PostViewer) SetID(ctx context.Context, id int) outcome.Token {
	reqCtx, cancel := context.WithCancel(ctx)

	v.mu.Lock()
	v.id = id
	if v.slot.Policy() == outcome.LatestIssued && v.cancel != nil {
		v.cancel()
	}
	v.cancel = cancel
	tok := v.slot.Begin()
	v.mu.Unlock()

	v.logger.Debug("loading post", slog.Int("id", id), slog.Uint64("token", uint64(tok)))

	v.wg.Go(func() {
		defer cancel()
		post, err := v.api.GetPost(reqCtx, id)
		if err != nil {
			msg := err.Error()
			if httpStatus(err) != 0 {
				msg = PostFetchFailed
			}
			if !v.slot.Fail(tok, msg) {
				v.logger.Debug("discarded stale failure", slog.Int("id", id), slog.Uint64("token", uint64(tok)))
				return
			}
			v.logger.Warn("post request failed", slog.Int("id", id), slog.Any("error", err))
			return
		}
		if !v.slot.Succeed(tok, *post) {
			v.logger.Debug("discarded stale response", slog.Int("id", id), slog.Uint64("token", uint64(tok)))
			return
		}
		v.logger.Debug("post loaded", slog.Int("id", id), slog.Uint64("token", uint64(tok)))
	})

	return tok
}

// State returns a snapshot of the current id and outcome.
func (v *PostViewer) State() PostViewState {
	v.mu.Lock()
	id := v.id
	v.mu.Unlock()
	return PostViewState{ID: id, Outcome: v.slot.Snapshot()}
}

// Wait blocks until every issued request has resolved.
func (v *PostViewer) Wait() {
	v.wg.Wait()
}
