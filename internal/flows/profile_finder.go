package flows

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/sourcegraph/conc"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/api-demo/internal/outcome"
	"github.com/jonathan/api-demo/internal/types"
)

// ProfileNotFound is the single message shown when either request of a search fails.
const ProfileNotFound = "User not found! Please enter a valid ID (1-10)."

// Phase is the composite state of a ProfileFinder.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseSearching
	PhaseFound
	PhaseNotFound
)

func (p Phase) String() string {
	switch p {
	case PhaseSearching:
		return "searching"
	case PhaseFound:
		return "found"
	case PhaseNotFound:
		return "not_found"
	default:
		return "idle"
	}
}

// Profile is the merged result of a successful search.
type Profile struct {
	User  types.User
	Posts []types.Post
}

// ProfileState is a snapshot of a ProfileFinder.
type ProfileState struct {
	Input    string
	Phase    Phase
	Searched bool
	Profile  *types.User
	Posts    []types.Post
	Err      string
	// Cause holds the joined per-request errors behind Err. It is never displayed.
	Cause error
}

// ProfileFinder searches a user and that user's posts concurrently and merges
// both into one profile view.
type ProfileFinder struct {
	api    ProfileSource
	logger *slog.Logger
	slot   *outcome.Slot[Profile]

	mu       sync.Mutex
	input    string
	searched bool
	cause    error
	cancel   context.CancelFunc

	wg conc.WaitGroup
}

// NewProfileFinder creates an idle ProfileFinder.
func NewProfileFinder(api ProfileSource, opts ...Option) *ProfileFinder {
	s := newSettings(opts)
	return &ProfileFinder{
		api:    api,
		logger: s.logger.With(slog.String("flow", "profile_finder")),
		slot:   outcome.NewSlot[Profile](outcome.LatestIssued),
	}
}

// SetInput stores the id typed by the user.
func (f *ProfileFinder) SetInput(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.input = id
}

// Search starts a composite fetch for the current input. An empty input is a
// no-op and Search reports false.
func (f *ProfileFinder) Search(ctx context.Context) bool {
	f.mu.Lock()
	id := f.input
	if id == "" {
		f.mu.Unlock()
		return false
	}
	if f.cancel != nil {
		f.cancel()
	}
	reqCtx, cancel := context.WithCancel(ctx)
	f.cancel = cancel
	f.searched = true
	f.cause = nil
	tok := f.slot.Begin()
	f.mu.Unlock()

	f.logger.Debug("searching profile", slog.String("id", id), slog.Uint64("token", uint64(tok)))

	f.wg.Go(func() {
		defer cancel()
		profile, userErr, postsErr := f.fetch(reqCtx, id)

		f.mu.Lock()
		defer f.mu.Unlock()
		if userErr != nil || postsErr != nil {
			if f.slot.Fail(tok, ProfileNotFound) {
				f.cause = errors.Join(userErr, postsErr)
				f.logger.Warn("profile search failed", slog.String("id", id), slog.Any("error", f.cause))
			}
			return
		}
		if f.slot.Succeed(tok, profile) {
			f.logger.Debug("profile found", slog.String("id", id), slog.Int("posts", len(profile.Posts)))
		}
	})
	return true
}

// fetch runs both requests to completion and returns each one's error.
func (f *ProfileFinder) fetch(ctx context.Context, id string) (Profile, error, error) {
	var (
		g        errgroup.Group
		user     *types.User
		posts    []types.Post
		userErr  error
		postsErr error
	)
	g.Go(func() error {
		user, userErr = f.api.GetUser(ctx, id)
		return userErr
	})
	g.Go(func() error {
		posts, postsErr = f.api.ListPostsByUser(ctx, id)
		return postsErr
	})
	_ = g.Wait()

	if userErr != nil || postsErr != nil {
		return Profile{}, userErr, postsErr
	}
	if posts == nil {
		posts = []types.Post{}
	}
	return Profile{User: *user, Posts: posts}, nil, nil
}

// Reset clears the input and the result back to Idle and cancels any search
// in flight. A response arriving afterwards is discarded.
func (f *ProfileFinder) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
	f.slot.Reset()
	f.input = ""
	f.searched = false
	f.cause = nil
}

// State returns a snapshot of the finder.
func (f *ProfileFinder) State() ProfileState {
	f.mu.Lock()
	defer f.mu.Unlock()

	st := ProfileState{
		Input:    f.input,
		Searched: f.searched,
	}
	o := f.slot.Snapshot()
	switch o.Status {
	case outcome.Loading:
		st.Phase = PhaseSearching
	case outcome.Success:
		st.Phase = PhaseFound
		user := o.Value.User
		st.Profile = &user
		st.Posts = append([]types.Post(nil), o.Value.Posts...)
	case outcome.Failure:
		st.Phase = PhaseNotFound
		st.Err = o.Message
		st.Cause = f.cause
	default:
		st.Phase = PhaseIdle
	}
	return st
}

// Wait blocks until every issued search has resolved.
func (f *ProfileFinder) Wait() {
	f.wg.Wait()
}
