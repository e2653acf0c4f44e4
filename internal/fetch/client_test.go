package fetch

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/api-demo/internal/schemas"
	"github.com/jonathan/api-demo/internal/twin"
	"github.com/jonathan/api-demo/internal/types"
)

func newTwinClient(t *testing.T, opts *Options) (*twin.Twin, *Client) {
	t.Helper()
	tw := twin.New(twin.Config{}, nil)
	srv := httptest.NewServer(tw)
	t.Cleanup(srv.Close)
	return tw, NewClient(srv.URL+"/", opts)
}

func TestClient_GetPost(t *testing.T) {
	_, c := newTwinClient(t, nil)

	post, err := c.GetPost(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, 42, post.ID)
	assert.Equal(t, 5, post.UserID)
}

func TestClient_GetPostNotFound(t *testing.T) {
	_, c := newTwinClient(t, nil)

	_, err := c.GetPost(context.Background(), 101)
	require.Error(t, err)

	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, http.StatusNotFound, fetchErr.StatusCode)
}

func TestClient_ListUsers(t *testing.T) {
	_, c := newTwinClient(t, nil)

	users, err := c.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, twin.UserCount)
}

func TestClient_GetUserAndPosts(t *testing.T) {
	_, c := newTwinClient(t, nil)

	user, err := c.GetUser(context.Background(), "10")
	require.NoError(t, err)
	assert.Equal(t, "Clementina DuBuque", user.Name)

	posts, err := c.ListPostsByUser(context.Background(), "10")
	require.NoError(t, err)
	assert.Len(t, posts, twin.PostsPerUser)
}

func TestClient_CreatePost(t *testing.T) {
	tw, c := newTwinClient(t, nil)

	created, err := c.CreatePost(context.Background(), types.DefaultNewPost)
	require.NoError(t, err)
	assert.Equal(t, twin.CreatedPostID, created.ID)

	entries := tw.ReqLog.Entries()
	require.Len(t, entries, 1)
	var sent types.NewPost
	require.NoError(t, json.Unmarshal([]byte(entries[0].Body), &sent))
	assert.Equal(t, types.DefaultNewPost, sent)
}

func TestClient_StrictCheck(t *testing.T) {
	opts := DefaultOptions()
	opts.Check = schemas.Checker(schemas.Post)
	_, c := newTwinClient(t, opts)

	post, err := c.GetPost(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, post.ID)
}

func TestClient_ContractsPerEndpoint(t *testing.T) {
	opts := DefaultOptions()
	opts.Contracts = true
	_, c := newTwinClient(t, opts)
	ctx := context.Background()

	_, err := c.GetPost(ctx, 3)
	require.NoError(t, err)
	users, err := c.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, twin.UserCount)
	_, err = c.GetUser(ctx, "2")
	require.NoError(t, err)
	posts, err := c.ListPostsByUser(ctx, "2")
	require.NoError(t, err)
	assert.Len(t, posts, twin.PostsPerUser)
	created, err := c.CreatePost(ctx, types.DefaultNewPost)
	require.NoError(t, err)
	assert.Equal(t, twin.CreatedPostID, created.ID)
}

func TestClient_ContractViolation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"seven","title":1}`))
	}))
	t.Cleanup(srv.Close)

	opts := DefaultOptions()
	opts.Contracts = true
	_, err := NewClient(srv.URL, opts).GetPost(context.Background(), 7)
	require.Error(t, err)

	var fe *Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "response failed contract check", fe.Message)
	assert.Zero(t, fe.HTTPStatus())

	var ve *schemas.ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestClient_BaseURLTrimmed(t *testing.T) {
	c := NewClient("https://example.com///", nil)
	assert.Equal(t, "https://example.com", c.BaseURL())
}
