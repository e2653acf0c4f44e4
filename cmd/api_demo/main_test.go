package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/api-demo/internal/flows"
	"github.com/jonathan/api-demo/internal/twin"
)

// resetFlags restores every flag to its default so runs do not leak into each other.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func startTwin(t *testing.T, tc twin.Config) string {
	t.Helper()
	srv := httptest.NewServer(twin.New(tc, nil))
	t.Cleanup(srv.Close)
	return srv.URL
}

// execute runs the CLI in-process against baseURL and returns stdout.
func execute(t *testing.T, baseURL, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append(args, "--no-color", "--base-url", baseURL, "--timeout", "5s"))

	err := rootCmd.Execute()
	return out.String(), err
}

func TestCompareCommand(t *testing.T) {
	out, err := execute(t, "http://127.0.0.1:1", "", "compare")
	require.NoError(t, err)
	assert.Contains(t, out, "JSON Parsing")
	assert.Contains(t, out, "resty")
}

func TestPostCommand(t *testing.T) {
	url := startTwin(t, twin.Config{})

	out, err := execute(t, url, "", "post", "--id", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Post ID (1-100): 2")
	assert.Contains(t, out, "ID:    2")

	out, err = execute(t, url, "", "post", "--id", "1000")
	require.NoError(t, err)
	assert.Contains(t, out, "Error: "+flows.PostFetchFailed)
}

func TestPostCommand_Strict(t *testing.T) {
	url := startTwin(t, twin.Config{})

	out, err := execute(t, url, "", "post", "--id", "7", "--strict")
	require.NoError(t, err)
	assert.Contains(t, out, "ID:    7")
}

func TestPostCommand_Race(t *testing.T) {
	url := startTwin(t, twin.Config{LatencyFunc: func(r *http.Request) time.Duration {
		if r.URL.Path == "/posts/1" {
			return 150 * time.Millisecond
		}
		return 0
	}})

	out, err := execute(t, url, "", "post", "--race", "1,2")
	require.NoError(t, err)
	assert.Contains(t, out, "Issued 2 requests (latest-issued); showing post 2")

	out, err = execute(t, url, "", "post", "--race", "1,2", "--legacy-race")
	require.NoError(t, err)
	assert.Contains(t, out, "Issued 2 requests (last-resolved); showing post 1")
}

func TestPostCommand_BadRace(t *testing.T) {
	_, err := execute(t, "http://127.0.0.1:1", "", "post", "--race", "1,x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid post id")
}

func TestUsersCommand(t *testing.T) {
	url := startTwin(t, twin.Config{})
	for _, flavor := range []string{flavorAuto, flavorFetch, flavorResty} {
		t.Run(flavor, func(t *testing.T) {
			out, err := execute(t, url, "", "users", "--client", flavor)
			require.NoError(t, err)
			assert.Contains(t, out, "Leanne Graham")
			assert.Contains(t, out, "Clementina DuBuque")
		})
	}
}

func TestUsersCommand_Failure(t *testing.T) {
	url := startTwin(t, twin.Config{FailPaths: map[string]int{"/users": http.StatusInternalServerError}})

	out, err := execute(t, url, "", "users")
	require.NoError(t, err)
	assert.Contains(t, out, flows.UsersFailedPrefix)
}

func TestSendPostCommand(t *testing.T) {
	url := startTwin(t, twin.Config{})

	out, err := execute(t, url, "", "send-post")
	require.NoError(t, err)
	assert.Contains(t, out, "POST CREATED SUCCESSFULLY")
	assert.Contains(t, out, "ID:    101")
	assert.Contains(t, out, "New React Post")
}

func TestProfileCommand(t *testing.T) {
	url := startTwin(t, twin.Config{})

	out, err := execute(t, url, "", "profile", "--id", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "(L) Leanne Graham")
	assert.Contains(t, out, "Posts by Leanne Graham (10)")

	out, err = execute(t, url, "", "profile", "--id", "999")
	require.NoError(t, err)
	assert.Contains(t, out, flows.ProfileNotFound)

	out, err = execute(t, url, "", "profile")
	require.NoError(t, err)
	assert.Contains(t, out, "Enter a User ID")
}

func TestAllCommand(t *testing.T) {
	url := startTwin(t, twin.Config{})

	out, err := execute(t, url, "", "all")
	require.NoError(t, err)
	for _, want := range []string{
		"API INTEGRATION IN GO",
		"Browser Support",
		"Post ID (1-100): 1",
		"Leanne Graham",
		"POST CREATED SUCCESSFULLY",
		"Posts by Leanne Graham (10)",
		"Built with Go",
	} {
		assert.Contains(t, out, want)
	}
	assert.Less(t, strings.Index(out, "API INTEGRATION IN GO"), strings.Index(out, "Built with Go"))
	assert.Empty(t, openClients, "resty clients are closed when the command returns")
}

func TestCloseClients(t *testing.T) {
	_, err := execute(t, "http://127.0.0.1:1", "", "compare")
	require.NoError(t, err)

	a, b := newRestyClient(), newRestyClient()
	require.Len(t, openClients, 2)
	closeClients()
	assert.Empty(t, openClients)
	assert.NoError(t, a.Close())
	assert.NoError(t, b.Close())
}

func TestSessionCommand(t *testing.T) {
	url := startTwin(t, twin.Config{})
	script := strings.Join([]string{
		"post 2",
		"wait",
		"search 3",
		"wait",
		"state",
		"reset",
		"search",
		"bogus",
		"quit",
		"post 9",
	}, "\n")

	out, err := execute(t, url, script, "session")
	require.NoError(t, err)
	assert.Contains(t, out, "ID:    2")
	assert.Contains(t, out, "Profile: found")
	assert.Contains(t, out, "Profile finder reset.")
	assert.Contains(t, out, "Enter a User ID (1-10).")
	assert.Contains(t, out, `unknown command "bogus"`)
	assert.NotContains(t, out, "Post ID (1-100): 9", "input after quit is ignored")
}

func TestUnknownClientFlavor(t *testing.T) {
	_, err := execute(t, "http://127.0.0.1:1", "", "compare", "--client", "curl")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown client flavour")
}

func TestInvalidBaseURL(t *testing.T) {
	_, err := execute(t, "not a url", "", "compare")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BaseURL")
}

func TestParseFailPaths(t *testing.T) {
	got, err := parseFailPaths(" /users=500, /posts/1=404 ")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"/users": 500, "/posts/1": 404}, got)

	got, err = parseFailPaths("")
	require.NoError(t, err)
	assert.Empty(t, got)

	for _, bad := range []string{"users=500", "/users", "/users=abc", "/users=99"} {
		_, err := parseFailPaths(bad)
		assert.Error(t, err, bad)
	}
}

func TestParseIDs(t *testing.T) {
	ids, err := parseIDs("3, 1,2,")
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1, 2}, ids)

	_, err = parseIDs(" , ")
	assert.Error(t, err)
}
