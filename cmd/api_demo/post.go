package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/api-demo/internal/flows"
	"github.com/jonathan/api-demo/internal/outcome"
)

var postCmd = &cobra.Command{
	Use:   "post",
	Short: "Load one post by id",
	Long: "Load a single post with the post viewer. --race fires overlapping id changes " +
		"and shows which response ends up on screen.",
	RunE: runPost,
}

var (
	postID         int
	postRace       string
	postLegacyRace bool
)

func init() {
	postCmd.Flags().IntVar(&postID, "id", flows.InitialPostID, "Post id (1-100)")
	postCmd.Flags().StringVar(&postRace, "race", "", "Comma separated ids issued back to back, e.g. 3,1,2")
	postCmd.Flags().BoolVar(&postLegacyRace, "legacy-race", false, "Let the last response to arrive win instead of the last id issued")
	rootCmd.AddCommand(postCmd)
}

func parseIDs(s string) ([]int, error) {
	var ids []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid post id %q: %w", part, err)
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("no post ids in %q", s)
	}
	return ids, nil
}

//nolint:errcheck // writing to stdout; errors are not recoverable
func runPost(cmd *cobra.Command, _ []string) error {
	defer closeClients()

	ids := []int{postID}
	if postRace != "" {
		parsed, err := parseIDs(postRace)
		if err != nil {
			return err
		}
		ids = parsed
	}

	policy := outcome.LatestIssued
	if postLegacyRace {
		policy = outcome.LastResolved
	}

	viewer := flows.NewPostViewer(apiFor(flavorFetch), flowOptions(flows.WithPolicy(policy))...)
	for _, id := range ids {
		viewer.SetID(cmd.Context(), id)
	}
	viewer.Wait()

	st := viewer.State()
	if len(ids) > 1 {
		shown := "none"
		if post, ok := st.Outcome.Get(); ok {
			shown = strconv.Itoa(post.ID)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Issued %d requests (%s); showing post %s\n", len(ids), policy, shown)
	}
	newPrinter(cmd).PrintPostView(st)
	return nil
}
