package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/api-demo/internal/flows"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Find a user profile and that user's posts",
	Long:  "Fetch a user and the user's posts concurrently and render them as one profile.",
	RunE:  runProfile,
}

var profileID string

func init() {
	profileCmd.Flags().StringVar(&profileID, "id", "", "User id (1-10)")
	rootCmd.AddCommand(profileCmd)
}

//nolint:errcheck // writing to stdout; errors are not recoverable
func runProfile(cmd *cobra.Command, _ []string) error {
	defer closeClients()

	finder := flows.NewProfileFinder(apiFor(flavorResty), flowOptions()...)
	finder.SetInput(profileID)
	if !finder.Search(cmd.Context()) {
		fmt.Fprintln(cmd.OutOrStdout(), "Enter a User ID (1-10) with --id.")
		return nil
	}
	finder.Wait()
	newPrinter(cmd).PrintProfile(finder.State())
	return nil
}
