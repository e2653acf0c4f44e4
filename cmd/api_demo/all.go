package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/api-demo/internal/comparison"
	"github.com/jonathan/api-demo/internal/flows"
)

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Render every section of the demo page",
	Long:  "Render the header, the comparison, post 1, the user list, a submitted post, the profile of user 1 and the footer.",
	RunE:  runAll,
}

var allProfileID string

func init() {
	allCmd.Flags().StringVar(&allProfileID, "profile-id", "1", "User id searched by the profile section")
	rootCmd.AddCommand(allCmd)
}

//nolint:errcheck // writing to stdout; errors are not recoverable
func runAll(cmd *cobra.Command, _ []string) error {
	defer closeClients()

	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	p := newPrinter(cmd)

	viewer := flows.NewPostViewer(apiFor(flavorFetch), flowOptions()...)
	dir := flows.NewUserDirectory(apiFor(flavorResty), flowOptions()...)
	finder := flows.NewProfileFinder(apiFor(flavorResty), flowOptions()...)

	// Sections are independent; start them all before rendering any.
	viewer.Mount(ctx)
	dir.FetchUsers(ctx)
	dir.SendPost(ctx)
	finder.SetInput(allProfileID)
	finder.Search(ctx)

	viewer.Wait()
	dir.Wait()
	finder.Wait()

	p.PrintHeader()
	if err := p.PrintComparison(comparison.Rows()); err != nil {
		return err
	}

	fmt.Fprintln(out, "\nnet/http demo")
	p.PrintPostView(viewer.State())

	fmt.Fprintln(out, "\nresty demo")
	if err := p.PrintDirectory(dir.State()); err != nil {
		return err
	}

	fmt.Fprintln(out, "\nMini project: user profile finder")
	p.PrintProfile(finder.State())

	fmt.Fprintln(out)
	p.PrintFooter()
	return nil
}
