package main

import (
	"github.com/spf13/cobra"

	"github.com/jonathan/api-demo/internal/flows"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List every user",
	RunE:  runUsers,
}

var sendPostCmd = &cobra.Command{
	Use:   "send-post",
	Short: "Submit the fixed demo post",
	Long:  "Send POST /posts with the fixed demo payload and print the record the API echoes back.",
	RunE:  runSendPost,
}

func init() {
	rootCmd.AddCommand(usersCmd)
	rootCmd.AddCommand(sendPostCmd)
}

func runUsers(cmd *cobra.Command, _ []string) error {
	defer closeClients()

	dir := flows.NewUserDirectory(apiFor(flavorResty), flowOptions()...)
	dir.FetchUsers(cmd.Context())
	dir.Wait()
	return newPrinter(cmd).PrintDirectory(dir.State())
}

func runSendPost(cmd *cobra.Command, _ []string) error {
	defer closeClients()

	dir := flows.NewUserDirectory(apiFor(flavorResty), flowOptions()...)
	dir.SendPost(cmd.Context())
	dir.Wait()
	return newPrinter(cmd).PrintDirectory(dir.State())
}
