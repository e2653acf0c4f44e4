// Package main provides the entry point for the api_demo CLI.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/api-demo/internal/config"
	"github.com/jonathan/api-demo/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "api_demo",
	Short: "HTTP client demo against a placeholder REST API",
	Long: "api_demo compares the net/http and resty client flavours against the placeholder REST API " +
		"and combines two concurrent requests into a user profile view.",
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

var (
	configFile   string
	envFile      string
	clientFlavor string

	// cfg is resolved by setup before any subcommand runs.
	cfg *config.Config
)

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "Path to JSON config file")
	pf.StringVar(&envFile, "env-file", "", "Path to a dotenv file with API_DEMO_* settings")
	pf.StringVar(&clientFlavor, "client", flavorAuto, "Client flavour: auto, fetch or resty")
	pf.String("base-url", config.DefaultBaseURL, "Base URL of the placeholder API")
	pf.Duration("timeout", 10*time.Second, "Request timeout")
	pf.String("user-agent", "", "User-Agent header (defaults per client flavour)")
	pf.String("log-level", "warn", "Log level: debug, info, warn or error")
	pf.Bool("strict", false, "Validate net/http responses against the embedded JSON schemas")
	pf.Bool("no-color", false, "Disable coloured output")
}

func setup(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(config.LoadOptions{
		ConfigFile: configFile,
		EnvFile:    envFile,
		Flags:      cmd.Flags(),
	})
	if err != nil {
		return err
	}
	if err := validateFlavor(clientFlavor); err != nil {
		return err
	}
	if _, err := logging.Setup(cmd.ErrOrStderr(), loaded.LogLevel, loaded.NoColor); err != nil {
		return err
	}
	cfg = loaded
	return nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
