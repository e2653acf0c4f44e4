package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/api-demo/internal/twin"
)

var twinCmd = &cobra.Command{
	Use:   "twin",
	Short: "Serve an in-memory twin of the placeholder API",
	Long: `Serve deterministic placeholder fixtures until interrupted. Point the other
commands at it with --base-url http://localhost:<port>.`,
	RunE: runTwin,
}

var twinFailPaths string

func init() {
	twinCmd.Flags().Int("port", 8080, "Port to listen on")
	twinCmd.Flags().Duration("latency", 0, "Delay added to every API request")
	twinCmd.Flags().StringVar(&twinFailPaths, "fail-path", "", "Comma separated prefix=status faults, e.g. /users=500")
	rootCmd.AddCommand(twinCmd)
}

func parseFailPaths(s string) (map[string]int, error) {
	faults := map[string]int{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		prefix, rawStatus, ok := strings.Cut(part, "=")
		if !ok || !strings.HasPrefix(prefix, "/") {
			return nil, fmt.Errorf("invalid fault %q (want /prefix=status)", part)
		}
		status, err := strconv.Atoi(rawStatus)
		if err != nil || status < 100 || status > 599 {
			return nil, fmt.Errorf("invalid status in fault %q", part)
		}
		faults[prefix] = status
	}
	return faults, nil
}

func runTwin(cmd *cobra.Command, _ []string) error {
	faults, err := parseFailPaths(twinFailPaths)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return serveTwin(ctx, twin.Config{
		Port:      cfg.TwinPort,
		Latency:   cfg.TwinLatency,
		FailPaths: faults,
	})
}

func serveTwin(ctx context.Context, tc twin.Config) error {
	slog.Info("starting twin",
		slog.Int("port", tc.Port),
		slog.Duration("latency", tc.Latency.Round(time.Millisecond)),
		slog.Int("faults", len(tc.FailPaths)),
	)
	return twin.New(tc, slog.Default()).Start(ctx)
}
