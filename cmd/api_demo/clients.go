package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jonathan/api-demo/internal/fetch"
	"github.com/jonathan/api-demo/internal/flows"
	"github.com/jonathan/api-demo/internal/observability"
	"github.com/jonathan/api-demo/internal/placeholder"
)

const (
	flavorAuto  = "auto"
	flavorFetch = "fetch"
	flavorResty = "resty"
)

func validateFlavor(f string) error {
	switch f {
	case flavorAuto, flavorFetch, flavorResty:
		return nil
	default:
		return fmt.Errorf("unknown client flavour %q (want auto, fetch or resty)", f)
	}
}

// openClients holds the resty clients created by the running command.
var openClients []*placeholder.Client

func newFetchClient() *fetch.Client {
	opts := fetch.DefaultOptions()
	opts.Timeout = cfg.Timeout
	if cfg.UserAgent != "" {
		opts.UserAgent = cfg.UserAgent
	}
	opts.Contracts = cfg.Strict
	c := fetch.NewClient(cfg.BaseURL, opts)
	slog.Debug("using net/http client", slog.String("base_url", c.BaseURL()), slog.Bool("strict", cfg.Strict))
	return c
}

func newRestyClient() *placeholder.Client {
	c := placeholder.NewClient(placeholder.Config{
		BaseURL:   cfg.BaseURL,
		Timeout:   cfg.Timeout,
		UserAgent: cfg.UserAgent,
		Logger:    slog.Default(),
	})
	openClients = append(openClients, c)
	return c
}

// closeClients releases every resty client opened since the last call.
func closeClients() {
	for _, c := range openClients {
		if err := c.Close(); err != nil {
			slog.Warn("failed to close client", slog.Any("error", err))
		}
	}
	openClients = nil
}

// apiFor returns the client for a section. With --client auto the post viewer
// uses net/http and every other section uses resty.
func apiFor(auto string) flows.API {
	flavor := clientFlavor
	if flavor == flavorAuto {
		flavor = auto
	}
	if flavor == flavorFetch {
		return newFetchClient()
	}
	return newRestyClient()
}

func flowOptions(extra ...flows.Option) []flows.Option {
	return append([]flows.Option{flows.WithLogger(slog.Default())}, extra...)
}

func newPrinter(cmd *cobra.Command) *observability.Printer {
	return observability.NewPrinter(cmd.OutOrStdout(), !cfg.NoColor)
}
