package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/api-demo/internal/comparison"
	"github.com/jonathan/api-demo/internal/flows"
	"github.com/jonathan/api-demo/internal/observability"
	"github.com/jonathan/api-demo/internal/outcome"
)

var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Drive every flow interactively",
	Long: `Read commands line by line and drive one instance of every flow.
Requests run in the background; "wait" joins them and "state" prints every flow.`,
	RunE: runSession,
}

var sessionLegacyRace bool

func init() {
	sessionCmd.Flags().BoolVar(&sessionLegacyRace, "legacy-race", false, "Let the last post response to arrive win")
	rootCmd.AddCommand(sessionCmd)
}

const sessionHelp = `commands:
  post N      load post N
  users       fetch the user list
  send        submit the demo post
  search N    search the profile of user N
  reset       reset the profile finder
  compare     print the comparison table
  wait        wait for requests in flight
  state       print every flow
  help        show this help
  quit        leave the session`

type session struct {
	out     io.Writer
	printer *observability.Printer

	viewer *flows.PostViewer
	dir    *flows.UserDirectory
	finder *flows.ProfileFinder
}

func runSession(cmd *cobra.Command, _ []string) error {
	defer closeClients()

	policy := outcome.LatestIssued
	if sessionLegacyRace {
		policy = outcome.LastResolved
	}
	s := &session{
		out:     cmd.OutOrStdout(),
		printer: newPrinter(cmd),
		viewer:  flows.NewPostViewer(apiFor(flavorFetch), flowOptions(flows.WithPolicy(policy))...),
		dir:     flows.NewUserDirectory(apiFor(flavorResty), flowOptions()...),
		finder:  flows.NewProfileFinder(apiFor(flavorResty), flowOptions()...),
	}
	return s.run(cmd.Context(), cmd.InOrStdin())
}

//nolint:errcheck // writing to stdout; errors are not recoverable
func (s *session) run(ctx context.Context, in io.Reader) error {
	defer s.wait()

	s.viewer.Mount(ctx)
	scanner := bufio.NewScanner(in)
	fmt.Fprint(s.out, "> ")
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) > 0 {
			quit, err := s.exec(ctx, fields[0], fields[1:])
			if err != nil {
				fmt.Fprintf(s.out, "error: %v\n", err)
			}
			if quit {
				return nil
			}
		}
		fmt.Fprint(s.out, "> ")
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read session input: %w", err)
	}
	return nil
}

func (s *session) wait() {
	s.viewer.Wait()
	s.dir.Wait()
	s.finder.Wait()
}

//nolint:errcheck // writing to stdout; errors are not recoverable
func (s *session) exec(ctx context.Context, name string, args []string) (bool, error) {
	switch name {
	case "post":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: post N")
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return false, fmt.Errorf("invalid post id %q", args[0])
		}
		s.viewer.SetID(ctx, id)
		s.printer.PrintPostView(s.viewer.State())
	case "users":
		s.dir.FetchUsers(ctx)
		return false, s.printer.PrintDirectory(s.dir.State())
	case "send":
		s.dir.SendPost(ctx)
		return false, s.printer.PrintDirectory(s.dir.State())
	case "search":
		input := ""
		if len(args) > 0 {
			input = args[0]
		}
		s.finder.SetInput(input)
		if !s.finder.Search(ctx) {
			fmt.Fprintln(s.out, "Enter a User ID (1-10).")
			return false, nil
		}
		s.printer.PrintProfile(s.finder.State())
	case "reset":
		s.finder.Reset()
		fmt.Fprintln(s.out, "Profile finder reset.")
	case "compare":
		return false, s.printer.PrintComparison(comparison.Rows())
	case "wait":
		s.wait()
	case "state":
		s.printer.PrintPostView(s.viewer.State())
		if err := s.printer.PrintDirectory(s.dir.State()); err != nil {
			return false, err
		}
		st := s.finder.State()
		fmt.Fprintf(s.out, "Profile: %s (input %q)\n", st.Phase, st.Input)
		s.printer.PrintProfile(st)
	case "help":
		fmt.Fprintln(s.out, sessionHelp)
	case "quit", "exit":
		return true, nil
	default:
		return false, fmt.Errorf("unknown command %q, try help", name)
	}
	return false, nil
}
