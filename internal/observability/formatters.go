// Package observability renders flow state for the terminal.
package observability

import (
	"fmt"
	"io"
	"strings"

	gkcolor "github.com/gookit/color"
	"github.com/mattn/go-runewidth"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/jonathan/api-demo/internal/comparison"
	"github.com/jonathan/api-demo/internal/flows"
	"github.com/jonathan/api-demo/internal/outcome"
	"github.com/jonathan/api-demo/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxPostsShown is the number of posts listed under a profile
	maxPostsShown = 6

	titleLimit = 40
	bodyLimit  = 80
)

// Printer writes flow state to a terminal.
type Printer struct {
	out   io.Writer
	color bool
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer, color bool) *Printer {
	return &Printer{out: out, color: color}
}

func (p *Printer) paint(c gkcolor.Color, s string) string {
	if !p.color {
		return s
	}
	return c.Sprint(s)
}

// Truncate cuts s to n terminal columns and marks the cut with "...".
func Truncate(s string, n int) string {
	if runewidth.StringWidth(s) <= n {
		return s
	}
	return runewidth.Truncate(s, n, "") + "..."
}

// padRight pads s with spaces to width terminal columns.
func padRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// wrap breaks s on spaces into lines of at most width columns.
func wrap(s string, width int) []string {
	var lines []string
	var line string
	for _, word := range strings.Fields(s) {
		switch {
		case line == "":
			line = word
		case runewidth.StringWidth(line)+1+runewidth.StringWidth(word) <= width:
			line += " " + word
		default:
			lines = append(lines, line)
			line = word
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string, c gkcolor.Color) {
	inner := boxWidth - 4
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %s │\n", p.paint(c, padRight(title, inner)))
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		line = runewidth.Truncate(line, inner, "...")
		fmt.Fprintf(p.out, "│ %s │\n", padRight(line, inner))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) status(c gkcolor.Color, msg string) {
	fmt.Fprintln(p.out, p.paint(c, msg))
}

// PrintHeader outputs the page banner.
func (p *Printer) PrintHeader() {
	p.printBox("API INTEGRATION IN GO", "net/http, resty & Mini Project", gkcolor.FgCyan)
}

// PrintFooter outputs the page footer.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintFooter() {
	fmt.Fprintln(p.out, p.paint(gkcolor.FgGray, "Built with Go | net/http, resty, chi"))
}

// PrintComparison renders the feature comparison table.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintComparison(rows []comparison.Row) error {
	var buf strings.Builder
	table := tablewriter.NewTable(&buf,
		tablewriter.WithHeaderAutoFormat(tw.Off),
		tablewriter.WithRenderer(renderer.NewBlueprint(tw.Rendition{
			Settings: tw.Settings{Separators: tw.Separators{BetweenRows: tw.On, ShowHeader: tw.On}},
		})))

	headers := comparison.Headers()
	table.Header(p.paint(gkcolor.FgCyan, headers[0]), headers[1], headers[2])
	for _, r := range rows {
		cells := r.Cells()
		cells[0] = p.paint(gkcolor.OpBold, cells[0])
		if err := table.Append(cells); err != nil {
			return fmt.Errorf("error rendering comparison: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("error rendering comparison: %w", err)
	}

	fmt.Fprintln(p.out, p.paint(gkcolor.FgCyan, "net/http vs resty"))
	fmt.Fprint(p.out, buf.String())
	return nil
}

// PrintPostView outputs the single post viewer.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintPostView(st flows.PostViewState) {
	fmt.Fprintf(p.out, "Post ID (1-100): %d\n", st.ID)

	switch st.Outcome.Status {
	case outcome.Loading:
		p.status(gkcolor.FgYellow, "⏳ Loading data...")
	case outcome.Failure:
		p.status(gkcolor.FgRed, "Error: "+st.Outcome.Message)
	case outcome.Success:
		post := st.Outcome.Value
		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("ID:    %d\n", post.ID))
		sb.WriteString(fmt.Sprintf("Title: %s\n", post.Title))
		sb.WriteString("Body:\n")
		for _, line := range wrap(post.Body, boxWidth-6) {
			sb.WriteString("  " + line + "\n")
		}
		p.printBox("POST", strings.TrimSuffix(sb.String(), "\n"), gkcolor.FgGreen)
	}
}

// PrintDirectory outputs the user listing and the last submitted post.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintDirectory(st flows.DirectoryState) error {
	switch st.Users.Status {
	case outcome.Loading:
		p.status(gkcolor.FgYellow, "⏳ Fetching users...")
	case outcome.Failure:
		p.status(gkcolor.FgRed, "❌ "+st.Users.Message)
	case outcome.Success:
		if st.Fetched && len(st.Users.Value) > 0 {
			if err := p.printUsers(st.Users.Value); err != nil {
				return err
			}
		}
	}

	if msg, ok := st.Submit.Err(); ok {
		p.status(gkcolor.FgRed, "❌ "+msg)
	}
	if st.LastCreated != nil {
		c := st.LastCreated
		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("ID:    %d\n", c.ID))
		sb.WriteString(fmt.Sprintf("Title: %s\n", c.Title))
		sb.WriteString(fmt.Sprintf("Body:  %s", c.Body))
		p.printBox("✅ POST CREATED SUCCESSFULLY", sb.String(), gkcolor.FgGreen)
	}
	return nil
}

//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printUsers(users []types.User) error {
	var buf strings.Builder
	table := tablewriter.NewTable(&buf,
		tablewriter.WithHeaderAutoFormat(tw.Off),
		tablewriter.WithRenderer(renderer.NewBlueprint(tw.Rendition{
			Settings: tw.Settings{Separators: tw.Separators{ShowHeader: tw.On}},
		})))
	table.Header(p.paint(gkcolor.FgCyan, "Name"), "Email", "Website", "Company")

	data := make([][]string, len(users))
	for i, u := range users {
		data[i] = []string{u.Name, u.Email, u.Website, u.Company.Name}
	}
	if err := table.Bulk(data); err != nil {
		return fmt.Errorf("error rendering users: %w", err)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("error rendering users: %w", err)
	}
	fmt.Fprint(p.out, buf.String())
	return nil
}

// PrintProfile outputs the profile finder: the user card and up to six posts.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintProfile(st flows.ProfileState) {
	switch st.Phase {
	case flows.PhaseSearching:
		p.status(gkcolor.FgYellow, "⏳ Fetching user data and posts...")
	case flows.PhaseNotFound:
		p.status(gkcolor.FgRed, "❌ "+st.Err)
	case flows.PhaseFound:
		if st.Profile == nil {
			return
		}
		u := st.Profile
		var sb strings.Builder
		sb.WriteString(fmt.Sprintf("Email:    %s\n", u.Email))
		sb.WriteString(fmt.Sprintf("Phone:    %s\n", u.Phone))
		sb.WriteString(fmt.Sprintf("Website:  %s\n", u.Website))
		sb.WriteString(fmt.Sprintf("Company:  %s\n", u.Company.Name))
		sb.WriteString(fmt.Sprintf("City:     %s", u.Address.City))
		p.printBox(fmt.Sprintf("(%s) %s", u.Initial(), u.Name), sb.String(), gkcolor.FgGreen)

		fmt.Fprintln(p.out, p.paint(gkcolor.OpBold, fmt.Sprintf("Posts by %s (%d)", u.Name, len(st.Posts))))
		for _, post := range st.Posts[:min(maxPostsShown, len(st.Posts))] {
			fmt.Fprintf(p.out, "  • %s\n", Truncate(post.Title, titleLimit))
			fmt.Fprintf(p.out, "    %s\n", p.paint(gkcolor.FgGray, Truncate(post.Body, bodyLimit)))
		}
	}
}
