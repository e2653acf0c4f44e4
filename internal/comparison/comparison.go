// Package comparison holds the static feature comparison between the two
// client flavours.
package comparison

// Column headers.
const (
	FeatureHeader = "Feature"
	BuiltinHeader = "net/http"
	LibraryHeader = "resty"
)

// Row compares one feature across the built-in and library flavours.
type Row struct {
	Feature string
	Builtin string
	Library string
}

var rows = []Row{
	{Feature: "JSON Parsing", Builtin: "Manual (json.Unmarshal)", Library: "Automatic (SetResult)"},
	{Feature: "Error Handling", Builtin: "Manual status check", Library: "Automatic for 4xx/5xx (IsError)"},
	{Feature: "Request Timeout", Builtin: "Per client or context", Library: "Built-in (SetTimeout)"},
	{Feature: "Installation", Builtin: "Standard library", Library: "go get resty.dev/v3"},
	{Feature: "Browser Support", Builtin: "js/wasm via the Fetch API", Library: "js/wasm through net/http"},
}

// Rows returns the comparison in display order. The slice is a copy.
func Rows() []Row {
	out := make([]Row, len(rows))
	copy(out, rows)
	return out
}

// Headers returns the column headers in display order.
func Headers() []string {
	return []string{FeatureHeader, BuiltinHeader, LibraryHeader}
}

// Cells returns the row as table cells.
func (r Row) Cells() []string {
	return []string{r.Feature, r.Builtin, r.Library}
}
