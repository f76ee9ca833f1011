package sheet

import "fmt"

// Record is one spreadsheet row as a sparse key-value object. A key is
// present only when the source cell held a non-empty value, so consumers
// never see empty strings or nulls.
type Record map[string]any

// Format selects which export payload the extractor expects.
type Format string

const (
	// FormatCSV parses the plain CSV text export.
	FormatCSV Format = "csv"
	// FormatGviz parses the visualization-JSON export (setResponse wrapper).
	FormatGviz Format = "gviz"
)

// Parser converts one raw tab export into an ordered list of records,
// matching source row order.
type Parser func(raw []byte) ([]Record, error)

// ParserFor returns the parser for an export format.
func ParserFor(f Format) (Parser, error) {
	switch f {
	case FormatCSV:
		return ParseCSV, nil
	case FormatGviz:
		return ParseGviz, nil
	default:
		return nil, fmt.Errorf("unknown export format %q (want csv or gviz)", f)
	}
}

// TabMapping binds a spreadsheet tab name to its key in the snapshot output.
type TabMapping struct {
	Name string
	Key  string
}

// Tabs is the complete ordered set of tabs a snapshot is built from. Assembly
// is keyed by Key, not by position, so reordering this table only changes
// fetch order. Tab names must match the source spreadsheet exactly.
var Tabs = []TabMapping{
	{Name: "Summary", Key: "summary"},
	{Name: "Revenue", Key: "revenue"},
	{Name: "Expenses", Key: "expenses"},
	{Name: "Headcount", Key: "headcount"},
	{Name: "Milestones", Key: "milestones"},
	{Name: "Risks", Key: "risks"},
	{Name: "KPIs", Key: "kpis"},
}

// TabByName looks up a mapping by its spreadsheet tab name.
func TabByName(name string) (TabMapping, bool) {
	for _, t := range Tabs {
		if t.Name == name {
			return t, true
		}
	}
	return TabMapping{}, false
}
