package sheet

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// gvizWrapperRe matches the setResponse callback wrapper the visualization
// endpoint emits around its JSON body.
var gvizWrapperRe = regexp.MustCompile(`(?s)google\.visualization\.Query\.setResponse\((.*)\);`)

// maxEmptyRun is how many consecutive rows with an empty first column are
// tolerated before the remainder of the tab is treated as trailing blank
// padding and dropped. A genuine mid-table gap of this length would truncate
// real data; see DESIGN.md before changing the threshold.
const maxEmptyRun = 10

type gvizCell struct {
	V any     `json:"v"`
	F *string `json:"f"`
}

type gvizRow struct {
	C []*gvizCell `json:"c"`
}

type gvizCol struct {
	Label string `json:"label"`
}

type gvizResponse struct {
	Table struct {
		Cols []gvizCol `json:"cols"`
		Rows []gvizRow `json:"rows"`
	} `json:"table"`
}

// ParseGviz converts a visualization-JSON export into sparse records. Columns
// with blank labels are ignored. A row whose first labeled column is empty is
// skipped; after maxEmptyRun consecutive skips the rest of the tab is assumed
// to be blank padding and processing stops.
func ParseGviz(raw []byte) ([]Record, error) {
	m := gvizWrapperRe.FindSubmatch(raw)
	if m == nil {
		return nil, errors.New("no setResponse wrapper in visualization payload")
	}

	var resp gvizResponse
	if err := json.Unmarshal(m[1], &resp); err != nil {
		return nil, fmt.Errorf("decoding visualization payload: %w", err)
	}

	type column struct {
		label string
		pos   int
	}
	var cols []column
	for i, c := range resp.Table.Cols {
		if label := strings.TrimSpace(c.Label); label != "" {
			cols = append(cols, column{label: label, pos: i})
		}
	}

	records := []Record{}
	if len(cols) == 0 {
		return records, nil
	}

	emptyRun := 0
	for _, row := range resp.Table.Rows {
		if cellValue(row, cols[0].pos) == nil {
			emptyRun++
			if emptyRun >= maxEmptyRun {
				break
			}
			continue
		}
		emptyRun = 0

		rec := Record{}
		for _, col := range cols {
			if v := cellValue(row, col.pos); v != nil {
				rec[col.label] = v
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

// cellValue returns the effective value of the cell at pos: the raw value if
// present, else the formatted fallback, else nil. Empty strings count as
// absent; zero and false do not.
func cellValue(row gvizRow, pos int) any {
	if pos >= len(row.C) || row.C[pos] == nil {
		return nil
	}
	c := row.C[pos]
	if c.V != nil {
		if s, ok := c.V.(string); ok && s == "" {
			return nil
		}
		return c.V
	}
	if c.F != nil && *c.F != "" {
		return *c.F
	}
	return nil
}
