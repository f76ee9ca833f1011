package sheet

import "strings"

// ParseCSV converts a raw CSV export into sparse records. The first non-blank
// line is the header row; every later row contributes one record containing
// only the cells where both the header and the trimmed value are non-empty.
// Rows with no populated cells are dropped. Malformed input never errors, it
// just degrades to fewer records.
//
// encoding/csv is not used here: spreadsheet exports contain blank padding
// lines and ragged rows that it rejects, and the export's quoting must be
// unwound without strict-mode surprises.
func ParseCSV(raw []byte) ([]Record, error) {
	lines := splitLines(string(raw))
	if len(lines) < 2 {
		return []Record{}, nil
	}

	headers := splitFields(lines[0])
	for i := range headers {
		headers[i] = strings.TrimSpace(headers[i])
	}

	records := make([]Record, 0, len(lines)-1)
	for _, line := range lines[1:] {
		fields := splitFields(line)
		rec := Record{}
		for i, h := range headers {
			if h == "" || i >= len(fields) {
				continue
			}
			v := strings.TrimSpace(fields[i])
			if v == "" {
				continue
			}
			rec[h] = v
		}
		if len(rec) > 0 {
			records = append(records, rec)
		}
	}
	return records, nil
}

// splitLines scans CSV text into logical lines. A newline inside a quoted
// field does not terminate the line, a doubled quote is an escaped literal
// and stays doubled for splitFields to unwind, and carriage returns are
// dropped. Blank (all-whitespace) lines are removed, including a dangling
// final one.
func splitLines(s string) []string {
	var lines []string
	var cur strings.Builder
	inQuotes := false
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch == '"':
			if inQuotes && i+1 < len(s) && s[i+1] == '"' {
				cur.WriteString(`""`)
				i++
			} else {
				inQuotes = !inQuotes
				cur.WriteByte(ch)
			}
		case ch == '\r':
			// dropped
		case ch == '\n' && !inQuotes:
			lines = append(lines, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(ch)
		}
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}

	kept := lines[:0]
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			kept = append(kept, line)
		}
	}
	return kept
}

// splitFields splits one logical line on unquoted commas. Enclosing quotes
// are stripped and doubled quotes collapse to one literal quote.
func splitFields(line string) []string {
	var fields []string
	var cur strings.Builder
	inQuotes := false
	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch {
		case ch == '"':
			if inQuotes && i+1 < len(line) && line[i+1] == '"' {
				cur.WriteByte('"')
				i++
			} else {
				inQuotes = !inQuotes
			}
		case ch == ',' && !inQuotes:
			fields = append(fields, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(ch)
		}
	}
	return append(fields, cur.String())
}
