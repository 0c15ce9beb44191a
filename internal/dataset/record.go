package dataset

import "strings"

// Record is one row of the remote dataset. YMD and NIM are opaque strings
// taken verbatim from the source.
type Record struct {
	Name string `json:"name"`
	YMD  string `json:"YMD"`
	NIM  string `json:"NIM"`
}

// Field names a filterable Record field.
type Field string

const (
	FieldName Field = "name"
	FieldYMD  Field = "YMD"
	FieldNIM  Field = "NIM"
)

// accessors maps each filterable field to its getter. Filtering is restricted
// to this fixed set; unknown fields match nothing.
var accessors = map[Field]func(Record) string{
	FieldName: func(r Record) string { return r.Name },
	FieldYMD:  func(r Record) string { return r.YMD },
	FieldNIM:  func(r Record) string { return r.NIM },
}

// Parse splits raw dataset text into records. The first line is a header and
// is discarded; each remaining line is split on "|" and kept only if it
// yields exactly three fields, which are trimmed and mapped positionally to
// name, YMD, NIM. Malformed lines are dropped silently. Parse is pure: the
// same input always yields the same records in input order.
func Parse(raw string) []Record {
	lines := strings.Split(raw, "\n")
	if len(lines) <= 1 {
		return nil
	}

	records := make([]Record, 0, len(lines)-1)
	for _, line := range lines[1:] {
		columns := strings.Split(line, "|")
		if len(columns) != 3 {
			continue
		}
		records = append(records, Record{
			Name: strings.TrimSpace(columns[0]),
			YMD:  strings.TrimSpace(columns[1]),
			NIM:  strings.TrimSpace(columns[2]),
		})
	}

	return records
}

// Filter keeps records whose field contains query as a case-insensitive
// substring, preserving input order.
func Filter(records []Record, field Field, query string) []Record {
	get, ok := accessors[field]
	if !ok {
		return nil
	}

	query = strings.ToLower(query)
	var matched []Record
	for _, r := range records {
		if strings.Contains(strings.ToLower(get(r)), query) {
			matched = append(matched, r)
		}
	}

	return matched
}
