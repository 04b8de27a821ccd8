package table

import (
	"errors"
	"fmt"
	"strings"

	"faersview/internal"
	"faersview/internal/util"
)

// ErrMalformed marks a load failure: nothing from the input is adopted.
var ErrMalformed = errors.New("malformed table")

// Table is an immutable set of case rows in source order.
type Table struct {
	Header []string
	Rows   []internal.CaseRow
	Source internal.TableSource

	columns map[string]struct{}
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Rows)
}

// HasColumn reports whether the input header carried column.
func (t *Table) HasColumn(column string) bool {
	_, ok := t.columns[column]
	return ok
}

// FromRecords builds a table from a header and data rows as read by any
// decoder. Cells past the header are accepted only when blank; fully blank
// rows are skipped.
func FromRecords(header []string, records [][]string, src internal.TableSource) (*Table, error) {
	if len(header) == 0 {
		return nil, fmt.Errorf("%w: missing header row", ErrMalformed)
	}

	names := make([]string, len(header))
	columns := map[string]struct{}{}
	for i, h := range header {
		name := util.NormalizeHeader(h)
		names[i] = name
		if name == "" {
			continue
		}
		if _, dup := columns[name]; dup {
			return nil, fmt.Errorf("%w: duplicate column %q", ErrMalformed, name)
		}
		columns[name] = struct{}{}
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: header row is empty", ErrMalformed)
	}

	rows := make([]internal.CaseRow, 0, len(records))
	for i, rec := range records {
		if isBlank(rec) {
			continue
		}
		if len(rec) > len(names) && !isBlank(rec[len(names):]) {
			return nil, fmt.Errorf("%w: row %d has %d fields, header has %d", ErrMalformed, i+2, len(rec), len(names))
		}
		var row internal.CaseRow
		for j, name := range names {
			if j >= len(rec) {
				break
			}
			row.Set(name, rec[j])
		}
		rows = append(rows, row)
	}

	return &Table{Header: names, Rows: rows, Source: src, columns: columns}, nil
}

func isBlank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
