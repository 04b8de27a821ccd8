package locate

import (
	"errors"
	"fmt"

	"faersview/internal"
	"faersview/internal/table"
)

// FilterAll is the filter value that matches every row.
const FilterAll = "All"

type KeyField string

const (
	ByPrimaryID KeyField = internal.ColPrimaryID
	ByCaseID    KeyField = internal.ColCaseID
)

var (
	ErrNotFound        = errors.New("case not found")
	ErrEmptyKey        = errors.New("enter a Primary ID or Case ID to search")
	ErrUnknownKeyField = errors.New("unknown key field")
)

// Filters maps a column name to the value it must equal.
type Filters map[string]string

type Result struct {
	Row      internal.CaseRow
	Index    int
	Matches  int
	KeyField KeyField
	Key      string
}

// Ambiguous reports whether more than one row matched the key.
func (r Result) Ambiguous() bool {
	return r.Matches > 1
}

// NotFoundError carries a lookup miss. Narrowed is set when the filters
// excluded rows, so the caller can suggest removing them.
type NotFoundError struct {
	KeyField KeyField
	Key      string
	Narrowed bool
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no case found with %s %s", e.KeyField.Label(), e.Key)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

func (k KeyField) Label() string {
	switch k {
	case ByPrimaryID:
		return "Primary ID"
	case ByCaseID:
		return "Case ID"
	default:
		return string(k)
	}
}

func ParseKeyField(s string) (KeyField, error) {
	switch KeyField(s) {
	case ByPrimaryID, ByCaseID:
		return KeyField(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKeyField, s)
	}
}

// Find returns the first row, in table order, whose keyField equals key
// exactly and which passes every filter. The scan is linear.
func Find(t *table.Table, key string, keyField KeyField, filters Filters) (Result, error) {
	if _, err := ParseKeyField(string(keyField)); err != nil {
		return Result{}, err
	}
	if key == "" {
		return Result{}, ErrEmptyKey
	}

	res := Result{Index: -1, KeyField: keyField, Key: key}
	narrowed := false
	for i := 0; i < t.Len(); i++ {
		row := &t.Rows[i]
		if !filters.Match(row) {
			narrowed = true
			continue
		}
		if cell(row, string(keyField)) != key {
			continue
		}
		if res.Matches == 0 {
			res.Row = *row
			res.Index = i
		}
		res.Matches++
	}

	if res.Matches == 0 {
		return Result{}, &NotFoundError{KeyField: keyField, Key: key, Narrowed: narrowed}
	}
	return res, nil
}

// Match reports whether row passes every filter. A filter whose value is All
// or empty is ignored.
func (f Filters) Match(row *internal.CaseRow) bool {
	for column, want := range f {
		if want == FilterAll || want == "" {
			continue
		}
		if cell(row, column) != cellText(want) {
			return false
		}
	}
	return true
}

// cell is the comparable text of a column. Missing cells and the NA literal
// compare as the empty string.
func cell(row *internal.CaseRow, column string) string {
	v, _ := row.Get(column)
	return cellText(v)
}

func cellText(v string) string {
	if v == internal.NA {
		return ""
	}
	return v
}
