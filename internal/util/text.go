package util

import (
	"regexp"
	"strings"
)

var reSpaces = regexp.MustCompile(`\s+`)

const bom = "\ufeff"

// NormalizeHeader maps a header cell to its column name: byte-order mark
// stripped, trimmed, lower-cased, inner whitespace joined with underscores.
func NormalizeHeader(input string) string {
	s := strings.TrimPrefix(input, bom)
	s = strings.ToLower(strings.TrimSpace(s))
	return reSpaces.ReplaceAllString(s, "_")
}

// JoinDisplay joins a value with its unit for display, e.g. "58 YR". Empty
// parts are left out.
func JoinDisplay(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, " ")
}

func FirstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func StringPtr(v string) *string {
	return &v
}
