package normalize

import (
	"strings"

	"faersview/internal"
)

// SplitMultiValue splits a semicolon-joined cell into trimmed tokens, keeping
// order and duplicates. An empty cell and the literal "NA" both yield an empty
// slice; the source format does not distinguish the two.
func SplitMultiValue(raw string) []string {
	if raw == "" || raw == internal.NA {
		return []string{}
	}
	parts := strings.Split(raw, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}

// SplitField is SplitMultiValue over an optional field. A missing column
// behaves as an empty cell.
func SplitField(v *string) []string {
	return SplitMultiValue(internal.Raw(v))
}

// at returns values[i], or NA when the column is shorter than the sequence.
func at(values []string, i int) string {
	if i < len(values) {
		return values[i]
	}
	return internal.NA
}
