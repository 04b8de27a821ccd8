package normalize

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplitMultiValue(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty", input: "", want: []string{}},
		{name: "na literal", input: "NA", want: []string{}},
		{name: "lowercase na is a value", input: "na", want: []string{"na"}},
		{name: "padded separators", input: "1 ; 4 ; 2", want: []string{"1", "4", "2"}},
		{name: "no spaces", input: "PS;SS;C", want: []string{"PS", "SS", "C"}},
		{name: "duplicates kept", input: "Hypertension ; Hypertension", want: []string{"Hypertension", "Hypertension"}},
		{name: "single", input: "ERIVEDGE", want: []string{"ERIVEDGE"}},
		{name: "empty tokens kept", input: "a ; ; b", want: []string{"a", "", "b"}},
		{name: "inner na token kept", input: "Other ; NA", want: []string{"Other", "NA"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SplitMultiValue(tc.input)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("SplitMultiValue(%q) mismatch (-want +got):\n%s", tc.input, diff)
			}
		})
	}
}

func TestSplitMultiValueEmptyAndNAMatch(t *testing.T) {
	if len(SplitMultiValue("")) != 0 || len(SplitMultiValue("NA")) != 0 {
		t.Fatalf("empty and NA must both split to nothing")
	}
}

func TestSplitFieldNil(t *testing.T) {
	if got := SplitField(nil); len(got) != 0 {
		t.Fatalf("got %v", got)
	}
}
