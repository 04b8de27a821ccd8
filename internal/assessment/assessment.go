package assessment

import (
	"fmt"
	"strings"

	"faersview/internal"
)

// ScoreMin and ScoreMax bound a question score on the form.
const (
	ScoreMin = -10
	ScoreMax = 10
)

// Input is one form submission. Blank scores are nil; Scores and Reasonings
// may be shorter than the question count.
type Input struct {
	PrimaryID   string
	CaseID      string
	PTs         []string
	DrugNames   []string
	Scores      []*int
	Reasonings  []string
	FinalScore  *int
	Outcome     internal.Outcome
	Description string
	Narrative   string
}

// Build constructs the assessment for a submission. A blank score is 0 and a
// blank reasoning is empty; no range checks happen here.
func Build(in Input) internal.Assessment {
	a := internal.Assessment{
		PrimaryID:   in.PrimaryID,
		CaseID:      in.CaseID,
		PTs:         append([]string(nil), in.PTs...),
		DrugNames:   append([]string(nil), in.DrugNames...),
		FinalScore:  deref(in.FinalScore),
		Outcome:     in.Outcome,
		Description: in.Description,
		Narrative:   in.Narrative,
	}
	for i := 0; i < internal.QuestionCount; i++ {
		if i < len(in.Scores) {
			a.Questions[i].Score = deref(in.Scores[i])
		}
		if i < len(in.Reasonings) {
			a.Questions[i].Reasoning = in.Reasonings[i]
		}
	}
	return a
}

// ParseOutcome accepts one of the outcome labels or the empty string.
func ParseOutcome(s string) (internal.Outcome, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return internal.OutcomeNone, nil
	}
	for _, o := range internal.Outcomes {
		if strings.EqualFold(s, string(o)) {
			return o, nil
		}
	}
	return internal.OutcomeNone, fmt.Errorf("unknown outcome %q", s)
}

// ValidateScore is the range check applied when collecting form input.
func ValidateScore(q int, score int) error {
	if score < ScoreMin || score > ScoreMax {
		return fmt.Errorf("q%d score %d out of range [%d, %d]", q, score, ScoreMin, ScoreMax)
	}
	return nil
}

func deref(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
