package web

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"faersview/internal"
	"faersview/internal/assessment"
	"faersview/internal/locate"
)

type searchForm struct {
	PrimaryID string `schema:"primaryid"`
	CaseID    string `schema:"caseid"`
}

// key picks the search key. Primary ID wins when both are given.
func (f searchForm) key() (string, locate.KeyField) {
	if f.PrimaryID != "" {
		return f.PrimaryID, locate.ByPrimaryID
	}
	return f.CaseID, locate.ByCaseID
}

type questionForm struct {
	Score     string `schema:"score"`
	Reasoning string `schema:"reasoning"`
}

type assessmentForm struct {
	PrimaryID   string         `schema:"primaryid"`
	Questions   []questionForm `schema:"q"`
	FinalScore  string         `schema:"final_score"`
	Outcome     string         `schema:"outcome"`
	Description string         `schema:"description"`
	Format      string         `schema:"format"`
}

func (s *Server) decodeSearch(values url.Values) (searchForm, locate.Filters, error) {
	var f searchForm
	if err := s.decoder.Decode(&f, values); err != nil {
		return f, nil, fmt.Errorf("decode search: %w", err)
	}
	f.PrimaryID = strings.TrimSpace(f.PrimaryID)
	f.CaseID = strings.TrimSpace(f.CaseID)

	filters := locate.Filters{}
	for _, column := range s.cfg.FilterColumns {
		if v := values.Get(column); v != "" {
			filters[column] = v
		}
	}
	return f, filters, nil
}

// collect validates the submitted scores and converts the form to builder input.
// Case fields are filled in by the caller.
func (f assessmentForm) collect() (assessment.Input, error) {
	var in assessment.Input
	if len(f.Questions) > internal.QuestionCount {
		return in, fmt.Errorf("at most %d questions, got %d", internal.QuestionCount, len(f.Questions))
	}
	for i, q := range f.Questions {
		score, err := parseScore(q.Score)
		if err != nil {
			return in, fmt.Errorf("q%d score: %w", i+1, err)
		}
		if score != nil {
			if err := assessment.ValidateScore(i+1, *score); err != nil {
				return in, err
			}
		}
		in.Scores = append(in.Scores, score)
		in.Reasonings = append(in.Reasonings, q.Reasoning)
	}

	final, err := parseScore(f.FinalScore)
	if err != nil {
		return in, fmt.Errorf("final score: %w", err)
	}
	in.FinalScore = final

	outcome, err := assessment.ParseOutcome(f.Outcome)
	if err != nil {
		return in, err
	}
	in.Outcome = outcome
	in.Description = f.Description
	return in, nil
}

func parseScore(s string) (*int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("not a whole number: %q", s)
	}
	return &n, nil
}
