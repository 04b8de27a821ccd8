package web

import (
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/dustin/go-humanize"

	"faersview/internal"
	"faersview/internal/assessment"
	"faersview/internal/caseview"
	"faersview/internal/session"
	"faersview/internal/table"
)

var funcs = template.FuncMap{
	"comma": func(n int) string { return humanize.Comma(int64(n)) },
	"ago":   humanize.Time,
}

type flash struct {
	Kind string // success, info, warning or error
	Text string
}

type filterOption struct {
	Column   string
	Values   []string
	Selected string
}

type page struct {
	Flashes []flash

	Source    *internal.TableSource
	Stats     table.Stats
	Filters   []filterOption
	SampleIDs []table.SampleID

	SheetsAvailable bool
	SheetsReason    string
	SheetsURL       string

	Query     searchForm
	View      *caseview.View
	Matches   int
	Questions []int
	Outcomes  []internal.Outcome
	ScoreMin  int
	ScoreMax  int
}

func (p *page) add(kind, text string) {
	p.Flashes = append(p.Flashes, flash{Kind: kind, Text: text})
}

// newPage fills the parts shared by every page from the session.
func (s *Server) newPage(sess *session.Session, q searchForm) *page {
	p := &page{
		SheetsAvailable: s.remote != nil,
		SheetsURL:       s.cfg.SheetsDefaultURL,
		Query:           q,
		ScoreMin:        assessment.ScoreMin,
		ScoreMax:        assessment.ScoreMax,
		Outcomes:        internal.Outcomes,
	}
	if s.remoteErr != nil {
		p.SheetsReason = s.remoteErr.Error()
	}
	for i := 1; i <= internal.QuestionCount; i++ {
		p.Questions = append(p.Questions, i)
	}

	t := sess.Table()
	if t == nil {
		return p
	}
	src := t.Source
	p.Source = &src
	if src.Kind == internal.SourceGoogleSheets {
		p.SheetsURL = src.Name
	}
	p.Stats = t.Stats()
	p.SampleIDs = t.SampleIDs(3)
	for _, column := range s.cfg.FilterColumns {
		if !t.HasColumn(column) {
			continue
		}
		p.Filters = append(p.Filters, filterOption{Column: column, Values: t.Values(column)})
	}
	return p
}

func (s *Server) render(w http.ResponseWriter, status int, name string, p *page) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := s.tmpl.ExecuteTemplate(w, name, p); err != nil {
		s.log.Error().Err(err).Str("template", name).Msg("render failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
