package web

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"faersview/internal"
	"faersview/internal/assessment"
	"faersview/internal/caseview"
	"faersview/internal/locate"
	"faersview/internal/normalize"
	"faersview/internal/session"
	"faersview/internal/table"
	"faersview/internal/util"
)

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	p := s.newPage(sess, searchForm{})
	if p.Source != nil {
		p.add("info", "Enter a Primary ID or Case ID and click Search")
	}
	s.render(w, http.StatusOK, "index.html", p)
}

func (s *Server) handleLoadFile(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	r.Body = http.MaxBytesReader(w, r.Body, int64(s.cfg.MaxUploadMB)<<20)
	file, header, err := r.FormFile("file")
	if err != nil {
		s.loadFailed(w, sess, fmt.Errorf("read upload: %w", err))
		return
	}
	defer file.Close()

	s.load(w, r, sess, func() (*table.Table, error) {
		return table.Load(header.Filename, file)
	})
}

func (s *Server) handleLoadSample(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	s.load(w, r, sess, table.Sample)
}

func (s *Server) handleLoadSheet(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	if s.remote == nil {
		s.sheetsUnavailable(w, sess)
		return
	}
	url := util.FirstNonEmpty(strings.TrimSpace(r.PostFormValue("url")), s.cfg.SheetsDefaultURL)
	s.load(w, r, sess, func() (*table.Table, error) {
		return s.remote.Fetch(r.Context(), url)
	})
}

// handleRefreshSheet drops cached worksheets and reloads the current sheet,
// or the submitted URL when the current table did not come from one.
func (s *Server) handleRefreshSheet(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	if s.remote == nil {
		s.sheetsUnavailable(w, sess)
		return
	}
	s.remote.Invalidate()
	url := strings.TrimSpace(r.PostFormValue("url"))
	if t := sess.Table(); t != nil && t.Source.Kind == internal.SourceGoogleSheets {
		url = t.Source.Name
	}
	url = util.FirstNonEmpty(url, s.cfg.SheetsDefaultURL)
	s.load(w, r, sess, func() (*table.Table, error) {
		return s.remote.Fetch(r.Context(), url)
	})
}

func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	sess.Clear()
	s.sessions.Delete(sess.ID)
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) load(w http.ResponseWriter, r *http.Request, sess *session.Session, fn func() (*table.Table, error)) {
	t, err := sess.Load(fn)
	if err != nil {
		s.loadFailed(w, sess, err)
		return
	}
	s.log.Info().
		Str("session", sess.ID).
		Str("source", string(t.Source.Kind)).
		Str("name", t.Source.Name).
		Int("rows", t.Len()).
		Msg("table loaded")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) loadFailed(w http.ResponseWriter, sess *session.Session, err error) {
	s.log.Warn().Err(err).Str("session", sess.ID).Msg("load failed")
	p := s.newPage(sess, searchForm{})
	p.add("error", "Error loading data: "+err.Error())
	s.render(w, http.StatusBadRequest, "index.html", p)
}

func (s *Server) sheetsUnavailable(w http.ResponseWriter, sess *session.Session) {
	p := s.newPage(sess, searchForm{})
	p.add("error", "Google Sheets is not available: "+p.SheetsReason)
	s.render(w, http.StatusServiceUnavailable, "index.html", p)
}

func (s *Server) handleCase(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	q, filters, err := s.decodeSearch(r.URL.Query())
	if err != nil {
		p := s.newPage(sess, q)
		p.add("error", err.Error())
		s.render(w, http.StatusBadRequest, "index.html", p)
		return
	}
	p := s.newPage(sess, q)
	for i := range p.Filters {
		p.Filters[i].Selected = filters[p.Filters[i].Column]
	}

	key, keyField := q.key()
	res, err := sess.Search(key, keyField, filters)
	if err != nil {
		status := searchStatus(err)
		switch {
		case errors.Is(err, locate.ErrEmptyKey):
			p.add("warning", "Please enter a Primary ID or Case ID to search")
		default:
			p.add("error", err.Error())
		}
		var nf *locate.NotFoundError
		if errors.As(err, &nf) && nf.Narrowed {
			p.add("info", "Tip: try removing the search filters")
		}
		s.render(w, status, "index.html", p)
		return
	}

	v := caseview.Build(res.Row)
	p.View = &v
	p.Matches = res.Matches
	p.add("success", fmt.Sprintf("Found case with %s: %s", keyField.Label(), key))
	if res.Ambiguous() {
		p.add("info", fmt.Sprintf("Found %d matching cases. Showing first result.", res.Matches))
	}
	s.render(w, http.StatusOK, "case.html", p)
}

type caseResponse struct {
	Index   int           `json:"index"`
	Matches int           `json:"matches"`
	View    caseview.View `json:"case"`
}

func (s *Server) handleAPICase(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	q, filters, err := s.decodeSearch(r.URL.Query())
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	key, keyField := q.key()
	res, err := sess.Search(key, keyField, filters)
	if err != nil {
		writeJSON(w, searchStatus(err), map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, caseResponse{Index: res.Index, Matches: res.Matches, View: caseview.Build(res.Row)})
}

func searchStatus(err error) int {
	switch {
	case errors.Is(err, locate.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, session.ErrNoTable):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

// handleAssessment exports an assessment of the case last shown in this session.
func (s *Server) handleAssessment(w http.ResponseWriter, r *http.Request) {
	sess := s.session(w, r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "unable to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}
	var form assessmentForm
	if err := s.decoder.Decode(&form, r.PostForm); err != nil {
		http.Error(w, "unable to parse assessment: "+err.Error(), http.StatusBadRequest)
		return
	}

	res, ok := sess.LastResult()
	if !ok {
		http.Error(w, "search for a case before submitting an assessment", http.StatusConflict)
		return
	}
	row := res.Row
	// The page renders a blank primaryid as NA, so compare display values.
	if form.PrimaryID != "" && form.PrimaryID != internal.Value(row.PrimaryID) {
		http.Error(w, "the displayed case changed, search again before submitting", http.StatusConflict)
		return
	}

	in, err := form.collect()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	in.PrimaryID = internal.Raw(row.PrimaryID)
	in.CaseID = internal.Raw(row.CaseID)
	in.PTs = normalize.Reactions(row)
	in.DrugNames = normalize.DrugNames(normalize.BuildDrugRecords(row))
	in.Narrative = internal.Raw(row.Narrative)
	a := assessment.Build(in)

	var buf bytes.Buffer
	ext, contentType := "csv", "text/csv; charset=utf-8"
	if form.Format == "xlsx" {
		ext, contentType = "xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
		err = assessment.WriteXLSX(&buf, a)
	} else {
		err = assessment.WriteCSV(&buf, a)
	}
	if err != nil {
		s.log.Error().Err(err).Msg("assessment export failed")
		http.Error(w, "export failed", http.StatusInternalServerError)
		return
	}

	s.log.Info().Str("session", sess.ID).Str("primaryid", a.PrimaryID).Str("format", ext).Msg("assessment exported")
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", assessment.FileName(a, ext)))
	_, _ = w.Write(buf.Bytes())
}
