package web

import (
	"context"
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/schema"
	"github.com/rs/zerolog"

	"faersview/internal/config"
	"faersview/internal/session"
	"faersview/internal/table"
)

const sessionCookie = "faersview_session"

//go:embed templates/*.html
var templateFS embed.FS

// Remote is the Google Sheets source. Invalidate forgets cached worksheets.
type Remote interface {
	Fetch(ctx context.Context, url string) (*table.Table, error)
	Invalidate()
}

type Server struct {
	cfg      config.Config
	log      zerolog.Logger
	sessions *session.Store
	remote   Remote
	// remoteErr explains why remote is nil.
	remoteErr error

	tmpl    *template.Template
	decoder *schema.Decoder
}

// New builds the handler set. remote may be nil, in which case sheet loading
// reports remoteErr to the user.
func New(cfg config.Config, log zerolog.Logger, sessions *session.Store, remote Remote, remoteErr error) (*Server, error) {
	tmpl, err := template.New("").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	return &Server{
		cfg:       cfg,
		log:       log,
		sessions:  sessions,
		remote:    remote,
		remoteErr: remoteErr,
		tmpl:      tmpl,
		decoder:   dec,
	}, nil
}

func (s *Server) Handler() http.Handler {
	r := mux.NewRouter().StrictSlash(true)
	r.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	r.HandleFunc("/load/file", s.handleLoadFile).Methods(http.MethodPost)
	r.HandleFunc("/load/sample", s.handleLoadSample).Methods(http.MethodPost)
	r.HandleFunc("/load/sheet", s.handleLoadSheet).Methods(http.MethodPost)
	r.HandleFunc("/load/sheet/refresh", s.handleRefreshSheet).Methods(http.MethodPost)
	r.HandleFunc("/clear", s.handleClear).Methods(http.MethodPost)
	r.HandleFunc("/case", s.handleCase).Methods(http.MethodGet)
	r.HandleFunc("/api/case", s.handleAPICase).Methods(http.MethodGet)
	r.HandleFunc("/assessment", s.handleAssessment).Methods(http.MethodPost)
	r.HandleFunc("/healthz", s.handleHealthz).Methods(http.MethodGet)
	return s.logRequests(r)
}

// ListenAndServe serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.ListenAddr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	s.log.Info().Str("addr", s.cfg.ListenAddr).Msg("listening")

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// session returns the caller's session, issuing a cookie for a new one.
func (s *Server) session(w http.ResponseWriter, r *http.Request) *session.Session {
	id := ""
	if c, err := r.Cookie(sessionCookie); err == nil {
		id = c.Value
	}
	sess, created := s.sessions.Get(id)
	if created {
		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookie,
			Value:    sess.ID,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
	}
	return sess
}
