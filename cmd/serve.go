package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/curiata/coreiq/internal/catalogue"
	"github.com/curiata/coreiq/internal/evidence"
	"github.com/curiata/coreiq/internal/export"
	"github.com/curiata/coreiq/internal/model"
	"github.com/curiata/coreiq/internal/report"
	"github.com/curiata/coreiq/internal/scoring"
	"github.com/curiata/coreiq/internal/store"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		st, err := initStore(ctx)
		if err != nil {
			return err
		}
		defer st.Close() //nolint:errcheck
		if err := st.Migrate(ctx); err != nil {
			return err
		}

		cat, err := initCatalogue()
		if err != nil {
			return err
		}
		ev, err := initEvidence()
		if err != nil {
			return err
		}

		var signer *evidence.Signer
		if cfg.Evidence.Secret != "" {
			signer, err = evidence.NewSigner(cfg.Evidence.Secret)
			if err != nil {
				return err
			}
		}

		api := &apiServer{
			store:     st,
			catalogue: cat,
			evidence:  ev,
			signer:    signer,
			urlTTL:    time.Duration(cfg.Evidence.URLTTLSecs) * time.Second,
		}

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: api.routes(),
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			srv.Shutdown(ctx)
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

type apiServer struct {
	store     store.Store
	catalogue *catalogue.Catalogue
	evidence  *evidence.FileStore
	signer    *evidence.Signer
	urlTTL    time.Duration
}

func (s *apiServer) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/audits", func(r chi.Router) {
		r.Get("/", s.handleListAudits)
		r.Post("/", s.handleCreateAudit)
		r.Route("/{auditID}", func(r chi.Router) {
			r.Get("/", s.handleGetAudit)
			r.Post("/answers", s.handleAnswer)
			r.Get("/scores", s.handleScores)
			r.Get("/report", s.handleReport)
			r.Get("/export.csv", s.handleExportCSV)
			r.Get("/export.jsonl", s.handleExportJSONL)
			r.Get("/attachments/{attachmentID}/url", s.handleSignAttachment)
		})
	})

	r.Get("/evidence", s.handleEvidenceDownload)

	return r
}

func (s *apiServer) handleListAudits(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := store.AuditFilter{
		Client:          q.Get("client"),
		IncludeArchived: q.Get("archived") == "true",
	}
	if v := q.Get("limit"); v != "" {
		filter.Limit, _ = strconv.Atoi(v)
	}

	audits, err := s.store.ListAudits(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if audits == nil {
		audits = []model.Audit{}
	}
	writeJSON(w, http.StatusOK, audits)
}

func (s *apiServer) handleCreateAudit(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Client   string   `json:"client"`
		Title    string   `json:"title"`
		Industry string   `json:"industry"`
		Scope    []string `json:"scope"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, eris.New("invalid request body"))
		return
	}

	scope := make(map[model.FunctionName]bool)
	if len(req.Scope) == 0 {
		for _, fn := range model.FunctionOrder {
			scope[fn] = true
		}
	}
	for _, name := range req.Scope {
		fn := model.FunctionName(name)
		if !fn.Valid() {
			writeError(w, http.StatusBadRequest, eris.Errorf("unknown function: %s", name))
			return
		}
		scope[fn] = true
	}

	a, err := model.NewAudit(req.Client, req.Title, scope)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	a.Industry = req.Industry

	if err := s.store.SaveAudit(r.Context(), a); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusCreated, a)
}

func (s *apiServer) handleGetAudit(w http.ResponseWriter, r *http.Request) {
	a, ok := s.loadAudit(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (s *apiServer) handleAnswer(w http.ResponseWriter, r *http.Request) {
	a, ok := s.loadAudit(w, r)
	if !ok {
		return
	}
	if a.NDA != model.NDASigned {
		writeError(w, http.StatusConflict, eris.Errorf("answers require a signed NDA; current status is %s", a.NDA))
		return
	}

	var req struct {
		Function  string  `json:"fn"`
		Component string  `json:"component"`
		Key       string  `json:"key"`
		Score     *int    `json:"score"`
		Note      *string `json:"note"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, eris.New("invalid request body"))
		return
	}
	if req.Score != nil && (*req.Score < 0 || *req.Score > 5) {
		writeError(w, http.StatusBadRequest, eris.Errorf("score must be between 0 and 5, got %d", *req.Score))
		return
	}

	fn := model.FunctionName(req.Function)
	comp := model.ComponentName(req.Component)
	if !fn.Valid() || !comp.Valid() {
		writeError(w, http.StatusBadRequest, eris.New("unknown function or component"))
		return
	}
	if !a.Scope[fn] {
		writeError(w, http.StatusConflict, eris.Errorf("function %s is not in scope", fn))
		return
	}

	if err := a.SetAnswer(fn, comp, req.Key, req.Score, req.Note); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if a.Status == model.StatusDraft {
		a.Status = model.StatusInProgress
	}
	if err := s.store.SaveAudit(r.Context(), a); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (s *apiServer) handleScores(w http.ResponseWriter, r *http.Request) {
	a, ok := s.loadAudit(w, r)
	if !ok {
		return
	}
	res := scoring.Compute(a)
	writeJSON(w, http.StatusOK, map[string]any{
		"per_function":  res.PerFunction,
		"per_component": res.PerComponent,
		"overall":       res.Overall,
		"band":          scoring.BandFor(res.Overall),
	})
}

func (s *apiServer) handleReport(w http.ResponseWriter, r *http.Request) {
	a, ok := s.loadAudit(w, r)
	if !ok {
		return
	}
	if a.NDA != model.NDASigned {
		writeError(w, http.StatusConflict, eris.Errorf("report compilation requires a signed NDA; current status is %s", a.NDA))
		return
	}
	writeJSON(w, http.StatusOK, report.Compile(a, time.Now()))
}

func (s *apiServer) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	a, ok := s.loadAudit(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="coreiq_full_export.csv"`)
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, export.CSV(s.catalogue, a))
}

func (s *apiServer) handleExportJSONL(w http.ResponseWriter, r *http.Request) {
	a, ok := s.loadAudit(w, r)
	if !ok {
		return
	}
	jsonl, err := export.JSONL(s.catalogue, a, time.Now())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "application/jsonl")
	w.Header().Set("Content-Disposition", `attachment; filename="coreiq_full_export.jsonl"`)
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, jsonl)
}

func (s *apiServer) handleSignAttachment(w http.ResponseWriter, r *http.Request) {
	if s.signer == nil {
		writeError(w, http.StatusNotImplemented, eris.New("evidence signing secret not configured"))
		return
	}
	a, ok := s.loadAudit(w, r)
	if !ok {
		return
	}

	attID := chi.URLParam(r, "attachmentID")
	var att *model.Attachment
	for _, list := range a.Attachments {
		for i := range list {
			if list[i].ID == attID {
				att = &list[i]
			}
		}
	}
	if att == nil || att.StoragePath == "" {
		writeError(w, http.StatusNotFound, eris.Errorf("attachment not found: %s", attID))
		return
	}

	exp, sig := s.signer.Sign(att.StoragePath, s.urlTTL, time.Now())
	q := url.Values{}
	q.Set("path", att.StoragePath)
	q.Set("exp", strconv.FormatInt(exp, 10))
	q.Set("sig", sig)
	writeJSON(w, http.StatusOK, map[string]any{
		"url": "/evidence?" + q.Encode(),
		"exp": exp,
	})
}

func (s *apiServer) handleEvidenceDownload(w http.ResponseWriter, r *http.Request) {
	if s.signer == nil {
		writeError(w, http.StatusNotImplemented, eris.New("evidence signing secret not configured"))
		return
	}
	q := r.URL.Query()
	path := q.Get("path")
	exp, err := strconv.ParseInt(q.Get("exp"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, eris.New("invalid exp"))
		return
	}
	if err := s.signer.Verify(path, exp, q.Get("sig"), time.Now()); err != nil {
		writeError(w, http.StatusForbidden, err)
		return
	}

	f, err := s.evidence.Open(path)
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	defer f.Close() //nolint:errcheck

	w.Header().Set("Content-Type", "application/octet-stream")
	w.WriteHeader(http.StatusOK)
	io.Copy(w, f)
}

func (s *apiServer) loadAudit(w http.ResponseWriter, r *http.Request) (*model.Audit, bool) {
	a, err := s.store.GetAudit(r.Context(), chi.URLParam(r, "auditID"))
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return nil, false
	}
	return a, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Error("write response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
