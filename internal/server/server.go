// Package server runs the local development server for interactive design.
// Every request reloads the project spec from disk and recomputes the
// analysis, so edits to aircraft.yaml show up on the next refresh.
package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/prahaas123/RC-Plane-Calculator/internal/config"
	"github.com/prahaas123/RC-Plane-Calculator/pkg/analysis"
	"github.com/prahaas123/RC-Plane-Calculator/pkg/render"
	"github.com/prahaas123/RC-Plane-Calculator/pkg/scene2d"
	"github.com/prahaas123/RC-Plane-Calculator/pkg/spec"
	"github.com/prahaas123/RC-Plane-Calculator/pkg/validation"
)

// Server serves analysis results for one project directory.
type Server struct {
	projectPath string
	cfg         config.Config
	logger      *log.Logger
}

// New creates a server for the given project directory.
func New(projectPath string, cfg config.Config, logger *log.Logger) *Server {
	return &Server{
		projectPath: projectPath,
		cfg:         cfg,
		logger:      logger,
	}
}

// Start launches the HTTP server and blocks.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Server.Port)
	s.logger.Info("server starting", "addr", "http://localhost"+addr, "project", s.projectPath)

	return http.ListenAndServe(addr, s.routes())
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/api/spec", s.handleSpec)
	r.Get("/api/validation", s.handleValidation)
	r.Get("/api/analysis", s.handleAnalysis)
	r.Get("/api/scene", s.handleScene)
	r.Get("/api/scene.svg", s.handleSceneSVG)
	r.Get("/", s.handleIndex)

	return r
}

// load reads the spec fresh from disk and applies tool defaults.
func (s *Server) load() (*spec.AircraftSpec, *validation.Report, error) {
	aircraft, err := spec.LoadProject(s.projectPath)
	if err != nil {
		return nil, nil, err
	}
	s.cfg.ApplyDefaults(aircraft)
	return aircraft, validation.ValidateSchema(aircraft), nil
}

// resolve loads and fully analyzes the project.
func (s *Server) resolve() (*spec.AircraftSpec, *analysis.ResolvedAircraft, *validation.Report, error) {
	aircraft, report, err := s.load()
	if err != nil {
		return nil, nil, nil, err
	}
	if !report.Valid {
		return aircraft, nil, report, nil
	}

	resolved, analyticalReport, err := analysis.Resolve(aircraft)
	if err != nil {
		return aircraft, nil, report, err
	}
	report.Merge(analyticalReport)
	return aircraft, resolved, report, nil
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, `<!DOCTYPE html>
<html><head><title>planecalc</title></head>
<body style="margin:0;background:#111;color:#fff;font-family:system-ui;display:flex;align-items:center;justify-content:center;height:100vh">
<div style="text-align:center">
<h1>planecalc</h1>
<p>Planform drawing: <a href="/api/scene.svg" style="color:#9ec5e8">/api/scene.svg</a>
&middot; Analysis: <a href="/api/analysis" style="color:#9ec5e8">/api/analysis</a></p>
</div>
</body></html>`)
}

func (s *Server) handleSpec(w http.ResponseWriter, _ *http.Request) {
	aircraft, _, err := s.load()
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, aircraft)
}

func (s *Server) handleValidation(w http.ResponseWriter, _ *http.Request) {
	_, _, report, err := s.resolve()
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, report)
}

func (s *Server) handleAnalysis(w http.ResponseWriter, _ *http.Request) {
	_, resolved, report, err := s.resolve()
	if err != nil {
		s.writeError(w, err)
		return
	}
	if resolved == nil {
		s.writeInvalid(w, report)
		return
	}
	s.writeJSON(w, map[string]any{
		"aircraft":   resolved,
		"validation": report,
	})
}

func (s *Server) handleScene(w http.ResponseWriter, _ *http.Request) {
	aircraft, resolved, report, err := s.resolve()
	if err != nil {
		s.writeError(w, err)
		return
	}
	if resolved == nil {
		s.writeInvalid(w, report)
		return
	}
	s.writeJSON(w, scene2d.Assemble(aircraft, resolved))
}

func (s *Server) handleSceneSVG(w http.ResponseWriter, _ *http.Request) {
	aircraft, resolved, report, err := s.resolve()
	if err != nil {
		s.writeError(w, err)
		return
	}
	if resolved == nil {
		s.writeInvalid(w, report)
		return
	}

	scene := scene2d.Assemble(aircraft, resolved)
	w.Header().Set("Content-Type", "image/svg+xml")
	if _, err := w.Write(render.SVG(scene)); err != nil {
		s.logger.Error("writing SVG response", "err", err)
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encoding response", "err", err)
	}
}

func (s *Server) writeInvalid(w http.ResponseWriter, report *validation.Report) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnprocessableEntity)
	if err := json.NewEncoder(w).Encode(report); err != nil {
		s.logger.Error("encoding response", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	s.logger.Error("request failed", "err", err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
