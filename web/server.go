package web

// ============================================================================
// WEB SERVER — Page, per-output view endpoints, health
// ============================================================================
// One endpoint serves the page; one JSON endpoint per (inputs → output)
// binding serves recomputed ChartSpecs. Widget state is rebuilt per request
// from the configured defaults plus the request's query values, so
// concurrent sessions never share mutable state — the dataset itself is
// read-only after load.
// ============================================================================

import (
	"embed"
	"encoding/json"
	"html/template"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/gapboard/gapboard/dataset"
	"github.com/gapboard/gapboard/engine"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// ServerConfig wires the server to the loaded dataset and dispatch table.
type ServerConfig struct {
	Addr     string
	Dataset  *dataset.Dataset
	Defaults engine.WidgetState
	Bindings map[string]engine.Binding
	Version  string
}

type server struct {
	cfg ServerConfig
}

// NewServer builds the http.Server for the dashboard.
func NewServer(cfg ServerConfig) *http.Server {
	s := &server{cfg: cfg}
	return &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.routes(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
	}
}

func (s *server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/api/view/", s.handleView)
	mux.HandleFunc("/api/meta", s.handleMeta)
	mux.HandleFunc("/chart/", s.handleChartPNG)
	mux.HandleFunc("/health", s.handleHealth)
	return mux
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.WithError(err).Error("write json response")
	}
}
