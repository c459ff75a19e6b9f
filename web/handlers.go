package web

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/gapboard/gapboard/dataset"
	"github.com/gapboard/gapboard/engine"
	"github.com/gapboard/gapboard/render"
)

// fieldOption is the dropdown entry for a numeric field.
type fieldOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// meta bootstraps the widgets: every dropdown/slider domain comes from the
// dataset, so invalid selections are structurally impossible in the UI.
type meta struct {
	Countries  []string            `json:"countries"`
	Continents []string            `json:"continents"`
	Years      []int               `json:"years"`
	Fields     []fieldOption       `json:"fields"`
	Defaults   engine.WidgetState  `json:"defaults"`
	Outputs    map[string][]string `json:"outputs"` // output id → input ids
	RowsMin    int                 `json:"rowsMin"`
	RowsMax    int                 `json:"rowsMax"`
	RowsStep   int                 `json:"rowsStep"`
}

func (s *server) buildMeta() meta {
	fields := make([]fieldOption, 0, len(dataset.Fields))
	for _, f := range dataset.Fields {
		fields = append(fields, fieldOption{Value: string(f), Label: f.Label()})
	}
	outputs := make(map[string][]string, len(s.cfg.Bindings))
	for id, b := range s.cfg.Bindings {
		outputs[id] = b.Inputs
	}
	return meta{
		Countries:  s.cfg.Dataset.Countries(),
		Continents: s.cfg.Dataset.Continents(),
		Years:      s.cfg.Dataset.Years(),
		Fields:     fields,
		Defaults:   s.cfg.Defaults,
		Outputs:    outputs,
		RowsMin:    engine.RowsMin,
		RowsMax:    engine.RowsMax,
		RowsStep:   engine.RowsStep,
	}
}

func (s *server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	page := struct {
		Title   string
		Version string
		Meta    meta
	}{
		Title:   "Gapminder Dashboard",
		Version: s.cfg.Version,
		Meta:    s.buildMeta(),
	}
	if err := templates.ExecuteTemplate(w, "index.html", page); err != nil {
		logrus.WithError(err).Error("render index")
	}
}

func (s *server) handleMeta(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.buildMeta())
}

func (s *server) handleView(w http.ResponseWriter, r *http.Request) {
	output := strings.TrimPrefix(r.URL.Path, "/api/view/")
	binding, ok := s.cfg.Bindings[output]
	if !ok {
		http.Error(w, "unknown output", http.StatusNotFound)
		return
	}
	st := s.stateFromQuery(r).Normalize(s.cfg.Dataset)
	writeJSON(w, s.invoke(binding, st))
}

// invoke contains a handler failure to its single output: the session keeps
// working and the output renders as an empty fallback chart.
func (s *server) invoke(b engine.Binding, st engine.WidgetState) (spec *engine.ChartSpec) {
	defer func() {
		if rec := recover(); rec != nil {
			logrus.WithFields(logrus.Fields{
				"output": b.Output,
				"panic":  rec,
			}).Error("view handler failed")
			spec = engine.EmptySpec(b.Output)
		}
	}()
	return b.Handler(s.cfg.Dataset, st)
}

// stateFromQuery overlays the request's widget values on the defaults.
// Values stay raw here; Normalize snaps them into their domains.
func (s *server) stateFromQuery(r *http.Request) engine.WidgetState {
	st := s.cfg.Defaults
	q := r.URL.Query()

	if v := q.Get(engine.InputRows); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			st.Rows = n
		}
	}
	if v := q.Get(engine.InputXField); v != "" {
		st.XField = dataset.Field(v)
	}
	if v := q.Get(engine.InputYField); v != "" {
		st.YField = dataset.Field(v)
	}
	if v := q.Get(engine.InputCountry); v != "" {
		st.Country = v
	}
	if v := q.Get(engine.InputYear); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			st.Year = n
		}
	}
	if v := q.Get(engine.InputVariable); v != "" {
		st.MapVariable = dataset.Field(v)
	}
	if v := q.Get(engine.InputContinent); v != "" {
		st.Continent = v
	}
	return st
}

// handleChartPNG serves server-rendered PNGs for the outputs go-chart can
// draw (scatterplot and trend). The browser views use the JSON endpoints;
// this is the download/export path.
func (s *server) handleChartPNG(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/chart/"), ".png")
	if name != engine.OutputScatterplot && name != engine.OutputTrendChart {
		http.Error(w, "no png renderer for output", http.StatusNotFound)
		return
	}
	binding := s.cfg.Bindings[name]
	st := s.stateFromQuery(r).Normalize(s.cfg.Dataset)

	png, err := render.PNG(s.invoke(binding, st))
	if err != nil {
		logrus.WithError(err).WithField("output", name).Error("render png")
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(png)
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"status":  "ok",
		"version": s.cfg.Version,
		"records": s.cfg.Dataset.Len(),
		"outputs": len(s.cfg.Bindings),
	})
}
