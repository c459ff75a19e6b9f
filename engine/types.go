package engine

// ============================================================================
// ENGINE TYPES — Widget state and chart descriptors
// ============================================================================
// WidgetState is an immutable snapshot of every input control; one is built
// per request from defaults plus the request's values, and handlers never
// mutate it. ChartSpec is the render-ready output — a table or an abstract
// chart descriptor the frontend turns into a plot. Exactly one payload is
// populated per Kind, and every invocation builds a fresh one.
// ============================================================================

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/gapboard/gapboard/dataset"
)

// Row slider bounds, matching the declared control range.
const (
	RowsMin  = 5
	RowsMax  = 50
	RowsStep = 5
)

// WidgetState holds the current value of each input control.
type WidgetState struct {
	Rows        int           `json:"rows"`
	XField      dataset.Field `json:"xField"`
	YField      dataset.Field `json:"yField"`
	Country     string        `json:"country"`
	Year        int           `json:"year"`
	MapVariable dataset.Field `json:"mapVariable"`
	Continent   string        `json:"continent"`
}

// Normalize returns a copy of the state with every value snapped into its
// widget's declared domain. Invalid field names fall back to the scatter
// defaults, the year snaps to the nearest dataset year, and the row count
// clamps to [RowsMin, RowsMax] on RowsStep boundaries. Country and
// continent pass through: the trend and correlation handlers are defensive
// about unknown values by contract.
func (st WidgetState) Normalize(ds *dataset.Dataset) WidgetState {
	st.Rows = clampRows(st.Rows)
	if _, ok := dataset.ParseField(string(st.XField)); !ok {
		st.XField = dataset.FieldGdpPercap
	}
	if _, ok := dataset.ParseField(string(st.YField)); !ok {
		st.YField = dataset.FieldLifeExp
	}
	if _, ok := dataset.ParseField(string(st.MapVariable)); !ok {
		st.MapVariable = dataset.FieldGdpPercap
	}
	if !ds.HasYear(st.Year) {
		st.Year = ds.NearestYear(st.Year)
	}
	return st
}

func clampRows(n int) int {
	if n < RowsMin {
		return RowsMin
	}
	if n > RowsMax {
		return RowsMax
	}
	return n - n%RowsStep
}

// Kind identifies the renderable shape of a ChartSpec.
type Kind string

const (
	KindTable      Kind = "table"
	KindScatter    Kind = "scatter"
	KindLine       Kind = "line"
	KindChoropleth Kind = "choropleth"
	KindHeatmap    Kind = "heatmap"
	KindEmpty      Kind = "empty"
)

// ChartSpec is a handler's output: a renderable table or chart descriptor.
type ChartSpec struct {
	Kind  Kind   `json:"kind"`
	Title string `json:"title"`

	// Exactly one of these is populated based on Kind:
	Table      *TableData      `json:"table,omitempty"`
	Scatter    *ScatterData    `json:"scatter,omitempty"`
	Line       *LineData       `json:"line,omitempty"`
	Choropleth *ChoroplethData `json:"choropleth,omitempty"`
	Heatmap    *HeatmapData    `json:"heatmap,omitempty"`
}

// EmptySpec is the contained-failure fallback for a single output.
func EmptySpec(title string) *ChartSpec {
	return &ChartSpec{Kind: KindEmpty, Title: title}
}

// TableData renders as a plain header/body table.
type TableData struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// ScatterData holds one series per continent so the frontend can color by
// group. Point count across all series equals the dataset size.
type ScatterData struct {
	XLabel string          `json:"xLabel"`
	YLabel string          `json:"yLabel"`
	Series []ScatterSeries `json:"series"`
}

// ScatterSeries is the set of points for one continent.
type ScatterSeries struct {
	Name   string         `json:"name"`
	Points []ScatterPoint `json:"points"`
}

// ScatterPoint carries the encodings: position, size (population), and
// hover label (country).
type ScatterPoint struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Size  float64 `json:"size"`
	Label string  `json:"label"`
}

// LineData renders as a single line, optionally with point markers.
type LineData struct {
	XLabel  string      `json:"xLabel"`
	YLabel  string      `json:"yLabel"`
	Points  []LinePoint `json:"points"`
	Markers bool        `json:"markers"`
}

// LinePoint is one (year, value) vertex.
type LinePoint struct {
	X int     `json:"x"`
	Y float64 `json:"y"`
}

// ChoroplethData keys values by country name; geography resolution belongs
// to the chart layer, and unmatched names render uncoded.
type ChoroplethData struct {
	VarLabel  string    `json:"varLabel"`
	Locations []string  `json:"locations"`
	Values    []float64 `json:"values"`
}

// HeatmapData is a square annotated matrix over the listed fields.
type HeatmapData struct {
	Fields []string   `json:"fields"`
	Matrix CorrMatrix `json:"matrix"`
}

// CorrMatrix marshals NaN cells (undefined correlations) as JSON null so a
// degenerate input renders as an uncoded cell instead of breaking encoding.
type CorrMatrix [][]float64

// MarshalJSON implements json.Marshaler.
func (m CorrMatrix) MarshalJSON() ([]byte, error) {
	out := make([][]json.RawMessage, len(m))
	for i, row := range m {
		out[i] = make([]json.RawMessage, len(row))
		for j, v := range row {
			if math.IsNaN(v) {
				out[i][j] = json.RawMessage("null")
			} else {
				out[i][j] = json.RawMessage(strconv.FormatFloat(v, 'g', -1, 64))
			}
		}
	}
	return json.Marshal(out)
}
