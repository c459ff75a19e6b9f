package engine

// ============================================================================
// DISPATCH — Explicit (output → handler, inputs) binding table
// ============================================================================
// Built once at startup. A changed input maps to the output it drives; the
// bound handler recomputes that output from (Dataset, WidgetState) and the
// result replaces the displayed content. Outputs are fully independent — no
// handler reads another handler's result or any call history.
// ============================================================================

import "github.com/gapboard/gapboard/dataset"

// Output identifiers, one per view.
const (
	OutputDataPreview = "data-preview"
	OutputScatterplot = "scatterplot"
	OutputTrendChart  = "trend-chart"
	OutputMapChart    = "map-chart"
	OutputCorrelation = "correlation-matrix"
)

// Input (widget) identifiers.
const (
	InputRows      = "rows"
	InputXField    = "x"
	InputYField    = "y"
	InputCountry   = "country"
	InputYear      = "year"
	InputVariable  = "variable"
	InputContinent = "continent"
)

// Handler computes one output from the dataset and the current widget
// values. Handlers are pure: same inputs, same ChartSpec.
type Handler func(*dataset.Dataset, WidgetState) *ChartSpec

// Binding wires a set of input widgets to the output they drive.
type Binding struct {
	Output  string
	Inputs  []string
	Handler Handler
}

// Bindings returns the dispatch table mapping output id → binding.
func Bindings() map[string]Binding {
	table := map[string]Binding{}
	for _, b := range []Binding{
		{Output: OutputDataPreview, Inputs: []string{InputRows}, Handler: Preview},
		{Output: OutputScatterplot, Inputs: []string{InputXField, InputYField}, Handler: Scatter},
		{Output: OutputTrendChart, Inputs: []string{InputCountry}, Handler: Trend},
		{Output: OutputMapChart, Inputs: []string{InputYear, InputVariable}, Handler: MapView},
		{Output: OutputCorrelation, Inputs: []string{InputContinent}, Handler: Correlation},
	} {
		table[b.Output] = b
	}
	return table
}
