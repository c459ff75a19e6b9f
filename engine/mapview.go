package engine

// ============================================================================
// MAP HANDLER — Choropleth of one variable for one year
// ============================================================================

import (
	"fmt"

	"github.com/gapboard/gapboard/dataset"
)

// MapView builds a choropleth keyed by country name, color-encoded by the
// selected variable, restricted to the selected year. Country-to-geography
// resolution is the chart layer's job; unmatched names render uncoded.
func MapView(ds *dataset.Dataset, st WidgetState) *ChartSpec {
	rows := Filter(ds.Records(), ByYear(st.Year))

	locations := make([]string, 0, len(rows))
	values := make([]float64, 0, len(rows))
	for _, r := range rows {
		locations = append(locations, r.Country)
		values = append(values, st.MapVariable.Value(r))
	}

	return &ChartSpec{
		Kind:  KindChoropleth,
		Title: fmt.Sprintf("%s in %d", st.MapVariable, st.Year),
		Choropleth: &ChoroplethData{
			VarLabel:  st.MapVariable.Label(),
			Locations: locations,
			Values:    values,
		},
	}
}
