package engine

// ============================================================================
// SCATTER HANDLER — Full-dataset scatter, colored by continent
// ============================================================================
// No filtering: every record becomes exactly one point. Points are grouped
// into one series per continent (first-seen order) so the frontend assigns
// a stable color per group.
// ============================================================================

import (
	"fmt"

	"github.com/gapboard/gapboard/dataset"
)

// Scatter plots YField against XField over the whole dataset, point size
// encoding population and hover label encoding country.
func Scatter(ds *dataset.Dataset, st WidgetState) *ChartSpec {
	series := make([]ScatterSeries, 0, len(ds.Continents()))
	index := make(map[string]int, len(ds.Continents()))
	for i, c := range ds.Continents() {
		series = append(series, ScatterSeries{Name: c})
		index[c] = i
	}

	for _, r := range ds.Records() {
		i, ok := index[r.Continent]
		if !ok {
			continue
		}
		series[i].Points = append(series[i].Points, ScatterPoint{
			X:     st.XField.Value(r),
			Y:     st.YField.Value(r),
			Size:  float64(r.Pop),
			Label: r.Country,
		})
	}

	return &ChartSpec{
		Kind:  KindScatter,
		Title: fmt.Sprintf("Scatterplot of %s vs %s", st.YField, st.XField),
		Scatter: &ScatterData{
			XLabel: st.XField.Label(),
			YLabel: st.YField.Label(),
			Series: series,
		},
	}
}
