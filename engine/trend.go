package engine

// ============================================================================
// TREND HANDLER — Life expectancy over time for one country
// ============================================================================

import (
	"fmt"
	"sort"

	"github.com/gapboard/gapboard/dataset"
)

// Trend plots lifeExp vs year for the selected country, ordered by year,
// with point markers. A country matching zero rows (not reachable through
// the dropdown, handled defensively) yields an empty line chart.
func Trend(ds *dataset.Dataset, st WidgetState) *ChartSpec {
	rows := Filter(ds.Records(), ByCountry(st.Country))
	sort.Slice(rows, func(i, j int) bool { return rows[i].Year < rows[j].Year })

	points := make([]LinePoint, 0, len(rows))
	for _, r := range rows {
		points = append(points, LinePoint{X: r.Year, Y: r.LifeExp})
	}

	return &ChartSpec{
		Kind:  KindLine,
		Title: fmt.Sprintf("Life Expectancy Over Time for %s", st.Country),
		Line: &LineData{
			XLabel:  "Year",
			YLabel:  dataset.FieldLifeExp.Label(),
			Points:  points,
			Markers: true,
		},
	}
}
