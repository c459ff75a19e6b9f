package engine

// ============================================================================
// CORRELATION HANDLER — Pairwise Pearson matrix for one continent
// ============================================================================
// 3×3 symmetric matrix over {gdpPercap, lifeExp, pop} restricted to the
// selected continent. Fewer than 2 rows — or a zero-variance column — makes
// a coefficient undefined; those cells carry NaN and render uncoded rather
// than failing. Each pair is computed once and mirrored.
// ============================================================================

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	"github.com/gapboard/gapboard/dataset"
)

// Correlation renders the correlation matrix heatmap for the selected
// continent.
func Correlation(ds *dataset.Dataset, st WidgetState) *ChartSpec {
	rows := Filter(ds.Records(), ByContinent(st.Continent))

	// One column vector per field.
	columns := make([][]float64, len(dataset.Fields))
	for i, f := range dataset.Fields {
		columns[i] = make([]float64, 0, len(rows))
		for _, r := range rows {
			columns[i] = append(columns[i], f.Value(r))
		}
	}

	n := len(dataset.Fields)
	matrix := make(CorrMatrix, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
	}

	for i := 0; i < n; i++ {
		matrix[i][i] = pearson(columns[i], columns[i])
		for j := i + 1; j < n; j++ {
			v := pearson(columns[i], columns[j])
			matrix[i][j] = v
			matrix[j][i] = v
		}
	}

	fields := make([]string, n)
	for i, f := range dataset.Fields {
		fields[i] = string(f)
	}

	return &ChartSpec{
		Kind:  KindHeatmap,
		Title: fmt.Sprintf("Correlation Matrix for %s", st.Continent),
		Heatmap: &HeatmapData{
			Fields: fields,
			Matrix: matrix,
		},
	}
}

// pearson wraps stats.Pearson, mapping every undefined case to NaN.
func pearson(a, b []float64) float64 {
	if len(a) < 2 {
		return math.NaN()
	}
	v, err := stats.Pearson(a, b)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return math.NaN()
	}
	return v
}
