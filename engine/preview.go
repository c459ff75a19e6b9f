package engine

// ============================================================================
// PREVIEW HANDLER — First N rows as a table
// ============================================================================

import (
	"strconv"

	"github.com/gapboard/gapboard/dataset"
)

// Preview renders the first min(N, total) rows of the dataset in load
// order. The header is the six declared columns in CSV order; the row count
// is already clamped to the slider's range by Normalize.
func Preview(ds *dataset.Dataset, st WidgetState) *ChartSpec {
	rows := Head(ds.Records(), st.Rows)

	body := make([][]string, 0, len(rows))
	for _, r := range rows {
		body = append(body, []string{
			r.Country,
			strconv.Itoa(r.Year),
			strconv.FormatInt(r.Pop, 10),
			r.Continent,
			formatFloat(r.LifeExp),
			formatFloat(r.GdpPercap),
		})
	}

	return &ChartSpec{
		Kind:  KindTable,
		Title: "Gapminder Dataset Preview",
		Table: &TableData{
			Columns: dataset.Columns,
			Rows:    body,
		},
	}
}

// formatFloat keeps full precision without trailing zero noise.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
