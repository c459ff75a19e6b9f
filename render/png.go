package render

// ============================================================================
// PNG RENDERING — Server-side chart export
// ============================================================================
// Draws the scatter and trend ChartSpecs with go-chart. The browser views
// render client-side; this path exists for downloads and the offline report
// tool. Chart kinds go-chart cannot draw (choropleth, heatmap, table) are
// rejected by PNG.
// ============================================================================

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"github.com/pkg/errors"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/gapboard/gapboard/engine"
)

const (
	chartWidth  = 900
	chartHeight = 480
)

// PNG renders a ChartSpec to PNG bytes.
func PNG(spec *engine.ChartSpec) ([]byte, error) {
	if spec == nil {
		return nil, errors.New("nil chart spec")
	}
	switch spec.Kind {
	case engine.KindScatter:
		return scatterPNG(spec)
	case engine.KindLine:
		return linePNG(spec)
	case engine.KindEmpty:
		return blankPNG()
	default:
		return nil, errors.Errorf("no png renderer for kind %q", spec.Kind)
	}
}

func pointStyle(col drawing.Color) chart.Style {
	return chart.Style{
		StrokeWidth: chart.Disabled,
		DotWidth:    4,
		DotColor:    col,
	}
}

func scatterPNG(spec *engine.ChartSpec) ([]byte, error) {
	series := make([]chart.Series, 0, len(spec.Scatter.Series))
	for i, s := range spec.Scatter.Series {
		if len(s.Points) == 0 {
			continue
		}
		xs := make([]float64, len(s.Points))
		ys := make([]float64, len(s.Points))
		for j, p := range s.Points {
			xs[j] = p.X
			ys[j] = p.Y
		}
		series = append(series, chart.ContinuousSeries{
			Name:    s.Name,
			XValues: padSingle(xs),
			YValues: padValues(ys, len(padSingle(xs))),
			Style:   pointStyle(chart.GetDefaultColor(i)),
		})
	}
	if len(series) == 0 {
		return blankPNG()
	}

	ch := chart.Chart{
		Title:  spec.Title,
		Width:  chartWidth,
		Height: chartHeight,
		XAxis:  chart.XAxis{Name: spec.Scatter.XLabel},
		YAxis:  chart.YAxis{Name: spec.Scatter.YLabel},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	return renderChart(ch)
}

func linePNG(spec *engine.ChartSpec) ([]byte, error) {
	if len(spec.Line.Points) == 0 {
		return blankPNG()
	}
	xs := make([]float64, len(spec.Line.Points))
	ys := make([]float64, len(spec.Line.Points))
	for i, p := range spec.Line.Points {
		xs[i] = float64(p.X)
		ys[i] = p.Y
	}

	style := chart.Style{StrokeWidth: 2}
	if spec.Line.Markers {
		style.DotWidth = 4
	}
	ch := chart.Chart{
		Title:  spec.Title,
		Width:  chartWidth,
		Height: chartHeight,
		XAxis:  chart.XAxis{Name: spec.Line.XLabel},
		YAxis:  chart.YAxis{Name: spec.Line.YLabel},
		Series: []chart.Series{chart.ContinuousSeries{
			Name:    spec.Line.YLabel,
			XValues: padSingle(xs),
			YValues: padValues(ys, len(padSingle(xs))),
			Style:   style,
		}},
	}
	return renderChart(ch)
}

func renderChart(ch chart.Chart) ([]byte, error) {
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, errors.Wrap(err, "render chart")
	}
	return buf.Bytes(), nil
}

// padSingle pads to at least two X values; go-chart cannot size an axis
// from a single point.
func padSingle(xs []float64) []float64 {
	if len(xs) != 1 {
		return xs
	}
	return []float64{xs[0], xs[0] + 1}
}

func padValues(ys []float64, n int) []float64 {
	for len(ys) < n {
		ys = append(ys, ys[len(ys)-1])
	}
	return ys
}

// blankPNG is the visible fallback for empty inputs and render errors.
func blankPNG() ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, chartWidth, chartHeight))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, errors.Wrap(err, "encode blank png")
	}
	return buf.Bytes(), nil
}
