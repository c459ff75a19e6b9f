package main

// ============================================================================
// GAPBOARD-REPORT — Offline terminal + PNG report over the same handlers
// ============================================================================

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/gapboard/gapboard/dataset"
	"github.com/gapboard/gapboard/engine"
	"github.com/gapboard/gapboard/render"
)

const version = "0.1.0"

func main() {
	filePath := flag.String("file", "", "Path to Gapminder CSV (skips network fetch)")
	url := flag.String("url", dataset.DefaultURL, "Dataset URL when -file is not set")
	rows := flag.Int("rows", 10, "Preview rows (5..50, snapped to steps of 5)")
	country := flag.String("country", "United States", "Country for the trend chart")
	continent := flag.String("continent", "", "Continent for the correlation matrix (empty = all)")
	outDir := flag.String("out", "", "Directory for PNG chart exports (empty = skip)")
	showVersion := flag.Bool("version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `gapboard-report — Gapminder summary without the browser

Usage:
  gapboard-report --file gapminder.csv --rows 15
  gapboard-report --country Japan --continent Asia --out ./charts

Flags:
`)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Printf("gapboard-report %s\n", version)
		os.Exit(0)
	}

	ds, err := loadDataset(*filePath, *url)
	if err != nil {
		fatalf("Failed to load dataset: %v", err)
	}

	st := engine.WidgetState{
		Rows:    *rows,
		Country: *country,
	}.Normalize(ds)

	printPreview(ds, st)

	continents := ds.Continents()
	if *continent != "" {
		continents = []string{*continent}
	}
	for _, c := range continents {
		printCorrelation(ds, engine.WidgetState{Continent: c}.Normalize(ds))
	}

	if *outDir != "" {
		if err := exportCharts(ds, st, *outDir); err != nil {
			fatalf("Failed to export charts: %v", err)
		}
	}
}

func loadDataset(file, url string) (*dataset.Dataset, error) {
	if file != "" {
		return dataset.LoadFile(file)
	}
	return dataset.Fetch(context.Background(), url, 30*time.Second)
}

func printPreview(ds *dataset.Dataset, st engine.WidgetState) {
	spec := engine.Preview(ds, st)

	fmt.Printf("\n%s (%d of %d rows)\n", spec.Title, len(spec.Table.Rows), ds.Len())
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(spec.Table.Columns)
	for _, row := range spec.Table.Rows {
		table.Append(row)
	}
	table.Render()
}

func printCorrelation(ds *dataset.Dataset, st engine.WidgetState) {
	spec := engine.Correlation(ds, st)

	fmt.Printf("\n%s\n", spec.Title)
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(append([]string{""}, spec.Heatmap.Fields...))
	for i, row := range spec.Heatmap.Matrix {
		cells := []string{spec.Heatmap.Fields[i]}
		for _, v := range row {
			if math.IsNaN(v) {
				cells = append(cells, "n/a")
			} else {
				cells = append(cells, fmt.Sprintf("%.3f", v))
			}
		}
		table.Append(cells)
	}
	table.Render()
}

func exportCharts(ds *dataset.Dataset, st engine.WidgetState, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	charts := map[string]*engine.ChartSpec{
		"scatterplot.png": engine.Scatter(ds, st),
		"trend-chart.png": engine.Trend(ds, st),
	}
	for name, spec := range charts {
		png, err := render.PNG(spec)
		if err != nil {
			return err
		}
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, png, 0o644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", path)
	}
	return nil
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
