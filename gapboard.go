// Package gapboard is an interactive dashboard over the Gapminder dataset.
//
// The dataset (country-year development indicators) is fetched once at
// startup and held immutably in memory. Five linked views — data preview,
// scatterplot, time trend, choropleth map, and correlation matrix — are
// each computed by a pure handler from the dataset and the current widget
// values, and rendered in the browser.
//
// Usage:
//
//	import (
//	    "github.com/gapboard/gapboard/dataset"
//	    "github.com/gapboard/gapboard/engine"
//	)
//
//	ds, err := dataset.Fetch(ctx, dataset.DefaultURL, 30*time.Second)
//	spec := engine.Bindings()[engine.OutputScatterplot].Handler(ds, state)
//
// Handlers never mutate the dataset or the widget state; a ChartSpec is
// built fresh on every invocation. The web package exposes the page and
// one JSON endpoint per (inputs → output) binding.
package gapboard
