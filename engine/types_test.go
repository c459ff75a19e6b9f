package engine

import (
	"testing"

	"github.com/gapboard/gapboard/dataset"
)

func TestNormalizeInvalidFields(t *testing.T) {
	ds := testDataset()
	st := WidgetState{
		XField:      "year",    // not a numeric field
		YField:      "bogus",
		MapVariable: "country",
	}.Normalize(ds)

	assertEqual(t, st.XField, dataset.FieldGdpPercap, "x fallback")
	assertEqual(t, st.YField, dataset.FieldLifeExp, "y fallback")
	assertEqual(t, st.MapVariable, dataset.FieldGdpPercap, "variable fallback")
}

func TestNormalizeValidStateUnchanged(t *testing.T) {
	ds := testDataset()
	in := WidgetState{
		Rows:        25,
		XField:      dataset.FieldPop,
		YField:      dataset.FieldGdpPercap,
		Country:     "France",
		Year:        2002,
		MapVariable: dataset.FieldLifeExp,
		Continent:   "Europe",
	}
	out := in.Normalize(ds)
	if out != in {
		t.Errorf("valid state changed: %+v → %+v", in, out)
	}
}

func TestNormalizeDoesNotMutateReceiver(t *testing.T) {
	ds := testDataset()
	in := WidgetState{Rows: 999, Year: 1000}
	_ = in.Normalize(ds)

	// Value semantics: the caller's state is untouched.
	assertEqual(t, in.Rows, 999, "receiver rows")
	assertEqual(t, in.Year, 1000, "receiver year")
}

func TestEmptySpec(t *testing.T) {
	spec := EmptySpec("scatterplot")
	assertKind(t, spec, KindEmpty)
	assertEqual(t, spec.Title, "scatterplot", "fallback title")
	if spec.Table != nil || spec.Scatter != nil || spec.Line != nil ||
		spec.Choropleth != nil || spec.Heatmap != nil {
		t.Error("fallback spec must carry no payload")
	}
}
