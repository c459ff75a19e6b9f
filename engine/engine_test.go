package engine

// Shared fixture and assert helpers for the handler tests.

import (
	"testing"

	"github.com/gapboard/gapboard/dataset"
)

// testDataset covers three continents, four countries, three years, and a
// single-row continent (Oceania) for the degenerate-correlation cases.
func testDataset() *dataset.Dataset {
	return dataset.New(testRecordSlice())
}

func testRecordSlice() []dataset.Record {
	return []dataset.Record{
		{Country: "Japan", Continent: "Asia", Year: 1997, LifeExp: 80.69, Pop: 125956499, GdpPercap: 26039.18},
		{Country: "Japan", Continent: "Asia", Year: 2002, LifeExp: 82.0, Pop: 127065841, GdpPercap: 28604.5919},
		{Country: "Japan", Continent: "Asia", Year: 2007, LifeExp: 82.603, Pop: 127467972, GdpPercap: 31656.06806},
		{Country: "China", Continent: "Asia", Year: 1997, LifeExp: 70.426, Pop: 1230075000, GdpPercap: 2289.234136},
		{Country: "China", Continent: "Asia", Year: 2002, LifeExp: 72.028, Pop: 1280400000, GdpPercap: 3119.280896},
		{Country: "China", Continent: "Asia", Year: 2007, LifeExp: 72.961, Pop: 1318683096, GdpPercap: 4959.114854},
		{Country: "Germany", Continent: "Europe", Year: 1997, LifeExp: 77.34, Pop: 82011073, GdpPercap: 27788.88416},
		{Country: "Germany", Continent: "Europe", Year: 2002, LifeExp: 78.67, Pop: 82350671, GdpPercap: 30035.80198},
		{Country: "Germany", Continent: "Europe", Year: 2007, LifeExp: 79.406, Pop: 82400996, GdpPercap: 32170.37442},
		{Country: "France", Continent: "Europe", Year: 1997, LifeExp: 78.64, Pop: 58623428, GdpPercap: 25889.78487},
		{Country: "France", Continent: "Europe", Year: 2002, LifeExp: 79.59, Pop: 59925035, GdpPercap: 28926.03234},
		{Country: "France", Continent: "Europe", Year: 2007, LifeExp: 80.657, Pop: 61083916, GdpPercap: 30470.0167},
		{Country: "Australia", Continent: "Oceania", Year: 2007, LifeExp: 81.235, Pop: 20434176, GdpPercap: 34435.36744},
	}
}

func defaultState(ds *dataset.Dataset) WidgetState {
	return WidgetState{
		Rows:        10,
		XField:      dataset.FieldGdpPercap,
		YField:      dataset.FieldLifeExp,
		Country:     "Japan",
		Year:        2007,
		MapVariable: dataset.FieldGdpPercap,
		Continent:   "Asia",
	}.Normalize(ds)
}

// ── Helpers ──────────────────────────────────────────────────────────────────

func assertEqual(t *testing.T, got, want interface{}, msg string) {
	t.Helper()
	if got != want {
		t.Errorf("%s: got %v, want %v", msg, got, want)
	}
}

func assertKind(t *testing.T, spec *ChartSpec, want Kind) {
	t.Helper()
	if spec == nil {
		t.Fatalf("nil ChartSpec, want kind %q", want)
	}
	if spec.Kind != want {
		t.Fatalf("kind = %q, want %q", spec.Kind, want)
	}
}
