package dataset

import "testing"

func testRecords() []Record {
	return []Record{
		{Country: "Japan", Continent: "Asia", Year: 2002, LifeExp: 82.0, Pop: 127065841, GdpPercap: 28604.5919},
		{Country: "Japan", Continent: "Asia", Year: 2007, LifeExp: 82.603, Pop: 127467972, GdpPercap: 31656.06806},
		{Country: "Germany", Continent: "Europe", Year: 2002, LifeExp: 78.67, Pop: 82350671, GdpPercap: 30035.80198},
		{Country: "Germany", Continent: "Europe", Year: 2007, LifeExp: 79.406, Pop: 82400996, GdpPercap: 32170.37442},
		{Country: "Japan", Continent: "Asia", Year: 1997, LifeExp: 80.69, Pop: 125956499, GdpPercap: 26039.18},
	}
}

func TestDatasetDomains(t *testing.T) {
	ds := New(testRecords())

	if ds.Len() != 5 {
		t.Fatalf("Len = %d, want 5", ds.Len())
	}
	assertStrings(t, ds.Countries(), []string{"Japan", "Germany"}, "countries first-seen order")
	assertStrings(t, ds.Continents(), []string{"Asia", "Europe"}, "continents first-seen order")

	years := ds.Years()
	want := []int{1997, 2002, 2007}
	if len(years) != len(want) {
		t.Fatalf("years = %v, want %v", years, want)
	}
	for i := range want {
		if years[i] != want[i] {
			t.Fatalf("years = %v, want %v (ascending)", years, want)
		}
	}
}

func TestDatasetMembership(t *testing.T) {
	ds := New(testRecords())

	if !ds.HasCountry("Japan") || ds.HasCountry("Atlantis") {
		t.Error("HasCountry misreports")
	}
	if !ds.HasContinent("Europe") || ds.HasContinent("Antarctica") {
		t.Error("HasContinent misreports")
	}
	if !ds.HasYear(2002) || ds.HasYear(2003) {
		t.Error("HasYear misreports")
	}
}

func TestNearestYear(t *testing.T) {
	ds := New(testRecords())

	cases := []struct{ in, want int }{
		{2007, 2007},
		{2005, 2007},
		{2004, 2002},
		{2000, 2002},
		{1900, 1997},
		{2100, 2007},
	}
	for _, c := range cases {
		if got := ds.NearestYear(c.in); got != c.want {
			t.Errorf("NearestYear(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestNearestYearEmptyDataset(t *testing.T) {
	ds := New(nil)
	if got := ds.NearestYear(2007); got != 0 {
		t.Errorf("NearestYear on empty dataset = %d, want 0", got)
	}
}

func TestFieldValueAndLabel(t *testing.T) {
	r := Record{LifeExp: 82.0, Pop: 1000, GdpPercap: 28604.5}

	if FieldLifeExp.Value(r) != 82.0 {
		t.Error("lifeExp value wrong")
	}
	if FieldPop.Value(r) != 1000 {
		t.Error("pop value wrong")
	}
	if FieldGdpPercap.Value(r) != 28604.5 {
		t.Error("gdpPercap value wrong")
	}
	if FieldGdpPercap.Label() != "GDP Per Capita" {
		t.Errorf("label = %q", FieldGdpPercap.Label())
	}

	if _, ok := ParseField("pop"); !ok {
		t.Error("ParseField rejected valid field")
	}
	if _, ok := ParseField("year"); ok {
		t.Error("ParseField accepted non-numeric column")
	}
}

// ── Helpers ──────────────────────────────────────────────────────────────────

func assertStrings(t *testing.T, got, want []string, msg string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: got %v, want %v", msg, got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("%s: got %v, want %v", msg, got, want)
		}
	}
}
