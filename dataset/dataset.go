package dataset

// ============================================================================
// DATASET — Immutable in-memory Gapminder table
// ============================================================================
// Loaded once at startup, read-only for the process lifetime. Concurrent
// reads are safe by construction — nothing mutates after New returns.
// Widget domains (countries, continents, years) are cached at build time so
// every dropdown/slider is populated from values that actually exist.
// ============================================================================

import "sort"

// Record is one country-year row.
type Record struct {
	Country   string  `json:"country"`
	Continent string  `json:"continent"`
	Year      int     `json:"year"`
	LifeExp   float64 `json:"lifeExp"`
	Pop       int64   `json:"pop"`
	GdpPercap float64 `json:"gdpPercap"`
}

// Columns lists the six declared column names in CSV order.
// The preview table header uses exactly this order.
var Columns = []string{"country", "year", "pop", "continent", "lifeExp", "gdpPercap"}

// Dataset is an ordered, immutable sequence of Records plus cached
// widget domains.
type Dataset struct {
	records    []Record
	countries  []string // first-seen order
	continents []string // first-seen order
	years      []int    // ascending
}

// New builds a Dataset from records and caches the widget domains.
// The slice is retained; callers must not mutate it afterwards.
func New(records []Record) *Dataset {
	d := &Dataset{records: records}

	countrySeen := make(map[string]bool)
	continentSeen := make(map[string]bool)
	yearSeen := make(map[int]bool)

	for _, r := range records {
		if !countrySeen[r.Country] {
			countrySeen[r.Country] = true
			d.countries = append(d.countries, r.Country)
		}
		if !continentSeen[r.Continent] {
			continentSeen[r.Continent] = true
			d.continents = append(d.continents, r.Continent)
		}
		if !yearSeen[r.Year] {
			yearSeen[r.Year] = true
			d.years = append(d.years, r.Year)
		}
	}
	sort.Ints(d.years)
	return d
}

// Len returns the number of records.
func (d *Dataset) Len() int { return len(d.records) }

// Records returns the underlying rows in load order.
// Read-only — callers must not mutate.
func (d *Dataset) Records() []Record { return d.records }

// Countries returns the distinct country names in first-seen order.
func (d *Dataset) Countries() []string { return d.countries }

// Continents returns the distinct continent names in first-seen order.
func (d *Dataset) Continents() []string { return d.continents }

// Years returns the distinct years, ascending.
func (d *Dataset) Years() []int { return d.years }

// HasCountry reports whether name appears in the dataset.
func (d *Dataset) HasCountry(name string) bool {
	for _, c := range d.countries {
		if c == name {
			return true
		}
	}
	return false
}

// HasContinent reports whether name appears in the dataset.
func (d *Dataset) HasContinent(name string) bool {
	for _, c := range d.continents {
		if c == name {
			return true
		}
	}
	return false
}

// HasYear reports whether y appears in the dataset.
func (d *Dataset) HasYear(y int) bool {
	for _, yr := range d.years {
		if yr == y {
			return true
		}
	}
	return false
}

// NearestYear snaps y to the closest year present in the dataset.
// Ties resolve to the earlier year. Returns 0 for an empty dataset.
func (d *Dataset) NearestYear(y int) int {
	if len(d.years) == 0 {
		return 0
	}
	best := d.years[0]
	for _, yr := range d.years[1:] {
		if abs(yr-y) < abs(best-y) {
			best = yr
		}
	}
	return best
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
