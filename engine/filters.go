package engine

// ============================================================================
// FILTERS — Typed predicates over the record sequence
// ============================================================================
// Each widget selection maps to an explicit predicate; Filter returns a new
// slice and never touches the dataset's backing array beyond reads.
// ============================================================================

import "github.com/gapboard/gapboard/dataset"

// Predicate decides whether a record belongs in a filtered view.
type Predicate func(dataset.Record) bool

// ByCountry matches records for one country.
func ByCountry(name string) Predicate {
	return func(r dataset.Record) bool { return r.Country == name }
}

// ByContinent matches records for one continent.
func ByContinent(name string) Predicate {
	return func(r dataset.Record) bool { return r.Continent == name }
}

// ByYear matches records for one year.
func ByYear(year int) Predicate {
	return func(r dataset.Record) bool { return r.Year == year }
}

// Filter returns the records matching p, in input order.
func Filter(records []dataset.Record, p Predicate) []dataset.Record {
	out := make([]dataset.Record, 0, len(records))
	for _, r := range records {
		if p(r) {
			out = append(out, r)
		}
	}
	return out
}

// Head returns the first n records (all of them when n exceeds the length).
func Head(records []dataset.Record, n int) []dataset.Record {
	if n > len(records) {
		n = len(records)
	}
	if n < 0 {
		n = 0
	}
	return records[:n]
}
