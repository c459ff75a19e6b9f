package dataset

// ============================================================================
// FIELD — The three numeric indicators selectable in the UI
// ============================================================================

// Field names one of the numeric indicator columns.
type Field string

const (
	FieldGdpPercap Field = "gdpPercap"
	FieldLifeExp   Field = "lifeExp"
	FieldPop       Field = "pop"
)

// Fields lists the selectable numeric fields in display order.
var Fields = []Field{FieldGdpPercap, FieldLifeExp, FieldPop}

// ParseField validates a raw widget value against the field domain.
func ParseField(s string) (Field, bool) {
	switch Field(s) {
	case FieldGdpPercap, FieldLifeExp, FieldPop:
		return Field(s), true
	}
	return "", false
}

// Value extracts the field's value from a record.
func (f Field) Value(r Record) float64 {
	switch f {
	case FieldGdpPercap:
		return r.GdpPercap
	case FieldLifeExp:
		return r.LifeExp
	case FieldPop:
		return float64(r.Pop)
	}
	return 0
}

// Label returns the human-readable field name used in dropdowns.
func (f Field) Label() string {
	switch f {
	case FieldGdpPercap:
		return "GDP Per Capita"
	case FieldLifeExp:
		return "Life Expectancy"
	case FieldPop:
		return "Population"
	}
	return string(f)
}
