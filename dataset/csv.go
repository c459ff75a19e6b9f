package dataset

// ============================================================================
// CSV PARSING — Gapminder five-year CSV → []Record
// ============================================================================
// Header-validated and column-order independent: the six declared columns
// must all be present, extra columns are ignored. Malformed rows are skipped
// and counted — a dataset where nothing parses is a startup error.
// ============================================================================

import (
	"bytes"
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ParseCSV parses Gapminder CSV bytes into Records.
func ParseCSV(data []byte) ([]Record, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "read csv header")
	}

	// Map declared column → index, case-insensitive on the header side.
	idx := make(map[string]int, len(Columns))
	for i, h := range headers {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	cols := make(map[string]int, len(Columns))
	for _, c := range Columns {
		i, ok := idx[strings.ToLower(c)]
		if !ok {
			return nil, errors.Errorf("csv missing column %q", c)
		}
		cols[c] = i
	}

	var records []Record
	skipped := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			skipped++
			continue
		}
		rec, ok := parseRow(row, cols)
		if !ok {
			skipped++
			continue
		}
		records = append(records, rec)
	}

	if skipped > 0 {
		logrus.WithFields(logrus.Fields{
			"parsed":  len(records),
			"skipped": skipped,
		}).Warn("csv rows skipped")
	}
	if len(records) == 0 {
		return nil, errors.New("csv contains no parsable rows")
	}
	return records, nil
}

func parseRow(row []string, cols map[string]int) (Record, bool) {
	get := func(c string) (string, bool) {
		i := cols[c]
		if i >= len(row) {
			return "", false
		}
		return strings.TrimSpace(row[i]), true
	}

	country, ok1 := get("country")
	continent, ok2 := get("continent")
	yearStr, ok3 := get("year")
	lifeStr, ok4 := get("lifeExp")
	popStr, ok5 := get("pop")
	gdpStr, ok6 := get("gdpPercap")
	if !ok1 || !ok2 || !ok3 || !ok4 || !ok5 || !ok6 || country == "" || continent == "" {
		return Record{}, false
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return Record{}, false
	}
	lifeExp, err := strconv.ParseFloat(lifeStr, 64)
	if err != nil {
		return Record{}, false
	}
	// Some Gapminder exports carry population as a float ("1.43e+09").
	pop, err := strconv.ParseFloat(popStr, 64)
	if err != nil {
		return Record{}, false
	}
	gdp, err := strconv.ParseFloat(gdpStr, 64)
	if err != nil {
		return Record{}, false
	}

	return Record{
		Country:   country,
		Continent: continent,
		Year:      year,
		LifeExp:   lifeExp,
		Pop:       int64(pop),
		GdpPercap: gdp,
	}, true
}
