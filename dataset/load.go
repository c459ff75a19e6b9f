package dataset

import (
	"context"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// DefaultURL is the canonical Gapminder five-year CSV.
const DefaultURL = "https://raw.githubusercontent.com/resbaz/r-novice-gapminder-files/master/data/gapminder-FiveYearData.csv"

// Fetch downloads and parses the dataset from url. Any failure is a
// startup failure for the caller — there is no retry.
func Fetch(ctx context.Context, url string, timeout time.Duration) (*Dataset, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build dataset request")
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "fetch dataset from %s", url)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("fetch dataset from %s: status %d", url, resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read dataset body")
	}

	records, err := ParseCSV(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parse dataset from %s", url)
	}

	ds := New(records)
	logrus.WithFields(logrus.Fields{
		"records":    ds.Len(),
		"countries":  len(ds.Countries()),
		"continents": len(ds.Continents()),
		"years":      len(ds.Years()),
	}).Info("dataset loaded")
	return ds, nil
}

// LoadFile parses the dataset from a local CSV file.
func LoadFile(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read dataset file %s", path)
	}
	records, err := ParseCSV(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parse dataset file %s", path)
	}
	return New(records), nil
}
