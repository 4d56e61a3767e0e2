package pipeline

import (
	"bytes"
	"encoding/csv"
	"math"
	"strconv"
	"time"

	"github.com/matzehuels/chartkit/pkg/errors"
)

// Table is a parsed CSV data table: a header row naming the columns and the
// data rows below it.
type Table struct {
	Columns []string
	Rows    [][]string
}

// ParseData parses CSV bytes into a Table. The first row is the header;
// every data row must have the same number of fields. Cells are kept as raw
// strings; numeric parsing happens at render time, where an unparseable X
// cell sorts its row after all rows with a valid X.
func ParseData(data []byte) (*Table, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidData, err, "parse CSV data")
	}
	if len(records) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidData, "data has no header row")
	}
	return &Table{Columns: records[0], Rows: records[1:]}, nil
}

// Column returns the index of the named column, -1 when absent.
func (t *Table) Column(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// floatAt parses one cell as a float. Empty cells and unparseable values
// become NaN: the engine keeps them in the arrays but excludes them from
// ranges, so a patchy column renders with gaps instead of failing.
func floatAt(row []string, idx int) float64 {
	if idx < 0 || idx >= len(row) || row[idx] == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(row[idx], 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// timeAt parses one cell as a timestamp with the given layout.
func timeAt(row []string, idx int, layout string) (time.Time, error) {
	if idx < 0 || idx >= len(row) {
		return time.Time{}, errors.New(errors.ErrCodeInvalidData, "missing timestamp cell")
	}
	t, err := time.Parse(layout, row[idx])
	if err != nil {
		return time.Time{}, errors.Wrap(errors.ErrCodeInvalidData, err, "parse timestamp %q", row[idx])
	}
	return t, nil
}
