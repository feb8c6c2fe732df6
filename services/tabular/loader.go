package tabular

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rcet-nz/rteqc-api/services"
)

// timestampLayouts are tried in order when parsing the designated timestamp
// column. The pipeline writes ISO-8601 without a zone, but older runs used
// space-separated and date-only forms.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006/01/02 15:04:05",
	"2006-01-02",
}

// Load reads a delimited file into a Table. The header row defines the
// column set; the column at timestampColumn (zero-based) is parsed as a
// datetime. A timestampColumn outside the header range leaves all columns
// to type inference. The whole file is read into memory.
func Load(path string, timestampColumn int) (*Table, error) {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return nil, services.WrapError(services.ErrorTypeNotFound,
			fmt.Sprintf("%s does not exist", path), err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, services.WrapError(services.ErrorTypeUnavailable,
			fmt.Sprintf("cannot open %s", path), err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, services.WrapError(services.ErrorTypeParse,
			fmt.Sprintf("%s is not valid delimited tabular data", path), err)
	}
	if len(records) == 0 {
		return nil, services.WrapError(services.ErrorTypeParse,
			fmt.Sprintf("%s has no header row", path), nil)
	}

	header := records[0]
	cells := records[1:]

	columns := make([]Column, len(header))
	for i, name := range header {
		columns[i] = Column{Name: strings.TrimSpace(name), Type: inferColumnType(cells, i)}
	}
	if timestampColumn >= 0 && timestampColumn < len(columns) {
		columns[timestampColumn].Type = TypeDatetime
	}

	rows := make([][]interface{}, 0, len(cells))
	for rowIdx, record := range cells {
		row := make([]interface{}, len(columns))
		for i := range columns {
			value, err := parseCell(record[i], columns[i].Type)
			if err != nil {
				return nil, services.WrapError(services.ErrorTypeParse,
					fmt.Sprintf("%s row %d column %q: %v", path, rowIdx+1, columns[i].Name, err), err)
			}
			row[i] = value
		}
		rows = append(rows, row)
	}

	return &Table{Columns: columns, Rows: rows}, nil
}

// inferColumnType reports number when every non-empty cell in the column
// parses as a float, string otherwise.
func inferColumnType(records [][]string, col int) ColumnType {
	sawValue := false
	for _, record := range records {
		if col >= len(record) {
			continue
		}
		cell := strings.TrimSpace(record[col])
		if cell == "" {
			continue
		}
		sawValue = true
		if _, err := strconv.ParseFloat(cell, 64); err != nil {
			return TypeString
		}
	}
	if !sawValue {
		return TypeString
	}
	return TypeNumber
}

func parseCell(cell string, typ ColumnType) (interface{}, error) {
	cell = strings.TrimSpace(cell)
	switch typ {
	case TypeNumber:
		if cell == "" {
			return nil, nil
		}
		v, err := strconv.ParseFloat(cell, 64)
		if err != nil {
			return nil, err
		}
		return v, nil
	case TypeDatetime:
		if cell == "" {
			return nil, nil
		}
		ts, err := ParseTimestamp(cell)
		if err != nil {
			return nil, err
		}
		return ts, nil
	default:
		return cell, nil
	}
}

// ParseTimestamp parses a textual date-time using the known pipeline layouts.
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised timestamp %q", s)
}

// FormatTimestamp renders a timestamp the way the wire format carries it:
// second precision, with a millisecond suffix only when one is present.
func FormatTimestamp(ts time.Time) string {
	if ts.Nanosecond() != 0 {
		return ts.Format("2006-01-02T15:04:05.000")
	}
	return ts.Format("2006-01-02T15:04:05")
}
