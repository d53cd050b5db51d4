package tracker

import (
	"fmt"
	"strings"

	"google.golang.org/api/sheets/v4"
)

// Table is a rectangular snapshot of a Grants worksheet - a cleaned up header
// row and the data records beneath it.
type Table struct {
	Header  []string
	Records [][]string
}

// Columns that must be present in a Grants worksheet, in the order they are
// moved to the front of the header.
var required = []string{"ID", "Title", "Organization", "Status"}

// MakeTable builds a Table from a Grants worksheet range. The header row is
// indexed by normalised column name, the required columns are moved to the
// front and rows without an ID are discarded. Status values are not checked
// against the Statuses list - the worksheet dropdowns are non-strict.
func MakeTable(data *sheets.ValueRange) (*Table, error) {
	if len(data.Values) == 0 {
		return nil, fmt.Errorf("empty sheet")
	}

	// .. build index
	index := map[string]int{}
	row := data.Values[0]
	for i, v := range row {
		k := normalise(fmt.Sprintf("%v", v))
		if _, ok := index[k]; ok {
			return nil, fmt.Errorf("duplicate column name '%v'", v)
		}

		index[k] = i
	}

	// ... header
	header := []string{}
	for _, column := range required {
		if ix, ok := index[normalise(column)]; ok {
			header = append(header, clean(fmt.Sprintf("%v", row[ix])))
		}
	}

	for _, v := range row {
		if k := normalise(fmt.Sprintf("%v", v)); !isRequired(k) {
			header = append(header, clean(fmt.Sprintf("%v", v)))
		}
	}

	if len(header) == 0 {
		return nil, fmt.Errorf("missing/invalid header row")
	}

	for i, column := range required {
		if len(header) < i+1 || normalise(header[i]) != normalise(column) {
			return nil, fmt.Errorf("missing '%s' column", column)
		}
	}

	// ... records
	records := [][]string{}
	for _, row := range data.Values[1:] {
		if clean(cell(row, index[normalise("ID")])) == "" {
			continue
		}

		record := []string{}
		for _, h := range header {
			v := ""
			if ix, ok := index[normalise(h)]; ok {
				v = cell(row, ix)
			}

			record = append(record, clean(v))
		}

		records = append(records, record)
	}

	return &Table{
		Header:  header,
		Records: records,
	}, nil
}

func isRequired(k string) bool {
	for _, column := range required {
		if k == normalise(column) {
			return true
		}
	}

	return false
}

// cell tolerates the ragged rows the Values API returns - trailing empty
// cells are simply not present in the response.
func cell(row []interface{}, ix int) string {
	if ix < len(row) {
		return fmt.Sprintf("%v", row[ix])
	}

	return ""
}

func clean(v string) string {
	return strings.TrimSpace(v)
}

// normalise lowercases and strips spaces and underscores so that
// 'Primary_Contact', 'Primary Contact' and 'primarycontact' all match.
func normalise(v string) string {
	return strings.ToLower(strings.NewReplacer(" ", "", "_", "").Replace(v))
}
