package tracker

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"

	"google.golang.org/api/sheets/v4"
)

// MakeTSV writes a Grants worksheet range to f as tab-separated records,
// after cleaning it up with MakeTable.
func MakeTSV(f io.Writer, data *sheets.ValueRange) error {
	table, err := MakeTable(data)
	if err != nil {
		return err
	}

	w := csv.NewWriter(f)
	w.Comma = '\t'

	w.Write(table.Header)
	for _, record := range table.Records {
		w.Write(record)
	}

	w.Flush()

	return w.Error()
}

// ParseTSV reads a TSV file and splits it into header and data value ranges
// addressed within area (e.g. 'Grants!A1:N').
func ParseTSV(f io.Reader, area string) (*sheets.ValueRange, *sheets.ValueRange, error) {
	match := regexp.MustCompile(`(.+?)!([a-zA-Z]+)([0-9]+):([a-zA-Z]+)([0-9]+)?`).FindStringSubmatch(area)
	if len(match) < 5 {
		return nil, nil, fmt.Errorf("invalid spreadsheet range '%s'", area)
	}

	name := match[1]
	left := match[2]
	top, _ := strconv.Atoi(match[3])
	right := match[4]

	r := csv.NewReader(f)
	r.Comma = '\t'

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}

	if len(records) == 0 {
		return nil, nil, fmt.Errorf("TSV file is empty")
	}

	// header
	h := make([]interface{}, len(records[0]))
	for i, v := range records[0] {
		h[i] = v
	}

	header := sheets.ValueRange{
		Range:  fmt.Sprintf("%s!%s%v:%s%v", name, left, top, right, top),
		Values: [][]interface{}{h},
	}

	// data
	rows := make([][]interface{}, 0)
	for _, record := range records[1:] {
		row := make([]interface{}, len(record))
		for i, v := range record {
			row[i] = v
		}

		rows = append(rows, row)
	}

	data := sheets.ValueRange{
		Range:  fmt.Sprintf("%s!%s%v:%s", name, left, top+1, right),
		Values: rows,
	}

	return &header, &data, nil
}
