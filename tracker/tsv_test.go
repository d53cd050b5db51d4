package tracker

import (
	"reflect"
	"strings"
	"testing"

	"google.golang.org/api/sheets/v4"
)

func TestMakeTSV(t *testing.T) {
	expected := `ID	Title	Organization	Status	Amount
GT-2026-1a2b3c4d	Compiler Hardening	OSTIF	Active	25000
GT-2026-5e6f7a8b	Fuzzing Infrastructure	ISRG	Approved	40000
`

	var f strings.Builder
	var data = sheets.ValueRange{
		Values: [][]interface{}{
			{"ID", "Title", "Organization", "Status", "Amount"},
			{"GT-2026-1a2b3c4d", "Compiler Hardening", "OSTIF", "Active", "25000"},
			{"GT-2026-5e6f7a8b", "Fuzzing Infrastructure", "ISRG", "Approved", "40000"},
		},
	}

	if err := MakeTSV(&f, &data); err != nil {
		t.Fatalf("Unexpected error returned from MakeTSV (%v)", err)
	}

	if f.String() != expected {
		t.Errorf("Incorrect TSV\n   expected: %s\n   got:      %s\n", expected, f.String())
	}
}

func TestMakeTSVWithEmptySheet(t *testing.T) {
	var f strings.Builder
	var data = sheets.ValueRange{}

	if err := MakeTSV(&f, &data); err == nil {
		t.Fatalf("Expected error return for empty sheet, got %v", err)
	}
}

func TestMakeTSVWithMissingColumns(t *testing.T) {
	var f strings.Builder
	var data = sheets.ValueRange{
		Values: [][]interface{}{
			{"ID", "Title"},
			{"GT-2026-1a2b3c4d", "Compiler Hardening"},
		},
	}

	if err := MakeTSV(&f, &data); err == nil {
		t.Fatalf("Expected error return for missing columns, got %v", err)
	}
}

func TestParseTSV(t *testing.T) {
	tsv := `ID	Title	Organization	Status
GT-2026-1a2b3c4d	Compiler Hardening	OSTIF	Active
GT-2026-5e6f7a8b	Fuzzing Infrastructure	ISRG	Approved
`

	expectedHeader := sheets.ValueRange{
		Range: "Grants!A1:N1",
		Values: [][]interface{}{
			{"ID", "Title", "Organization", "Status"},
		},
	}

	expectedData := sheets.ValueRange{
		Range: "Grants!A2:N",
		Values: [][]interface{}{
			{"GT-2026-1a2b3c4d", "Compiler Hardening", "OSTIF", "Active"},
			{"GT-2026-5e6f7a8b", "Fuzzing Infrastructure", "ISRG", "Approved"},
		},
	}

	header, data, err := ParseTSV(strings.NewReader(tsv), "Grants!A1:N")
	if err != nil {
		t.Fatalf("Unexpected error returned from ParseTSV (%v)", err)
	}

	if !reflect.DeepEqual(*header, expectedHeader) {
		t.Errorf("Incorrect header range\n   expected: %+v\n   got:      %+v\n", expectedHeader, *header)
	}

	if !reflect.DeepEqual(*data, expectedData) {
		t.Errorf("Incorrect data range\n   expected: %+v\n   got:      %+v\n", expectedData, *data)
	}
}

func TestParseTSVWithInvalidRange(t *testing.T) {
	if _, _, err := ParseTSV(strings.NewReader("ID\n"), "Grants"); err == nil {
		t.Fatalf("Expected error return for invalid range, got %v", err)
	}
}

func TestParseTSVWithEmptyFile(t *testing.T) {
	if _, _, err := ParseTSV(strings.NewReader(""), "Grants!A1:N"); err == nil {
		t.Fatalf("Expected error return for empty file, got %v", err)
	}
}
