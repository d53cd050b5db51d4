package tracker

import (
	"google.golang.org/api/sheets/v4"
)

// Worksheet pairs a sheet title with its sheet ID, preserving the order the
// sheets appear in the spreadsheet.
type Worksheet struct {
	Title string
	ID    int64
}

// Worksheets extracts the title/ID pairs from spreadsheet metadata.
func Worksheets(spreadsheet *sheets.Spreadsheet) []Worksheet {
	worksheets := []Worksheet{}
	for _, sheet := range spreadsheet.Sheets {
		worksheets = append(worksheets, Worksheet{
			Title: sheet.Properties.Title,
			ID:    sheet.Properties.SheetId,
		})
	}

	return worksheets
}

// SpreadsheetBody is the creation request for a Grant Tracker spreadsheet:
// the Grants sheet followed by the two dropdown source sheets.
func SpreadsheetBody(title string) *sheets.Spreadsheet {
	return &sheets.Spreadsheet{
		Properties: &sheets.SpreadsheetProperties{
			Title: title,
		},
		Sheets: []*sheets.Sheet{
			{Properties: &sheets.SheetProperties{Title: GrantsSheet, Index: 0}},
			{Properties: &sheets.SheetProperties{Title: StatusSheet, Index: 1}},
			{Properties: &sheets.SheetProperties{Title: TagsSheet, Index: 2}},
		},
	}
}

// SeedData is the initial cell content for a new spreadsheet: the Grants
// header row and the Status/Tags dropdown source columns (each with its own
// header).
func SeedData() []*sheets.ValueRange {
	grants := make([]interface{}, len(Columns))
	for i, column := range Columns {
		grants[i] = column
	}

	statuses := [][]interface{}{{"Status"}}
	for _, status := range Statuses {
		statuses = append(statuses, []interface{}{status})
	}

	tags := [][]interface{}{{"Name"}}
	for _, tag := range DefaultTags {
		tags = append(tags, []interface{}{tag})
	}

	return []*sheets.ValueRange{
		{
			Range:  GrantsSheet + "!A1",
			Values: [][]interface{}{grants},
		},
		{
			Range:  StatusSheet + "!A1",
			Values: statuses,
		},
		{
			Range:  TagsSheet + "!A1",
			Values: tags,
		},
	}
}

// FormatRequests builds the batch update that formats a freshly created
// spreadsheet: a bold header row on a grey background, a frozen header row on
// every sheet and fixed column widths on the Grants sheet.
func FormatRequests(worksheets []Worksheet) []*sheets.Request {
	requests := []*sheets.Request{}

	for _, worksheet := range worksheets {
		requests = append(requests, &sheets.Request{
			RepeatCell: &sheets.RepeatCellRequest{
				Range: &sheets.GridRange{
					SheetId:       worksheet.ID,
					StartRowIndex: 0,
					EndRowIndex:   1,
				},
				Cell: &sheets.CellData{
					UserEnteredFormat: &sheets.CellFormat{
						TextFormat: &sheets.TextFormat{
							Bold: true,
						},
						BackgroundColor: &sheets.Color{
							Red:   0.9,
							Green: 0.9,
							Blue:  0.9,
						},
					},
				},
				Fields: "userEnteredFormat(textFormat,backgroundColor)",
			},
		})

		requests = append(requests, &sheets.Request{
			UpdateSheetProperties: &sheets.UpdateSheetPropertiesRequest{
				Properties: &sheets.SheetProperties{
					SheetId: worksheet.ID,
					GridProperties: &sheets.GridProperties{
						FrozenRowCount: 1,
					},
				},
				Fields: "gridProperties.frozenRowCount",
			},
		})
	}

	for _, worksheet := range worksheets {
		if worksheet.Title == GrantsSheet {
			for column, width := range ColumnWidths {
				requests = append(requests, &sheets.Request{
					UpdateDimensionProperties: &sheets.UpdateDimensionPropertiesRequest{
						Range: &sheets.DimensionRange{
							SheetId:    worksheet.ID,
							Dimension:  "COLUMNS",
							StartIndex: int64(column),
							EndIndex:   int64(column) + 1,
						},
						Properties: &sheets.DimensionProperties{
							PixelSize: width,
						},
						Fields: "pixelSize",
					},
				})
			}
		}
	}

	return requests
}

// ValidationRequests builds the dropdown validation rules for the Status and
// Tags columns of the Grants sheet. The rules are deliberately non-strict -
// free text stays allowed, the dropdown is a convenience.
func ValidationRequests(grantsSheetID int64) []*sheets.Request {
	dropdown := func(column int64, source string) *sheets.Request {
		return &sheets.Request{
			SetDataValidation: &sheets.SetDataValidationRequest{
				Range: &sheets.GridRange{
					SheetId:          grantsSheetID,
					StartRowIndex:    1,
					StartColumnIndex: column,
					EndColumnIndex:   column + 1,
				},
				Rule: &sheets.DataValidationRule{
					Condition: &sheets.BooleanCondition{
						Type: "ONE_OF_RANGE",
						Values: []*sheets.ConditionValue{
							{UserEnteredValue: source},
						},
					},
					ShowCustomUi: true,
					Strict:       false,
				},
			},
		}
	}

	return []*sheets.Request{
		dropdown(StatusColumn, StatusSourceRange),
		dropdown(TagsColumn, TagsSourceRange),
	}
}
