package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/sheets/v4"
)

func TestColumnWidthsAlignWithColumns(t *testing.T) {
	assert.Equal(t, len(Columns), len(ColumnWidths))
}

func TestSpreadsheetBody(t *testing.T) {
	body := SpreadsheetBody("Grant Tracker")

	require.NotNil(t, body.Properties)
	assert.Equal(t, "Grant Tracker", body.Properties.Title)

	require.Len(t, body.Sheets, 3)
	assert.Equal(t, GrantsSheet, body.Sheets[0].Properties.Title)
	assert.Equal(t, StatusSheet, body.Sheets[1].Properties.Title)
	assert.Equal(t, TagsSheet, body.Sheets[2].Properties.Title)
	assert.Equal(t, int64(0), body.Sheets[0].Properties.Index)
	assert.Equal(t, int64(1), body.Sheets[1].Properties.Index)
	assert.Equal(t, int64(2), body.Sheets[2].Properties.Index)
}

func TestSeedData(t *testing.T) {
	data := SeedData()

	require.Len(t, data, 3)

	assert.Equal(t, "Grants!A1", data[0].Range)
	require.Len(t, data[0].Values, 1)
	assert.Len(t, data[0].Values[0], len(Columns))
	assert.Equal(t, "ID", data[0].Values[0][0])

	assert.Equal(t, "Status!A1", data[1].Range)
	require.Len(t, data[1].Values, len(Statuses)+1)
	assert.Equal(t, []interface{}{"Status"}, data[1].Values[0])
	assert.Equal(t, []interface{}{"Initial Contact"}, data[1].Values[1])

	assert.Equal(t, "Tags!A1", data[2].Range)
	require.Len(t, data[2].Values, len(DefaultTags)+1)
	assert.Equal(t, []interface{}{"Name"}, data[2].Values[0])
}

func TestFormatRequests(t *testing.T) {
	worksheets := []Worksheet{
		{Title: GrantsSheet, ID: 100},
		{Title: StatusSheet, ID: 200},
		{Title: TagsSheet, ID: 300},
	}

	requests := FormatRequests(worksheets)

	// bold+freeze per sheet, then one width request per Grants column
	require.Len(t, requests, 2*len(worksheets)+len(ColumnWidths))

	bold := requests[0].RepeatCell
	require.NotNil(t, bold)
	assert.Equal(t, int64(100), bold.Range.SheetId)
	assert.Equal(t, int64(1), bold.Range.EndRowIndex)
	assert.True(t, bold.Cell.UserEnteredFormat.TextFormat.Bold)
	assert.InDelta(t, 0.9, bold.Cell.UserEnteredFormat.BackgroundColor.Red, 0.0001)
	assert.Equal(t, "userEnteredFormat(textFormat,backgroundColor)", bold.Fields)

	freeze := requests[1].UpdateSheetProperties
	require.NotNil(t, freeze)
	assert.Equal(t, int64(100), freeze.Properties.SheetId)
	assert.Equal(t, int64(1), freeze.Properties.GridProperties.FrozenRowCount)
	assert.Equal(t, "gridProperties.frozenRowCount", freeze.Fields)

	widths := requests[2*len(worksheets):]
	for i, rq := range widths {
		require.NotNil(t, rq.UpdateDimensionProperties)
		assert.Equal(t, int64(100), rq.UpdateDimensionProperties.Range.SheetId)
		assert.Equal(t, "COLUMNS", rq.UpdateDimensionProperties.Range.Dimension)
		assert.Equal(t, int64(i), rq.UpdateDimensionProperties.Range.StartIndex)
		assert.Equal(t, int64(i)+1, rq.UpdateDimensionProperties.Range.EndIndex)
		assert.Equal(t, ColumnWidths[i], rq.UpdateDimensionProperties.Properties.PixelSize)
	}
}

func TestValidationRequests(t *testing.T) {
	requests := ValidationRequests(100)

	require.Len(t, requests, 2)

	status := requests[0].SetDataValidation
	require.NotNil(t, status)
	assert.Equal(t, int64(100), status.Range.SheetId)
	assert.Equal(t, int64(1), status.Range.StartRowIndex)
	assert.Equal(t, int64(StatusColumn), status.Range.StartColumnIndex)
	assert.Equal(t, int64(StatusColumn+1), status.Range.EndColumnIndex)
	assert.Equal(t, "ONE_OF_RANGE", status.Rule.Condition.Type)
	require.Len(t, status.Rule.Condition.Values, 1)
	assert.Equal(t, StatusSourceRange, status.Rule.Condition.Values[0].UserEnteredValue)
	assert.True(t, status.Rule.ShowCustomUi)
	assert.False(t, status.Rule.Strict)

	tags := requests[1].SetDataValidation
	require.NotNil(t, tags)
	assert.Equal(t, int64(TagsColumn), tags.Range.StartColumnIndex)
	assert.Equal(t, TagsSourceRange, tags.Rule.Condition.Values[0].UserEnteredValue)
}

func TestWorksheets(t *testing.T) {
	spreadsheet := sheets.Spreadsheet{
		Sheets: []*sheets.Sheet{
			{Properties: &sheets.SheetProperties{Title: GrantsSheet, SheetId: 100}},
			{Properties: &sheets.SheetProperties{Title: StatusSheet, SheetId: 200}},
		},
	}

	worksheets := Worksheets(&spreadsheet)

	assert.Equal(t, []Worksheet{
		{Title: GrantsSheet, ID: 100},
		{Title: StatusSheet, ID: 200},
	}, worksheets)
}
