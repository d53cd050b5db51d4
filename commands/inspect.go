package commands

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"strings"

	"google.golang.org/api/sheets/v4"
)

var InspectCmd = Inspect{
	command: command{
		workdir:     DEFAULT_WORKDIR,
		credentials: DEFAULT_CREDENTIALS,
		tokens:      "",
		url:         "",
		debug:       false,
	},
}

type Inspect struct {
	command
}

func (cmd *Inspect) Name() string {
	return "inspect"
}

func (cmd *Inspect) Description() string {
	return "Prints a read-only report of a spreadsheet's structure and content"
}

func (cmd *Inspect) Usage() string {
	return "--credentials <file> --url <url>"
}

func (cmd *Inspect) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] [--config <file>] inspect [options] --url <URL>\n", APP)
	fmt.Println()
	fmt.Println("  Reports the spreadsheet metadata, worksheet values, dropdown validation rules,")
	fmt.Println("  named ranges, tables and the latest Drive revision. Requires read-only access only")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Printf(`    %s inspect --credentials "credentials.json" \`, APP)
	fmt.Println()
	fmt.Println(`                           --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms"`)
	fmt.Println()
}

func (cmd *Inspect) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("inspect")

	flagset.StringVar(&cmd.url, "url", cmd.url, "Spreadsheet URL")

	return flagset
}

func (cmd *Inspect) Execute(args ...any) error {
	options := args[0].(*Options)

	if err := cmd.resolve(options); err != nil {
		return err
	}

	if strings.TrimSpace(cmd.credentials) == "" {
		return fmt.Errorf("--credentials is a required option")
	}

	if strings.TrimSpace(cmd.url) == "" {
		return fmt.Errorf("--url is a required option")
	}

	spreadsheetId, err := cmd.spreadsheetId()
	if err != nil {
		return err
	}

	debugf("Spreadsheet - ID:%s", spreadsheetId)

	ctx := context.Background()

	client, err := authorize(cmd.credentials, cmd.tokensDir(), SHEETS_READONLY)
	if err != nil {
		return fmt.Errorf("authentication/authorization error (%w)", err)
	}

	google, err := newSheetsService(client)
	if err != nil {
		return err
	}

	spreadsheet, err := getSpreadsheet(google, spreadsheetId)
	if err != nil {
		return err
	}

	cmd.metadata(spreadsheet)
	cmd.values(google, spreadsheet, ctx)
	cmd.validation(google, spreadsheet, ctx)
	cmd.namedRanges(spreadsheet)
	cmd.tables(spreadsheet)
	cmd.revision(spreadsheetId, ctx)

	fmt.Println()

	return nil
}

func (cmd *Inspect) metadata(spreadsheet *sheets.Spreadsheet) {
	section("Metadata")

	fmt.Printf("  ID:        %s\n", spreadsheet.SpreadsheetId)
	fmt.Printf("  Title:     %s\n", spreadsheet.Properties.Title)
	fmt.Printf("  URL:       %s\n", spreadsheet.SpreadsheetUrl)
	fmt.Printf("  Locale:    %s\n", spreadsheet.Properties.Locale)
	fmt.Printf("  Timezone:  %s\n", spreadsheet.Properties.TimeZone)
	fmt.Println()

	for _, sheet := range spreadsheet.Sheets {
		p := sheet.Properties
		rows := int64(0)
		cols := int64(0)
		if p.GridProperties != nil {
			rows = p.GridProperties.RowCount
			cols = p.GridProperties.ColumnCount
		}

		fmt.Printf("  Sheet %-2d  %-20s ID:%-10d %d rows x %d columns\n", p.Index, p.Title, p.SheetId, rows, cols)
	}
}

func (cmd *Inspect) values(google *sheets.Service, spreadsheet *sheets.Spreadsheet, ctx context.Context) {
	section("Values")

	for _, sheet := range spreadsheet.Sheets {
		title := sheet.Properties.Title
		area := fmt.Sprintf("'%s'!A:Z", title)

		response, err := google.Spreadsheets.Values.Get(spreadsheet.SpreadsheetId, area).Context(ctx).Do()
		if err != nil {
			warnf("Unable to retrieve values for worksheet '%s' (%v)", title, err)
			continue
		}

		fmt.Println()
		fmt.Printf("  %s\n", title)

		if len(response.Values) == 0 {
			fmt.Println("    (empty)")
			continue
		}

		fmt.Printf("    headers: %v\n", join(response.Values[0]))
		fmt.Printf("    records: %d\n", len(response.Values)-1)

		for i, row := range response.Values[1:] {
			if i >= 3 {
				fmt.Printf("    ...\n")
				break
			}

			fmt.Printf("    row %-3d  %v\n", i+2, join(row))
		}
	}
}

// validation fetches the grid data for the first data row of each worksheet
// and reports the dropdown rules by column.
func (cmd *Inspect) validation(google *sheets.Service, spreadsheet *sheets.Spreadsheet, ctx context.Context) {
	section("Validation")

	ranges := []string{}
	for _, sheet := range spreadsheet.Sheets {
		ranges = append(ranges, fmt.Sprintf("'%s'!A2:Z2", sheet.Properties.Title))
	}

	gridded, err := google.Spreadsheets.Get(spreadsheet.SpreadsheetId).
		Ranges(ranges...).
		IncludeGridData(true).
		Context(ctx).
		Do()

	if err != nil {
		warnf("Unable to retrieve validation rules (%v)", err)
		return
	}

	rules := 0
	for _, sheet := range gridded.Sheets {
		for _, data := range sheet.Data {
			for _, row := range data.RowData {
				for ix, cell := range row.Values {
					if cell == nil || cell.DataValidation == nil || cell.DataValidation.Condition == nil {
						continue
					}

					rule := cell.DataValidation
					values := []string{}
					for _, v := range rule.Condition.Values {
						values = append(values, v.UserEnteredValue)
					}

					fmt.Println()
					fmt.Printf("  %s column %s\n", sheet.Properties.Title, columnLabel(int64(ix)))
					fmt.Printf("    condition: %s %v\n", rule.Condition.Type, values)
					fmt.Printf("    strict:    %v\n", rule.Strict)
					fmt.Printf("    dropdown:  %v\n", rule.ShowCustomUi)

					rules++
				}
			}
		}
	}

	if rules == 0 {
		fmt.Println("  (none)")
	}
}

func (cmd *Inspect) namedRanges(spreadsheet *sheets.Spreadsheet) {
	section("Named ranges")

	if len(spreadsheet.NamedRanges) == 0 {
		fmt.Println("  (none)")
		return
	}

	titles := map[int64]string{}
	for _, sheet := range spreadsheet.Sheets {
		titles[sheet.Properties.SheetId] = sheet.Properties.Title
	}

	for _, nr := range spreadsheet.NamedRanges {
		fmt.Printf("  %-20s %s\n", nr.Name, rangeLabel(titles, nr.Range))
	}
}

func (cmd *Inspect) tables(spreadsheet *sheets.Spreadsheet) {
	section("Tables")

	tables := 0
	for _, sheet := range spreadsheet.Sheets {
		if len(sheet.Tables) == 0 {
			continue
		}

		b, err := json.MarshalIndent(sheet.Tables, "  ", "  ")
		if err != nil {
			warnf("Unable to format tables for worksheet '%s' (%v)", sheet.Properties.Title, err)
			continue
		}

		fmt.Println()
		fmt.Printf("  %s\n", sheet.Properties.Title)
		fmt.Printf("  %s\n", string(b))

		tables += len(sheet.Tables)
	}

	if tables == 0 {
		fmt.Println("  (none)")
	}
}

func (cmd *Inspect) revision(spreadsheetId string, ctx context.Context) {
	section("Revision")

	client, err := authorize(cmd.credentials, cmd.tokensDir(), DRIVE_READONLY)
	if err != nil {
		warnf("Unable to authorize for the Drive API (%v)", err)
		return
	}

	gdrive, err := newDriveService(client)
	if err != nil {
		warnf("%v", err)
		return
	}

	latest, err := latestRevision(gdrive, spreadsheetId, ctx)
	if err != nil {
		warnf("Unable to retrieve revisions (%v)", err)
		return
	}

	fmt.Printf("  Latest:    %s\n", latest.id)
	fmt.Printf("  Modified:  %s\n", latest.modified.Format("2006-01-02 15:04:05 MST"))
}

func section(title string) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 60))
	fmt.Printf("  %s\n", title)
	fmt.Println(strings.Repeat("=", 60))
}

func join(row []interface{}) string {
	fields := []string{}
	for _, v := range row {
		fields = append(fields, fmt.Sprintf("%v", v))
	}

	return strings.Join(fields, " | ")
}

// columnLabel converts a zero-based column index to the spreadsheet column
// letter(s) e.g. 0 -> A, 25 -> Z, 26 -> AA.
func columnLabel(ix int64) string {
	label := ""
	for n := ix; n >= 0; n = n/26 - 1 {
		label = string(rune('A'+n%26)) + label
	}

	return label
}

func rangeLabel(titles map[int64]string, r *sheets.GridRange) string {
	if r == nil {
		return "(unbounded)"
	}

	title := titles[r.SheetId]
	from := fmt.Sprintf("%s%d", columnLabel(r.StartColumnIndex), r.StartRowIndex+1)
	to := ""

	if r.EndColumnIndex > 0 {
		to = columnLabel(r.EndColumnIndex - 1)
	}

	if r.EndRowIndex > 0 {
		to = fmt.Sprintf("%s%d", to, r.EndRowIndex)
	}

	if to == "" {
		return fmt.Sprintf("%s!%s", title, from)
	}

	return fmt.Sprintf("%s!%s:%s", title, from, to)
}
