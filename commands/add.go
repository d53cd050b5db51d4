package commands

import (
	"context"
	"flag"
	"fmt"
	"strconv"
	"strings"
	"time"

	"google.golang.org/api/sheets/v4"

	"github.com/grant-tracker/grant-tracker-sheets/tracker"
)

var AddCmd = Add{
	command: command{
		workdir:     DEFAULT_WORKDIR,
		credentials: DEFAULT_CREDENTIALS,
		tokens:      "",
		url:         "",
		debug:       false,
	},

	grant: tracker.Grant{
		Status: tracker.Statuses[0],
		Year:   strconv.Itoa(time.Now().Year()),
	},
}

type Add struct {
	command
	grant tracker.Grant
}

func (cmd *Add) Name() string {
	return "add"
}

func (cmd *Add) Description() string {
	return "Appends a grant to the grants worksheet"
}

func (cmd *Add) Usage() string {
	return "--credentials <file> --url <url> --title <title> --organization <organization>"
}

func (cmd *Add) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] [--config <file>] add [options] --url <URL> --title <title> --organization <organization>\n", APP)
	fmt.Println()
	fmt.Println("  Appends a grant row to the grants worksheet, with a generated grant ID. The row")
	fmt.Println("  is laid out to match the live worksheet header")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Printf(`    %s add --credentials "credentials.json" \`, APP)
	fmt.Println()
	fmt.Println(`                       --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" \`)
	fmt.Println(`                       --title "Compiler Hardening" --organization "OSTIF" --amount 25000 --tags "Security"`)
	fmt.Println()
}

func (cmd *Add) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("add")

	flagset.StringVar(&cmd.url, "url", cmd.url, "Spreadsheet URL")
	flagset.StringVar(&cmd.grant.ID, "id", cmd.grant.ID, "Grant ID. Generated as GT-<year>-<hex> if not supplied")
	flagset.StringVar(&cmd.grant.Title, "title", cmd.grant.Title, "Grant title")
	flagset.StringVar(&cmd.grant.Organization, "organization", cmd.grant.Organization, "Grantee organization")
	flagset.StringVar(&cmd.grant.Status, "status", cmd.grant.Status, "Grant status. Defaults to '"+tracker.Statuses[0]+"'")
	flagset.StringVar(&cmd.grant.Amount, "amount", cmd.grant.Amount, "Grant amount")
	flagset.StringVar(&cmd.grant.PrimaryContact, "contact", cmd.grant.PrimaryContact, "Primary contact")
	flagset.StringVar(&cmd.grant.OtherContacts, "contacts", cmd.grant.OtherContacts, "Other contacts")
	flagset.StringVar(&cmd.grant.Year, "year", cmd.grant.Year, "Grant year. Defaults to the current year")
	flagset.StringVar(&cmd.grant.Beneficiary, "beneficiary", cmd.grant.Beneficiary, "Beneficiary")
	flagset.StringVar(&cmd.grant.Tags, "tags", cmd.grant.Tags, "Tags")
	flagset.StringVar(&cmd.grant.CatAPercent, "cat-a", cmd.grant.CatAPercent, "Category A percentage")
	flagset.StringVar(&cmd.grant.CatBPercent, "cat-b", cmd.grant.CatBPercent, "Category B percentage")
	flagset.StringVar(&cmd.grant.CatCPercent, "cat-c", cmd.grant.CatCPercent, "Category C percentage")
	flagset.StringVar(&cmd.grant.CatDPercent, "cat-d", cmd.grant.CatDPercent, "Category D percentage")

	return flagset
}

func (cmd *Add) Execute(args ...any) error {
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

	if err := cmd.grant.Validate(); err != nil {
		return err
	}

	spreadsheetId, err := cmd.spreadsheetId()
	if err != nil {
		return err
	}

	if strings.TrimSpace(cmd.grant.ID) == "" {
		year, err := strconv.Atoi(strings.TrimSpace(cmd.grant.Year))
		if err != nil {
			return fmt.Errorf("invalid year '%v'", cmd.grant.Year)
		}

		cmd.grant.ID = tracker.NewID(year)
	}

	debugf("Spreadsheet - ID:%s  grant:%s", spreadsheetId, cmd.grant.ID)

	ctx := context.Background()

	client, err := authorize(cmd.credentials, cmd.tokensDir(), SHEETS)
	if err != nil {
		return fmt.Errorf("authentication/authorization error (%w)", err)
	}

	google, err := newSheetsService(client)
	if err != nil {
		return err
	}

	// ... lay the row out against the live header
	header, err := google.Spreadsheets.Values.Get(spreadsheetId, tracker.GrantsSheet+"!1:1").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("unable to retrieve worksheet header (%w)", err)
	}

	if len(header.Values) == 0 || len(header.Values[0]) == 0 {
		return fmt.Errorf("worksheet has no header row - was the spreadsheet created with '%s create'?", APP)
	}

	row := sheets.ValueRange{
		Values: [][]interface{}{
			cmd.grant.Row(header.Values[0]),
		},
	}

	if _, err := google.Spreadsheets.Values.Append(spreadsheetId, tracker.GrantsRange, &row).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do(); err != nil {
		return fmt.Errorf("unable to append grant (%w)", err)
	}

	infof("Added grant %s '%s'", cmd.grant.ID, cmd.grant.Title)

	return nil
}
