package commands

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"google.golang.org/api/sheets/v4"

	"github.com/grant-tracker/grant-tracker-sheets/tracker"
)

var CreateCmd = Create{
	command: command{
		workdir:     DEFAULT_WORKDIR,
		credentials: DEFAULT_CREDENTIALS,
		tokens:      "",
		url:         "",
		debug:       false,
	},

	title: "Grant Tracker",
	share: "",
}

type Create struct {
	command
	title string
	share string
}

func (cmd *Create) Name() string {
	return "create"
}

func (cmd *Create) Description() string {
	return "Creates and provisions a new grant tracking spreadsheet"
}

func (cmd *Create) Usage() string {
	return "--credentials <file> [--title <title>] [--share <email>]"
}

func (cmd *Create) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] [--config <file>] create [options]\n", APP)
	fmt.Println()
	fmt.Println("  Creates a new spreadsheet with the Grants, Status and Tags worksheets, seeds the")
	fmt.Println("  headers and dropdown sources, applies the formatting and validation rules and")
	fmt.Println("  (optionally) shares it")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Printf(`    %s create --credentials "credentials.json" --title "Grants 2026" --share "grants@example.com"`, APP)
	fmt.Println()
	fmt.Println()
}

func (cmd *Create) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("create")

	flagset.StringVar(&cmd.title, "title", cmd.title, "Spreadsheet title")
	flagset.StringVar(&cmd.share, "share", cmd.share, "Email address to share the new spreadsheet with")

	return flagset
}

func (cmd *Create) Execute(args ...any) error {
	options := args[0].(*Options)

	if err := cmd.resolve(options); err != nil {
		return err
	}

	config, err := loadConfig(options.Config)
	if err != nil {
		return err
	}

	if strings.TrimSpace(cmd.credentials) == "" {
		return fmt.Errorf("--credentials is a required option")
	}

	if strings.TrimSpace(cmd.title) == "" {
		return fmt.Errorf("--title is a required option")
	}

	ctx := context.Background()

	client, err := authorize(cmd.credentials, cmd.tokensDir(), SHEETS, DRIVE)
	if err != nil {
		return fmt.Errorf("authentication/authorization error (%w)", err)
	}

	google, err := newSheetsService(client)
	if err != nil {
		return err
	}

	// ... create
	infof("Creating spreadsheet '%s'", cmd.title)

	spreadsheet, err := google.Spreadsheets.Create(tracker.SpreadsheetBody(cmd.title)).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("unable to create spreadsheet (%w)", err)
	}

	debugf("Spreadsheet - ID:%s", spreadsheet.SpreadsheetId)

	// ... seed headers and dropdown sources
	seed := sheets.BatchUpdateValuesRequest{
		ValueInputOption: "RAW",
		Data:             tracker.SeedData(),
	}

	if _, err := google.Spreadsheets.Values.BatchUpdate(spreadsheet.SpreadsheetId, &seed).Context(ctx).Do(); err != nil {
		return fmt.Errorf("unable to seed spreadsheet (%w)", err)
	}

	// ... format
	worksheets := tracker.Worksheets(spreadsheet)

	format := sheets.BatchUpdateSpreadsheetRequest{
		Requests: tracker.FormatRequests(worksheets),
	}

	if _, err := google.Spreadsheets.BatchUpdate(spreadsheet.SpreadsheetId, &format).Context(ctx).Do(); err != nil {
		return fmt.Errorf("unable to format spreadsheet (%w)", err)
	}

	// ... dropdown validation
	grants, err := getSheet(spreadsheet, tracker.GrantsRange)
	if err != nil {
		return err
	}

	validation := sheets.BatchUpdateSpreadsheetRequest{
		Requests: tracker.ValidationRequests(grants.Properties.SheetId),
	}

	if _, err := google.Spreadsheets.BatchUpdate(spreadsheet.SpreadsheetId, &validation).Context(ctx).Do(); err != nil {
		return fmt.Errorf("unable to set dropdown validation (%w)", err)
	}

	// ... share (failure is not fatal - the spreadsheet exists)
	email := cmd.share
	if email == "" {
		email = config.ShareEmail
	}

	if email != "" {
		gdrive, err := newDriveService(client)
		if err != nil {
			return err
		}

		if err := share(gdrive, spreadsheet.SpreadsheetId, email, config.ShareRole, ctx); err != nil {
			warnf("Unable to share spreadsheet with %s (%v)", email, err)
		} else {
			infof("Shared spreadsheet with %s as %s", email, config.ShareRole)
		}
	}

	infof("Created spreadsheet '%s'", cmd.title)

	fmt.Println()
	fmt.Printf("   %s\n", spreadsheet.SpreadsheetUrl)
	fmt.Println()

	return nil
}
