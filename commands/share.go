package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
)

var ShareCmd = Share{
	command: command{
		workdir:     DEFAULT_WORKDIR,
		credentials: DEFAULT_CREDENTIALS,
		tokens:      "",
		url:         "",
		debug:       false,
	},

	email: "",
	role:  "writer",
}

type Share struct {
	command
	email string
	role  string
}

func (cmd *Share) Name() string {
	return "share"
}

func (cmd *Share) Description() string {
	return "Shares a grant tracking spreadsheet with a user"
}

func (cmd *Share) Usage() string {
	return "--credentials <file> --url <url> --email <email>"
}

func (cmd *Share) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] [--config <file>] share [options] --url <URL> --email <email>\n", APP)
	fmt.Println()
	fmt.Println("  Grants a user access to a spreadsheet, without a notification email")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Printf(`    %s share --credentials "credentials.json" \`, APP)
	fmt.Println()
	fmt.Println(`                         --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" \`)
	fmt.Println(`                         --email "grants@example.com" --role "reader"`)
	fmt.Println()
}

func (cmd *Share) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("share")

	flagset.StringVar(&cmd.url, "url", cmd.url, "Spreadsheet URL")
	flagset.StringVar(&cmd.email, "email", cmd.email, "Email address to share the spreadsheet with")
	flagset.StringVar(&cmd.role, "role", cmd.role, "Access role ('reader', 'commenter' or 'writer')")

	return flagset
}

func (cmd *Share) Execute(args ...any) error {
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

	if strings.TrimSpace(cmd.email) == "" {
		return fmt.Errorf("--email is a required option")
	}

	spreadsheetId, err := cmd.spreadsheetId()
	if err != nil {
		return err
	}

	debugf("Spreadsheet - ID:%s  email:%s  role:%s", spreadsheetId, cmd.email, cmd.role)

	ctx := context.Background()

	client, err := authorize(cmd.credentials, cmd.tokensDir(), DRIVE)
	if err != nil {
		return fmt.Errorf("authentication/authorization error (%w)", err)
	}

	gdrive, err := newDriveService(client)
	if err != nil {
		return err
	}

	if err := share(gdrive, spreadsheetId, cmd.email, cmd.role, ctx); err != nil {
		return err
	}

	infof("Shared spreadsheet with %s as %s", cmd.email, cmd.role)

	return nil
}

// share grants a user access to a Drive file. The notification email is
// suppressed.
func share(gdrive *drive.Service, fileId, email, role string, ctx context.Context) error {
	permission := drive.Permission{
		Type:         "user",
		Role:         role,
		EmailAddress: email,
	}

	_, err := drive.NewPermissionsService(gdrive).
		Create(fileId, &permission).
		SendNotificationEmail(false).
		Context(ctx).
		Do()

	if err != nil {
		var gerr *googleapi.Error
		if errors.As(err, &gerr) && gerr.Code == http.StatusNotFound {
			return fmt.Errorf("spreadsheet %s not found or not accessible with these credentials", fileId)
		}

		return err
	}

	return nil
}
