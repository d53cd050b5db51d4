package commands

import (
	"context"
	"flag"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/sheets/v4"
)

const APP = "grant-tracker-sheets"
const VERSION = "v0.1.0"

// Options are the application level command line options, set before the
// subcommand is dispatched.
type Options struct {
	Config string
	Debug  bool
}

// Command is the interface implemented by the CLI subcommands.
type Command interface {
	Name() string
	Description() string
	Usage() string
	Help()
	FlagSet() *flag.FlagSet
	Execute(args ...any) error
}

// Parse matches the first command line argument against the list of commands
// and parses the remaining arguments with the matched command's flagset. A nil
// command (without error) means no argument matched.
func Parse(cli []Command, help Command) (Command, error) {
	var cmd Command
	var args []string

	if flag.NArg() > 0 {
		if flag.Arg(0) == help.Name() {
			return help, nil
		}

		for _, c := range cli {
			if c.Name() == flag.Arg(0) {
				cmd = c
				args = flag.Args()[1:]
				break
			}
		}
	}

	if cmd != nil {
		flagset := cmd.FlagSet()
		if flagset == nil {
			panic(fmt.Sprintf("'%s' command implementation without a flagset", cmd.Name()))
		}

		return cmd, flagset.Parse(args)
	}

	return nil, nil
}

// Help is the 'help' pseudo-command - it lists the commands or, given a
// command name, prints that command's long form help.
type Help struct {
	app string
	cli []Command
}

func NewHelp(app string, cli []Command) *Help {
	return &Help{
		app: app,
		cli: cli,
	}
}

func (h *Help) Name() string {
	return "help"
}

func (h *Help) Description() string {
	return "Displays the help information"
}

func (h *Help) Usage() string {
	return "help <command>"
}

func (h *Help) Help() {
	h.usage()
}

func (h *Help) FlagSet() *flag.FlagSet {
	return flag.NewFlagSet("help", flag.ExitOnError)
}

func (h *Help) Execute(args ...any) error {
	if flag.NArg() > 1 {
		for _, c := range h.cli {
			if c.Name() == flag.Arg(1) {
				c.Help()
				return nil
			}
		}

		fmt.Printf("\n  Invalid command '%s'\n", flag.Arg(1))
	}

	h.usage()

	return nil
}

func (h *Help) usage() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] [--config <file>] <command> [options]\n", h.app)
	fmt.Println()
	fmt.Println("  Commands:")
	fmt.Println()

	for _, c := range h.cli {
		fmt.Printf("    %-13s %s\n", c.Name(), c.Description())
	}

	fmt.Printf("    %-13s Displays this message. Use '%s help <command>' for command specific information\n", "help", h.app)
	fmt.Println()
}

func helpOptions(flagset *flag.FlagSet) {
	fmt.Println("  Options:")
	fmt.Println()

	flagset.VisitAll(func(f *flag.Flag) {
		fmt.Printf("    --%-13s %s\n", f.Name, f.Usage)
	})
}

// command is the set of flags and configuration shared by the subcommands.
type command struct {
	workdir     string
	credentials string
	tokens      string
	url         string
	debug       bool
}

// flagset initialises a flagset with the shared options. Commands add their
// own options afterwards.
func (c *command) flagset(name string) *flag.FlagSet {
	flagset := flag.NewFlagSet(name, flag.ExitOnError)

	flagset.StringVar(&c.workdir, "workdir", c.workdir, "Directory for working files (tokens, revisions, etc)")
	flagset.StringVar(&c.credentials, "credentials", c.credentials, "Path for the Google API credentials JSON file")
	flagset.StringVar(&c.tokens, "tokens", c.tokens, "Directory for cached OAuth2 tokens. Defaults to '<workdir>/.google'")

	return flagset
}

// resolve fills in the options that were not set on the command line from the
// configuration file. Command line options always win.
func (c *command) resolve(options *Options) error {
	c.debug = options.Debug

	config, err := loadConfig(options.Config)
	if err != nil {
		return err
	}

	if c.workdir == DEFAULT_WORKDIR && config.Workdir != "" {
		c.workdir = config.Workdir
	}

	if c.credentials == DEFAULT_CREDENTIALS && config.Credentials != "" {
		c.credentials = config.Credentials
	}

	if strings.TrimSpace(c.url) == "" {
		c.url = config.URL
	}

	return nil
}

func (c *command) spreadsheetId() (string, error) {
	match := regexp.MustCompile(`^https://docs.google.com/spreadsheets/d/(.*?)(?:/.*)?$`).FindStringSubmatch(strings.TrimSpace(c.url))
	if len(match) < 2 {
		return "", fmt.Errorf("invalid spreadsheet URL - expected something like 'https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms'")
	}

	return match[1], nil
}

func (c *command) tokensDir() string {
	if strings.TrimSpace(c.tokens) != "" {
		return c.tokens
	}

	return filepath.Join(c.workdir, ".google")
}

type revision struct {
	id       string
	modified time.Time
}

func latestRevision(gdrive *drive.Service, fileId string, ctx context.Context) (*revision, error) {
	page := ""
	latest := revision{
		id:       "",
		modified: time.Time{},
	}

	for {
		call := drive.NewRevisionsService(gdrive).List(fileId).Fields("nextPageToken", "revisions(id,modifiedTime)")
		if page != "" {
			call.PageToken(page)
		}

		revisions, err := call.Context(ctx).Do()
		if err != nil {
			return nil, err
		}

		for _, rev := range revisions.Revisions {
			datetime, err := time.Parse("2006-01-02T15:04:05.999Z", rev.ModifiedTime)
			if err != nil {
				return nil, err
			}

			if latest.modified.Before(datetime) {
				latest.id = rev.Id
				latest.modified = datetime
			}
		}

		if page = revisions.NextPageToken; page == "" {
			break
		}
	}

	if latest.modified.IsZero() {
		return nil, fmt.Errorf("unable to identify latest revision for file ID %s", fileId)
	}

	return &latest, nil
}

func getSpreadsheet(google *sheets.Service, id string) (*sheets.Spreadsheet, error) {
	spreadsheet, err := google.Spreadsheets.Get(id).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch spreadsheet (%v)", err)
	}

	return spreadsheet, nil
}

func getSheet(spreadsheet *sheets.Spreadsheet, area string) (*sheets.Sheet, error) {
	match := regexp.MustCompile(`(.+?)!.*`).FindStringSubmatch(area)
	if len(match) < 2 {
		return nil, fmt.Errorf("invalid range '%s' - expected something like 'Grants!A1:N'", area)
	}

	name := match[1]
	for _, sheet := range spreadsheet.Sheets {
		if strings.EqualFold(strings.TrimSpace(sheet.Properties.Title), strings.TrimSpace(name)) {
			return sheet, nil
		}
	}

	return nil, fmt.Errorf("unable to identify worksheet for '%s'", area)
}
