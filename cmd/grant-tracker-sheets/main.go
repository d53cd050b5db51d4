package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/grant-tracker/grant-tracker-sheets/commands"
)

var cli = []commands.Command{
	&commands.AuthoriseCmd,
	&commands.CreateCmd,
	&commands.InspectCmd,
	&commands.GetCmd,
	&commands.PutCmd,
	&commands.AddCmd,
	&commands.ShareCmd,
	&commands.VersionCmd,
}

var options = commands.Options{
	Config: commands.DEFAULT_CONFIG,
	Debug:  false,
}

var help = commands.NewHelp(commands.APP, cli)

func main() {
	flag.StringVar(&options.Config, "config", options.Config, "Configuration file")
	flag.BoolVar(&options.Debug, "debug", options.Debug, "Enable debugging information")
	flag.Parse()

	commands.SetDebug(options.Debug)

	cmd, err := commands.Parse(cli, help)
	if err != nil {
		fmt.Printf("\nError parsing command line: %v\n\n", err)
		os.Exit(1)
	}

	if cmd == nil {
		help.Execute(&options)
		os.Exit(1)
	}

	if err := cmd.Execute(&options); err != nil {
		commands.Fatalf("%v", err)
	}
}
