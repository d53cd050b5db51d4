package commands

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"html/template"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/grant-tracker/grant-tracker-sheets/commands/html"
)

var AuthoriseCmd = Authorise{
	command: command{
		workdir:     DEFAULT_WORKDIR,
		credentials: DEFAULT_CREDENTIALS,
		tokens:      "",
		url:         "",
		debug:       false,
	},

	addr: "localhost:8080",
}

type Authorise struct {
	command
	addr string
}

func (cmd *Authorise) Name() string {
	return "authorise"
}

func (cmd *Authorise) Description() string {
	return "Authorises " + APP + " to access Google Sheets and Google Drive"
}

func (cmd *Authorise) Usage() string {
	return "--credentials <file>"
}

func (cmd *Authorise) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] [--config <file>] authorise [options]\n", APP)
	fmt.Println()
	fmt.Printf("  Runs the OAuth2 flow for the Sheets and Drive APIs and caches the tokens for the other commands.\n")
	fmt.Println("  Not required for service account credentials")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Printf(`    %s authorise --credentials "credentials.json"`, APP)
	fmt.Println()
	fmt.Println()
}

func (cmd *Authorise) FlagSet() *flag.FlagSet {
	flagset := cmd.flagset("authorise")

	flagset.StringVar(&cmd.addr, "addr", cmd.addr, "address:port for the local OAuth2 redirect server")

	return flagset
}

func (cmd *Authorise) Execute(args ...any) error {
	options := args[0].(*Options)

	if err := cmd.resolve(options); err != nil {
		return err
	}

	if strings.TrimSpace(cmd.credentials) == "" {
		return fmt.Errorf("--credentials is a required option")
	}

	b, err := os.ReadFile(cmd.credentials)
	if err != nil {
		return err
	}

	config, err := google.ConfigFromJSON(b, SHEETS, DRIVE)
	if err != nil {
		return fmt.Errorf("invalid OAuth2 client credentials (%w)", err)
	}

	config.RedirectURL = fmt.Sprintf("http://%s/", cmd.addr)

	tokens := cachedTokenFiles(cmd.credentials, cmd.tokensDir())

	if err := cmd.authenticate(config, tokens); err != nil {
		return fmt.Errorf("authorisation error (%w)", err)
	}

	return nil
}

// authenticate runs a local HTTP server for the OAuth2 redirect, opens the
// consent page in a browser and caches the exchanged token at each of the
// token file paths.
func (cmd *Authorise) authenticate(config *oauth2.Config, tokens []string) error {
	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	authorised := make(chan string)

	mux := http.NewServeMux()

	mux.HandleFunc("/", func(w http.ResponseWriter, rq *http.Request) {
		state := rq.FormValue("state")
		code := rq.FormValue("code")

		if state == "state-token" && code != "" {
			fmt.Fprintln(w, "Authorised - you can close this window")
			authorised <- code
			return
		}

		http.Redirect(w, rq, "/auth.html", http.StatusTemporaryRedirect)
	})

	mux.HandleFunc("/auth.html", func(w http.ResponseWriter, rq *http.Request) {
		page := map[string]any{
			"auth": authURL,
		}

		t, err := template.New("auth.html").ParseFS(html.HTML, "auth.html")
		if err != nil {
			http.Error(w, "Internal error formatting page", http.StatusInternalServerError)
			return
		}

		var b bytes.Buffer
		if err := t.Execute(&b, page); err != nil {
			http.Error(w, "Error formatting page", http.StatusInternalServerError)
			return
		}

		w.Write(b.Bytes())
	})

	srv := &http.Server{
		Addr:    cmd.addr,
		Handler: mux,
	}

	failed := make(chan error)

	go func() {
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			failed <- err
		}
	}()

	// ... CTRL-C handler
	interrupt := make(chan os.Signal, 1)

	signal.Notify(interrupt, os.Interrupt)

	// ... open consent page in browser
	page := fmt.Sprintf("http://%s/auth.html", cmd.addr)

	if _, err := exec.Command(_open, page).CombinedOutput(); err != nil {
		fmt.Printf("  Could not open the authorisation page - please open %s in a browser\n", page)
	}

	// ... wait for authorisation
	select {
	case err := <-failed:
		return err

	case <-interrupt:
		fmt.Printf("\n.. cancelled\n\n")

	case code := <-authorised:
		token, err := config.Exchange(context.Background(), code)
		if err != nil {
			return fmt.Errorf("unable to exchange authorisation code for token (%w)", err)
		}

		for _, file := range tokens {
			if err := saveToken(file, token); err != nil {
				return err
			}

			infof("Saved OAuth2 token to %s", file)
		}
	}

	return srv.Shutdown(context.Background())
}
