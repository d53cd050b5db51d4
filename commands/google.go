package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const (
	SHEETS          = "https://www.googleapis.com/auth/spreadsheets"
	SHEETS_READONLY = "https://www.googleapis.com/auth/spreadsheets.readonly"
	DRIVE           = "https://www.googleapis.com/auth/drive.file"
	DRIVE_READONLY  = "https://www.googleapis.com/auth/drive.readonly"
)

// authorize builds an authenticated HTTP client for the Sheets and Drive
// APIs. Service account credentials are used directly, OAuth2 client
// credentials expect a token cached beforehand by the 'authorise' command.
func authorize(credentials, tokens string, scopes ...string) (*http.Client, error) {
	b, err := os.ReadFile(credentials)
	if err != nil {
		return nil, err
	}

	var detect struct {
		Type string `json:"type"`
	}

	if err := json.Unmarshal(b, &detect); err != nil {
		return nil, fmt.Errorf("invalid credentials file %v (%w)", credentials, err)
	}

	if detect.Type == "service_account" {
		config, err := google.JWTConfigFromJSON(b, scopes...)
		if err != nil {
			return nil, err
		}

		return config.Client(context.Background()), nil
	}

	config, err := google.ConfigFromJSON(b, scopes...)
	if err != nil {
		return nil, err
	}

	return getClient(tokenFile(credentials, tokens, scopes), config)
}

// tokenFile derives the cached token file path from the credentials file
// name, suffixed by the API the token was issued for.
func tokenFile(credentials, dir string, scopes []string) string {
	_, file := filepath.Split(credentials)
	name := strings.TrimSuffix(file, filepath.Ext(file))
	suffix := ".tokens"

	if len(scopes) > 0 {
		switch {
		case strings.HasPrefix(scopes[0], "https://www.googleapis.com/auth/spreadsheets"):
			suffix = ".sheets"

		case strings.HasPrefix(scopes[0], "https://www.googleapis.com/auth/drive"):
			suffix = ".drive"
		}
	}

	return filepath.Join(dir, name+suffix)
}

// cachedTokenFiles are the paths the commands look cached tokens up at. The
// consent flow covers both APIs with a single token, so 'authorise' writes it
// to every path.
func cachedTokenFiles(credentials, dir string) []string {
	return []string{
		tokenFile(credentials, dir, []string{SHEETS}),
		tokenFile(credentials, dir, []string{DRIVE}),
	}
}

func getClient(tokens string, config *oauth2.Config) (*http.Client, error) {
	token, err := tokenFromFile(tokens)
	if err != nil {
		return nil, fmt.Errorf("no cached OAuth2 token at %v - run '%s authorise' first (%w)", tokens, APP, err)
	}

	return config.Client(context.Background(), token), nil
}

func tokenFromFile(file string) (*oauth2.Token, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	token := oauth2.Token{}
	if err := json.NewDecoder(f).Decode(&token); err != nil {
		return nil, err
	}

	return &token, nil
}

func saveToken(path string, token *oauth2.Token) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}

	defer f.Close()

	return json.NewEncoder(f).Encode(token)
}

func newSheetsService(client *http.Client) (*sheets.Service, error) {
	google, err := sheets.NewService(context.Background(), option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("unable to create new Sheets client (%w)", err)
	}

	return google, nil
}

func newDriveService(client *http.Client) (*drive.Service, error) {
	gdrive, err := drive.NewService(context.Background(), option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("unable to create new Drive client (%w)", err)
	}

	return gdrive, nil
}
