package commands

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func TestTokenFile(t *testing.T) {
	tests := []struct {
		scopes   []string
		expected string
	}{
		{[]string{SHEETS}, "credentials.sheets"},
		{[]string{SHEETS_READONLY}, "credentials.sheets"},
		{[]string{SHEETS, DRIVE}, "credentials.sheets"},
		{[]string{DRIVE}, "credentials.drive"},
		{[]string{DRIVE_READONLY}, "credentials.drive"},
		{[]string{}, "credentials.tokens"},
	}

	for _, test := range tests {
		file := tokenFile("/etc/grant-tracker/credentials.json", "/var/grant-tracker/.google", test.scopes)

		assert.Equal(t, filepath.Join("/var/grant-tracker/.google", test.expected), file)
	}
}

func TestAuthoriseWritesTokensWhereCommandsLookThemUp(t *testing.T) {
	credentials := "/etc/grant-tracker/credentials.json"
	dir := "/var/grant-tracker/.google"

	cached := cachedTokenFiles(credentials, dir)

	// scope sets used by the create/get/put/add/share/inspect commands
	scopes := [][]string{
		{SHEETS, DRIVE},
		{SHEETS},
		{SHEETS_READONLY},
		{DRIVE},
		{DRIVE_READONLY},
	}

	for _, set := range scopes {
		assert.Contains(t, cached, tokenFile(credentials, dir, set))
	}
}

func TestSaveTokenRoundTrip(t *testing.T) {
	file := filepath.Join(t.TempDir(), ".google", "credentials.drive")
	token := oauth2.Token{
		AccessToken:  "ya29.token",
		RefreshToken: "1//refresh",
		TokenType:    "Bearer",
	}

	require.NoError(t, saveToken(file, &token))

	read, err := tokenFromFile(file)

	require.NoError(t, err)
	assert.Equal(t, token.AccessToken, read.AccessToken)
	assert.Equal(t, token.RefreshToken, read.RefreshToken)
	assert.Equal(t, token.TokenType, read.TokenType)
}
