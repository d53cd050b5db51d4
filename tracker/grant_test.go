package tracker

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	id := NewID(2026)

	assert.Regexp(t, regexp.MustCompile(`^GT-2026-[0-9a-f]{8}$`), id)
	assert.NotEqual(t, id, NewID(2026))
}

func TestGrantValidate(t *testing.T) {
	grant := Grant{
		Title:        "Compiler Hardening",
		Organization: "OSTIF",
	}

	assert.NoError(t, grant.Validate())
}

func TestGrantValidateWithoutTitle(t *testing.T) {
	grant := Grant{
		Organization: "OSTIF",
	}

	assert.Error(t, grant.Validate())
}

func TestGrantValidateWithoutOrganization(t *testing.T) {
	grant := Grant{
		Title: "Compiler Hardening",
	}

	assert.Error(t, grant.Validate())
}

func TestGrantRow(t *testing.T) {
	grant := Grant{
		ID:             "GT-2026-1a2b3c4d",
		Title:          "Compiler Hardening",
		Organization:   "OSTIF",
		Status:         "Active",
		Amount:         "25000",
		PrimaryContact: "alice@ostif.org",
		Year:           "2026",
		Tags:           "Security",
	}

	header := make([]interface{}, len(Columns))
	for i, column := range Columns {
		header[i] = column
	}

	row := grant.Row(header)

	require.Len(t, row, len(Columns))
	assert.Equal(t, "GT-2026-1a2b3c4d", row[0])
	assert.Equal(t, "Compiler Hardening", row[1])
	assert.Equal(t, "OSTIF", row[2])
	assert.Equal(t, "Active", row[3])
	assert.Equal(t, "25000", row[4])
	assert.Equal(t, "alice@ostif.org", row[5])
	assert.Equal(t, "", row[6])
	assert.Equal(t, "2026", row[7])
	assert.Equal(t, "Security", row[9])
}

func TestGrantRowFollowsHeaderOrder(t *testing.T) {
	grant := Grant{
		ID:           "GT-2026-1a2b3c4d",
		Title:        "Compiler Hardening",
		Organization: "OSTIF",
		Status:       "Active",
	}

	row := grant.Row([]interface{}{"Status", "ID", "Organization", "Title"})

	assert.Equal(t, []interface{}{"Active", "GT-2026-1a2b3c4d", "OSTIF", "Compiler Hardening"}, row)
}

func TestGrantRowMatchesRenamedHeaders(t *testing.T) {
	grant := Grant{
		ID:             "GT-2026-1a2b3c4d",
		PrimaryContact: "alice@ostif.org",
		CatAPercent:    "50",
	}

	row := grant.Row([]interface{}{"ID", "Primary Contact", "cat a percent"})

	assert.Equal(t, []interface{}{"GT-2026-1a2b3c4d", "alice@ostif.org", "50"}, row)
}

func TestGrantRowBlanksUnknownColumns(t *testing.T) {
	grant := Grant{
		ID: "GT-2026-1a2b3c4d",
	}

	row := grant.Row([]interface{}{"ID", "Notes"})

	assert.Equal(t, []interface{}{"GT-2026-1a2b3c4d", ""}, row)
}
