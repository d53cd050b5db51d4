package tracker

import (
	"fmt"

	"github.com/google/uuid"
)

// Grant is a single row of the Grants worksheet. All fields are kept as
// strings - the spreadsheet is the system of record and applies its own
// formatting and validation.
type Grant struct {
	ID             string
	Title          string
	Organization   string
	Status         string
	Amount         string
	PrimaryContact string
	OtherContacts  string
	Year           string
	Beneficiary    string
	Tags           string
	CatAPercent    string
	CatBPercent    string
	CatCPercent    string
	CatDPercent    string
}

// NewID generates a grant ID of the form GT-<year>-<8 hex chars>.
func NewID(year int) string {
	return fmt.Sprintf("GT-%d-%.8s", year, uuid.NewString())
}

// Validate checks the fields a grant row cannot do without.
func (g Grant) Validate() error {
	if g.Title == "" {
		return fmt.Errorf("grant is missing a title")
	}

	if g.Organization == "" {
		return fmt.Errorf("grant is missing an organization")
	}

	return nil
}

// Row lays the grant out as a worksheet row matching the live header order,
// with a blank cell for any column the grant has no value for.
func (g Grant) Row(header []interface{}) []interface{} {
	fields := map[string]string{
		normalise("ID"):              g.ID,
		normalise("Title"):           g.Title,
		normalise("Organization"):    g.Organization,
		normalise("Status"):          g.Status,
		normalise("Amount"):          g.Amount,
		normalise("Primary_Contact"): g.PrimaryContact,
		normalise("Other_Contacts"):  g.OtherContacts,
		normalise("Year"):            g.Year,
		normalise("Beneficiary"):     g.Beneficiary,
		normalise("Tags"):            g.Tags,
		normalise("Cat_A_Percent"):   g.CatAPercent,
		normalise("Cat_B_Percent"):   g.CatBPercent,
		normalise("Cat_C_Percent"):   g.CatCPercent,
		normalise("Cat_D_Percent"):   g.CatDPercent,
	}

	row := make([]interface{}, len(header))
	for i, h := range header {
		row[i] = ""
		if v, ok := fields[normalise(fmt.Sprintf("%v", h))]; ok {
			row[i] = v
		}
	}

	return row
}
