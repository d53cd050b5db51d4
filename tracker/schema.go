package tracker

// Worksheet titles for a Grant Tracker spreadsheet.
const (
	GrantsSheet = "Grants"
	StatusSheet = "Status"
	TagsSheet   = "Tags"
)

// GrantsRange covers the full Grants schema (columns A..N).
const GrantsRange = "Grants!A1:N"

// Columns is the Grants worksheet header row, in column order.
var Columns = []string{
	"ID",
	"Title",
	"Organization",
	"Status",
	"Amount",
	"Primary_Contact",
	"Other_Contacts",
	"Year",
	"Beneficiary",
	"Tags",
	"Cat_A_Percent",
	"Cat_B_Percent",
	"Cat_C_Percent",
	"Cat_D_Percent",
}

// Statuses is the grant lifecycle, in pipeline order. The list seeds the
// Status worksheet that backs the Status column dropdown.
var Statuses = []string{
	"Initial Contact",
	"Meeting",
	"Proposal Development",
	"Stakeholder Review",
	"Approved",
	"Notification",
	"Signing",
	"Disbursement",
	"Active",
	"Finished",
	"Rejected",
	"Deferred",
}

// DefaultTags seeds the Tags worksheet - users add their own rows afterwards.
var DefaultTags = []string{
	"Python",
	"Rust",
	"Security",
	"Infrastructure",
}

// ColumnWidths is the pixel width of each Grants column, index-aligned with
// Columns.
var ColumnWidths = []int64{
	150, // ID
	200, // Title
	150, // Organization
	120, // Status
	100, // Amount
	150, // Primary_Contact
	200, // Other_Contacts
	60,  // Year
	120, // Beneficiary
	150, // Tags
	100, // Cat_A_Percent
	100, // Cat_B_Percent
	100, // Cat_C_Percent
	100, // Cat_D_Percent
}

// Zero-based Grants column indices of the dropdown-validated columns and the
// worksheet ranges their dropdowns draw from.
const (
	StatusColumn = 3 // column D
	TagsColumn   = 9 // column J

	StatusSourceRange = "=Status!$A$2:$A"
	TagsSourceRange   = "=Tags!$A$2:$A"
)
