package html

import (
	"embed"
)

//go:embed auth.html
var HTML embed.FS
