package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config holds the defaults a user would otherwise have to repeat on every
// invocation. All fields are optional and command line options take
// precedence.
type Config struct {
	Workdir     string
	URL         string
	Credentials string
	ShareEmail  string
	ShareRole   string
}

// loadConfig reads a TOML configuration file. A missing file is not an error,
// the defaults apply.
func loadConfig(path string) (Config, error) {
	config := Config{
		ShareRole: "writer",
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	v.SetDefault("share.role", config.ShareRole)

	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return config, nil
		}

		return config, fmt.Errorf("unable to read configuration from %v (%w)", path, err)
	}

	config.Workdir = v.GetString("workdir")
	config.URL = v.GetString("spreadsheet.url")
	config.Credentials = v.GetString("credentials.file")
	config.ShareEmail = v.GetString("share.email")
	config.ShareRole = v.GetString("share.role")

	return config, nil
}
