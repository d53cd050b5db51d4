package commands

const (
	_etc = "/usr/local/etc/grant-tracker"
	_var = "/usr/local/var/grant-tracker"

	DEFAULT_WORKDIR     = _var
	DEFAULT_CONFIG      = _etc + "/config.toml"
	DEFAULT_CREDENTIALS = _etc + "/.google/credentials.json"

	_open = "open"
)
