package scrape

import (
	"fmt"
	"strings"
)

// ConfigError reports a request that cannot be served with the registered
// provider configuration: an unknown race key or a year with no edition.
// Options lists the valid alternatives for the caller.
type ConfigError struct {
	Msg     string
	Options []string
}

func (e *ConfigError) Error() string {
	if len(e.Options) == 0 {
		return e.Msg
	}
	return fmt.Sprintf("%s. Available: %s", e.Msg, strings.Join(e.Options, ", "))
}

func errUnknownRace(key string, valid []string) *ConfigError {
	return &ConfigError{
		Msg:     fmt.Sprintf("unknown race: %s", key),
		Options: valid,
	}
}

func errMissingEdition(raceName string, year int, available []int) *ConfigError {
	opts := make([]string, len(available))
	for i, y := range available {
		opts[i] = fmt.Sprintf("%d", y)
	}
	return &ConfigError{
		Msg:     fmt.Sprintf("no %s edition for %d", raceName, year),
		Options: opts,
	}
}
