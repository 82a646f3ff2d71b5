package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Validate checks the configuration for values that cannot be normalized away.
func (c *Config) Validate() error {
	var problems []string

	if u, err := url.Parse(c.API.Origin); err != nil || u.Scheme == "" || u.Host == "" {
		problems = append(problems, fmt.Sprintf("api.origin %q is not an absolute URL", c.API.Origin))
	} else if u.Scheme != "http" && u.Scheme != "https" {
		problems = append(problems, fmt.Sprintf("api.origin scheme %q must be http or https", u.Scheme))
	}

	switch c.Logging.Format {
	case "console", "json":
	default:
		problems = append(problems, fmt.Sprintf("logging.format %q must be console or json", c.Logging.Format))
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("logging.level %q must be debug, info, warn, or error", c.Logging.Level))
	}

	if c.Progress.UploadTarget >= c.Progress.ProcessTarget {
		problems = append(problems, "progress.upload_target must be below progress.process_target")
	}

	if len(problems) > 0 {
		return errors.New("invalid configuration: " + strings.Join(problems, "; "))
	}
	return nil
}
