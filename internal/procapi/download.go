package procapi

import (
	"net/url"
	"strings"

	"filevora/internal/services"
)

// ResolveDownloadURL turns the backend's download reference into an absolute
// URL. Absolute http(s) URLs pass through unchanged; paths are joined with
// the configured origin.
func ResolveDownloadURL(origin, raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", services.Wrap(services.ErrValidation, "", "download", "download URL is empty", nil)
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return "", services.Wrap(services.ErrValidation, "", "download", "download URL is malformed", err)
	}
	if parsed.Scheme == "http" || parsed.Scheme == "https" {
		return raw, nil
	}
	if parsed.Scheme != "" {
		return "", services.Wrap(services.ErrValidation, "", "download", "download URL uses an unsupported scheme", nil)
	}
	if !strings.HasPrefix(raw, "/") {
		raw = "/" + raw
	}
	return strings.TrimRight(origin, "/") + raw, nil
}
