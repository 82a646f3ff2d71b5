package cloudpick

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"filevora/internal/procapi"
	"filevora/internal/services"
)

// ErrPickerCancelled reports that the user dismissed a provider's file
// picker. It is silent: callers reset without surfacing an error.
var ErrPickerCancelled = fmt.Errorf("%w: picker dismissed", services.ErrCancelled)

// Pick is a file chosen from a cloud provider.
type Pick struct {
	Provider    string
	Name        string
	URL         string
	FileID      string
	AccessToken string
}

var driveFilePattern = regexp.MustCompile(`/file/d/([^/]+)`)

// Normalize converts a pick into a backend import request with a
// direct-download URL.
func Normalize(pick Pick) (procapi.CloudImportRequest, error) {
	name := strings.TrimSpace(pick.Name)
	if name == "" {
		return procapi.CloudImportRequest{}, services.Wrap(services.ErrValidation, "", "cloud-pick", "picked file has no name", nil)
	}

	switch pick.Provider {
	case procapi.ProviderDropbox:
		direct, err := dropboxDirectURL(pick.URL)
		if err != nil {
			return procapi.CloudImportRequest{}, err
		}
		return procapi.CloudImportRequest{
			Provider: procapi.ProviderDropbox,
			URL:      direct,
			Name:     name,
		}, nil

	case procapi.ProviderGoogle:
		fileID, err := driveFileID(pick.URL, pick.FileID)
		if err != nil {
			return procapi.CloudImportRequest{}, err
		}
		return procapi.CloudImportRequest{
			Provider:    procapi.ProviderGoogle,
			URL:         "https://www.googleapis.com/drive/v3/files/" + fileID + "?alt=media",
			Name:        name,
			AccessToken: pick.AccessToken,
			FileID:      fileID,
		}, nil

	case procapi.ProviderOneDrive:
		direct, err := onedriveDirectURL(pick.URL)
		if err != nil {
			return procapi.CloudImportRequest{}, err
		}
		return procapi.CloudImportRequest{
			Provider: procapi.ProviderOneDrive,
			URL:      direct,
			Name:     name,
		}, nil

	default:
		return procapi.CloudImportRequest{}, services.Wrap(services.ErrValidation, "", "cloud-pick", fmt.Sprintf("unsupported cloud provider %q", pick.Provider), nil)
	}
}

// dropboxDirectURL rewrites a Dropbox share link to force a direct download
// by setting dl=1.
func dropboxDirectURL(raw string) (string, error) {
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || parsed.Host == "" {
		return "", services.Wrap(services.ErrValidation, "", "cloud-pick", "Dropbox link is malformed", err)
	}
	if !strings.HasSuffix(parsed.Host, "dropbox.com") && !strings.HasSuffix(parsed.Host, "dropboxusercontent.com") {
		return "", services.Wrap(services.ErrValidation, "", "cloud-pick", "link is not a Dropbox URL", nil)
	}
	query := parsed.Query()
	query.Set("dl", "1")
	parsed.RawQuery = query.Encode()
	return parsed.String(), nil
}

// driveFileID pulls the file id out of a Drive share link, preferring an
// explicit id when the picker already supplied one.
func driveFileID(raw, explicit string) (string, error) {
	if explicit = strings.TrimSpace(explicit); explicit != "" {
		return explicit, nil
	}
	parsed, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || parsed.Host == "" {
		return "", services.Wrap(services.ErrValidation, "", "cloud-pick", "Google Drive link is malformed", err)
	}
	if match := driveFilePattern.FindStringSubmatch(parsed.Path); match != nil {
		return match[1], nil
	}
	if id := parsed.Query().Get("id"); id != "" {
		return id, nil
	}
	return "", services.Wrap(services.ErrValidation, "", "cloud-pick", "Google Drive link has no file id", nil)
}

// onedriveDirectURL redeems a OneDrive share link through the shares API,
// which follows the link to the file content without authentication.
func onedriveDirectURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Host == "" {
		return "", services.Wrap(services.ErrValidation, "", "cloud-pick", "OneDrive link is malformed", err)
	}
	encoded := base64.RawURLEncoding.EncodeToString([]byte(raw))
	return "https://api.onedrive.com/v1.0/shares/u!" + encoded + "/root/content", nil
}
