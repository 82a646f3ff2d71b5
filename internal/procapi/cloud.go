package procapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"filevora/internal/services"
)

// Cloud providers the backend can import from.
const (
	ProviderGoogle   = "google"
	ProviderDropbox  = "dropbox"
	ProviderOneDrive = "onedrive"
)

// CloudImportRequest asks the backend to fetch a file from a cloud provider
// on the caller's behalf.
type CloudImportRequest struct {
	Provider    string `json:"provider"`
	URL         string `json:"url"`
	Name        string `json:"name"`
	AccessToken string `json:"access_token,omitempty"`
	FileID      string `json:"file_id,omitempty"`
}

// CloudFile is the backend's record of an imported file.
type CloudFile struct {
	Filename    string `json:"filename"`
	DownloadURL string `json:"download_url"`
	Size        int64  `json:"size,omitempty"`
}

// ImportCloudFile submits a cloud import request and returns the staged file.
func (c *Client) ImportCloudFile(ctx context.Context, req CloudImportRequest) (*CloudFile, error) {
	switch req.Provider {
	case ProviderGoogle, ProviderDropbox, ProviderOneDrive:
	default:
		return nil, services.Wrap(services.ErrValidation, "", "cloud-import", fmt.Sprintf("unsupported cloud provider %q", req.Provider), nil)
	}
	if strings.TrimSpace(req.URL) == "" {
		return nil, services.Wrap(services.ErrValidation, "", "cloud-import", "cloud file URL is required", nil)
	}
	if strings.TrimSpace(req.Name) == "" {
		return nil, services.Wrap(services.ErrValidation, "", "cloud-import", "cloud file name is required", nil)
	}

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, services.Wrap(services.ErrTransient, "", "cloud-import", "failed to encode request", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.origin+c.cloudImportEndpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, services.Wrap(services.ErrTransient, "", "cloud-import", "failed to build request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled) {
			return nil, services.Wrap(services.ErrCancelled, "", "cloud-import", "Cancelled", err)
		}
		return nil, services.Wrap(services.ErrUnavailable, "", "cloud-import", "cloud import service is unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return nil, c.responseError("", "cloud-import", resp)
	}

	var file CloudFile
	if err := json.NewDecoder(resp.Body).Decode(&file); err != nil {
		return nil, services.Wrap(services.ErrTransient, "", "cloud-import", "backend returned an invalid response", err)
	}
	return &file, nil
}
