package procapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"filevora/internal/services"
)

type emailLinkRequest struct {
	Email       string `json:"email"`
	DownloadURL string `json:"download_url"`
	Filename    string `json:"filename"`
}

// SendDownloadLink asks the backend to email a finished download link.
func (c *Client) SendDownloadLink(ctx context.Context, email, downloadURL, filename string) error {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return services.Wrap(services.ErrValidation, "", "email-link", "a valid email address is required", nil)
	}
	resolved, err := ResolveDownloadURL(c.origin, downloadURL)
	if err != nil {
		return err
	}

	payload, err := json.Marshal(emailLinkRequest{
		Email:       email,
		DownloadURL: resolved,
		Filename:    strings.TrimSpace(filename),
	})
	if err != nil {
		return services.Wrap(services.ErrTransient, "", "email-link", "failed to encode request", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.origin+c.emailEndpoint, bytes.NewReader(payload))
	if err != nil {
		return services.Wrap(services.ErrTransient, "", "email-link", "failed to build request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled) {
			return services.Wrap(services.ErrCancelled, "", "email-link", "Cancelled", err)
		}
		return services.Wrap(services.ErrUnavailable, "", "email-link", "email service is unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return c.responseError("", "email-link", resp)
	}
	return nil
}
