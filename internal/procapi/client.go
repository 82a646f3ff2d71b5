package procapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"filevora/internal/config"
	"filevora/internal/services"
	"filevora/internal/tools"
)

const userAgent = "FileVora-Go/0.1.0"

// Progress stages reported while a job runs.
const (
	StageUploading  = "uploading"
	StageConverting = "converting"
	StageProcessing = "processing"
)

// ProgressUpdate reports coarse job progress to callers.
type ProgressUpdate struct {
	Stage   string
	Percent float64
	Message string
}

// UploadFile is one file attached to a job.
type UploadFile struct {
	Name string
	Data io.Reader
}

// JobRequest describes a processing job for one tool.
type JobRequest struct {
	Tool    tools.Descriptor
	Files   []UploadFile
	Options map[string]string
}

// JobResult is the backend's answer for a finished job. The size fields are
// only populated by the PDF compressor.
type JobResult struct {
	DownloadURL      string  `json:"download_url"`
	Filename         string  `json:"filename"`
	OriginalSize     int64   `json:"original_size,omitempty"`
	CompressedSize   int64   `json:"compressed_size,omitempty"`
	ReductionPercent float64 `json:"reduction_percent,omitempty"`
}

// Client posts jobs to the processing backend.
type Client struct {
	origin              string
	emailEndpoint       string
	cloudImportEndpoint string
	httpClient          *http.Client
}

// NewClient builds a backend client from configuration.
func NewClient(cfg *config.Config) *Client {
	timeout := time.Duration(cfg.API.RequestTimeout) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Minute
	}
	return &Client{
		origin:              strings.TrimRight(cfg.API.Origin, "/"),
		emailEndpoint:       cfg.API.EmailEndpoint,
		cloudImportEndpoint: cfg.API.CloudImportEndpoint,
		httpClient:          &http.Client{Timeout: timeout},
	}
}

// Process uploads the job's files and waits for the backend result. The
// progress callback, when non-nil, receives stage transitions and upload
// percentages.
func (c *Client) Process(ctx context.Context, req JobRequest, progress func(ProgressUpdate)) (*JobResult, error) {
	tool := req.Tool
	if !tool.HasJob() {
		return nil, services.Wrap(services.ErrValidation, tool.ID, "process", fmt.Sprintf("%s does not accept jobs", tool.Name), nil)
	}
	if len(req.Files) == 0 {
		return nil, services.Wrap(services.ErrValidation, tool.ID, "process", "no input files provided", nil)
	}
	if !tool.Multiple && len(req.Files) > 1 {
		return nil, services.Wrap(services.ErrValidation, tool.ID, "process", fmt.Sprintf("%s accepts a single file", tool.Name), nil)
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if err := writeForm(writer, req); err != nil {
		return nil, services.Wrap(services.ErrTransient, tool.ID, "process", "failed to encode upload", err)
	}
	if err := writer.Close(); err != nil {
		return nil, services.Wrap(services.ErrTransient, tool.ID, "process", "failed to finalize upload", err)
	}

	report(progress, ProgressUpdate{Stage: StageUploading, Percent: 0, Message: "Uploading files"})

	reader := &progressReader{
		r:     body,
		total: int64(body.Len()),
		report: func(pct float64) {
			report(progress, ProgressUpdate{Stage: StageUploading, Percent: pct, Message: "Uploading files"})
		},
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.origin+tool.Endpoint, reader)
	if err != nil {
		return nil, services.Wrap(services.ErrTransient, tool.ID, "process", "failed to build request", err)
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())
	httpReq.Header.Set("User-Agent", userAgent)
	httpReq.ContentLength = reader.total

	report(progress, ProgressUpdate{Stage: StageConverting, Percent: 0, Message: "Waiting for backend"})

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled) {
			return nil, services.Wrap(services.ErrCancelled, tool.ID, "process", "Cancelled", err)
		}
		return nil, services.Wrap(services.ErrUnavailable, tool.ID, "process", "processing service is unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return nil, c.responseError(tool.ID, "process", resp)
	}

	report(progress, ProgressUpdate{Stage: StageProcessing, Percent: 100, Message: "Finalizing"})

	var result JobResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, services.Wrap(services.ErrTransient, tool.ID, "process", "backend returned an invalid response", err)
	}
	if result.DownloadURL == "" {
		return nil, services.Wrap(services.ErrTransient, tool.ID, "process", "backend response is missing a download URL", nil)
	}
	return &result, nil
}

// Download streams a finished result into w. The URL may be relative to the
// configured origin.
func (c *Client) Download(ctx context.Context, downloadURL string, w io.Writer) (int64, error) {
	resolved, err := ResolveDownloadURL(c.origin, downloadURL)
	if err != nil {
		return 0, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, resolved, nil)
	if err != nil {
		return 0, services.Wrap(services.ErrTransient, "", "download", "failed to build download request", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(ctx.Err(), context.Canceled) {
			return 0, services.Wrap(services.ErrCancelled, "", "download", "Cancelled", err)
		}
		return 0, services.Wrap(services.ErrUnavailable, "", "download", "download service is unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return 0, c.responseError("", "download", resp)
	}
	return io.Copy(w, resp.Body)
}

func (c *Client) responseError(tool, operation string, resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	detail := strings.TrimSpace(string(body))
	var parsed struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Detail != "" {
		detail = parsed.Detail
	}
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}
	marker := services.ErrUnavailable
	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		marker = services.ErrValidation
	}
	return services.Wrap(marker, tool, operation, detail, fmt.Errorf("backend returned %d", resp.StatusCode))
}

func report(progress func(ProgressUpdate), update ProgressUpdate) {
	if progress != nil {
		progress(update)
	}
}

type progressReader struct {
	r      io.Reader
	total  int64
	read   int64
	report func(pct float64)
}

func (p *progressReader) Read(buf []byte) (int, error) {
	n, err := p.r.Read(buf)
	if n > 0 && p.total > 0 && p.report != nil {
		p.read += int64(n)
		p.report(float64(p.read) / float64(p.total) * 100)
	}
	return n, err
}
