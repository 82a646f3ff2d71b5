package tools

import "strings"

// Category groups tools for navigation and listing.
type Category string

const (
	CategoryVideoAudio Category = "Video & Audio"
	CategoryImage      Category = "Image"
	CategoryPDF        Category = "PDF & Documents"
	CategoryGIF        Category = "GIF"
	CategoryOthers     Category = "Others"
)

// Kind discriminates how a tool's job request is built. Option handling
// dispatches on Kind instead of matching tool id strings.
type Kind string

const (
	KindGeneric      Kind = "generic"
	KindRotate       Kind = "rotate"
	KindPDFCompress  Kind = "pdf-compress"
	KindImageConvert Kind = "image-convert"
)

// Endpoint sentinels. Any other endpoint is a real job path under /process/.
const (
	EndpointComingSoon  = "/coming-soon"
	EndpointInteractive = "/webapp"
)

// Descriptor describes one catalog entry. Descriptors are immutable
// process-wide constants; nothing mutates the catalog at runtime.
type Descriptor struct {
	ID            string
	Name          string
	Description   string
	Category      Category
	Endpoint      string
	AcceptedTypes string
	Multiple      bool
	PresetOptions map[string]string
	Interactive   bool
	Kind          Kind
}

// HasJob reports whether the tool submits a server-side processing job.
func (d Descriptor) HasJob() bool {
	return !d.Interactive && d.Endpoint != EndpointComingSoon && d.Endpoint != EndpointInteractive
}

// ComingSoon reports whether the tool is catalogued but not yet implemented.
func (d Descriptor) ComingSoon() bool {
	return d.Endpoint == EndpointComingSoon
}

// PresetFormat returns the preset output format, if any. Tools such as
// "WEBP to PNG" are the generic converter with the format baked in; a preset
// format suppresses the user-facing format option entirely.
func (d Descriptor) PresetFormat() (string, bool) {
	if v, ok := d.PresetOptions["target_format"]; ok && v != "" {
		return v, true
	}
	if v, ok := d.PresetOptions["format"]; ok && v != "" {
		return v, true
	}
	return "", false
}

// FormatField returns the multipart field name carrying the output format.
// The PDF rasterizer predates the rest of the API and takes "format"; every
// other converter takes "target_format".
func (d Descriptor) FormatField() string {
	if strings.Contains(d.Endpoint, "pdf-to-image") {
		return "format"
	}
	return "target_format"
}
