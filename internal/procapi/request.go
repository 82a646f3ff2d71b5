package procapi

import (
	"fmt"
	"io"
	"mime/multipart"
	"sort"
	"strconv"
	"strings"

	"filevora/internal/tools"
)

// JobParams carries the user-facing knobs a tool may accept. Unset fields
// fall back to per-kind defaults.
type JobParams struct {
	Format  string
	Angle   int
	Quality int
	DPI     int
	Level   string
	Manual  bool
}

// Compression levels accepted by the PDF compressor's automatic mode.
var compressionLevels = map[string]struct{}{
	"basic":   {},
	"strong":  {},
	"extreme": {},
}

// BuildOptions translates params into the form fields the tool's endpoint
// expects. A preset format on the descriptor always wins over the caller's
// format choice.
func BuildOptions(desc tools.Descriptor, params JobParams) map[string]string {
	options := make(map[string]string)

	switch desc.Kind {
	case tools.KindRotate:
		angle := params.Angle
		switch angle {
		case 90, 180, 270:
		default:
			angle = 90
		}
		options["angle"] = strconv.Itoa(angle)
		return options

	case tools.KindPDFCompress:
		if params.Manual {
			quality := params.Quality
			if quality <= 0 || quality > 100 {
				quality = 85
			}
			dpi := params.DPI
			if dpi <= 0 {
				dpi = 150
			}
			options["quality"] = strconv.Itoa(quality)
			options["dpi"] = strconv.Itoa(dpi)
		} else {
			level := strings.ToLower(strings.TrimSpace(params.Level))
			if _, ok := compressionLevels[level]; !ok {
				level = "basic"
			}
			options["level"] = level
		}
		return options
	}

	format := ""
	if desc.Kind == tools.KindImageConvert {
		format = strings.ToLower(strings.TrimSpace(params.Format))
	}
	if preset, ok := desc.PresetFormat(); ok {
		format = strings.ToLower(preset)
	}
	if format != "" {
		options[desc.FormatField()] = format
	}
	if desc.Endpoint == "/process/convert-image" {
		quality := params.Quality
		if quality <= 0 || quality > 100 {
			quality = 85
		}
		options["quality"] = strconv.Itoa(quality)
	}
	return options
}

// writeForm encodes the job as multipart form data. Single-file tools use
// the `file` field; multi-file tools repeat `files`.
func writeForm(w *multipart.Writer, req JobRequest) error {
	field := "file"
	if req.Tool.Multiple {
		field = "files"
	}
	for _, file := range req.Files {
		name := strings.TrimSpace(file.Name)
		if name == "" {
			return fmt.Errorf("upload file has no name")
		}
		part, err := w.CreateFormFile(field, name)
		if err != nil {
			return fmt.Errorf("create form file %s: %w", name, err)
		}
		if file.Data != nil {
			if _, err := io.Copy(part, file.Data); err != nil {
				return fmt.Errorf("copy %s: %w", name, err)
			}
		}
	}

	keys := make([]string, 0, len(req.Options))
	for key := range req.Options {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if err := w.WriteField(key, req.Options[key]); err != nil {
			return fmt.Errorf("write field %s: %w", key, err)
		}
	}
	return nil
}
