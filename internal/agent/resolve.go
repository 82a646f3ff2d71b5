package agent

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/cases"

	"filevora/internal/procapi"
	"filevora/internal/tools"
)

// ErrNoMatch reports that no tool scored above the threshold.
var ErrNoMatch = errors.New("no matching tool")

// Options tunes the fallback scorer.
type Options struct {
	// ScoreThreshold is the minimum exclusive score a tool must reach.
	ScoreThreshold int
	// MinWordLength skips shorter words when scoring.
	MinWordLength int
}

func (o Options) withDefaults() Options {
	if o.ScoreThreshold <= 0 {
		o.ScoreThreshold = 3
	}
	if o.MinWordLength <= 0 {
		o.MinWordLength = 3
	}
	return o
}

// FileHint describes a file attached to the request.
type FileHint struct {
	Name string
	MIME string
}

// Request is a free-form command plus any attached files.
type Request struct {
	Text  string
	Files []FileHint
}

// Resolution is the chosen tool and the parameters extracted from the text.
type Resolution struct {
	Tool   tools.Descriptor
	Params procapi.JobParams
	Score  int
}

// Resolver maps requests to tools in a registry.
type Resolver struct {
	registry *tools.Registry
	opts     Options
	folder   cases.Caser
}

// NewResolver builds a resolver over the registry.
func NewResolver(registry *tools.Registry, opts Options) *Resolver {
	return &Resolver{
		registry: registry,
		opts:     opts.withDefaults(),
		folder:   cases.Fold(),
	}
}

var (
	convertTargets = []string{"png", "jpg", "jpeg", "webp", "pdf", "gif", "bmp", "tiff", "docx", "word", "epub", "mp3", "mp4"}
	formatVocab    = []string{"png", "jpeg", "webp", "bmp", "tiff", "jpg", "docx"}
	qualityPattern = regexp.MustCompile(`(\d+)\s*%`)
)

// Resolve picks the best tool for the request. The error is ErrNoMatch when
// nothing scores above the threshold.
func (r *Resolver) Resolve(req Request) (*Resolution, error) {
	text := r.folder.String(strings.TrimSpace(req.Text))
	if text == "" {
		return nil, ErrNoMatch
	}

	if id, ok := r.intentTool(text, req.Files); ok {
		if desc, found := r.registry.Lookup(id); found {
			return &Resolution{Tool: desc, Params: r.extractParams(text)}, nil
		}
	}

	desc, score, ok := r.scoreTools(text)
	if !ok {
		return nil, ErrNoMatch
	}
	return &Resolution{Tool: desc, Params: r.extractParams(text), Score: score}, nil
}

// intentTool applies the keyword rules that short-circuit scoring.
func (r *Resolver) intentTool(text string, files []FileHint) (string, bool) {
	if containsAny(text, "merge", "combine", "join") {
		if strings.Contains(text, "video") || firstMIMEContains(files, "video") {
			return "merge-video", true
		}
		return "merge-pdf", true
	}

	if !containsAny(text, "convert", "change", "make", "create", "to ") {
		return "", false
	}
	target := convertTarget(text)
	if target == "" {
		return "", false
	}
	switch {
	case target == "pdf":
		return "image-to-pdf", true
	case sourceIsPDF(files):
		if target == "docx" || target == "word" {
			return "pdf-to-word", true
		}
		return "pdf-converter", true
	case firstMIMEContains(files, "video") && target == "gif":
		return "video-to-gif", true
	case firstMIMEContains(files, "video") && target == "mp4":
		return "video-to-mp4", true
	case target == "mp3":
		return "video-to-mp3", true
	default:
		return "convert-image", true
	}
}

// convertTarget finds the requested output format, preferring the token
// right after the last "to ".
func convertTarget(text string) string {
	if idx := strings.LastIndex(text, "to "); idx >= 0 {
		rest := strings.Fields(text[idx+len("to "):])
		if len(rest) > 0 {
			token := strings.Trim(rest[0], ".,!?")
			for _, candidate := range convertTargets {
				if token == candidate {
					return candidate
				}
			}
		}
	}
	for _, candidate := range convertTargets {
		if strings.Contains(text, candidate) {
			return candidate
		}
	}
	return ""
}

// scoreTools ranks every descriptor against the text.
func (r *Resolver) scoreTools(text string) (tools.Descriptor, int, bool) {
	words := strings.Fields(text)
	var best tools.Descriptor
	bestScore := 0
	for _, desc := range r.registry.All() {
		score := 0
		name := r.folder.String(desc.Name)
		description := r.folder.String(desc.Description)
		if strings.Contains(text, desc.ID) {
			score += 5
		}
		if strings.Contains(text, name) {
			score += 10
		}
		for _, word := range words {
			if len(word) < r.opts.MinWordLength {
				continue
			}
			if strings.Contains(name, word) {
				score += 2
			}
			if strings.Contains(description, word) {
				score++
			}
		}
		if score > bestScore {
			best = desc
			bestScore = score
		}
	}
	if bestScore <= r.opts.ScoreThreshold {
		return tools.Descriptor{}, 0, false
	}
	return best, bestScore, true
}

// extractParams pulls format, angle, and quality hints out of the text.
func (r *Resolver) extractParams(text string) procapi.JobParams {
	params := procapi.JobParams{}

	format := "png"
	for _, candidate := range formatVocab {
		if strings.Contains(text, candidate) {
			format = candidate
			break
		}
	}
	if strings.Contains(text, "word") {
		format = "docx"
	}
	if format == "jpg" {
		format = "jpeg"
	}
	params.Format = strings.ToUpper(format)

	params.Angle = 90
	for _, angle := range []int{270, 180, 90} {
		if strings.Contains(text, strconv.Itoa(angle)) {
			params.Angle = angle
			break
		}
	}

	if containsAny(text, "quality", "compress") {
		if match := qualityPattern.FindStringSubmatch(text); match != nil {
			if q, err := strconv.Atoi(match[1]); err == nil {
				params.Quality = q
			}
		}
	}
	return params
}

func containsAny(text string, needles ...string) bool {
	for _, needle := range needles {
		if strings.Contains(text, needle) {
			return true
		}
	}
	return false
}

func firstMIMEContains(files []FileHint, fragment string) bool {
	if len(files) == 0 {
		return false
	}
	return strings.Contains(strings.ToLower(files[0].MIME), fragment)
}

func sourceIsPDF(files []FileHint) bool {
	if len(files) == 0 {
		return false
	}
	first := files[0]
	return strings.Contains(strings.ToLower(first.MIME), "pdf") ||
		strings.HasSuffix(strings.ToLower(first.Name), ".pdf")
}
