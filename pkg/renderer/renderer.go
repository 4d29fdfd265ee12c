package renderer

import (
	"strings"
	"time"
)

// Renderer writes the per-family documents and run artifacts into a single
// output directory. All artifact bodies stamp the same generation time so
// that re-rendering unchanged input is byte-identical.
type Renderer struct {
	outDir           string
	generatedAt      time.Time
	evidenceBasePath string
}

// New creates a Renderer for the given output directory
func New(outDir string, generatedAt time.Time, evidenceBasePath string) *Renderer {
	return &Renderer{
		outDir:           outDir,
		generatedAt:      generatedAt,
		evidenceBasePath: evidenceBasePath,
	}
}

const timeLayout = "2006-01-02 15:04:05"

func (r *Renderer) generated() string {
	return r.generatedAt.Format(timeLayout)
}

// evidenceRef resolves an evidence path against the configured base path.
// Absolute paths and URLs are kept as-is.
func (r *Renderer) evidenceRef(path string) string {
	if path == "" || r.evidenceBasePath == "" {
		return path
	}
	if strings.HasPrefix(path, "/") || strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return strings.TrimSuffix(r.evidenceBasePath, "/") + "/" + path
}
