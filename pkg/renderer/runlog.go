package renderer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/sspgen/pkg/domain/model"
	"github.com/secmon-lab/sspgen/pkg/domain/types"
)

// WriteRunLog writes the timestamped run log artifact and returns its path.
// The file name carries the run start time so successive runs never clobber
// each other's logs.
func (r *Renderer) WriteRunLog(sum *model.RunSummary) (string, error) {
	name := "run_" + sum.StartedAt.Format("20060102_150405") + ".log"
	path := filepath.Join(r.outDir, name)

	var b strings.Builder
	fmt.Fprintf(&b, "run %s\n", sum.RunID)
	fmt.Fprintf(&b, "started: %s\n", sum.StartedAt.Format(timeLayout))
	fmt.Fprintf(&b, "output directory: %s\n", sum.OutputDir)

	b.WriteString("\nfiles written:\n")
	for _, file := range sum.FilesWritten {
		b.WriteString("  " + file + "\n")
	}

	if len(sum.PerFamily) > 0 {
		b.WriteString("\nrecords per family:\n")
		for _, fam := range types.AllFamilyCodes() {
			if n, ok := sum.PerFamily[fam]; ok {
				fmt.Fprintf(&b, "  %s: %d\n", fam, n)
			}
		}
	}

	fmt.Fprintf(&b, "\ncritical errors: %d\n", sum.Criticals)
	fmt.Fprintf(&b, "warnings: %d\n", sum.Warnings)

	if err := os.WriteFile(path, []byte(b.String()), 0600); err != nil {
		return "", goerr.Wrap(err, "failed to write run log", goerr.V("path", path))
	}
	return path, nil
}
