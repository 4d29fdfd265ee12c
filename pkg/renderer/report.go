package renderer

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/sspgen/pkg/domain/model"
	"github.com/secmon-lab/sspgen/pkg/utils/safe"
)

const reportFileName = "validation_report.txt"

// WriteReport writes the consolidated validation report artifact and
// returns its path.
func (r *Renderer) WriteReport(ctx context.Context, report *model.ValidationReport) (string, error) {
	path := filepath.Join(r.outDir, reportFileName)
	f, err := os.Create(path) // #nosec G304 - path is derived from config
	if err != nil {
		return "", goerr.Wrap(err, "failed to create validation report", goerr.V("path", path))
	}
	defer safe.Close(ctx, f)

	if err := r.renderReport(f, report); err != nil {
		return "", goerr.Wrap(err, "failed to write validation report", goerr.V("path", path))
	}
	return path, nil
}

func (r *Renderer) renderReport(w io.Writer, report *model.ValidationReport) error {
	var b strings.Builder
	rule := strings.Repeat("=", 80)
	sub := strings.Repeat("-", 40)

	b.WriteString(rule + "\n")
	b.WriteString("SSP Control Validation Report\n")
	b.WriteString("Generated: " + r.generated() + "\n")
	b.WriteString(rule + "\n\n")

	b.WriteString("SUMMARY STATISTICS\n")
	b.WriteString(sub + "\n")
	fmt.Fprintf(&b, "Total Controls Processed: %d\n", report.Processed)

	if report.EnrichedControls > 0 {
		b.WriteString("\nEvidence Enrichment:\n")
		fmt.Fprintf(&b, "  Controls with enriched evidence: %d\n", report.EnrichedControls)
		fmt.Fprintf(&b, "  Total evidence entries: %d\n", report.EvidenceEntries)
	}

	b.WriteString("\nStatus Summary:\n")
	fmt.Fprintf(&b, "  Not Implemented: %d\n", report.NotImplemented)
	fmt.Fprintf(&b, "  Audit Ready: %d\n", report.AuditReady)
	fmt.Fprintf(&b, "  POA&M: %d\n", report.POAM)

	if len(report.Critical) > 0 {
		b.WriteString("\nCRITICAL ERRORS (Must Fix)\n")
		b.WriteString(sub + "\n")
		for _, issue := range report.Critical {
			b.WriteString("[ERROR] " + issue.String() + "\n")
		}
	}

	if len(report.Warnings) > 0 {
		b.WriteString("\nWARNINGS (Should Review)\n")
		b.WriteString(sub + "\n")
		for _, issue := range report.Warnings {
			b.WriteString("[WARN]  " + issue.String() + "\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}
