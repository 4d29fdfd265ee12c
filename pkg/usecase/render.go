package usecase

import (
	"context"
	"os"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/sspgen/pkg/domain/model"
	"github.com/secmon-lab/sspgen/pkg/domain/types"
	"github.com/secmon-lab/sspgen/pkg/loader"
	"github.com/secmon-lab/sspgen/pkg/renderer"
	"github.com/secmon-lab/sspgen/pkg/selector"
	"github.com/secmon-lab/sspgen/pkg/utils/logging"
)

// ErrCriticalValidation is returned by Render when abort-on-error is
// configured and the validation pass found rule violations
var ErrCriticalValidation = goerr.New("critical validation errors found")

// RenderInput describes one render run
type RenderInput struct {
	InputCSV         string
	EvidenceCSV      string
	OutputDir        string
	HTML             bool
	DOCX             bool
	Validate         bool
	EvidenceBasePath string
	Selection        *selector.Selection
}

// RenderOutput carries the run artifacts' metadata back to the caller
type RenderOutput struct {
	Summary *model.RunSummary
	Report  *model.ValidationReport
}

// Render executes the full pipeline: load, enrich, filter, validate, group,
// render, write. One pass, no shared state beyond the in-memory record set.
func (uc *UseCases) Render(ctx context.Context, in RenderInput) (*RenderOutput, error) {
	logger := logging.From(ctx)

	if err := in.Selection.Validate(); err != nil {
		return nil, err
	}

	controls, report, err := uc.collect(ctx, in)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(in.OutputDir, 0750); err != nil {
		return nil, goerr.Wrap(err, "failed to create output directory", goerr.V("dir", in.OutputDir))
	}

	if in.Validate {
		uc.ValidateControls(ctx, controls, report)
	} else {
		logger.Info("Validation skipped")
		tallyControls(controls, report)
	}

	summary := &model.RunSummary{
		RunID:     uuid.New().String(),
		StartedAt: uc.now(),
		OutputDir: in.OutputDir,
		PerFamily: make(map[types.FamilyCode]int),
	}

	out := &RenderOutput{Summary: summary, Report: report}

	r := renderer.New(in.OutputDir, summary.StartedAt, in.EvidenceBasePath)

	if report.HasCritical() && uc.abortOnError {
		if err := uc.writeRunArtifacts(ctx, r, summary, report); err != nil {
			return out, err
		}
		return out, goerr.Wrap(ErrCriticalValidation, "rendering aborted", goerr.V("criticals", len(report.Critical)))
	}

	groups, order := model.GroupByFamily(controls)
	for _, fam := range order {
		famControls := groups[fam]
		summary.PerFamily[fam] = len(famControls)

		if in.HTML {
			path, err := r.RenderHTML(ctx, fam, famControls)
			if err != nil {
				return out, err
			}
			summary.AddFile(path)
			logger.Info("Generated HTML", "family", fam, "path", path, "controls", len(famControls))
		}

		if in.DOCX {
			path, err := r.RenderDOCX(ctx, fam, famControls)
			if err != nil {
				return out, err
			}
			summary.AddFile(path)
			logger.Info("Generated DOCX", "family", fam, "path", path, "controls", len(famControls))
		}
	}

	if len(order) == 0 {
		logger.Warn("No controls matched, no family documents written")
	}

	if err := uc.writeRunArtifacts(ctx, r, summary, report); err != nil {
		return out, err
	}

	return out, nil
}

// ValidateOnly runs the pipeline up to validation and writes only the
// report artifact.
func (uc *UseCases) ValidateOnly(ctx context.Context, in RenderInput) (*model.ValidationReport, error) {
	if err := in.Selection.Validate(); err != nil {
		return nil, err
	}

	controls, report, err := uc.collect(ctx, in)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(in.OutputDir, 0750); err != nil {
		return nil, goerr.Wrap(err, "failed to create output directory", goerr.V("dir", in.OutputDir))
	}

	uc.ValidateControls(ctx, controls, report)

	r := renderer.New(in.OutputDir, uc.now(), in.EvidenceBasePath)
	path, err := r.WriteReport(ctx, report)
	if err != nil {
		return report, err
	}
	logging.From(ctx).Info("Validation report written", "path", path)

	return report, nil
}

// collect loads the input, applies evidence enrichment and the selection,
// and seeds the report with all accumulated warnings.
func (uc *UseCases) collect(ctx context.Context, in RenderInput) ([]*model.Control, *model.ValidationReport, error) {
	logger := logging.From(ctx)
	report := model.NewValidationReport()

	loaded, err := loader.LoadControls(in.InputCSV)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("Loaded controls", "path", in.InputCSV, "count", len(loaded.Controls), "skipped", len(loaded.Warnings))
	report.Warnings = append(report.Warnings, loaded.Warnings...)

	if in.EvidenceCSV != "" {
		evidence, warnings, err := loader.LoadEvidence(in.EvidenceCSV)
		if err != nil {
			return nil, nil, err
		}
		report.Warnings = append(report.Warnings, warnings...)
		loader.Enrich(loaded.Controls, evidence)
		report.EnrichedControls = len(evidence)
		report.EvidenceEntries = evidence.TotalEntries()
		logger.Info("Evidence enrichment applied", "controls", len(evidence), "entries", evidence.TotalEntries())
	}

	selected, selWarnings := selector.Apply(loaded.Controls, in.Selection)
	report.Warnings = append(report.Warnings, selWarnings...)
	if !in.Selection.IsEmpty() {
		logger.Info("Selection applied", "selected", len(selected), "total", len(loaded.Controls))
	}

	return selected, report, nil
}

// writeRunArtifacts writes the validation report and the run log
func (uc *UseCases) writeRunArtifacts(ctx context.Context, r *renderer.Renderer, summary *model.RunSummary, report *model.ValidationReport) error {
	logger := logging.From(ctx)

	reportPath, err := r.WriteReport(ctx, report)
	if err != nil {
		return err
	}
	summary.AddFile(reportPath)
	summary.Criticals = len(report.Critical)
	summary.Warnings = len(report.Warnings)

	logPath, err := r.WriteRunLog(summary)
	if err != nil {
		return err
	}

	logger.Info("Run artifacts written", "report", reportPath, "log", logPath)
	return nil
}
