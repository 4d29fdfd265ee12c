package renderer_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/sspgen/pkg/domain/model"
	"github.com/secmon-lab/sspgen/pkg/domain/types"
	"github.com/secmon-lab/sspgen/pkg/renderer"
)

func TestWriteReport(t *testing.T) {
	outDir := t.TempDir()
	r := renderer.New(outDir, testTime, "")

	report := model.NewValidationReport()
	report.Tally(types.StatusAuditReady)
	report.Tally(types.StatusPOAM)
	report.AddCritical("3.3.1", "Score=3 (non-POAMable) but status is POA&M")
	report.AddWarning("3.1.1", "missing Control description")
	report.EnrichedControls = 2
	report.EvidenceEntries = 5

	path, err := r.WriteReport(context.Background(), report)
	gt.NoError(t, err)

	body, err := os.ReadFile(path)
	gt.NoError(t, err)
	text := string(body)

	gt.S(t, text).Contains("SSP Control Validation Report")
	gt.S(t, text).Contains("Total Controls Processed: 2")
	gt.S(t, text).Contains("Audit Ready: 1")
	gt.S(t, text).Contains("POA&M: 1")
	gt.S(t, text).Contains("Controls with enriched evidence: 2")
	gt.S(t, text).Contains("CRITICAL ERRORS")
	gt.S(t, text).Contains("Control 3.3.1: Score=3 (non-POAMable) but status is POA&M")
	gt.S(t, text).Contains("WARNINGS")
	gt.S(t, text).Contains("Control 3.1.1: missing Control description")
}

func TestWriteReport_NoIssues(t *testing.T) {
	r := renderer.New(t.TempDir(), testTime, "")

	report := model.NewValidationReport()
	report.Tally(types.StatusNotImplemented)

	path, err := r.WriteReport(context.Background(), report)
	gt.NoError(t, err)

	body, err := os.ReadFile(path)
	gt.NoError(t, err)
	text := string(body)

	gt.B(t, strings.Contains(text, "CRITICAL ERRORS")).False()
	gt.B(t, strings.Contains(text, "WARNINGS")).False()
}

func TestWriteRunLog(t *testing.T) {
	outDir := t.TempDir()
	r := renderer.New(outDir, testTime, "")

	sum := &model.RunSummary{
		RunID:     "test-run-id",
		StartedAt: testTime,
		OutputDir: outDir,
		PerFamily: map[types.FamilyCode]int{
			types.FamilyAC: 3,
			types.FamilySC: 1,
		},
		Criticals: 1,
		Warnings:  2,
	}
	sum.AddFile(filepath.Join(outDir, "AC_controls.html"))

	path, err := r.WriteRunLog(sum)
	gt.NoError(t, err)
	gt.S(t, filepath.Base(path)).Equal("run_20250601_120000.log")

	body, err := os.ReadFile(path)
	gt.NoError(t, err)
	text := string(body)

	gt.S(t, text).Contains("run test-run-id")
	gt.S(t, text).Contains("AC_controls.html")
	gt.S(t, text).Contains("AC: 3")
	gt.S(t, text).Contains("SC: 1")
	gt.S(t, text).Contains("critical errors: 1")
	gt.S(t, text).Contains("warnings: 2")
}
