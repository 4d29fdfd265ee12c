package model

import (
	"fmt"
	"time"

	"github.com/secmon-lab/sspgen/pkg/domain/types"
)

// Issue is a single finding of the validation pass, tied to a control when
// one is known.
type Issue struct {
	ControlID types.ControlID
	Message   string
}

// String renders the issue for the validation report
func (i Issue) String() string {
	if i.ControlID == "" {
		return i.Message
	}
	return fmt.Sprintf("Control %s: %s", i.ControlID, i.Message)
}

// ValidationReport accumulates the outcome of a run: processed counts,
// status tallies, rule violations and warnings. Violations never stop the
// run by themselves; the caller decides whether to abort.
type ValidationReport struct {
	Processed      int
	NotImplemented int
	AuditReady     int
	POAM           int

	EnrichedControls int
	EvidenceEntries  int

	Critical []Issue
	Warnings []Issue
}

// NewValidationReport creates an empty report
func NewValidationReport() *ValidationReport {
	return &ValidationReport{}
}

// AddCritical records a rule violation
func (r *ValidationReport) AddCritical(id types.ControlID, msg string) {
	r.Critical = append(r.Critical, Issue{ControlID: id, Message: msg})
}

// AddWarning records a non-fatal finding
func (r *ValidationReport) AddWarning(id types.ControlID, msg string) {
	r.Warnings = append(r.Warnings, Issue{ControlID: id, Message: msg})
}

// HasCritical reports whether any rule violation was recorded
func (r *ValidationReport) HasCritical() bool {
	return len(r.Critical) > 0
}

// Tally counts a control's status into the summary statistics
func (r *ValidationReport) Tally(status types.ImplStatus) {
	r.Processed++
	switch status {
	case types.StatusPOAM:
		r.POAM++
	case types.StatusAuditReady:
		r.AuditReady++
	default:
		r.NotImplemented++
	}
}

// RunSummary describes what a render run produced
type RunSummary struct {
	RunID        string
	StartedAt    time.Time
	OutputDir    string
	FilesWritten []string
	PerFamily    map[types.FamilyCode]int
	Criticals    int
	Warnings     int
}

// AddFile records a written artifact path
func (s *RunSummary) AddFile(path string) {
	s.FilesWritten = append(s.FilesWritten, path)
}
