package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/sspgen/pkg/domain/model"
	"github.com/secmon-lab/sspgen/pkg/domain/types"
)

func TestValidationReport_Tally(t *testing.T) {
	report := model.NewValidationReport()
	report.Tally(types.StatusNotImplemented)
	report.Tally(types.StatusPOAM)
	report.Tally(types.StatusPOAM)
	report.Tally(types.StatusAuditReady)

	gt.V(t, report.Processed).Equal(4)
	gt.V(t, report.NotImplemented).Equal(1)
	gt.V(t, report.POAM).Equal(2)
	gt.V(t, report.AuditReady).Equal(1)
}

func TestValidationReport_HasCritical(t *testing.T) {
	report := model.NewValidationReport()
	gt.B(t, report.HasCritical()).False()

	report.AddWarning("3.1.1", "just a warning")
	gt.B(t, report.HasCritical()).False()

	report.AddCritical("3.1.2", "rule broken")
	gt.B(t, report.HasCritical()).True()
}

func TestIssue_String(t *testing.T) {
	withID := model.Issue{ControlID: "3.1.1", Message: "broken"}
	gt.S(t, withID.String()).Equal("Control 3.1.1: broken")

	withoutID := model.Issue{Message: "file level problem"}
	gt.S(t, withoutID.String()).Equal("file level problem")
}
