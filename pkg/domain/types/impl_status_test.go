package types_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/sspgen/pkg/domain/types"
)

func TestParseImplStatus(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    types.ImplStatus
		wantErr bool
	}{
		{
			name:  "zero is not implemented",
			input: "0",
			want:  types.StatusNotImplemented,
		},
		{
			name:  "empty is not implemented",
			input: "",
			want:  types.StatusNotImplemented,
		},
		{
			name:  "POA&M",
			input: "POA&M",
			want:  types.StatusPOAM,
		},
		{
			name:  "POAM without ampersand",
			input: "poam",
			want:  types.StatusPOAM,
		},
		{
			name:  "audit ready case insensitive",
			input: "Audit Ready",
			want:  types.StatusAuditReady,
		},
		{
			name:  "audit ready upper",
			input: "AUDIT READY",
			want:  types.StatusAuditReady,
		},
		{
			name:    "unknown value",
			input:   "done",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := types.ParseImplStatus(tt.input)
			if tt.wantErr {
				gt.Error(t, err)
			} else {
				gt.NoError(t, err)
				gt.V(t, got).Equal(tt.want)
			}
		})
	}
}

func TestImplStatus_Display(t *testing.T) {
	gt.S(t, types.StatusPOAM.Display()).Equal("Plan of Action & Milestones (POA&M)")
	gt.S(t, types.StatusAuditReady.Display()).Equal("Audit Ready")
	gt.S(t, types.StatusNotImplemented.Display()).Equal("Not Implemented")
}

func TestAllImplStatuses(t *testing.T) {
	statuses := types.AllImplStatuses()
	gt.A(t, statuses).Length(3)
	for _, s := range statuses {
		gt.B(t, s.IsValid()).True()
	}
}
