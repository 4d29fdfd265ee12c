package selector_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/sspgen/pkg/domain/model"
	"github.com/secmon-lab/sspgen/pkg/domain/types"
	"github.com/secmon-lab/sspgen/pkg/selector"
)

func controls(ids ...types.ControlID) []*model.Control {
	var out []*model.Control
	for _, id := range ids {
		out = append(out, &model.Control{ID: id})
	}
	return out
}

func TestParseRange(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:  "valid range",
			input: "3.1.1-3.1.5",
		},
		{
			name:  "single element range",
			input: "3.1.2-3.1.2",
		},
		{
			name:    "cross family",
			input:   "3.1.1-3.2.5",
			wantErr: true,
		},
		{
			name:    "reversed",
			input:   "3.1.5-3.1.1",
			wantErr: true,
		},
		{
			name:    "no separator",
			input:   "3.1.1",
			wantErr: true,
		},
		{
			name:    "invalid endpoint",
			input:   "3.1.1-foo",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := selector.ParseRange(tt.input)
			if tt.wantErr {
				gt.Error(t, err)
				gt.B(t, errors.Is(err, selector.ErrInvalidRange)).True()
			} else {
				gt.NoError(t, err)
			}
		})
	}
}

func TestSelection_Validate(t *testing.T) {
	rng, err := selector.ParseRange("3.1.1-3.1.5")
	gt.NoError(t, err)

	gt.NoError(t, (&selector.Selection{}).Validate())
	gt.NoError(t, (&selector.Selection{IDs: []types.ControlID{"3.1.1"}}).Validate())
	gt.NoError(t, (&selector.Selection{Range: rng}).Validate())

	conflicting := &selector.Selection{
		IDs:      []types.ControlID{"3.1.1"},
		Families: []types.FamilyCode{types.FamilyAC},
	}
	err = conflicting.Validate()
	gt.Error(t, err)
	gt.B(t, errors.Is(err, selector.ErrConflictingModes)).True()
}

func TestApply_NoSelection(t *testing.T) {
	input := controls("3.2.1", "3.1.2", "3.1.1")
	selected, warnings := selector.Apply(input, nil)

	gt.A(t, selected).Length(3)
	gt.A(t, warnings).Length(0)
	gt.V(t, selected[0].ID).Equal(types.ControlID("3.1.1"))
	gt.V(t, selected[2].ID).Equal(types.ControlID("3.2.1"))
}

func TestApply_ByIDs(t *testing.T) {
	input := controls("3.1.3", "3.1.1", "3.1.2")
	sel := &selector.Selection{IDs: []types.ControlID{"3.1.3", "3.1.1", "3.9.9"}}

	selected, warnings := selector.Apply(input, sel)

	// Exactly the matched IDs, ascending, regardless of input or flag order
	gt.A(t, selected).Length(2)
	gt.V(t, selected[0].ID).Equal(types.ControlID("3.1.1"))
	gt.V(t, selected[1].ID).Equal(types.ControlID("3.1.3"))

	gt.A(t, warnings).Length(1)
	gt.V(t, warnings[0].ControlID).Equal(types.ControlID("3.9.9"))
}

func TestApply_ByFamilies(t *testing.T) {
	input := controls("3.1.1", "3.13.1", "3.2.1")
	sel := &selector.Selection{Families: []types.FamilyCode{types.FamilyAC, types.FamilySC, types.FamilyMA}}

	selected, warnings := selector.Apply(input, sel)

	gt.A(t, selected).Length(2)
	gt.V(t, selected[0].ID).Equal(types.ControlID("3.1.1"))
	gt.V(t, selected[1].ID).Equal(types.ControlID("3.13.1"))

	// MA matched nothing
	gt.A(t, warnings).Length(1)
}

func TestApply_ByRange(t *testing.T) {
	input := controls("3.1.1", "3.1.2", "3.1.3", "3.1.10", "3.2.2")
	rng, err := selector.ParseRange("3.1.2-3.1.10")
	gt.NoError(t, err)

	selected, warnings := selector.Apply(input, &selector.Selection{Range: rng})

	gt.A(t, selected).Length(3)
	gt.V(t, selected[0].ID).Equal(types.ControlID("3.1.2"))
	gt.V(t, selected[1].ID).Equal(types.ControlID("3.1.3"))
	gt.V(t, selected[2].ID).Equal(types.ControlID("3.1.10"))
	gt.A(t, warnings).Length(0)
}

func TestApply_RangeNoMatch(t *testing.T) {
	input := controls("3.2.1")
	rng, err := selector.ParseRange("3.1.1-3.1.5")
	gt.NoError(t, err)

	selected, warnings := selector.Apply(input, &selector.Selection{Range: rng})
	gt.A(t, selected).Length(0)
	gt.A(t, warnings).Length(1)
}
