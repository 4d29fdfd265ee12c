package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/sspgen/pkg/domain/model"
	"github.com/secmon-lab/sspgen/pkg/domain/types"
)

func TestSplitDelimited(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "semicolon delimited",
			input: "first;second;third",
			want:  []string{"first", "second", "third"},
		},
		{
			name:  "pipes normalized to semicolons",
			input: "first|second",
			want:  []string{"first", "second"},
		},
		{
			name:  "mixed delimiters",
			input: "first|second;third",
			want:  []string{"first", "second", "third"},
		},
		{
			name:  "trailing periods stripped",
			input: "one sentence.;another.",
			want:  []string{"one sentence", "another"},
		},
		{
			name:  "bullet placeholders dropped",
			input: "real header;bullet_1;bullet_2;real content",
			want:  []string{"real header", "real content"},
		},
		{
			name:  "empty items dropped",
			input: "a;;  ;b",
			want:  []string{"a", "b"},
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "whitespace only",
			input: "   ",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := model.SplitDelimited(tt.input)
			gt.V(t, got).Equal(tt.want)
		})
	}
}

func TestParsePolicyStatement(t *testing.T) {
	p := model.ParsePolicyStatement("Access is restricted;limit sessions;review quarterly")
	gt.S(t, p.Header).Equal("Access is restricted")
	gt.A(t, p.Bullets).Length(2)
	gt.V(t, p.Bullets[0]).Equal("limit sessions")
	gt.V(t, p.Bullets[1]).Equal("review quarterly")

	empty := model.ParsePolicyStatement("header;bullet_1;bullet_2")
	gt.B(t, empty.IsEmpty()).True()

	// A literal "header" item outside the untouched template is real content
	literal := model.ParsePolicyStatement("header;b1;b2")
	gt.S(t, literal.Header).Equal("header")
	gt.A(t, literal.Bullets).Length(2)

	headerOnly := model.ParsePolicyStatement("Single statement.")
	gt.S(t, headerOnly.Header).Equal("Single statement")
	gt.A(t, headerOnly.Bullets).Length(0)
}

func TestControlTitle(t *testing.T) {
	gt.S(t, model.ControlTitle("Limit system access|to authorized users.")).
		Equal("Limit system access, to authorized users")
	gt.S(t, model.ControlTitle("Plain title")).Equal("Plain title")
	gt.S(t, model.ControlTitle("")).Equal("Untitled Control")
}

func TestSortControls(t *testing.T) {
	controls := []*model.Control{
		{ID: "3.10.1"},
		{ID: "3.1.2"},
		{ID: "3.1.1"},
		{ID: "3.2.1"},
	}
	model.SortControls(controls)

	gt.V(t, controls[0].ID).Equal(types.ControlID("3.1.1"))
	gt.V(t, controls[1].ID).Equal(types.ControlID("3.1.2"))
	gt.V(t, controls[2].ID).Equal(types.ControlID("3.2.1"))
	gt.V(t, controls[3].ID).Equal(types.ControlID("3.10.1"))
}

func TestGroupByFamily(t *testing.T) {
	controls := []*model.Control{
		{ID: "3.13.2"},
		{ID: "3.1.3"},
		{ID: "3.13.1"},
		{ID: "3.1.1"},
	}

	groups, order := model.GroupByFamily(controls)

	gt.A(t, order).Length(2)
	gt.V(t, order[0]).Equal(types.FamilyAC)
	gt.V(t, order[1]).Equal(types.FamilySC)

	gt.A(t, groups[types.FamilyAC]).Length(2)
	gt.V(t, groups[types.FamilyAC][0].ID).Equal(types.ControlID("3.1.1"))
	gt.V(t, groups[types.FamilySC][0].ID).Equal(types.ControlID("3.13.1"))
}

func TestMergeEvidence(t *testing.T) {
	merged := model.MergeEvidence(
		[]string{"a", "b"},
		[]string{"b", "c", "a", "d"},
	)
	gt.V(t, merged).Equal([]string{"a", "b", "c", "d"})

	gt.A(t, model.MergeEvidence(nil, nil)).Length(0)
}
