package selector

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/sspgen/pkg/domain/model"
	"github.com/secmon-lab/sspgen/pkg/domain/types"
)

// ErrConflictingModes is returned when more than one selection mode is
// supplied. The caller must pick at most one of: explicit IDs, family codes,
// or a single ID range.
var ErrConflictingModes = goerr.New("conflicting selection modes")

// ErrInvalidRange is returned when a range expression cannot be parsed or
// spans more than one family
var ErrInvalidRange = goerr.New("invalid control range")

// IDRange is a contiguous inclusive range of control IDs within one family
type IDRange struct {
	Start types.ControlID
	End   types.ControlID
}

// ParseRange parses a range expression of the form "3.1.1-3.1.5". Both
// endpoints must be valid IDs of the same family, in ascending order.
func ParseRange(s string) (*IDRange, error) {
	parts := strings.SplitN(strings.TrimSpace(s), "-", 2)
	if len(parts) != 2 {
		return nil, goerr.Wrap(ErrInvalidRange, "range must be of the form A-B", goerr.V("range", s))
	}

	start, err := types.ParseControlID(parts[0])
	if err != nil {
		return nil, goerr.Wrap(ErrInvalidRange, "invalid range start", goerr.V("range", s))
	}
	end, err := types.ParseControlID(parts[1])
	if err != nil {
		return nil, goerr.Wrap(ErrInvalidRange, "invalid range end", goerr.V("range", s))
	}

	if !start.SameFamily(end) {
		return nil, goerr.Wrap(ErrInvalidRange, "range must stay within one family", goerr.V("range", s))
	}
	if end.Less(start) {
		return nil, goerr.Wrap(ErrInvalidRange, "range end precedes range start", goerr.V("range", s))
	}

	return &IDRange{Start: start, End: end}, nil
}

// Contains reports whether id falls inside the range, inclusive
func (r *IDRange) Contains(id types.ControlID) bool {
	if !id.SameFamily(r.Start) {
		return false
	}
	return !id.Less(r.Start) && !r.End.Less(id)
}

// Selection describes which control records a run should process. An empty
// selection means all records.
type Selection struct {
	IDs      []types.ControlID
	Families []types.FamilyCode
	Range    *IDRange
}

// IsEmpty reports whether no selection mode was supplied
func (s *Selection) IsEmpty() bool {
	return s == nil || (len(s.IDs) == 0 && len(s.Families) == 0 && s.Range == nil)
}

// Validate enforces that at most one selection mode is in use
func (s *Selection) Validate() error {
	if s == nil {
		return nil
	}
	modes := 0
	if len(s.IDs) > 0 {
		modes++
	}
	if len(s.Families) > 0 {
		modes++
	}
	if s.Range != nil {
		modes++
	}
	if modes > 1 {
		return goerr.Wrap(ErrConflictingModes, "pick one of: control IDs, families, or a range")
	}
	return nil
}

// Apply filters controls down to the selection, returning the matches in
// ascending ID order. Selectors that match no record produce warnings, not
// errors.
func Apply(controls []*model.Control, sel *Selection) ([]*model.Control, []model.Issue) {
	if sel.IsEmpty() {
		sorted := append([]*model.Control{}, controls...)
		model.SortControls(sorted)
		return sorted, nil
	}

	var selected []*model.Control
	var warnings []model.Issue

	switch {
	case len(sel.IDs) > 0:
		byID := make(map[types.ControlID]*model.Control, len(controls))
		for _, c := range controls {
			byID[c.ID] = c
		}
		for _, id := range sel.IDs {
			c, ok := byID[id]
			if !ok {
				warnings = append(warnings, model.Issue{ControlID: id, Message: "requested control not found in input"})
				continue
			}
			selected = append(selected, c)
		}

	case len(sel.Families) > 0:
		matched := make(map[types.FamilyCode]bool, len(sel.Families))
		want := make(map[types.FamilyCode]bool, len(sel.Families))
		for _, fam := range sel.Families {
			want[fam] = true
		}
		for _, c := range controls {
			if want[c.Family()] {
				matched[c.Family()] = true
				selected = append(selected, c)
			}
		}
		for _, fam := range sel.Families {
			if !matched[fam] {
				warnings = append(warnings, model.Issue{Message: "requested family " + fam.String() + " has no controls in input"})
			}
		}

	case sel.Range != nil:
		for _, c := range controls {
			if sel.Range.Contains(c.ID) {
				selected = append(selected, c)
			}
		}
		if len(selected) == 0 {
			warnings = append(warnings, model.Issue{Message: "requested range matched no controls"})
		}
	}

	model.SortControls(selected)
	return selected, warnings
}
