package model

import (
	"sort"
	"strings"

	"github.com/secmon-lab/sspgen/pkg/domain/types"
)

// PolicyStatement is a policy header followed by an ordered bullet list
type PolicyStatement struct {
	Header  string
	Bullets []string
}

// IsEmpty reports whether the statement carries no content
func (p PolicyStatement) IsEmpty() bool {
	return p.Header == "" && len(p.Bullets) == 0
}

// EnvImpl is one environment's implementation description and its evidence
// file-path reference.
type EnvImpl struct {
	Env            types.Environment
	Implementation string
	EvidencePath   string
}

// Control is one control record of the input spreadsheet
type Control struct {
	ID              types.ControlID
	Title           string
	Score           types.Score
	Status          types.ImplStatus
	Policy          PolicyStatement
	Environments    []EnvImpl
	EvidenceStrings []string
}

// Family resolves the control's family code. Returns the empty code for
// IDs whose prefix is not in the family table.
func (c *Control) Family() types.FamilyCode {
	fam, err := c.ID.Family()
	if err != nil {
		return ""
	}
	return fam
}

// Env returns the implementation entry for the given environment, if any
func (c *Control) Env(env types.Environment) (EnvImpl, bool) {
	for _, e := range c.Environments {
		if e.Env == env {
			return e, true
		}
	}
	return EnvImpl{}, false
}

// Placeholder bullet tokens left over from spreadsheet templates. They are
// dropped during delimited parsing.
var placeholderItems = map[string]struct{}{
	"bullet_1": {},
	"bullet_2": {},
	"bullet1":  {},
	"bullet2":  {},
}

// policyTemplate is the untouched spreadsheet template value of a
// Policy_Statement cell. It means "no policy written yet".
const policyTemplate = "header;bullet_1;bullet_2"

// SplitDelimited parses pipe- or semicolon-delimited cell content into a
// list of items. Pipes are normalized to semicolons, items are trimmed,
// placeholder tokens and empty items are dropped, and a trailing period is
// stripped from each item.
func SplitDelimited(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var items []string
	normalized := strings.ReplaceAll(raw, "|", ";")
	for _, item := range strings.Split(normalized, ";") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if _, ok := placeholderItems[item]; ok {
			continue
		}
		item = strings.TrimSpace(strings.TrimSuffix(item, "."))
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}

// ParsePolicyStatement parses a serialized policy statement cell. The first
// delimited item is the header, the remainder are bullets.
func ParsePolicyStatement(raw string) PolicyStatement {
	if strings.TrimSpace(raw) == policyTemplate {
		return PolicyStatement{}
	}

	items := SplitDelimited(raw)
	if len(items) == 0 {
		return PolicyStatement{}
	}
	return PolicyStatement{
		Header:  items[0],
		Bullets: items[1:],
	}
}

// ControlTitle renders a delimited Control cell as a readable one-line title
func ControlTitle(raw string) string {
	items := SplitDelimited(raw)
	if len(items) == 0 {
		title := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(raw), "."))
		if title == "" {
			return "Untitled Control"
		}
		return title
	}
	return strings.Join(items, ", ")
}

// SortControls orders controls ascending by ID in place
func SortControls(controls []*Control) {
	sort.SliceStable(controls, func(i, j int) bool {
		return controls[i].ID.Less(controls[j].ID)
	})
}

// GroupByFamily groups controls by family code, keeping ascending ID order
// within each family. The returned code list is in ID prefix order.
func GroupByFamily(controls []*Control) (map[types.FamilyCode][]*Control, []types.FamilyCode) {
	groups := make(map[types.FamilyCode][]*Control)
	for _, c := range controls {
		fam := c.Family()
		if fam == "" {
			continue
		}
		groups[fam] = append(groups[fam], c)
	}

	var order []types.FamilyCode
	for _, fam := range types.AllFamilyCodes() {
		if len(groups[fam]) == 0 {
			continue
		}
		SortControls(groups[fam])
		order = append(order, fam)
	}
	return groups, order
}

// MergeEvidence appends extra evidence entries to existing ones, dropping
// duplicates while preserving first-seen order.
func MergeEvidence(existing, extra []string) []string {
	seen := make(map[string]struct{}, len(existing)+len(extra))
	var merged []string
	for _, item := range append(append([]string{}, existing...), extra...) {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		merged = append(merged, item)
	}
	return merged
}
