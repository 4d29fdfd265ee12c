package loader

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/sspgen/pkg/domain/model"
	"github.com/secmon-lab/sspgen/pkg/domain/types"
)

// EvidenceMap holds enrichment entries per control ID
type EvidenceMap map[types.ControlID][]string

// TotalEntries counts all evidence entries across controls
func (m EvidenceMap) TotalEntries() int {
	total := 0
	for _, entries := range m {
		total += len(entries)
	}
	return total
}

// LoadEvidence reads the evidence enrichment CSV and maps formatted evidence
// entries onto control IDs. A missing file is not an error: enrichment is
// optional and the run continues without it.
func LoadEvidence(path string) (EvidenceMap, []model.Issue, error) {
	data, err := os.ReadFile(path) // #nosec G304 - path comes from config/CLI
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return EvidenceMap{}, []model.Issue{{Message: "evidence enrichment file not found: " + path}}, nil
		}
		return nil, nil, goerr.Wrap(err, "failed to read evidence CSV", goerr.V("path", path))
	}

	data = stripBOM(data)
	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = sniffDelimiter(data)
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		return nil, nil, goerr.Wrap(ErrMalformedInput, "failed to read evidence CSV header", goerr.V("path", path))
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}

	evidence := EvidenceMap{}
	var warnings []model.Issue
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			warnings = append(warnings, model.Issue{Message: "evidence row could not be parsed, skipped"})
			continue
		}

		if strings.Contains(strings.ToUpper(field(record, cols, "Description")), "IGNORE") {
			continue
		}

		mappings := mappedControls(record, cols)
		if len(mappings) == 0 {
			continue
		}

		entry := formatEvidenceEntry(record, cols)
		if entry == "" {
			continue
		}

		for _, rawID := range mappings {
			id, err := types.ParseControlID(rawID)
			if err != nil {
				warnings = append(warnings, model.Issue{Message: "evidence mapping has invalid control ID " + strings.TrimSpace(rawID) + ", skipped"})
				continue
			}
			evidence[id] = append(evidence[id], entry)
		}
	}

	return evidence, warnings, nil
}

// mappedControls returns the control IDs an evidence row maps to. Suggested
// mappings take priority; provided mappings are only a fallback.
func mappedControls(record []string, cols map[string]int) []string {
	if suggested := field(record, cols, "Suggested_CMMC_Mappings"); suggested != "" {
		return model.SplitDelimited(suggested)
	}
	if provided := field(record, cols, "Provided_CMMC_Mappings"); provided != "" {
		return model.SplitDelimited(provided)
	}
	return nil
}

// formatEvidenceEntry renders one evidence row as "[link] - description".
// The file name stands in when no description is present.
func formatEvidenceEntry(record []string, cols map[string]int) string {
	var parts []string

	if link := field(record, cols, "Current_Sharepoint_Link"); link != "" {
		parts = append(parts, "["+link+"]")
	}

	if desc := field(record, cols, "Description"); desc != "" {
		parts = append(parts, desc)
	} else if name := field(record, cols, "File_Name"); name != "" {
		parts = append(parts, name)
	}

	return strings.Join(parts, " - ")
}

// Enrich merges the evidence map into each control's evidence strings,
// deduplicating while preserving order.
func Enrich(controls []*model.Control, evidence EvidenceMap) {
	if len(evidence) == 0 {
		return
	}
	for _, c := range controls {
		if extra, ok := evidence[c.ID]; ok {
			c.EvidenceStrings = model.MergeEvidence(c.EvidenceStrings, extra)
		}
	}
}
