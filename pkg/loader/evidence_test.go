package loader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/sspgen/pkg/domain/model"
	"github.com/secmon-lab/sspgen/pkg/domain/types"
	"github.com/secmon-lab/sspgen/pkg/loader"
)

const evidenceHeader = "File_Name,Description,Current_Sharepoint_Link,Suggested_CMMC_Mappings,Provided_CMMC_Mappings\n"

func writeEvidenceCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "evidence.csv")
	gt.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadEvidence(t *testing.T) {
	path := writeEvidenceCSV(t, evidenceHeader+
		`mfa.png,MFA policy screenshot,https://sp.example/mfa.png,"3.5.3;3.1.1",`+"\n"+
		`old.png,Provided only,,,"3.1.1"`+"\n")

	evidence, warnings, err := loader.LoadEvidence(path)
	gt.NoError(t, err)
	gt.A(t, warnings).Length(0)

	gt.A(t, evidence[types.ControlID("3.5.3")]).Length(1)
	gt.S(t, evidence[types.ControlID("3.5.3")][0]).
		Equal("[https://sp.example/mfa.png] - MFA policy screenshot")

	// Both the suggested and the provided-only rows map to 3.1.1
	gt.A(t, evidence[types.ControlID("3.1.1")]).Length(2)
	gt.V(t, evidence.TotalEntries()).Equal(3)
}

func TestLoadEvidence_SuggestedWinsOverProvided(t *testing.T) {
	path := writeEvidenceCSV(t, evidenceHeader+
		`doc.pdf,Some doc,,"3.1.1","3.2.1"`+"\n")

	evidence, _, err := loader.LoadEvidence(path)
	gt.NoError(t, err)
	gt.A(t, evidence[types.ControlID("3.1.1")]).Length(1)
	gt.A(t, evidence[types.ControlID("3.2.1")]).Length(0)
}

func TestLoadEvidence_IgnoreRows(t *testing.T) {
	path := writeEvidenceCSV(t, evidenceHeader+
		`junk.tmp,IGNORE - superseded,,"3.1.1",`+"\n"+
		`no-mapping.png,orphan evidence,,,`+"\n")

	evidence, _, err := loader.LoadEvidence(path)
	gt.NoError(t, err)
	gt.V(t, evidence.TotalEntries()).Equal(0)
}

func TestLoadEvidence_FileNameFallback(t *testing.T) {
	path := writeEvidenceCSV(t, evidenceHeader+
		`policy.docx,,,"3.1.1",`+"\n")

	evidence, _, err := loader.LoadEvidence(path)
	gt.NoError(t, err)
	gt.S(t, evidence[types.ControlID("3.1.1")][0]).Equal("policy.docx")
}

func TestLoadEvidence_MissingFile(t *testing.T) {
	evidence, warnings, err := loader.LoadEvidence(filepath.Join(t.TempDir(), "nope.csv"))
	gt.NoError(t, err)
	gt.V(t, evidence.TotalEntries()).Equal(0)
	gt.A(t, warnings).Length(1)
}

func TestEnrich(t *testing.T) {
	controls := []*model.Control{
		{ID: "3.1.1", EvidenceStrings: []string{"existing entry"}},
		{ID: "3.1.2"},
	}
	evidence := loader.EvidenceMap{
		"3.1.1": {"existing entry", "new entry"},
	}

	loader.Enrich(controls, evidence)

	gt.V(t, controls[0].EvidenceStrings).Equal([]string{"existing entry", "new entry"})
	gt.A(t, controls[1].EvidenceStrings).Length(0)
}
