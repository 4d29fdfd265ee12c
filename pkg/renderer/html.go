package renderer

import (
	"context"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/sspgen/pkg/domain/model"
	"github.com/secmon-lab/sspgen/pkg/domain/types"
	"github.com/secmon-lab/sspgen/pkg/utils/safe"
)

var familyTemplate = template.Must(template.New("family").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>CMMC 2.0 SSP - {{.Family}}</title>
<style>
body { font-family: Arial, sans-serif; margin: 20px; }
h1 { color: #003366; border-bottom: 3px solid #003366; padding-bottom: 10px; }
h2 { color: #0066cc; border-bottom: 1px solid #0066cc; padding-bottom: 5px; }
h3 { color: #333333; background-color: #f0f0f0; padding: 5px; }
h4 { color: #666666; margin-top: 15px; }
.control-section { margin-bottom: 40px; page-break-after: always; }
ul { margin-left: 20px; }
li { margin: 5px 0; }
strong { color: #000080; }
</style>
</head>
<body>
<h1>{{.Family}} - {{.FamilyName}}</h1>
<p>Generated: {{.Generated}}</p>
{{range .Controls}}<div class="control-section" id="{{.Anchor}}">
<h2>{{.ID}} - {{.Title}}</h2>
<div class="practice-statement">
<h3>Practice Statement</h3>
<p>{{.Title}}</p>
</div>
<div class="implementation-status">
<h3>Implementation Status</h3>
<p>{{.Status}} (Score: {{.Score}})</p>
</div>
{{if .PolicyHeader}}<div class="policy-summary">
<h3>Policy Summary</h3>
<p>{{.PolicyHeader}}</p>
{{if .PolicyBullets}}<ul>
{{range .PolicyBullets}}<li>{{.}}</li>
{{end}}</ul>
{{end}}</div>
{{end}}<div class="implementation-details">
<h3>Implementation Details</h3>
{{range .Environments}}<div class="environment">
<h4>{{.Name}}</h4>
{{if .Paragraph}}<p>{{.Paragraph}}</p>
{{end}}{{if .Bullets}}<ul>
{{range .Bullets}}<li>{{.}}</li>
{{end}}</ul>
{{end}}{{if .Evidence}}<p><strong>Evidence:</strong> {{.Evidence}}</p>
{{end}}</div>
{{end}}{{if .EvidenceStrings}}<div class="evidence-strings">
<h4>Evidence Strings</h4>
<ul>
{{range .EvidenceStrings}}<li>{{.}}</li>
{{end}}</ul>
</div>
{{end}}</div>
</div>
{{end}}</body>
</html>
`))

type familyPage struct {
	Family     string
	FamilyName string
	Generated  string
	Controls   []controlView
}

type controlView struct {
	Anchor          string
	ID              string
	Title           string
	Status          string
	Score           string
	PolicyHeader    string
	PolicyBullets   []string
	Environments    []envView
	EvidenceStrings []string
}

type envView struct {
	Name      string
	Paragraph string
	Bullets   []string
	Evidence  string
}

// RenderHTML writes one HTML document for a family and returns its path
func (r *Renderer) RenderHTML(ctx context.Context, fam types.FamilyCode, controls []*model.Control) (string, error) {
	page := familyPage{
		Family:     fam.String(),
		FamilyName: fam.Name(),
		Generated:  r.generated(),
	}
	for _, c := range controls {
		page.Controls = append(page.Controls, r.controlView(c))
	}

	path := filepath.Join(r.outDir, fam.String()+"_controls.html")
	f, err := os.Create(path) // #nosec G304 - path is derived from config
	if err != nil {
		return "", goerr.Wrap(err, "failed to create HTML file", goerr.V("path", path))
	}
	defer safe.Close(ctx, f)

	if err := familyTemplate.Execute(f, page); err != nil {
		return "", goerr.Wrap(err, "failed to render HTML", goerr.V("family", fam))
	}
	return path, nil
}

func (r *Renderer) controlView(c *model.Control) controlView {
	view := controlView{
		Anchor:          strings.ReplaceAll(c.ID.String(), ".", "_"),
		ID:              c.ID.String(),
		Title:           c.Title,
		Status:          c.Status.Display(),
		Score:           c.Score.String(),
		PolicyHeader:    c.Policy.Header,
		PolicyBullets:   c.Policy.Bullets,
		EvidenceStrings: c.EvidenceStrings,
	}
	for _, e := range c.Environments {
		view.Environments = append(view.Environments, r.envView(e))
	}
	return view
}

// envView splits the implementation text: multi-item content renders as a
// bullet list, single items as one paragraph.
func (r *Renderer) envView(e model.EnvImpl) envView {
	view := envView{
		Name:     e.Env.Display(),
		Evidence: r.evidenceRef(e.EvidencePath),
	}
	items := model.SplitDelimited(e.Implementation)
	switch {
	case len(items) > 1:
		view.Bullets = items
	case len(items) == 1:
		view.Paragraph = items[0]
	default:
		view.Paragraph = e.Implementation
	}
	return view
}
