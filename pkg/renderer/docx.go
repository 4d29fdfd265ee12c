package renderer

import (
	"context"
	"path/filepath"

	"github.com/gomutex/godocx"
	godocxdoc "github.com/gomutex/godocx/docx"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/sspgen/pkg/domain/model"
	"github.com/secmon-lab/sspgen/pkg/domain/types"
)

// RenderDOCX writes one word-processor document for a family and returns
// its path. The heading levels mirror the HTML output.
func (r *Renderer) RenderDOCX(ctx context.Context, fam types.FamilyCode, controls []*model.Control) (string, error) {
	doc, err := godocx.NewDocument()
	if err != nil {
		return "", goerr.Wrap(err, "failed to create DOCX document", goerr.V("family", fam))
	}

	if _, err := doc.AddHeading("CMMC Level 2 - "+fam.String()+" - "+fam.Name(), 0); err != nil {
		return "", goerr.Wrap(err, "failed to add DOCX title", goerr.V("family", fam))
	}
	doc.AddParagraph("Generated: " + r.generated())

	for _, c := range controls {
		if err := r.addControl(doc, c); err != nil {
			return "", goerr.Wrap(err, "failed to render control", goerr.V("control", c.ID))
		}
	}

	path := filepath.Join(r.outDir, fam.String()+"_controls.docx")
	if err := doc.SaveTo(path); err != nil {
		return "", goerr.Wrap(err, "failed to save DOCX file", goerr.V("path", path))
	}
	return path, nil
}

func (r *Renderer) addControl(doc *godocxdoc.RootDoc, c *model.Control) error {
	if _, err := doc.AddHeading(c.ID.String()+" - "+c.Title, 1); err != nil {
		return err
	}

	if _, err := doc.AddHeading("Practice Statement", 2); err != nil {
		return err
	}
	doc.AddParagraph(c.Title)

	if _, err := doc.AddHeading("Implementation Status", 2); err != nil {
		return err
	}
	doc.AddParagraph(c.Status.Display() + " (Score: " + c.Score.String() + ")")

	if !c.Policy.IsEmpty() {
		if _, err := doc.AddHeading("Policy Summary", 2); err != nil {
			return err
		}
		doc.AddParagraph(c.Policy.Header)
		for _, bullet := range c.Policy.Bullets {
			doc.AddParagraph("• " + bullet)
		}
	}

	if _, err := doc.AddHeading("Implementation Details", 2); err != nil {
		return err
	}

	for _, e := range c.Environments {
		if _, err := doc.AddHeading(e.Env.Display(), 3); err != nil {
			return err
		}
		items := model.SplitDelimited(e.Implementation)
		switch {
		case len(items) > 1:
			for _, item := range items {
				doc.AddParagraph("• " + item)
			}
		case len(items) == 1:
			doc.AddParagraph(items[0])
		case e.Implementation != "":
			doc.AddParagraph(e.Implementation)
		}
		if ref := r.evidenceRef(e.EvidencePath); ref != "" {
			doc.AddParagraph("Evidence: " + ref)
		}
	}

	if len(c.EvidenceStrings) > 0 {
		if _, err := doc.AddHeading("Evidence Strings", 3); err != nil {
			return err
		}
		for _, item := range c.EvidenceStrings {
			doc.AddParagraph("• " + item)
		}
	}

	return nil
}
