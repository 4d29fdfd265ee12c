package cli

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/sspgen/pkg/domain/types"
	"github.com/secmon-lab/sspgen/pkg/selector"
	"github.com/urfave/cli/v3"
)

// selectionFlags holds the mutually exclusive record selection flags shared
// by the render and validate commands
type selectionFlags struct {
	controls []string
	families []string
	rangeStr string
}

func (x *selectionFlags) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:        "control",
			Usage:       "Process specific control IDs (can be specified multiple times)",
			Destination: &x.controls,
		},
		&cli.StringSliceFlag{
			Name:        "family",
			Usage:       "Process specific family codes (can be specified multiple times)",
			Destination: &x.families,
		},
		&cli.StringFlag{
			Name:        "range",
			Usage:       "Process a contiguous control range within one family, e.g. 3.1.1-3.1.5",
			Destination: &x.rangeStr,
		},
	}
}

// Build parses the raw flag values into a Selection. Mode exclusivity is
// checked here, before any input is read.
func (x *selectionFlags) Build() (*selector.Selection, error) {
	sel := &selector.Selection{}

	for _, raw := range x.controls {
		id, err := types.ParseControlID(raw)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid --control value", goerr.V("value", raw))
		}
		sel.IDs = append(sel.IDs, id)
	}

	for _, raw := range x.families {
		fam, err := types.ParseFamilyCode(raw)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid --family value", goerr.V("value", raw))
		}
		sel.Families = append(sel.Families, fam)
	}

	if x.rangeStr != "" {
		rng, err := selector.ParseRange(x.rangeStr)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid --range value", goerr.V("value", x.rangeStr))
		}
		sel.Range = rng
	}

	if err := sel.Validate(); err != nil {
		return nil, err
	}

	return sel, nil
}
