package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/sspgen/pkg/cli/config"
	"github.com/secmon-lab/sspgen/pkg/usecase"
	"github.com/secmon-lab/sspgen/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdValidate() *cli.Command {
	var configPath string
	var inputCSV string
	var evidenceCSV string
	var outputDir string
	var selFlags selectionFlags

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "Configuration file path",
			Value:       "config.toml",
			Sources:     cli.EnvVars("SSPGEN_CONFIG"),
			Destination: &configPath,
		},
		&cli.StringFlag{
			Name:        "input",
			Aliases:     []string{"i"},
			Usage:       "Override input CSV file",
			Sources:     cli.EnvVars("SSPGEN_INPUT"),
			Destination: &inputCSV,
		},
		&cli.StringFlag{
			Name:        "evidence",
			Aliases:     []string{"e"},
			Usage:       "Override evidence enrichment CSV file",
			Sources:     cli.EnvVars("SSPGEN_EVIDENCE"),
			Destination: &evidenceCSV,
		},
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "Override output directory",
			Sources:     cli.EnvVars("SSPGEN_OUTPUT"),
			Destination: &outputDir,
		},
	}
	flags = append(flags, selFlags.Flags()...)

	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"v"},
		Usage:   "Validate control records and write only the validation report",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()

			cfg, found, err := config.LoadApp(configPath)
			if err != nil {
				return err
			}
			if !found {
				logger.Info("No configuration file, using defaults", "path", configPath)
			}

			if inputCSV != "" {
				cfg.InputCSV = inputCSV
			}
			if evidenceCSV != "" {
				cfg.EvidenceCSV = evidenceCSV
			}
			if outputDir != "" {
				cfg.OutputDir = outputDir
			}

			sel, err := selFlags.Build()
			if err != nil {
				return err
			}

			uc := usecase.New()
			report, err := uc.ValidateOnly(ctx, usecase.RenderInput{
				InputCSV:         cfg.InputCSV,
				EvidenceCSV:      cfg.EvidenceCSV,
				OutputDir:        cfg.OutputDir,
				EvidenceBasePath: cfg.EvidenceBasePath,
				Selection:        sel,
			})
			if err != nil {
				return err
			}

			logger.Info("Validation finished",
				"processed", report.Processed,
				"criticals", len(report.Critical),
				"warnings", len(report.Warnings),
			)

			if report.HasCritical() {
				return goerr.New("validation found critical errors", goerr.V("count", len(report.Critical)))
			}
			return nil
		},
	}
}
