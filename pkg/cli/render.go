package cli

import (
	"context"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/sspgen/pkg/cli/config"
	"github.com/secmon-lab/sspgen/pkg/usecase"
	"github.com/secmon-lab/sspgen/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdRender() *cli.Command {
	var configPath string
	var inputCSV string
	var evidenceCSV string
	var outputDir string
	var htmlOnly bool
	var docxOnly bool
	var skipValidation bool
	var abortOnError bool
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
		&cli.BoolFlag{
			Name:        "html-only",
			Usage:       "Generate only HTML documents",
			Destination: &htmlOnly,
		},
		&cli.BoolFlag{
			Name:        "docx-only",
			Usage:       "Generate only DOCX documents",
			Destination: &docxOnly,
		},
		&cli.BoolFlag{
			Name:        "skip-validation",
			Usage:       "Skip the POA&M rule validation",
			Destination: &skipValidation,
		},
		&cli.BoolFlag{
			Name:        "abort-on-error",
			Usage:       "Halt rendering when critical validation errors are found",
			Sources:     cli.EnvVars("SSPGEN_ABORT_ON_ERROR"),
			Destination: &abortOnError,
		},
	}
	flags = append(flags, selFlags.Flags()...)

	return &cli.Command{
		Name:    "render",
		Aliases: []string{"r"},
		Usage:   "Render per-family SSP documents from the control spreadsheet",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()

			if htmlOnly && docxOnly {
				return goerr.New("--html-only and --docx-only are mutually exclusive")
			}

			cfg, found, err := config.LoadApp(configPath)
			if err != nil {
				return err
			}
			if found {
				logger.Info("Configuration loaded", "path", configPath)
			} else {
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
			if htmlOnly {
				cfg.GenerateDOCX = false
			}
			if docxOnly {
				cfg.GenerateHTML = false
			}
			if skipValidation {
				cfg.ValidatePOAMRules = false
			}
			if abortOnError {
				cfg.AbortOnError = true
			}

			if err := cfg.Validate(); err != nil {
				return goerr.Wrap(err, "configuration validation failed")
			}

			sel, err := selFlags.Build()
			if err != nil {
				return err
			}

			uc := usecase.New(usecase.WithAbortOnError(cfg.AbortOnError))
			out, err := uc.Render(ctx, usecase.RenderInput{
				InputCSV:         cfg.InputCSV,
				EvidenceCSV:      cfg.EvidenceCSV,
				OutputDir:        cfg.OutputDir,
				HTML:             cfg.GenerateHTML,
				DOCX:             cfg.GenerateDOCX,
				Validate:         cfg.ValidatePOAMRules,
				EvidenceBasePath: cfg.EvidenceBasePath,
				Selection:        sel,
			})
			if err != nil {
				return err
			}

			printRunSummary(out)

			if out.Report.HasCritical() {
				return goerr.New("validation found critical errors", goerr.V("count", len(out.Report.Critical)))
			}
			return nil
		},
	}
}

func printRunSummary(out *usecase.RenderOutput) {
	color.New(color.Bold).Printf("Run %s completed\n", out.Summary.RunID)
	color.New(color.FgCyan).Printf("Output directory: %s\n", out.Summary.OutputDir)
	color.New(color.FgCyan).Printf("Files written: %d\n", len(out.Summary.FilesWritten))

	if out.Report.HasCritical() {
		color.New(color.FgRed).Printf("Critical errors: %d (see validation_report.txt)\n", len(out.Report.Critical))
	} else {
		color.New(color.FgGreen).Println("No critical errors")
	}
	if len(out.Report.Warnings) > 0 {
		color.New(color.FgYellow).Printf("Warnings: %d\n", len(out.Report.Warnings))
	}
}
