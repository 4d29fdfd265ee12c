package config

import (
	"errors"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
)

// App is the application configuration, loaded from a TOML settings file.
// CLI flags override individual fields after loading.
type App struct {
	InputCSV          string `toml:"input_csv"`
	EvidenceCSV       string `toml:"evidence_csv"`
	OutputDir         string `toml:"output_dir"`
	GenerateHTML      bool   `toml:"generate_html"`
	GenerateDOCX      bool   `toml:"generate_docx"`
	ValidatePOAMRules bool   `toml:"validate_poam_rules"`
	AbortOnError      bool   `toml:"abort_on_error"`
	EvidenceBasePath  string `toml:"evidence_base_path"`
}

// DefaultApp returns the configuration used when no settings file exists
func DefaultApp() *App {
	return &App{
		InputCSV:          "ssp_controls.csv",
		OutputDir:         "./output",
		GenerateHTML:      true,
		GenerateDOCX:      true,
		ValidatePOAMRules: true,
		EvidenceBasePath:  "/CMMC_Evidence/",
	}
}

// LoadApp loads the configuration from a TOML file. A missing file is not
// an error: defaults are returned and found is false, matching the
// run-anywhere behavior of the tool.
func LoadApp(path string) (cfg *App, found bool, err error) {
	data, err := os.ReadFile(path) // #nosec G304 - path is provided by CLI argument
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultApp(), false, nil
		}
		return nil, false, goerr.Wrap(err, "failed to read config file", goerr.V(ConfigPathKey, path))
	}

	cfg = DefaultApp()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, false, goerr.Wrap(err, "failed to parse TOML config", goerr.V(ConfigPathKey, path))
	}

	return cfg, true, nil
}

// Validate checks if the App configuration is usable
func (a *App) Validate() error {
	if a.InputCSV == "" {
		return goerr.Wrap(ErrInvalidConfig, "input_csv is required")
	}
	if a.OutputDir == "" {
		return goerr.Wrap(ErrInvalidConfig, "output_dir is required")
	}
	if !a.GenerateHTML && !a.GenerateDOCX {
		return goerr.Wrap(ErrNoOutputFormat, "enable generate_html and/or generate_docx")
	}
	return nil
}
