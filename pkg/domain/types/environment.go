package types

// Environment identifies one of the three implementation environments a
// control is described against.
type Environment string

const (
	// EnvAzure is the primary cloud environment
	EnvAzure Environment = "azure"
	// EnvM365 is the productivity suite environment
	EnvM365 Environment = "m365"
	// EnvAVD is the virtual desktop environment
	EnvAVD Environment = "avd"
)

// AllEnvironments returns the environments in rendering order
func AllEnvironments() []Environment {
	return []Environment{EnvAzure, EnvM365, EnvAVD}
}

// IsValid checks if the environment is valid
func (e Environment) IsValid() bool {
	switch e {
	case EnvAzure, EnvM365, EnvAVD:
		return true
	default:
		return false
	}
}

// Display returns the section heading used in rendered documents
func (e Environment) Display() string {
	switch e {
	case EnvAzure:
		return "Azure Environment"
	case EnvM365:
		return "Microsoft 365 Environment"
	case EnvAVD:
		return "AVD / Laptop Environment"
	default:
		return string(e)
	}
}

// ColumnPrefix returns the CSV column prefix of the environment. The input
// carries one <prefix>_Implementation / <prefix>_Evidence pair per
// environment.
func (e Environment) ColumnPrefix() string {
	switch e {
	case EnvAzure:
		return "Azure"
	case EnvM365:
		return "M365"
	case EnvAVD:
		return "AVD"
	default:
		return string(e)
	}
}

// String returns the string representation of the environment
func (e Environment) String() string {
	return string(e)
}
