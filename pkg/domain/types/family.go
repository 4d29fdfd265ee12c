package types

import (
	"github.com/m-mizutani/goerr/v2"
)

// ErrUnknownFamily is returned when an ID prefix or code does not map to one
// of the fourteen known control families
var ErrUnknownFamily = goerr.New("unknown control family")

// FamilyCode is the two-letter classification of a control family
type FamilyCode string

const (
	FamilyAC FamilyCode = "AC"
	FamilyAT FamilyCode = "AT"
	FamilyAU FamilyCode = "AU"
	FamilyCM FamilyCode = "CM"
	FamilyIA FamilyCode = "IA"
	FamilyIR FamilyCode = "IR"
	FamilyMA FamilyCode = "MA"
	FamilyMP FamilyCode = "MP"
	FamilyPS FamilyCode = "PS"
	FamilyPE FamilyCode = "PE"
	FamilyRA FamilyCode = "RA"
	FamilySA FamilyCode = "SA"
	FamilySC FamilyCode = "SC"
	FamilySI FamilyCode = "SI"
)

type familyEntry struct {
	prefix string
	code   FamilyCode
	name   string
}

// Fixed lookup table. Order follows the ID prefixes (3.1 through 3.14).
var familyTable = []familyEntry{
	{"3.1", FamilyAC, "Access Control"},
	{"3.2", FamilyAT, "Awareness and Training"},
	{"3.3", FamilyAU, "Audit and Accountability"},
	{"3.4", FamilyCM, "Configuration Management"},
	{"3.5", FamilyIA, "Identification and Authentication"},
	{"3.6", FamilyIR, "Incident Response"},
	{"3.7", FamilyMA, "Maintenance"},
	{"3.8", FamilyMP, "Media Protection"},
	{"3.9", FamilyPS, "Personnel Security"},
	{"3.10", FamilyPE, "Physical Protection"},
	{"3.11", FamilyRA, "Risk Assessment"},
	{"3.12", FamilySA, "Security Assessment"},
	{"3.13", FamilySC, "System and Communications Protection"},
	{"3.14", FamilySI, "System and Information Integrity"},
}

// FamilyFromPrefix maps an ID prefix such as "3.1" to its family code
func FamilyFromPrefix(prefix string) (FamilyCode, error) {
	for _, e := range familyTable {
		if e.prefix == prefix {
			return e.code, nil
		}
	}
	return "", goerr.Wrap(ErrUnknownFamily, "no family for ID prefix", goerr.V("prefix", prefix))
}

// ParseFamilyCode parses a two-letter family code
func ParseFamilyCode(s string) (FamilyCode, error) {
	code := FamilyCode(s)
	if !code.IsValid() {
		return "", goerr.Wrap(ErrUnknownFamily, "no such family code", goerr.V("code", s))
	}
	return code, nil
}

// AllFamilyCodes returns the fourteen family codes in ID prefix order
func AllFamilyCodes() []FamilyCode {
	codes := make([]FamilyCode, 0, len(familyTable))
	for _, e := range familyTable {
		codes = append(codes, e.code)
	}
	return codes
}

// IsValid checks if the family code is one of the fourteen known codes
func (f FamilyCode) IsValid() bool {
	for _, e := range familyTable {
		if e.code == f {
			return true
		}
	}
	return false
}

// Name returns the display name of the family, e.g. "Access Control"
func (f FamilyCode) Name() string {
	for _, e := range familyTable {
		if e.code == f {
			return e.name
		}
	}
	return "Unknown"
}

// Prefix returns the ID prefix of the family, e.g. "3.1" for AC
func (f FamilyCode) Prefix() string {
	for _, e := range familyTable {
		if e.code == f {
			return e.prefix
		}
	}
	return ""
}

// String returns the string representation of the family code
func (f FamilyCode) String() string {
	return string(f)
}
