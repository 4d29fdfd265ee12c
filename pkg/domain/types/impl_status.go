package types

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// ErrInvalidImplStatus is returned when a raw AR_CAP_POAM cell cannot be
// mapped to a known implementation status
var ErrInvalidImplStatus = goerr.New("invalid implementation status")

// ImplStatus represents the implementation status of a control
type ImplStatus string

const (
	StatusNotImplemented ImplStatus = "NOT_IMPLEMENTED"
	StatusPOAM           ImplStatus = "POAM"
	StatusAuditReady     ImplStatus = "AUDIT_READY"
)

// AllImplStatuses returns all valid implementation statuses
func AllImplStatuses() []ImplStatus {
	return []ImplStatus{
		StatusNotImplemented,
		StatusPOAM,
		StatusAuditReady,
	}
}

// ParseImplStatus maps a raw AR_CAP_POAM cell to an implementation status.
// The input encodes not-implemented as "0" (or an empty cell), plan-of-action
// as "POA&M" or "POAM", and audit-ready as "Audit Ready", case-insensitively.
func ParseImplStatus(raw string) (ImplStatus, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "", "0":
		return StatusNotImplemented, nil
	case "POA&M", "POAM":
		return StatusPOAM, nil
	case "AUDIT READY":
		return StatusAuditReady, nil
	default:
		return "", goerr.Wrap(ErrInvalidImplStatus, "unrecognized AR_CAP_POAM value", goerr.V("value", raw))
	}
}

// IsValid checks if the implementation status is valid
func (s ImplStatus) IsValid() bool {
	switch s {
	case StatusNotImplemented, StatusPOAM, StatusAuditReady:
		return true
	default:
		return false
	}
}

// Display returns the human-readable form used in rendered documents
func (s ImplStatus) Display() string {
	switch s {
	case StatusPOAM:
		return "Plan of Action & Milestones (POA&M)"
	case StatusAuditReady:
		return "Audit Ready"
	default:
		return "Not Implemented"
	}
}

// String returns the string representation of the implementation status
func (s ImplStatus) String() string {
	return string(s)
}
