package types

import (
	"strconv"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// ErrInvalidControlID is returned when the input cannot be parsed as a control identifier
var ErrInvalidControlID = goerr.New("invalid control ID")

// ControlID is a structured control identifier of the form
// <major>.<family>.<index>, e.g. "3.1.1". The first two segments select the
// control family, the third orders controls within the family.
type ControlID string

// ParseControlID parses and validates a raw control identifier
func ParseControlID(s string) (ControlID, error) {
	id := ControlID(strings.TrimSpace(s))
	if err := id.Validate(); err != nil {
		return "", err
	}
	return id, nil
}

// Validate checks that the ID consists of exactly three numeric segments
func (x ControlID) Validate() error {
	_, _, _, err := x.parts()
	return err
}

func (x ControlID) parts() (major, family, index int, err error) {
	segs := strings.Split(string(x), ".")
	if len(segs) != 3 {
		return 0, 0, 0, goerr.Wrap(ErrInvalidControlID, "ID must have three segments", goerr.V("id", string(x)))
	}

	nums := make([]int, 3)
	for i, seg := range segs {
		n, convErr := strconv.Atoi(seg)
		if convErr != nil || n < 0 {
			return 0, 0, 0, goerr.Wrap(ErrInvalidControlID, "ID segment is not numeric", goerr.V("id", string(x)), goerr.V("segment", seg))
		}
		nums[i] = n
	}

	return nums[0], nums[1], nums[2], nil
}

// FamilyPrefix returns the leading two segments of the ID, e.g. "3.1" for
// "3.1.22". The prefix maps to a family code via the fixed lookup table.
func (x ControlID) FamilyPrefix() string {
	segs := strings.Split(string(x), ".")
	if len(segs) < 2 {
		return string(x)
	}
	return segs[0] + "." + segs[1]
}

// Family resolves the control family of the ID
func (x ControlID) Family() (FamilyCode, error) {
	return FamilyFromPrefix(x.FamilyPrefix())
}

// Index returns the third segment of the ID
func (x ControlID) Index() (int, error) {
	_, _, idx, err := x.parts()
	return idx, err
}

// Less reports whether x sorts before other in numeric segment order.
// Invalid IDs fall back to lexical comparison.
func (x ControlID) Less(other ControlID) bool {
	xa, xb, xc, errX := x.parts()
	ya, yb, yc, errY := other.parts()
	if errX != nil || errY != nil {
		return string(x) < string(other)
	}

	if xa != ya {
		return xa < ya
	}
	if xb != yb {
		return xb < yb
	}
	return xc < yc
}

// SameFamily reports whether both IDs share the same leading two segments
func (x ControlID) SameFamily(other ControlID) bool {
	return x.FamilyPrefix() == other.FamilyPrefix()
}

// String returns the string representation of the control ID
func (x ControlID) String() string {
	return string(x)
}
