package types

import "strconv"

// Score is the assessment weight of a control. Only 1, 3 and 5 are valid.
type Score int

const (
	ScoreOne   Score = 1
	ScoreThree Score = 3
	ScoreFive  Score = 5
)

// AllScores returns all valid scores
func AllScores() []Score {
	return []Score{ScoreOne, ScoreThree, ScoreFive}
}

// IsValid checks if the score is one of the allowed values
func (s Score) IsValid() bool {
	switch s {
	case ScoreOne, ScoreThree, ScoreFive:
		return true
	default:
		return false
	}
}

// CanPOAM reports whether a control with this score may carry a
// plan-of-action status. Only 1-point controls can be POA&M'd.
func (s Score) CanPOAM() bool {
	return s == ScoreOne
}

// String returns the decimal representation of the score
func (s Score) String() string {
	return strconv.Itoa(int(s))
}
