package rating

import "math"

const (
	// KFactor is the sensitivity constant of the update.
	KFactor = 32
	// scale is the logistic divisor: a 400-point gap means 10:1 expected odds.
	scale = 400.0

	// InitialRating is assigned to every new profile.
	InitialRating = 1000
	// Floor is the minimum rating a loss can leave a user with.
	Floor = 100
)

// ComputeDelta returns the rating adjustment for a resolved debate. The
// winner gains the delta and the loser gives it up (subject to Floor).
// Beating a higher-rated opponent pays more than beating a lower-rated one.
func ComputeDelta(winnerRating, loserRating int) int {
	expected := 1.0 / (1.0 + math.Pow(10, float64(loserRating-winnerRating)/scale))
	return int(math.Round(KFactor * (1.0 - expected)))
}

// ApplyFloor clamps a rating to the minimum allowed value.
func ApplyFloor(r int) int {
	if r < Floor {
		return Floor
	}
	return r
}
