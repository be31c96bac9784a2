package data

import "math"

// Aggregate is the denormalized rating summary stored on a book record: the
// number of live comments, the number of ratings they carry, and the running
// average rating kept at two decimal places. Every comment carries a rating,
// so both counters move in step. The aggregate is updated incrementally from
// the stored average rather than by rescanning the comments table.
type Aggregate struct {
	NoOfComments  int64   `json:"no_of_comments"`
	NoOfRatings   int64   `json:"no_of_ratings"`
	AverageRating float64 `json:"average_rating"`
}

// sum reconstructs the total of all live ratings from the stored average.
// Ratings are integers, so the true sum is an integer; rounding snaps away
// the error introduced by storing the average at two decimal places and
// keeps it from compounding across successive updates.
func (a Aggregate) sum() float64 {
	return math.Round(a.AverageRating * float64(a.NoOfRatings))
}

// AddRating folds a newly created comment's rating into the aggregate.
func (a *Aggregate) AddRating(rating int8) {
	if a.NoOfRatings == 0 {
		a.AverageRating = float64(rating)
		a.NoOfRatings = 1
	} else {
		sum := a.sum() + float64(rating)
		a.NoOfRatings++
		a.AverageRating = roundAverage(sum, a.NoOfRatings)
	}
	a.NoOfComments++
}

// SwapRating replaces a comment's previous rating with its edited value.
// Only the signed delta moves the average; the counters are unchanged since
// the comment itself was neither added nor removed.
func (a *Aggregate) SwapRating(oldRating, newRating int8) {
	if a.NoOfRatings == 0 {
		return
	}
	sum := a.sum() - float64(oldRating) + float64(newRating)
	a.AverageRating = roundAverage(sum, a.NoOfRatings)
}

// RemoveRating removes a deleted comment's rating from the aggregate.
// Deleting the last comment resets the aggregate to its zero state.
func (a *Aggregate) RemoveRating(rating int8) {
	switch {
	case a.NoOfRatings <= 1:
		a.AverageRating = 0
		a.NoOfRatings = 0
	default:
		sum := a.sum() - float64(rating)
		a.NoOfRatings--
		a.AverageRating = roundAverage(sum, a.NoOfRatings)
	}
	if a.NoOfComments > 0 {
		a.NoOfComments--
	}
}

// roundAverage rounds a rating average to two decimal places, half up,
// matching the NUMERIC(3,2) column the average is stored in. Ratings are
// never negative so math.Round behaves as half up here.
func roundAverage(sum float64, n int64) float64 {
	return math.Round(sum/float64(n)*100) / 100
}
