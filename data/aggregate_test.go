package data

import (
	"math"
	"testing"
)

func TestAggregateAddRating(t *testing.T) {
	tests := []struct {
		name        string
		ratings     []int8
		wantAverage float64
	}{
		{"single rating", []int8{5}, 5.00},
		{"two ratings", []int8{3, 5}, 4.00},
		{"three ratings", []int8{5, 3, 4}, 4.00},
		{"repeating decimal", []int8{4, 4, 5}, 4.33},
		{"rounds half up", []int8{5, 4, 3, 3, 3, 3, 3, 1}, 3.13}, // sum 25 over 8 = 3.125
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var agg Aggregate
			for _, rating := range tt.ratings {
				agg.AddRating(rating)
			}
			if agg.AverageRating != tt.wantAverage {
				t.Errorf("expected average %.2f; got %.2f", tt.wantAverage, agg.AverageRating)
			}
			if agg.NoOfRatings != int64(len(tt.ratings)) {
				t.Errorf("expected %d ratings; got %d", len(tt.ratings), agg.NoOfRatings)
			}
			if agg.NoOfComments != agg.NoOfRatings {
				t.Errorf("expected comment count %d to equal rating count %d", agg.NoOfComments, agg.NoOfRatings)
			}
		})
	}
}

func TestAggregateOrderIndependence(t *testing.T) {
	orders := [][]int8{
		{5, 3, 4},
		{3, 4, 5},
		{4, 5, 3},
	}
	for _, ratings := range orders {
		var agg Aggregate
		for _, rating := range ratings {
			agg.AddRating(rating)
		}
		if agg.AverageRating != 4.00 || agg.NoOfRatings != 3 {
			t.Errorf("ratings %v: expected (3, 4.00); got (%d, %.2f)", ratings, agg.NoOfRatings, agg.AverageRating)
		}
	}
}

func TestAggregateSwapRating(t *testing.T) {
	var agg Aggregate
	agg.AddRating(3)
	agg.AddRating(5)
	if agg.AverageRating != 4.00 {
		t.Fatalf("expected average 4.00 before edit; got %.2f", agg.AverageRating)
	}
	agg.SwapRating(3, 4)
	if agg.AverageRating != 4.50 {
		t.Errorf("expected average 4.50 after edit; got %.2f", agg.AverageRating)
	}
	if agg.NoOfRatings != 2 || agg.NoOfComments != 2 {
		t.Errorf("expected counters unchanged at 2; got (%d, %d)", agg.NoOfComments, agg.NoOfRatings)
	}
}

func TestAggregateRemoveRating(t *testing.T) {
	t.Run("delete to zero", func(t *testing.T) {
		var agg Aggregate
		agg.AddRating(5)
		agg.RemoveRating(5)
		if agg.NoOfComments != 0 || agg.NoOfRatings != 0 || agg.AverageRating != 0.00 {
			t.Errorf("expected zero aggregate; got (%d, %d, %.2f)", agg.NoOfComments, agg.NoOfRatings, agg.AverageRating)
		}
	})

	t.Run("delete one of many", func(t *testing.T) {
		var agg Aggregate
		for _, rating := range []int8{5, 3, 4} {
			agg.AddRating(rating)
		}
		agg.RemoveRating(3)
		if agg.AverageRating != 4.50 {
			t.Errorf("expected average 4.50; got %.2f", agg.AverageRating)
		}
		if agg.NoOfRatings != 2 || agg.NoOfComments != 2 {
			t.Errorf("expected counters at 2; got (%d, %d)", agg.NoOfComments, agg.NoOfRatings)
		}
	})
}

// The stored average times the rating count must reconstruct the live rating
// sum after any sequence of operations, so that later increments never
// compound a rounding error into the wrong total.
func TestAggregateSumReconstruction(t *testing.T) {
	var agg Aggregate
	ratings := []int8{1, 5, 2, 4, 4, 3, 5, 5, 2, 1, 3, 4}
	sum := 0
	for _, rating := range ratings {
		agg.AddRating(rating)
		sum += int(rating)
	}
	agg.SwapRating(1, 5)
	sum += 4
	agg.RemoveRating(2)
	sum -= 2

	got := math.Round(agg.AverageRating * float64(agg.NoOfRatings))
	if got != float64(sum) {
		t.Errorf("expected reconstructed sum %d; got %.0f", sum, got)
	}
}
