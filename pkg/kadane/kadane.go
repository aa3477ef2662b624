package kadane

import "golang.org/x/exp/constraints"

// Span is the inclusive range [Start, End] of a maximal run and its sum.
type Span[T constraints.Signed] struct {
	Start int
	End   int
	Sum   T
}

// Len returns the number of elements covered by the span.
func (s Span[T]) Len() int {
	return s.End - s.Start + 1
}

// MaxSubarraySum returns the largest sum of any contiguous run of arr, or 0 when arr is empty.
func MaxSubarraySum(arr []int) int {
	return MaxSubarraySumOf(arr)
}

// MaxSubarraySumOf returns 0 for an empty input.
func MaxSubarraySumOf[T constraints.Signed](arr []T) T {
	if len(arr) == 0 {
		return 0
	}

	bestEndingHere := arr[0]
	bestOverall := arr[0]

	for _, v := range arr[1:] {
		bestEndingHere = max(v, bestEndingHere+v)
		bestOverall = max(bestOverall, bestEndingHere)
	}

	return bestOverall
}

// MaxSubarray reports false for an empty input.
// Among equal sums the earliest ending run wins, and for that end the longest one.
func MaxSubarray[T constraints.Signed](arr []T) (Span[T], bool) {
	if len(arr) == 0 {
		return Span[T]{}, false
	}

	best := Span[T]{Start: 0, End: 0, Sum: arr[0]}
	start, bestEndingHere := 0, arr[0]

	for i := 1; i < len(arr); i++ {
		v := arr[i]
		if extended := bestEndingHere + v; v > extended {
			start, bestEndingHere = i, v
		} else {
			bestEndingHere = extended
		}

		if bestEndingHere > best.Sum {
			best = Span[T]{Start: start, End: i, Sum: bestEndingHere}
		}
	}

	return best, true
}
