// Package kadane computes the maximum sum of a contiguous, non-empty run of
// integers in a single linear pass with constant extra space.
//
// Highlights:
// - MaxSubarraySum: the scan over []int
// - MaxSubarraySumOf: the same scan over any signed integer type
// - MaxSubarray: the scan plus the inclusive bounds of the winning run
//
// An empty or nil slice yields 0. A non-empty slice of negative numbers yields
// its largest element, never 0. Sums wrap on overflow at the width of the
// element type.
package kadane
