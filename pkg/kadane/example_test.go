package kadane_test

import (
	"fmt"

	"github.com/ib-77/kadane/pkg/kadane"
)

func ExampleMaxSubarraySum() {
	fmt.Println(kadane.MaxSubarraySum([]int{-2, 1, -3, 4, -1, 2, 1, -5, 4}))
	fmt.Println(kadane.MaxSubarraySum([]int{-2, -3, -1}))
	fmt.Println(kadane.MaxSubarraySum(nil))
	// Output:
	// 6
	// -1
	// 0
}

func ExampleMaxSubarray() {
	span, ok := kadane.MaxSubarray([]int{-2, 1, -3, 4, -1, 2, 1, -5, 4})
	fmt.Println(ok, span.Start, span.End, span.Sum)
	// Output: true 3 6 6
}
