package judge

// StandardCases returns fresh copies on every call.
func StandardCases() []TestCase {
	return []TestCase{
		NewCase([]int{}, 0, "empty input"),
		NewCase(nil, 0, "absent input"),
		NewCase([]int{5}, 5, "single positive element"),
		NewCase([]int{-5}, -5, "single negative element is its own maximum"),
		NewCase([]int{-2, -3, -1}, -1, "all negative: least negative element"),
		NewCase([]int{-2, 1, -3, 4, -1, 2, 1, -5, 4}, 6, "subarray [4, -1, 2, 1]"),
		NewCase([]int{1, 2, 3, 4}, 10, "whole array"),
	}
}
