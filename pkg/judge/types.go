package judge

import (
	"time"

	"github.com/google/uuid"
)

// Solver is the function under evaluation.
type Solver func(arr []int) int

type TestCase struct {
	ID          uuid.UUID
	Input       []int
	Expected    int
	Hidden      bool
	Explanation string
}

// NewCase assigns a fresh ID.
func NewCase(input []int, expected int, explanation string) TestCase {
	return TestCase{
		ID:          uuid.New(),
		Input:       input,
		Expected:    expected,
		Explanation: explanation,
	}
}

type Verdict struct {
	CaseID      uuid.UUID
	Passed      bool
	Input       []int
	Expected    int
	Actual      int
	Hidden      bool
	Explanation string
	Elapsed     time.Duration
}

type Summary struct {
	Total   int
	Passed  int
	Failed  int
	Errored int
}

func (s Summary) AllPassed() bool {
	return s.Total > 0 && s.Passed == s.Total
}
