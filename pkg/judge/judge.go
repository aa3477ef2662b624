package judge

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/ib-77/kadane/pkg/rop"
	"go.uber.org/zap"
)

var ErrSolverPanic = errors.New("solver panicked")

type Judge struct {
	logger *zap.Logger
}

func New(opts ...Option) *Judge {
	j := &Judge{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Run evaluates cases in order. Results already collected are returned when ctx is done.
func (j *Judge) Run(ctx context.Context, solver Solver, cases []TestCase) []rop.Result[Verdict] {
	stopOnFailure := IsStopOnFailureEnabled(ctx, false)
	results := make([]rop.Result[Verdict], 0, len(cases))

	for i, tc := range cases {
		if err := ctx.Err(); err != nil {
			j.logger.Warn("Run interrupted",
				zap.Int("completed", i),
				zap.Int("total", len(cases)),
				zap.Error(err))
			break
		}

		res := j.evaluate(solver, tc)
		results = append(results, res)

		if stopOnFailure && (!res.IsSuccess() || !res.Result().Passed) {
			j.logger.Debug("Stopping on first failure", zap.Stringer("case", tc.ID))
			break
		}
	}

	return results
}

func (j *Judge) evaluate(solver Solver, tc TestCase) rop.Result[Verdict] {
	v := Verdict{
		CaseID:      tc.ID,
		Input:       tc.Input,
		Expected:    tc.Expected,
		Hidden:      tc.Hidden,
		Explanation: tc.Explanation,
	}

	start := time.Now()
	actual, err := try(solver, slices.Clone(tc.Input))
	v.Elapsed = time.Since(start)

	if err != nil {
		j.logger.Error("Solver failed", zap.Stringer("case", tc.ID), zap.Error(err))
		return rop.Fail(err, v)
	}

	v.Actual = actual
	v.Passed = actual == tc.Expected

	j.logger.Debug("Case evaluated",
		zap.Stringer("case", tc.ID),
		zap.Bool("passed", v.Passed),
		zap.Int("expected", tc.Expected),
		zap.Int("actual", actual),
		zap.Duration("elapsed", v.Elapsed))

	return rop.Success(v)
}

func try(solver Solver, input []int) (out int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrSolverPanic, r)
		}
	}()
	return solver(input), nil
}

func Summarize(results []rop.Result[Verdict]) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		switch {
		case !r.IsSuccess():
			s.Errored++
		case r.Result().Passed:
			s.Passed++
		default:
			s.Failed++
		}
	}
	return s
}
