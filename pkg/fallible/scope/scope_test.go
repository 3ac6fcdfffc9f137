package scope

import (
	"errors"
	"testing"

	"github.com/gregor-smith/fallible/pkg/fallible"
)

func TestPropagate_SuccessContinues(t *testing.T) {
	t.Parallel()
	reached := false

	out := Run(func() fallible.Result[int] {
		n := Propagate(fallible.Success(5))
		reached = true
		return fallible.Success(n + 1)
	})

	if !reached {
		t.Fatalf("body must continue after propagating a success")
	}
	if !out.IsSuccess() || out.Result() != 6 {
		t.Fatalf("expected success 6, got: success=%v val=%v err=%v", out.IsSuccess(), out.Result(), out.Err())
	}
}

func TestPropagate_FailureShortCircuits(t *testing.T) {
	t.Parallel()
	err := errors.New("boom")
	reached := false

	out := Run(func() fallible.Result[int] {
		Propagate(fallible.Fail[int](err))
		reached = true
		panic("this statement must never run")
	})

	if reached {
		t.Fatalf("statements after a failed propagate must not run")
	}
	if out.IsSuccess() || out.Err() != err {
		t.Fatalf("expected failure %v, got: success=%v err=%v", err, out.IsSuccess(), out.Err())
	}
}

func TestPropagate_BypassesEnclosingExpression(t *testing.T) {
	t.Parallel()
	err := errors.New("boom")
	combined := false

	out := Run(func() fallible.Result[int] {
		add := func(a, b int) int { combined = true; return a + b }
		return fallible.Success(add(
			Propagate(fallible.Fail[int](err)),
			Propagate(fallible.Success(1)),
		))
	})

	if combined {
		t.Fatalf("enclosing expression must not be evaluated after the exit")
	}
	if out.IsSuccess() || out.Err() != err {
		t.Fatalf("expected failure %v, got: success=%v err=%v", err, out.IsSuccess(), out.Err())
	}
}

func TestRun_BodyResultVerbatim(t *testing.T) {
	t.Parallel()
	direct := fallible.Success("value")
	if out := Run(func() fallible.Result[string] { return direct }); out != direct {
		t.Fatalf("expected the body's result verbatim, got %+v", out)
	}

	err := errors.New("boom")
	failed := fallible.Fail[string](err)
	if out := Run(func() fallible.Result[string] { return failed }); out != failed {
		t.Fatalf("a returned failure must pass through unconverted, got %+v", out)
	}
}

func TestRun_NestedBoundaries(t *testing.T) {
	t.Parallel()
	innerErr := errors.New("inner")

	out := Run(func() fallible.Result[string] {
		inner := Run(func() fallible.Result[int] {
			Propagate(fallible.Fail[int](innerErr))
			return fallible.Success(0)
		})
		if inner.IsSuccess() {
			t.Fatalf("inner boundary should have failed")
		}
		// the inner failure is observable here; the outer boundary is untouched
		return fallible.Success("outer:" + inner.Err().Error())
	})

	if !out.IsSuccess() || out.Result() != "outer:inner" {
		t.Fatalf("expected outer success, got: success=%v val=%v err=%v", out.IsSuccess(), out.Result(), out.Err())
	}
}

func TestRun_NestedPropagateReachesOwnBoundary(t *testing.T) {
	t.Parallel()
	outerErr := errors.New("outer")

	out := Run(func() fallible.Result[int] {
		n := Propagate(Run(func() fallible.Result[int] {
			return fallible.Success(1)
		}))
		Propagate(fallible.Fail[int](outerErr))
		return fallible.Success(n)
	})

	if out.IsSuccess() || out.Err() != outerErr {
		t.Fatalf("expected outer failure, got: success=%v err=%v", out.IsSuccess(), out.Err())
	}
}

func TestRun_UnrelatedPanicEscapes(t *testing.T) {
	t.Parallel()
	defect := errors.New("defect")

	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected the defect to escape the boundary")
		}
		if r != defect {
			t.Fatalf("expected the original panic value, got %v", r)
		}
	}()

	Run(func() fallible.Result[int] {
		panic(defect)
	})
	t.Fatalf("unreachable")
}

func TestPropagate_OutsideBoundaryPanics(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Fatalf("propagate outside any boundary must panic")
		}
	}()
	Propagate(fallible.Fail[int](errors.New("loose")))
}
