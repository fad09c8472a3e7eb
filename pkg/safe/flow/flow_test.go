package flow

import (
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/safecall/pkg/safe"
)

func TestMap_Success(t *testing.T) {
	t.Parallel()
	out := Map(safe.Success[int, error](3), func(v int) string {
		return strconv.Itoa(v * 2)
	})

	if !out.IsSuccess() || out.Value() != "6" {
		t.Fatalf("expected success '6', got: success=%v, val=%v", out.IsSuccess(), out.Value())
	}
}

func TestMap_FailurePassesThrough(t *testing.T) {
	t.Parallel()
	called := false
	out := Map(safe.FailMsg[int, error]("broken"), func(v int) string {
		called = true
		return ""
	})

	if out.IsSuccess() || out.Failure().Message() != "broken" {
		t.Fatalf("expected carried failure, got %+v", out.Failure())
	}
	if called {
		t.Fatal("onSuccess must not run on failure")
	}
}

func TestThen(t *testing.T) {
	t.Parallel()
	out := Then(safe.Success[string, error]("41"), func(s string) safe.Result[int, error] {
		return safe.CallErr[int, error](func() (int, error) { return strconv.Atoi(s) })
	})

	if !out.IsSuccess() || out.Value() != 41 {
		t.Fatalf("expected success 41, got %+v", out)
	}

	out = Then(safe.Success[string, error]("not a number"), func(s string) safe.Result[int, error] {
		return safe.CallErr[int, error](func() (int, error) { return strconv.Atoi(s) })
	})
	if !out.IsFailure() || out.Failure().Kind() != safe.KindError {
		t.Fatalf("expected error failure, got %+v", out.Failure())
	}
}

func TestMapFailure(t *testing.T) {
	t.Parallel()
	out := MapFailure(safe.FailMsg[int, error]("raw"), func(f safe.Failure[error]) safe.Failure[error] {
		return safe.NewFailure[error](f.Kind(), "decorated: "+f.Message())
	})

	if out.Failure().Message() != "decorated: raw" {
		t.Fatalf("expected decorated message, got %q", out.Failure().Message())
	}

	ok := MapFailure(safe.Success[int, error](1), func(f safe.Failure[error]) safe.Failure[error] {
		t.Error("must not run on success")
		return f
	})
	if !ok.IsSuccess() {
		t.Fatal("success must pass through")
	}
}

func TestTeeAndTeeFailure(t *testing.T) {
	t.Parallel()

	seen := 0
	Tee(safe.Success[int, error](5), func(v int) { seen = v })
	if seen != 5 {
		t.Fatalf("expected side effect with 5, got %v", seen)
	}

	Tee(safe.FailMsg[int, error]("no"), func(v int) { t.Error("must not run on failure") })

	var msg string
	TeeFailure(safe.FailMsg[int, error]("oops"), func(f safe.Failure[error]) { msg = f.Message() })
	if msg != "oops" {
		t.Fatalf("expected failure side effect, got %q", msg)
	}
}

func TestDoubleTee(t *testing.T) {
	t.Parallel()

	var branch string
	DoubleTee(safe.Success[int, error](1),
		func(int) { branch = "success" },
		func(safe.Failure[error]) { branch = "failure" })
	if branch != "success" {
		t.Fatalf("expected success branch, got %q", branch)
	}

	DoubleTee(safe.FailMsg[int, error]("x"),
		func(int) { branch = "success" },
		func(safe.Failure[error]) { branch = "failure" })
	if branch != "failure" {
		t.Fatalf("expected failure branch, got %q", branch)
	}
}

func TestFinally(t *testing.T) {
	t.Parallel()

	got := Finally(safe.Success[int, error](2),
		func(v int) string { return "val:" + strconv.Itoa(v) },
		func(f safe.Failure[error]) string { return "err:" + f.Message() })
	if got != "val:2" {
		t.Fatalf("expected 'val:2', got %q", got)
	}

	got = Finally(safe.FailErr[int, error](errors.New("down")),
		func(v int) string { return "val" },
		func(f safe.Failure[error]) string { return "err:" + f.Message() })
	if got != "err:down" {
		t.Fatalf("expected 'err:down', got %q", got)
	}
}
