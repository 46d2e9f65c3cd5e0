package track

import (
	"errors"
	"os"
	"testing"
)

func TestSucceed_AsSuccess(t *testing.T) {
	t.Parallel()
	r := Succeed("Jim")

	s, ok := r.AsSuccess()
	if !ok || s.Get() != "Jim" {
		t.Fatalf("expected success with Jim, got: ok=%v", ok)
	}
	if f, ok := r.AsFailure(); ok || f != nil {
		t.Fatalf("success should have no failure view, got: %v", f)
	}
}

func TestFail_AsFailure(t *testing.T) {
	t.Parallel()
	r := Fail[string]("bad input")

	f, ok := r.AsFailure()
	if !ok || f.ErrorMessage() != "bad input" {
		t.Fatalf("expected failure 'bad input', got: ok=%v", ok)
	}
	if s, ok := r.AsSuccess(); ok || s != nil {
		t.Fatalf("failure should have no success view, got: %v", s)
	}
	if Cause(f) != nil {
		t.Fatalf("explicit rejection should carry no cause, got: %v", Cause(f))
	}
}

func TestFailFrom_RetainsCause(t *testing.T) {
	t.Parallel()
	cause := errors.New("disk on fire")
	r := FailFrom[int](cause)

	f, ok := r.AsFailure()
	if !ok || f.ErrorMessage() != "disk on fire" {
		t.Fatalf("expected message derived from cause, got: ok=%v", ok)
	}
	if Cause(f) != cause {
		t.Fatalf("expected original cause back, got: %v", Cause(f))
	}
	if err, ok := f.(error); !ok || !errors.Is(err, cause) {
		t.Fatalf("cause-backed failure should unwrap to its cause")
	}
}

func TestSucceed_NilPayloadStaysOnSuccessTrack(t *testing.T) {
	t.Parallel()
	r := Succeed[*int](nil)

	s, ok := r.AsSuccess()
	if !ok {
		t.Fatalf("nil payload is a legitimate success")
	}
	if s.Get() != nil {
		t.Fatalf("expected nil payload back")
	}
	if _, ok := r.AsFailure(); ok {
		t.Fatalf("nil payload must not be mistaken for a failure")
	}
}

func TestFail_EmptyMessagePanics(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on empty message")
		}
	}()
	Fail[int]("")
}

func TestFailFrom_NilCausePanics(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on nil cause")
		}
	}()
	FailFrom[int](nil)
}

func TestFailFrom_TypedNilCausePanics(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic on typed-nil cause")
		}
	}()
	var pe *os.PathError
	FailFrom[int](pe)
}

func TestFailAs_PreservesFailureAndIdentity(t *testing.T) {
	t.Parallel()
	from := Fail[int]("no luck")
	to := FailAs[int, string](from)

	f, ok := to.AsFailure()
	if !ok || f.ErrorMessage() != "no luck" {
		t.Fatalf("expected identical failure after re-typing")
	}
	if to.Id() != from.Id() || !to.CreatedAt().Equal(from.CreatedAt()) {
		t.Fatalf("re-typing must keep id and creation time")
	}
}

func TestFailAs_OnSuccessPanics(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic when re-typing a success")
		}
	}()
	FailAs[int, string](Succeed(1))
}

func TestResults_HaveDistinctIds(t *testing.T) {
	t.Parallel()
	if Succeed(1).Id() == Succeed(1).Id() {
		t.Fatalf("expected distinct ids per construction")
	}
}

func TestString(t *testing.T) {
	t.Parallel()
	if s := Succeed(42).String(); s != "Success(42)" {
		t.Fatalf("unexpected rendering: %s", s)
	}
	if s := Fail[int]("boom").String(); s != "Failure(boom)" {
		t.Fatalf("unexpected rendering: %s", s)
	}
}
