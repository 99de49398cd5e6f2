package util

import "testing"

func TestOptionSomeHasValue(t *testing.T) {
	o := Some(42)

	if !o.HasValue() {
		t.Fatal("expected Some to have a value")
	}

	if o.Unwrap() != 42 {
		t.Fatalf("expected 42, got %d", o.Unwrap())
	}
}

func TestOptionNoneIsEmpty(t *testing.T) {
	o := None[int]()

	if o.HasValue() {
		t.Fatal("expected None to be empty")
	}

	if !o.IsEmpty() {
		t.Fatal("expected IsEmpty to be true for None")
	}
}

func TestOptionUnwrapPanicsOnNone(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected Unwrap on an empty option to panic")
		}
	}()

	None[string]().Unwrap()
}
