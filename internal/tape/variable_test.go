package tape

import "testing"

func TestFreeVariable(t *testing.T) {
	v := Free(5)
	if v.IsBound() {
		t.Fatalf("free variable reports IsBound() == true")
	}
	if v.ID() != 5 {
		t.Fatalf("ID() = %d, want 5", v.ID())
	}
	if v.String() != "%5" {
		t.Fatalf("String() = %q, want %q", v.String(), "%5")
	}
}

func TestFreeVariableRejectsNonPositiveID(t *testing.T) {
	mustPanic := func(name string, fn func()) {
		defer func() {
			if recover() == nil {
				t.Errorf("%s: expected panic, got none", name)
			}
		}()
		fn()
	}
	mustPanic("Free(0)", func() { Free(0) })
	mustPanic("Free(-1)", func() { Free(-1) })
}

func TestBoundVariableTracksRenumbering(t *testing.T) {
	tp := New()
	ins := tp.SetInputs(1.0, 2.0)
	v2 := ins[1]
	if v2.ID() != 2 {
		t.Fatalf("ID() before insert = %d, want 2", v2.ID())
	}

	tp.Insert(1, NewConstant(nil, 0.0))
	if v2.ID() != 3 {
		t.Fatalf("a bound variable must report its new position after insert: got %d, want 3", v2.ID())
	}
}

func TestBoundFunction(t *testing.T) {
	tp := New()
	ins := tp.SetInputs(1.0, 2.0)
	v1, v2 := ins[0], ins[1]

	if got := Bound(tp, v2); got != v2 {
		t.Fatalf("Bound on an already-bound variable is a no-op: got %v, want %v", got, v2)
	}
	if got := Bound(tp, Free(1)); got != v1 {
		t.Fatalf("Bound resolves a free variable to the operation at its position: got %v, want %v", got, v1)
	}
}

func TestSetIDOnFreeVariable(t *testing.T) {
	v := Free(3)
	v.SetID(9)
	if v.ID() != 9 {
		t.Fatalf("ID() after SetID(9) = %d, want 9", v.ID())
	}
}
