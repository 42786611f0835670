package tape

import "fmt"

// Tape is an ordered, mutable container of operations representing a
// traced computation. Position in Ops equals an operation's id
// (1-based); this is the tape consistency invariant every Rewrite
// engine operation must preserve.
type Tape struct {
	ops    []*Operation
	result Variable

	// Parent optionally points a Loop's Subtape back to the enclosing
	// tape. The core neither sets nor consults it; it exists as
	// bookkeeping for transform passes that need to walk upward.
	Parent *Tape

	// Meta is free-form bookkeeping for transform passes; the core
	// never reads or writes it.
	Meta map[string]any

	// context holds user-supplied, parametric per-tape state. Stored
	// as any with a generic accessor pair (Context/SetContext) rather
	// than making Tape itself generic, so that Operation and its
	// Loop.Subtape field never need to carry a type parameter purely
	// to pass through an opaque value the core never inspects.
	context any
}

// New creates an empty tape with no context value.
func New() *Tape {
	return &Tape{Meta: make(map[string]any)}
}

// NewWithContext creates an empty tape carrying the given context
// value, retrievable later via Context[C].
func NewWithContext[C any](ctx C) *Tape {
	t := New()
	t.context = ctx
	return t
}

// Context retrieves t's context value as type C. Panics if t's context
// was never set or is not assignable to C.
func Context[C any](t *Tape) C {
	c, ok := t.context.(C)
	if !ok {
		panic(fmt.Sprintf("tape: context is not assignable to requested type %T", *new(C)))
	}
	return c
}

// SetContext sets t's context value.
func SetContext[C any](t *Tape, ctx C) {
	t.context = ctx
}

// Len returns the number of operations on the tape.
func (t *Tape) Len() int { return len(t.ops) }

// Ops returns the tape's operations in order. The returned slice is
// t's own backing slice; callers must not retain it across a mutation.
func (t *Tape) Ops() []*Operation { return t.ops }

// Result returns the tape's result variable.
func (t *Tape) Result() Variable { return t.result }

// SetResult sets the tape's result variable. v's id must be a valid
// index into the tape.
func (t *Tape) SetResult(v Variable) {
	t.checkRange(v.ID())
	t.result = v
}

// At returns the operation currently at v's id. Panics if v's id is out
// of range. For a bound v whose operation has been replaced in place,
// this is the replacement now at that position.
func (t *Tape) At(v Variable) *Operation {
	id := v.ID()
	t.checkRange(id)
	return t.ops[id-1]
}

func (t *Tape) checkRange(id int) {
	if id < 1 || id > len(t.ops) {
		panic(fmt.Sprintf("tape: variable id %d out of range [1,%d]", id, len(t.ops)))
	}
}

// Inputs returns bound Variables for each Input operation, in
// positional order.
func (t *Tape) Inputs() []Variable {
	var ins []Variable
	for _, op := range t.ops {
		if op.kind == KindInput {
			ins = append(ins, boundVar(op))
		}
	}
	return ins
}

// SetInputs appends an Input operation for each value in vals if the
// tape has no Input operations yet; otherwise it overwrites the
// existing Inputs' values in order (count must match). Returns the
// input Variables either way.
func (t *Tape) SetInputs(vals ...any) []Variable {
	existing := t.Inputs()
	if len(existing) == 0 {
		vars := make([]Variable, len(vals))
		for i, v := range vals {
			vars[i] = t.Push(NewInput(v))
		}
		return vars
	}
	if len(existing) != len(vals) {
		panic(fmt.Sprintf(
			"tape: inputs! count mismatch: tape has %d inputs, %d values given",
			len(existing), len(vals)))
	}
	for i, v := range existing {
		t.At(v).val = vals[i]
	}
	return existing
}

// All iterates the tape's operations in order.
func (t *Tape) All() func(func(*Operation) bool) {
	return func(yield func(*Operation) bool) {
		for _, op := range t.ops {
			if !yield(op) {
				return
			}
		}
	}
}
