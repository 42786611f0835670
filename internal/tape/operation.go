package tape

import (
	"fmt"
	"reflect"
)

// Kind tags the four sealed Operation variants: Input, Constant, Call,
// and Loop. The variant set is closed; there is no provision for adding
// a fifth.
type Kind int

const (
	KindInput Kind = iota
	KindConstant
	KindCall
	KindLoop
)

func (k Kind) String() string {
	switch k {
	case KindInput:
		return "Input"
	case KindConstant:
		return "Constant"
	case KindCall:
		return "Call"
	case KindLoop:
		return "Loop"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// missingType is the sentinel for "value not yet computed". It is its
// own distinct type so it is never mistaken for a legitimate nil/zero
// result.
type missingType struct{}

func (missingType) String() string { return "<missing>" }

// Missing is the sentinel value distinguishing "not computed" from any
// legitimate result, including nil.
var Missing any = missingType{}

// IsMissing reports whether v is the Missing sentinel.
func IsMissing(v any) bool {
	_, ok := v.(missingType)
	return ok
}

// Arg is one element of a Call's argument list: either a reference to
// an earlier operation (Variable) or a raw constant value.
type Arg struct {
	v        Variable
	val      any
	variable bool
}

// VarArg wraps a Variable as a Call argument.
func VarArg(v Variable) Arg { return Arg{v: v, variable: true} }

// ConstArg wraps a raw value as a Call argument.
func ConstArg(val any) Arg { return Arg{val: val} }

// IsVariable reports whether the argument is a Variable reference.
func (a Arg) IsVariable() bool { return a.variable }

// Variable returns the wrapped Variable. Panics if IsVariable is false.
func (a Arg) Variable() Variable {
	if !a.variable {
		panic("tape: arg is not a variable")
	}
	return a.v
}

// Value returns the wrapped constant. Panics if IsVariable is true.
func (a Arg) Value() any {
	if a.variable {
		panic("tape: arg is a variable, not a constant")
	}
	return a.val
}

// asAny boxes the argument back into the uniform representation used
// for calculability checks and resolution: either the Variable itself
// or the raw value.
func (a Arg) asAny() any {
	if a.variable {
		return a.v
	}
	return a.val
}

// Loop owns the nested subtape and fixpoint bookkeeping for a
// structured loop operation.
type Loop struct {
	// ParentInputs are Variables in the enclosing tape providing
	// initial values for loop-carried state.
	ParentInputs []Variable
	// Subtape is the nested tape implementing the loop body. Its
	// Inputs correspond 1:1 with ParentInputs.
	Subtape *Tape
	// Condition is a Variable within Subtape whose boolean value,
	// when false, terminates the loop.
	Condition Variable
	// ContVars are Variables in Subtape that become the next
	// iteration's input values when the loop continues.
	ContVars []Variable
	// ExitVars is the subset of ContVars (order preserved) whose
	// final values form the loop's result.
	ExitVars []Variable
}

// Operation is one node of a tape: an Input, a Constant, a Call, or a
// Loop, tagged by Kind. Every operation carries a mutable id (0 before
// it is pushed/inserted into a tape) and a cached val.
//
// A single struct with variant-only fields is used instead of one
// concrete type per variant, because the variant set is sealed to
// exactly four members and a shared representation keeps construction,
// rewriting, and printing working over one type rather than an
// interface with four implementations.
type Operation struct {
	id   int
	kind Kind
	val  any

	// Constant only: the type pinned at construction time. A type is
	// otherwise always observed from val, never stored redundantly;
	// Constant is the one exception, since its original type must
	// survive even when val later gets overwritten.
	ctyp reflect.Type

	// Call only.
	fn   any // function, reflect.Type (constructor), or Variable
	args []Arg

	// Loop only.
	loop *Loop
}

// NewInput constructs an Input operation holding the given actual
// argument value. val holds the most recently supplied actual
// argument; it is overwritten by Play on subsequent runs.
func NewInput(val any) *Operation {
	return &Operation{kind: KindInput, val: val}
}

// NewConstant constructs a Constant operation of the given pinned type.
func NewConstant(typ reflect.Type, val any) *Operation {
	return &Operation{kind: KindConstant, ctyp: typ, val: val}
}

// NewLoop constructs a Loop operation. val is Missing until the
// executor runs it.
func NewLoop(l *Loop) *Operation {
	if l == nil {
		panic("tape: nil loop")
	}
	if len(l.ParentInputs) != len(l.ContVars) {
		panic(fmt.Sprintf(
			"tape: loop invariant violated: %d parent inputs but %d cont vars",
			len(l.ParentInputs), len(l.ContVars)))
	}
	if l.Subtape == nil {
		panic("tape: loop subtape must not be nil")
	}
	if len(l.Subtape.Inputs()) != len(l.ParentInputs) {
		panic(fmt.Sprintf(
			"tape: loop invariant violated: subtape has %d inputs but %d parent inputs were given",
			len(l.Subtape.Inputs()), len(l.ParentInputs)))
	}
	return &Operation{kind: KindLoop, val: Missing, loop: l}
}

// ID returns the operation's current position (1-based), or 0 if it has
// not yet been pushed/inserted into a tape.
func (op *Operation) ID() int { return op.id }

// Kind returns the operation's tag.
func (op *Operation) Kind() Kind { return op.kind }

// Val returns the operation's cached value.
func (op *Operation) Val() any { return op.val }

// Type returns typeof(val): the pinned type for a Constant, otherwise
// the runtime type of the cached value.
func (op *Operation) Type() reflect.Type {
	if op.kind == KindConstant {
		return op.ctyp
	}
	if IsMissing(op.val) || op.val == nil {
		return nil
	}
	return reflect.TypeOf(op.val)
}

// Fn returns the Call's function/type/Variable. Panics for other kinds.
func (op *Operation) Fn() any {
	op.mustBe(KindCall)
	return op.fn
}

// Args returns the Call's argument list. Panics for other kinds.
func (op *Operation) Args() []Arg {
	op.mustBe(KindCall)
	return op.args
}

// LoopFields returns the Loop's fields. Panics for other kinds.
func (op *Operation) LoopFields() *Loop {
	op.mustBe(KindLoop)
	return op.loop
}

func (op *Operation) mustBe(k Kind) {
	if op.kind != k {
		panic(fmt.Sprintf("tape: operation is %s, not %s", op.kind, k))
	}
}
