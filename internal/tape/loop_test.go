package tape

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func isPositive(x float64) bool   { return x > 0 }
func decrement(x float64) float64 { return x - 1 }
func accumulate(sum, counter float64) float64 { return sum + counter }

// TestLoopExecution builds a Loop summing counter, counter-1, ..., 1 via
// its subtape's fixpoint interpreter, exercising the wraparound seeding
// of continue variables and the exit-values rule for a condition that
// fires at the top of an iteration.
func TestLoopExecution(t *testing.T) {
	sub := New()
	subIns := sub.SetInputs(0.0, 0.0)
	counterIn, sumIn := subIns[0], subIns[1]

	cond := sub.Push(MkCall(isPositive, []any{counterIn}))
	newCounter := sub.Push(MkCall(decrement, []any{counterIn}))
	newSum := sub.Push(MkCall(accumulate, []any{sumIn, counterIn}))

	parent := New()
	parentIns := parent.SetInputs(0.0, 0.0)
	parentCounter, parentSum := parentIns[0], parentIns[1]

	loop := &Loop{
		ParentInputs: []Variable{parentCounter, parentSum},
		Subtape:      sub,
		Condition:    cond,
		ContVars:     []Variable{newCounter, newSum},
		ExitVars:     []Variable{newSum},
	}
	loopVar := parent.Push(NewLoop(loop))
	parent.SetResult(loopVar)

	got := Play(parent, 3.0, 0.0)
	result, ok := got.(Tuple)
	if assert.True(t, ok, "a Loop's val must be a Tuple") {
		if assert.Len(t, result, 1) {
			assert.Equal(t, 6.0, result[0], "sum of 3+2+1 via the loop body")
		}
	}
}

func TestNewLoopRejectsMismatchedArity(t *testing.T) {
	sub := New()
	subIns := sub.SetInputs(0.0)
	cond := sub.Push(MkCall(isPositive, []any{subIns[0]}))

	assert.Panics(t, func() {
		NewLoop(&Loop{
			ParentInputs: []Variable{Free(1), Free(2)},
			Subtape:      sub,
			Condition:    cond,
			ContVars:     []Variable{subIns[0]},
			ExitVars:     []Variable{subIns[0]},
		})
	}, "parent_inputs and cont_vars must have matching arity")
}
