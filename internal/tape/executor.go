package tape

import "fmt"

// Play re-executes t over fresh input values and returns the result.
// Each element of args overwrites the corresponding
// Input operation's value, in positional order; supplying more
// arguments than the tape has Inputs is a programmer error.
func Play(t *Tape, args ...any) any {
	inputs := t.Inputs()
	if len(args) > len(inputs) {
		panic(fmt.Sprintf("tape: play got %d arguments but tape has only %d inputs", len(args), len(inputs)))
	}
	for i, a := range args {
		op := t.At(inputs[i])
		if op.kind != KindInput {
			panic("tape: play argument does not correspond to an Input operation")
		}
		op.val = a
	}

	for _, op := range t.ops {
		exec(t, op)
	}

	return t.At(t.result).val
}

// exec dispatches a single operation during playback.
func exec(t *Tape, op *Operation) {
	switch op.kind {
	case KindInput, KindConstant:
		// Values are already set; nothing to do.
	case KindCall:
		execCall(t, op)
	case KindLoop:
		execLoop(t, op)
	default:
		panic(fmt.Sprintf("tape: unknown operation kind %s", op.kind))
	}
}

// valueIn resolves x — a Variable or a raw value — to its current
// value within space: a bound Variable reads its referent directly; a
// free Variable is looked up by position in space; anything else is
// returned as-is.
func valueIn(space *Tape, x any) any {
	if v, ok := x.(Variable); ok {
		if v.IsBound() {
			return v.opRef().val
		}
		return space.At(v).val
	}
	return x
}

// execCall resolves a Call's function — looking through Variable
// indirection when fn is itself a Variable pointing at an earlier
// operation — and its arguments, invokes it, and stores the result.
func execCall(t *Tape, op *Operation) {
	fn := valueIn(t, op.fn)
	args := make([]any, len(op.args))
	for i, a := range op.args {
		args[i] = valueIn(t, a.asAny())
	}
	op.val = callFn(fn, args)
}

// execLoop interprets a Loop's subtape with fixpoint-style input
// rebinding: the subtape's cursor wraps back to the first body
// operation after each pass, feeding each continue-var's latest value
// back into the matching input slot, until the condition evaluates
// false.
func execLoop(parent *Tape, op *Operation) {
	l := op.loop
	sub := l.Subtape
	subInputs := sub.Inputs()
	n := len(l.ParentInputs)
	bodyStart := n + 1

	// Seed: the i-th Input of sub takes parent_inputs[i]'s value.
	// parent_inputs live in the *parent* tape, so they're resolved
	// against parent, not sub.
	for i := 0; i < n; i++ {
		sub.At(subInputs[i]).val = valueIn(parent, l.ParentInputs[i])
	}

	vi := bodyStart
	for {
		cur := sub.ops[vi-1]
		exec(sub, cur)

		if vi == l.Condition.ID() {
			cond, ok := cur.val.(bool)
			if !ok {
				panic(fmt.Sprintf("tape: loop condition must evaluate to bool, got %T", cur.val))
			}
			if !cond {
				op.val = loopExitValues(sub, l, subInputs, vi)
				return
			}
		}

		vi++
		if vi > sub.Len() {
			vi = bodyStart
			for i, cv := range l.ContVars {
				sub.At(subInputs[i]).val = sub.At(cv).val
			}
		}
	}
}

// loopExitValues gathers the loop's result tuple once the condition has
// fired false at cursor position vi. For each exit variable, if the
// cursor has already passed that continue-var's position in this
// iteration, the exit takes the updated continue-var's value;
// otherwise it takes the pre-iteration input value for that slot — the
// case where the condition fires before all continue-vars have been
// recomputed this iteration.
func loopExitValues(sub *Tape, l *Loop, subInputs []Variable, vi int) Tuple {
	vals := make(Tuple, len(l.ExitVars))
	for k, ev := range l.ExitVars {
		idx := indexOfVar(l.ContVars, ev)
		if idx < 0 {
			panic("tape: exit_vars must be a subset of cont_vars")
		}
		cv := l.ContVars[idx]
		if vi > cv.ID() {
			vals[k] = sub.At(cv).val
		} else {
			vals[k] = sub.At(subInputs[idx]).val
		}
	}
	return vals
}

func indexOfVar(list []Variable, v Variable) int {
	for i, x := range list {
		if x == v {
			return i
		}
	}
	return -1
}
