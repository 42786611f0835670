package tapeasm

import (
	"fmt"
	"reflect"
	"strconv"

	"tape/internal/tape"
)

// loopMarkers accumulates the cond/cont/exit declarations found while
// building a loop body; only meaningful when buildStatements is called
// with insideLoop true.
type loopMarkers struct {
	cond    tape.Variable
	hasCond bool
	cont    []tape.Variable
	exit    []tape.Variable
}

// Build assembles a parsed Program into a runnable tape.Tape, resolving
// each "%N" label to the Variable produced by the corresponding
// statement, in source order.
func Build(prog *Program) (*tape.Tape, error) {
	t := tape.New()
	vars := make(map[string]tape.Variable)
	if _, err := buildStatements(t, prog.Tape.Stmts, vars, false); err != nil {
		return nil, err
	}
	return t, nil
}

// BuildSource parses and builds source in one step.
func BuildSource(sourceName, source string) (*tape.Tape, error) {
	prog, err := ParseSource(sourceName, source)
	if err != nil {
		return nil, err
	}
	return Build(prog)
}

func buildStatements(t *tape.Tape, stmts []*Statement, vars map[string]tape.Variable, insideLoop bool) (loopMarkers, error) {
	var lm loopMarkers

	for _, s := range stmts {
		switch {
		case s.Inp != nil:
			val, err := literalOrDefault(s.Inp.Value, 0.0)
			if err != nil {
				return lm, err
			}
			vars[s.Inp.Var] = t.Push(tape.NewInput(val))

		case s.Const != nil:
			val, err := literalValue(s.Const.Value)
			if err != nil {
				return lm, err
			}
			vars[s.Const.Var] = t.Push(tape.NewConstant(reflect.TypeOf(val), val))

		case s.Call != nil:
			fn, ok := lookupFn(s.Call.Fn)
			if !ok {
				return lm, fmt.Errorf("tapeasm: unknown function %q in call for %s", s.Call.Fn, s.Call.Var)
			}
			args := make([]any, len(s.Call.Args))
			for i, a := range s.Call.Args {
				v, err := resolveOperand(a, vars)
				if err != nil {
					return lm, err
				}
				args[i] = v
			}
			vars[s.Call.Var] = t.Push(tape.MkCall(fn, args))

		case s.Loop != nil:
			loop, err := buildLoopStmt(s.Loop, vars)
			if err != nil {
				return lm, err
			}
			vars[s.Loop.Var] = t.Push(tape.NewLoop(loop))

		case s.Result != nil:
			v, ok := vars[s.Result.Var]
			if !ok {
				return lm, fmt.Errorf("tapeasm: result references undefined variable %s", s.Result.Var)
			}
			t.SetResult(v)

		case s.Cond != nil:
			if !insideLoop {
				return lm, fmt.Errorf("tapeasm: cond is only valid inside a loop body")
			}
			v, ok := vars[s.Cond.Var]
			if !ok {
				return lm, fmt.Errorf("tapeasm: cond references undefined variable %s", s.Cond.Var)
			}
			lm.cond, lm.hasCond = v, true

		case s.Cont != nil:
			if !insideLoop {
				return lm, fmt.Errorf("tapeasm: cont is only valid inside a loop body")
			}
			for _, name := range s.Cont.Vars {
				v, ok := vars[name]
				if !ok {
					return lm, fmt.Errorf("tapeasm: cont references undefined variable %s", name)
				}
				lm.cont = append(lm.cont, v)
			}

		case s.Exit != nil:
			if !insideLoop {
				return lm, fmt.Errorf("tapeasm: exit is only valid inside a loop body")
			}
			for _, name := range s.Exit.Vars {
				v, ok := vars[name]
				if !ok {
					return lm, fmt.Errorf("tapeasm: exit references undefined variable %s", name)
				}
				lm.exit = append(lm.exit, v)
			}
		}
	}

	return lm, nil
}

func buildLoopStmt(ls *LoopStmt, outerVars map[string]tape.Variable) (*tape.Loop, error) {
	sub := tape.New()
	subVars := make(map[string]tape.Variable)

	lm, err := buildStatements(sub, ls.Body, subVars, true)
	if err != nil {
		return nil, err
	}
	if !lm.hasCond {
		return nil, fmt.Errorf("tapeasm: loop %s body has no cond statement", ls.Var)
	}

	parentInputs := make([]tape.Variable, len(ls.ParentInputs))
	for i, name := range ls.ParentInputs {
		v, ok := outerVars[name]
		if !ok {
			return nil, fmt.Errorf("tapeasm: loop %s references undefined parent variable %s", ls.Var, name)
		}
		parentInputs[i] = v
	}

	return &tape.Loop{
		ParentInputs: parentInputs,
		Subtape:      sub,
		Condition:    lm.cond,
		ContVars:     lm.cont,
		ExitVars:     lm.exit,
	}, nil
}

func resolveOperand(op *Operand, vars map[string]tape.Variable) (any, error) {
	if op.Var != nil {
		v, ok := vars[*op.Var]
		if !ok {
			return nil, fmt.Errorf("tapeasm: reference to undefined variable %s", *op.Var)
		}
		return v, nil
	}
	return literalValue(op.Literal)
}

func literalOrDefault(lit *Literal, def float64) (any, error) {
	if lit == nil {
		return def, nil
	}
	return literalValue(lit)
}

func literalValue(lit *Literal) (any, error) {
	switch {
	case lit.Float != nil:
		v, err := strconv.ParseFloat(*lit.Float, 64)
		if err != nil {
			return nil, fmt.Errorf("tapeasm: malformed float literal %q: %w", *lit.Float, err)
		}
		return v, nil
	case lit.Int != nil:
		v, err := strconv.ParseFloat(*lit.Int, 64)
		if err != nil {
			return nil, fmt.Errorf("tapeasm: malformed integer literal %q: %w", *lit.Int, err)
		}
		return v, nil
	default:
		return nil, fmt.Errorf("tapeasm: empty literal")
	}
}
