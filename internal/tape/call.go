package tape

import (
	"fmt"
	"reflect"
)

// Tuple is the value of a Loop operation after execution: one element
// per exit variable, in order.
type Tuple []any

// callFn invokes fn (a function, a reflect.Type used as a constructor,
// or a Broadcasted wrapper) with the given resolved argument values and
// returns its result, or Missing if fn returns nothing.
//
// This is the one place both MkCall's construction-time eager
// evaluation and the executor dispatch a Call's function, so the two
// can never disagree about calling convention.
func callFn(fn any, args []any) any {
	switch f := fn.(type) {
	case Broadcasted:
		return f.apply(args)
	case reflect.Type:
		if len(args) != 1 {
			panic(fmt.Sprintf("tape: type constructor %s requires exactly one argument, got %d", f, len(args)))
		}
		return reflect.ValueOf(args[0]).Convert(f).Interface()
	}

	rf := reflect.ValueOf(fn)
	if rf.Kind() != reflect.Func {
		panic(fmt.Sprintf("tape: fn is not callable: %#v", fn))
	}
	in := make([]reflect.Value, len(args))
	for i, a := range args {
		in[i] = reflect.ValueOf(a)
	}
	out := rf.Call(in)
	if len(out) == 0 {
		return Missing
	}
	return out[0].Interface()
}

// resolveCalculable inspects x (either a Variable or a raw value) and
// reports its value and whether that value is known right now: x is
// calculable if it is not a Variable, or is a bound Variable whose
// referent already holds a non-sentinel value.
func resolveCalculable(x any) (val any, known bool) {
	if v, ok := x.(Variable); ok {
		if !v.IsBound() {
			return nil, false
		}
		op := v.opRef()
		if IsMissing(op.val) {
			return nil, false
		}
		return op.val, true
	}
	return x, true
}

// opRef exposes the bound operation pointer to package-internal callers
// without making it part of the public Variable API.
func (v Variable) opRef() *Operation {
	return v.op
}

// CallOption configures MkCall; currently only WithVal.
type CallOption func(*callConfig)

type callConfig struct {
	val    any
	hasVal bool
}

// WithVal overrides MkCall's eager-evaluation result with an explicit
// value, letting transform passes build symbolic or placeholder
// operations.
func WithVal(val any) CallOption {
	return func(c *callConfig) {
		c.val = val
		c.hasVal = true
	}
}

// MkCall builds a Call operation. fn must be a function,
// a reflect.Type used as a constructor, a Broadcasted wrapper, or a
// Variable whose referent will supply the callable at play time. Each
// element of args is either a Variable (a positional reference to an
// earlier operation) or a raw constant value; both are passed directly
// — MkCall wraps them as Args itself.
//
// If no WithVal option is supplied and the call is calculable (every
// element of (fn, args...) is either not a Variable, or a bound
// Variable whose referent already has a known value), MkCall evaluates
// fn(args...) eagerly using the bound variables' cached values and
// stores the result as val. Otherwise val is the Missing sentinel,
// unless overridden via WithVal.
func MkCall(fn any, args []any, opts ...CallOption) *Operation {
	return mkCallArgs(fn, toArgs(args), opts...)
}

// MkCallArgs is MkCall's lower-level form for callers that already hold
// Args — for instance a parser that distinguishes variable references
// from literals while parsing and has no need to re-detect them.
func MkCallArgs(fn any, args []Arg, opts ...CallOption) *Operation {
	return mkCallArgs(fn, args, opts...)
}

func toArgs(raw []any) []Arg {
	args := make([]Arg, len(raw))
	for i, x := range raw {
		if v, ok := x.(Variable); ok {
			args[i] = VarArg(v)
		} else {
			args[i] = ConstArg(x)
		}
	}
	return args
}

func mkCallArgs(fn any, args []Arg, opts ...CallOption) *Operation {
	cfg := callConfig{val: Missing}
	for _, o := range opts {
		o(&cfg)
	}

	op := &Operation{kind: KindCall, fn: fn, args: args, val: Missing}

	if cfg.hasVal {
		op.val = cfg.val
		return op
	}

	calculable := true
	resolvedFn, ok := resolveCalculable(fn)
	calculable = calculable && ok

	resolvedArgs := make([]any, len(args))
	for i, a := range args {
		v, ok := resolveCalculable(a.asAny())
		resolvedArgs[i] = v
		calculable = calculable && ok
	}

	if calculable {
		op.val = callFn(resolvedFn, resolvedArgs)
	}
	return op
}
