package tape

import (
	"fmt"
	"reflect"
)

// CallSignature returns the tuple of concrete types
// (typeof(fn_val), typeof(arg_val)...) for a Call operation, resolving
// all Variables to their current cached values. A multiple-dispatch or
// method-table pass built on top of this package can use the resulting
// tuple as a lookup key.
func CallSignature(t *Tape, op *Operation) []reflect.Type {
	if op.kind != KindCall {
		panic(fmt.Sprintf("tape: call_signature requires a Call operation, got %s", op.kind))
	}

	types := make([]reflect.Type, 0, len(op.args)+1)
	types = append(types, typeOf(valueIn(t, op.fn)))
	for _, a := range op.args {
		types = append(types, typeOf(valueIn(t, a.asAny())))
	}
	return types
}

func typeOf(v any) reflect.Type {
	if v == nil || IsMissing(v) {
		return nil
	}
	return reflect.TypeOf(v)
}
