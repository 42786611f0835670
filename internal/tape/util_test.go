package tape

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCallSignature(t *testing.T) {
	tp := New()
	ins := tp.SetInputs(3.0)
	v1 := ins[0]

	call := tp.Push(MkCall(mul, []any{2.0, v1}))

	sig := CallSignature(tp, tp.At(call))
	assert.Len(t, sig, 3)
	assert.Equal(t, reflect.TypeOf(mul), sig[0])
	assert.Equal(t, reflect.TypeOf(2.0), sig[1])
	assert.Equal(t, reflect.TypeOf(3.0), sig[2])
}

func TestCallSignatureRejectsNonCall(t *testing.T) {
	tp := New()
	ins := tp.SetInputs(1.0)
	assert.Panics(t, func() {
		CallSignature(tp, tp.At(ins[0]))
	})
}
