package tape

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestFormatOperation checks the fixed display forms for each operation kind.
func TestFormatOperation(t *testing.T) {
	tp := New()
	ins := tp.SetInputs(2.0)
	v1 := ins[0]

	c := tp.Push(NewConstant(typeOf(3.0), 3.0))
	call := tp.Push(MkCall(mul, []any{v1, c}))

	assert.Equal(t, "inp %1::float64", FormatOperation(tp.At(v1)))
	assert.Equal(t, "const %2 = 3::float64", FormatOperation(tp.At(c)))
	assert.Equal(t, "%3 = tape/internal/tape.mul(%1, %2)::float64", FormatOperation(tp.At(call)))
}

func TestFormatOperationBroadcasted(t *testing.T) {
	tp := New()
	ins := tp.SetInputs([]float64{1.0, 2.0})
	call := tp.Push(MkCall(Broadcasted{Fn: func(x float64) float64 { return x * 2 }}, []any{ins[0]}))

	got := FormatOperation(tp.At(call))
	assert.True(t, strings.Contains(got, "Broadcasted{}"), "a Broadcasted fn must print as Broadcasted{}, got %q", got)
}

func TestPrintTapeHeader(t *testing.T) {
	tp := NewWithContext(42)
	tp.SetInputs(1.0)

	out := Print(tp)
	assert.True(t, strings.HasPrefix(out, "Tape{int}\n"), "expected a Tape{<context type>} header, got %q", out)
	assert.True(t, strings.Contains(out, "inp %1::float64"))
}
