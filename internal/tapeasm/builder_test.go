package tapeasm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tape/internal/tape"
)

func TestBuildSourceBasicCall(t *testing.T) {
	src := `
tape {
  inp %1 = 3.0;
  inp %2 = 5.0;
  %3 = call mul(%1, %2);
  result %3;
}
`
	tp, err := BuildSource("test.tasm", src)
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, 15.0, tp.At(tp.Result()).Val())
	assert.Equal(t, 8.0, tape.Play(tp, 2.0, 4.0))
}

func TestBuildSourceRejectsUnknownFunction(t *testing.T) {
	src := `
tape {
  inp %1 = 1.0;
  %2 = call nope(%1);
  result %2;
}
`
	_, err := BuildSource("test.tasm", src)
	assert.Error(t, err)
}

func TestBuildSourceLoop(t *testing.T) {
	src := `
tape {
  inp %1 = 0.0;
  inp %2 = 0.0;
  %3 = loop(%1, %2) {
    inp %1 = 0.0;
    inp %2 = 0.0;
    %3 = call gt0(%1);
    %4 = call sub(%1, 1.0);
    %5 = call add(%2, %1);
    cond %3;
    cont %4, %5;
    exit %5;
  };
  result %3;
}
`
	tp, err := BuildSource("test.tasm", src)
	if !assert.NoError(t, err) {
		return
	}

	got := tape.Play(tp, 3.0, 0.0)
	result, ok := got.(tape.Tuple)
	if assert.True(t, ok) && assert.Len(t, result, 1) {
		assert.Equal(t, 6.0, result[0])
	}
}

func TestParseSourceSyntaxError(t *testing.T) {
	_, err := ParseSource("test.tasm", "tape { garbage }")
	assert.Error(t, err)
}

func TestRegisterFn(t *testing.T) {
	RegisterFn("double", func(x float64) float64 { return x * 2 })
	defer delete(builtins, "double")

	src := `
tape {
  inp %1 = 4.0;
  %2 = call double(%1);
  result %2;
}
`
	tp, err := BuildSource("test.tasm", src)
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, 8.0, tp.At(tp.Result()).Val())
}
