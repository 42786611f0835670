package repl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStartEvaluatesBalancedBlock(t *testing.T) {
	in := strings.NewReader(`tape {
  inp %1 = 3.0;
  inp %2 = 5.0;
  %3 = call mul(%1, %2);
  result %3;
}
`)
	var out strings.Builder
	Start(in, &out)

	got := out.String()
	assert.Contains(t, got, "Tape{any}")
	assert.Contains(t, got, "play => 15")
}

func TestStartReportsSyntaxError(t *testing.T) {
	in := strings.NewReader("tape { garbage }\n")
	var out strings.Builder
	Start(in, &out)

	assert.NotContains(t, out.String(), "play =>")
}
