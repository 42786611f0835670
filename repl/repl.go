// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"tape/internal/tape"
	"tape/internal/tapeasm"
)

const PROMPT = ">> "
const CONT = ".. "

// Start runs a read-eval-print loop over in: the user types a tape
// assembly block ("tape { ... }") across one or more lines; once braces
// balance, the block is parsed, built, printed, and played over its own
// inputs' current values.
func Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	var buf strings.Builder
	depth := 0

	prompt := func() {
		if depth == 0 {
			fmt.Fprint(out, PROMPT)
		} else {
			fmt.Fprint(out, CONT)
		}
	}

	prompt()
	for scanner.Scan() {
		line := scanner.Text()
		buf.WriteString(line)
		buf.WriteString("\n")
		depth += strings.Count(line, "{") - strings.Count(line, "}")

		if depth > 0 {
			prompt()
			continue
		}

		source := buf.String()
		buf.Reset()
		depth = 0

		if strings.TrimSpace(source) != "" {
			evalAndPrint(source, out)
		}
		prompt()
	}
}

func evalAndPrint(source string, out io.Writer) {
	prog, err := tapeasm.ParseSource("repl", source)
	if err != nil {
		tapeasm.ReportParseError(source, err)
		return
	}

	tp, err := tapeasm.Build(prog)
	if err != nil {
		fmt.Fprintf(out, "build error: %s\n", err)
		return
	}

	fmt.Fprint(out, tape.Print(tp))

	inputs := tp.Inputs()
	if len(inputs) == 0 {
		return
	}
	args := make([]any, len(inputs))
	for i, v := range inputs {
		args[i] = tp.At(v).Val()
	}
	fmt.Fprintf(out, "play => %v\n", tape.Play(tp, args...))
}
