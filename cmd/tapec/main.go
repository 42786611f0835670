// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"
	"github.com/fatih/color"

	"tape/internal/tape"
	"tape/internal/tapeasm"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: tapec <file.tasm> [input...]")
		os.Exit(1)
	}

	path := os.Args[1]
	source, err := os.ReadFile(path)
	if err != nil {
		color.Red("failed to read %s: %s", path, err)
		os.Exit(1)
	}

	prog, err := tapeasm.ParseSource(path, string(source))
	if err != nil {
		reportAsmError(string(source), err)
		os.Exit(1)
	}

	tp, err := tapeasm.Build(prog)
	if err != nil {
		color.Red("%s", err)
		os.Exit(1)
	}

	fmt.Println(tape.Print(tp))

	if len(os.Args) > 2 {
		args, err := parseArgs(os.Args[2:])
		if err != nil {
			color.Red("%s", err)
			os.Exit(1)
		}
		result := tape.Play(tp, args...)
		fmt.Printf("=> %v\n", result)
	}

	color.Green("ok: %s", path)
}

// reportAsmError prints a friendly caret-style parse error message for
// a tape assembly source.
func reportAsmError(src string, err error) {
	if _, ok := err.(participle.Error); ok {
		tapeasm.ReportParseError(src, err)
		return
	}
	color.Red("unexpected error: %s", err)
}

func parseArgs(raw []string) ([]any, error) {
	args := make([]any, len(raw))
	for i, a := range raw {
		var v float64
		if _, err := fmt.Sscanf(a, "%g", &v); err != nil {
			return nil, fmt.Errorf("invalid numeric argument %q: %w", a, err)
		}
		args[i] = v
	}
	return args, nil
}
