package tapeasm

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
)

var parser = buildParser()

func buildParser() *participle.Parser[Program] {
	p, err := participle.Build[Program](
		participle.Lexer(AsmLexer),
		participle.Elide("Whitespace", "Comment"),
		participle.UseLookahead(3),
	)
	if err != nil {
		panic(fmt.Errorf("tapeasm: failed to build parser: %w", err))
	}
	return p
}

// ParseSource parses a tape assembly source into its AST, without
// building a tape.Tape — callers that only need well-formedness
// checking can stop here.
func ParseSource(sourceName, source string) (*Program, error) {
	return parser.ParseString(sourceName, source)
}
