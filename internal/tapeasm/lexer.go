package tapeasm

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// AsmLexer tokenizes the tape assembly text format: a line-oriented
// notation for inp/const/call/loop/result statements.
var AsmLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{"Comment", `//[^\n]*`, nil},
		{"Float", `[0-9]+\.[0-9]+`, nil},
		{"Int", `[0-9]+`, nil},
		{"Ident", `[a-zA-Z_][a-zA-Z0-9_]*`, nil},
		{"Var", `%[0-9]+`, nil},
		{"Punctuation", `[{}(),;:=]`, nil},
		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})
