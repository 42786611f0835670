package tapeasm

// Program is the root of a parsed tape assembly source: a single Tape
// block, one struct per production with participle capture tags.
type Program struct {
	Tape *TapeBlock `@@`
}

// TapeBlock is "tape { <statement>* }".
type TapeBlock struct {
	Stmts []*Statement `"tape" "{" @@* "}"`
}

// Statement is one line of a tape body; exactly one alternative
// matches. "//" comments are lexed and discarded before parsing ever
// sees them, so there is no comment alternative here.
type Statement struct {
	Inp    *InpStmt    `  @@`
	Const  *ConstStmt  `| @@`
	Loop   *LoopStmt   `| @@`
	Call   *CallStmt   `| @@`
	Result *ResultStmt `| @@`
	Cond   *CondStmt   `| @@`
	Cont   *ContStmt   `| @@`
	Exit   *ExitStmt   `| @@`
}

// InpStmt declares an Input operation: "inp %1 = 0.0;" or bare "inp %1;"
// (placeholder value 0).
type InpStmt struct {
	Var   string   `"inp" @Var`
	Value *Literal `[ "=" @@ ] ";"`
}

// ConstStmt declares a Constant operation: "const %2 = 5.0;".
type ConstStmt struct {
	Var   string  `"const" @Var "="`
	Value *Literal `@@ ";"`
}

// CallStmt declares a Call operation: "%3 = call mul(%1, %2);". Fn names
// a function registered via RegisterFn.
type CallStmt struct {
	Var  string     `@Var "="`
	Fn   string     `"call" @Ident "("`
	Args []*Operand `[ @@ { "," @@ } ] ")" ";"`
}

// LoopStmt declares a Loop operation: "%5 = loop(%1, %2) { ... };" whose
// body is itself a sequence of statements forming the subtape, closed by
// cond/cont/exit declarations (order within the body is free).
type LoopStmt struct {
	Var          string       `@Var "=" "loop" "("`
	ParentInputs []string     `[ @Var { "," @Var } ] ")" "{"`
	Body         []*Statement `@@* "}" ";"`
}

// ResultStmt sets the enclosing tape's result variable: "result %3;".
type ResultStmt struct {
	Var string `"result" @Var ";"`
}

// CondStmt names a loop body's condition variable: "cond %3;". Only
// meaningful inside a LoopStmt's Body.
type CondStmt struct {
	Var string `"cond" @Var ";"`
}

// ContStmt names a loop body's continue variables: "cont %4, %5;".
type ContStmt struct {
	Vars []string `"cont" @Var { "," @Var } ";"`
}

// ExitStmt names a loop body's exit variables: "exit %5;".
type ExitStmt struct {
	Vars []string `"exit" @Var { "," @Var } ";"`
}

// Operand is a Call argument: either a variable reference or a literal.
type Operand struct {
	Var     *string  `  @Var`
	Literal *Literal `| @@`
}

// Literal is a numeric constant, kept as raw text (a *string captured
// verbatim rather than a custom participle.Capture type) and parsed by
// the builder.
type Literal struct {
	Float *string `  @Float`
	Int   *string `| @Int`
}
