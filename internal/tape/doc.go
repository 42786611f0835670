// Package tape implements a linearized, mutable intermediate
// representation for dynamically traced programs: a sequence of
// Input, Constant, Call, and Loop operations addressable by Variable
// handles, with a Rewrite engine (Push/Insert/Replace/Rebind) for
// structural transforms and an Executor (Play) for re-running a tape
// over fresh inputs.
package tape
