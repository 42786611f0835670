// Package tapeasm implements a small textual assembly format for
// authoring tape.Tape values by hand: inp/const/call/loop/result
// statements parsed with participle and lowered directly into a tape
// via Build.
package tapeasm
