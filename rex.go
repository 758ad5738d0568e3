// Package rex implements a small, backtrack-free regular-expression
// matcher. See doc.go for the grammar and the two-phase design;
// internal/compiler builds a flat instruction program from a pattern,
// and internal/sim steps that program against an input string with a
// Thompson-style epsilon-closure simulation -- no recursion, no
// exponential blowup.
package rex

import (
	"github.com/jcorbin/rex/internal/compiler"
	"github.com/jcorbin/rex/internal/sim"
)

// STRINGEmptyError is the sentinel end value returned alongside
// start == -1 when input is the empty string, distinguishing "nothing
// to search" from "searched and found nothing". It is chosen outside
// {-1, ..., -5}, the range a compile error's -int(Code) can produce,
// so the two failure modes never collide in the returned tuple.
const STRINGEmptyError = -6

// Match compiles pattern and runs it against input, returning the
// leftmost, shortest match as a half-open byte range [start, end).
//
// On success, 0 <= start <= end <= len(input)+1; end is len(input)+1
// only when a negated token is tested past the last byte, as a trailing
// {.} is.
//
// On no match, it returns (-1, 0).
//
// On a compile error, it returns (-(pos+1), -int(code)): both values
// negative, recoverable via Pos and Code on the error below. Compile
// the pattern directly with Compile to get the structured error
// instead of this encoding.
//
// If input is empty, it returns (-1, STRINGEmptyError) without ever
// compiling pattern.
func Match(pattern, input string) (start, end int) {
	if input == "" {
		return -1, STRINGEmptyError
	}
	prog, err := compiler.Compile(pattern)
	if err != nil {
		return -(err.Pos + 1), -int(err.Code)
	}
	return sim.Run(prog, input)
}

// Compile exposes the compiler directly, for callers that want to
// reuse one compiled Program across many inputs instead of paying
// Match's compile-per-call cost.
func Compile(pattern string) (*compiler.Program, error) {
	prog, err := compiler.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return prog, nil
}

// Run matches an already-compiled Program against input, as Match
// does internally once pattern compiles.
func Run(prog *compiler.Program, input string) (start, end int) {
	if input == "" {
		return -1, STRINGEmptyError
	}
	return sim.Run(prog, input)
}
