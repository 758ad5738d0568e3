// Package compiler turns a pattern into a flat, four-array instruction
// stream.
//
// Compilation runs in two passes: validate walks the pattern once to
// reject malformed input and count groups; the parser then builds the
// instruction arrays in a single recursive descent that performs layout
// and wiring together, using dangling "patch lists" for hoisted
// modifiers -- an instruction is written with a placeholder jump
// target, and the placeholder is filled in once the target is known.
// See compiler.go.
package compiler

// Program is a compiled pattern: four parallel arrays of length T plus
// the two scalars T (token count) and G (group count).
type Program struct {
	Tok []byte // literal byte, '.', or a hoisted modifier ('*', '?', '|')
	JS  []int  // next instruction on success, or -1 to reject
	JF  []int  // next instruction on failure, or -1 to reject
	JI  []int  // 0 = normal, 1 = interior class member, 2 = last class member

	T int // token count; index T is the accept pseudo-instruction
	G int // group count
}
