// Package sim runs a compiled program against an input string using a
// two-stack, epsilon-closure NFA simulation: for every input position
// it drains a "cur" stack of live instructions to exhaustion -- taking
// epsilon branches in place and queueing character matches onto "nxt"
// -- then swaps the stacks and advances one byte. See Run.
package sim

import "github.com/jcorbin/rex/internal/compiler"

// Run simulates prog against input, a non-empty byte string, and
// returns the leftmost, shortest match: start >= 0 and end >= start on
// a match (end == start when the accept instruction is reached without
// consuming a byte; end == len(input)+1 when a negated token is tested
// past the last byte), or start == -1 and end == 0 if prog never
// accepts.
//
// The caller owns prog; Run never mutates it. Working memory is a
// handful of slices of length T, allocated fresh for this call and
// released on return.
func Run(prog *compiler.Program, input string) (start, end int) {
	return RunTrace(prog, input, nil)
}

// RunTrace is Run, additionally calling tracef -- if non-nil -- once per
// instruction step with a human-readable description of the step taken.
// cmd/rexgrep's --trace flag is the only caller that passes a non-nil
// tracef; Run itself always passes nil, so the hot path pays nothing for
// tracing it never uses.
func RunTrace(prog *compiler.Program, input string, tracef func(format string, args ...interface{})) (start, end int) {
	T := prog.T

	// Unification at runtime: "?" and "|" are fully described by their
	// compiled js/jf already, so the stepper only needs one epsilon
	// opcode. Class members (ji != 0) are literal bytes, so a '?' or '|'
	// inside a class is left as it is.
	tok := make([]byte, T)
	copy(tok, prog.Tok)
	for i := range tok {
		if (tok[i] == '?' || tok[i] == '|') && prog.JI[i] == 0 {
			tok[i] = '*'
		}
	}

	origin := make([]int, T)
	for i := range origin {
		origin[i] = -1
	}
	origin[0] = 0

	cur := []int{0}
	inCur := make([]bool, T)
	inCur[0] = true
	var nxt []int
	inNxt := make([]bool, T)

	bestOrigin, bestEnd := -1, 0
	pos := 0 // current input index, used as the epsilon-accept end value

	accept := func(v, e int) {
		if bestOrigin == -1 || v < bestOrigin {
			bestOrigin, bestEnd = v, e
		}
	}

	// claim reports whether a thread with origin v may occupy
	// destination d: the first claim always succeeds, and a later one
	// only if it is at least as good (no further right) as the one
	// recorded. Equal origins must be allowed to re-claim -- that is
	// exactly what a "*" loop-back does every time its body succeeds,
	// re-entering the same destination with the origin it already
	// carried -- so only a strictly worse origin is rejected. This is
	// what makes the result leftmost without also starving repetition.
	claim := func(d, v int) bool {
		if origin[d] != -1 && v > origin[d] {
			return false
		}
		origin[d] = v
		return true
	}

	pushCur := func(d, v int) {
		if d == -1 {
			return
		}
		if d == T {
			accept(v, pos)
			return
		}
		if claim(d, v) && !inCur[d] {
			inCur[d] = true
			cur = append(cur, d)
		}
	}
	pushNxt := func(d, v, e int) {
		if d == -1 {
			return
		}
		if d == T {
			accept(v, e)
			return
		}
		if claim(d, v) && !inNxt[d] {
			inNxt[d] = true
			nxt = append(nxt, d)
		}
	}

	for {
		for idx := 0; idx < len(cur); idx++ {
			d := cur[idx]
			v := origin[d]
			switch {
			case tok[d] == '*' && prog.JI[d] == 0:
				ov := v
				if pos == 0 {
					ov = pos
				}
				if tracef != nil {
					tracef("@%d #%d epsilon -> %d, %d (origin %d)", pos, d, prog.JS[d], prog.JF[d], ov)
				}
				pushCur(prog.JS[d], ov)
				pushCur(prog.JF[d], ov)
			case matches(tok[d], pos, input):
				if tracef != nil {
					tracef("@%d #%d %q matches -> %d (origin %d)", pos, d, tok[d], prog.JS[d], v)
				}
				pushNxt(prog.JS[d], v, pos+1)
			case prog.JI[d] == 1:
				if tracef != nil {
					tracef("@%d #%d %q class-miss -> %d (origin %d)", pos, d, tok[d], prog.JF[d], v)
				}
				pushCur(prog.JF[d], v)
			default:
				if tracef != nil {
					tracef("@%d #%d %q miss -> %d (origin %d)", pos, d, tok[d], prog.JF[d], v)
				}
				pushNxt(prog.JF[d], v, pos+1)
			}
		}

		if bestOrigin == 0 || pos >= len(input) {
			break
		}

		cur, nxt = nxt, cur[:0]
		inCur, inNxt = inNxt, inCur
		for j := range inNxt {
			inNxt[j] = false
		}
		pos++
	}

	if bestOrigin == -1 {
		return -1, 0
	}
	return bestOrigin, bestEnd
}

// matches reports whether the instruction's token matches the input
// byte at i: "." matches any byte except NUL, a literal matches only
// itself, and there is nothing to match once i runs past the input.
func matches(tok byte, i int, input string) bool {
	if i >= len(input) {
		return false
	}
	c := input[i]
	if tok == '.' {
		return c != 0
	}
	return tok == c
}
