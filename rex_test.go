package rex

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jcorbin/rex/internal/compiler"
)

type matchCases []matchCase

func (cs matchCases) run(t *testing.T) {
	for _, c := range cs {
		t.Run(c.name, c.run)
	}
}

type matchCase struct {
	name      string
	pattern   string
	input     string
	wantStart int
	wantEnd   int
}

func (c matchCase) run(t *testing.T) {
	start, end := Match(c.pattern, c.input)
	assert.Equal(t, c.wantStart, start, "start")
	assert.Equal(t, c.wantEnd, end, "end")
}

func (c matchCase) withPattern(pattern string) matchCase {
	c.pattern = pattern
	return c
}

func (c matchCase) withInput(input string) matchCase {
	c.input = input
	return c
}

func (c matchCase) expectRange(start int, end int) matchCase {
	c.wantStart, c.wantEnd = start, end
	return c
}

// TestMatchScenarios runs the end-to-end pattern/input pairs a caller
// would sanity-check a new backend against: an anchored miss, a
// search prefix, loop and group repetition, class membership, a
// negated run, alternation with an optional inner group, an end anchor,
// and three of the five ways a pattern can fail to compile.
func TestMatchScenarios(t *testing.T) {
	matchCases{
		{name: "anchored literal does not search", pattern: "abc", input: " abc", wantStart: -1, wantEnd: 0},
		{name: "dot-star prefix turns anchor into search", pattern: ".*abc", input: "      abc", wantStart: 0, wantEnd: 9},
		{name: "star loop then literal tail", pattern: "a*bc", input: "aabc", wantStart: 0, wantEnd: 4},
		{name: "group repeated by a hoisted star", pattern: "(ab)*c", input: "ababc", wantStart: 0, wantEnd: 5},
		{name: "class membership inside a star loop", pattern: "[ab]*c", input: "baabc", wantStart: 0, wantEnd: 5},
		{name: "negated run never matches", pattern: "{ab}*c", input: "zzdc", wantStart: -1, wantEnd: 0},
		{name: "alternation falls through to the right branch", pattern: "(a(bc)?)|d", input: "d", wantStart: 0, wantEnd: 1},
		{name: "end anchor via trailing dot negation", pattern: ".*end{.}", input: " does it ever end", wantStart: 0, wantEnd: 18},
		{name: "leading star is a syntax error", pattern: "*abc", input: " ", wantStart: -1, wantEnd: -int(compiler.ErrBadSyntax)},
		{name: "unclosed group at end of pattern", pattern: "abc(", input: " ", wantStart: -5, wantEnd: -int(compiler.ErrUnclosedGroup)},
		{name: "empty group is rejected", pattern: "abc()", input: " ", wantStart: -5, wantEnd: -int(compiler.ErrEmptyGroup)},
	}.run(t)
}

func TestMatchEmptyInput(t *testing.T) {
	start, end := Match("abc", "")
	assert.Equal(t, -1, start)
	assert.Equal(t, STRINGEmptyError, end)
}

func TestCompileAndRunReuseProgram(t *testing.T) {
	prog, err := Compile("a*bc")
	assert.NoError(t, err)

	start, end := Run(prog, "aaaabc")
	assert.Equal(t, 0, start)
	assert.Equal(t, 6, end)

	start, end = Run(prog, "xbc")
	assert.Equal(t, -1, start)
	assert.Equal(t, 0, end)
}

// TestDoubleNegationCancels checks that a pattern wrapped in a pair of
// negations matches each input exactly as the bare pattern does.
func TestDoubleNegationCancels(t *testing.T) {
	plain, err := Compile("a")
	assert.NoError(t, err)
	doubled, err := Compile("{{a}}")
	assert.NoError(t, err)

	for _, input := range []string{"abc", "xyz", ""} {
		if input == "" {
			continue
		}
		ws, we := Run(plain, input)
		gs, ge := Run(doubled, input)
		assert.Equal(t, ws, gs, "start for %q", input)
		assert.Equal(t, we, ge, "end for %q", input)
	}
}

// TestClassDuality checks that a single-byte class behaves exactly
// like the bare literal it contains, both plain and negated.
func TestClassDuality(t *testing.T) {
	plain, err := Compile("xy")
	assert.NoError(t, err)
	class, err := Compile("[x]y")
	assert.NoError(t, err)

	ws, we := Run(plain, "xy")
	gs, ge := Run(class, "xy")
	assert.Equal(t, ws, gs)
	assert.Equal(t, we, ge)

	negPlain, err := Compile("{x}y")
	assert.NoError(t, err)
	negClass, err := Compile("{[x]}y")
	assert.NoError(t, err)

	ws, we = Run(negPlain, "zy")
	gs, ge = Run(negClass, "zy")
	assert.Equal(t, ws, gs)
	assert.Equal(t, we, ge)
}
