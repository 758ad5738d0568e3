// Package progdump prints a compiled compiler.Program as a column-aligned
// instruction table, in the style of a VM memory dumper adapted from
// words and stacks to instruction arrays: one row per (Tok, JS, JF, JI)
// instruction plus a trailing accept row, cmd/rexgrep's --dump flag's
// only consumer.
package progdump

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jcorbin/rex/internal/compiler"
	"github.com/jcorbin/rex/internal/runeio"
)

// Dump writes prog's four parallel arrays to out, one instruction per
// line, column-aligned on the index and jump-target widths so a reader
// can scan straight down the JS/JF columns the way a memory dump lines
// up addresses.
func Dump(prog *compiler.Program, out io.Writer) error {
	idxWidth := len(strconv.Itoa(prog.T))
	jmpWidth := idxWidth
	if w := len(strconv.Itoa(-1)); w > jmpWidth {
		jmpWidth = w
	}

	w := &dumpWriter{out: out}
	fmt.Fprintf(w, "# Program: T=%d G=%d\n", prog.T, prog.G)
	for i := 0; i < prog.T; i++ {
		fmt.Fprintf(w, "  @%*d tok=%-6s js=%*d jf=%*d",
			idxWidth, i,
			tokLabel(prog.Tok[i], prog.JI[i]),
			jmpWidth, prog.JS[i],
			jmpWidth, prog.JF[i],
		)
		if prog.JI[i] != 0 {
			fmt.Fprintf(w, " ji=%d", prog.JI[i])
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "  @%*d accept\n", idxWidth, prog.T)
	return w.err
}

// tokLabel renders an instruction's token byte the way a reader of a
// pattern would recognize it: hoisted modifiers and "." are shown bare,
// class members are bracketed to show their ji role, and anything else
// is rendered through runeio so a control byte in a literal or class
// member never corrupts the dump.
func tokLabel(tok byte, ji int) string {
	if ji == 0 {
		switch tok {
		case '*', '?', '|', '.':
			return string(tok)
		}
	}
	label := runeio.CaretForm(rune(tok))
	if label == "" {
		label = string(tok)
	}
	switch ji {
	case 1:
		return "[" + label + "|"
	case 2:
		return "|" + label + "]"
	default:
		return label
	}
}

// dumpWriter accumulates the first write error encountered, so Dump's
// fmt.Fprintf calls don't need individual error checks.
type dumpWriter struct {
	out io.Writer
	err error
}

func (w *dumpWriter) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	n, err := w.out.Write(p)
	if err != nil {
		w.err = err
	}
	return n, err
}
