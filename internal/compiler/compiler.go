package compiler

// atomKind names what spanOf found starting at a given byte offset.
type atomKind int

const (
	kindLiteral atomKind = iota
	kindDot
	kindClass
	kindGroup
	kindNeg
)

// parser turns a pattern already accepted by validate into instruction
// fragments. Positions are absolute byte offsets into the original
// pattern string; sub-patterns (group and negation bodies) are parsed
// by recursing on a slice of those offsets rather than on a copied
// substring, so that positions never need translating back.
type parser struct {
	p string
	b *builder
}

// Compile validates pattern, then builds its instruction arrays.
func Compile(pattern string) (*Program, *Error) {
	g, err := validate(pattern)
	if err != nil {
		return nil, err
	}
	b := &builder{}
	ps := &parser{p: pattern, b: b}
	root := ps.sequence(0, len(pattern), false)
	b.patch(root.out, len(b.tok))
	return &Program{Tok: b.tok, JS: b.js, JF: b.jf, JI: b.ji, T: len(b.tok), G: g}, nil
}

// sequence compiles the concatenation of every atom between lo and hi,
// chaining each atom's dangling exits to the next atom's start, and
// returns the whole run's own start and dangling exits.
func (ps *parser) sequence(lo, hi int, neg bool) frag {
	var seq frag
	var pending []out
	first := true
	pos := lo
	for pos < hi {
		f, next := ps.atomModified(pos, neg)
		if first {
			seq.start = f.start
			first = false
		} else {
			ps.b.patch(pending, f.start)
		}
		pending = f.out
		pos = next
	}
	seq.out = pending
	return seq
}

// atomModified compiles one atom together with any trailing modifier
// it binds ("*", "?", or "|"), and returns the byte offset just past
// what it consumed.
func (ps *parser) atomModified(pos int, neg bool) (frag, int) {
	bodyEnd, kind := ps.spanOf(pos)
	var mod byte
	if bodyEnd < len(ps.p) {
		switch ps.p[bodyEnd] {
		case '*', '?', '|':
			mod = ps.p[bodyEnd]
		}
	}

	start, end := pos, bodyEnd
	switch mod {
	case '*':
		f := ps.b.star(neg, func() frag { return ps.compileBase(start, end, kind, neg) })
		return f, bodyEnd + 1

	case '?':
		f := ps.b.question(neg, func() frag { return ps.compileBase(start, end, kind, neg) })
		return f, bodyEnd + 1

	case '|':
		rightStart := bodyEnd + 1
		rEnd := ps.spanOfModified(rightStart)
		f := ps.b.alt(neg,
			func() frag { return ps.compileBase(start, end, kind, neg) },
			func() frag {
				rf, _ := ps.atomModified(rightStart, neg)
				return rf
			},
		)
		return f, rEnd

	default:
		return ps.compileBase(start, end, kind, neg), bodyEnd
	}
}

// spanOfModified is the non-compiling twin of atomModified: it reports
// only the end offset of an atom plus any modifier(s) it binds, so a
// "|" fragment's right-hand side can be sized before it is compiled.
func (ps *parser) spanOfModified(pos int) int {
	end, _ := ps.spanOf(pos)
	if end >= len(ps.p) {
		return end
	}
	switch ps.p[end] {
	case '*', '?':
		return end + 1
	case '|':
		return ps.spanOfModified(end + 1)
	default:
		return end
	}
}

// spanOf reports the end offset (exclusive) and kind of the base atom
// starting at pos: a literal byte, ".", a class, a group, or a negated
// group. It never sees an ill-formed pattern, since validate already
// rejected those.
func (ps *parser) spanOf(pos int) (int, atomKind) {
	switch ps.p[pos] {
	case '.':
		return pos + 1, kindDot
	case '[':
		end := pos + 1
		for ps.p[end] != ']' {
			end++
		}
		return end + 1, kindClass
	case '(':
		return ps.matchBracket(pos) + 1, kindGroup
	case '{':
		return ps.matchBracket(pos) + 1, kindNeg
	default:
		return pos + 1, kindLiteral
	}
}

// matchBracket returns the index of the "(" or "{" opened at pos, by
// depth-counting while skipping over class bodies, whose contents are
// always literal to this scan.
func (ps *parser) matchBracket(pos int) int {
	open := ps.p[pos]
	closer := closerFor(open)
	depth := 0
	for i := pos; i < len(ps.p); i++ {
		switch ps.p[i] {
		case '[':
			i++
			for ps.p[i] != ']' {
				i++
			}
		case open:
			depth++
		case closer:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	panic("compiler: matchBracket on a pattern validate should have rejected")
}

// compileBase emits the instructions for one base atom -- a literal,
// dot, class, group, or negated group -- without consuming any
// trailing modifier; that is atomModified's job.
func (ps *parser) compileBase(start, end int, kind atomKind, neg bool) frag {
	switch kind {
	case kindLiteral:
		return ps.b.emitLiteral(ps.p[start], neg)
	case kindDot:
		return ps.b.emitDot(neg)
	case kindClass:
		return ps.b.emitClass([]byte(ps.p[start+1:end-1]), neg)
	case kindGroup:
		return ps.sequence(start+1, end-1, neg)
	default: // kindNeg
		return ps.sequence(start+1, end-1, !neg)
	}
}
