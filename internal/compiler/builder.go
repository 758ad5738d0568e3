package compiler

// out names one field of one not-yet-wired instruction: the "dangling
// exit" technique used to thread a fragment's success/failure targets
// once the instruction that follows is known. It plays the role a
// redirect-by-index table would, generalized to apply to every fragment
// boundary rather than only loop-backs.
type out struct {
	idx   int
	field int
}

const (
	fieldJS = 0
	fieldJF = 1
)

// frag is a compiled sub-pattern: the index of its first instruction,
// and the list of fields still waiting to be patched to "whatever comes
// next".
type frag struct {
	start int
	out   []out
}

type builder struct {
	tok []byte
	js  []int
	jf  []int
	ji  []int
}

func (b *builder) reserve() int {
	i := len(b.tok)
	b.tok = append(b.tok, 0)
	b.js = append(b.js, 0)
	b.jf = append(b.jf, 0)
	b.ji = append(b.ji, 0)
	return i
}

func (b *builder) set(idx, field, val int) {
	if field == fieldJS {
		b.js[idx] = val
	} else {
		b.jf[idx] = val
	}
}

func (b *builder) patch(outs []out, target int) {
	for _, o := range outs {
		b.set(o.idx, o.field, target)
	}
}

// succFail returns which field currently plays the success role and
// which plays the failure role, given the running negation parity.
// Under odd parity every (js, jf) pair is stored swapped, which is how
// negation is realized without a runtime branch.
func succFail(neg bool) (succ, fail int) {
	if neg {
		return fieldJF, fieldJS
	}
	return fieldJS, fieldJF
}

func (b *builder) emitLiteral(c byte, neg bool) frag {
	i := b.reserve()
	b.tok[i] = c
	succ, fail := succFail(neg)
	b.set(i, fail, -1)
	return frag{start: i, out: []out{{i, succ}}}
}

func (b *builder) emitDot(neg bool) frag {
	return b.emitLiteral('.', neg)
}

// emitClass lays out one instruction per class member. Every member's
// success edge jumps past the whole class (left dangling for the
// caller); an interior member's failure edge falls through to the next
// member with no input consumed, and the terminal member's failure edge
// rejects the thread.
func (b *builder) emitClass(members []byte, neg bool) frag {
	succ, fail := succFail(neg)
	start := -1
	outs := make([]out, 0, len(members))
	for k, c := range members {
		i := b.reserve()
		if start < 0 {
			start = i
		}
		b.tok[i] = c
		if k == len(members)-1 {
			b.ji[i] = 2
			b.set(i, fail, -1)
		} else {
			b.ji[i] = 1
			b.set(i, fail, i+1)
		}
		outs = append(outs, out{i, succ})
	}
	return frag{start: start, out: outs}
}

// star hoists a "*" in front of body: the instruction loops back into
// the body on success of the body (body's own dangling exits are
// patched to loop back here) and leaves the loop, dangling, on its own
// failure edge.
func (b *builder) star(neg bool, body func() frag) frag {
	m := b.reserve()
	b.tok[m] = '*'
	bf := body()
	b.patch(bf.out, m)
	enter, leave := succFail(neg)
	b.set(m, enter, bf.start)
	return frag{start: m, out: []out{{m, leave}}}
}

// question hoists a "?": unlike star, the body's own completion does
// not loop back -- it joins the modifier's own bypass edge, both
// dangling to whatever follows.
func (b *builder) question(neg bool, body func() frag) frag {
	m := b.reserve()
	b.tok[m] = '?'
	bf := body()
	enter, skip := succFail(neg)
	b.set(m, enter, bf.start)
	outs := append([]out{{m, skip}}, bf.out...)
	return frag{start: m, out: outs}
}

// alt hoists a "|" between the atom immediately preceding it and the
// single group or token immediately following it. Both targets are
// known as soon as left and right are compiled, so nothing here is
// left dangling except the union of what left and right themselves
// leave dangling.
func (b *builder) alt(neg bool, left, right func() frag) frag {
	m := b.reserve()
	b.tok[m] = '|'
	lf := left()
	rf := right()
	toLeft, toRight := succFail(neg)
	b.set(m, toLeft, lf.start)
	b.set(m, toRight, rf.start)
	outs := append(append([]out{}, lf.out...), rf.out...)
	return frag{start: m, out: outs}
}
