/* Package rex implements a compact, backtrack-free matcher for a reduced
regular-expression language.

The language has ten metacharacters: . * ? | ( ) [ ] { }. Every other byte
is a literal. There are no anchors -- matching is always anchored to
position 0 of the input; prefix a pattern with .* to search instead, and
suffix it with {.} to require end-of-input. There are no capture groups,
no backreferences, no lookaround, and no greedy/lazy distinction: a match,
if one exists, is the leftmost and shortest one.

Matching happens in two phases, same as a textbook Thompson NFA, except
the "instructions" here are four parallel arrays rather than a tagged
union, because every instruction in this language has the same shape: a
token byte, a success jump, a failure jump, and a one-of-three class flag.

  - internal/compiler turns a pattern into those four arrays (Tok, JS, JF,
    JI) plus a token count T and a group count G. A validate pass walks
    the pattern once to reject malformed input and count groups; a single
    recursive-descent parse then lays out and wires every instruction
    together, using dangling "patch lists" to fill in each fragment's
    success/failure targets once the instruction that follows it is
    known. See internal/compiler's own doc comment for the details.

  - internal/sim runs the compiled arrays against an input string using
    two instruction stacks, "cur" and "nxt": every live thread in cur is
    advanced one step (either consuming the current input byte and moving
    to nxt, or taking an epsilon branch and staying in cur) until cur is
    exhausted, then cur and nxt swap and the simulator advances one byte.
    Each instruction remembers the input index its live thread began at;
    the first thread to reach the accept instruction wins, and ties go to
    whichever thread started furthest to the left.

Neither phase backtracks. Worst case running time is O(len(input) *
len(pattern)); worst case space is O(len(pattern)).

Everything outside those two phases -- the command-line driver in
cmd/rexgrep, and any preprocessing sugar such as +, anchors, shorthand
character classes, or counted repetition -- is a textual rewrite a caller
may apply before calling Match. It is not part of this package.
*/
package rex
