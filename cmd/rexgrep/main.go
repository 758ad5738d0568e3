/* Command rexgrep is the external, replaceable command-line driver for the
rex pattern language. It walks one or more files, compiles PATTERN once
and runs the compiled program against each line, and prints every
leftmost match it finds as "name:line:col: text".

rexgrep performs no preprocessing sugar of its own: no +, anchors,
shorthand classes, or counted repetition are rewritten into the pattern
before it is compiled. --anchor-end is the one convenience this
command allows, and it is implemented as a plain textual append of "{.}"
before compiling -- the same rewrite a caller could apply by hand.
*/
package main

import "os"

func main() {
	os.Exit(Execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
