package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jcorbin/rex/internal/compiler"
	"github.com/jcorbin/rex/internal/fileinput"
	"github.com/jcorbin/rex/internal/flushio"
	"github.com/jcorbin/rex/internal/logio"
	"github.com/jcorbin/rex/internal/panicerr"
	"github.com/jcorbin/rex/internal/progdump"
	"github.com/jcorbin/rex/internal/runeio"
	"github.com/jcorbin/rex/internal/sim"
)

// Execute builds and runs the rexgrep command against args, writing
// matches to stdout and diagnostics to stderr, and returns a process exit
// code: 0 iff every file loaded and no internal error occurred.
func Execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	log := &logio.Logger{}
	log.SetOutput(toCloser(stderr))

	out := flushio.NewWriteFlusher(stdout)
	defer out.Flush()

	var (
		dump      bool
		trace     bool
		anchorEnd bool
		teePath   string
	)

	cmd := &cobra.Command{
		Use:           "rexgrep PATTERN [FILE...]",
		Short:         "search files for the leftmost match of a small backtrack-free pattern",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			pattern, files := args[0], args[1:]
			if anchorEnd {
				pattern += "{.}"
			}

			prog, cerr := compiler.Compile(pattern)
			if cerr != nil {
				log.Errorf("pattern error at byte %d: %s", cerr.Pos, cerr.Code)
				return nil
			}

			if dump {
				lw := &logio.Writer{Logf: log.Leveledf("DUMP")}
				if err := progdump.Dump(prog, lw); err != nil {
					log.ErrorIf(err)
				}
				lw.Close()
			}

			var tracef func(string, ...interface{})
			if trace {
				tracef = log.Leveledf("TRACE")
			}

			readers, err := openFiles(files, stdin)
			if err != nil {
				log.ErrorIf(err)
			}
			defer closeAll(readers)

			matchOut := out
			if teePath != "" {
				tf, terr := os.Create(teePath)
				if terr != nil {
					log.ErrorIf(terr)
					return nil
				}
				defer tf.Close()
				matchOut = flushio.WriteFlushers(out, flushio.NewWriteFlusher(tf))
				defer matchOut.Flush()
			}

			return panicerr.Recover("rexgrep", func() error {
				return grep(prog, tracef, readers, matchOut)
			})
		},
	}

	cmd.Flags().BoolVar(&dump, "dump", false, "print the compiled program's instruction table before matching")
	cmd.Flags().BoolVar(&trace, "trace", false, "log every simulator step to stderr")
	cmd.Flags().BoolVar(&anchorEnd, "anchor-end", false, `append "{.}" so the pattern must also reach end-of-input`)
	cmd.Flags().StringVar(&teePath, "tee", "", "also write every matched line to this file, in addition to stdout")
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		log.Errorf("%v", err)
	}

	return log.ExitCode()
}

// grep drains readers as a single queue of line-oriented input, one
// pattern against many files, and reports every leftmost match rex
// finds, one line at a time.
func grep(prog *compiler.Program, tracef func(string, ...interface{}), readers []io.Reader, out io.Writer) error {
	in := &fileinput.Input{Queue: readers}
	for {
		r, _, err := in.ReadRune()
		if r == '\n' || r == 0 {
			if line := in.Last; line.Len() > 0 || r == '\n' {
				if merr := matchLine(prog, tracef, line, out); merr != nil {
					return merr
				}
			}
		}
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
	}
}

func matchLine(prog *compiler.Program, tracef func(string, ...interface{}), line fileinput.Line, out io.Writer) error {
	text := line.Buffer.String()
	if text == "" {
		return nil
	}
	start, end := sim.RunTrace(prog, text, tracef)
	if start < 0 {
		return nil
	}
	if end > len(text) {
		// a negation tested past the last byte (as a trailing "{.}" is)
		// reports end as len(text)+1
		end = len(text)
	}
	if _, err := fmt.Fprintf(out, "%v:%v:%d: ", line.Name, line.Line, start+1); err != nil {
		return err
	}
	if err := runeio.WriteANSIString(out, text[start:end]); err != nil {
		return err
	}
	_, err := fmt.Fprintln(out)
	return err
}

// namedReader gives an otherwise-anonymous reader (stdin) the Name()
// method fileinput.Input and its diagnostics expect every input to have.
type namedReader struct {
	io.Reader
	name string
}

func (nr namedReader) Name() string { return nr.name }

// openFiles resolves FILE arguments into readers, "-" meaning stdin and
// no arguments at all also meaning stdin. It keeps going after an open
// failure -- the remaining files are still worth matching -- but returns
// the first error encountered so the caller can still report it and set
// a non-zero exit code.
func openFiles(files []string, stdin io.Reader) ([]io.Reader, error) {
	if len(files) == 0 {
		return []io.Reader{namedReader{stdin, "<stdin>"}}, nil
	}
	var (
		readers  []io.Reader
		firstErr error
	)
	for _, name := range files {
		if name == "-" {
			readers = append(readers, namedReader{stdin, "<stdin>"})
			continue
		}
		f, err := os.Open(name)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		readers = append(readers, f)
	}
	return readers, firstErr
}

func closeAll(readers []io.Reader) {
	for _, r := range readers {
		if c, ok := r.(io.Closer); ok {
			c.Close()
		}
	}
}

func toCloser(w io.Writer) io.WriteCloser {
	if wc, ok := w.(io.WriteCloser); ok {
		return wc
	}
	return writeNoCloser{w}
}

type writeNoCloser struct{ io.Writer }

func (writeNoCloser) Close() error { return nil }
