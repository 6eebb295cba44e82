package main

import (
	"fmt"
	"io"
)

// reporter prints progress for a human reading the terminal. Debug lines only appear with
// --verbose.
type reporter struct {
	w       io.Writer
	verbose bool
}

func newReporter(w io.Writer, verbose bool) *reporter {
	if w == nil {
		w = io.Discard
	}
	return &reporter{w: w, verbose: verbose}
}

func (r *reporter) Printf(format string, args ...any) {
	fmt.Fprintf(r.w, format+"\n", args...)
}

func (r *reporter) Debugf(format string, args ...any) {
	if !r.verbose {
		return
	}
	fmt.Fprintf(r.w, "debug: "+format+"\n", args...)
}
