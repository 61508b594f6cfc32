package config

import (
	"fmt"
	"io"
	"os"
)

var (
	exitWriter io.Writer = os.Stderr
	exitFunc             = os.Exit
)

// Exitf reports a fatal startup failure on stderr and exits with code 1.
// Commands call it before a logger exists, so it writes plain text.
func Exitf(format string, args ...any) {
	fmt.Fprintf(exitWriter, "golear: "+format+"\n", args...)
	exitFunc(1)
}
