// Package log provides colored console output for the tutil commands.
// Diagnostics go to stderr so that results on stdout stay clean when the
// output is piped.
package log

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

var red = color.New(color.FgRed).FprintfFunc()
var blue = color.New(color.FgBlue).FprintfFunc()

// ErrorMsg prints an error message to stderr in red color.
func ErrorMsg(format string, a ...interface{}) {
	red(os.Stderr, "[!] Error: "+format, a...)
}

// InfoMsg prints an informational message to stderr in blue color.
func InfoMsg(format string, a ...interface{}) {
	blue(os.Stderr, "[+] "+format, a...)
}

// Msg prints a result to stdout, uncolored.
func Msg(format string, a ...interface{}) {
	fmt.Fprintf(os.Stdout, format, a...)
}
