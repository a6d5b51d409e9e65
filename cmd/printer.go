package cmd

import (
	"io"

	"github.com/fatih/color"
)

// errOutput is where warnings and errors are printed.
var errOutput io.Writer = color.Error

// printStatus prints a scan status message to the screen.
func printStatus(w io.Writer, message string) {
	color.New(color.FgCyan).Fprintln(w, message)
}

// printWarn prints a warning to the error output.
func printWarn(err error) {
	message := "[-] " + err.Error()

	color.New(color.FgYellow, color.Bold).Fprintln(errOutput, message)
}

// printError prints an error to the error output.
func printError(err error) {
	message := "[!] " + err.Error()

	color.New(color.FgRed, color.Bold).Fprintln(errOutput, message)
}
