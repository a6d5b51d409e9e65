package cmd

import (
	"fmt"
	"io"

	"github.com/darkhz/bluescan/bluez"
	"github.com/fatih/color"
)

// printReport prints the discovered devices, numbered from 1 in the order they were found.
func printReport(w io.Writer, records []bluez.DeviceRecord) {
	bold := color.New(color.Bold)

	bold.Fprintln(w, "\n=== Discovered Bluetooth Devices ===")
	fmt.Fprintf(w, "Found %d device(s):\n\n", len(records))

	if len(records) == 0 {
		fmt.Fprintln(w, "No devices found.")
		return
	}

	for i, record := range records {
		bold.Fprintf(w, "%d. %s\n", i+1, record.Name)
		fmt.Fprintf(w, "   Address: %s\n", record.Address)
		fmt.Fprintf(w, "   Path: %s\n\n", record.Path)
	}
}
