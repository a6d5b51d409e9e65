package cmd

import (
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
)

var (
	// progressOutput is where the progress bar is drawn.
	progressOutput io.Writer = color.Error

	// progressTerminal reports whether the progress output is a terminal.
	progressTerminal = func() bool {
		fd := os.Stderr.Fd()

		return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	}
)

// waiter returns the function that blocks for the scan duration.
// A progress bar is only drawn if the error output is a terminal.
func waiter(noProgress bool) func(time.Duration) {
	if noProgress || !progressTerminal() {
		return time.Sleep
	}

	return progressWait
}

// progressWait sleeps for the provided duration, while displaying
// the elapsed seconds in a progress bar on the error output.
// The wait cannot be interrupted.
func progressWait(d time.Duration) {
	seconds := int64(d / time.Second)
	if seconds == 0 {
		time.Sleep(d)
		return
	}

	bar := progressbar.NewOptions64(seconds,
		progressbar.OptionSetWriter(progressOutput),
		progressbar.OptionSetDescription("Scanning"),
		progressbar.OptionSetWidth(30),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(false),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionClearOnFinish(),
	)

	for range seconds {
		time.Sleep(time.Second)
		_ = bar.Add(1)
	}

	time.Sleep(d % time.Second)
	_ = bar.Finish()
}
