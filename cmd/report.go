package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// ReportError writes err to w as "gocat: <message>". The prefix is red and
// bold when colorize is set.
func ReportError(w io.Writer, err error, colorize bool) {
	prefix := color.New(color.FgRed, color.Bold)
	if colorize {
		prefix.EnableColor()
	} else {
		prefix.DisableColor()
	}
	fmt.Fprintf(w, "%s %v\n", prefix.Sprint(appName+":"), err)
}
