package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/pyskel-labs/pyskel/internal/fsops"
)

// fatih/color disables itself when stdout is not a TTY.
var (
	successColor = color.New(color.FgGreen, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	createdColor = color.New(color.FgGreen)
	dimColor     = color.New(color.FgHiBlack)
)

func printSuccess(w io.Writer, msg string) {
	_, _ = successColor.Fprintln(w, msg)
}

func printWarning(w io.Writer, msg string) {
	_, _ = warningColor.Fprintln(w, msg)
}

func printError(w io.Writer, msg string) {
	_, _ = errorColor.Fprintf(w, "Error: %s\n", msg)
}

// progressObserver prints one colored line per materialized path.
func progressObserver(w io.Writer) fsops.Observer {
	return fsops.ObserverFunc(func(e fsops.Event) {
		c := createdColor
		if e.Kind == fsops.DirectoryEnsured {
			c = dimColor
		}
		_, _ = c.Fprintln(w, e.String())
	})
}

func printLabelValue(w io.Writer, label, value string) {
	fmt.Fprintf(w, "%s = %s\n", label, value)
}
