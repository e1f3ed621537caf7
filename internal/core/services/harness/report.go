package harness

import (
	"fmt"
	"io"
	"strings"

	"github.com/iamNilotpal/ipchecksum/internal/core/domain"
	"github.com/iamNilotpal/ipchecksum/internal/serialize"
)

// ANSI colors for pass/fail lines.
const (
	ColorReset = "\033[0m"
	ColorRed   = "\033[91m"
	ColorGreen = "\033[32m"
)

const separator = "________________________________________________________"

// WriteText prints one block per outcome followed by a summary line.
func WriteText(w io.Writer, report *domain.Report, color bool) error {
	var b strings.Builder

	for _, o := range report.Outcomes {
		b.WriteString(separator + "\n\n")
		if len(o.Args) > 0 {
			fmt.Fprintf(&b, "args = %v\n\n", o.Args)
		} else {
			fmt.Fprintf(&b, "file = %s, strategy = %d (%s)\n\n", o.File, o.Index, o.Strategy)
		}

		verdict := "TEST PASSED!"
		c := ColorGreen
		if !o.Passed {
			verdict = "TEST FAILED!"
			c = ColorRed
		}
		if color {
			fmt.Fprintf(&b, "%s\t\t\t%s %s\n\n", c, verdict, ColorReset)
		} else {
			fmt.Fprintf(&b, "\t\t\t%s\n\n", verdict)
		}

		fmt.Fprintf(&b, "EXPECTED: %X\n", o.Expected)
		fmt.Fprintf(&b, "ACTUAL:   %X\n", o.Actual)
	}

	fmt.Fprintf(&b, "%s\n\npassed: %d, failed: %d\n", separator, report.Passed, report.Failed)

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteJSON prints the report as indented JSON.
func WriteJSON(w io.Writer, report *domain.Report) error {
	return serialize.WriteJSON(w, report)
}
