package output

import (
	"fmt"
	"strings"

	"github.com/jwalton/go-supportscolor"

	"github.com/qbdi-tools/qbdirun/pkg/check"
)

var (
	green = "\033[32m"
	red   = "\033[31m"
	dim   = "\033[2m"
	reset = "\033[0m"
)

func init() {
	if !supportscolor.Stdout().SupportsColor {
		green, red, dim, reset = "", "", "", ""
	}
}

// PrintResult outputs a check result with colored status.
// Detail lines are indented to align under the check name.
func PrintResult(r check.Result) {
	if r.OK() {
		fmt.Printf("%s[OK]%s %s\n", green, reset, r.Name)
		for _, d := range r.Details {
			fmt.Printf("     %s\n", formatLabel(d))
		}
		return
	}

	fmt.Printf("%s[FAIL]%s %s\n", red, reset, r.Name)
	for _, d := range r.Details {
		fmt.Printf("       %s\n", formatLabel(d))
	}
}

// formatLabel dims the "label:" prefix of a detail line, if present.
func formatLabel(detail string) string {
	idx := strings.Index(detail, ": ")
	if idx < 0 {
		return detail
	}
	return fmt.Sprintf("%s%s:%s %s", dim, detail[:idx], reset, detail[idx+2:])
}
