package framework

import (
	"fmt"
	"io"
)

// PrintResults writes the framework-level outcome of a run: how many tests ran and which ones
// failed, with their errors.
func PrintResults(w io.Writer, results Results) {
	if results.OK() {
		fmt.Fprintf(w, "All tests passed (%d run, %d skipped)\n", len(results.Tests), len(results.Skipped))
		return
	}
	fmt.Fprintf(w, "FAILED TESTS (%d of %d):\n", len(results.Failures), len(results.Tests))
	for _, f := range results.Failures {
		fmt.Fprintf(w, "  * %s\n", f.TestID)
		for _, err := range f.Errors {
			fmt.Fprintf(w, "    %s\n", err)
		}
	}
}
