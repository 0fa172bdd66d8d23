package report

import (
	"fmt"
	"io"
)

// PrintSummary writes the end-of-run totals and the passed/failed test case lists.
func (r *Report) PrintSummary(w io.Writer) {
	passed, failed := r.Passed(), r.Failed()
	fmt.Fprintf(w, "Total testcases executed : %d\n", len(passed)+len(failed))
	fmt.Fprintf(w, "Passed testcases : %d\n", len(passed))
	for _, id := range passed {
		fmt.Fprintf(w, "  %s\n", id)
	}
	fmt.Fprintf(w, "Failed testcases : %d\n", len(failed))
	for _, id := range failed {
		fmt.Fprintf(w, "  %s\n", id)
	}
	fmt.Fprintf(w, "Results appended to %s\n", r.CSVPath())
}
