package report

import (
	"encoding/csv"
	"fmt"
	"os"
)

var csvHeader = []string{"Testcase ID", "Testcase Output Response", "Testcase Status", "Testcase Message"}

// AppendResultRow appends one row to the CSV file, creating the file (with a header row) if it
// does not exist yet. The file is opened and closed on every call.
func (r *Report) AppendResultRow(result TestResult) (err error) {
	r.lock.Lock()
	defer r.lock.Unlock()

	f, err := os.OpenFile(r.csvPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("could not open report file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("could not close report file: %w", closeErr)
		}
	}()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("could not stat report file: %w", err)
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := w.Write(csvHeader); err != nil {
			return fmt.Errorf("could not write header to report file %s: %w", r.csvPath, err)
		}
	}
	if err := w.Write([]string{result.ID, result.Response, string(result.Status), result.Message}); err != nil {
		return fmt.Errorf("could not write to report file %s: %w", r.csvPath, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("could not write to report file %s: %w", r.csvPath, err)
	}
	return nil
}
