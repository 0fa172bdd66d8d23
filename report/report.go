// Package report accumulates the outcome of every test case in a run and persists it.
package report

import (
	"sync"
)

// DefaultCSVPath is used when no report file is configured.
const DefaultCSVPath = "test_results.csv"

type Status string

const (
	StatusPass Status = "Pass"
	StatusFail Status = "Fail"
)

// TestResult is the outcome of one test case execution.
type TestResult struct {
	ID       string
	Response string
	Status   Status
	Message  string
}

// Report is the run-scoped record of results. The passed and failed lists are append-only and
// are not deduplicated: running the same case twice records it twice.
type Report struct {
	csvPath string
	passed  []string
	failed  []string
	results []TestResult
	lock    sync.Mutex
}

// New creates a Report that appends rows to the CSV file at csvPath.
func New(csvPath string) *Report {
	if csvPath == "" {
		csvPath = DefaultCSVPath
	}
	return &Report{csvPath: csvPath}
}

func (r *Report) CSVPath() string {
	return r.csvPath
}

func (r *Report) RecordPass(id string) {
	r.lock.Lock()
	r.passed = append(r.passed, id)
	r.lock.Unlock()
}

func (r *Report) RecordFail(id string) {
	r.lock.Lock()
	r.failed = append(r.failed, id)
	r.lock.Unlock()
}

// Record adds the result to exactly one of the passed/failed lists.
func (r *Report) Record(result TestResult) {
	if result.Status == StatusPass {
		r.RecordPass(result.ID)
	} else {
		r.RecordFail(result.ID)
	}
	r.lock.Lock()
	r.results = append(r.results, result)
	r.lock.Unlock()
}

// Submit records the result and appends its CSV row. The returned error comes from the CSV
// write; the in-memory record is kept either way.
func (r *Report) Submit(result TestResult) error {
	r.Record(result)
	return r.AppendResultRow(result)
}

func (r *Report) Passed() []string {
	r.lock.Lock()
	defer r.lock.Unlock()
	return append([]string(nil), r.passed...)
}

func (r *Report) Failed() []string {
	r.lock.Lock()
	defer r.lock.Unlock()
	return append([]string(nil), r.failed...)
}

func (r *Report) Results() []TestResult {
	r.lock.Lock()
	defer r.lock.Unlock()
	return append([]TestResult(nil), r.results...)
}
