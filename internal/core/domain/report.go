package domain

import "time"

// FileStatus represents the outcome of instrumenting one file.
type FileStatus string

const (
	// StatusCached indicates a valid cached result was reused.
	StatusCached FileStatus = "Cached"
	// StatusInstrumented indicates the instrumenter ran and the result was cached.
	StatusInstrumented FileStatus = "Instrumented"
	// StatusFailed indicates hashing, instrumenting or map registration failed.
	StatusFailed FileStatus = "Failed"
)

// FileOutcome is the per-file result of an instrumentation run.
type FileOutcome struct {
	File     FileID
	Status   FileStatus
	Hash     string
	Duration time.Duration
	Err      error
}

// Report summarises an instrumentation run. Outcomes are sorted by file.
type Report struct {
	Outcomes []FileOutcome
}

// Count returns how many outcomes have the given status.
func (r Report) Count(status FileStatus) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Status == status {
			n++
		}
	}
	return n
}

// Changed returns the files whose cache entry was written during the run.
func (r Report) Changed() []FileID {
	var ids []FileID
	for _, o := range r.Outcomes {
		if o.Status == StatusInstrumented {
			ids = append(ids, o.File)
		}
	}
	return ids
}
