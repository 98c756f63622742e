// Package doctor runs read-only health checks for a provisioning setup.
package doctor

// Status is the outcome of a single check.
type Status string

const (
	StatusOK   Status = "OK"
	StatusWarn Status = "WARN"
	StatusFail Status = "FAIL"
)

// Result is one line of doctor output.
type Result struct {
	Status    Status
	CheckName string
	Message   string
	// Recommendation may span several lines.
	Recommendation string
}

// HasProblems reports whether any result is a warning or failure.
func HasProblems(results []Result) bool {
	for _, r := range results {
		if r.Status != StatusOK {
			return true
		}
	}
	return false
}
