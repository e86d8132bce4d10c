package inspect

import (
	"time"

	"github.com/matzehuels/depscope/pkg/deps"
)

// Result is the merged outcome of one inspection run. A run retains nothing
// after it returns its Result.
type Result struct {
	RunID          string            `json:"runId"`
	Owner          string            `json:"owner"`
	Repo           string            `json:"repo"`
	FileType       string            `json:"fileType"`
	Ecosystem      deps.Ecosystem    `json:"ecosystem"`
	Dependencies   []deps.Dependency `json:"dependencies"`
	AlertsDisabled bool              `json:"alertsDisabled"`
	AlertsMessage  string            `json:"alertsMessage,omitempty"`
	Duration       time.Duration     `json:"duration"`
}

// Repository returns "owner/repo".
func (r *Result) Repository() string { return r.Owner + "/" + r.Repo }

// Vulnerable returns the dependencies that carry an alert, in order.
func (r *Result) Vulnerable() []deps.Dependency {
	var out []deps.Dependency
	for _, d := range r.Dependencies {
		if d.Vulnerable() {
			out = append(out, d)
		}
	}
	return out
}

// Outdated counts dependencies whose declared version is behind the latest.
func (r *Result) Outdated() int {
	n := 0
	for _, d := range r.Dependencies {
		if d.Outdated {
			n++
		}
	}
	return n
}
