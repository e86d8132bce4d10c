package deps

import (
	"cmp"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Severity is a normalised advisory severity.
type Severity string

const (
	SeverityUnknown  Severity = "unknown"
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Rank returns an integer rank for comparison (Low=1, Critical=4).
func (s Severity) Rank() int {
	switch s {
	case SeverityLow:
		return 1
	case SeverityMedium:
		return 2
	case SeverityHigh:
		return 3
	case SeverityCritical:
		return 4
	default:
		return 0
	}
}

func (s Severity) String() string {
	return string(s)
}

// ParseSeverity parses a severity string case-insensitively.
// Accepts "moderate" as "medium".
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return SeverityLow, nil
	case "medium", "moderate":
		return SeverityMedium, nil
	case "high":
		return SeverityHigh, nil
	case "critical":
		return SeverityCritical, nil
	default:
		return SeverityUnknown, fmt.Errorf("invalid severity: %s", s)
	}
}

// CountBySeverity tallies vulnerable dependencies per severity.
func CountBySeverity(list []Dependency) map[Severity]int {
	counts := make(map[Severity]int)
	for _, d := range list {
		if d.Vulnerable() {
			counts[d.Severity]++
		}
	}
	return counts
}

// SeveritySummary renders counts highest first, e.g. "1 critical, 2 high".
// Returns "" when nothing is vulnerable.
func SeveritySummary(list []Dependency) string {
	counts := CountBySeverity(list)
	levels := slices.Collect(maps.Keys(counts))
	slices.SortFunc(levels, func(a, b Severity) int {
		return cmp.Or(b.Rank()-a.Rank(), strings.Compare(string(a), string(b)))
	})
	parts := make([]string, 0, len(levels))
	for _, s := range levels {
		parts = append(parts, fmt.Sprintf("%d %s", counts[s], s))
	}
	return strings.Join(parts, ", ")
}
