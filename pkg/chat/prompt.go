package chat

import (
	"fmt"
	"strings"

	"github.com/matzehuels/depscope/pkg/deps"
)

// BuildPrompt seeds a user message with inspection context. A message that
// mentions "dependencies" (case-insensitive) gets the dependency list
// appended; one that mentions "vulnerabilities" gets the vulnerable entries.
// Nothing is appended when the matching list is empty.
func BuildPrompt(message string, list []deps.Dependency) string {
	lower := strings.ToLower(message)
	var b strings.Builder
	b.WriteString(message)

	if strings.Contains(lower, "dependencies") && len(list) > 0 {
		entries := make([]string, len(list))
		for i, d := range list {
			entries[i] = fmt.Sprintf("Package: %s\nVersion: %s\nLatest Version: %s", d.Name, d.Version, d.LatestVersion)
		}
		b.WriteString("\n\nHere are the dependencies:\n")
		b.WriteString(strings.Join(entries, "\n\n"))
	}

	if strings.Contains(lower, "vulnerabilities") {
		var entries []string
		for _, d := range list {
			if !d.Vulnerable() {
				continue
			}
			entries = append(entries, fmt.Sprintf("Package: %s\nSeverity: %s\nSummary: %s\nURL: %s", d.Name, d.Severity, d.Summary, d.URL))
		}
		if len(entries) > 0 {
			b.WriteString("\n\nHere are the vulnerabilities:\n")
			b.WriteString(strings.Join(entries, "\n\n"))
		}
	}
	return b.String()
}
