package python

import (
	"regexp"
	"strings"
)

var specifierRE = regexp.MustCompile(`[=<>!~]+`)

// Requirements parses requirements.txt files.
type Requirements struct{}

func (r *Requirements) Type() string              { return "requirements.txt" }
func (r *Requirements) Supports(name string) bool { return name == "requirements.txt" }

// Parse emits one token per non-blank, non-comment line. A line is split on
// runs of version operators (= < > ! ~); "name:first-fragment" is emitted when
// a split happened, the bare name otherwise. Parse never fails.
func (r *Requirements) Parse(content string) ([]string, error) {
	var tokens []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := specifierRE.Split(line, -1)
		name := strings.TrimSpace(parts[0])
		if len(parts) > 1 {
			tokens = append(tokens, name+":"+strings.TrimSpace(parts[1]))
			continue
		}
		tokens = append(tokens, name)
	}
	return tokens, nil
}
