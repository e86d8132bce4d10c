package java

import (
	"regexp"

	"github.com/matzehuels/depscope/pkg/deps"
)

var gradleDepRE = regexp.MustCompile(`(?:classpath|implementation|api|compile|testImplementation)\s+['"]([^:]+):([^:]+):([^'"]+)['"]`)

// GradleParser parses Groovy build.gradle files. Only string-notation
// declarations of the form configuration 'group:artifact:version' are read.
type GradleParser struct{}

func (p *GradleParser) Type() string              { return "build.gradle" }
func (p *GradleParser) Supports(name string) bool { return name == "build.gradle" }

// Parse emits one "group:artifact:version" token per match, in file order.
func (p *GradleParser) Parse(content string) ([]string, error) {
	var tokens []string
	for _, m := range gradleDepRE.FindAllStringSubmatch(content, -1) {
		tokens = append(tokens, m[1]+":"+m[2]+":"+m[3])
	}
	return tokens, nil
}

// Dependency names a gradle token by its "group:artifact" coordinate so the
// Maven lookup can search by both.
func (p *GradleParser) Dependency(token string) deps.Dependency {
	return deps.FromCoordinate(token)
}
