package deps

import "time"

// Ecosystem names the package registry a manifest's dependencies live in.
type Ecosystem string

const (
	EcosystemNPM   Ecosystem = "npm"
	EcosystemPyPI  Ecosystem = "pypi"
	EcosystemMaven Ecosystem = "maven"
)

// Language ties manifest formats to the registry that resolves their versions.
type Language struct {
	Name            string
	Ecosystem       Ecosystem
	ManifestTypes   []string
	NewResolver     func(timeout time.Duration) Resolver
	ManifestParsers func() []ManifestParser
}

// Handles reports whether fileType is one of the language's manifest files.
func (l *Language) Handles(fileType string) bool {
	for _, m := range l.ManifestTypes {
		if m == fileType {
			return true
		}
	}
	return false
}
