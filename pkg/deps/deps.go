package deps

import "strings"

const (
	// UnknownVersion marks a version that was not declared or could not be resolved.
	UnknownVersion = "Unknown"

	// NotResolved is the LatestVersion of a dependency before enrichment.
	NotResolved = "N/A"
)

// Dependency is one declared dependency of a manifest, optionally enriched
// with its latest registry version and a matching vulnerability alert.
type Dependency struct {
	Name          string   `json:"name"`
	Version       string   `json:"version"`
	LatestVersion string   `json:"latestVersion"`
	Outdated      bool     `json:"outdated,omitempty"`
	Severity      Severity `json:"severity,omitempty"`
	Summary       string   `json:"summary,omitempty"`
	URL           string   `json:"url,omitempty"`
}

// Vulnerable reports whether an alert was attached.
func (d Dependency) Vulnerable() bool { return d.Severity != "" }

// FromToken converts a "name:version" token into a Dependency. The name is the
// text before the first colon and the version the segment after it; a
// missing or empty version becomes [UnknownVersion].
func FromToken(token string) Dependency {
	parts := strings.Split(token, ":")
	d := Dependency{Name: parts[0], Version: UnknownVersion, LatestVersion: NotResolved}
	if len(parts) > 1 && parts[1] != "" {
		d.Version = parts[1]
	}
	return d
}

// FromCoordinate converts a "group:artifact:version" token into a Dependency
// named "group:artifact". Tokens with fewer than three segments are handled
// like [FromToken].
func FromCoordinate(token string) Dependency {
	i := strings.LastIndex(token, ":")
	if i < 0 || strings.Count(token, ":") < 2 {
		return FromToken(token)
	}
	d := Dependency{Name: token[:i], Version: token[i+1:], LatestVersion: NotResolved}
	if d.Version == "" {
		d.Version = UnknownVersion
	}
	return d
}
