package deps

import (
	"strings"

	"golang.org/x/mod/semver"
)

// canonical turns a declared version into a semver string, or "" when it is
// not one. Range operators, a leading "v" and surrounding spaces are dropped.
func canonical(v string) string {
	v = strings.TrimSpace(v)
	v = strings.TrimLeft(v, "^~>=< ")
	v = strings.TrimPrefix(v, "v")
	if v == "" {
		return ""
	}
	sv := "v" + v
	if !semver.IsValid(sv) {
		return ""
	}
	return semver.Canonical(sv)
}

// IsOutdated reports whether declared is strictly older than latest. It is
// false whenever either version is not valid semver.
func IsOutdated(declared, latest string) bool {
	d, l := canonical(declared), canonical(latest)
	if d == "" || l == "" {
		return false
	}
	return semver.Compare(d, l) < 0
}
