// Package deps holds the dependency model and the manifest and registry
// abstractions shared by the language subpackages.
//
// # Overview
//
// A run turns manifest content into [Dependency] values:
//
//  1. A [ManifestParser] reads tokens ("name:version") from the content
//  2. [ToDependencies] converts the tokens, keeping order and duplicates
//  3. [Registries] resolves each dependency's latest version
//
// Language subpackages ([javascript], [python], [java]) provide the parsers
// and registry resolvers; [manifests] collects them into the closed set of
// supported formats.
//
// # Versions
//
// Undeclared and unresolvable versions are [UnknownVersion]. LatestVersion is
// [NotResolved] until enrichment. [IsOutdated] compares versions with
// golang.org/x/mod/semver and is false for anything that is not semver.
//
// [javascript]: github.com/matzehuels/depscope/pkg/deps/javascript
// [python]: github.com/matzehuels/depscope/pkg/deps/python
// [java]: github.com/matzehuels/depscope/pkg/deps/java
// [manifests]: github.com/matzehuels/depscope/pkg/deps/manifests
package deps
