package deps

import (
	"path"
	"slices"

	"github.com/matzehuels/depscope/pkg/errors"
)

// ManifestParser reads dependency tokens from the content of one manifest format.
// Parsers are pure: they perform no I/O.
type ManifestParser interface {
	// Parse returns one "name:version" token per declared dependency, in
	// manifest order. Content that is not in the expected shape fails with a
	// PARSE_ERROR.
	Parse(content string) ([]string, error)
	// Supports reports whether this parser handles the given filename.
	Supports(filename string) bool
	// Type returns the manifest file name handled (e.g., "package.json").
	Type() string
}

// TokenConverter is implemented by parsers whose tokens are not plain
// "name:version" pairs.
type TokenConverter interface {
	Dependency(token string) Dependency
}

// DetectManifest finds a parser that supports the given file path.
// Returns an UNSUPPORTED_FORMAT error if no parser matches.
func DetectManifest(file string, parsers ...ManifestParser) (ManifestParser, error) {
	name := path.Base(file)
	for _, p := range parsers {
		if p.Supports(name) {
			return p, nil
		}
	}
	return nil, errors.New(errors.ErrCodeUnsupportedFormat, "unsupported manifest: %s", name)
}

// ToDependencies converts parser tokens to dependencies, in order.
// Duplicates are kept.
func ToDependencies(p ManifestParser, tokens []string) []Dependency {
	conv := FromToken
	if tc, ok := p.(TokenConverter); ok {
		conv = tc.Dependency
	}
	out := make([]Dependency, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, conv(t))
	}
	return out
}

// SupportedFiles returns the manifest file names handled by parsers, in order.
func SupportedFiles(parsers ...ManifestParser) []string {
	var names []string
	for _, p := range parsers {
		if !slices.Contains(names, p.Type()) {
			names = append(names, p.Type())
		}
	}
	return names
}
