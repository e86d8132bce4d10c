// Package manifests provides the closed set of supported manifest formats.
//
// This package exists to break import cycles: the individual language packages
// (javascript, python, java) import pkg/deps, so pkg/deps cannot import them
// back. Consumers that need the full set import this package.
//
// Usage:
//
//	deps, err := manifests.Parse("requirements.txt", content)
//	eco, _ := manifests.EcosystemFor("requirements.txt") // pypi
package manifests

import (
	"time"

	"github.com/matzehuels/depscope/pkg/deps"
	"github.com/matzehuels/depscope/pkg/deps/java"
	"github.com/matzehuels/depscope/pkg/deps/javascript"
	"github.com/matzehuels/depscope/pkg/deps/python"
	"github.com/matzehuels/depscope/pkg/errors"
)

// All is the canonical list of supported ecosystems.
var All = []*deps.Language{
	javascript.Language,
	python.Language,
	java.Language,
}

// Parsers returns one parser per supported manifest file, in [SupportedFiles] order.
func Parsers() []deps.ManifestParser {
	var out []deps.ManifestParser
	for _, lang := range All {
		out = append(out, lang.ManifestParsers()...)
	}
	return out
}

// SupportedFiles lists the manifest file names that can be parsed:
// package.json, requirements.txt, pom.xml and build.gradle.
func SupportedFiles() []string {
	return deps.SupportedFiles(Parsers()...)
}

// Tokens parses content as fileType and returns its "name:version" tokens.
// Unknown file types fail with UNSUPPORTED_FORMAT and yield no tokens.
func Tokens(fileType, content string) ([]string, error) {
	p, err := Detect(fileType)
	if err != nil {
		return nil, err
	}
	return p.Parse(content)
}

// Parse parses content as fileType and converts the tokens to dependencies
// with LatestVersion set to [deps.NotResolved].
func Parse(fileType, content string) ([]deps.Dependency, error) {
	p, err := Detect(fileType)
	if err != nil {
		return nil, err
	}
	tokens, err := p.Parse(content)
	if err != nil {
		return nil, err
	}
	return deps.ToDependencies(p, tokens), nil
}

// EcosystemFor returns the registry ecosystem of a manifest file type:
// package.json is npm, requirements.txt is pypi, pom.xml and build.gradle
// are maven.
func EcosystemFor(fileType string) (deps.Ecosystem, error) {
	for _, lang := range All {
		if lang.Handles(fileType) {
			return lang.Ecosystem, nil
		}
	}
	return "", errors.New(errors.ErrCodeUnsupportedFormat, "unsupported manifest: %s", fileType)
}

// NewRegistries builds one resolver per ecosystem backed by the public
// registries, each with the given request timeout.
func NewRegistries(timeout time.Duration) deps.Registries {
	regs := make(deps.Registries, len(All))
	for _, lang := range All {
		regs[lang.Ecosystem] = lang.NewResolver(timeout)
	}
	return regs
}

// Detect returns the parser handling the repository file name. Names no
// parser supports fail with UNSUPPORTED_FORMAT.
func Detect(name string) (deps.ManifestParser, error) {
	return deps.DetectManifest(name, Parsers()...)
}

// Supported reports whether name is a manifest file that can be parsed.
func Supported(name string) bool {
	_, err := Detect(name)
	return err == nil
}
