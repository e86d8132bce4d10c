// Package integrations provides HTTP clients for the external APIs depscope
// talks to.
//
// # Overview
//
// Each remote service has its own subpackage:
//
//   - [npm]: latest versions from the npm registry
//   - [pypi]: latest versions from the Python Package Index
//   - [maven]: latest versions from the Maven Central search API
//   - [github]: repository contents and Dependabot alerts
//   - [gemini]: chat completions from the Gemini generateContent endpoint
//
// # Client Pattern
//
// The registry clients share one shape:
//
//	client := npm.NewClient(10 * time.Second)
//	v, err := client.LatestVersion(ctx, "express")
//
// # Shared Infrastructure
//
// The [Client] type holds the shared HTTP plumbing: default headers, a
// User-Agent, status code mapping to [ErrNotFound], [ErrForbidden] and
// [ErrNetwork], and HTTP events reported through the observability hooks.
// There is no caching and no retry; every call is one request.
//
// [npm]: github.com/matzehuels/depscope/pkg/integrations/npm
// [pypi]: github.com/matzehuels/depscope/pkg/integrations/pypi
// [maven]: github.com/matzehuels/depscope/pkg/integrations/maven
// [github]: github.com/matzehuels/depscope/pkg/integrations/github
// [gemini]: github.com/matzehuels/depscope/pkg/integrations/gemini
package integrations
