// Package pkg provides the core libraries for depscope.
//
// # Overview
//
// depscope inspects the dependencies of a GitHub repository: it finds the
// repository's manifest, resolves the latest published version of every
// declared dependency, and joins the list with the repository's Dependabot
// alerts. The pkg directory is organized into these areas:
//
//  1. [deps] - Dependency model, manifest parsers, version comparison
//  2. [integrations] - External API clients (GitHub, npm, PyPI, Maven, Gemini)
//  3. [inspect] - The inspection run (fetch, parse, resolve, join)
//  4. [report], [chat], [server] - Ways to consume a result
//  5. [config], [errors], [observability], [metrics] - Supporting infrastructure
//
// # Architecture
//
// The data flow of one inspection:
//
//	GitHub repository URL
//	         ↓
//	    [integrations/github] (root listing, manifest download)
//	         ↓
//	    [deps/manifests] (package.json, requirements.txt, pom.xml, build.gradle)
//	         ↓
//	    [integrations/npm], [integrations/pypi], [integrations/maven] (latest versions, concurrently)
//	         ↓
//	    [integrations/github] (Dependabot alerts)
//	         ↓
//	    [inspect.Join] → [inspect.Result]
//	         ↓
//	    table / JSON / DOT / SVG, chat, HTTP API
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/depscope/pkg/deps/manifests"
//	    "github.com/matzehuels/depscope/pkg/inspect"
//	    "github.com/matzehuels/depscope/pkg/integrations/github"
//	)
//
//	gh := github.NewClient(os.Getenv("GITHUB_TOKEN"), "", 10*time.Second)
//	runner := inspect.NewRunner(gh, manifests.NewRegistries(10*time.Second), nil)
//	res, err := runner.Run(ctx, "https://github.com/owner/repo")
//
// # Errors
//
// Errors returned from a run carry a code from [errors]: INVALID_INPUT,
// PARSE_ERROR, UNSUPPORTED_FORMAT, or LOOKUP_FAILURE. Version lookups never
// fail a run; an unresolved version is reported as "Unknown".
package pkg
