// Package inspect runs dependency inspections of GitHub repositories.
//
// # Overview
//
// A run goes through a fixed sequence of states:
//
//	idle -> loading_manifest -> loading_enrichment -> done | failed
//
// and performs:
//
//  1. Parse the repository URL (no request is made for a bad URL)
//  2. List the repository root and download the first supported manifest
//  3. Parse the manifest into dependencies
//  4. Resolve every dependency's latest version concurrently
//  5. Fetch Dependabot alerts, after the version lookups complete
//  6. [Join] alerts onto dependencies by package name
//
// # Usage
//
//	gh := github.NewClient(cfg.GitHubToken, cfg.GitHubAPIURL, cfg.HTTPTimeout)
//	runner := inspect.NewRunner(gh, manifests.NewRegistries(cfg.HTTPTimeout), logger)
//
//	res, err := runner.Run(ctx, "https://github.com/pallets/flask")
//
// State changes, version lookups and run completion are reported through the
// observability hooks and, when set, [Runner.Progress].
package inspect
