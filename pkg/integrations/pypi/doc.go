// Package pypi provides an HTTP client for the Python Package Index API.
//
// # Overview
//
// This package resolves the latest release of a Python project from PyPI
// (https://pypi.org) by reading info.version from /pypi/{name}/json.
//
// # Usage
//
//	client := pypi.NewClient(10 * time.Second)
//
//	v, err := client.LatestVersion(ctx, "fastapi")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(v)
//
// Names are sent as declared; PyPI redirects non-canonical spellings.
package pypi
