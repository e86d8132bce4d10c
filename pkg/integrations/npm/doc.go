// Package npm provides an HTTP client for the npm registry API.
//
// # Overview
//
// This package resolves the latest published version of a JavaScript package
// from the npm registry (https://registry.npmjs.org).
//
// # Usage
//
//	client := npm.NewClient(10 * time.Second)
//
//	v, err := client.LatestVersion(ctx, "express")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(v)
//
// # Version Selection
//
// The client reads the "/{name}/latest" document, which is the version tagged
// as "latest" in dist-tags. A response without a version is reported as
// [integrations.ErrNotFound].
package npm
