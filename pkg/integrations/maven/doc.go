// Package maven provides an HTTP client for the Maven Central search API.
//
// # Overview
//
// This package resolves the latest version of a Java artifact through the
// Solr search endpoint of Maven Central (https://search.maven.org).
//
// # Usage
//
//	client := maven.NewClient(10 * time.Second)
//
//	v, err := client.LatestVersion(ctx, "com.google.guava:guava")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(v)
//
// # Coordinates
//
// Coordinates are "groupId:artifactId"; the query is
// q=g:{groupId} AND a:{artifactId}&rows=1&wt=json. A coordinate without a
// colon is searched as a bare artifactId. Any extra ":version" segment is
// ignored.
package maven
