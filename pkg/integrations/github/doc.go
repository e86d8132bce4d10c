// Package github provides an HTTP client for the GitHub REST API.
//
// # Overview
//
// depscope uses two areas of the API (https://api.github.com):
//
//   - repository contents, to find and download the dependency manifest
//   - Dependabot alerts, to attach advisories to dependencies
//
// # Usage
//
//	client := github.NewClient(token, "", 10*time.Second)
//
//	owner, repo, err := github.ParseRepoURL("https://github.com/pallets/flask")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	item, err := client.FindManifest(ctx, owner, repo, func(name string) bool {
//	    return name == "requirements.txt"
//	})
//	content, err := client.Download(ctx, item)
//
//	alerts, err := client.FetchAlerts(ctx, owner, repo)
//	if alerts.Disabled {
//	    fmt.Println(alerts.Message)
//	}
//
// # Authentication
//
// The token is sent as "Authorization: Bearer {token}" on API requests. It is
// optional for public contents but Dependabot alerts require a token with
// security_events access; without one the alerts endpoint answers 403/404,
// which [Client.FetchAlerts] reports as Disabled rather than as an error.
// Raw manifest downloads never carry the token.
package github
