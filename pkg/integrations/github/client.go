package github

import (
	"strings"
	"time"

	"github.com/matzehuels/depscope/pkg/integrations"
)

// DefaultBaseURL is the public GitHub REST API root.
const DefaultBaseURL = "https://api.github.com"

// Client provides access to the GitHub REST API for repository contents and
// Dependabot alerts. Manifest downloads go through a separate client that
// sends no credentials.
//
// All methods are safe for concurrent use by multiple goroutines.
type Client struct {
	*integrations.Client
	raw     *integrations.Client
	baseURL string
	token   string
}

// NewClient creates a GitHub API client.
// Pass an empty token for unauthenticated requests (lower rate limits, no
// Dependabot access). An empty baseURL selects [DefaultBaseURL].
func NewClient(token, baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	headers := map[string]string{"Accept": "application/vnd.github.v3+json"}
	if token != "" {
		headers["Authorization"] = "Bearer " + token
	}
	return &Client{
		Client:  integrations.NewClient(timeout, headers),
		raw:     integrations.NewClient(timeout, nil),
		baseURL: strings.TrimSuffix(baseURL, "/"),
		token:   token,
	}
}

// HasToken reports whether requests are authenticated.
func (c *Client) HasToken() bool { return c.token != "" }
