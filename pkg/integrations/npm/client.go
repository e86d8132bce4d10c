package npm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/matzehuels/depscope/pkg/integrations"
)

// Client resolves latest versions from the npm registry.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates an npm client whose requests time out after timeout.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		Client:  integrations.NewClient(timeout, nil),
		baseURL: "https://registry.npmjs.org",
	}
}

// LatestVersion returns the version tagged "latest" for pkg.
// Scoped names ("@scope/name") are passed through unchanged.
func (c *Client) LatestVersion(ctx context.Context, pkg string) (string, error) {
	pkg = strings.TrimSpace(pkg)
	if pkg == "" {
		return "", fmt.Errorf("%w: empty npm package name", integrations.ErrNotFound)
	}

	var data latestResponse
	if err := c.Get(ctx, c.baseURL+"/"+pkg+"/latest", &data); err != nil {
		if errors.Is(err, integrations.ErrNotFound) {
			return "", fmt.Errorf("%w: npm package %s", err, pkg)
		}
		return "", err
	}
	if data.Version == "" {
		return "", fmt.Errorf("%w: npm package %s has no version", integrations.ErrNotFound, pkg)
	}
	return data.Version, nil
}

type latestResponse struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}
