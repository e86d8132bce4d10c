package pypi

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/matzehuels/depscope/pkg/integrations"
)

// Client provides access to the PyPI JSON API.
//
// All methods are safe for concurrent use by multiple goroutines.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a PyPI client whose requests time out after timeout.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		Client:  integrations.NewClient(timeout, nil),
		baseURL: "https://pypi.org/pypi",
	}
}

// LatestVersion returns info.version from the project's JSON document.
//
// Returns:
//   - [integrations.ErrNotFound] if the project doesn't exist or has no version
//   - [integrations.ErrNetwork] for HTTP failures
func (c *Client) LatestVersion(ctx context.Context, pkg string) (string, error) {
	pkg = strings.TrimSpace(pkg)
	if pkg == "" {
		return "", fmt.Errorf("%w: empty pypi package name", integrations.ErrNotFound)
	}

	var data apiResponse
	if err := c.Get(ctx, c.baseURL+"/"+pkg+"/json", &data); err != nil {
		if errors.Is(err, integrations.ErrNotFound) {
			return "", fmt.Errorf("%w: pypi package %s", err, pkg)
		}
		return "", err
	}
	if data.Info.Version == "" {
		return "", fmt.Errorf("%w: pypi package %s has no version", integrations.ErrNotFound, pkg)
	}
	return data.Info.Version, nil
}

type apiResponse struct {
	Info struct {
		Name    string `json:"name"`
		Version string `json:"version"`
	} `json:"info"`
}
