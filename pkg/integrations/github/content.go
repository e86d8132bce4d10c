package github

import (
	"context"
	"errors"
	"fmt"

	"github.com/matzehuels/depscope/pkg/integrations"
)

// ErrNoManifest is returned by [Client.FindManifest] when no file in the
// repository root matches.
var ErrNoManifest = errors.New("no dependency file found")

// ListContents lists files and directories in a repository path.
// An empty path lists the repository root.
func (c *Client) ListContents(ctx context.Context, owner, repo, path string) ([]ContentItem, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/contents/%s", c.baseURL, owner, repo, path)

	var items []ContentItem
	if err := c.Get(ctx, url, &items); err != nil {
		if errors.Is(err, integrations.ErrNotFound) {
			return nil, fmt.Errorf("%w: github repo %s/%s", err, owner, repo)
		}
		return nil, err
	}
	return items, nil
}

// FindManifest lists the repository root and returns the first item, in
// listing order, whose name satisfies match.
func (c *Client) FindManifest(ctx context.Context, owner, repo string, match func(name string) bool) (*ContentItem, error) {
	items, err := c.ListContents(ctx, owner, repo, "")
	if err != nil {
		return nil, err
	}
	for i := range items {
		if match(items[i].Name) {
			return &items[i], nil
		}
	}
	return nil, fmt.Errorf("%w in %s/%s", ErrNoManifest, owner, repo)
}

// Download fetches the raw content of item through its download_url.
// No credentials are sent.
func (c *Client) Download(ctx context.Context, item *ContentItem) (string, error) {
	if item == nil || item.DownloadURL == "" {
		return "", fmt.Errorf("%w: item has no download url", integrations.ErrNotFound)
	}
	return c.raw.GetText(ctx, item.DownloadURL)
}
