package maven

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/matzehuels/depscope/pkg/integrations"
)

// Client provides access to the Maven Central search API.
//
// All methods are safe for concurrent use by multiple goroutines.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a Maven Central client whose requests time out after timeout.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		Client:  integrations.NewClient(timeout, nil),
		baseURL: "https://search.maven.org/solrsearch/select",
	}
}

// LatestVersion returns response.docs[0].latestVersion for a coordinate.
//
// The coordinate is normally "groupId:artifactId". A bare artifactId (as
// produced from pom.xml entries) searches by artifact alone.
//
// Returns [integrations.ErrNotFound] when the search has no documents or the
// first document carries no version.
func (c *Client) LatestVersion(ctx context.Context, coordinate string) (string, error) {
	query, err := buildQuery(coordinate)
	if err != nil {
		return "", err
	}
	url := fmt.Sprintf("%s?q=%s&rows=1&wt=json", c.baseURL, integrations.URLEncode(query))

	var resp searchResponse
	if err := c.Get(ctx, url, &resp); err != nil {
		if errors.Is(err, integrations.ErrNotFound) {
			return "", fmt.Errorf("%w: maven artifact %s", err, coordinate)
		}
		return "", err
	}
	if len(resp.Response.Docs) == 0 {
		return "", fmt.Errorf("%w: maven artifact %s", integrations.ErrNotFound, coordinate)
	}

	doc := resp.Response.Docs[0]
	version := doc.LatestVersion
	if version == "" {
		version = doc.Version
	}
	if version == "" {
		return "", fmt.Errorf("%w: maven artifact %s has no version", integrations.ErrNotFound, coordinate)
	}
	return version, nil
}

func buildQuery(coordinate string) (string, error) {
	groupID, artifactID, err := parseCoordinate(coordinate)
	if err != nil {
		return "", err
	}
	if groupID == "" {
		return "a:" + artifactID, nil
	}
	return "g:" + groupID + " AND a:" + artifactID, nil
}

// parseCoordinate splits "groupId:artifactId". A coordinate without a colon is
// treated as a bare artifactId.
func parseCoordinate(coord string) (groupID, artifactID string, err error) {
	coord = strings.TrimSpace(coord)
	if coord == "" {
		return "", "", fmt.Errorf("%w: empty maven coordinate", integrations.ErrNotFound)
	}
	g, a, ok := strings.Cut(coord, ":")
	if !ok {
		return "", g, nil
	}
	a, _, _ = strings.Cut(a, ":")
	if a == "" {
		return "", "", fmt.Errorf("%w: invalid maven coordinate %q (expected groupId:artifactId)", integrations.ErrNotFound, coord)
	}
	return g, a, nil
}

type searchResponse struct {
	Response struct {
		NumFound int         `json:"numFound"`
		Docs     []searchDoc `json:"docs"`
	} `json:"response"`
}

type searchDoc struct {
	GroupID       string `json:"g"`
	ArtifactID    string `json:"a"`
	Version       string `json:"v"`
	LatestVersion string `json:"latestVersion"`
}
