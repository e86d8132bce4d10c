package github

import (
	"context"
	"errors"
	"fmt"

	"github.com/matzehuels/depscope/pkg/integrations"
)

// AlertsDisabledMessage is reported when alerts are unavailable.
const AlertsDisabledMessage = "Dependabot alerts are not enabled for this repository or access is restricted."

// FetchAlerts retrieves the Dependabot alerts of a repository.
//
// A 403 or 404 response is not an error: it yields a result with Disabled set
// and [AlertsDisabledMessage]. Any other failure is returned unchanged and
// wraps [integrations.ErrNetwork]. Only the first page is read.
func (c *Client) FetchAlerts(ctx context.Context, owner, repo string) (*AlertsResult, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/dependabot/alerts", c.baseURL, owner, repo)
	headers := map[string]string{"Accept": "application/vnd.github+json"}

	var alerts []Alert
	if err := c.GetWithHeaders(ctx, url, headers, &alerts); err != nil {
		if errors.Is(err, integrations.ErrNotFound) || errors.Is(err, integrations.ErrForbidden) {
			return &AlertsResult{Disabled: true, Message: AlertsDisabledMessage}, nil
		}
		return nil, fmt.Errorf("dependabot alerts for %s/%s: %w", owner, repo, err)
	}
	if alerts == nil {
		alerts = []Alert{}
	}
	return &AlertsResult{Alerts: alerts}, nil
}
