package github

// ContentItem represents an item in a repository directory listing.
type ContentItem struct {
	Name        string `json:"name"`
	Path        string `json:"path"`
	Type        string `json:"type"` // "file" or "dir"
	Size        int    `json:"size"`
	DownloadURL string `json:"download_url"`
}

// Alert is one Dependabot alert as returned by
// GET /repos/{owner}/{repo}/dependabot/alerts. Missing fields decode to their
// zero values.
type Alert struct {
	Number     int    `json:"number"`
	State      string `json:"state"`
	HTMLURL    string `json:"html_url"`
	Dependency struct {
		Package struct {
			Name      string `json:"name"`
			Ecosystem string `json:"ecosystem"`
		} `json:"package"`
		ManifestPath string `json:"manifest_path"`
	} `json:"dependency"`
	SecurityAdvisory struct {
		GHSAID   string `json:"ghsa_id"`
		CVEID    string `json:"cve_id"`
		Summary  string `json:"summary"`
		Severity string `json:"severity"`
	} `json:"security_advisory"`
	SecurityVulnerability struct {
		Severity               string `json:"severity"`
		VulnerableVersionRange string `json:"vulnerable_version_range"`
		FirstPatchedVersion    *struct {
			Identifier string `json:"identifier"`
		} `json:"first_patched_version"`
	} `json:"security_vulnerability"`
}

// PackageName returns dependency.package.name.
func (a Alert) PackageName() string { return a.Dependency.Package.Name }

// Severity returns security_vulnerability.severity, falling back to the
// advisory severity when the former is absent.
func (a Alert) Severity() string {
	if a.SecurityVulnerability.Severity != "" {
		return a.SecurityVulnerability.Severity
	}
	return a.SecurityAdvisory.Severity
}

// AlertsResult is the outcome of an alerts lookup. Disabled means Dependabot
// is off or access was denied, which is distinct from an empty Alerts list.
type AlertsResult struct {
	Disabled bool    `json:"disabled"`
	Message  string  `json:"message,omitempty"`
	Alerts   []Alert `json:"alerts"`
}
