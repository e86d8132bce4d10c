package inspect

import (
	"github.com/matzehuels/depscope/pkg/deps"
	"github.com/matzehuels/depscope/pkg/integrations/github"
)

// Join attaches alert data to dependencies. For each dependency the first
// alert whose package name equals the dependency name (case-sensitive)
// supplies severity, summary and URL; dependencies without a match are copied
// unchanged. The inputs are not modified and Join(Join(d, a), a) equals
// Join(d, a).
func Join(list []deps.Dependency, alerts []github.Alert) []deps.Dependency {
	out := make([]deps.Dependency, len(list))
	for i, d := range list {
		out[i] = d
		for _, a := range alerts {
			if a.PackageName() != d.Name {
				continue
			}
			sev, err := deps.ParseSeverity(a.Severity())
			if err != nil {
				sev = deps.SeverityUnknown
			}
			out[i].Severity = sev
			out[i].Summary = a.SecurityAdvisory.Summary
			out[i].URL = a.HTMLURL
			break
		}
	}
	return out
}
