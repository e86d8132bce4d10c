package python

import (
	"time"

	"github.com/matzehuels/depscope/pkg/deps"
	"github.com/matzehuels/depscope/pkg/integrations/pypi"
)

// Language provides Python dependency parsing and PyPI version lookups.
// Supports requirements.txt manifest files.
var Language = &deps.Language{
	Name:            "python",
	Ecosystem:       deps.EcosystemPyPI,
	ManifestTypes:   []string{"requirements.txt"},
	NewResolver:     newResolver,
	ManifestParsers: manifestParsers,
}

func newResolver(timeout time.Duration) deps.Resolver {
	return pypi.NewClient(timeout)
}

func manifestParsers() []deps.ManifestParser {
	return []deps.ManifestParser{&Requirements{}}
}
