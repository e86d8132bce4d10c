package javascript

import (
	"time"

	"github.com/matzehuels/depscope/pkg/deps"
	"github.com/matzehuels/depscope/pkg/integrations/npm"
)

// Language provides JavaScript dependency parsing and npm version lookups.
// Supports package.json manifest files.
var Language = &deps.Language{
	Name:            "javascript",
	Ecosystem:       deps.EcosystemNPM,
	ManifestTypes:   []string{"package.json"},
	NewResolver:     newResolver,
	ManifestParsers: manifestParsers,
}

func manifestParsers() []deps.ManifestParser {
	return []deps.ManifestParser{&PackageJSON{}}
}

func newResolver(timeout time.Duration) deps.Resolver {
	return npm.NewClient(timeout)
}
