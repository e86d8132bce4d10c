package java

import (
	"time"

	"github.com/matzehuels/depscope/pkg/deps"
	"github.com/matzehuels/depscope/pkg/integrations/maven"
)

// Language provides Java dependency parsing and Maven Central version lookups.
// Supports pom.xml and build.gradle manifest files.
var Language = &deps.Language{
	Name:            "java",
	Ecosystem:       deps.EcosystemMaven,
	ManifestTypes:   []string{"pom.xml", "build.gradle"},
	NewResolver:     newResolver,
	ManifestParsers: manifestParsers,
}

func newResolver(timeout time.Duration) deps.Resolver {
	return maven.NewClient(timeout)
}

func manifestParsers() []deps.ManifestParser {
	return []deps.ManifestParser{&POMParser{}, &GradleParser{}}
}
