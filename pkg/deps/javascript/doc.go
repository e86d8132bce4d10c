// Package javascript provides package.json parsing and npm version lookups.
//
// # Overview
//
// This package implements [deps.Language] for JavaScript/Node.js:
//
//   - package.json manifest parsing ([PackageJSON])
//   - latest-version lookups via the [npm] client
//
// # Manifest Parsing
//
//	tokens, err := (&javascript.PackageJSON{}).Parse(content)
//	// ["react:^18.2.0", "lodash:~4.17.21"]
//
// Only "dependencies" is read. Entries keep their document order, which
// encoding/json maps would lose, so the object is walked token by token.
//
// [npm]: github.com/matzehuels/depscope/pkg/integrations/npm
// [deps.Language]: github.com/matzehuels/depscope/pkg/deps.Language
package javascript
