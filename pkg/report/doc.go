// Package report renders inspection results for files and pipes.
//
// # Formats
//
//   - json: the [inspect.Result] as indented JSON
//   - dot: a Graphviz digraph of the manifest and its dependencies
//   - svg: the dot graph laid out in-process with go-graphviz
//
// In the graph, vulnerable dependencies are filled by severity (critical is
// darkest) and link to their advisory; outdated dependencies have a dashed
// outline. The terminal table lives with the CLI.
//
// [inspect.Result]: github.com/matzehuels/depscope/pkg/inspect.Result
package report
