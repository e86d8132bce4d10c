package report

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/depscope/pkg/deps"
	"github.com/matzehuels/depscope/pkg/inspect"
)

var severityFill = map[deps.Severity]string{
	deps.SeverityCritical: "#b71c1c",
	deps.SeverityHigh:     "#e53935",
	deps.SeverityMedium:   "#fb8c00",
	deps.SeverityLow:      "#fdd835",
	deps.SeverityUnknown:  "#bdbdbd",
}

// ToDOT converts a result to a Graphviz digraph: one root node for the
// manifest and one node per dependency, in manifest order. Vulnerable
// dependencies are filled by severity; outdated ones get a dashed outline.
// Duplicate dependencies get separate nodes.
func ToDOT(res *inspect.Result) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=1.2;\n")
	buf.WriteString("  nodesep=0.15;\n")
	buf.WriteString("\n")

	root := res.Repository()
	if res.FileType != "" {
		root += "\n" + res.FileType
	}
	fmt.Fprintf(&buf, "  %q [label=%q, shape=folder, fillcolor=\"#e3f2fd\"];\n", "root", root)

	for i, d := range res.Dependencies {
		fmt.Fprintf(&buf, "  %q [%s];\n", nodeID(i), strings.Join(fmtAttrs(d), ", "))
	}

	buf.WriteString("\n")
	for i := range res.Dependencies {
		fmt.Fprintf(&buf, "  %q -> %q;\n", "root", nodeID(i))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(i int) string { return "dep" + strconv.Itoa(i) }

func fmtLabel(d deps.Dependency) string {
	label := d.Name + "\n" + d.Version
	if d.LatestVersion != "" && d.LatestVersion != d.Version {
		label += " -> " + d.LatestVersion
	}
	if d.Vulnerable() {
		label += "\n" + strings.ToUpper(d.Severity.String())
	}
	return label
}

func fmtAttrs(d deps.Dependency) []string {
	attrs := []string{fmt.Sprintf("label=%q", fmtLabel(d))}
	if d.Vulnerable() {
		attrs = append(attrs, fmt.Sprintf("fillcolor=%q", severityFill[d.Severity]))
		if d.URL != "" {
			attrs = append(attrs, fmt.Sprintf("URL=%q", d.URL), fmt.Sprintf("tooltip=%q", d.Summary))
		}
	}
	if d.Outdated {
		attrs = append(attrs, "style=\"rounded,filled,dashed\"")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
