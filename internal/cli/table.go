package cli

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/depscope/pkg/deps"
	"github.com/matzehuels/depscope/pkg/inspect"
)

// severityStyles is indexed by [deps.Severity.Rank].
var severityStyles = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(colorDim),
	lipgloss.NewStyle().Foreground(colorGray),
	lipgloss.NewStyle().Foreground(colorYellow),
	lipgloss.NewStyle().Foreground(colorRed),
	lipgloss.NewStyle().Foreground(colorRed).Bold(true),
}

func severityStyle(s deps.Severity) lipgloss.Style {
	return severityStyles[min(s.Rank(), len(severityStyles)-1)]
}

const (
	colPackage = iota
	colVersion
	colLatest
	colSeverity
	colAdvisory
)

// dependencyRows returns one table row per dependency, in manifest order.
func dependencyRows(list []deps.Dependency) [][]string {
	rows := make([][]string, 0, len(list))
	for _, d := range list {
		sev, advisory := "", ""
		if d.Vulnerable() {
			sev = d.Severity.String()
			advisory = d.Summary
			if d.URL != "" {
				advisory += " " + d.URL
			}
		}
		rows = append(rows, []string{d.Name, d.Version, d.LatestVersion, sev, advisory})
	}
	return rows
}

// renderTable renders the dependencies of res as a bordered table. Outdated
// latest versions and severities are colored.
func renderTable(res *inspect.Result) string {
	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	cell := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Package", "Version", "Latest", "Severity", "Advisory").
		Rows(dependencyRows(res.Dependencies)...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle.Padding(0, 1)
			}
			if row < 0 || row >= len(res.Dependencies) {
				return cell
			}
			d := res.Dependencies[row]
			switch col {
			case colPackage:
				return cell.Foreground(colorWhite)
			case colLatest:
				if d.Outdated {
					return cell.Foreground(colorYellow)
				}
				if d.LatestVersion == deps.UnknownVersion {
					return cell.Foreground(colorDim)
				}
				return cell.Foreground(colorGreen)
			case colSeverity:
				if d.Vulnerable() {
					return severityStyle(d.Severity).Padding(0, 1)
				}
			case colAdvisory:
				return cell.Foreground(colorGray).MaxWidth(60)
			}
			return cell
		})

	return t.Render()
}
