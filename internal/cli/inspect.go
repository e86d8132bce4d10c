package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/depscope/pkg/deps"
	"github.com/matzehuels/depscope/pkg/errors"
	"github.com/matzehuels/depscope/pkg/inspect"
	"github.com/matzehuels/depscope/pkg/report"
)

// formatTable is the terminal-only output format.
const formatTable = "table"

var stateMessages = map[inspect.State]string{
	inspect.StateLoadingManifest:   "Fetching dependency manifest...",
	inspect.StateLoadingEnrichment: "Resolving latest versions and alerts...",
}

// inspectFlags holds flags for the inspect command.
type inspectFlags struct {
	format string
	output string
}

// inspectCommand creates the inspect command.
func (c *CLI) inspectCommand() *cobra.Command {
	flags := inspectFlags{format: formatTable}

	cmd := &cobra.Command{
		Use:   "inspect <repo-url>",
		Short: "Inspect a repository's dependencies",
		Long: `Inspect finds the first supported manifest in the repository root
(package.json, requirements.txt, pom.xml, build.gradle), resolves the latest
version of each dependency, and attaches Dependabot alerts.

Examples:
  depscope inspect https://github.com/owner/repo
  depscope inspect https://github.com/owner/repo -f json -o deps.json
  depscope inspect https://github.com/owner/repo -f svg -o deps.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInspect(cmd.Context(), args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", flags.format, "output format: table, json, dot, svg")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file (default stdout)")

	return cmd
}

func validateFormat(format string) error {
	if format == formatTable {
		return nil
	}
	return report.ValidateFormat(format)
}

func (c *CLI) runInspect(ctx context.Context, repoURL string, flags inspectFlags) error {
	if err := validateFormat(flags.format); err != nil {
		return err
	}

	res, err := c.inspect(ctx, repoURL)
	if err != nil {
		return err
	}

	if flags.format == formatTable && flags.output == "" {
		printResult(res, repoURL)
		return nil
	}

	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	var w io.Writer = os.Stdout
	if flags.output != "" {
		f, err := os.Create(flags.output)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		w = f
	}

	if err := writeResult(w, res, flags.format); err != nil {
		return err
	}

	if flags.output != "" {
		prog.done(fmt.Sprintf("Wrote %s report", flags.format))
		printFile(flags.output)
	}
	return nil
}

// writeResult writes res in any format, including the plain table.
func writeResult(w io.Writer, res *inspect.Result, format string) error {
	if format == formatTable {
		_, err := fmt.Fprintln(w, renderTable(res))
		return err
	}
	return report.Write(w, res, format)
}

// inspect runs one inspection behind a spinner that follows the run's state.
func (c *CLI) inspect(ctx context.Context, repoURL string) (*inspect.Result, error) {
	runner := c.newRunner()
	spinner := newSpinnerWithContext(ctx, "Parsing repository URL...")
	runner.Progress = func(s inspect.State) {
		if msg, ok := stateMessages[s]; ok {
			spinner.SetMessage(msg)
		}
	}

	spinner.Start()
	res, err := runner.Run(ctx, repoURL)
	if err != nil {
		spinner.StopWithError(errors.UserMessage(err))
		return nil, err
	}
	spinner.Stop()
	return res, nil
}

func printResult(res *inspect.Result, repoURL string) {
	printSuccess("%s %s", StyleTitle.Render(res.Repository()), StyleDim.Render(res.FileType))
	if len(res.Dependencies) == 0 {
		printInfo("No dependencies declared")
		return
	}

	fmt.Println(renderTable(res))
	printStats(len(res.Dependencies), res.Outdated(), len(res.Vulnerable()), res.Duration.Round(time.Millisecond).String())

	switch {
	case res.AlertsDisabled:
		printWarning("%s", res.AlertsMessage)
	case len(res.Vulnerable()) > 0:
		printDetail("%s", deps.SeveritySummary(res.Dependencies))
	}

	printNewline()
	printNextStep("Ask Gemini about these results", "depscope chat "+repoURL)
}
