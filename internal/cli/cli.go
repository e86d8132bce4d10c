// Package cli implements the depscope command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/depscope/pkg/buildinfo"
	"github.com/matzehuels/depscope/pkg/config"
	"github.com/matzehuels/depscope/pkg/deps/manifests"
	"github.com/matzehuels/depscope/pkg/inspect"
	"github.com/matzehuels/depscope/pkg/integrations/gemini"
	"github.com/matzehuels/depscope/pkg/integrations/github"
)

// =============================================================================
// Constants
// =============================================================================

const appName = "depscope"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config *config.Config

	configPath string
}

// New creates a new CLI instance with a default logger and configuration.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// Configuration is loaded before any subcommand runs.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "depscope inspects a GitHub repository's dependencies",
		Long:          `depscope finds a repository's dependency manifest, looks up the latest version of every dependency, and joins them with the repository's Dependabot alerts. Results can be printed, exported, served over HTTP, or discussed with Gemini.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			c.Config = cfg
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default ~/.config/depscope/config.toml)")

	root.AddCommand(c.inspectCommand())
	root.AddCommand(c.chatCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.versionCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Factories
// =============================================================================

// newGitHub creates a GitHub client from the loaded configuration.
func (c *CLI) newGitHub() *github.Client {
	if c.Config.GitHubToken == "" {
		c.Logger.Debug("no GitHub token configured; Dependabot alerts will likely be unavailable")
	}
	return github.NewClient(c.Config.GitHubToken, c.Config.GitHubAPIURL, c.Config.HTTPTimeout)
}

// newRunner creates an inspection runner for CLI use.
func (c *CLI) newRunner() *inspect.Runner {
	return inspect.NewRunner(c.newGitHub(), manifests.NewRegistries(c.Config.HTTPTimeout), c.Logger)
}

// newGemini creates a Gemini client from the loaded configuration.
func (c *CLI) newGemini() *gemini.Client {
	return gemini.NewClient(c.Config.GeminiAPIKey, c.Config.GeminiModel, c.Config.HTTPTimeout)
}

// skipConfig replaces the root pre-run for commands that must work without a
// readable config file.
func skipConfig(*cobra.Command, []string) error { return nil }
