package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/depscope/pkg/chat"
	"github.com/matzehuels/depscope/pkg/errors"
)

// chatCommand creates the chat command.
func (c *CLI) chatCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "chat <repo-url>",
		Short: "Inspect a repository, then chat about it with Gemini",
		Long: `Chat runs an inspection and opens an interactive conversation with Gemini.
Messages mentioning "dependencies" include the dependency list; messages
mentioning "vulnerabilities" include the vulnerable dependencies.

Requires a Gemini API key (GEMINI_API_KEY or gemini_api_key in the config file).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runChat(cmd.Context(), args[0])
		},
	}
}

func (c *CLI) runChat(ctx context.Context, repoURL string) error {
	if c.Config.GeminiAPIKey == "" {
		return errors.New(errors.ErrCodeInvalidInput, "no Gemini API key configured (set GEMINI_API_KEY)")
	}

	res, err := c.inspect(ctx, repoURL)
	if err != nil {
		return err
	}
	printSuccess("Inspected %s: %d dependencies, %d vulnerable", res.Repository(), len(res.Dependencies), len(res.Vulnerable()))

	gem := c.newGemini()
	c.Logger.Debug("starting chat", "model", gem.Model())

	session := chat.NewSession(gem, res.Dependencies)
	m := newChatModel(ctx, session, "depscope chat · "+res.Repository())
	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}
