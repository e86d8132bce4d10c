package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/depscope/pkg/metrics"
	"github.com/matzehuels/depscope/pkg/observability"
	"github.com/matzehuels/depscope/pkg/server"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the inspection and chat HTTP API",
		Long: `Serve exposes inspections and Gemini chat sessions over HTTP, with
Prometheus metrics at /metrics. Chat sessions are kept in memory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = c.Config.ServerAddr
			}
			return c.runServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr string) error {
	collector := metrics.New()
	observability.SetInspectHooks(collector)
	observability.SetHTTPHooks(collector)
	defer observability.Reset()

	srv := server.New(c.newRunner(), c.newGemini(),
		server.WithLogger(c.Logger),
		server.WithMetrics(collector),
	)
	printSuccess("Serving depscope API")
	printKeyValue("Address", StyleLink.Render(displayURL(addr)))
	printKeyValue("Metrics", StyleLink.Render(displayURL(addr)+"/metrics"))
	if c.Config.GeminiAPIKey == "" {
		printWarning("No Gemini API key configured; chat requests will fail")
	}
	return srv.ListenAndServe(ctx, addr)
}

// displayURL turns a listen address like ":8080" into a clickable URL.
func displayURL(addr string) string {
	if strings.HasPrefix(addr, ":") {
		addr = "localhost" + addr
	}
	return "http://" + addr
}
