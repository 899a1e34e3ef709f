package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/credlab/veracity/internal/model"
	"github.com/credlab/veracity/internal/pipeline"
	"github.com/credlab/veracity/internal/sentiment"
	"github.com/credlab/veracity/internal/server"
)

var serveAddr string

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the credibility analysis HTTP API",
	Long: `Serve exposes the analysis pipeline over HTTP:

  POST /v1/analyze/text  {"text": "..."}
  POST /v1/analyze/url   {"url": "https://..."}
  GET  /healthz

Example:
  veracity serve
  veracity serve --addr :9090`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := model.DefaultConfig()
	cfg.Server.Addr = serveAddr
	cfg.Output.Verbose = verbose

	analyzer, err := pipeline.NewAnalyzer(cfg, sentiment.NewVADER())
	if err != nil {
		return fmt.Errorf("create analyzer: %w", err)
	}

	return server.New(cfg, analyzer).Run()
}
