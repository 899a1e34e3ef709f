package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/credlab/veracity/internal/model"
	"github.com/credlab/veracity/internal/pipeline"
	"github.com/credlab/veracity/internal/sentiment"
	"github.com/credlab/veracity/internal/worker"
)

var (
	outJSON    string
	outMD      string
	timeout    time.Duration
	userAgent  string
	maxBytes   int64
	noCache    bool
	sourceURL  string
	httpProxy  string
	httpsProxy string
	llmEnabled bool
	llmModel   string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <text-or-url>",
	Short: "Score the credibility of a text or a fetched article",
	Long: `Analyze scores a single input:
- A URL (http:// or https://) is fetched and its article text extracted
- Anything else is treated as the text to score directly

Example:
  veracity analyze "According to NASA, temperatures have risen 1.1°C"
  veracity analyze https://example.com/article --json result.json
  veracity analyze https://example.com/article --llm --llm-model gpt-4o-mini`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&outJSON, "json", "", "output JSON path (optional)")
	analyzeCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	analyzeCmd.Flags().StringVar(&sourceURL, "source-url", "", "attribute text input to a source URL for domain trust")

	analyzeCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall analysis timeout")
	analyzeCmd.Flags().StringVar(&userAgent, "ua", "Veracity/0.1 (+https://github.com/credlab/veracity)", "HTTP User-Agent")
	analyzeCmd.Flags().Int64Var(&maxBytes, "max-bytes", 2_000_000, "max response bytes to read")
	analyzeCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable cache (force fresh fetch)")
	analyzeCmd.Flags().StringVar(&httpProxy, "http-proxy", "", "HTTP proxy URL (overrides HTTP_PROXY env var)")
	analyzeCmd.Flags().StringVar(&httpsProxy, "https-proxy", "", "HTTPS proxy URL (overrides HTTPS_PROXY env var)")

	analyzeCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM summary generation")
	analyzeCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

// buildConfig assembles the effective configuration from flags
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	cfg.HTTP.Timeout = timeout
	cfg.HTTP.UserAgent = userAgent
	cfg.HTTP.MaxBodyBytes = maxBytes
	cfg.HTTP.HTTPProxy = httpProxy
	cfg.HTTP.HTTPSProxy = httpsProxy
	cfg.Cache.Enabled = !noCache
	cfg.Output.Verbose = verbose

	if llmEnabled {
		cfg.LLM.Provider = "openai"
		cfg.LLM.Model = llmModel
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	}

	return cfg, nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	input := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	analyzer, err := pipeline.NewAnalyzer(cfg, sentiment.NewVADER())
	if err != nil {
		return fmt.Errorf("create analyzer: %w", err)
	}

	var result model.CredibilityResult
	var subject string
	if worker.IsURL(input) {
		if verbose {
			fmt.Fprintf(os.Stderr, "Fetching: %s\n", input)
		}
		result = analyzer.AnalyzeURL(ctx, input)
		subject = input
	} else {
		result = analyzer.AnalyzeText(ctx, model.AnalysisInput{
			Text:      input,
			SourceURL: sourceURL,
		})
	}

	renderer := pipeline.NewRenderer(verbose)
	if outJSON != "" {
		if err := renderer.RenderJSON(result, outJSON); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
	}
	if outMD != "" {
		if err := renderer.RenderMarkdown(result, subject, outMD); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
	}
	renderer.RenderSummary(result)

	if llmEnabled {
		summary, err := analyzer.Summarize(ctx, result)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: LLM summary generation failed: %v\n", err)
		} else if summary != "" {
			fmt.Printf("\nSummary:\n%s\n", summary)
		}
	}

	return nil
}
