package cli

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/credlab/veracity/internal/pipeline"
	"github.com/credlab/veracity/internal/sentiment"
	"github.com/credlab/veracity/internal/worker"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Analyze multiple inputs from a file in parallel",
	Long: `Batch processes multiple inputs concurrently:
- Read inputs from a file (one text or URL per line, # for comments)
- Analyze them in parallel with a configurable worker count
- Write an individual JSON result per input

Example:
  veracity batch inputs.txt
  veracity batch inputs.txt --concurrency 10 --output-dir ./results`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./veracity-results", "output directory for results")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")

	// Shared fetch and LLM flags, mirrored from analyze
	batchCmd.Flags().DurationVar(&timeout, "fetch-timeout", 30*time.Second, "timeout for individual fetches")
	batchCmd.Flags().StringVar(&userAgent, "ua", "Veracity/0.1 (+https://github.com/credlab/veracity)", "HTTP User-Agent")
	batchCmd.Flags().Int64Var(&maxBytes, "max-bytes", 2_000_000, "max response bytes to read")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable cache (force fresh fetch)")
	batchCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM summary generation")
	batchCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	cfg.Concurrency.BatchWorkers = concurrency

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	analyzer, err := pipeline.NewAnalyzer(cfg, sentiment.NewVADER())
	if err != nil {
		return fmt.Errorf("create analyzer: %w", err)
	}

	processor := worker.NewBatchProcessor(analyzer, concurrency)

	results, err := processor.ProcessFile(ctx, file)
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Processed %d inputs with %d workers\n\n", len(results), concurrency)

	renderer := pipeline.NewRenderer(verbose)
	failures := 0
	for _, result := range results {
		if result.Error != nil {
			failures++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", truncateInput(result.Input), result.Error)
			continue
		}

		jsonPath := filepath.Join(outputDir, resultFilename(result.Input))
		if err := renderer.RenderJSON(result.Result, jsonPath); err != nil {
			failures++
			fmt.Fprintf(os.Stderr, "✗ %s: write result: %v\n", truncateInput(result.Input), err)
			continue
		}

		fmt.Fprintf(os.Stderr, "✓ %s (score: %.2f)\n", truncateInput(result.Input), result.Result.Score)
	}

	fmt.Fprintf(os.Stderr, "\nTotal: %d, failures: %d, output: %s\n", len(results), failures, outputDir)

	return nil
}

// resultFilename derives a stable file name from the input
func resultFilename(input string) string {
	sum := sha256.Sum256([]byte(input))
	return hex.EncodeToString(sum[:8]) + ".json"
}

func truncateInput(input string) string {
	if len(input) > 60 {
		return input[:57] + "..."
	}
	return input
}
