package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/credlab/veracity/internal/model"
)

// Analyzer defines the interface for analyzing a single input
type Analyzer interface {
	AnalyzeText(ctx context.Context, input model.AnalysisInput) model.CredibilityResult
	AnalyzeURL(ctx context.Context, url string) model.CredibilityResult
}

// AnalyzeJob represents a single analysis job. Input is either a URL
// or raw text to score.
type AnalyzeJob struct {
	Input    string
	Analyzer Analyzer
}

// Execute executes the analysis job
func (j *AnalyzeJob) Execute(ctx context.Context) Result {
	var result model.CredibilityResult
	if IsURL(j.Input) {
		result = j.Analyzer.AnalyzeURL(ctx, j.Input)
	} else {
		result = j.Analyzer.AnalyzeText(ctx, model.AnalysisInput{Text: j.Input})
	}
	return &AnalyzeResult{
		Input:  j.Input,
		Result: result,
	}
}

// AnalyzeResult represents the result of an analysis job
type AnalyzeResult struct {
	Input  string
	Result model.CredibilityResult
	Error  error
}

// GetError returns the error from the analysis result
func (r *AnalyzeResult) GetError() error {
	return r.Error
}

// IsURL reports whether the input should be fetched rather than
// scored directly.
func IsURL(input string) bool {
	return strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://")
}

// BatchProcessor processes multiple inputs concurrently
type BatchProcessor struct {
	analyzer    Analyzer
	concurrency int
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(analyzer Analyzer, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		analyzer:    analyzer,
		concurrency: concurrency,
	}
}

// ProcessInputs processes multiple inputs concurrently
func (b *BatchProcessor) ProcessInputs(ctx context.Context, inputs []string) []*AnalyzeResult {
	if len(inputs) == 0 {
		return []*AnalyzeResult{}
	}

	pool := NewPoolWithQueue(b.concurrency, len(inputs))
	pool.Start()

	for _, input := range inputs {
		job := &AnalyzeJob{
			Input:    input,
			Analyzer: b.analyzer,
		}
		pool.Submit(job)
	}

	results := pool.Wait()

	analyzeResults := make([]*AnalyzeResult, len(results))
	for i, result := range results {
		analyzeResults[i] = result.(*AnalyzeResult)
	}

	return analyzeResults
}

// ProcessFile reads inputs from a file and processes them concurrently
func (b *BatchProcessor) ProcessFile(ctx context.Context, filePath string) ([]*AnalyzeResult, error) {
	inputs, err := ReadInputsFromFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("read inputs: %w", err)
	}

	return b.ProcessInputs(ctx, inputs), nil
}

// ReadInputsFromFile reads inputs from a file (one per line)
func ReadInputsFromFile(filePath string) ([]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var inputs []string

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		inputs = append(inputs, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return inputs, nil
}
