package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/config"
	"github.com/jonathan/resume-screener/internal/extraction"
	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/logger"
	"github.com/jonathan/resume-screener/internal/matching"
	"github.com/jonathan/resume-screener/internal/observability"
	"github.com/jonathan/resume-screener/internal/ranking"
	"github.com/jonathan/resume-screener/internal/report"
)

var screenCmd = &cobra.Command{
	Use:   "screen",
	Short: "Rank a directory of resumes against a job description",
	Long:  "Screen loads every resume in a directory, scores each against the job description using semantic similarity plus extracted skills, experience, and education, and prints the ranked results.",
	RunE:  runScreen,
}

var (
	screenJobFile    string
	screenResumesDir string
	screenConfigFile string
	screenAPIKey     string
	screenWorkers    int
	screenVerbose    bool
	screenUseNER     bool
	screenOutputFile string
	screenReportFile string
)

func init() {
	screenCmd.Flags().StringVarP(&screenJobFile, "job", "j", "", "Path to job description file")
	screenCmd.Flags().StringVarP(&screenResumesDir, "resumes", "r", "", "Path to resume directory")
	screenCmd.Flags().StringVarP(&screenConfigFile, "config", "c", "", "Path to JSON config file")
	screenCmd.Flags().StringVar(&screenAPIKey, "api-key", "", "Gemini API key (overrides GEMINI_API_KEY env var)")
	screenCmd.Flags().IntVar(&screenWorkers, "workers", 0, "Concurrent embedding calls")
	screenCmd.Flags().BoolVarP(&screenVerbose, "verbose", "v", false, "Print extracted requirements and per-candidate profiles")
	screenCmd.Flags().BoolVar(&screenUseNER, "use-ner", false, "Recognize organization names in resumes")
	screenCmd.Flags().StringVarP(&screenOutputFile, "output", "o", "", "Write ranked results as JSON to this file")
	screenCmd.Flags().StringVar(&screenReportFile, "report", "", "Write an HTML report to this file")

	rootCmd.AddCommand(screenCmd)
}

func runScreen(_ *cobra.Command, _ []string) error {
	cfg := config.Config{
		Job:     screenJobFile,
		Resumes: screenResumesDir,
		APIKey:  screenAPIKey,
		Workers: screenWorkers,
		Verbose: screenVerbose,
		UseNER:  screenUseNER,
	}

	if screenConfigFile != "" {
		fileCfg, err := config.LoadConfig(screenConfigFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.Job == "" {
		return fmt.Errorf("job description is required (use --job or config file)")
	}
	if cfg.Resumes == "" {
		return fmt.Errorf("resume directory is required (use --resumes or config file)")
	}

	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key flag)")
	}

	log, err := logger.New(false, cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx := context.Background()

	jobText := ingestion.CleanText(ingestion.ExtractText(cfg.Job))
	if jobText == "" {
		return fmt.Errorf("no text could be extracted from job description: %s", cfg.Job)
	}

	resumes, err := ingestion.LoadResumes(cfg.Resumes, log)
	if err != nil {
		return fmt.Errorf("failed to load resumes: %w", err)
	}
	if len(resumes) == 0 {
		return fmt.Errorf("no readable resumes found in %s", cfg.Resumes)
	}

	embedder, err := matching.NewGeminiEmbedder(ctx, apiKey)
	if err != nil {
		return fmt.Errorf("failed to create embedding client: %w", err)
	}
	defer func() { _ = embedder.Close() }()

	extractorOpts := []extraction.Option{extraction.WithLogger(log)}
	if cfg.UseNER {
		recognizer, err := extraction.NewGeminiRecognizer(ctx, apiKey)
		if err != nil {
			return fmt.Errorf("failed to create recognizer: %w", err)
		}
		defer func() { _ = recognizer.Close() }()
		extractorOpts = append(extractorOpts, extraction.WithRecognizer(recognizer))
	}
	extractor := extraction.New(extractorOpts...)

	matcher := matching.NewMatcher(embedder, cfg.Workers)
	ranker := ranking.NewRanker(extractor)

	matches, err := matcher.Match(ctx, jobText, resumes)
	if err != nil {
		return fmt.Errorf("similarity scoring failed: %w", err)
	}

	ranked := ranker.Rank(ctx, matches, jobText)

	printer := observability.NewPrinter(os.Stdout)
	if cfg.Verbose {
		printer.PrintRequirements(ranker.Requirements(ctx, jobText))
		for _, r := range resumes {
			printer.PrintProfile(r.Name, extractor.Extract(ctx, r.Text))
		}
	}
	printer.PrintRanked(ranked)

	if screenOutputFile != "" {
		jsonBytes, err := json.MarshalIndent(ranked, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal results: %w", err)
		}
		if err := os.WriteFile(screenOutputFile, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Results written to %s\n", screenOutputFile)
	}

	if screenReportFile != "" {
		f, err := os.Create(screenReportFile)
		if err != nil {
			return fmt.Errorf("failed to create report file: %w", err)
		}
		defer func() { _ = f.Close() }()
		if err := report.WriteHTML(f, "Screening Report", ranked); err != nil {
			return fmt.Errorf("failed to render report: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Report written to %s\n", screenReportFile)
	}

	return nil
}
