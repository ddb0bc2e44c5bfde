package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/extraction"
	"github.com/jonathan/resume-screener/internal/ingestion"
	"github.com/jonathan/resume-screener/internal/logger"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract structured signals from a single resume or job description",
	Long:  "Extract reads one document, pulls out canonical skills, years of experience, seniority, and education level, and prints the result as JSON.",
	RunE:  runExtract,
}

var (
	extractInputFile string
	extractAPIKey    string
	extractUseNER    bool
)

func init() {
	extractCmd.Flags().StringVarP(&extractInputFile, "in", "i", "", "Path to document (pdf, docx, txt, html)")
	extractCmd.Flags().StringVar(&extractAPIKey, "api-key", "", "Gemini API key (only needed with --use-ner)")
	extractCmd.Flags().BoolVar(&extractUseNER, "use-ner", false, "Recognize organization names")
	_ = extractCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, _ []string) error {
	text := ingestion.CleanText(ingestion.ExtractText(extractInputFile))
	if text == "" {
		return fmt.Errorf("no text could be extracted from %s", extractInputFile)
	}

	log, err := logger.New(false, false)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx := context.Background()

	opts := []extraction.Option{extraction.WithLogger(log)}
	if extractUseNER {
		apiKey := extractAPIKey
		if apiKey == "" {
			apiKey = os.Getenv("GEMINI_API_KEY")
		}
		if apiKey == "" {
			return fmt.Errorf("API key is required with --use-ner (set GEMINI_API_KEY or use --api-key)")
		}
		recognizer, err := extraction.NewGeminiRecognizer(ctx, apiKey)
		if err != nil {
			return fmt.Errorf("failed to create recognizer: %w", err)
		}
		defer func() { _ = recognizer.Close() }()
		opts = append(opts, extraction.WithRecognizer(recognizer))
	}

	profile := extraction.New(opts...).Extract(ctx, text)

	jsonBytes, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}
	fmt.Fprintln(os.Stdout, string(jsonBytes))

	return nil
}
