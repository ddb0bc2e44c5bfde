package extraction

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// Recognizer extracts organization names from text. Implementations are
// best-effort: the extractor treats any error as "no organizations".
type Recognizer interface {
	Organizations(ctx context.Context, text string) ([]string, error)
}

// NoopRecognizer is the default Recognizer; it never finds anything.
type NoopRecognizer struct{}

// Organizations always returns an empty result.
func (NoopRecognizer) Organizations(_ context.Context, _ string) ([]string, error) {
	return nil, nil
}

// recognizerModel is a small model tier; organization spotting is a simple
// extraction task.
const recognizerModel = "gemini-2.5-flash-lite"

const recognizerPrompt = `List the names of companies, universities, and other organizations mentioned in the following text.
Respond with a JSON array of strings and nothing else. Respond with [] if there are none.

Text:
%s`

// GeminiRecognizer extracts organization names with the Gemini API.
type GeminiRecognizer struct {
	client *genai.Client
	model  string
}

// NewGeminiRecognizer creates a Gemini-backed Recognizer.
func NewGeminiRecognizer(ctx context.Context, apiKey string) (*GeminiRecognizer, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiRecognizer{client: client, model: recognizerModel}, nil
}

// Organizations asks the model for a JSON array of organization names.
func (r *GeminiRecognizer) Organizations(ctx context.Context, text string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	model := r.client.GenerativeModel(r.model)
	model.SetTemperature(0.1)
	model.ResponseMIMEType = "application/json"

	resp, err := model.GenerateContent(ctx, genai.Text(fmt.Sprintf(recognizerPrompt, text)))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	raw, err := textFromResponse(resp)
	if err != nil {
		return nil, err
	}

	var orgs []string
	if err := json.Unmarshal([]byte(cleanJSONBlock(raw)), &orgs); err != nil {
		return nil, fmt.Errorf("failed to parse organization list: %w", err)
	}

	// Deduplicate while dropping empty entries
	seen := make(map[string]bool, len(orgs))
	result := make([]string, 0, len(orgs))
	for _, org := range orgs {
		org = strings.TrimSpace(org)
		if org == "" || seen[org] {
			continue
		}
		seen[org] = true
		result = append(result, org)
	}
	return result, nil
}

// Close releases the underlying API client.
func (r *GeminiRecognizer) Close() error {
	if r.client != nil {
		return r.client.Close()
	}
	return nil
}

// textFromResponse extracts the text parts from a Gemini response.
func textFromResponse(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", fmt.Errorf("no candidates in response")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content in response")
	}

	var parts []string
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			parts = append(parts, string(text))
		}
	}

	if len(parts) == 0 {
		return "", fmt.Errorf("no text parts in response")
	}

	return strings.Join(parts, ""), nil
}

// cleanJSONBlock removes markdown code block wrappers from JSON.
func cleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
