package advisor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClient implements Client using Google's Gemini API.
type GeminiClient struct {
	client  *genai.Client
	modelID string
}

// NewGeminiClient creates a new Gemini advisor client.
func NewGeminiClient(ctx context.Context, apiKey, modelID string) (*GeminiClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("advisor: gemini api key is required")
	}
	if strings.TrimSpace(modelID) == "" {
		modelID = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("advisor: failed to create gemini client: %w", err)
	}

	return &GeminiClient{client: client, modelID: modelID}, nil
}

// AnalyzeSymptoms runs the differential-diagnosis prompt.
func (c *GeminiClient) AnalyzeSymptoms(ctx context.Context, symptoms string) (string, error) {
	if strings.TrimSpace(symptoms) == "" {
		return "", ErrEmptyPrompt
	}
	model := c.model(symptomSystemPrompt)
	resp, err := model.GenerateContent(ctx, genai.Text(symptoms))
	if err != nil {
		return "", fmt.Errorf("advisor: symptom analysis failed: %w", err)
	}
	return extractText(resp)
}

// Ask answers a health question, replaying prior session turns as history.
func (c *GeminiClient) Ask(ctx context.Context, query string, history []Turn) (string, error) {
	if strings.TrimSpace(query) == "" {
		return "", ErrEmptyPrompt
	}

	model := c.model(askSystemPrompt)
	cs := model.StartChat()
	for _, turn := range history {
		content := strings.TrimSpace(turn.Content)
		if content == "" {
			continue
		}
		role := "user"
		if turn.Role == RoleAssistant {
			role = "model"
		}
		cs.History = append(cs.History, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(content)},
		})
	}

	resp, err := cs.SendMessage(ctx, genai.Text(query))
	if err != nil {
		return "", fmt.Errorf("advisor: ask failed: %w", err)
	}
	return extractText(resp)
}

// AnalyzeReport sends the raw document alongside the extraction prompt.
func (c *GeminiClient) AnalyzeReport(ctx context.Context, document []byte, mimeType string) (string, error) {
	if len(document) == 0 {
		return "", ErrEmptyDocument
	}
	if strings.TrimSpace(mimeType) == "" {
		return "", errors.New("advisor: document mime type is required")
	}

	model := c.client.GenerativeModel(c.modelID)
	resp, err := model.GenerateContent(ctx,
		genai.Blob{MIMEType: mimeType, Data: document},
		genai.Text(reportAnalysisPrompt),
	)
	if err != nil {
		return "", fmt.Errorf("advisor: report analysis failed: %w", err)
	}
	return extractText(resp)
}

// Close releases resources held by the Gemini client.
func (c *GeminiClient) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

func (c *GeminiClient) model(systemPrompt string) *genai.GenerativeModel {
	model := c.client.GenerativeModel(c.modelID)
	model.SystemInstruction = genai.NewUserContent(genai.Text(systemPrompt))
	return model
}

func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if len(resp.Candidates) == 0 {
		return "", errors.New("advisor: gemini returned no candidates")
	}
	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return "", errors.New("advisor: gemini returned empty content")
	}

	var out strings.Builder
	for _, part := range candidate.Content.Parts {
		if text, ok := part.(genai.Text); ok {
			out.WriteString(string(text))
		}
	}
	return strings.TrimSpace(out.String()), nil
}
