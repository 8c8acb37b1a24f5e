package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const (
	defaultModel       = "gemini-2.5-flash"
	defaultTemperature = 0.3
	jsonMIMEType       = "application/json"

	systemInstruction = "You are an expert resume analyst and career coach. " +
		"Provide detailed, actionable feedback to help improve resumes for better job prospects."
)

type modelsAPI interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Generator wraps the Google GenAI client and asks for JSON replies.
type Generator struct {
	models    modelsAPI
	modelName string
	config    *genai.GenerateContentConfig
}

// NewGenerator creates a new Generator configured for the Gemini API backend.
func NewGenerator(ctx context.Context, apiKey, model string) (*Generator, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return newGenerator(client.Models, model), nil
}

func newGenerator(models modelsAPI, model string) *Generator {
	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}

	return &Generator{
		models:    models,
		modelName: model,
		config: &genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
			Temperature:       genai.Ptr[float32](defaultTemperature),
			ResponseMIMEType:  jsonMIMEType,
		},
	}
}

// GenerateContent sends the prompt to Gemini and returns the concatenated text of the reply.
func (g *Generator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if g == nil || g.models == nil {
		return "", errors.New("gemini generator is not initialized")
	}

	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", errors.New("prompt must not be empty")
	}

	resp, err := g.models.GenerateContent(ctx, g.modelName, genai.Text(prompt), g.config)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	if resp == nil {
		return "", errors.New("gemini api returned no response")
	}

	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			text := strings.TrimSpace(part.Text)
			if text == "" {
				continue
			}
			if builder.Len() > 0 {
				builder.WriteString("\n")
			}
			builder.WriteString(text)
		}
	}

	output := strings.TrimSpace(builder.String())
	if output == "" {
		return "", errors.New("gemini api returned empty response")
	}

	return output, nil
}

// Model returns the configured model name.
func (g *Generator) Model() string {
	if g == nil {
		return ""
	}
	return g.modelName
}
