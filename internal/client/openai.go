package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/DanRulev/uniprep.git/internal/config"
	"github.com/DanRulev/uniprep.git/internal/models"
)

var (
	ErrNoAPIKey    = errors.New("ai api key is not set")
	ErrEmptyOutput = errors.New("ai returned no output text")
)

// OpenAI talks to the responses endpoint and asks for json_schema formatted
// output, so every answer is a single JSON object.
type OpenAI struct {
	apiKey  string
	baseURL string
	model   string
	http    *http.Client
}

func NewOpenAI(cfg config.AIConfig) *OpenAI {
	return &OpenAI{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		model:   cfg.Model,
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

type responseFormat struct {
	Type   string         `json:"type"`
	Name   string         `json:"name"`
	Schema map[string]any `json:"schema"`
	Strict bool           `json:"strict"`
}

type responseRequest struct {
	Model        string `json:"model"`
	Instructions string `json:"instructions"`
	Input        string `json:"input"`
	Text         struct {
		Format responseFormat `json:"format"`
	} `json:"text"`
}

type responseBody struct {
	Output []struct {
		Type    string `json:"type"`
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	} `json:"output"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// SupportMessage asks for a short motivational note on an entry test result.
func (o *OpenAI) SupportMessage(ctx context.Context, taskNum, correct int) (string, error) {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"message": map[string]any{"type": "string"},
		},
		"required":             []string{"message"},
		"additionalProperties": false,
	}

	var out struct {
		Message string `json:"message"`
	}
	err := o.respond(ctx,
		"Generate a short motivational message for a student based on test results.",
		fmt.Sprintf("Total tasks: %d, correct answers: %d", taskNum, correct),
		"support_message", schema, &out)
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(out.Message) == "" {
		return "", ErrEmptyOutput
	}

	return strings.TrimSpace(out.Message), nil
}

// OrderTopics asks for the order the topics should be studied in and returns
// topic ids as the model sent them.
func (o *OpenAI) OrderTopics(ctx context.Context, topics []models.TopicRef) ([]string, error) {
	input, err := json.Marshal(topics)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal topics: %w", err)
	}

	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"ids": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required":             []string{"ids"},
		"additionalProperties": false,
	}

	var out struct {
		IDs []string `json:"ids"`
	}
	if err := o.respond(ctx, "Sort topics by chronology", string(input), "sorted_topics", schema, &out); err != nil {
		return nil, err
	}

	return out.IDs, nil
}

func (o *OpenAI) respond(ctx context.Context, instructions, input, name string, schema map[string]any, dest any) error {
	if o.apiKey == "" {
		return ErrNoAPIKey
	}

	reqBody := responseRequest{
		Model:        o.model,
		Instructions: instructions,
		Input:        input,
	}
	reqBody.Text.Format = responseFormat{Type: "json_schema", Name: name, Schema: schema, Strict: true}

	data, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL+"/responses", bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+o.apiKey)

	resp, err := o.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	var body responseBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	if body.Error != nil {
		return fmt.Errorf("api error: %s", body.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("api status %d", resp.StatusCode)
	}

	text := outputText(body)
	if text == "" {
		return ErrEmptyOutput
	}

	if err := json.Unmarshal([]byte(text), dest); err != nil {
		return fmt.Errorf("failed to parse %s output: %w", name, err)
	}

	return nil
}

func outputText(body responseBody) string {
	var sb strings.Builder
	for _, item := range body.Output {
		if item.Type != "message" {
			continue
		}
		for _, c := range item.Content {
			if c.Type == "output_text" {
				sb.WriteString(c.Text)
			}
		}
	}
	return sb.String()
}
