package extractor

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Config holds the OpenAI-compatible endpoint settings.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string // optional, for proxies and tests
}

// Client calls an OpenAI-compatible chat endpoint through langchaingo.
type Client struct {
	llm   *openai.LLM
	model string
}

var _ IExtractor = (*Client)(nil)

// NewClient builds the extraction client.
func NewClient(cfg Config) (*Client, error) {
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	opts := []openai.Option{
		openai.WithToken(cfg.APIKey),
		openai.WithModel(model),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
	}

	llm, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create openai client: %w", err)
	}
	return &Client{llm: llm, model: model}, nil
}

// Extract sends the capture text to the model and decodes the raw schema.
// Timezone and dayKey anchor the model's date resolution; they are also
// stamped onto the result so downstream code never trusts the echo.
func (c *Client) Extract(ctx context.Context, text, timezone, dayKey string) (RawSchema, error) {
	system := fmt.Sprintf(SystemPromptTemplate, dayKey, timezone)
	user := fmt.Sprintf("timezone: %s\ndate: %s\ntext:\n%s", timezone, dayKey, text)

	resp, err := c.llm.GenerateContent(ctx,
		[]llms.MessageContent{
			llms.TextParts(llms.ChatMessageTypeSystem, system),
			llms.TextParts(llms.ChatMessageTypeHuman, user),
		},
		llms.WithTemperature(0),
		llms.WithJSONMode(),
	)
	if err != nil {
		return RawSchema{}, fmt.Errorf("LLM request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return RawSchema{}, fmt.Errorf("empty response from LLM")
	}

	cleaned := sanitizeJSONResponse(resp.Choices[0].Content)

	var schema RawSchema
	if err := json.Unmarshal([]byte(cleaned), &schema); err != nil {
		return RawSchema{}, fmt.Errorf("failed to parse LLM JSON response: %w", err)
	}

	schema.Timezone = timezone
	schema.Date = dayKey
	return schema, nil
}

// sanitizeJSONResponse removes markdown code fences and leading/trailing
// prose that models add around JSON output.
func sanitizeJSONResponse(text string) string {
	re := regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")
	if matches := re.FindStringSubmatch(text); len(matches) > 1 {
		return strings.TrimSpace(matches[1])
	}

	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return text
	}
	end := strings.LastIndexAny(text, "]}")
	if end == -1 || end < start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}
