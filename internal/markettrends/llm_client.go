package markettrends

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go-apg/internal/config"

	"github.com/goccy/go-json"
)

const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"

	defaultOpenAIBaseURL    = "https://api.openai.com/v1"
	defaultAnthropicBaseURL = "https://api.anthropic.com/v1"
	anthropicVersion        = "2023-06-01"
	anthropicMaxTokens      = 2048
	defaultOpenAIModel      = "gpt-4o"
	defaultAnthropicModel   = "claude-3-5-sonnet-latest"
	maxErrorBodyBytes       = 512
)

// LLMClient sends one system + user prompt pair and returns the raw text answer.
type LLMClient interface {
	Provider() string
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// NewLLMClient picks the REST client for cfg.Provider. baseURL overrides the
// provider endpoint when non-empty.
func NewLLMClient(cfg config.LLMConfig, httpClient *http.Client, baseURL string) (LLMClient, error) {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case ProviderAnthropic:
		if cfg.AnthropicAPIKey == "" {
			return nil, fmt.Errorf("llm: anthropic api key is not configured")
		}
		if baseURL == "" {
			baseURL = defaultAnthropicBaseURL
		}
		model := cfg.Model
		if model == "" {
			model = defaultAnthropicModel
		}
		return &anthropicClient{http: httpClient, baseURL: baseURL, apiKey: cfg.AnthropicAPIKey, model: model}, nil
	case ProviderOpenAI, "":
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("llm: openai api key is not configured")
		}
		if baseURL == "" {
			baseURL = defaultOpenAIBaseURL
		}
		model := cfg.Model
		if model == "" {
			model = defaultOpenAIModel
		}
		return &openAIClient{http: httpClient, baseURL: baseURL, apiKey: cfg.OpenAIAPIKey, model: model}, nil
	default:
		return nil, fmt.Errorf("llm: unknown provider %q", cfg.Provider)
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type openAIResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

type openAIClient struct {
	http    *http.Client
	baseURL string
	apiKey  string
	model   string
}

func (c *openAIClient) Provider() string { return ProviderOpenAI }

func (c *openAIClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	payload := openAIRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: 0.2,
	}

	headers := map[string]string{"Authorization": "Bearer " + c.apiKey}
	var out openAIResponse
	if err := postJSON(ctx, c.http, c.baseURL+"/chat/completions", headers, payload, &out); err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if out.Error != nil {
		return "", fmt.Errorf("openai: %s", out.Error.Message)
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("openai: empty completion")
	}
	return strings.TrimSpace(out.Choices[0].Message.Content), nil
}

type anthropicRequest struct {
	Model     string        `json:"model"`
	MaxTokens int           `json:"max_tokens"`
	System    string        `json:"system,omitempty"`
	Messages  []chatMessage `json:"messages"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

type anthropicClient struct {
	http    *http.Client
	baseURL string
	apiKey  string
	model   string
}

func (c *anthropicClient) Provider() string { return ProviderAnthropic }

func (c *anthropicClient) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	payload := anthropicRequest{
		Model:     c.model,
		MaxTokens: anthropicMaxTokens,
		System:    systemPrompt,
		Messages:  []chatMessage{{Role: "user", Content: userPrompt}},
	}

	headers := map[string]string{
		"x-api-key":         c.apiKey,
		"anthropic-version": anthropicVersion,
	}
	var out anthropicResponse
	if err := postJSON(ctx, c.http, c.baseURL+"/messages", headers, payload, &out); err != nil {
		return "", fmt.Errorf("anthropic: %w", err)
	}
	if out.Error != nil {
		return "", fmt.Errorf("anthropic: %s: %s", out.Error.Type, out.Error.Message)
	}
	for _, block := range out.Content {
		if block.Type == "text" {
			return strings.TrimSpace(block.Text), nil
		}
	}
	return "", fmt.Errorf("anthropic: no text block in response")
}

func postJSON(ctx context.Context, client *http.Client, url string, headers map[string]string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if len(raw) > maxErrorBodyBytes {
			raw = raw[:maxErrorBodyBytes]
		}
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(raw))
	}
	return json.Unmarshal(raw, out)
}
