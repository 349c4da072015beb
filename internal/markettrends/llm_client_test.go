package markettrends

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-apg/internal/config"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAIClient_Complete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var body openAIRequest
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &body))
		assert.Equal(t, "gpt-4o", body.Model)
		require.Len(t, body.Messages, 2)
		assert.Equal(t, "system", body.Messages[0].Role)
		assert.Equal(t, "hello", body.Messages[1].Content)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"  {\"summary\":\"ok\"}  "}}]}`))
	}))
	defer srv.Close()

	client, err := NewLLMClient(config.LLMConfig{Provider: "openai", OpenAIAPIKey: "sk-test"}, srv.Client(), srv.URL)
	require.NoError(t, err)

	out, err := client.Complete(context.Background(), "sys", "hello")

	assert.NoError(t, err)
	assert.Equal(t, `{"summary":"ok"}`, out)
	assert.Equal(t, ProviderOpenAI, client.Provider())
}

func TestAnthropicClient_Complete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/messages", r.URL.Path)
		assert.Equal(t, "ak-test", r.Header.Get("x-api-key"))
		assert.Equal(t, anthropicVersion, r.Header.Get("anthropic-version"))

		var body anthropicRequest
		raw, _ := io.ReadAll(r.Body)
		require.NoError(t, json.Unmarshal(raw, &body))
		assert.Equal(t, "sys", body.System)
		assert.Equal(t, "claude-test", body.Model)

		_, _ = w.Write([]byte(`{"content":[{"type":"text","text":"{}"}]}`))
	}))
	defer srv.Close()

	client, err := NewLLMClient(config.LLMConfig{
		Provider:        "Anthropic",
		Model:           "claude-test",
		AnthropicAPIKey: "ak-test",
	}, srv.Client(), srv.URL)
	require.NoError(t, err)

	out, err := client.Complete(context.Background(), "sys", "hello")

	assert.NoError(t, err)
	assert.Equal(t, "{}", out)
}

func TestLLMClient_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"rate limited"}}`))
	}))
	defer srv.Close()

	client, err := NewLLMClient(config.LLMConfig{OpenAIAPIKey: "sk"}, srv.Client(), srv.URL)
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), "sys", "hello")

	assert.ErrorContains(t, err, "unexpected status 429")
}

func TestLLMClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	client, err := NewLLMClient(config.LLMConfig{OpenAIAPIKey: "sk", Timeout: 20 * time.Millisecond}, nil, srv.URL)
	require.NoError(t, err)

	_, err = client.Complete(context.Background(), "sys", "hello")

	assert.Error(t, err)
}

func TestNewLLMClient_Configuration(t *testing.T) {
	_, err := NewLLMClient(config.LLMConfig{Provider: "openai"}, nil, "")
	assert.Error(t, err)

	_, err = NewLLMClient(config.LLMConfig{Provider: "anthropic"}, nil, "")
	assert.Error(t, err)

	_, err = NewLLMClient(config.LLMConfig{Provider: "gemini", OpenAIAPIKey: "sk"}, nil, "")
	assert.Error(t, err)
}

func TestNewLLMClient_ProviderDefaultModelFromConfig(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("LLM_OPENAI_API_KEY", "sk")
	t.Setenv("LLM_ANTHROPIC_API_KEY", "ak")

	t.Run("anthropic", func(t *testing.T) {
		t.Setenv("LLM_PROVIDER", "anthropic")
		cfg, err := config.Load()
		require.NoError(t, err)

		client, err := NewLLMClient(cfg.LLM, nil, "")
		require.NoError(t, err)

		c, ok := client.(*anthropicClient)
		require.True(t, ok)
		assert.Equal(t, defaultAnthropicModel, c.model)
	})

	t.Run("openai", func(t *testing.T) {
		t.Setenv("LLM_PROVIDER", "openai")
		cfg, err := config.Load()
		require.NoError(t, err)

		client, err := NewLLMClient(cfg.LLM, nil, "")
		require.NoError(t, err)

		c, ok := client.(*openAIClient)
		require.True(t, ok)
		assert.Equal(t, defaultOpenAIModel, c.model)
	})

	t.Run("explicit model wins", func(t *testing.T) {
		t.Setenv("LLM_PROVIDER", "anthropic")
		t.Setenv("LLM_MODEL", "claude-custom")
		cfg, err := config.Load()
		require.NoError(t, err)

		client, err := NewLLMClient(cfg.LLM, nil, "")
		require.NoError(t, err)

		assert.Equal(t, "claude-custom", client.(*anthropicClient).model)
	})
}
