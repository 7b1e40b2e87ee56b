package llm_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"local-llm/backend/internal/llm"
)

// These tests use `net/http/httptest` to stand in for the Ollama API, so the
// client's request construction and failure handling can be verified without
// a running inference service. The provider's contract is that no failure
// ever surfaces as an error: everything collapses into a displayable value.

func TestOllamaProvider_CheckStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Running", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/tags", r.URL.Path)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		provider := llm.NewOllamaProvider(server.URL)
		assert.True(t, provider.CheckStatus(ctx))
	})

	t.Run("Non-200 status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		provider := llm.NewOllamaProvider(server.URL)
		assert.False(t, provider.CheckStatus(ctx))
	})

	t.Run("Service down", func(t *testing.T) {
		// Closing the server before the call simulates a connection failure.
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		provider := llm.NewOllamaProvider(server.URL)
		assert.False(t, provider.CheckStatus(ctx))
	})
}

func TestOllamaProvider_ListModels(t *testing.T) {
	ctx := context.Background()

	t.Run("Success preserves order", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/api/tags", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"models":[{"name":"llama2"},{"name":"mistral"}]}`))
		}))
		defer server.Close()

		provider := llm.NewOllamaProvider(server.URL)
		assert.Equal(t, []string{"llama2", "mistral"}, provider.ListModels(ctx))
	})

	t.Run("Non-200 status returns empty list", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		provider := llm.NewOllamaProvider(server.URL)
		assert.Empty(t, provider.ListModels(ctx))
	})

	t.Run("Malformed body returns empty list", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		}))
		defer server.Close()

		provider := llm.NewOllamaProvider(server.URL)
		assert.Empty(t, provider.ListModels(ctx))
	})

	t.Run("Service down returns empty list", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		provider := llm.NewOllamaProvider(server.URL)
		assert.Empty(t, provider.ListModels(ctx))
	})
}

func TestOllamaProvider_Generate(t *testing.T) {
	ctx := context.Background()

	// capturedBody records the request our client actually sent, so the
	// prompt-construction rules can be asserted against the wire format.
	type generatePayload struct {
		Model  string `json:"model"`
		Prompt string `json:"prompt"`
		Stream bool   `json:"stream"`
	}

	newCapturingServer := func(t *testing.T, captured *generatePayload, respBody string) *httptest.Server {
		return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/api/generate", r.URL.Path)

			raw, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			require.NoError(t, json.Unmarshal(raw, captured))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(respBody))
		}))
	}

	t.Run("Context is prepended with a blank line", func(t *testing.T) {
		var captured generatePayload
		server := newCapturingServer(t, &captured, `{"response":"Hi there"}`)
		defer server.Close()

		provider := llm.NewOllamaProvider(server.URL)
		result := provider.Generate(ctx, "Hello", "llama2", "some document text")

		assert.Equal(t, "Hi there", result)
		assert.Equal(t, "some document text\n\nHello", captured.Prompt)
		assert.Equal(t, "llama2", captured.Model)
		assert.False(t, captured.Stream)
	})

	t.Run("Empty context sends the prompt verbatim", func(t *testing.T) {
		var captured generatePayload
		server := newCapturingServer(t, &captured, `{"response":"ok"}`)
		defer server.Close()

		provider := llm.NewOllamaProvider(server.URL)
		provider.Generate(ctx, "Hello", "mistral", "")

		assert.Equal(t, "Hello", captured.Prompt)
	})

	t.Run("Missing response field yields empty string", func(t *testing.T) {
		var captured generatePayload
		server := newCapturingServer(t, &captured, `{"done":true}`)
		defer server.Close()

		provider := llm.NewOllamaProvider(server.URL)
		assert.Equal(t, "", provider.Generate(ctx, "Hello", "llama2", ""))
	})

	t.Run("Non-200 status yields the fixed error string", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		provider := llm.NewOllamaProvider(server.URL)
		assert.Equal(t, llm.GenerationErrorMessage, provider.Generate(ctx, "Hello", "llama2", ""))
	})

	t.Run("Network failure yields an error string with detail", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		serverURL := server.URL
		server.Close()

		provider := llm.NewOllamaProvider(serverURL)
		result := provider.Generate(ctx, "Hello", "llama2", "")

		assert.Contains(t, result, "Error: ")
		assert.Contains(t, result, "connection refused")
	})

	t.Run("Malformed 200 body yields an error string", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`not json`))
		}))
		defer server.Close()

		provider := llm.NewOllamaProvider(server.URL)
		assert.Contains(t, provider.Generate(ctx, "Hello", "llama2", ""), "Error: ")
	})
}
