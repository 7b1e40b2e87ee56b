package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"local-llm/backend/internal/metrics"
)

// GenerationErrorMessage is returned by Generate when the inference service
// answers with a non-200 status.
const GenerationErrorMessage = "Error: Unable to generate response"

// LLMProvider defines the interface for interacting with a language model.
//
// Every operation treats the inference service as unreliable and collapses
// all failure modes into displayable sentinel values (false, an empty list,
// or an error-carrying string). None of the methods return an error: the
// surrounding interaction is synchronous and must always produce something
// the host UI can render. There is no retry anywhere; each call is attempted
// exactly once.
type LLMProvider interface {
	CheckStatus(ctx context.Context) bool
	ListModels(ctx context.Context) []string
	Generate(ctx context.Context, prompt, model, docContext string) string
}

type ollamaProvider struct {
	client *http.Client
	url    string
}

// NewOllamaProvider builds a provider against the given base URL,
// e.g. "http://localhost:11434". The underlying client carries no timeout:
// a hung service hangs the turn until the context is cancelled.
func NewOllamaProvider(url string) LLMProvider {
	return &ollamaProvider{
		client: &http.Client{},
		url:    url,
	}
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	Response string `json:"response"`
}

type tagsResponse struct {
	Models []struct {
		Name string `json:"name"`
	} `json:"models"`
}

// CheckStatus reports whether the inference service answers its metadata
// endpoint with a success status.
func (p *ollamaProvider) CheckStatus(ctx context.Context) bool {
	resp, err := p.getTags(ctx)
	if err != nil {
		slog.Debug("Ollama status check failed", "error", err)
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// ListModels returns the model names reported by the service, in the order
// the service lists them. Any failure yields an empty list.
func (p *ollamaProvider) ListModels(ctx context.Context) []string {
	resp, err := p.getTags(ctx)
	if err != nil {
		slog.Debug("Ollama model listing failed", "error", err)
		return []string{}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return []string{}
	}

	var tags tagsResponse
	if err := json.NewDecoder(resp.Body).Decode(&tags); err != nil {
		slog.Debug("Could not decode Ollama tags response", "error", err)
		return []string{}
	}

	names := make([]string, 0, len(tags.Models))
	for _, m := range tags.Models {
		names = append(names, m.Name)
	}
	return names
}

// Generate sends one non-streaming generation request and blocks until the
// service responds or the connection fails. When docContext is non-empty it
// is prepended to the prompt with a blank-line separator. The returned string
// is either the generated text (possibly empty) or an error message meant for
// direct display.
func (p *ollamaProvider) Generate(ctx context.Context, prompt, model, docContext string) string {
	fullPrompt := prompt
	if docContext != "" {
		fullPrompt = docContext + "\n\n" + prompt
	}

	body, err := json.Marshal(generateRequest{
		Model:  model,
		Prompt: fullPrompt,
		Stream: false,
	})
	if err != nil {
		return fmt.Sprintf("Error: %v", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url+"/api/generate", bytes.NewBuffer(body))
	if err != nil {
		return fmt.Sprintf("Error: %v", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := p.client.Do(httpReq)
	latencyMs := float64(time.Since(start).Milliseconds())
	if err != nil {
		metrics.GenerationObserved(model, false, latencyMs)
		slog.Warn("Generation request failed", "model", model, "error", err)
		return fmt.Sprintf("Error: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.GenerationObserved(model, false, latencyMs)
		slog.Warn("Generation returned non-200 status", "model", model, "status", resp.StatusCode)
		return GenerationErrorMessage
	}

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.GenerationObserved(model, false, latencyMs)
		return fmt.Sprintf("Error: %v", err)
	}

	var genResp generateResponse
	if err := json.Unmarshal(bodyBytes, &genResp); err != nil {
		metrics.GenerationObserved(model, false, latencyMs)
		slog.Warn("Could not decode generation response", "model", model, "error", err)
		return fmt.Sprintf("Error: %v", err)
	}

	metrics.GenerationObserved(model, true, latencyMs)
	return genResp.Response
}

func (p *ollamaProvider) getTags(ctx context.Context) (*http.Response, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url+"/api/tags", nil)
	if err != nil {
		return nil, err
	}
	return p.client.Do(httpReq)
}
