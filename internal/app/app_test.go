package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"local-llm/backend/internal/config"
	"local-llm/backend/internal/model"
)

func newTestConfig(ollamaURL string) *config.Config {
	return &config.Config{
		AppPort:        8000,
		DatabasePath:   ":memory:",
		OllamaURL:      ollamaURL,
		DefaultModel:   "llama2",
		FallbackModels: "llama2,codellama,mistral",
		MaxUploadBytes: 1 << 20,
		LogLevel:       "DEBUG",
	}
}

func TestNewApp(t *testing.T) {
	ollamaServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ollamaServer.Close()

	app, err := NewApp(newTestConfig(ollamaServer.URL))
	require.NoError(t, err)
	require.NotNil(t, app)
	defer func() { require.NoError(t, app.DB.Close()) }()

	assert.NotNil(t, app.DB)
	assert.NotNil(t, app.Server)
	assert.Equal(t, ":8000", app.Server.Addr)
}

// TestApp_FullTurnRoundTrip drives one complete interaction through the real
// router, services, and in-memory SQLite store, with only the inference
// service faked.
func TestApp_FullTurnRoundTrip(t *testing.T) {
	ollamaServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/tags":
			_, _ = w.Write([]byte(`{"models":[{"name":"llama2"}]}`))
		case "/api/generate":
			_, _ = w.Write([]byte(`{"response":"Hi there"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer ollamaServer.Close()

	app, err := NewApp(newTestConfig(ollamaServer.URL))
	require.NoError(t, err)
	defer func() { require.NoError(t, app.DB.Close()) }()

	handler := app.Server.Handler

	do := func(method, path, body string) *httptest.ResponseRecorder {
		var req *http.Request
		if body != "" {
			req = httptest.NewRequest(method, path, strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
		} else {
			req = httptest.NewRequest(method, path, nil)
		}
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr
	}

	// Initialize a session.
	rr := do(http.MethodPost, "/api/v1/sessions", `{"id":"round-trip"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	// Submit a prompt and expect both turns back.
	rr = do(http.MethodPost, "/api/v1/sessions/round-trip/messages", `{"content":"Hello"}`)
	require.Equal(t, http.StatusOK, rr.Code)

	var turns []model.Turn
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &turns))
	require.Len(t, turns, 2)
	assert.Equal(t, model.RoleUser, turns[0].Role)
	assert.Equal(t, "Hello", turns[0].Content)
	assert.Equal(t, model.RoleAssistant, turns[1].Role)
	assert.Equal(t, "Hi there", turns[1].Content)
	assert.NotEmpty(t, turns[0].Timestamp)
	assert.NotEmpty(t, turns[1].Timestamp)

	// A blank prompt changes nothing.
	rr = do(http.MethodPost, "/api/v1/sessions/round-trip/messages", `{"content":"   "}`)
	require.Equal(t, http.StatusNoContent, rr.Code)

	// Stats reflect exactly one exchange.
	rr = do(http.MethodGet, "/api/v1/sessions/round-trip/stats", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"total":2,"user_count":1,"assistant_count":1}`, rr.Body.String())

	// Clearing empties the transcript but keeps the session.
	rr = do(http.MethodDelete, "/api/v1/sessions/round-trip/messages", "")
	require.Equal(t, http.StatusOK, rr.Code)

	rr = do(http.MethodGet, "/api/v1/sessions/round-trip/stats", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"total":0,"user_count":0,"assistant_count":0}`, rr.Body.String())

	// The catalog reports the fake service's models.
	rr = do(http.MethodGet, "/api/v1/models", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"running":true,"models":["llama2"],"fallback":false}`, rr.Body.String())
}
