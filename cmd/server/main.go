package main

import (
	"os"

	"local-llm/backend/internal/app"
)

// @title           Local LLM Chat API
// @version         1.0
// @description     Conversational front-end for a locally hosted Ollama inference server.
// @BasePath        /api
func main() {
	os.Exit(app.Run())
}
