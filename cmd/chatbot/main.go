package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"chat-warden/internal/config"
	"chat-warden/internal/escalation"
	"chat-warden/internal/llm"
	"chat-warden/internal/moderation"
	"chat-warden/internal/session"
)

const defaultSystemPrompt = "You are a helpful assistant specialized in technology topics."

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	cfg := config.New()

	factory := llm.NewFactory(cfg)
	client, err := factory.CreateClient(string(cfg.LLMProvider))
	if err != nil {
		log.Fatalf("failed to create llm client: %v", err)
	}

	gate := moderation.NewGate(moderation.NewOpenAIClassifier(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL))

	var publisher escalation.Publisher
	publisher, err = escalation.NewGitPublisher(cfg.RepoPath, cfg.GitRemote, cfg.GitBranch, cfg.GitAuthorName, cfg.GitAuthorEmail)
	if err != nil {
		// Escalation must never block the conversation; degrade to
		// local-artifact-only and keep going.
		log.Printf("escalation publisher unavailable: %v", err)
		publisher = escalation.NopPublisher{}
	}
	recorder := escalation.NewRecorder(cfg.RepoPath, publisher)

	systemPrompt := readSystemPrompt(cfg.SystemPromptPath)

	console := session.NewStdConsole(os.Stdin, os.Stdout)
	s := session.New(console, gate, client, recorder, systemPrompt)

	if err := s.Run(context.Background()); err != nil {
		os.Exit(1)
	}
}

func readSystemPrompt(path string) string {
	if path == "" {
		return defaultSystemPrompt
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("system prompt file not found or unreadable at %s: %v", path, err)
		return defaultSystemPrompt
	}
	return string(data)
}
