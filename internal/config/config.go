package config

import (
	"log"

	"github.com/caarlos0/env/v6"
)

type LLMProvider string

const (
	ProviderOpenAI LLMProvider = "openai"
	ProviderYandex LLMProvider = "yandex"
)

type Config struct {
	// LLM settings
	LLMProvider      LLMProvider `env:"LLM_PROVIDER" envDefault:"openai"`
	OpenAIAPIKey     string      `env:"OPENAI_API_KEY,required"`
	OpenAIBaseURL    string      `env:"OPENAI_BASE_URL"`
	OpenAIModel      string      `env:"OPENAI_MODEL" envDefault:"gpt-3.5-turbo"`
	YandexOAuthToken string      `env:"YANDEX_OAUTH_TOKEN"`
	YandexFolderID   string      `env:"YANDEX_FOLDER_ID"`

	// Sampling settings, fixed for the whole session
	Temperature    float32 `env:"TEMPERATURE" envDefault:"0.7"`
	MaxReplyTokens int     `env:"MAX_REPLY_TOKENS" envDefault:"150"`

	// Prompts
	SystemPromptPath string `env:"SYSTEM_PROMPT_PATH"`

	// Escalation repository
	RepoPath       string `env:"REPO_PATH" envDefault:"."`
	GitRemote      string `env:"GIT_REMOTE" envDefault:"origin"`
	GitBranch      string `env:"GIT_BRANCH" envDefault:"main"`
	GitAuthorName  string `env:"GIT_AUTHOR_NAME" envDefault:"chat-warden"`
	GitAuthorEmail string `env:"GIT_AUTHOR_EMAIL" envDefault:"chat-warden@localhost"`
}

func New() *Config {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	return cfg
}
