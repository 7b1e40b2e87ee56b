package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	AppPort        int    `mapstructure:"APP_PORT"`
	DatabasePath   string `mapstructure:"DATABASE_PATH"`
	OllamaURL      string `mapstructure:"OLLAMA_URL"`
	DefaultModel   string `mapstructure:"DEFAULT_MODEL"`
	FallbackModels string `mapstructure:"FALLBACK_MODELS"`
	MaxUploadBytes int64  `mapstructure:"MAX_UPLOAD_BYTES"`
	LogLevel       string `mapstructure:"LOG_LEVEL"`
}

func LoadConfig() (*Config, error) {
	viper.SetDefault("APP_PORT", 8000)
	// The default keeps the session store inside the process, nothing
	// survives a restart.
	viper.SetDefault("DATABASE_PATH", ":memory:")
	viper.SetDefault("OLLAMA_URL", "http://localhost:11434")
	viper.SetDefault("DEFAULT_MODEL", "llama2")
	viper.SetDefault("FALLBACK_MODELS", "llama2,codellama,mistral")
	viper.SetDefault("MAX_UPLOAD_BYTES", 1<<20)
	viper.SetDefault("LOG_LEVEL", "INFO")

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Fallbacks splits the configured fallback model list.
func (c *Config) Fallbacks() []string {
	parts := strings.Split(c.FallbackModels, ",")
	models := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			models = append(models, p)
		}
	}
	return models
}
