package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HTTPPort string `envconfig:"APP_PORT" default:"8080"`
	Gemini   GeminiConfig
	Log      LogConfig
}

// GeminiConfig настройки доступа к Gemini API.
// Ключ обязателен: без него сервис не имеет источника курсов.
type GeminiConfig struct {
	APIKey  string        `envconfig:"GEMINI_API_KEY"  required:"true"`
	Model   string        `envconfig:"GEMINI_MODEL"    default:"gemini-2.5-flash"`
	BaseURL string        `envconfig:"GEMINI_BASE_URL" default:"https://generativelanguage.googleapis.com/v1beta"`
	Timeout time.Duration `envconfig:"GEMINI_TIMEOUT"  default:"30s"`
}

type LogConfig struct {
	File string `envconfig:"LOG_FILE" default:"exchange.log"`
}

func NewConfig() (*Config, error) {
	envFile := "config.env"

	if err := godotenv.Load(envFile); err != nil {
		log.Printf("warning: не удалось загрузить файл %s, используются только системные переменные окружения: %v", envFile, err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("ошибка парсинга конфигурации: %w", err)
	}

	return &cfg, nil
}
