package internal

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	pErrors "partyline/errors"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type BackendMode string

const (
	BackendLocal     BackendMode = "local"
	BackendGRPC      BackendMode = "grpc"
	BackendSimulated BackendMode = "simulated"
)

type Config struct {
	LogLevel       string `env:"LOG_LEVEL,default=INFO"`
	HTTPHost       string `env:"HTTP_HOST,default=0.0.0.0"`
	HTTPPort       int    `env:"HTTP_PORT,default=8080" validate:"min=1,max=65535"`
	GRPCPort       int    `env:"GRPC_PORT,default=50051" validate:"min=0,max=65535"`
	DebugPort      int    `env:"DEBUG_PORT,default=8081" validate:"min=1,max=65535"`
	BadgerFilepath string `env:"BADGER_FILEPATH" validate:"required_if=BackendMode local"`

	BackendMode          BackendMode   `env:"BACKEND_MODE,default=local" validate:"oneof=local grpc simulated"`
	BackendAddr          string        `env:"BACKEND_ADDR" validate:"required_if=BackendMode grpc"`
	BackendTimeout       time.Duration `env:"BACKEND_TIMEOUT,default=60s" validate:"gt=0"`
	SimulatedCreateDelay time.Duration `env:"SIMULATED_CREATE_DELAY,default=1s"`
	SimulatedMemberDelay time.Duration `env:"SIMULATED_MEMBER_DELAY,default=500ms"`

	InCallToggle    string        `env:"IN_CALL_TOGGLE,default=local" validate:"oneof=local sync"`
	AnnouncementTTL time.Duration `env:"ANNOUNCEMENT_TTL,default=1s" validate:"gt=0"`
	JanitorInterval time.Duration `env:"JANITOR_INTERVAL,default=200ms" validate:"gt=0"`

	EventBufferSize int           `env:"EVENT_BUFFER_SIZE,default=256" validate:"min=1"`
	SinkTimeout     time.Duration `env:"SINK_TIMEOUT,default=2s" validate:"gt=0"`
	RestartInterval time.Duration `env:"RESTART_INTERVAL,default=200ms"`

	FetchTimeout    time.Duration `env:"FETCH_TIMEOUT,default=15s" validate:"gt=0"`
	MaxContentBytes int           `env:"MAX_CONTENT_BYTES,default=5242880" validate:"min=1024"`

	OpenRouterAPIKey   string  `env:"OPENROUTER_API_KEY"`
	OpenRouterBaseURL  string  `env:"OPENROUTER_BASE_URL,default=https://openrouter.ai/api/v1" validate:"url"`
	SummaryModel       string  `env:"SUMMARY_MODEL,default=mistralai/mistral-7b-instruct"`
	SummaryMaxTokens   int     `env:"SUMMARY_MAX_TOKENS,default=150" validate:"min=1"`
	SummaryTemperature float64 `env:"SUMMARY_TEMPERATURE,default=0.5" validate:"min=0,max=2"`
	SummaryReferer     string  `env:"SUMMARY_REFERER,default=http://localhost:8080"`
	ExcerptWords       int     `env:"EXCERPT_WORDS,default=60" validate:"min=1"`
}

// LoadConfig reads an optional .env file, then the environment. Variables
// already set in the environment win over the file.
func LoadConfig(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("%w: %v", pErrors.ErrInvalidConfig, err)
	}

	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("%w: %v", pErrors.ErrInvalidConfig, err)
	}
	if err := validator.New().Struct(config); err != nil {
		return Config{}, fmt.Errorf("%w: %v", pErrors.ErrInvalidConfig, err)
	}
	return config, nil
}

// SummarizerEnabled reports whether a model endpoint can be used.
func (c Config) SummarizerEnabled() bool {
	return c.OpenRouterAPIKey != ""
}
