package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/at-ishikawa/genki-tutor/internal/validation"
)

const (
	ProviderOpenAI    = "openai"
	ProviderGemini    = "gemini"
	ProviderAnthropic = "anthropic"
)

type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Lessons    LessonsConfig    `mapstructure:"lessons"`
	Templates  TemplatesConfig  `mapstructure:"templates"`
	PDF        PDFConfig        `mapstructure:"pdf"`
	Provider   string           `mapstructure:"provider" validate:"required,oneof=openai gemini anthropic"`
	OpenAI     OpenAIConfig     `mapstructure:"openai"`
	Gemini     GeminiConfig     `mapstructure:"gemini"`
	Anthropic  AnthropicConfig  `mapstructure:"anthropic"`
	Normalizer NormalizerConfig `mapstructure:"normalizer"`
	Log        LogConfig        `mapstructure:"log"`
}

type ServerConfig struct {
	Port int        `mapstructure:"port" validate:"min=1,max=65535"`
	CORS CORSConfig `mapstructure:"cors"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins" validate:"dive,url"`
}

// LessonsConfig points to the static lesson catalogue.
// The file is read on every request, so it is not required to exist at startup.
type LessonsConfig struct {
	File string `mapstructure:"file"`
}

type TemplatesConfig struct {
	LessonNotesTemplate string `mapstructure:"lesson_notes_template" validate:"omitempty,file"`
}

// PDFConfig controls how exported lesson notes are rendered
type PDFConfig struct {
	PaperSize string `mapstructure:"paper_size" validate:"oneof=A3 A4 A5 Letter Legal"`
	DarkTheme bool   `mapstructure:"dark_theme"`
}

// OpenAIConfig holds the credential for the OpenAI provider.
// An empty APIKey is accepted here and reported by the client on each call.
type OpenAIConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model" validate:"required"`
	BaseURL string `mapstructure:"base_url" validate:"required,url"`
}

type GeminiConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model" validate:"required"`
}

type AnthropicConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model" validate:"required"`
	BaseURL string `mapstructure:"base_url" validate:"omitempty,url"`
}

type NormalizerConfig struct {
	// Strict rejects replies that parse but do not match the expected shape.
	Strict bool `mapstructure:"strict"`
}

type LogConfig struct {
	Debug bool `mapstructure:"debug"`
}

type ConfigLoader struct {
	viper     *viper.Viper
	validator *validation.Validator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, err := validation.New("mapstructure")
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/genki-tutor")
	}

	return &ConfigLoader{
		viper:     v,
		validator: validate,
	}, nil
}

// Load reads the config file when present, applies defaults and environment
// variables, and validates the result.
func Load(configFile string) (*Config, error) {
	loader, err := NewConfigLoader(configFile)
	if err != nil {
		return nil, err
	}
	return loader.Load()
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("server.port", 8000)
	v.SetDefault("server.cors.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("lessons.file", "lessons.json")
	// Template is optional - if not specified, will use embedded fallback template
	v.SetDefault("templates.lesson_notes_template", "")
	v.SetDefault("pdf.paper_size", "A4")
	v.SetDefault("pdf.dark_theme", false)
	v.SetDefault("provider", ProviderOpenAI)
	v.SetDefault("openai.model", "gpt-3.5-turbo")
	v.SetDefault("openai.base_url", "https://api.openai.com/v1")
	v.SetDefault("gemini.model", "gemini-2.0-flash")
	v.SetDefault("anthropic.model", "claude-3-5-haiku-latest")
	v.SetDefault("anthropic.base_url", "")
	v.SetDefault("normalizer.strict", false)
	v.SetDefault("log.debug", false)

	// Bind provider credentials to environment variables only (not from config file)
	for key, env := range map[string]string{
		"openai.api_key":    "OPENAI_API_KEY",
		"openai.model":      "OPENAI_MODEL",
		"gemini.api_key":    "GEMINI_API_KEY",
		"anthropic.api_key": "ANTHROPIC_API_KEY",
		"provider":          "GENKI_TUTOR_PROVIDER",
	} {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s environment variable: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
