package infra

import (
	"fmt"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

// Config represents application configuration loaded from environment variables
// and an optional config.yaml.
type Config struct {
	AppEnv             string        `mapstructure:"app_env"`
	Port               string        `mapstructure:"port"`
	ImageProvider      string        `mapstructure:"image_provider"`
	OpenAIAPIKey       string        `mapstructure:"openai_api_key"`
	OpenAIBaseURL      string        `mapstructure:"openai_base_url"`
	OpenAIOrg          string        `mapstructure:"openai_org"`
	GeminiAPIKey       string        `mapstructure:"gemini_api_key"`
	GeminiImageModel   string        `mapstructure:"gemini_image_model"`
	DefaultLocale      string        `mapstructure:"default_locale"`
	GeoIPDBPath        string        `mapstructure:"geoip_db_path"`
	CORSAllowedOrigins []string      `mapstructure:"cors_allowed_origins"`
	HTTPReadTimeout    time.Duration `mapstructure:"http_read_timeout"`
	HTTPWriteTimeout   time.Duration `mapstructure:"http_write_timeout"`
	HTTPIdleTimeout    time.Duration `mapstructure:"http_idle_timeout"`
}

// LoadConfig loads configuration and applies defaults where needed. Missing
// provider credentials are not an error; generation requests fail instead.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "mapstructure"
		dc.DecodeHook = mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		)
	}); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.normalize()
	switch cfg.ImageProvider {
	case "openai", "gemini":
	default:
		return nil, fmt.Errorf("IMAGE_PROVIDER must be openai or gemini, got %q", cfg.ImageProvider)
	}
	switch cfg.DefaultLocale {
	case "es", "en":
	default:
		return nil, fmt.Errorf("DEFAULT_LOCALE must be es or en, got %q", cfg.DefaultLocale)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app_env", "development")
	v.SetDefault("port", "5000")

	v.SetDefault("image_provider", "openai")
	v.SetDefault("openai_api_key", "")
	v.SetDefault("openai_base_url", "https://api.openai.com/v1")
	v.SetDefault("openai_org", "")
	v.SetDefault("gemini_api_key", "")
	v.SetDefault("gemini_image_model", "imagen-3.0-generate-002")

	v.SetDefault("default_locale", "es")
	v.SetDefault("geoip_db_path", "")
	v.SetDefault("cors_allowed_origins", "")

	v.SetDefault("http_read_timeout", "15s")
	v.SetDefault("http_write_timeout", "120s")
	v.SetDefault("http_idle_timeout", "60s")
}

func (c *Config) normalize() {
	c.AppEnv = strings.TrimSpace(c.AppEnv)
	c.Port = strings.TrimSpace(c.Port)
	if c.Port == "" {
		c.Port = "5000"
	}
	c.ImageProvider = strings.ToLower(strings.TrimSpace(c.ImageProvider))
	c.DefaultLocale = strings.ToLower(strings.TrimSpace(c.DefaultLocale))

	origins := make([]string, 0, len(c.CORSAllowedOrigins))
	for _, origin := range c.CORSAllowedOrigins {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	c.CORSAllowedOrigins = origins
}
