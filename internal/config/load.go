package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable read by Load,
// e.g. FLASHCARDS_SERVER_PORT for server.port.
const EnvPrefix = "FLASHCARDS"

// Defaults for optional settings.
const (
	DefaultPort                   = 9000
	DefaultLogLevel               = "info"
	DefaultStaticDir              = "static"
	DefaultShutdownTimeoutSeconds = 10
	DefaultModelName              = "gemini-1.5-flash-latest"
)

// legacyEnv maps configuration keys to unprefixed variable names that are also
// accepted. The prefixed name always wins when both are set.
var legacyEnv = map[string]string{
	"llm.gemini_api_key": "GEMINI_API_KEY",
	"llm.model_name":     "GEMINI_MODEL_NAME",
}

// Load configuration from environment variables and optionally a config file.
// Environment variables take precedence over values from the config file; an
// empty configFile skips file loading. Returns a populated Config or an error
// if loading or validation fails.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, legacy := range legacyEnv {
		prefixed := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, prefixed, legacy); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable for %s: %w", key, err)
		}
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.log_level", DefaultLogLevel)
	v.SetDefault("server.static_dir", DefaultStaticDir)
	v.SetDefault("server.shutdown_timeout_seconds", DefaultShutdownTimeoutSeconds)
	v.SetDefault("server.cors.allowed_origins", []string{"*"})

	// Registered so AutomaticEnv can see them during Unmarshal.
	v.SetDefault("llm.gemini_api_key", "")
	v.SetDefault("llm.model_name", DefaultModelName)
	v.SetDefault("llm.prompt_template_path", "")
}
