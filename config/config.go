package config

import (
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	AppName    string `mapstructure:"app_name"`
	Port       int    `mapstructure:"port"`
	LogLevel   string `mapstructure:"log_level"`
	PrettyLogs bool   `mapstructure:"pretty_logs"`

	HttpServerWriteTimeoutSeconds int `mapstructure:"http_server_write_timeout_seconds"`
	HttpServerReadTimeoutSeconds  int `mapstructure:"http_server_read_timeout_seconds"`
	HttpServerIdleTimeoutSeconds  int `mapstructure:"http_server_idle_timeout_seconds"`

	// Matching defaults, overridable per request.
	MatchThreshold      float64 `mapstructure:"match_threshold"`
	MatchOnlyCourt      bool    `mapstructure:"match_only_court"`
	MatchStrictLastName bool    `mapstructure:"match_strict_last_name"`
	MatchMaxHits        int     `mapstructure:"match_max_hits"`

	// KeywordDisplayLimit caps the keyword matches returned per response.
	KeywordDisplayLimit int `mapstructure:"keyword_display_limit"`
}

// Load reads configuration from the environment with sane defaults. Every
// key is also readable as an upper-snake environment variable, so PORT and
// MATCH_THRESHOLD work as expected.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("app_name", "saksmatch-api")
	v.SetDefault("port", 3002)
	v.SetDefault("log_level", "info")
	v.SetDefault("pretty_logs", false)
	v.SetDefault("http_server_write_timeout_seconds", 10)
	v.SetDefault("http_server_read_timeout_seconds", 10)
	v.SetDefault("http_server_idle_timeout_seconds", 10)
	v.SetDefault("match_threshold", 0.82)
	v.SetDefault("match_only_court", true)
	v.SetDefault("match_strict_last_name", true)
	v.SetDefault("match_max_hits", 10)
	v.SetDefault("keyword_display_limit", 100)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
