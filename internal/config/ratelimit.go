package config

import "time"

// RateLimitConfig содержит настройки ограничения частоты запросов.
type RateLimitConfig struct {
	Enabled  bool   `yaml:"enabled" env:"NOTEKEEP_RATE_LIMIT_ENABLED" env-default:"true"`
	Requests int    `yaml:"requests" env:"NOTEKEEP_RATE_LIMIT_REQUESTS" env-default:"100"`
	Window   string `yaml:"window" env:"NOTEKEEP_RATE_LIMIT_WINDOW" env-default:"1m"`
}

// GetWindow возвращает длительность окна подсчета запросов.
func (r *RateLimitConfig) GetWindow() time.Duration {
	duration, err := time.ParseDuration(r.Window)
	if err != nil {
		return time.Minute
	}
	return duration
}
