package config

import (
	"fmt"
	"time"
)

// HTTPConfig содержит настройки HTTP сервера.
type HTTPConfig struct {
	Host         string        `yaml:"host" env:"NOTEKEEP_HTTP_HOST" env-default:"0.0.0.0"`
	Port         int           `yaml:"port" env:"NOTEKEEP_HTTP_PORT" env-default:"8080"`
	ReadTimeout  time.Duration `yaml:"read_timeout" env:"NOTEKEEP_HTTP_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout time.Duration `yaml:"write_timeout" env:"NOTEKEEP_HTTP_WRITE_TIMEOUT" env-default:"10s"`
}

// GetAddress возвращает адрес для прослушивания HTTP сервером.
func (h *HTTPConfig) GetAddress() string {
	return fmt.Sprintf("%s:%d", h.Host, h.Port)
}
