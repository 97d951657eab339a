package config

import "time"

// JWTConfig содержит настройки для JWT токенов.
// Секрет подписи не имеет значения по умолчанию: без него запуск невозможен.
type JWTConfig struct {
	SecretKey  string `yaml:"secret_key" env:"NOTEKEEP_JWT_SECRET_KEY"`
	TokenTTL   string `yaml:"token_ttl" env:"NOTEKEEP_JWT_TOKEN_TTL" env-default:"1h"`
	BCryptCost int    `yaml:"bcrypt_cost" env:"NOTEKEEP_BCRYPT_COST" env-default:"10"`
}

// GetTokenTTL возвращает продолжительность времени жизни токена.
func (c *JWTConfig) GetTokenTTL() time.Duration {
	duration, err := time.ParseDuration(c.TokenTTL)
	if err != nil {
		return time.Hour
	}
	return duration
}
