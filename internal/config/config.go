package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

type HTTPConfig struct {
	Port int
}

type PostgresConfig struct {
	DSN             string
	MaxOpen         int
	MaxIdle         int
	ConnMaxLifetime time.Duration
}

type MailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

// Configured reports whether SMTP credentials are present. When false the
// sender degrades to logging, the development fallback.
func (m MailConfig) Configured() bool {
	return m.Host != ""
}

type SecurityConfig struct {
	JWTSecret string
	JWTTTL    time.Duration
}

type AppConfig struct {
	Environment string
	HTTP        HTTPConfig
	Postgres    PostgresConfig
	Mail        MailConfig
	Security    SecurityConfig
	FrontendURL string
}

func Load() (*AppConfig, error) {
	v := viper.New()

	v.SetEnvPrefix("HP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Explicit binds so AutomaticEnv sees nested keys.
	for _, key := range []string{
		"environment",
		"http.port",
		"postgres.dsn", "postgres.maxopen", "postgres.maxidle", "postgres.connmaxlifetime",
		"mail.host", "mail.port", "mail.user", "mail.password", "mail.from",
		"security.jwtsecret", "security.jwtttl",
		"frontendurl",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "mapstructure"
		dc.DecodeHook = mapstructure.StringToTimeDurationHookFunc()
	}); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", "development")

	v.SetDefault("http.port", 5001)

	v.SetDefault("postgres.maxopen", 10)
	v.SetDefault("postgres.maxidle", 5)
	v.SetDefault("postgres.connmaxlifetime", "5m")

	v.SetDefault("mail.port", 587)
	v.SetDefault("mail.from", "Horsepower Electrical <noreply@horsepowerelectrical.online>")

	v.SetDefault("security.jwtttl", "12h")

	v.SetDefault("frontendurl", "http://localhost:3000")
}
