package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App      AppConfig
	Storage  StorageConfig
	WhatsApp WhatsAppConfig
	CORS     CORSConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.WhatsApp.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"SUNLINK_APP_ENV" required:"true"`
	Port         string `envconfig:"SUNLINK_APP_PORT" default:"8080"`
	BaseURL      string `envconfig:"SUNLINK_APP_BASE_URL" default:"http://localhost:3000"`
	LogLevel     string `envconfig:"SUNLINK_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"SUNLINK_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

// StorageConfig locates the snapshot database that stands in for the
// storefront's local storage.
type StorageConfig struct {
	Path      string `envconfig:"SUNLINK_STORAGE_PATH" default:"sunlink.db"`
	StoreName string `envconfig:"SUNLINK_STORAGE_STORE_NAME" default:"solar-store"`
}

// WhatsAppConfig holds the checkout handoff recipient.
type WhatsAppConfig struct {
	Recipient string `envconfig:"SUNLINK_WHATSAPP_RECIPIENT" required:"true"`
}

func (w WhatsAppConfig) validate() error {
	recipient := strings.TrimSpace(w.Recipient)
	if recipient == "" {
		return fmt.Errorf("%s is required", EnvWhatsAppRecipient)
	}
	if strings.ContainsAny(recipient, " /?") {
		return fmt.Errorf("%s must be a bare phone number", EnvWhatsAppRecipient)
	}
	return nil
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"SUNLINK_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}
