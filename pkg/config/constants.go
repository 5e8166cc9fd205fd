package config

const EnvPrefix = "SUNLINK"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

const (
	EnvAppEnv            = "SUNLINK_APP_ENV"
	EnvPort              = "SUNLINK_APP_PORT"
	EnvStoragePath       = "SUNLINK_STORAGE_PATH"
	EnvWhatsAppRecipient = "SUNLINK_WHATSAPP_RECIPIENT"
)
