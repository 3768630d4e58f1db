package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

// SMTPConfig holds outbound mail settings. The mailer treats an incomplete
// configuration (missing host, user or password) as "notifications disabled".
type SMTPConfig struct {
	Host   string
	Port   int
	Secure bool
	User   string
	Pass   string
	From   string
}

type LoggerConfig struct {
	Mode       string // development or production
	FileEnable bool
	Filename   string
}

// AppConfig is the full process configuration, sourced from the environment
// (an optional .env file is loaded first).
type AppConfig struct {
	Port          int
	AdminPass     string
	SessionSecret string
	StoreBackend  string // file or postgres
	DataDir       string
	UploadsDir    string
	DatabaseDSN   string
	AdminEmail    string
	SMTP          SMTPConfig
	Logger        LoggerConfig
}

// Load reads configuration from the environment with the same defaults the
// service has always shipped with.
func Load() *AppConfig {
	_ = godotenv.Load()

	smtpUser := envString("SMTP_USER", "")
	return &AppConfig{
		Port:          cast.ToInt(envString("PORT", "3000")),
		AdminPass:     envString("ADMIN_PASS", "artemio123"),
		SessionSecret: envString("SESSION_SECRET", "refaccionaria-secret"),
		StoreBackend:  envString("STORE_BACKEND", "file"),
		DataDir:       envString("DATA_DIR", "data"),
		UploadsDir:    envString("UPLOADS_DIR", "uploads"),
		DatabaseDSN:   envString("DATABASE_DSN", ""),
		AdminEmail:    envString("ADMIN_EMAIL", "yairivanyanez23@cbtis179.edu.mx"),
		SMTP: SMTPConfig{
			Host:   envString("SMTP_HOST", ""),
			Port:   cast.ToInt(envString("SMTP_PORT", "587")),
			Secure: cast.ToBool(envString("SMTP_SECURE", "false")),
			User:   smtpUser,
			Pass:   envString("SMTP_PASS", ""),
			From:   envString("FROM_EMAIL", smtpUser),
		},
		Logger: LoggerConfig{
			Mode:       envString("LOG_MODE", "development"),
			FileEnable: cast.ToBool(envString("LOG_FILE_ENABLE", "false")),
			Filename:   envString("LOG_FILENAME", "storefront.log"),
		},
	}
}

func envString(key, defval string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defval
}
