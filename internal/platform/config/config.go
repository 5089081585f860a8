package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ProviderConfig holds the credentials and endpoints of one OAuth provider.
// Endpoint URLs are configurable so tests can point the gateway at local
// fakes; credentials are always passed explicitly, never read from globals.
type ProviderConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	TokenURL     string
	ProfileURL   string
	// CrossProviderReuse allows an unlinked identity from this provider to
	// adopt an account already bound to the same external user id under a
	// different provider record.
	CrossProviderReuse bool
}

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// MailDomain is the domain for generated mailbox addresses.
	MailDomain string

	// OrphanSweepInterval is the cadence of the orphan identity sweep.
	OrphanSweepInterval time.Duration

	GitHub  ProviderConfig
	LinuxDo ProviderConfig

	FrontendBaseURL string
	PosthogAPIKey   string
}

// LoadConfig loads configuration from environment variables and a .env file
// if present. Environment variables override .env values which override the
// defaults set here.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "insecure-dev-secret-change-me")
	viper.SetDefault("JWT_EXPIRY_DURATION", "24h")
	viper.SetDefault("JWT_ISSUER", "cloud-mail")
	viper.SetDefault("MAIL_DOMAIN", "cnmailcn.dpdns.org")
	viper.SetDefault("ORPHAN_SWEEP_INTERVAL", "24h")
	viper.SetDefault("GITHUB_CLIENT_ID", "")
	viper.SetDefault("GITHUB_CLIENT_SECRET", "")
	viper.SetDefault("GITHUB_CALLBACK_URL", "")
	viper.SetDefault("GITHUB_TOKEN_URL", "https://github.com/login/oauth/access_token")
	viper.SetDefault("GITHUB_PROFILE_URL", "https://api.github.com/user")
	viper.SetDefault("LINUXDO_CLIENT_ID", "")
	viper.SetDefault("LINUXDO_CLIENT_SECRET", "")
	viper.SetDefault("LINUXDO_CALLBACK_URL", "")
	viper.SetDefault("LINUXDO_TOKEN_URL", "https://connect.linux.do/oauth2/token")
	viper.SetDefault("LINUXDO_PROFILE_URL", "https://connect.linux.do/api/user")
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("POSTHOG_API_KEY", "")

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:     viper.GetString("PGSQL_URL"),
		Port:            viper.GetString("PORT"),
		IsProduction:    viper.GetBool("IS_PRODUCTION"),
		JWTSecret:       viper.GetString("JWT_SECRET"),
		JWTIssuer:       viper.GetString("JWT_ISSUER"),
		MailDomain:      viper.GetString("MAIL_DOMAIN"),
		FrontendBaseURL: viper.GetString("FRONTEND_BASE_URL"),
		PosthogAPIKey:   viper.GetString("POSTHOG_API_KEY"),
		GitHub: ProviderConfig{
			ClientID:           viper.GetString("GITHUB_CLIENT_ID"),
			ClientSecret:       viper.GetString("GITHUB_CLIENT_SECRET"),
			RedirectURL:        viper.GetString("GITHUB_CALLBACK_URL"),
			TokenURL:           viper.GetString("GITHUB_TOKEN_URL"),
			ProfileURL:         viper.GetString("GITHUB_PROFILE_URL"),
			CrossProviderReuse: true,
		},
		LinuxDo: ProviderConfig{
			ClientID:     viper.GetString("LINUXDO_CLIENT_ID"),
			ClientSecret: viper.GetString("LINUXDO_CLIENT_SECRET"),
			RedirectURL:  viper.GetString("LINUXDO_CALLBACK_URL"),
			TokenURL:     viper.GetString("LINUXDO_TOKEN_URL"),
			ProfileURL:   viper.GetString("LINUXDO_PROFILE_URL"),
		},
	}

	jwtExpiry, err := time.ParseDuration(viper.GetString("JWT_EXPIRY_DURATION"))
	if err != nil {
		return nil, fmt.Errorf("invalid JWT_EXPIRY_DURATION: %w", err)
	}
	cfg.JWTExpiryDuration = jwtExpiry

	sweepInterval, err := time.ParseDuration(viper.GetString("ORPHAN_SWEEP_INTERVAL"))
	if err != nil {
		return nil, fmt.Errorf("invalid ORPHAN_SWEEP_INTERVAL: %w", err)
	}
	cfg.OrphanSweepInterval = sweepInterval

	return cfg, nil
}
