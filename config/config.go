package config

import (
	"os"

	"github.com/joho/godotenv"
)

// DefaultAdminPassword is the seed password used when ADMIN_PASSWORD is not
// set. Startup warns whenever it is still in effect.
const DefaultAdminPassword = "Admin@12345"

type Config struct {
	DatabaseURL      string
	SQLitePath       string
	SessionSecret    string
	ServerPort       string
	Environment      string
	AdminPassword    string
	SiteURL          string
	AdsenseClient    string
	AdsSlotTop       string
	AdsSlotSide      string
	AdsSlotInContent string
	Debug            bool
}

func Load() *Config {
	// .env is optional; in production everything comes from the environment.
	_ = godotenv.Load()

	return &Config{
		DatabaseURL:      getEnv("DATABASE_URL", ""),
		SQLitePath:       getEnv("SQLITE_PATH", "katta.db"),
		SessionSecret:    getEnv("SESSION_SECRET", "change-me-in-production"),
		ServerPort:       getEnv("PORT", "5000"),
		Environment:      getEnv("ENV", "development"),
		AdminPassword:    getEnv("ADMIN_PASSWORD", DefaultAdminPassword),
		SiteURL:          getEnv("SITE_URL", ""),
		AdsenseClient:    getEnv("ADSENSE_CLIENT", ""),
		AdsSlotTop:       getEnv("ADS_SLOT_TOP", ""),
		AdsSlotSide:      getEnv("ADS_SLOT_SIDE", ""),
		AdsSlotInContent: getEnv("ADS_SLOT_INCONTENT", ""),
		Debug:            getEnv("DEBUG", "false") == "true",
	}
}

// AdsEnabled reports whether ad rendering is on. An empty client id disables
// every ad slot.
func (c *Config) AdsEnabled() bool {
	return c.AdsenseClient != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
