package cmd

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the defaults read from the environment, or from a .env file in
// the working directory.
type Config struct {
	PortfolioFile string // RQD_PORTFOLIO_FILE
	LogLevel      string // RQD_LOG_LEVEL
	Currency      string // RQD_CURRENCY, amounts are plain numbers when empty
	FundsPath     string // RQD_FUNDS_PATH
	TranchesPath  string // RQD_TRANCHES_PATH
}

// LoadConfig reads the configuration. Flags override it.
func LoadConfig() Config {
	// a missing .env file is fine
	_ = godotenv.Load()

	return Config{
		PortfolioFile: getEnv("RQD_PORTFOLIO_FILE", "portfolio.json"),
		LogLevel:      getEnv("RQD_LOG_LEVEL", "info"),
		Currency:      getEnv("RQD_CURRENCY", ""),
		FundsPath:     getEnv("RQD_FUNDS_PATH", "$.funds"),
		TranchesPath:  getEnv("RQD_TRANCHES_PATH", "$.tranches"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
