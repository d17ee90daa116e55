// Package config provides configuration for the back-office ledger.
// Runtime settings come from environment variables and .env files; business
// parameters (accounts, outlets, countries, ratios) come from a YAML file.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the runtime configuration.
type Config struct {
	// Port the API server listens on.
	Port string

	// StorageTarget selects the persistence backend: an http(s) URL for the
	// remote document store, or a local file path for the bbolt snapshot.
	StorageTarget string

	// StorageMasterKey authenticates against the remote document store.
	StorageMasterKey string

	// BusinessFile is the path to the YAML business configuration.
	BusinessFile string

	// APIURL is the server address used by the CLI client.
	APIURL string

	// HistoryDBPath is the SQLite import history database used by the CLI.
	HistoryDBPath string
}

// Load loads runtime configuration from environment variables. It
// automatically loads a .env file from the current directory if available;
// a custom path may be given.
func Load(envPath ...string) (*Config, error) {
	if len(envPath) > 0 && envPath[0] != "" {
		if err := godotenv.Load(envPath[0]); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	} else {
		_ = godotenv.Load()
	}

	return &Config{
		Port:             getEnvOrDefault("PORT", "8080"),
		StorageTarget:    getEnvOrDefault("STORAGE_TARGET", "./data/ledger.db"),
		StorageMasterKey: os.Getenv("STORAGE_MASTER_KEY"),
		BusinessFile:     getEnvOrDefault("BUSINESS_CONFIG", "./config/business.yaml"),
		APIURL:           getEnvOrDefault("API_URL", "http://localhost:8080"),
		HistoryDBPath:    getEnvOrDefault("IMPORT_HISTORY_DB", "./data/import-history.db"),
	}, nil
}

// Account is a configured administrator account.
type Account struct {
	Username    string `yaml:"username"`
	Password    string `yaml:"password"`
	DisplayName string `yaml:"displayName"`
}

// Country is a supplier country.
type Country struct {
	Code string `yaml:"code"`
	Name string `yaml:"name"`
}

// Business represents the business parameters of the deployment.
type Business struct {
	// ProfitRatio is the fixed share of revenue treated as profit in
	// reports. A business constant, not a computed margin.
	ProfitRatio float64 `yaml:"profitRatio"`

	// DefaultExchangeRate is the TJS-per-USD rate used before any rate has
	// been stored in the ledger document.
	DefaultExchangeRate float64 `yaml:"defaultExchangeRate"`

	Outlets           []string  `yaml:"outlets"`
	Countries         []Country `yaml:"countries"`
	ExpenseCategories []string  `yaml:"expenseCategories"`
	Accounts          []Account `yaml:"accounts"`
}

// DefaultBusiness returns the built-in business parameters used when no
// YAML file is present.
func DefaultBusiness() *Business {
	return &Business{
		ProfitRatio:         0.30,
		DefaultExchangeRate: 10.0,
		Outlets: []string{
			"Ortosalon Munisa",
			"Ortosalon Siema",
			"Ortosalon Barakat",
			"Ortosalon Ayni",
		},
		Countries: []Country{
			{Code: "TJ", Name: "Tajikistan"},
			{Code: "RU", Name: "Russia"},
			{Code: "TR", Name: "Turkey"},
			{Code: "CN", Name: "China"},
		},
		ExpenseCategories: []string{
			"Rent", "Utilities", "Transport", "Advertising", "Other",
		},
		Accounts: []Account{
			{Username: "admin1", Password: "admin1pass", DisplayName: "Administrator 1"},
			{Username: "admin2", Password: "admin2pass", DisplayName: "Administrator 2"},
			{Username: "admin3", Password: "admin3pass", DisplayName: "Administrator 3"},
		},
	}
}

// LoadBusiness reads the business parameters from a YAML file. A missing
// file falls back to the built-in defaults; a malformed file is an error.
func LoadBusiness(path string) (*Business, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultBusiness(), nil
		}
		return nil, fmt.Errorf("failed to read business config: %w", err)
	}

	business := DefaultBusiness()
	if err := yaml.Unmarshal(data, business); err != nil {
		return nil, fmt.Errorf("failed to parse business config: %w", err)
	}

	if business.ProfitRatio <= 0 || business.ProfitRatio > 1 {
		return nil, fmt.Errorf("profitRatio must be in (0, 1], got %v", business.ProfitRatio)
	}
	if business.DefaultExchangeRate <= 0 {
		return nil, fmt.Errorf("defaultExchangeRate must be positive, got %v", business.DefaultExchangeRate)
	}

	return business, nil
}

// CountryCodes returns the configured country codes.
func (b *Business) CountryCodes() []string {
	codes := make([]string, len(b.Countries))
	for i, c := range b.Countries {
		codes[i] = c.Code
	}
	return codes
}

// getEnvOrDefault returns the value of the environment variable or a default
// value if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
