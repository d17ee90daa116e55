package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadBusinessMissingFileUsesDefaults(t *testing.T) {
	business, err := LoadBusiness(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadBusiness() error = %v", err)
	}

	if business.ProfitRatio != 0.30 {
		t.Errorf("ProfitRatio = %v, expected default 0.30", business.ProfitRatio)
	}
	if business.DefaultExchangeRate != 10.0 {
		t.Errorf("DefaultExchangeRate = %v, expected default 10.0", business.DefaultExchangeRate)
	}
	if len(business.Outlets) != 4 || len(business.Accounts) != 3 {
		t.Errorf("defaults = %d outlets / %d accounts, expected 4 / 3", len(business.Outlets), len(business.Accounts))
	}
}

func TestLoadBusinessFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "business.yaml")
	content := `
profitRatio: 0.25
defaultExchangeRate: 10.95
outlets:
  - Shop One
countries:
  - code: TJ
    name: Tajikistan
accounts:
  - username: boss
    password: secret
    displayName: The Boss
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	business, err := LoadBusiness(path)
	if err != nil {
		t.Fatalf("LoadBusiness() error = %v", err)
	}
	if business.ProfitRatio != 0.25 || business.DefaultExchangeRate != 10.95 {
		t.Errorf("business = %+v", business)
	}
	if len(business.Outlets) != 1 || business.Outlets[0] != "Shop One" {
		t.Errorf("Outlets = %v", business.Outlets)
	}
	if len(business.Accounts) != 1 || business.Accounts[0].DisplayName != "The Boss" {
		t.Errorf("Accounts = %+v", business.Accounts)
	}
}

func TestLoadBusinessRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed yaml", "profitRatio: [not-a-number"},
		{"zero ratio", "profitRatio: 0"},
		{"ratio above one", "profitRatio: 1.5"},
		{"negative rate", "defaultExchangeRate: -3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "business.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0o600); err != nil {
				t.Fatalf("failed to write fixture: %v", err)
			}
			if _, err := LoadBusiness(path); err == nil {
				t.Error("LoadBusiness() expected error")
			}
		})
	}
}

func TestCountryCodes(t *testing.T) {
	business := DefaultBusiness()
	codes := business.CountryCodes()
	if len(codes) != 4 || codes[0] != "TJ" {
		t.Errorf("CountryCodes() = %v", codes)
	}
}

func TestLoadEnvDefaults(t *testing.T) {
	// Make sure ambient variables do not leak into the assertion.
	for _, key := range []string{"PORT", "STORAGE_TARGET", "STORAGE_MASTER_KEY", "BUSINESS_CONFIG", "API_URL", "IMPORT_HISTORY_DB"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("Port = %q, expected 8080", cfg.Port)
	}
	if cfg.StorageTarget != "./data/ledger.db" {
		t.Errorf("StorageTarget = %q", cfg.StorageTarget)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("STORAGE_TARGET", "https://api.example.com/v3/b/abc")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Port != "9999" {
		t.Errorf("Port = %q, expected 9999", cfg.Port)
	}
	if cfg.StorageTarget != "https://api.example.com/v3/b/abc" {
		t.Errorf("StorageTarget = %q", cfg.StorageTarget)
	}
}
