package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DB_DSN", "postgres://localhost/gigledger_test")
	t.Setenv("JWT_ACCESS_SECRET", "secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Environment != "development" {
		t.Errorf("environment = %q, want development", cfg.Environment)
	}
	if cfg.HTTP.Port == 0 {
		t.Error("port default missing")
	}
	if cfg.Ledger.DepositCapDivisor != 4 {
		t.Errorf("deposit cap divisor = %d, want 4", cfg.Ledger.DepositCapDivisor)
	}
	if cfg.Ledger.BestClientsLimit != 2 {
		t.Errorf("best clients limit = %d, want 2", cfg.Ledger.BestClientsLimit)
	}
}

func TestLoadRequiresDSN(t *testing.T) {
	t.Setenv("DB_DSN", "")
	t.Setenv("JWT_ACCESS_SECRET", "secret")

	if _, err := Load(); err == nil {
		t.Error("Load succeeded without DB_DSN")
	}
}
