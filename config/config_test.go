package config

import (
	"os"
	"path/filepath"
	"testing"
)

func setEnv(t *testing.T, values map[string]string) {
	t.Helper()
	for _, key := range []string{"PORT", "STORE_DRIVER", "MONGOSTRING", "DB_NAME", "TOKEN_FORMAT", "PASETO_SECRET",
		"JWT_SECRET", "APP_TIMEZONE", "CORS_ORIGINS", "GATE_DEVICES_FILE", "QR_SIZE", "SEED_DEMO_USERS"} {
		t.Setenv(key, values[key])
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	setEnv(t, map[string]string{"STORE_DRIVER": "memory"})

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "3000" || cfg.DBName != "smart_hostel" || cfg.QRSize != 256 || cfg.SeedDemoUsers {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Location.String() != "UTC" {
		t.Fatalf("expected UTC location, got %s", cfg.Location)
	}
	if cfg.PASETO_SECRET == "" {
		t.Fatalf("expected an ephemeral paseto key")
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "http://localhost:3000" {
		t.Fatalf("unexpected origins %v", cfg.CORSOrigins)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	setEnv(t, map[string]string{
		"STORE_DRIVER":    "memory",
		"TOKEN_FORMAT":    "jwt",
		"JWT_SECRET":      "dev-secret",
		"APP_TIMEZONE":    "Asia/Kolkata",
		"CORS_ORIGINS":    "http://a.test, http://b.test,",
		"QR_SIZE":         "320",
		"SEED_DEMO_USERS": "true",
	})

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.TokenFormat != "jwt" || cfg.Location.String() != "Asia/Kolkata" || cfg.QRSize != 320 || !cfg.SeedDemoUsers {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "http://b.test" {
		t.Fatalf("unexpected origins %v", cfg.CORSOrigins)
	}
}

func TestLoadConfigRejectsInvalidSettings(t *testing.T) {
	cases := map[string]map[string]string{
		"mongo without uri":  {"STORE_DRIVER": "mongo"},
		"unknown store":      {"STORE_DRIVER": "redis"},
		"jwt without secret": {"STORE_DRIVER": "memory", "TOKEN_FORMAT": "jwt"},
		"short paseto key":   {"STORE_DRIVER": "memory", "PASETO_SECRET": "c2hvcnQ="},
		"bad timezone":       {"STORE_DRIVER": "memory", "APP_TIMEZONE": "Mars/Olympus"},
		"tiny qr":            {"STORE_DRIVER": "memory", "QR_SIZE": "10"},
		"bad seed flag":      {"STORE_DRIVER": "memory", "SEED_DEMO_USERS": "sometimes"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			setEnv(t, env)
			if _, err := LoadConfig(); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestLoadGateDevices(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gates.yaml")
	content := `devices:
  - id: main-gate
    name: Main gate
    key: s3cret
  - id: back-gate
    key: other
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	devices, err := LoadGateDevices(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(devices) != 2 || devices[0].ID != "main-gate" || devices[0].Name != "Main gate" || devices[1].Key != "other" {
		t.Fatalf("unexpected devices %+v", devices)
	}

	none, err := LoadGateDevices("")
	if err != nil || none != nil {
		t.Fatalf("empty path should yield no devices, got %v %v", none, err)
	}
}

func TestLoadGateDevicesRejectsBadEntries(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"missing key": "devices:\n  - id: main-gate\n",
		"duplicate":   "devices:\n  - id: a\n    key: x\n  - id: a\n    key: y\n",
		"not yaml":    "devices: [unterminated\n",
	}
	for name, content := range cases {
		path := filepath.Join(dir, name+".yaml")
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("write: %v", err)
		}
		if _, err := LoadGateDevices(path); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
	if _, err := LoadGateDevices(filepath.Join(dir, "absent.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
