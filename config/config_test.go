package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("RESTODESK_API_URL", "")
	t.Setenv("RESTODESK_DATA_DIR", "")
	t.Setenv("RESTODESK_PAGE_SIZE", "")
	t.Setenv("RESTODESK_LOG_LEVEL", "")

	cfg := Load()
	if cfg.APIBaseURL != "http://localhost:3000/api" {
		t.Errorf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.PageSize != 10 {
		t.Errorf("PageSize = %d, want 10", cfg.PageSize)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.DataDir == "" {
		t.Error("DataDir is empty")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("RESTODESK_API_URL", "http://backend.test/api")
	t.Setenv("RESTODESK_DATA_DIR", "/tmp/restodesk-test")
	t.Setenv("RESTODESK_PAGE_SIZE", "25")
	t.Setenv("RESTODESK_LOG_LEVEL", "debug")

	cfg := Load()
	if cfg.APIBaseURL != "http://backend.test/api" {
		t.Errorf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.DataDir != "/tmp/restodesk-test" {
		t.Errorf("DataDir = %q", cfg.DataDir)
	}
	if cfg.PageSize != 25 {
		t.Errorf("PageSize = %d, want 25", cfg.PageSize)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestLoad_BadPageSizeFallsBack(t *testing.T) {
	t.Setenv("RESTODESK_PAGE_SIZE", "not-a-number")

	if cfg := Load(); cfg.PageSize != 10 {
		t.Errorf("PageSize = %d, want default 10", cfg.PageSize)
	}

	t.Setenv("RESTODESK_PAGE_SIZE", "-3")
	if cfg := Load(); cfg.PageSize != 10 {
		t.Errorf("negative PageSize = %d, want default 10", cfg.PageSize)
	}
}

func TestStorePath(t *testing.T) {
	cfg := Config{DataDir: "/var/lib/restodesk"}
	want := filepath.Join("/var/lib/restodesk", "restodesk.db")
	if got := cfg.StorePath(); got != want {
		t.Errorf("StorePath() = %q, want %q", got, want)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	content := `# local settings
RESTODESK_TEST_A=plain
export RESTODESK_TEST_B="double quoted"
RESTODESK_TEST_C='single quoted'

not-a-pair
RESTODESK_TEST_EXISTING=from-file
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	t.Setenv("RESTODESK_TEST_A", "")
	t.Setenv("RESTODESK_TEST_B", "")
	t.Setenv("RESTODESK_TEST_C", "")
	t.Setenv("RESTODESK_TEST_EXISTING", "from-env")

	if err := loadDotEnv(path); err != nil {
		t.Fatalf("loadDotEnv() error = %v", err)
	}

	tests := []struct {
		key, want string
	}{
		{"RESTODESK_TEST_A", "plain"},
		{"RESTODESK_TEST_B", "double quoted"},
		{"RESTODESK_TEST_C", "single quoted"},
		{"RESTODESK_TEST_EXISTING", "from-env"},
	}
	for _, tt := range tests {
		if got := os.Getenv(tt.key); got != tt.want {
			t.Errorf("%s = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestLoadDotEnv_MissingFile(t *testing.T) {
	if err := loadDotEnv(filepath.Join(t.TempDir(), "nope.env")); err != nil {
		t.Errorf("missing file should not error, got %v", err)
	}
}
