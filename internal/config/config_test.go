package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const testConfigYAML = `
secrets:
  GROQ_API_KEY: from-file
provider:
  base_url: http://localhost:9999/v1
ui:
  tips:
    - one
    - two
`

func TestLoadConfigFile(t *testing.T) {
	cfg := new(Config)
	if err := LoadConfigFile(strings.NewReader(testConfigYAML), cfg); err != nil {
		t.Fatalf("LoadConfigFile: %v", err)
	}

	if got, ok := cfg.Secret(APIKeySecret); !ok || got != "from-file" {
		t.Errorf("Secret = %q, %v; want from-file, true", got, ok)
	}
	if cfg.Provider.BaseURL != "http://localhost:9999/v1" {
		t.Errorf("BaseURL = %q", cfg.Provider.BaseURL)
	}
	if diff := cmp.Diff([]string{"one", "two"}, cfg.UI.Tips); diff != "" {
		t.Errorf("tips mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigFile_Empty(t *testing.T) {
	cfg := new(Config)
	if err := LoadConfigFile(strings.NewReader(""), cfg); err != nil {
		t.Fatalf("empty file should load, got %v", err)
	}
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(testConfigYAML), 0o600); err != nil {
		t.Fatal(err)
	}
	chdir(t, dir)
	t.Setenv("CONFIG_FILE", path)
	t.Setenv(APIKeySecret, "from-env")
	t.Setenv("COMPLETION_BASE_URL", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if got, _ := cfg.Secret(APIKeySecret); got != "from-env" {
		t.Errorf("Secret = %q, want from-env", got)
	}
	if cfg.Provider.BaseURL != "http://localhost:9999/v1" {
		t.Errorf("BaseURL = %q", cfg.Provider.BaseURL)
	}
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("CONFIG_FILE", filepath.Join(dir, "missing.yaml"))
	t.Setenv(APIKeySecret, "")
	t.Setenv("COMPLETION_BASE_URL", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if _, ok := cfg.Secret(APIKeySecret); ok {
		t.Error("expected no secret")
	}
	if cfg.Provider.BaseURL != DefaultBaseURL {
		t.Errorf("BaseURL = %q, want default", cfg.Provider.BaseURL)
	}
	if diff := cmp.Diff(DefaultTips, cfg.UI.Tips); diff != "" {
		t.Errorf("tips mismatch (-want +got):\n%s", diff)
	}
}

func TestAllowedOrigins(t *testing.T) {
	cfg := &Config{CORSAllowedOrigins: "http://a.test, ,http://b.test"}
	if diff := cmp.Diff([]string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins()); diff != "" {
		t.Errorf("origins mismatch (-want +got):\n%s", diff)
	}
}

// chdir changes the working directory for the duration of the test
// (equivalent of testing.T.Chdir, which requires Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
