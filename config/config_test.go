package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonwraymond/shopifymcp/admin"
)

func envMap(m map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestLoad_FromEnvironment(t *testing.T) {
	cfg, err := Load(Options{
		SkipEnvFile: true,
		LookupEnv: envMap(map[string]string{
			EnvAccessToken: "shpat_env",
			EnvStoreName:   " acme ",
			EnvAPIVersion:  "2024-10",
		}),
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.AccessToken != "shpat_env" {
		t.Errorf("AccessToken = %q, want %q", cfg.AccessToken, "shpat_env")
	}
	if cfg.StoreName != "acme" {
		t.Errorf("StoreName = %q, want %q", cfg.StoreName, "acme")
	}
	if cfg.APIVersion != "2024-10" {
		t.Errorf("APIVersion = %q, want %q", cfg.APIVersion, "2024-10")
	}
	if got := cfg.URL(); got != "https://acme.myshopify.com/admin/api/2024-10/graphql.json" {
		t.Errorf("URL() = %q", got)
	}
}

func TestLoad_VersionDefaultsDownstream(t *testing.T) {
	cfg, err := Load(Options{
		SkipEnvFile: true,
		LookupEnv:   envMap(map[string]string{EnvAccessToken: "t", EnvStoreName: "acme"}),
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	client := admin.New(cfg)
	if got := client.Config().APIVersion; got != admin.DefaultAPIVersion {
		t.Errorf("APIVersion = %q, want %q", got, admin.DefaultAPIVersion)
	}
}

func TestLoad_EnvFileDoesNotOverrideEnvironment(t *testing.T) {
	path := writeEnvFile(t, "SHOPIFY_ACCESS_TOKEN=from_file\nSHOPIFY_STORE_NAME=file-store\n")

	cfg, err := Load(Options{
		EnvFile:   path,
		LookupEnv: envMap(map[string]string{EnvAccessToken: "from_env"}),
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.AccessToken != "from_env" {
		t.Errorf("AccessToken = %q, want %q", cfg.AccessToken, "from_env")
	}
	if cfg.StoreName != "file-store" {
		t.Errorf("StoreName = %q, want %q", cfg.StoreName, "file-store")
	}
}

func TestLoad_ExplicitEnvFileMissing(t *testing.T) {
	_, err := Load(Options{
		EnvFile:   filepath.Join(t.TempDir(), "missing.env"),
		LookupEnv: envMap(nil),
	})
	if !errors.Is(err, ErrEnvFile) {
		t.Errorf("Load() error = %v, want %v", err, ErrEnvFile)
	}
}

func TestLoad_EndpointOverride(t *testing.T) {
	cfg, err := Load(Options{
		SkipEnvFile: true,
		LookupEnv: envMap(map[string]string{
			EnvAccessToken: "t",
			EnvAPIURL:      "http://127.0.0.1:8080/graphql.json",
		}),
	})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if err := Validate(cfg); err != nil {
		t.Errorf("Validate() = %v, want nil with endpoint override", err)
	}
	if cfg.URL() != "http://127.0.0.1:8080/graphql.json" {
		t.Errorf("URL() = %q", cfg.URL())
	}
}

func TestValidate_ReportsAllMissing(t *testing.T) {
	err := Validate(admin.Config{})
	if !errors.Is(err, ErrMissingAccessToken) {
		t.Errorf("Validate() = %v, want %v", err, ErrMissingAccessToken)
	}
	if !errors.Is(err, ErrMissingStoreName) {
		t.Errorf("Validate() = %v, want %v", err, ErrMissingStoreName)
	}

	err = Validate(admin.Config{AccessToken: "t"})
	if errors.Is(err, ErrMissingAccessToken) {
		t.Errorf("Validate() = %v, did not want %v", err, ErrMissingAccessToken)
	}
	if !errors.Is(err, ErrMissingStoreName) {
		t.Errorf("Validate() = %v, want %v", err, ErrMissingStoreName)
	}

	if err := Validate(admin.Config{AccessToken: "t", StoreName: "acme"}); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}
