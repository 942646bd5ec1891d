package config

import (
	"testing"
	"time"
)

func TestS3ConfigIsConfigured(t *testing.T) {
	t.Run("empty config is not configured", func(t *testing.T) {
		cfg := S3Config{}
		if cfg.IsConfigured() {
			t.Fatal("expected IsConfigured=false for empty config")
		}
	})

	t.Run("aws without endpoint is configured", func(t *testing.T) {
		cfg := S3Config{
			Region:          "ap-south-1",
			Bucket:          "thali-reports",
			AccessKeyID:     "key",
			SecretAccessKey: "secret",
		}
		if !cfg.IsConfigured() {
			t.Fatal("expected IsConfigured=true when all required fields are set")
		}
	})

	t.Run("public url required when preferred", func(t *testing.T) {
		cfg := S3Config{
			Region:          "ap-south-1",
			Bucket:          "thali-reports",
			AccessKeyID:     "key",
			SecretAccessKey: "secret",
			PreferPublicURL: true,
		}
		if cfg.IsConfigured() {
			t.Fatal("expected IsConfigured=false without S3_PUBLIC_BASE_URL")
		}
	})
}

func TestS3ConfigMissingRequired(t *testing.T) {
	cfg := S3Config{
		Endpoint: "http://localhost:9000",
		Bucket:   "thali-reports",
	}
	missing := cfg.MissingRequired()

	want := []string{"S3_REGION", "S3_ACCESS_KEY_ID", "S3_SECRET_ACCESS_KEY"}
	if len(missing) != len(want) {
		t.Fatalf("expected %d missing fields, got %d (%v)", len(want), len(missing), missing)
	}
	for i := range want {
		if missing[i] != want[i] {
			t.Fatalf("expected missing[%d]=%s, got %s", i, want[i], missing[i])
		}
	}
}

func TestS3ConfigDiagnostics(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		level, code, _ := (S3Config{}).Diagnostics()
		if level != "INFO" || code != "s3_not_configured" {
			t.Fatalf("expected INFO/s3_not_configured, got %s/%s", level, code)
		}
	})

	t.Run("partial config", func(t *testing.T) {
		level, code, _ := (S3Config{Endpoint: "http://localhost:9000"}).Diagnostics()
		if level != "WARN" || code != "s3_partial_config" {
			t.Fatalf("expected WARN/s3_partial_config, got %s/%s", level, code)
		}
	})

	t.Run("ready", func(t *testing.T) {
		level, code, _ := (S3Config{
			Endpoint:        "http://localhost:9000",
			Region:          "us-east-1",
			Bucket:          "thali-reports",
			AccessKeyID:     "key",
			SecretAccessKey: "secret",
		}).Diagnostics()
		if level != "INFO" || code != "s3_ready" {
			t.Fatalf("expected INFO/s3_ready, got %s/%s", level, code)
		}
	})
}

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"APP_ENV", "ENV", "PORT", "STORAGE_MODE", "SQLITE_PATH", "AUTH_MODE", "AUTH_REQUIRED",
		"MEALS_MAX_PER_DAY", "DEFAULT_CALORIE_TARGET", "MEAL_TEMPLATE_PATH", "BLOB_MODE", "REPORTS_MAX_RANGE_DAYS", "TIMEZONE"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Env != "local" || cfg.Port != 8080 {
		t.Errorf("expected local:8080, got %s:%d", cfg.Env, cfg.Port)
	}
	if cfg.StorageMode != StorageModeAuto || cfg.SQLitePath != "thali.db" {
		t.Errorf("unexpected storage defaults: %s %s", cfg.StorageMode, cfg.SQLitePath)
	}
	if cfg.MealsMaxPerDay != 4 || cfg.DefaultCalorieTarget != 2000 {
		t.Errorf("unexpected meal defaults: %d %d", cfg.MealsMaxPerDay, cfg.DefaultCalorieTarget)
	}
	if cfg.AuthMode != AuthModeNone || cfg.AuthRequired {
		t.Errorf("expected auth disabled, got %s required=%t", cfg.AuthMode, cfg.AuthRequired)
	}
	if cfg.Blob.Mode != BlobModeLocal || cfg.ReportsMaxRangeDays != 90 {
		t.Errorf("unexpected report defaults: %s %d", cfg.Blob.Mode, cfg.ReportsMaxRangeDays)
	}
	if cfg.Location() != time.Local {
		t.Error("expected local timezone")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STORAGE_MODE", "SQLite")
	t.Setenv("SQLITE_PATH", "/tmp/meals.db")
	t.Setenv("AUTH_MODE", "dev")
	t.Setenv("AUTH_REQUIRED", "true")
	t.Setenv("MEALS_MAX_PER_DAY", "6")
	t.Setenv("DEFAULT_CALORIE_TARGET", "-5")
	t.Setenv("BLOB_MODE", "bogus")
	t.Setenv("TIMEZONE", "UTC")

	cfg := Load()
	if cfg.StorageMode != StorageModeSQLite || cfg.SQLitePath != "/tmp/meals.db" {
		t.Errorf("unexpected storage: %s %s", cfg.StorageMode, cfg.SQLitePath)
	}
	if cfg.AuthMode != AuthModeDev || !cfg.AuthRequired {
		t.Errorf("expected dev auth required, got %s %t", cfg.AuthMode, cfg.AuthRequired)
	}
	if cfg.MealsMaxPerDay != 6 {
		t.Errorf("expected 6 meals per day, got %d", cfg.MealsMaxPerDay)
	}
	if cfg.DefaultCalorieTarget != 2000 {
		t.Errorf("expected invalid target to fall back to 2000, got %d", cfg.DefaultCalorieTarget)
	}
	if cfg.Blob.Mode != BlobModeLocal {
		t.Errorf("expected unknown blob mode to fall back to local, got %s", cfg.Blob.Mode)
	}
	if loc := cfg.Location(); loc != time.UTC && loc.String() != "UTC" {
		t.Errorf("expected UTC, got %s", loc)
	}
}
