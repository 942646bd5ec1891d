package dbmigrate

import (
	"context"
	"strings"
	"testing"

	"github.com/fdg312/thali/internal/config"
)

func TestSelectDatabaseURL(t *testing.T) {
	tests := []struct {
		name        string
		cfg         config.Config
		wantURL     string
		wantSource  string
		wantWarning bool
	}{
		{
			name: "direct wins",
			cfg: config.Config{
				DatabaseURLDirect: "postgres://direct",
				DatabaseURLRaw:    "postgres://url",
				DatabaseURLPooled: "postgres://pooled",
			},
			wantURL:    "postgres://direct",
			wantSource: "DATABASE_URL_DIRECT",
		},
		{
			name:       "falls back to DATABASE_URL",
			cfg:        config.Config{DatabaseURLRaw: "postgres://url", DatabaseURLPooled: "postgres://pooled"},
			wantURL:    "postgres://url",
			wantSource: "DATABASE_URL",
		},
		{
			name:        "pooled with warning",
			cfg:         config.Config{DatabaseURLPooled: "postgres://pooled"},
			wantURL:     "postgres://pooled",
			wantSource:  "DATABASE_URL_POOLED",
			wantWarning: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, err := SelectDatabaseURL(&tt.cfg, false)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if sel.URL != tt.wantURL || sel.Source != tt.wantSource {
				t.Errorf("expected %s from %s, got %q from %q", tt.wantURL, tt.wantSource, sel.URL, sel.Source)
			}
			if (sel.Warning != "") != tt.wantWarning {
				t.Errorf("unexpected warning state: %q", sel.Warning)
			}
		})
	}
}

func TestSelectDatabaseURL_RequireDirect(t *testing.T) {
	cfg := &config.Config{DatabaseURLRaw: "postgres://url"}

	if _, err := SelectDatabaseURL(cfg, true); err == nil {
		t.Fatal("expected error when DATABASE_URL_DIRECT is missing")
	}

	cfg.DatabaseURLDirect = "postgres://direct"
	sel, err := SelectDatabaseURL(cfg, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sel.URL != "postgres://direct" {
		t.Errorf("expected direct URL, got %q", sel.URL)
	}
}

func TestSelectDatabaseURL_NoneConfigured(t *testing.T) {
	if _, err := SelectDatabaseURL(&config.Config{}, false); err == nil {
		t.Fatal("expected error with no database URL")
	}
}

func TestRun_RejectsBadInput(t *testing.T) {
	ctx := context.Background()

	err := Run(ctx, "drop-everything", "postgres://x", t.TempDir())
	if err == nil || !strings.Contains(err.Error(), "unsupported") {
		t.Errorf("expected unsupported command error, got %v", err)
	}

	if err := Run(ctx, "up", "", t.TempDir()); err == nil {
		t.Error("expected error for empty database URL")
	}

	err = Run(ctx, "status", "postgres://x", "does-not-exist")
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("expected missing directory error, got %v", err)
	}
}
