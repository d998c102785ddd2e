package config

import (
	"testing"
	"time"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, key := range []string{"STORE_DRIVER", "SEED_ON_START", "NOTIFY_DRIVER", "SMTP_PORT", "CORS_ALLOWED_ORIGINS", "NOTIFY_TIMEOUT_SECONDS"} {
		t.Setenv(key, "")
	}
	cfg := FromEnv()

	if cfg.StoreDriver != StoreMemory {
		t.Fatalf("expected memory store, got %q", cfg.StoreDriver)
	}
	if !cfg.SeedOnStart {
		t.Fatalf("expected seeding on start by default")
	}
	if cfg.Notify.Driver != NotifyLog {
		t.Fatalf("expected log notifier, got %q", cfg.Notify.Driver)
	}
	if cfg.Notify.SMTPPort != 587 {
		t.Fatalf("expected smtp port 587, got %d", cfg.Notify.SMTPPort)
	}
	if len(cfg.CORSOrigins) != 1 || cfg.CORSOrigins[0] != "*" {
		t.Fatalf("unexpected cors origins %v", cfg.CORSOrigins)
	}
	if cfg.Notify.Timeout != 15*time.Second {
		t.Fatalf("unexpected notify timeout %s", cfg.Notify.Timeout)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "Postgres")
	t.Setenv("SEED_ON_START", "false")
	t.Setenv("SMTP_PORT", "465")
	t.Setenv("SMTP_SECURE", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("SHUTDOWN_TIMEOUT_SECONDS", "3")
	t.Setenv("NOTIFY_DRIVER", "sendgrid")

	cfg := FromEnv()
	if cfg.StoreDriver != StorePostgres {
		t.Fatalf("expected postgres store, got %q", cfg.StoreDriver)
	}
	if cfg.SeedOnStart {
		t.Fatalf("expected seeding disabled")
	}
	if cfg.Notify.SMTPPort != 465 || !cfg.Notify.SMTPSecure {
		t.Fatalf("unexpected smtp settings %+v", cfg.Notify)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://b.example" {
		t.Fatalf("unexpected cors origins %v", cfg.CORSOrigins)
	}
	if cfg.ShutdownTimeout != 3*time.Second {
		t.Fatalf("unexpected shutdown timeout %s", cfg.ShutdownTimeout)
	}
	if cfg.Notify.Driver != NotifySendGrid {
		t.Fatalf("expected sendgrid, got %q", cfg.Notify.Driver)
	}
}

func TestFromEnvIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("SMTP_PORT", "abc")
	t.Setenv("SEED_ON_START", "maybe")

	cfg := FromEnv()
	if cfg.Notify.SMTPPort != 587 {
		t.Fatalf("expected default port, got %d", cfg.Notify.SMTPPort)
	}
	if !cfg.SeedOnStart {
		t.Fatalf("expected default seed flag")
	}
}
