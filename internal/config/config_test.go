package config

import (
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_ModeDefaultsByEnv(t *testing.T) {
	t.Run("prod talks to the provider directly", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvProd)
		t.Setenv("FOOTBALL_DATA_MODE", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.FootballDataMode != ModeDirect {
			t.Fatalf("expected direct mode in prod, got=%s", cfg.FootballDataMode)
		}
		if cfg.FootballDataURL() != "https://api.football-data.org/v4" {
			t.Fatalf("unexpected base url: %s", cfg.FootballDataURL())
		}
	})

	t.Run("dev goes through the proxy path", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("FOOTBALL_DATA_MODE", "")
		t.Setenv("FOOTBALL_DATA_PROXY_URL", "http://localhost:1024/api/")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.FootballDataMode != ModeProxy {
			t.Fatalf("expected proxy mode in dev, got=%s", cfg.FootballDataMode)
		}
		if cfg.FootballDataURL() != "http://localhost:1024/api" {
			t.Fatalf("unexpected proxy url: %s", cfg.FootballDataURL())
		}
	})
}

func TestLoad_InvalidMode(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("FOOTBALL_DATA_MODE", "sideways")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid FOOTBALL_DATA_MODE")
	}
}

func TestLoad_FootballDataSettings(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("FOOTBALL_DATA_API_KEY", " secret-token ")
	t.Setenv("FOOTBALL_DATA_TIMEOUT", "7s")
	t.Setenv("DISPLAY_LOCALE", "en-GB")
	t.Setenv("DISPLAY_TIMEZONE", "UTC")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.FootballDataAPIKey != "secret-token" {
		t.Fatalf("unexpected api key: %q", cfg.FootballDataAPIKey)
	}
	if cfg.FootballDataTimeout != 7*time.Second {
		t.Fatalf("unexpected timeout: %s", cfg.FootballDataTimeout)
	}
	if cfg.DisplayLocale.String() != "en-GB" {
		t.Fatalf("unexpected locale: %s", cfg.DisplayLocale)
	}
	if cfg.DisplayTimezone.String() != "UTC" {
		t.Fatalf("unexpected timezone: %s", cfg.DisplayTimezone)
	}
}

func TestLoad_RejectsNonPositiveTimeout(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("FOOTBALL_DATA_TIMEOUT", "0s")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for FOOTBALL_DATA_TIMEOUT=0s")
	}
}

func TestLoad_RejectsUnknownTimezone(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("DISPLAY_TIMEZONE", "Mars/Olympus_Mons")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unknown DISPLAY_TIMEZONE")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_PyroscopeRequiresServerAddress(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}
