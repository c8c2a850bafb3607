package observability

import (
	"context"
	"testing"

	"github.com/riskibarqy/football-center/internal/config"
	"github.com/riskibarqy/football-center/internal/platform/logging"
	"golang.org/x/text/language"
)

func TestInitUptrace_Disabled(t *testing.T) {
	cfg := config.Config{
		UptraceEnabled: false,
		ServiceName:    "football-center-api",
		ServiceVersion: "dev",
		AppEnv:         config.EnvDev,
	}

	shutdown, err := InitUptrace(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("init uptrace: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown uptrace: %v", err)
	}
}

func TestInitUptrace_EmptyDSNStaysDisabled(t *testing.T) {
	cfg := config.Config{UptraceEnabled: true, UptraceDSN: "  "}

	shutdown, err := InitUptrace(cfg, nil)
	if err != nil {
		t.Fatalf("init uptrace: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown uptrace: %v", err)
	}
}

func TestUptraceDisabledReason(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.Config
		want string
	}{
		{name: "disabled", cfg: config.Config{UptraceDSN: "https://token@api.uptrace.dev/1"}, want: "UPTRACE_ENABLED=false"},
		{name: "blank dsn", cfg: config.Config{UptraceEnabled: true, UptraceDSN: " "}, want: "UPTRACE_DSN empty"},
		{name: "enabled", cfg: config.Config{UptraceEnabled: true, UptraceDSN: "https://token@api.uptrace.dev/1"}, want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := uptraceDisabledReason(tt.cfg); got != tt.want {
				t.Fatalf("reason=%q want=%q", got, tt.want)
			}
		})
	}
}

func TestUptraceResource(t *testing.T) {
	cfg := config.Config{
		FootballDataMode: config.ModeProxy,
		ProxyEnabled:     true,
		DisplayLocale:    language.MustParse("tr-TR"),
	}

	got := map[string]string{}
	for _, kv := range uptraceResource(cfg) {
		got[string(kv.Key)] = kv.Value.Emit()
	}
	if got["football_data.mode"] != "proxy" || got["football_data.proxy_enabled"] != "true" || got["display.locale"] != "tr-TR" {
		t.Fatalf("unexpected resource attributes: %v", got)
	}

	if attrs := uptraceResource(config.Config{FootballDataMode: config.ModeDirect}); len(attrs) != 2 {
		t.Fatalf("expected no locale attribute for an unset tag, got=%v", attrs)
	}
}
