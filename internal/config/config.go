package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/football-center/internal/platform/logging"
	"golang.org/x/text/language"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

const (
	// ModeDirect talks to the football-data host with the access token.
	ModeDirect = "direct"
	// ModeProxy talks to a same-origin reverse proxy that injects the token.
	ModeProxy = "proxy"
)

const (
	defaultFootballDataBaseURL  = "https://api.football-data.org/v4"
	defaultFootballDataProxyURL = "http://localhost:8080/api"
)

// Config stores runtime configuration for the service and terminal client.
type Config struct {
	AppEnv                 string
	ServiceName            string
	ServiceVersion         string
	HTTPAddr               string
	ReadTimeout            time.Duration
	WriteTimeout           time.Duration
	CORSAllowedOrigins     []string
	LogLevel               logging.Level
	FootballDataAPIKey     string
	FootballDataMode       string
	FootballDataBaseURL    string
	FootballDataProxyURL   string
	FootballDataTimeout    time.Duration
	ProxyEnabled           bool
	DisplayLocale          language.Tag
	DisplayTimezone        *time.Location
	UptraceEnabled         bool
	UptraceDSN             string
	UptraceLogsEnabled     bool
	PyroscopeEnabled       bool
	PyroscopeServerAddress string
	PyroscopeAppName       string
	PyroscopeAuthToken     string
	PyroscopeUploadRate    time.Duration
	PprofEnabled           bool
	PprofAddr              string
}

// FootballDataURL is the base URL the API client uses for the selected mode.
func (c Config) FootballDataURL() string {
	if c.FootballDataMode == ModeProxy {
		return c.FootballDataProxyURL
	}
	return c.FootballDataBaseURL
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	defaultMode := ModeProxy
	if appEnv == EnvProd {
		defaultMode = ModeDirect
	}
	mode, err := parseMode(getEnv("FOOTBALL_DATA_MODE", defaultMode))
	if err != nil {
		return Config{}, err
	}

	footballDataTimeout, err := time.ParseDuration(getEnv("FOOTBALL_DATA_TIMEOUT", "20s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse FOOTBALL_DATA_TIMEOUT: %w", err)
	}
	if footballDataTimeout <= 0 {
		return Config{}, fmt.Errorf("FOOTBALL_DATA_TIMEOUT must be > 0")
	}

	proxyEnabled, err := strconv.ParseBool(getEnv("PROXY_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PROXY_ENABLED: %w", err)
	}

	baseURL := strings.TrimRight(strings.TrimSpace(getEnv("FOOTBALL_DATA_BASE_URL", defaultFootballDataBaseURL)), "/")
	proxyURL := strings.TrimRight(strings.TrimSpace(getEnv("FOOTBALL_DATA_PROXY_URL", defaultFootballDataProxyURL)), "/")

	displayLocale, err := language.Parse(strings.TrimSpace(getEnv("DISPLAY_LOCALE", "tr-TR")))
	if err != nil {
		return Config{}, fmt.Errorf("parse DISPLAY_LOCALE: %w", err)
	}
	displayTimezone, err := time.LoadLocation(strings.TrimSpace(getEnv("DISPLAY_TIMEZONE", "Europe/Istanbul")))
	if err != nil {
		return Config{}, fmt.Errorf("parse DISPLAY_TIMEZONE: %w", err)
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	uptraceLogsEnabled, err := strconv.ParseBool(getEnv("UPTRACE_LOGS_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_LOGS_ENABLED: %w", err)
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}

	cfg := Config{
		AppEnv:                 appEnv,
		ServiceName:            getEnv("APP_SERVICE_NAME", "football-center-api"),
		ServiceVersion:         getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:               getEnv("APP_HTTP_ADDR", ":8080"),
		ReadTimeout:            readTimeout,
		WriteTimeout:           writeTimeout,
		CORSAllowedOrigins:     splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		LogLevel:               parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
		FootballDataAPIKey:     strings.TrimSpace(getEnv("FOOTBALL_DATA_API_KEY", "")),
		FootballDataMode:       mode,
		FootballDataBaseURL:    baseURL,
		FootballDataProxyURL:   proxyURL,
		FootballDataTimeout:    footballDataTimeout,
		ProxyEnabled:           proxyEnabled,
		DisplayLocale:          displayLocale,
		DisplayTimezone:        displayTimezone,
		UptraceEnabled:         uptraceEnabled,
		UptraceDSN:             uptraceDSN,
		UptraceLogsEnabled:     uptraceLogsEnabled,
		PyroscopeEnabled:       pyroscopeEnabled,
		PyroscopeServerAddress: pyroscopeServerAddress,
		PyroscopeAuthToken:     strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeUploadRate:    pyroscopeUploadRate,
		PprofEnabled:           pprofEnabled,
		PprofAddr:              strings.TrimSpace(getEnv("PPROF_ADDR", ":6060")),
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))

	if cfg.FootballDataURL() == "" {
		return Config{}, fmt.Errorf("football-data base url cannot be empty for mode %q", cfg.FootballDataMode)
	}
	if cfg.ProxyEnabled && cfg.FootballDataBaseURL == "" {
		return Config{}, fmt.Errorf("FOOTBALL_DATA_BASE_URL is required when PROXY_ENABLED=true")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}
	if cfg.PprofEnabled && cfg.PprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	return cfg, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

func parseMode(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case ModeDirect, ModeProxy:
		return value, nil
	default:
		return "", fmt.Errorf("invalid FOOTBALL_DATA_MODE %q: valid values are %s, %s", v, ModeDirect, ModeProxy)
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}
