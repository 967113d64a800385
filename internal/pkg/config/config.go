package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, backend URL, etc.)
// - default: Values common across all environments (timezone, catalog, timeouts, etc.)
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	Backend   BackendConfig
	Booking   BookingConfig
	Currency  CurrencyConfig
	Session   SessionConfig
	Cookie    CookieConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Log       LogConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type BackendConfig struct {
	// e.g. https://agenda-backend.example.com/api
	BaseURL string        `envconfig:"BACKEND_URL" required:"true"`
	Timeout time.Duration `envconfig:"BACKEND_TIMEOUT" default:"30s"`
	// how long the business profile from GET /config is reused
	ProfileTTL time.Duration `envconfig:"BACKEND_PROFILE_TTL" default:"5m"`
}

type BookingConfig struct {
	BusinessType string `envconfig:"BUSINESS_TYPE" default:"barberia"`
	TimeZone     string `envconfig:"BOOKING_TIMEZONE" default:"America/Montevideo"`
	HorizonDays  int    `envconfig:"BOOKING_HORIZON_DAYS" default:"60"`
	// ISO weekday, 1=Monday .. 7=Sunday
	ClosedWeekday int `envconfig:"BOOKING_CLOSED_WEEKDAY" default:"7"`
}

type CurrencyConfig struct {
	Symbol           string `envconfig:"CURRENCY_SYMBOL" default:"$"`
	Position         string `envconfig:"CURRENCY_POSITION" default:"before"`
	Decimals         int    `envconfig:"CURRENCY_DECIMALS" default:"0"`
	ThousandsSep     string `envconfig:"CURRENCY_THOUSANDS_SEPARATOR" default:"."`
	DecimalSeparator string `envconfig:"CURRENCY_DECIMAL_SEPARATOR" default:","`
}

type SessionConfig struct {
	IdleTTL       time.Duration `envconfig:"SESSION_IDLE_TTL" default:"30m"`
	SweepInterval time.Duration `envconfig:"SESSION_SWEEP_INTERVAL" default:"1m"`
}

type CookieConfig struct {
	Domain   string        `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool          `envconfig:"COOKIE_SECURE" default:"true"`
	SameSite string        `envconfig:"COOKIE_SAME_SITE" default:"Lax"`
	AdminTTL time.Duration `envconfig:"COOKIE_ADMIN_TTL" default:"24h"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type RateLimitConfig struct {
	// requests per minute per client IP on submit and admin login
	PerMinute int `envconfig:"RATE_LIMIT_PER_MINUTE" default:"20"`
	Burst     int `envconfig:"RATE_LIMIT_BURST" default:"5"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Montevideo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-10800"` // -3*60*60
}

// Location resolves the booking timezone, falling back to UTC-3 when tzdata is missing.
func (c BookingConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.FixedZone(c.TimeZone, -3*60*60)
	}
	return loc
}

// Weekday converts the ISO weekday setting to time.Weekday (7 -> Sunday).
func (c BookingConfig) Weekday() (time.Weekday, error) {
	if c.ClosedWeekday < 1 || c.ClosedWeekday > 7 {
		return 0, fmt.Errorf("BOOKING_CLOSED_WEEKDAY must be within 1..7, got %d", c.ClosedWeekday)
	}
	return time.Weekday(c.ClosedWeekday % 7), nil
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if _, err := cfg.Booking.Weekday(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Backend: BackendConfig{
			BaseURL:    "http://localhost:3000/api",
			Timeout:    2 * time.Second,
			ProfileTTL: time.Minute,
		},
		Booking: BookingConfig{
			BusinessType:  "barberia",
			TimeZone:      "America/Montevideo",
			HorizonDays:   60,
			ClosedWeekday: 7,
		},
		Currency: CurrencyConfig{
			Symbol:           "$",
			Position:         "before",
			Decimals:         0,
			ThousandsSep:     ".",
			DecimalSeparator: ",",
		},
		Session: SessionConfig{
			IdleTTL:       30 * time.Minute,
			SweepInterval: time.Minute,
		},
		Cookie: CookieConfig{
			Secure:   false,
			SameSite: "Lax",
			AdminTTL: 24 * time.Hour,
		},
		RateLimit: RateLimitConfig{
			PerMinute: 600,
			Burst:     100,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "America/Montevideo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: -10800,
		},
	}
}
