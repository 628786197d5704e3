package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	Redis    RedisConfig
	CORS     CORSConfig
	Log      LogConfig
	Shopper  ShopperConfig
	Checkout CheckoutConfig
	Webhook  WebhookConfig
	Coupon   CouponConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"UTC"`
	MaxConns int32  `envconfig:"DB_MAX_CONNS" default:"20"`
}

type RedisConfig struct {
	Addr     string        `envconfig:"REDIS_ADDR" required:"true"`
	Password string        `envconfig:"REDIS_PASSWORD" default:""`
	DB       int           `envconfig:"REDIS_DB" default:"0"`
	CartTTL  time.Duration `envconfig:"REDIS_CART_TTL" default:"720h"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,X-Shopper-Token"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Shopper-Token"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

// ShopperConfig controls the anonymous shopper cookie that keys carts and checkout sessions.
type ShopperConfig struct {
	TokenSecret   string        `envconfig:"SHOPPER_TOKEN_SECRET" required:"true"`
	TokenDuration time.Duration `envconfig:"SHOPPER_TOKEN_DURATION" default:"720h"`
	CookieDomain  string        `envconfig:"SHOPPER_COOKIE_DOMAIN" default:""`
	CookieSecure  bool          `envconfig:"SHOPPER_COOKIE_SECURE" default:"true"`
	SameSite      string        `envconfig:"SHOPPER_COOKIE_SAMESITE" default:"Lax"`
}

type CheckoutConfig struct {
	QuiescentDelay time.Duration `envconfig:"CHECKOUT_QUIESCENT_DELAY" default:"5s"`
	MinPhoneDigits int           `envconfig:"CHECKOUT_MIN_PHONE_DIGITS" default:"10"`
	EmitTimeout    time.Duration `envconfig:"CHECKOUT_EMIT_TIMEOUT" default:"10s"`
}

type WebhookConfig struct {
	URL              string        `envconfig:"WEBHOOK_URL" required:"true"`
	Secret           string        `envconfig:"WEBHOOK_SECRET" default:""`
	Timeout          time.Duration `envconfig:"WEBHOOK_TIMEOUT" default:"5s"`
	BreakerFailures  uint32        `envconfig:"WEBHOOK_BREAKER_FAILURES" default:"5"`
	BreakerOpenDelay time.Duration `envconfig:"WEBHOOK_BREAKER_OPEN_DELAY" default:"30s"`
}

type CouponConfig struct {
	CacheTTL time.Duration `envconfig:"COUPON_CACHE_TTL" default:"5m"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "UTC",
			MaxConns: 5,
		},
		Redis: RedisConfig{
			Addr:    "localhost:16379",
			CartTTL: time.Hour,
		},
		CORS: CORSConfig{
			AllowOrigins:     []string{"http://localhost:3000"},
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Shopper-Token"},
			ExposeHeaders:    []string{"Content-Length", "X-Shopper-Token"},
			AllowCredentials: true,
			MaxAge:           time.Hour,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Shopper: ShopperConfig{
			TokenSecret:   "test-shopper-secret",
			TokenDuration: time.Hour,
			SameSite:      "Lax",
		},
		Checkout: CheckoutConfig{
			QuiescentDelay: 2 * time.Second,
			MinPhoneDigits: 10,
			EmitTimeout:    time.Second,
		},
		Webhook: WebhookConfig{
			URL:              "http://localhost:18080/hooks/checkout",
			Timeout:          time.Second,
			BreakerFailures:  3,
			BreakerOpenDelay: time.Second,
		},
		Coupon: CouponConfig{
			CacheTTL: time.Minute,
		},
	}
}
