package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port          string `env:"PORT,           default=8080"`
	Env           string `env:"ENV,            default=development"`
	SessionSecret string `env:"SESSION_SECRET, default=dev-session-secret"`
	LogLevel      string `env:"LOG_LEVEL,      default=info"`

	Mongo MongoConfig
	Blob  BlobConfig
	Redis RedisConfig
	Admin AdminConfig
}

// MongoConfig points at the document store. An empty URI selects the
// in-memory fallback store instead of failing startup.
type MongoConfig struct {
	URI               string `env:"MONGO_URI"`
	Database          string `env:"MONGO_DB,            default=issuetrack"`
	UsersCollection   string `env:"USERS_COLLECTION,    default=users"`
	ReportsCollection string `env:"REPORTS_COLLECTION,  default=reports"`
}

// BlobConfig points at the B2 bucket holding report images. Empty
// credentials select the in-memory fallback blob store.
type BlobConfig struct {
	AccountID string `env:"B2_ACCOUNT_ID"`
	AppKey    string `env:"B2_APP_KEY"`
	Bucket    string `env:"B2_BUCKET, default=report-images"`
}

// RedisConfig points at the optional session-revocation store. An empty
// address disables server-side revocation entirely.
type RedisConfig struct {
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// AdminConfig holds the shared admin account settings.
type AdminConfig struct {
	Email    string `env:"ADMIN_EMAIL,    default=admin@issuetrack.com"`
	Password string `env:"ADMIN_PASSWORD, default=admin123456"`
	Passcode string `env:"ADMIN_PASSCODE, default=admin123"`
}

// Production reports whether the service runs in production mode; it drives
// the session cookie's Secure flag.
func (c *Config) Production() bool {
	return c.Env == "production"
}

// StoreFallback reports whether the document store is unconfigured and the
// in-memory fallback should be used.
func (c *Config) StoreFallback() bool {
	return c.Mongo.URI == ""
}

// BlobFallback reports whether the blob store is unconfigured and the
// in-memory fallback should be used.
func (c *Config) BlobFallback() bool {
	return c.Blob.AccountID == "" || c.Blob.AppKey == ""
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
