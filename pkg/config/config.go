package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config groups the whole application configuration. Values are read via
// Viper from env vars and, optionally, from a local .env file.
type Config struct {
	App        AppConfig
	DB         DBConfig
	JWT        JWTConfig
	HTTP       HTTPConfig
	Cloudinary CloudinaryConfig
	Auth       AuthConfig
}

// AppConfig general application settings.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// DBConfig PostgreSQL settings. When DatabaseURL is set it is used verbatim
// as the connection string; otherwise the DSN is built from the parts.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString returns DatabaseURL when present, the built DSN otherwise.
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN builds a postgres connection string, URL-encoding the credentials.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// JWTConfig token settings. Access and refresh tokens are signed with
// separate secrets so either can be rotated independently.
type JWTConfig struct {
	AccessSecret  string
	RefreshSecret string
	AccessHours   int // access token lifetime in hours
	RefreshHours  int // refresh token lifetime in hours
	Issuer        string
}

// CloudinaryConfig asset upload settings. Empty CloudName disables uploads.
type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
	Folder    string
}

// AuthConfig credential policy knobs.
// UniqueAmongActiveOnly scopes email/phone/PAN uniqueness checks to rows that
// are not soft-deleted. The historical behavior checks every row, which keeps
// a released email blocked forever; both behaviors are intentional options.
type AuthConfig struct {
	UniqueAmongActiveOnly bool
	BcryptCost            int
}

// HTTPConfig HTTP server settings.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr returns the listen address (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load reads configuration from env vars and an optional .env file.
// Env vars win. Expected names: APP_ENV, DB_HOST, ACCESS_TOKEN_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // missing file is fine

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "storekart-api"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "storekart"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		JWT: JWTConfig{
			AccessSecret:  getString(v, "ACCESS_TOKEN_SECRET", ""),
			RefreshSecret: getString(v, "REFRESH_TOKEN_SECRET", ""),
			AccessHours:   getInt(v, "ACCESS_TOKEN_EXPIRY_HOURS", 24),
			RefreshHours:  getInt(v, "REFRESH_TOKEN_EXPIRY_HOURS", 240),
			Issuer:        getString(v, "JWT_ISSUER", "storekart"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8000),
		},
		Cloudinary: CloudinaryConfig{
			CloudName: getString(v, "CLOUDINARY_CLOUD_NAME", ""),
			APIKey:    getString(v, "CLOUDINARY_API_KEY", ""),
			APISecret: getString(v, "CLOUDINARY_API_SECRET", ""),
			Folder:    getString(v, "CLOUDINARY_FOLDER", "storekart"),
		},
		Auth: AuthConfig{
			UniqueAmongActiveOnly: getBool(v, "AUTH_UNIQUE_ACTIVE_ONLY", false),
			BcryptCost:            getInt(v, "AUTH_BCRYPT_COST", 10),
		},
	}

	if cfg.JWT.AccessSecret != "" && cfg.JWT.AccessSecret == cfg.JWT.RefreshSecret {
		return nil, fmt.Errorf("config: ACCESS_TOKEN_SECRET and REFRESH_TOKEN_SECRET must differ")
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}
