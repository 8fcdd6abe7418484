package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "lumora"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvDBDSN  = "LUMORA_DB_DSN"
	EnvDBHost = "LUMORA_DB_HOST"
	EnvDBUser = "LUMORA_DB_USER"
	EnvDBName = "LUMORA_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	Selection    SelectionConfig
	CORS         CORSConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"LUMORA_APP_ENV" required:"true"`
	Port         string `envconfig:"LUMORA_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"LUMORA_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"LUMORA_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"LUMORA_DB_DSN"`
	Driver string `envconfig:"LUMORA_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"LUMORA_DB_HOST"`
	LegacyPort     int    `envconfig:"LUMORA_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"LUMORA_DB_USER"`
	LegacyPassword string `envconfig:"LUMORA_DB_PASSWORD"`
	LegacyName     string `envconfig:"LUMORA_DB_NAME"`
	LegacySSLMode  string `envconfig:"LUMORA_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"LUMORA_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"LUMORA_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"LUMORA_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"LUMORA_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"LUMORA_REDIS_URL" required:"true"`
	Address      string        `envconfig:"LUMORA_REDIS_ADDR"`
	Password     string        `envconfig:"LUMORA_REDIS_PASSWORD"`
	DB           int           `envconfig:"LUMORA_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"LUMORA_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"LUMORA_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"LUMORA_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"LUMORA_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"LUMORA_REDIS_WRITE_TIMEOUT" default:"5s"`
}

// SelectionConfig bounds the lifetime of per-session variant selections.
type SelectionConfig struct {
	TTL time.Duration `envconfig:"LUMORA_SELECTION_TTL" default:"24h"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"LUMORA_CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"LUMORA_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
