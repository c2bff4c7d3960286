// Package config は環境変数と .env からアプリケーション設定を読み込みます。
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DevJWTSecret は JWT_SECRET が未設定のときに使われる開発用のシークレットです。
const DevJWTSecret = "dev-secret-change-me"

const (
	DriverSQLite = "sqlite"
	DriverMySQL  = "mysql"
)

// Config はサーバー全体の設定です。
type Config struct {
	Port int

	// DBDriver は "sqlite" または "mysql"
	DBDriver string
	// DBPath は sqlite のデータベースファイル
	DBPath string

	// mysql 用の接続情報
	DBUser string
	DBPass string
	DBHost string
	DBPort string
	DBName string

	JWTSecret string
	// JWTTTL が 0 の場合、トークンに有効期限を付けない
	JWTTTL time.Duration

	CORSOrigins []string
	LogLevel    string
	GinMode     string
}

// SetDefaults はviperにデフォルト値を登録します。
func SetDefaults(v *viper.Viper) {
	v.SetDefault("port", 3004)
	v.SetDefault("db_driver", DriverSQLite)
	v.SetDefault("db_path", "todos.db")
	v.SetDefault("db_host", "127.0.0.1")
	v.SetDefault("db_port", "3306")
	v.SetDefault("jwt_secret", "")
	v.SetDefault("jwt_ttl", "24h")
	v.SetDefault("cors_origins", "*")
	v.SetDefault("log_level", "info")
	v.SetDefault("gin_mode", "release")
}

// Load は envFile (存在すれば) を読み込み、環境変数から Config を構築します。
func Load(v *viper.Viper, envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	SetDefaults(v)
	v.AutomaticEnv()

	cfg := &Config{
		Port:        v.GetInt("port"),
		DBDriver:    strings.ToLower(v.GetString("db_driver")),
		DBPath:      v.GetString("db_path"),
		DBUser:      v.GetString("db_user"),
		DBPass:      v.GetString("db_pass"),
		DBHost:      v.GetString("db_host"),
		DBPort:      v.GetString("db_port"),
		DBName:      v.GetString("db_name"),
		JWTSecret:   v.GetString("jwt_secret"),
		JWTTTL:      v.GetDuration("jwt_ttl"),
		CORSOrigins: splitList(v.GetString("cors_origins")),
		LogLevel:    v.GetString("log_level"),
		GinMode:     v.GetString("gin_mode"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate は設定値の整合性を確認します。
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	switch c.DBDriver {
	case DriverSQLite:
		if c.DBPath == "" {
			return errors.New("DB_PATH is required for the sqlite driver")
		}
	case DriverMySQL:
		if c.DBName == "" {
			return errors.New("DB_NAME is required for the mysql driver")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
	if c.JWTTTL < 0 {
		return fmt.Errorf("invalid JWT_TTL %s", c.JWTTTL)
	}
	return nil
}

// UsesDevSecret は JWT_SECRET が設定されていないかどうかを返します。
func (c *Config) UsesDevSecret() bool {
	return c.JWTSecret == ""
}

// Secret はトークン署名に使うシークレットを返します。
func (c *Config) Secret() []byte {
	if c.UsesDevSecret() {
		return []byte(DevJWTSecret)
	}
	return []byte(c.JWTSecret)
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
