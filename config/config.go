package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// 存储后端
const (
	BackendMemory = "memory"
	BackendMySQL  = "mysql"
	BackendRedis  = "redis"
)

// Config 服务配置
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Log    LogConfig    `mapstructure:"log"`
	Auth   AuthConfig   `mapstructure:"auth"`
	Store  StoreConfig  `mapstructure:"store"`
	MySQL  MySQLConfig  `mapstructure:"mysql"`
	Redis  RedisConfig  `mapstructure:"redis"`
	Soil   SoilConfig   `mapstructure:"soil"`
}

// ServerConfig HTTP 服务配置
type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// AuthConfig 令牌配置
type AuthConfig struct {
	JWTSecret string        `mapstructure:"jwtSecret"`
	TokenTTL  time.Duration `mapstructure:"tokenTTL"`
}

// StoreConfig 存储后端选择
type StoreConfig struct {
	Backend string `mapstructure:"backend"`
}

// MySQLConfig 数据库连接信息
type MySQLConfig struct {
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Host     string `mapstructure:"host"`
	DBName   string `mapstructure:"dbname"`
}

// RedisConfig Redis 连接信息
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// SoilConfig 土壤模块配置
type SoilConfig struct {
	MaxReportBytes int64 `mapstructure:"maxReportBytes"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("auth.jwtSecret", "krushivishwa-dev-secret")
	v.SetDefault("auth.tokenTTL", 7*24*time.Hour)
	v.SetDefault("store.backend", BackendMemory)
	v.SetDefault("mysql.username", "root")
	v.SetDefault("mysql.password", "root")
	v.SetDefault("mysql.host", "127.0.0.1:3306")
	v.SetDefault("mysql.dbname", "krushivishwa")
	v.SetDefault("redis.addr", "127.0.0.1:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("soil.maxReportBytes", 10<<20)
}

// Load 依次读取默认值、配置文件和 KRUSHI_ 前缀的环境变量
//
// path 为空时在当前目录查找 krushi.yaml / krushi.json，找不到不算错误。
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	} else {
		v.SetConfigName("krushi")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	v.SetEnvPrefix("KRUSHI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func validateConfig(cfg *Config) error {
	switch cfg.Store.Backend {
	case BackendMemory, BackendMySQL, BackendRedis:
	default:
		return fmt.Errorf("invalid store backend: %s. Must be 'memory', 'mysql', or 'redis'", cfg.Store.Backend)
	}

	switch cfg.Server.Mode {
	case "release", "debug", "test":
	default:
		return fmt.Errorf("invalid server mode: %s", cfg.Server.Mode)
	}

	if cfg.Server.Port == "" {
		return errors.New("server port is required")
	}
	if cfg.Auth.JWTSecret == "" {
		return errors.New("auth jwt secret is required")
	}
	if cfg.Auth.TokenTTL <= 0 {
		return errors.New("auth token ttl must be positive")
	}
	if cfg.Soil.MaxReportBytes <= 0 {
		return errors.New("soil max report bytes must be positive")
	}
	return nil
}
