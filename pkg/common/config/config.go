package config

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/cloudwego/hertz/pkg/common/hlog"
)

const (
	DriverMySQL  = "mysql"
	DriverMemory = "memory"
)

type ServerConfig struct {
	Host string `koanf:"host"`
	Port int    `koanf:"port"`
}

// Address 返回 hertz 监听地址，例如 ":3000"
func (s ServerConfig) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

type CORSConfig struct {
	AllowOrigins     []string      `koanf:"allow_origins"`
	AllowMethods     []string      `koanf:"allow_methods"`
	AllowHeaders     []string      `koanf:"allow_headers"`
	ExposeHeaders    []string      `koanf:"expose_headers"`
	AllowCredentials bool          `koanf:"allow_credentials"`
	MaxAge           time.Duration `koanf:"max_age"`
}

type MiddlewareConfig struct {
	MaxBodySize int64      `koanf:"max_body_size"` // 单位：字节
	CORS        CORSConfig `koanf:"cors"`
}

// 数据库配置：优先使用 URL，未设置时由离散字段拼装
type DatabaseConfig struct {
	Driver      string `koanf:"driver"`       // mysql | memory
	URL         string `koanf:"url"`          // DSN 或 mysql:// URL
	Host        string `koanf:"host"`         // 数据库主机地址
	Port        int    `koanf:"port"`         // 数据库端口
	Username    string `koanf:"username"`     // 数据库用户名
	Password    string `koanf:"password"`     // 数据库密码
	DBName      string `koanf:"dbname"`       // 数据库名称
	MinPoolSize int    `koanf:"min_pool"`     // 连接池最小连接数
	MaxPoolSize int    `koanf:"max_pool"`     // 连接池最大连接数
	LogLevel    string `koanf:"log_level"`    // GORM日志级别
	AutoMigrate bool   `koanf:"auto_migrate"` // 连接成功后建表
}

type Config struct {
	Server     ServerConfig     `koanf:"server"`
	Database   DatabaseConfig   `koanf:"database"`
	Middleware MiddlewareConfig `koanf:"middleware"`
	Env        string           `koanf:"env"`       // 环境标识
	LogLevel   string           `koanf:"log_level"` // hlog 级别
}

// New 返回默认配置
func New() *Config {
	return &Config{
		Server: ServerConfig{
			Port: 3000,
		},
		Database: DatabaseConfig{
			Driver:      DriverMySQL,
			Host:        "localhost",
			Port:        3306,
			Username:    "root",
			Password:    "root",
			DBName:      "blog",
			MinPoolSize: 5,
			MaxPoolSize: 50,
			LogLevel:    "warn",
		},
		Middleware: MiddlewareConfig{
			MaxBodySize: 10 << 20, // 10MB
			CORS: CORSConfig{
				AllowOrigins:  []string{"*"},
				AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
				AllowHeaders:  []string{"Content-Type", "Authorization", "X-Requested-With"},
				ExposeHeaders: []string{"Content-Length"},
				MaxAge:        12 * time.Hour,
			},
		},
		Env:      "production", // 默认不在响应中暴露错误与堆栈
		LogLevel: "info",
	}
}

// IsProd 判断当前是否生产环境
func (c *Config) IsProd() bool {
	return c.Env == "production"
}

// HlogLevel maps LogLevel onto hlog levels, defaulting to info.
func (c *Config) HlogLevel() hlog.Level {
	switch c.LogLevel {
	case "trace":
		return hlog.LevelTrace
	case "debug":
		return hlog.LevelDebug
	case "warn":
		return hlog.LevelWarn
	case "error":
		return hlog.LevelError
	default:
		return hlog.LevelInfo
	}
}

// Validate 校验配置
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: server.port %d out of range", ErrInvalidConfig, c.Server.Port)
	}
	switch c.Database.Driver {
	case DriverMySQL, DriverMemory:
	default:
		return fmt.Errorf("%w: unknown database.driver %q", ErrInvalidConfig, c.Database.Driver)
	}
	if c.Middleware.MaxBodySize <= 0 {
		return fmt.Errorf("%w: middleware.max_body_size must be positive", ErrInvalidConfig)
	}
	return nil
}
