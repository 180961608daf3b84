package config

import (
	"errors"
	"os"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

var ErrInvalidConfig = errors.New("invalid config")

// 环境变量到配置键的映射
var envKeys = map[string]string{
	"PORT":               "server.port",
	"SERVER_HOST":        "server.host",
	"DATABASE_URL":       "database.url",
	"DB_DRIVER":          "database.driver",
	"DB_HOST":            "database.host",
	"DB_PORT":            "database.port",
	"DB_USER":            "database.username",
	"DB_PASSWORD":        "database.password",
	"DB_NAME":            "database.dbname",
	"DB_MIN_POOL":        "database.min_pool",
	"DB_MAX_POOL":        "database.max_pool",
	"DB_LOG_LEVEL":       "database.log_level",
	"DB_AUTO_MIGRATE":    "database.auto_migrate",
	"MAX_BODY_SIZE":      "middleware.max_body_size",
	"CORS_ALLOW_ORIGINS": "middleware.cors.allow_origins",
	"APP_ENV":            "env",
	"LOG_LEVEL":          "log_level",
}

// Load 加载配置（优先级：环境变量 > 配置文件 > 默认值）
func Load() (*Config, error) {
	k := koanf.New(".")

	// 1. 配置文件（YAML），由 APP_CONFIG 指定
	if path := getConfigPath(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// 2. 从环境变量覆盖
	if err := k.Load(env.ProviderWithValue("", ".", mapEnv), nil); err != nil {
		return nil, err
	}

	// 切片整体覆盖默认值，而不是逐元素合并
	cfg := New()
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			WeaklyTypedInput: true,
			ZeroFields:       true,
			Result:           cfg,
		},
	}); err != nil {
		return nil, err
	}
	cfg.Database.Driver = strings.ToLower(cfg.Database.Driver)
	cfg.Database.LogLevel = strings.ToLower(cfg.Database.LogLevel)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// mapEnv 丢弃未登记的环境变量；返回空键即忽略
func mapEnv(name, value string) (string, interface{}) {
	key, ok := envKeys[name]
	if !ok {
		return "", nil
	}
	if key == "middleware.cors.allow_origins" {
		return key, splitEnvList(value)
	}
	return key, value
}

// getConfigPath 获取配置文件路径
func getConfigPath() string {
	if path := os.Getenv("APP_CONFIG"); path != "" {
		return path
	}

	searchPaths := []string{
		"./config.yaml",
		"/etc/mini-blog/config.yaml",
	}
	for _, path := range searchPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// 分割环境变量列表（支持逗号分隔的字符串）
func splitEnvList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
