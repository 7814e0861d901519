package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	OpenAI    OpenAIConfig    `mapstructure:"openai"`
	CORS      CORSConfig      `mapstructure:"cors"`
	Cache     CacheConfig     `mapstructure:"cache"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Generate  GenerateConfig  `mapstructure:"generate"`
	Analyze   AnalyzeConfig   `mapstructure:"analyze"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

type OpenAIConfig struct {
	// APIKey 可为空：生成接口要求调用方通过 Authorization 头自带密钥
	APIKey      string  `mapstructure:"api_key"`
	Model       string  `mapstructure:"model"`
	Temperature float32 `mapstructure:"temperature"`
	MaxTokens   int     `mapstructure:"max_tokens"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	AllowedMethods []string `mapstructure:"allowed_methods"`
	AllowedHeaders []string `mapstructure:"allowed_headers"`
}

// CacheConfig 缓存配置。当前仅用于建立连接并在 /health 上报状态，
// 结果缓存本身尚未实现
type CacheConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	TTL      int    `mapstructure:"ttl"`
}

// RateLimitConfig 限流参数。进程内不执行限流，数值暴露给外层网关使用
type RateLimitConfig struct {
	Requests int `mapstructure:"requests"`
	Period   int `mapstructure:"period"`
}

type GenerateConfig struct {
	MaxConcurrent   int `mapstructure:"max_concurrent"`
	MaxPromptLength int `mapstructure:"max_prompt_length"`
}

type AnalyzeConfig struct {
	MaxCodeLength int  `mapstructure:"max_code_length"`
	EnableParsers bool `mapstructure:"enable_parsers"`
}

func Load(configPath string) (*Config, error) {
	// 优先尝试读取 config.local.yaml（包含真实密钥，不提交到git）
	dir := filepath.Dir(configPath)
	localConfigPath := filepath.Join(dir, "config.local.yaml")

	if _, err := os.Stat(localConfigPath); err == nil {
		configPath = localConfigPath
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	// 环境变量覆盖
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default 返回内置默认配置，测试和本地启动使用
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8000,
			Mode: "debug",
		},
		OpenAI: OpenAIConfig{
			Model:       "gpt-4-turbo-preview",
			Temperature: 0.7,
			MaxTokens:   4000,
		},
		CORS: CORSConfig{
			AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders: []string{"Authorization", "Content-Type"},
		},
		Cache: CacheConfig{
			Addr: "localhost:6379",
			TTL:  3600,
		},
		RateLimit: RateLimitConfig{
			Requests: 100,
			Period:   3600,
		},
		Generate: GenerateConfig{
			MaxConcurrent:   3,
			MaxPromptLength: 2000,
		},
		Analyze: AnalyzeConfig{
			MaxCodeLength: 10000,
			EnableParsers: true,
		},
	}
}

func setDefaults() {
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", 8000)
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("openai.model", "gpt-4-turbo-preview")
	viper.SetDefault("openai.temperature", 0.7)
	viper.SetDefault("openai.max_tokens", 4000)
	viper.SetDefault("cache.enabled", false)
	viper.SetDefault("cache.addr", "localhost:6379")
	viper.SetDefault("cache.ttl", 3600)
	viper.SetDefault("rate_limit.requests", 100)
	viper.SetDefault("rate_limit.period", 3600)
	viper.SetDefault("generate.max_concurrent", 3)
	viper.SetDefault("generate.max_prompt_length", 2000)
	viper.SetDefault("analyze.max_code_length", 10000)
	viper.SetDefault("analyze.enable_parsers", true)
}
