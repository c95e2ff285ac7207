package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config 汇总运行服务所需的基础配置。
type Config struct {
	App struct {
		Name string
		Port string
	}
	Database struct {
		Path string
	}
	JWT struct {
		AccessSecret     string
		RefreshSecret    string
		AccessTTLMinutes int
		RefreshTTLHours  int
	}
	Redis struct {
		Addr     string
		DB       int
		Password string
	}
	RabbitMQ struct {
		Url   string
		Queue string
	}
	S3 struct {
		Region         string
		Bucket         string
		ArticlePrefix  string
		ProfilePrefix  string
		SignTTLMinutes int
	}
	CORS struct {
		Origins []string
	}
}

// AccessTTL 返回访问令牌的有效期。
func (c *Config) AccessTTL() time.Duration {
	return time.Duration(c.JWT.AccessTTLMinutes) * time.Minute
}

// RefreshTTL 返回刷新令牌的有效期。
func (c *Config) RefreshTTL() time.Duration {
	return time.Duration(c.JWT.RefreshTTLHours) * time.Hour
}

// SignTTL 返回签名 URL 的有效期。
func (c *Config) SignTTL() time.Duration {
	return time.Duration(c.S3.SignTTLMinutes) * time.Minute
}

// Load 读取 config/config.yml 并应用环境变量与默认值。
// 配置文件缺失时不视为错误，全部回退到默认值。
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yml")
	viper.AddConfigPath("./config")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)
	applyDefaults(cfg)
	return cfg, nil
}

// applyEnvOverrides 允许通过环境变量覆盖敏感配置项。
func applyEnvOverrides(cfg *Config) {
	cfg.App.Port = envOrDefault("PORT", cfg.App.Port)
	cfg.Database.Path = envOrDefault("DATABASE_PATH", cfg.Database.Path)
	cfg.JWT.AccessSecret = envOrDefault("JWT_SECRET_KEY", cfg.JWT.AccessSecret)
	cfg.JWT.RefreshSecret = envOrDefault("JWT_REFRESH_SECRET_KEY", cfg.JWT.RefreshSecret)
	cfg.Redis.Addr = envOrDefault("REDIS_ADDR", cfg.Redis.Addr)
	cfg.Redis.Password = envOrDefault("REDIS_PASSWORD", cfg.Redis.Password)
	cfg.RabbitMQ.Url = envOrDefault("RABBITMQ_URL", cfg.RabbitMQ.Url)
	cfg.S3.Region = envOrDefault("AWS_REGION", cfg.S3.Region)
	cfg.S3.Bucket = envOrDefault("S3_BUCKET", cfg.S3.Bucket)
}

func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "inkspire"
	}
	if cfg.App.Port == "" {
		cfg.App.Port = "8080"
	}
	if cfg.Database.Path == "" {
		cfg.Database.Path = "inkspire.db"
	}
	if cfg.JWT.AccessSecret == "" {
		cfg.JWT.AccessSecret = "inkspire-dev-secret"
	}
	if cfg.JWT.RefreshSecret == "" {
		cfg.JWT.RefreshSecret = "inkspire-dev-refresh-secret"
	}
	if cfg.JWT.AccessTTLMinutes <= 0 {
		cfg.JWT.AccessTTLMinutes = 60
	}
	if cfg.JWT.RefreshTTLHours <= 0 {
		cfg.JWT.RefreshTTLHours = 7 * 24
	}
	if cfg.Redis.Addr == "" {
		cfg.Redis.Addr = "localhost:6379"
	}
	if cfg.RabbitMQ.Queue == "" {
		cfg.RabbitMQ.Queue = "otp.queue"
	}
	if cfg.S3.Region == "" {
		cfg.S3.Region = "us-west-1"
	}
	if cfg.S3.ArticlePrefix == "" {
		cfg.S3.ArticlePrefix = "ink-spire/article/"
	}
	if cfg.S3.ProfilePrefix == "" {
		cfg.S3.ProfilePrefix = "ink-spire/profile/"
	}
	if cfg.S3.SignTTLMinutes <= 0 {
		cfg.S3.SignTTLMinutes = 15
	}
	if len(cfg.CORS.Origins) == 0 {
		cfg.CORS.Origins = []string{"http://localhost:5173"}
	}
}

func envOrDefault(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}
