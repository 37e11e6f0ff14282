package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Tracing   TracingConfig   `mapstructure:"tracing"`
	CORS      CORSConfig      `mapstructure:"cors"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Seed      SeedConfig      `mapstructure:"seed"`

	// 运行时标志（非配置文件，通过命令行参数设置）
	MigrateOnly bool `mapstructure:"-"`
}

type ServerConfig struct {
	Port string
	Mode string
}

type DatabaseConfig struct {
	Host      string
	Port      int
	User      string
	Password  string
	DBName    string
	Charset   string
	ParseTime bool
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

// SeedConfig 启动时灌入样例数据。Force 会先清空三张表。
type SeedConfig struct {
	OnStartup bool `mapstructure:"on_startup"`
	Force     bool `mapstructure:"force"`
}

func LoadConfig(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AutomaticEnv()

	// Database
	viper.BindEnv("database.host", "QUIZ_API_DATABASE_HOST")
	viper.BindEnv("database.port", "QUIZ_API_DATABASE_PORT")
	viper.BindEnv("database.user", "QUIZ_API_DATABASE_USER")
	viper.BindEnv("database.password", "QUIZ_API_DATABASE_PASSWORD")
	viper.BindEnv("database.dbname", "QUIZ_API_DATABASE_NAME")

	// Server
	viper.BindEnv("server.port", "QUIZ_API_SERVER_PORT")
	viper.BindEnv("server.mode", "QUIZ_API_SERVER_MODE")

	// Tracing
	viper.BindEnv("tracing.enabled", "QUIZ_API_TRACING_ENABLED")
	viper.BindEnv("tracing.collector_endpoint", "QUIZ_API_TRACING_COLLECTOR_ENDPOINT")

	// Seed
	viper.BindEnv("seed.on_startup", "QUIZ_API_SEED_ON_STARTUP")
	viper.BindEnv("seed.force", "QUIZ_API_SEED_FORCE")

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
