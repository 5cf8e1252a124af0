package config

import (
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Store     StoreConfig     `yaml:"store" mapstructure:"store"`
	Reference ReferenceConfig `yaml:"reference" mapstructure:"reference"`
	Logo      LogoConfig      `yaml:"logo" mapstructure:"logo"`
	Fetch     FetchConfig     `yaml:"fetch" mapstructure:"fetch"`
	Render    RenderConfig    `yaml:"render" mapstructure:"render"`
	Batch     BatchConfig     `yaml:"batch" mapstructure:"batch"`
	Export    ExportConfig    `yaml:"export" mapstructure:"export"`
	Server    ServerConfig    `yaml:"server" mapstructure:"server"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// StoreConfig configures the database backend.
type StoreConfig struct {
	Driver          string `yaml:"driver" mapstructure:"driver"`
	DatabaseURL     string `yaml:"database_url" mapstructure:"database_url"`
	SQLitePath      string `yaml:"sqlite_path" mapstructure:"sqlite_path"`
	ConnectAttempts int    `yaml:"connect_attempts" mapstructure:"connect_attempts"`
	ConnectDelaySec int    `yaml:"connect_delay_secs" mapstructure:"connect_delay_secs"`
	MaxConns        int32  `yaml:"max_conns" mapstructure:"max_conns"`
	MinConns        int32  `yaml:"min_conns" mapstructure:"min_conns"`
}

// ReferenceConfig configures the encyclopedia source.
type ReferenceConfig struct {
	APIURL string `yaml:"api_url" mapstructure:"api_url"`
}

// LogoConfig configures the logo lookup fallback.
type LogoConfig struct {
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`
}

// FetchConfig configures the shared HTTP fetcher.
type FetchConfig struct {
	TimeoutSecs int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	MaxRetries  int    `yaml:"max_retries" mapstructure:"max_retries"`
	UserAgent   string `yaml:"user_agent" mapstructure:"user_agent"`
}

// RenderConfig configures headless page rendering.
type RenderConfig struct {
	Enabled     bool `yaml:"enabled" mapstructure:"enabled"`
	TimeoutSecs int  `yaml:"timeout_secs" mapstructure:"timeout_secs"`
}

// BatchConfig configures batch pacing and concurrency.
type BatchConfig struct {
	CompanyDelaySecs       int `yaml:"company_delay_secs" mapstructure:"company_delay_secs"`
	SourceDelaySecs        int `yaml:"source_delay_secs" mapstructure:"source_delay_secs"`
	MaxConcurrentCompanies int `yaml:"max_concurrent_companies" mapstructure:"max_concurrent_companies"`
}

// CompanyDelay returns the pause between companies.
func (c BatchConfig) CompanyDelay() time.Duration {
	return time.Duration(c.CompanyDelaySecs) * time.Second
}

// SourceDelay returns the pause between sources within one company.
func (c BatchConfig) SourceDelay() time.Duration {
	return time.Duration(c.SourceDelaySecs) * time.Second
}

// ExportConfig configures the spreadsheet export.
type ExportConfig struct {
	Path string `yaml:"path" mapstructure:"path"`
}

// ServerConfig configures the read API server.
type ServerConfig struct {
	Port int `yaml:"port" mapstructure:"port"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("ENRICH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("store.driver", "postgres")
	v.SetDefault("store.sqlite_path", "enrich.db")
	v.SetDefault("store.connect_attempts", 3)
	v.SetDefault("store.connect_delay_secs", 2)
	v.SetDefault("reference.api_url", "https://en.wikipedia.org/w/api.php")
	v.SetDefault("logo.base_url", "https://logo.clearbit.com")
	v.SetDefault("fetch.timeout_secs", 15)
	v.SetDefault("fetch.max_retries", 3)
	v.SetDefault("fetch.user_agent", "enrich-cli/1.0")
	v.SetDefault("render.enabled", true)
	v.SetDefault("render.timeout_secs", 30)
	v.SetDefault("batch.company_delay_secs", 10)
	v.SetDefault("batch.source_delay_secs", 3)
	v.SetDefault("batch.max_concurrent_companies", 1)
	v.SetDefault("export.path", "companies.xlsx")
	v.SetDefault("server.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
