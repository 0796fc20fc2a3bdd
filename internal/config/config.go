// Package config provides configuration management for the crawler.
// Values are resolved from defaults, an optional YAML config file, and
// environment variables (optionally loaded from .env), in ascending
// precedence.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/ysleecn1234/newspaper-project/internal/logger"
)

// Default configuration values. The crawler knobs mirror the behaviour of
// the per-publisher crawl scripts this service replaces.
const (
	DefaultRequestTimeout = 15 * time.Second
	DefaultMaxRetries     = 3
	DefaultRequestDelay   = 800 * time.Millisecond
	DefaultWorkers        = 5
	DefaultMaxPages       = 1
	DefaultUserAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"
	DefaultAcceptLanguage = "ko-KR,ko;q=0.9,en;q=0.8"

	defaultDBHost    = "localhost"
	defaultDBPort    = 5432
	defaultDBName    = "newspaper_db"
	defaultDBUser    = "postgres"
	defaultDBSSLMode = "disable"
)

// Config is the root configuration for a crawl run.
type Config struct {
	Crawler  CrawlerConfig  `mapstructure:"crawler"  yaml:"crawler"`
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`
	Logging  logger.Config  `mapstructure:"logging"  yaml:"logging"`
	Output   OutputConfig   `mapstructure:"output"   yaml:"output"`
	// SourcesFile optionally points at a YAML file overriding the
	// built-in publisher profiles.
	SourcesFile string `mapstructure:"sources_file" yaml:"sources_file"`
}

// CrawlerConfig holds frontier and fetcher knobs.
type CrawlerConfig struct {
	RequestTimeout time.Duration `mapstructure:"request_timeout" yaml:"request_timeout"`
	MaxRetries     int           `mapstructure:"max_retries"     yaml:"max_retries"`
	RequestDelay   time.Duration `mapstructure:"request_delay"   yaml:"request_delay"`
	Workers        int           `mapstructure:"workers"         yaml:"workers"`
	// MaxPages is the per-category listing-page budget.
	MaxPages       int    `mapstructure:"max_pages"       yaml:"max_pages"`
	UserAgent      string `mapstructure:"user_agent"      yaml:"user_agent"`
	AcceptLanguage string `mapstructure:"accept_language" yaml:"accept_language"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"                    yaml:"host"`
	Port            int           `mapstructure:"port"                    yaml:"port"`
	User            string        `mapstructure:"user"                    yaml:"user"`
	Password        string        `mapstructure:"password"                yaml:"password"`
	Database        string        `mapstructure:"database"                yaml:"database"`
	SSLMode         string        `mapstructure:"sslmode"                 yaml:"sslmode"`
	MaxOpenConns    int           `mapstructure:"max_connections"         yaml:"max_connections"`
	MaxIdleConns    int           `mapstructure:"max_idle_connections"    yaml:"max_idle_connections"`
	ConnMaxLifetime time.Duration `mapstructure:"connection_max_lifetime" yaml:"connection_max_lifetime"`
}

// OutputConfig controls the NDJSON article stream.
type OutputConfig struct {
	// Path is a file path for the article stream; empty means stdout.
	Path string `mapstructure:"path" yaml:"path"`
	// SaveDB enables database persistence. Enabled by default.
	SaveDB bool `mapstructure:"save_db" yaml:"save_db"`
}

// Load reads configuration from the given file (or the default search
// path when empty), the environment, and defaults.
func Load(cfgFile string) (*Config, error) {
	// .env values become plain environment variables; existing ones win.
	_ = godotenv.Load()

	v := viper.New()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// An explicit config file must load; the default search path is
		// optional and falls back to defaults plus environment.
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setDefaults registers default values on the viper instance.
func setDefaults(v *viper.Viper) {
	v.SetDefault("crawler.request_timeout", DefaultRequestTimeout)
	v.SetDefault("crawler.max_retries", DefaultMaxRetries)
	v.SetDefault("crawler.request_delay", DefaultRequestDelay)
	v.SetDefault("crawler.workers", DefaultWorkers)
	v.SetDefault("crawler.max_pages", DefaultMaxPages)
	v.SetDefault("crawler.user_agent", DefaultUserAgent)
	v.SetDefault("crawler.accept_language", DefaultAcceptLanguage)

	v.SetDefault("database.host", defaultDBHost)
	v.SetDefault("database.port", defaultDBPort)
	v.SetDefault("database.user", defaultDBUser)
	v.SetDefault("database.password", "")
	v.SetDefault("database.database", defaultDBName)
	v.SetDefault("database.sslmode", defaultDBSSLMode)
	v.SetDefault("database.max_connections", 10)
	v.SetDefault("database.max_idle_connections", 5)
	v.SetDefault("database.connection_max_lifetime", 5*time.Minute)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.encoding", "console")
	v.SetDefault("logging.output_path", "stdout")

	v.SetDefault("output.save_db", true)
}
