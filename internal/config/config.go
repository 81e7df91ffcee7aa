package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Model    ModelConfig
	Identity IdentityConfig
	Trainer  TrainerConfig
	Logger   LoggerConfig
}

type ServerConfig struct {
	Host            string
	Port            int
	Banner          string
	ShutdownTimeout time.Duration
}

// ModelConfig locates the artifact pair shared by trainer and server.
type ModelConfig struct {
	Path        string
	MetricsPath string
}

// IdentityConfig holds the fixed fields echoed in every prediction.
type IdentityConfig struct {
	Name   string
	RollNo string
}

type TrainerConfig struct {
	DatasetPath    string
	Delimiter      string
	TestSize       float64
	Seed           int64
	NEstimators    int
	MaxDepth       int
	MinSamplesLeaf int
}

type LoggerConfig struct {
	Level  string
	Format string
	// File, when set, receives a rotated copy of every log line.
	File       string
	MaxSizeMB  int
	MaxBackups int
}

// Load reads defaults, then an optional config file, then environment
// variables (server.port → SERVER_PORT).
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.banner", "Wine Quality Prediction API is running")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("model.path", "artifacts/model.gob")
	v.SetDefault("model.metrics_path", "artifacts/metrics.json")
	v.SetDefault("identity.name", "Sumedh Kolupoti")
	v.SetDefault("identity.roll_no", "2022BCS0169")
	v.SetDefault("trainer.dataset_path", "dataset/wine-quality.csv")
	v.SetDefault("trainer.delimiter", ";")
	v.SetDefault("trainer.test_size", 0.2)
	v.SetDefault("trainer.seed", 42)
	v.SetDefault("trainer.n_estimators", 10)
	v.SetDefault("trainer.max_depth", 0)
	v.SetDefault("trainer.min_samples_leaf", 1)
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "text")
	v.SetDefault("logger.file", "")
	v.SetDefault("logger.max_size_mb", 50)
	v.SetDefault("logger.max_backups", 3)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	// Env
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	shutdown, err := time.ParseDuration(v.GetString("server.shutdown_timeout"))
	if err != nil {
		shutdown = 10 * time.Second
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:            v.GetString("server.host"),
			Port:            v.GetInt("server.port"),
			Banner:          v.GetString("server.banner"),
			ShutdownTimeout: shutdown,
		},
		Model: ModelConfig{
			Path:        v.GetString("model.path"),
			MetricsPath: v.GetString("model.metrics_path"),
		},
		Identity: IdentityConfig{
			Name:   v.GetString("identity.name"),
			RollNo: v.GetString("identity.roll_no"),
		},
		Trainer: TrainerConfig{
			DatasetPath:    v.GetString("trainer.dataset_path"),
			Delimiter:      v.GetString("trainer.delimiter"),
			TestSize:       v.GetFloat64("trainer.test_size"),
			Seed:           v.GetInt64("trainer.seed"),
			NEstimators:    v.GetInt("trainer.n_estimators"),
			MaxDepth:       v.GetInt("trainer.max_depth"),
			MinSamplesLeaf: v.GetInt("trainer.min_samples_leaf"),
		},
		Logger: LoggerConfig{
			Level:      v.GetString("logger.level"),
			Format:     v.GetString("logger.format"),
			File:       v.GetString("logger.file"),
			MaxSizeMB:  v.GetInt("logger.max_size_mb"),
			MaxBackups: v.GetInt("logger.max_backups"),
		},
	}

	return cfg, nil
}

// DelimiterRune returns the single-character dataset delimiter.
func (c TrainerConfig) DelimiterRune() rune {
	return []rune(c.Delimiter)[0]
}

func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, errors.New("server.port must be between 1 and 65535"))
	}
	if c.Model.Path == "" {
		errs = append(errs, errors.New("model.path is required"))
	}
	if c.Model.MetricsPath == "" {
		errs = append(errs, errors.New("model.metrics_path is required"))
	}
	if c.Model.Path != "" && c.Model.Path == c.Model.MetricsPath {
		errs = append(errs, errors.New("model.path and model.metrics_path must differ"))
	}
	if c.Trainer.DatasetPath == "" {
		errs = append(errs, errors.New("trainer.dataset_path is required"))
	}
	if len([]rune(c.Trainer.Delimiter)) != 1 {
		errs = append(errs, errors.New("trainer.delimiter must be a single character"))
	}
	if c.Trainer.TestSize <= 0 || c.Trainer.TestSize >= 1 {
		errs = append(errs, errors.New("trainer.test_size must be in (0, 1)"))
	}
	if c.Trainer.NEstimators <= 0 {
		errs = append(errs, errors.New("trainer.n_estimators must be positive"))
	}
	if c.Trainer.MaxDepth < 0 {
		errs = append(errs, errors.New("trainer.max_depth must be >= 0"))
	}
	if c.Trainer.MinSamplesLeaf <= 0 {
		errs = append(errs, errors.New("trainer.min_samples_leaf must be positive"))
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[c.Logger.Format] {
		errs = append(errs, fmt.Errorf("logger.format must be one of: text, json"))
	}

	return errors.Join(errs...)
}
