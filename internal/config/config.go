package config

import (
	"fmt"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	DataDir          string `mapstructure:"data_dir" validate:"required"`
	AccountsFile     string `mapstructure:"accounts_file" validate:"required"`
	MetaFile         string `mapstructure:"meta_file" validate:"required"`
	TransactionsFile string `mapstructure:"transactions_file" validate:"required"`

	Port      string `mapstructure:"port" validate:"required,numeric"`
	QueueSize int    `mapstructure:"queue_size" validate:"min=1"`

	LogLevel      string `mapstructure:"log_level" validate:"oneof=trace debug info warn warning error fatal panic"`
	LogFile       string `mapstructure:"log_file"`
	LogMaxSizeMB  int    `mapstructure:"log_max_size_mb" validate:"min=1"`
	LogMaxBackups int    `mapstructure:"log_max_backups" validate:"min=0"`
	LogMaxAgeDays int    `mapstructure:"log_max_age_days" validate:"min=0"`
}

// AccountsPath is the accounts file joined onto DataDir.
func (c *Config) AccountsPath() string {
	return filepath.Join(c.DataDir, c.AccountsFile)
}

// MetaPath is the sequence meta file joined onto DataDir.
func (c *Config) MetaPath() string {
	return filepath.Join(c.DataDir, c.MetaFile)
}

// TransactionsPath is the ledger file joined onto DataDir.
func (c *Config) TransactionsPath() string {
	return filepath.Join(c.DataDir, c.TransactionsFile)
}

func setDefaults(v *viper.Viper) {
	// File names match existing bank data directories
	v.SetDefault("data_dir", ".")
	v.SetDefault("accounts_file", "bank_accounts.txt")
	v.SetDefault("meta_file", "account_meta.txt")
	v.SetDefault("transactions_file", "transactions.txt")
	v.SetDefault("port", "9446")
	v.SetDefault("queue_size", 1000)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")
	v.SetDefault("log_max_size_mb", 100)
	v.SetDefault("log_max_backups", 3)
	v.SetDefault("log_max_age_days", 28)
}

// ProcessEnvironmentVariables reads LEDGER_* environment variables, and the
// file named by LEDGER_CONFIG_FILE when set, on top of the defaults.
func ProcessEnvironmentVariables() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("LEDGER")
	v.AutomaticEnv()

	if file := v.GetString("config_file"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", file, err)
		}
	}

	env := Config{}
	if err := v.Unmarshal(&env); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	if err := validator.New().Struct(&env); err != nil {
		return nil, fmt.Errorf("config: invalid: %w", err)
	}

	return &env, nil
}
