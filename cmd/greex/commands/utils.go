/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: utils.go
Description: Shared utilities for the Greex commands. Provides common
configuration loading, logging setup, and utility functions used across all
command implementations.
*/

package commands

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/kleascm/greex/pkg/logging"
)

// LoadConfig loads configuration from files and environment
func LoadConfig() error {
	// Set config file if specified
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("GREEX")
	viper.AutomaticEnv()

	return nil
}

// SetupLogging builds the Greex logging system from the active configuration.
// The caller owns the returned logger and must Close it when done.
func SetupLogging() (*logging.Logger, error) {
	format := logging.LogFormatCustom
	colors := true
	if viper.GetBool("json_logs") {
		format = logging.LogFormatJSON
		colors = false
	}

	config := &logging.LoggerConfig{
		Level:     logging.LogLevel(viper.GetString("log_level")),
		Format:    format,
		OutputDir: viper.GetString("log_dir"),
		MaxFiles:  10,
		MaxSize:   100 * 1024 * 1024, // 100MB
		Timestamp: true,
		Colors:    colors,
	}
	if config.OutputDir == "" {
		config.OutputDir = "./logs"
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid logging configuration: %w", err)
	}

	logger, err := logging.NewLogger(config)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logging: %w", err)
	}
	return logger, nil
}
