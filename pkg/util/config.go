package util

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

func ReadConfig() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./data/")
	viper.AutomaticEnv()

	viper.SetDefault("CATALOG_FILE", "")
	viper.SetDefault("TIMEZONE", "Local")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("PROMPT", "You: ")

	err := viper.ReadInConfig()
	if err != nil {
		// config file is optional, defaults and env vars are enough
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("fatal error config file: %w", err)
	}
	return nil
}
