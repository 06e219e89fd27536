package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Host       string  `mapstructure:"host"`
	Port       int     `mapstructure:"port"`
	DBName     string  `mapstructure:"dbname"`
	User_DB    string  `mapstructure:"userdb"`
	PasswordDB string  `mapstructure:"passworddb"`
	Admins     []int64 `mapstructure:"admins"`
	TgApiToken string  `mapstructure:"tg_api_token"`
}

func InitConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.SetDefault("port", 8080)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil, fmt.Errorf("Error: config file is not found: %w", err)
		}
		return nil, fmt.Errorf("Error: init config: %w", err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("Error: unable to decode into struct: %w", err)
	}
	return &cfg, nil
}
