// Package configpkg provides parsing functionality for environment variables.
package configpkg

import (
	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
//
// The values are read by viper from a config file or environment variables.
type Config struct {
	BankName          string `mapstructure:"BANK_NAME"`
	DemoUserFirstName string `mapstructure:"DEMO_USER_FIRST_NAME"`
	DemoUserLastName  string `mapstructure:"DEMO_USER_LAST_NAME"`
	DemoUserPin       string `mapstructure:"DEMO_USER_PIN"`
	Environement      string `mapstructure:"GO_ENV"`
}

// Load read configuration from file or environment variables.
func Load(path string) (Config, error) {
	var c Config

	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		return c, err
	}

	err = viper.Unmarshal(&c)
	if err != nil {
		return c, err
	}

	return c, nil
}
