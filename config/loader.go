package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the global application configuration
var Config AppConfig

// LoadAppConfig loads and validates the application configuration from modx.yml
func LoadAppConfig() error {
	paths := []string{"modx.yml", "./config/modx.yml"}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return err
	}
	return LoadAppConfigFromBytes(data)
}

// LoadAppConfigFromBytes parses and validates configuration from raw YAML.
func LoadAppConfigFromBytes(data []byte) error {
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return err
	}
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return err
	}
	Config = cfg
	if Config.Transit.MetamodeRevision == "" {
		Config.Transit.MetamodeRevision = "2021"
	}
	if Config.Model.TDMVersion == "" {
		Config.Model.TDMVersion = "tdm23"
	}
	return nil
}
