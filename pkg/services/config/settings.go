package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Settings holds the web server configuration file contents.
type Settings struct {
	Server struct {
		Host string `mapstructure:"host"`
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Data struct {
		// Profiles is the path to the country profiles ini file.
		Profiles string `mapstructure:"profiles"`
		// GeoDBPath is the local cache path of the constituency database.
		GeoDBPath string `mapstructure:"geo_db_path"`
	} `mapstructure:"data"`
}

// LoadSettings loads server settings from the specified file path.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	return &settings, nil
}
