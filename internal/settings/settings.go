package settings

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ABHINAV-SUREKA/aws-config-rule/constants"
	"github.com/spf13/viper"
)

type Settings struct {
	Log LogSettings `mapstructure:"log"`
	AWS AWSSettings `mapstructure:"aws"`
}

type LogSettings struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type AWSSettings struct {
	Region   string `mapstructure:"region"`
	Endpoint string `mapstructure:"endpoint"`
}

// Load reads settings from the optional file at path, overridden by
// CONFIG_RULE_* environment variables (CONFIG_RULE_LOG_LEVEL, ...).
func Load(path string) (*Settings, error) {
	v := viper.New()

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("aws.region", "")
	v.SetDefault("aws.endpoint", "")

	v.SetEnvPrefix(constants.SettingsEnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// the Lambda runtime exports AWS_REGION
	if err := v.BindEnv("aws.region", constants.SettingsEnvPrefix+"_AWS_REGION", "AWS_REGION"); err != nil {
		return nil, err
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read settings: %w", err)
			}
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	return &s, nil
}
