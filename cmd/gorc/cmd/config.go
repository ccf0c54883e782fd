package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

const (
	defaultConfFile = "./conf/gorc.yaml"
	envPrefix       = "GORC"
)

// CliConfig is the client configuration merged from flags, env and file.
type CliConfig struct {
	Log LogConfig `yaml:"log" mapstructure:"log"`
}

// LogConfig log part
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// NewCliConfig new a CliConfig instance
func NewCliConfig() *CliConfig {
	conf := &CliConfig{}
	conf.setDefaultConf()
	return conf
}

// LoadConfig reads fileName into v and decodes the merged settings into nc.
// A missing file is only an error when required is set.
func (nc *CliConfig) LoadConfig(v *viper.Viper, fileName string, required bool) error {
	if err := nc.loadConfigFile(v, fileName, required); err != nil {
		return err
	}
	return nc.Validate()
}

func (nc *CliConfig) loadConfigFile(v *viper.Viper, fileName string, required bool) error {
	v.SetConfigFile(fileName)
	err := v.ReadInConfig()
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist) && !required:
	default:
		return fmt.Errorf("load config %s: %w", fileName, err)
	}

	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		normalizeStringHook,
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(nc, hook); err != nil {
		return fmt.Errorf("decode config %s: %w", fileName, err)
	}
	return nil
}

// Validate checks the decoded settings.
func (nc *CliConfig) Validate() error {
	switch nc.Log.Level {
	case zapcore.DebugLevel.String(), zapcore.InfoLevel.String(),
		zapcore.WarnLevel.String(), zapcore.ErrorLevel.String():
	default:
		return fmt.Errorf("invalid log level %q, use debug|info|warn|error", nc.Log.Level)
	}
	switch nc.Log.Format {
	case logFormatConsole, logFormatJSON:
	default:
		return fmt.Errorf("invalid log format %q, use %s|%s", nc.Log.Format, logFormatConsole, logFormatJSON)
	}
	return nil
}

func (nc *CliConfig) setDefaultConf() {
	nc.Log = LogConfig{
		Level:  "info",
		Format: logFormatConsole,
	}
}

// setDefaults registers nc's values as viper defaults so env lookups see the keys.
func (nc *CliConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", nc.Log.Level)
	v.SetDefault("log.format", nc.Log.Format)
}

// config values are case-insensitive keywords
func normalizeStringHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if from.Kind() != reflect.String || to.Kind() != reflect.String {
		return data, nil
	}
	return strings.ToLower(strings.TrimSpace(data.(string))), nil
}
