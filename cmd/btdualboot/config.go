package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/joshuapare/btdualboot/internal/bluez"
	"github.com/joshuapare/btdualboot/internal/winsrc"
)

const (
	configDirName  = "btdualboot"
	configFileName = "config"
	configFileType = "yaml"
	envPrefix      = "BTDUALBOOT"

	// Config keys.
	cfgKeyBluetoothDir = "bluetooth_dir"
	cfgKeyRegedPath    = "reged_path"
	cfgKeyControlSet   = "control_set"
	cfgKeyBackup       = "backup"
	cfgKeyLogLevel     = "log_level"
	cfgKeyLogFormat    = "log_format"
)

// settings is the resolved configuration: flags override environment,
// which overrides the config file, which overrides defaults.
type settings struct {
	BluetoothDir string `mapstructure:"bluetooth_dir" json:"bluetooth_dir" yaml:"bluetooth_dir"`
	RegedPath    string `mapstructure:"reged_path"    json:"reged_path"    yaml:"reged_path"`
	ControlSet   string `mapstructure:"control_set"   json:"control_set"   yaml:"control_set"`
	Backup       bool   `mapstructure:"backup"        json:"backup"        yaml:"backup"`
	LogLevel     string `mapstructure:"log_level"     json:"log_level"     yaml:"log_level"`
	LogFormat    string `mapstructure:"log_format"    json:"log_format"    yaml:"log_format"`
}

// flagKeys maps command flags onto config keys.
var flagKeys = map[string]string{
	"bluetooth-dir": cfgKeyBluetoothDir,
	"reged":         cfgKeyRegedPath,
	"control-set":   cfgKeyControlSet,
	"backup":        cfgKeyBackup,
	"log-format":    cfgKeyLogFormat,
}

// loadConfig reads the config file with Viper. An explicit path must
// exist; the default location is optional.
func loadConfig(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyBluetoothDir, bluez.DefaultRoot)
	v.SetDefault(cfgKeyRegedPath, winsrc.DefaultReged)
	v.SetDefault(cfgKeyControlSet, winsrc.DefaultControlSet)
	v.SetDefault(cfgKeyBackup, false)
	v.SetDefault(cfgKeyLogLevel, "warn")
	v.SetDefault(cfgKeyLogFormat, "console")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		return v, nil
	}

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, configDirName))
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// Missing config.yaml is not an error.
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// bindFlags lets the flags cmd defines override their config keys. Only
// flags set on the command line take precedence.
func bindFlags(v *viper.Viper, cmd *cobra.Command) {
	for name, key := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			_ = v.BindPFlag(key, f)
		}
	}
}

func readSettings(v *viper.Viper) (settings, error) {
	var s settings
	if err := v.Unmarshal(&s); err != nil {
		return settings{}, fmt.Errorf("decode config: %w", err)
	}
	if s.BluetoothDir == "" {
		return settings{}, fmt.Errorf("config: %s must not be empty", cfgKeyBluetoothDir)
	}
	return s, nil
}
