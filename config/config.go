// Package config provides the settings of a foldersim session.
package config

import (
	"encoding/json"
	"fmt"

	"github.com/klingtnet/foldersim/names"
	"github.com/klingtnet/foldersim/namespace"
	"github.com/spf13/afero"
	"go.uber.org/zap/zapcore"
)

var (
	ErrRootNameUnset = fmt.Errorf("root name must not be empty")
	ErrBadRootName   = fmt.Errorf("bad root name")
	ErrBadChildOrder = namespace.ErrBadChildOrder
	ErrBadLogLevel   = fmt.Errorf("log level must be one of debug, info, warn, error")
)

type Config struct {
	RootName   string `json:"root_name"`
	ChildOrder string `json:"child_order"`
	Prompt     string `json:"prompt"`
	LogLevel   string `json:"log_level"`
	ExportDir  string `json:"export_dir"`
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	return &Config{
		RootName:   namespace.DefaultRootName,
		ChildOrder: namespace.NewestFirst.String(),
		Prompt:     "> ",
		LogLevel:   "warn",
		ExportDir:  ".",
	}
}

// ParseConfigFile reads a JSON config file from filesystem, unset fields keep their defaults.
func ParseConfigFile(filesystem afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(filesystem, path)
	if err != nil {
		return nil, err
	}

	return parseConfig(data)
}

func parseConfig(data []byte) (config *Config, err error) {
	config = Default()
	err = json.Unmarshal(data, config)
	return
}

// Validate checks that the configuration can be used to start a session.
func (c *Config) Validate() error {
	if c.RootName == "" {
		return ErrRootNameUnset
	}
	if _, err := names.Normalize(c.RootName); err != nil {
		return fmt.Errorf("%w: %w", ErrBadRootName, err)
	}
	if _, err := namespace.ParseChildOrder(c.ChildOrder); err != nil {
		return err
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil || c.LogLevel == "" {
		return fmt.Errorf("%w: %q", ErrBadLogLevel, c.LogLevel)
	}

	return nil
}

// Order returns the parsed child order, the default for invalid values.
func (c *Config) Order() namespace.ChildOrder {
	order, _ := namespace.ParseChildOrder(c.ChildOrder)
	return order
}
