package main

import (
	"errors"
	"fmt"
	"os"

	koanfjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const defaultConfigPath = "sudokugen.json"

// appConfig holds CLI defaults. Everything here can be overridden by a
// flag; the file just saves typing.
type appConfig struct {
	Color  bool   `json:"color"`
	Output string `json:"output,omitempty"` // default path for generate --out
}

func defaultAppConfig() appConfig {
	return appConfig{Color: true}
}

// loadConfig reads the config file at path. A missing file is fine and
// yields the defaults.
func loadConfig(path string) (appConfig, error) {
	cfg := defaultAppConfig()

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return appConfig{}, fmt.Errorf("stat config: %w", err)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), koanfjson.Parser()); err != nil {
		return appConfig{}, fmt.Errorf("load config: %w", err)
	}
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return appConfig{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
