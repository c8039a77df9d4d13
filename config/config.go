// Package config persists generation defaults between runs.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config seeds the form's initial state. Zero values fall back to the
// built-in defaults at generation time, so every field is optional.
type Config struct {
	Title      string `yaml:"title"`
	NotesLabel string `yaml:"notes_label"`
	PageSize   string `yaml:"page_size"`
	OutputName string `yaml:"output_name"`
}

func Default() Config {
	return Config{
		PageSize:   "A4",
		OutputName: "secret.pdf",
	}
}

func Path() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".paperfold.yaml"), nil
}

func Exists() (bool, error) {
	path, err := Path()
	if err != nil {
		return false, err
	}
	_, err = os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// Load reads the config file, or returns Default when there is none.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), err
	}
	return LoadFrom(path)
}

func LoadFrom(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), err
	}
	return cfg, nil
}

func Save(cfg Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	return SaveTo(cfg, path)
}

func SaveTo(cfg Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
