package config

import (
	"os"
	"path/filepath"
	"strings"
)

const dirEnv = "OTPFIELD_CONFIG_DIR"

// Dir returns the directory holding settings, bindings and themes.
func Dir() string {
	if dir := strings.TrimSpace(os.Getenv(dirEnv)); dir != "" {
		return dir
	}
	if base, err := os.UserConfigDir(); err == nil && base != "" {
		return filepath.Join(base, "otpfield")
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		return filepath.Join(home, ".config", "otpfield")
	}
	return filepath.Join(".", ".otpfield")
}

func ThemeDir() string {
	return filepath.Join(Dir(), "themes")
}
