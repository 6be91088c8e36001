package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	SettingsFormatTOML SettingsFormat = "toml"
	SettingsFormatJSON SettingsFormat = "json"
)

type Settings struct {
	DefaultTheme string        `json:"default_theme" toml:"default_theme"`
	Debug        bool          `json:"debug"         toml:"debug"`
	Input        InputSettings `json:"input"         toml:"input"`
}

func DefaultSettings() Settings {
	return Settings{Input: DefaultInputSettings()}
}

type SettingsFormat string
type SettingsHandle struct {
	Path   string
	Format SettingsFormat
}

// tries loading TOML first, then JSON, then returns empty settings if neither exists.
// parse errors fail immediately but missing files just skip to the next format.
func LoadSettings() (Settings, SettingsHandle, error) {
	dir := Dir()
	candidates := []SettingsHandle{
		{Path: filepath.Join(dir, "settings.toml"), Format: SettingsFormatTOML},
		{Path: filepath.Join(dir, "settings.json"), Format: SettingsFormatJSON},
	}

	var accumulated error
	for _, candidate := range candidates {
		data, err := os.ReadFile(candidate.Path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			accumulated = errors.Join(
				accumulated,
				fmt.Errorf("read settings %q: %w", candidate.Path, err),
			)
			continue
		}

		settings, err := decodeSettings(data, candidate.Format)
		if err != nil {
			return Settings{}, SettingsHandle{}, fmt.Errorf(
				"parse settings %q: %w",
				candidate.Path,
				err,
			)
		}
		settings.Input = NormaliseInputSettings(settings.Input)
		return settings, candidate, nil
	}

	if accumulated != nil {
		return Settings{}, SettingsHandle{}, accumulated
	}

	return DefaultSettings(), SettingsHandle{
		Path:   candidates[0].Path,
		Format: SettingsFormatTOML,
	}, nil
}

// unset keys keep their defaults
func decodeSettings(data []byte, format SettingsFormat) (Settings, error) {
	settings := DefaultSettings()
	switch format {
	case SettingsFormatTOML:
		if err := toml.Unmarshal(data, &settings); err != nil {
			return Settings{}, err
		}
	case SettingsFormatJSON:
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&settings); err != nil {
			return Settings{}, err
		}
	default:
		return Settings{}, fmt.Errorf("unsupported settings format %q", format)
	}
	return settings, nil
}

// SaveSettings writes settings back to the file described by handle, keeping
// its format. A zero handle targets settings.toml in Dir.
func SaveSettings(settings Settings, handle SettingsHandle) error {
	if handle.Path == "" {
		handle.Path = filepath.Join(Dir(), "settings.toml")
	}
	if handle.Format == "" {
		handle.Format = SettingsFormatTOML
	}
	settings.Input = NormaliseInputSettings(settings.Input)

	data, err := encodeSettings(settings, handle.Format)
	if err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(handle.Path), 0o755); err != nil {
		return fmt.Errorf("ensure settings directory: %w", err)
	}
	if err := replaceFile(handle.Path, data); err != nil {
		return fmt.Errorf("write settings %q: %w", handle.Path, err)
	}
	return nil
}

func encodeSettings(settings Settings, format SettingsFormat) ([]byte, error) {
	switch format {
	case SettingsFormatTOML:
		return toml.Marshal(settings)
	case SettingsFormatJSON:
		data, err := json.MarshalIndent(settings, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	default:
		return nil, fmt.Errorf("unsupported settings format %q", format)
	}
}

// replaceFile stages data next to path and renames it into place, so a
// concurrent LoadSettings sees either the old file or the new one.
func replaceFile(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".otpfield-settings-*.tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	_, err = tmp.Write(data)
	if err == nil {
		err = tmp.Chmod(0o644)
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
