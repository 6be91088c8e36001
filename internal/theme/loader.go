package theme

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

type Source string

const (
	SourceBuiltin Source = "builtin"
	SourceUser    Source = "user"
)

type Format string

const (
	FormatBuiltin Format = "builtin"
	FormatJSON    Format = "json"
	FormatTOML    Format = "toml"
	FormatYAML    Format = "yaml"
)

type Definition struct {
	Key         string
	DisplayName string
	Metadata    Metadata
	Theme       Theme
	Source      Source
	Format      Format
	Path        string
}

// Catalog keeps the built-in default first, user themes after it sorted by
// display name.
type Catalog struct {
	order []Definition
	index map[string]int
}

func (c Catalog) All() []Definition {
	out := make([]Definition, len(c.order))
	copy(out, c.order)
	return out
}

func (c Catalog) Keys() []string {
	keys := make([]string, len(c.order))
	for i, def := range c.order {
		keys[i] = def.Key
	}
	return keys
}

func (c Catalog) Get(key string) (Definition, bool) {
	idx, ok := c.index[key]
	if !ok {
		return Definition{}, false
	}
	return c.order[idx], true
}

func (c *Catalog) add(def Definition) {
	if c.index == nil {
		c.index = make(map[string]int)
	}
	c.index[def.Key] = len(c.order)
	c.order = append(c.order, def)
}

// LoadCatalog reads every theme file in dirs. Broken files are skipped and
// reported through the returned error; the catalog is usable either way.
func LoadCatalog(dirs []string) (Catalog, error) {
	base := DefaultTheme()
	used := map[string]struct{}{"default": {}}

	var (
		user    []Definition
		loadErr error
	)
	for _, dir := range dirs {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		entries, err := os.ReadDir(dir)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			loadErr = errors.Join(loadErr, fmt.Errorf("themes: read directory %q: %w", dir, err))
			continue
		}
		for _, entry := range entries {
			format, ok := formatFor(entry)
			if !ok {
				continue
			}
			path := filepath.Join(dir, entry.Name())
			def, err := loadUserTheme(path, format, base)
			if err != nil {
				loadErr = errors.Join(loadErr, fmt.Errorf("themes: load %q: %w", path, err))
				continue
			}
			def.Key = uniqueKey(def.Key, used)
			if def.DisplayName == "" {
				def.DisplayName = def.Key
			}
			user = append(user, def)
		}
	}

	sort.SliceStable(user, func(i, j int) bool {
		left := strings.ToLower(user[i].DisplayName)
		right := strings.ToLower(user[j].DisplayName)
		if left == right {
			return user[i].Key < user[j].Key
		}
		return left < right
	})

	var catalog Catalog
	catalog.add(Definition{
		Key:         "default",
		DisplayName: "Default",
		Metadata:    Metadata{Name: "Default"},
		Theme:       base,
		Source:      SourceBuiltin,
		Format:      FormatBuiltin,
	})
	for _, def := range user {
		catalog.add(def)
	}
	return catalog, loadErr
}

func formatFor(entry fs.DirEntry) (Format, bool) {
	if entry.IsDir() {
		return "", false
	}
	switch strings.ToLower(filepath.Ext(entry.Name())) {
	case ".toml":
		return FormatTOML, true
	case ".json":
		return FormatJSON, true
	case ".yaml", ".yml":
		return FormatYAML, true
	default:
		return "", false
	}
}

func loadUserTheme(path string, format Format, base Theme) (Definition, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Definition{}, err
	}
	spec, err := decodeThemeSpec(data, format)
	if err != nil {
		return Definition{}, err
	}
	th, err := ApplySpec(base, spec)
	if err != nil {
		return Definition{}, err
	}

	var meta Metadata
	if spec.Metadata != nil {
		meta = *spec.Metadata
	}
	key := slugify(meta.Name)
	if key == "" {
		key = slugify(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
	}
	return Definition{
		Key:         key,
		DisplayName: strings.TrimSpace(meta.Name),
		Metadata:    meta,
		Theme:       th,
		Source:      SourceUser,
		Format:      format,
		Path:        path,
	}, nil
}

func decodeThemeSpec(data []byte, format Format) (ThemeSpec, error) {
	var spec ThemeSpec
	switch format {
	case FormatJSON:
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&spec); err != nil {
			return ThemeSpec{}, err
		}
	case FormatTOML:
		if err := toml.Unmarshal(data, &spec); err != nil {
			return ThemeSpec{}, err
		}
	case FormatYAML:
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		if err := decoder.Decode(&spec); err != nil && !errors.Is(err, io.EOF) {
			return ThemeSpec{}, err
		}
	default:
		return ThemeSpec{}, fmt.Errorf("decode: unsupported format %q", format)
	}
	return spec, nil
}

// uniqueKey appends -1, -2, ... until candidate no longer collides.
func uniqueKey(candidate string, used map[string]struct{}) string {
	if candidate == "" {
		candidate = "theme"
	}
	key := candidate
	for n := 1; ; n++ {
		if _, taken := used[key]; !taken {
			used[key] = struct{}{}
			return key
		}
		key = fmt.Sprintf("%s-%d", candidate, n)
	}
}

func slugify(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			dash = false
		case r == '-' || r == '_' || unicode.IsSpace(r):
			if !dash {
				b.WriteRune('-')
				dash = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}
