package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var catalogs embed.FS

// Catalogs returns the embedded application catalogs and their directory.
func Catalogs() (fs.FS, string) {
	return catalogs, "locales"
}

// LoadCatalogs reads every .yaml/.yml file in dir and returns flattened
// messages keyed by language.
func LoadCatalogs(fsys fs.FS, dir string) (map[string]map[string]string, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadCatalog, err)
	}

	result := make(map[string]map[string]string)
	for _, entry := range entries {
		if entry.IsDir() || !isYAML(entry.Name()) {
			continue
		}
		content, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, errors.Join(ErrFailedToReadCatalog, err)
		}
		parsed, err := ParseYAML(content)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", entry.Name(), err)
		}
		for lang, messages := range parsed {
			if result[lang] == nil {
				result[lang] = make(map[string]string, len(messages))
			}
			for k, v := range messages {
				result[lang][k] = v
			}
		}
	}

	if len(result) == 0 {
		return nil, ErrNoTranslations
	}
	return result, nil
}

// ParseYAML parses one catalog document.
func ParseYAML(content []byte) (map[string]map[string]string, error) {
	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, errors.Join(ErrFailedToParseYAML, err)
	}

	result := make(map[string]map[string]string, len(data))
	for lang, val := range data {
		tree, ok := val.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: language %q: expected map, got %T", ErrInvalidCatalog, lang, val)
		}
		flat := make(map[string]string)
		flatten("", tree, flat)
		result[strings.ToLower(lang)] = flat
	}
	return result, nil
}

func flatten(prefix string, tree map[string]any, out map[string]string) {
	for k, v := range tree {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case map[string]any:
			flatten(key, val, out)
		case string:
			out[key] = val
		case nil:
		default:
			out[key] = fmt.Sprint(val)
		}
	}
}

func isYAML(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}
