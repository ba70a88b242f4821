package config

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.scnd.dev/open/derive/package/span"
	"gopkg.in/yaml.v3"
)

var templateRegex = regexp.MustCompile(`\{\{\s*([^}]+)\s*}}`)

// New reads directory/name, resolves templates and decodes it into T. A
// missing file yields a zero T and ok false.
func New[T any](directory string, name string) (_ *T, ok bool, err error) {
	// * construct config file path
	configPath := filepath.Join(directory, name)

	// * read config file
	bytes, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return new(T), false, nil
		}
		return nil, false, span.NewError(nil, "unable to read configuration file", err)
	}

	// * process template replacements
	templated, err := Template(bytes)
	if err != nil {
		return nil, false, span.NewError(nil, "error processing templates", err)
	}

	// * create new config instance
	config := new(T)

	// * parse config
	if err := yaml.Unmarshal(templated, config); err != nil {
		return nil, false, span.NewError(nil, "unable to parse configuration file", err)
	}

	return config, true, nil
}

// Template replaces {{ env.NAME || fallback }} expressions. Alternatives are
// tried left to right; env lookups must be non-empty, literals are taken
// as-is (JSON literals are converted to YAML).
func Template(bytes []byte) ([]byte, error) {
	processed := templateRegex.ReplaceAllFunc(bytes, func(match []byte) []byte {
		// * extract content inside braces
		content := strings.TrimSpace(string(match[2 : len(match)-2]))

		// * split by separator
		parts := strings.Split(content, "||")
		for i, part := range parts {
			parts[i] = strings.TrimSpace(part)
		}

		// * check each part
		for _, part := range parts {
			if strings.HasPrefix(part, "env.") {
				key := strings.TrimPrefix(part, "env.")
				value := os.Getenv(key)
				if value != "" {
					return []byte(value)
				}
			} else if part != "" {
				value, err := Nested(part)
				if err != nil {
					return []byte(part)
				}
				return []byte(value)
			}
		}

		// * no valid value found, return empty
		return []byte("")
	})

	return processed, nil
}

func Nested(value string) (string, error) {
	// * try to parse as json
	var result any
	if err := json.Unmarshal([]byte(value), &result); err != nil {
		return "", err
	}

	// * convert back to yaml
	bytes, err := yaml.Marshal(result)
	if err != nil {
		return "", err
	}

	// * remove trailing newline
	return strings.TrimSuffix(string(bytes), "\n"), nil
}
