package resource

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/spf13/viper"
)

var envPattern = regexp.MustCompile(`\$\{([^:}]+)(?::([^}]*))?}`)

// Load reads the YAML file at filepath into v and resolves its ${ENV:default} placeholders.
// Keys already present in v are overridden by the file.
func Load(v *viper.Viper, filepath string) error {
	content, err := os.ReadFile(filepath)
	if err != nil {
		return fmt.Errorf("read properties %s: %w", filepath, err)
	}
	return Read(v, bytes.NewReader(content))
}

// Read merges the YAML document in r into v and resolves its ${ENV:default} placeholders.
func Read(v *viper.Viper, r io.Reader) error {
	file := viper.New()
	file.SetConfigType("yml")
	if err := file.ReadConfig(r); err != nil {
		return fmt.Errorf("parse properties: %w", err)
	}

	properties := make(map[string]any)
	parsePropertiesMap("", file.AllSettings(), properties)

	for key, value := range properties {
		v.Set(key, value)
	}
	return nil
}

// parsePropertiesMap reads recursively the YAML file
func parsePropertiesMap(prefix string, data map[string]any, result map[string]any) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result[fullKey] = ResolveEnv(v)
		case map[string]any:
			parsePropertiesMap(fullKey, v, result)
		default:
			result[fullKey] = v
		}
	}
}

// ResolveEnv replaces every ${NAME:default} in value with the NAME environment variable,
// or with default when NAME is unset. Strings without placeholders are returned unchanged.
func ResolveEnv(value string) string {
	return envPattern.ReplaceAllStringFunc(value, func(match string) string {
		parts := envPattern.FindStringSubmatch(match)
		if envValue, exists := os.LookupEnv(parts[1]); exists {
			return envValue
		}
		return parts[2]
	})
}
