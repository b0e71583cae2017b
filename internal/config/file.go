package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ConfigFileEnv names the variable pointing at an optional YAML file of
// environment overrides.
const ConfigFileEnv = "CONFIG_FILE"

// applyFile exports every KEY: value pair of the YAML file at path as an
// environment variable unless the variable is already set, so the real
// environment always wins.
func applyFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	values := make(map[string]any)
	if err := yaml.Unmarshal(content, &values); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}

	for key, value := range values {
		if _, exists := os.LookupEnv(key); exists {
			continue
		}

		if err := os.Setenv(key, scalarString(value)); err != nil {
			return fmt.Errorf("exporting %s from config file: %w", key, err)
		}
	}

	return nil
}

func scalarString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case []any:
		out := ""
		for index, item := range v {
			if index > 0 {
				out += ","
			}
			out += fmt.Sprint(item)
		}

		return out
	default:
		return fmt.Sprint(v)
	}
}
