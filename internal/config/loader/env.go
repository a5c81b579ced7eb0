package loader

import (
	"os"
	"strconv"
	"strings"
)

// EnvLoader loads configuration from environment variables.
type EnvLoader struct {
	prefix  string            // Environment variable prefix (e.g., "LINEEDIT_")
	mapping map[string]string // Env var -> config path

	// environ is replaceable in tests.
	environ func() []string
}

// NewEnvLoader creates a new environment variable loader.
// The prefix should include the trailing underscore (e.g., "LINEEDIT_").
func NewEnvLoader(prefix string) *EnvLoader {
	return NewEnvLoaderWithMapping(prefix, defaultEnvMapping())
}

// NewEnvLoaderWithMapping creates a loader with custom environment variable mappings.
func NewEnvLoaderWithMapping(prefix string, mapping map[string]string) *EnvLoader {
	return &EnvLoader{
		prefix:  prefix,
		mapping: mapping,
		environ: os.Environ,
	}
}

// defaultEnvMapping returns the default environment variable mappings.
func defaultEnvMapping() map[string]string {
	return map[string]string{
		"LINEEDIT_CAPACITY":   "buffer.capacity",
		"LINEEDIT_UNDO_LIMIT": "history.limit",
		"LINEEDIT_LOG_LEVEL":  "logging.level",
		"LINEEDIT_LOG_FILE":   "logging.file",
	}
}

// Load reads environment variables and returns a configuration map.
// Note: Empty string values are treated as valid values, not as unset.
func (l *EnvLoader) Load() (map[string]any, error) {
	config := make(map[string]any)

	for _, env := range l.environ() {
		name, value, ok := strings.Cut(env, "=")
		if !ok || !strings.HasPrefix(name, l.prefix) {
			continue
		}

		path, mapped := l.mapping[name]
		if !mapped {
			// Convert LINEEDIT_SCRIPT_CALL_LIMIT to script.callLimit
			path = l.envToPath(name)
		}
		setByPath(config, path, parseValue(value))
	}

	return config, nil
}

// AddMapping adds a custom environment variable mapping.
func (l *EnvLoader) AddMapping(envVar, configPath string) {
	if l.mapping == nil {
		l.mapping = make(map[string]string)
	}
	l.mapping[envVar] = configPath
}

// envToPath converts LINEEDIT_DISPLAY_TRUNCATE to display.truncate.
func (l *EnvLoader) envToPath(env string) string {
	name := strings.TrimPrefix(env, l.prefix)
	parts := strings.Split(name, "_")

	section := strings.ToLower(parts[0])
	if len(parts) == 1 {
		return section
	}

	// Remaining parts form the setting name in camelCase
	setting := strings.ToLower(parts[1])
	for _, part := range parts[2:] {
		if len(part) > 0 {
			setting += strings.ToUpper(part[:1]) + strings.ToLower(part[1:])
		}
	}
	return section + "." + setting
}

// parseValue attempts to parse the string value into an appropriate type.
func parseValue(s string) any {
	if s == "" {
		return s
	}

	switch strings.ToLower(s) {
	case "true", "yes", "on":
		return true
	case "false", "no", "off":
		return false
	}

	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}

	return s
}

// setByPath sets a value in a nested map using a dot-separated path.
func setByPath(data map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := data

	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}

	current[parts[len(parts)-1]] = value
}
