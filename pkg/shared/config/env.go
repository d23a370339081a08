package config

import (
	"fmt"
	"os"
	"regexp"

	"github.com/caarlos0/env/v11"
)

// envVarPattern matches ${VAR} or ${VAR:-default}
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(:-([^}]*))?\}`)

// ExpandEnv replaces ${VAR} and ${VAR:-default} references with values from
// the environment. An unset or empty VAR without a default expands to "".
//
//	input := "root: ${ICON_ROOT:-.}"
//	// ICON_ROOT unset: "root: ."
func ExpandEnv(input string) string {
	return envVarPattern.ReplaceAllStringFunc(input, func(match string) string {
		parts := envVarPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		if value, ok := os.LookupEnv(parts[1]); ok && value != "" {
			return value
		}
		if len(parts) >= 4 && parts[2] != "" {
			return parts[3]
		}
		return ""
	})
}

// ExpandEnvBytes is ExpandEnv for file contents read before unmarshaling
func ExpandEnvBytes(input []byte) []byte {
	return []byte(ExpandEnv(string(input)))
}

// ExtractEnvVars returns every variable name referenced in input, in order
// of first appearance.
func ExtractEnvVars(input string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0)
	for _, match := range envVarPattern.FindAllStringSubmatch(input, -1) {
		if !seen[match[1]] {
			seen[match[1]] = true
			result = append(result, match[1])
		}
	}
	return result
}

// MissingEnvVars lists referenced variables that are unset or empty and have
// no ${VAR:-default} fallback.
func MissingEnvVars(input string) []string {
	seen := make(map[string]bool)
	missing := make([]string, 0)
	for _, match := range envVarPattern.FindAllStringSubmatch(input, -1) {
		name := match[1]
		if seen[name] || match[2] != "" {
			continue
		}
		seen[name] = true
		if os.Getenv(name) == "" {
			missing = append(missing, name)
		}
	}
	return missing
}

// ParseEnv loads `env:"..."` tagged fields of target from the environment.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
