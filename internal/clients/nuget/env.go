package nuget

import "strings"

// BuildEnv merges PAKK_ secrets from .pakk.env into the base environment.
// Existing entries win so a caller's shell override is never clobbered.
func BuildEnv(base []string, secrets map[string]string) []string {
	for key, value := range secrets {
		if value == "" {
			continue
		}
		if _, ok := GetEnv(base, key); ok {
			continue
		}
		base = SetEnv(base, key, value)
	}
	return base
}

// GetEnv returns the value for the key from an env slice.
func GetEnv(env []string, key string) (string, bool) {
	for _, entry := range env {
		if name, value, ok := strings.Cut(entry, "="); ok && name == key {
			return value, true
		}
	}
	return "", false
}

// SetEnv sets or appends a key=value entry in an env slice.
func SetEnv(env []string, key, value string) []string {
	entry := key + "=" + value
	for i, existing := range env {
		if strings.HasPrefix(existing, key+"=") {
			env[i] = entry
			return env
		}
	}
	return append(env, entry)
}
