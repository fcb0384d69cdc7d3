package config

import (
	"fmt"
	"strconv"
	"strings"

	// toml is used for syntax validation only; the edits themselves are
	// line-based so user comments and formatting survive.
	toml "github.com/pelletier/go-toml"

	"github.com/conn-castle/pakk/internal/messages"
)

// AddSource appends a [[sources]] block for the named feed and returns the
// updated content. Existing lines are left untouched.
func AddSource(content, name, url string) (string, error) {
	if _, err := toml.LoadBytes([]byte(content)); err != nil {
		return "", fmt.Errorf(messages.ConfigPatchParseFailedFmt, err)
	}
	lines := strings.Split(content, "\n")
	if _, _, found := findSourceBlock(lines, name); found {
		return "", fmt.Errorf(messages.ConfigDuplicateSourceFmt, name)
	}

	out := trimTrailingBlank(lines)
	out = append(out,
		"",
		"[[sources]]",
		"name = "+strconv.Quote(name),
		"url = "+strconv.Quote(url),
		"",
	)
	return strings.Join(out, "\n"), nil
}

// RemoveSource deletes the [[sources]] block for the named feed and returns
// the updated content.
func RemoveSource(content, name string) (string, error) {
	if _, err := toml.LoadBytes([]byte(content)); err != nil {
		return "", fmt.Errorf(messages.ConfigPatchParseFailedFmt, err)
	}
	lines := strings.Split(content, "\n")
	start, end, found := findSourceBlock(lines, name)
	if !found {
		return "", fmt.Errorf(messages.ConfigSourceNotFoundFmt, name)
	}

	// Swallow the separating blank line above the block, if any.
	for start > 0 && strings.TrimSpace(lines[start-1]) == "" {
		start--
	}
	out := append(lines[:start:start], lines[end:]...)
	return strings.Join(out, "\n"), nil
}

// findSourceBlock locates the [[sources]] block whose name key matches.
// Returns the half-open line range [start, end) and whether it was found.
func findSourceBlock(lines []string, name string) (int, int, bool) {
	start := -1
	inSources := false
	for i, line := range lines {
		header, isArray, ok := parseHeader(line)
		if ok {
			if inSources && blockHasName(lines[start:i], name) {
				return start, i, true
			}
			inSources = isArray && header == "sources"
			if inSources {
				start = i
			}
			continue
		}
	}
	if inSources && blockHasName(lines[start:], name) {
		return start, len(lines), true
	}
	return 0, 0, false
}

func blockHasName(lines []string, name string) bool {
	for _, line := range lines {
		key, value, ok := parseKeyValue(line)
		if ok && key == "name" && strings.Trim(value, `"'`) == name {
			return true
		}
	}
	return false
}

// parseHeader detects a TOML table header line and extracts its name.
// Returns the name, whether it is an array-of-table, and a match flag.
func parseHeader(line string) (string, bool, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", false, false
	}
	if idx := strings.Index(trimmed, "#"); idx >= 0 {
		trimmed = strings.TrimSpace(trimmed[:idx])
	}
	if strings.HasPrefix(trimmed, "[[") && strings.HasSuffix(trimmed, "]]") {
		name := strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(trimmed, "[["), "]]"))
		return name, true, name != ""
	}
	if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
		name := strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(trimmed, "["), "]"))
		return name, false, name != ""
	}
	return "", false, false
}

// parseKeyValue extracts a simple key = value assignment from a line.
// Commented lines do not match.
func parseKeyValue(line string) (string, string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", "", false
	}
	eq := strings.Index(trimmed, "=")
	if eq < 0 {
		return "", "", false
	}
	key := strings.TrimSpace(trimmed[:eq])
	value := strings.TrimSpace(trimmed[eq+1:])
	if strings.HasPrefix(value, `"`) {
		if close := strings.Index(value[1:], `"`); close >= 0 {
			value = value[:close+2]
		}
	} else if idx := strings.Index(value, "#"); idx >= 0 {
		value = strings.TrimSpace(value[:idx])
	}
	return key, value, true
}

func trimTrailingBlank(lines []string) []string {
	end := len(lines)
	for end > 0 && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return lines[:end:end]
}
