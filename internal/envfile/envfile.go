// Package envfile parses and patches dotenv-style files. pakk keeps feed
// credentials in .pakk.env so pakk.toml stays safe to commit.
package envfile

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/conn-castle/pakk/internal/messages"
)

// Parse reads env content into a key-value map. Blank lines and # comments
// are skipped; an optional `export ` prefix is tolerated.
func Parse(content string) (map[string]string, error) {
	env := make(map[string]string)
	if content == "" {
		return env, nil
	}

	scanner := bufio.NewScanner(strings.NewReader(content))
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		key, value, ok, err := parseLine(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf(messages.EnvfileLineErrorFmt, lineNo, err)
		}
		if ok {
			env[key] = value
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf(messages.EnvfileReadFailedFmt, err)
	}
	return env, nil
}

// Patch merges updates into existing env content, replacing the first
// occurrence of each key in place and appending new keys at the end.
// Empty update values are ignored. Comments and unrelated lines survive.
func Patch(content string, updates map[string]string) string {
	var lines []string
	if content != "" {
		lines = strings.Split(content, "\n")
	}

	firstIndex := make(map[string]int)
	for i, line := range lines {
		key, _, ok, err := parseLine(line)
		if err != nil || !ok {
			continue
		}
		if _, exists := firstIndex[key]; !exists {
			firstIndex[key] = i
		}
	}

	touched := make(map[string]bool)
	for key, value := range updates {
		if value == "" {
			continue
		}
		entry := key + "=" + encodeValue(value)
		if idx, ok := firstIndex[key]; ok {
			lines[idx] = entry
		} else {
			if len(lines) > 0 && lines[len(lines)-1] != "" {
				lines = append(lines, "")
			}
			lines = append(lines, entry)
			firstIndex[key] = len(lines) - 1
		}
		touched[key] = true
	}
	if len(touched) == 0 {
		return strings.Join(lines, "\n")
	}

	// Drop duplicate definitions of any key we just wrote.
	filtered := make([]string, 0, len(lines))
	for i, line := range lines {
		key, _, ok, err := parseLine(line)
		if err == nil && ok && touched[key] && firstIndex[key] != i {
			continue
		}
		filtered = append(filtered, line)
	}
	return strings.Join(filtered, "\n")
}

func parseLine(line string) (string, string, bool, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", "", false, nil
	}
	trimmed = strings.TrimSpace(strings.TrimPrefix(trimmed, "export "))

	idx := strings.Index(trimmed, "=")
	if idx <= 0 {
		return "", "", false, fmt.Errorf(messages.EnvfileExpectedKeyValue)
	}
	key := strings.TrimSpace(trimmed[:idx])
	if key == "" {
		return "", "", false, fmt.Errorf(messages.EnvfileExpectedKeyValue)
	}
	value := strings.TrimSpace(trimmed[idx+1:])
	if strings.HasPrefix(value, `"`) || strings.HasPrefix(value, `'`) {
		parsed, err := parseQuotedValue(value)
		if err != nil {
			return "", "", false, err
		}
		value = parsed
	}
	return key, value, true, nil
}

// parseQuotedValue handles both quote styles. Double quotes support \\ \"
// \n \r escapes; single quotes are literal. Trailing content after the
// closing quote must be whitespace or a comment.
func parseQuotedValue(value string) (string, error) {
	quote := value[0]
	closing := -1
	if quote == '\'' {
		if off := strings.IndexByte(value[1:], '\''); off >= 0 {
			closing = 1 + off
		}
	} else {
		closing = findClosingDoubleQuote(value)
	}
	if closing < 0 {
		return "", fmt.Errorf(messages.EnvfileUnterminatedQuotedValue)
	}

	suffix := strings.TrimSpace(value[closing+1:])
	if suffix != "" && !strings.HasPrefix(suffix, "#") {
		return "", fmt.Errorf(messages.EnvfileInvalidQuotedSuffix)
	}

	body := value[1:closing]
	if quote == '\'' {
		return body, nil
	}
	return unescape(body), nil
}

func findClosingDoubleQuote(value string) int {
	escaped := false
	for i := 1; i < len(value); i++ {
		if escaped {
			escaped = false
			continue
		}
		switch value[i] {
		case '\\':
			escaped = true
		case '"':
			return i
		}
	}
	return -1
}

func unescape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			switch s[i+1] {
			case '\\', '"':
				b.WriteByte(s[i+1])
				i++
				continue
			case 'n':
				b.WriteByte('\n')
				i++
				continue
			case 'r':
				b.WriteByte('\r')
				i++
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// encodeValue quotes a value when it contains characters that would not
// round-trip bare.
func encodeValue(val string) string {
	if strings.ContainsAny(val, " \t#\n\r\"") {
		val = strings.ReplaceAll(val, "\\", "\\\\")
		val = strings.ReplaceAll(val, "\"", "\\\"")
		val = strings.ReplaceAll(val, "\n", "\\n")
		val = strings.ReplaceAll(val, "\r", "\\r")
		return `"` + val + `"`
	}
	return val
}
