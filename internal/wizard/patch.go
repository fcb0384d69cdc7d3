package wizard

import (
	"fmt"
	"strconv"
	"strings"

	// toml is used for syntax validation only; the edits themselves are
	// line-based so user comments and formatting survive.
	toml "github.com/pelletier/go-toml"

	"github.com/conn-castle/pakk/internal/messages"
)

// PatchConfig applies wizard choices to pakk.toml content. Existing
// comments, unrelated keys, and additional [[sources]] blocks are left
// untouched; the first source block becomes the primary feed.
func PatchConfig(content string, choices *Choices) (string, error) {
	if _, err := toml.LoadBytes([]byte(content)); err != nil {
		return "", fmt.Errorf(messages.WizardParseConfigFailedFmt, err)
	}

	lines := strings.Split(content, "\n")
	lines = setKeyInSection(lines, "", "output_directory", strconv.Quote(choices.OutputDirectory))
	lines = setKeyInSection(lines, "", "prerelease", strconv.FormatBool(choices.Prerelease))
	lines = setPrimarySource(lines, choices.SourceName, choices.SourceURL)
	return strings.Join(lines, "\n"), nil
}

// setKeyInSection replaces the first uncommented `key =` line inside the
// named section ("" is the top-level area before the first header). A
// missing key is inserted at the end of the section.
func setKeyInSection(lines []string, section, key, value string) []string {
	current := ""
	sectionEnd := -1
	for i, line := range lines {
		name, _, isHeader := parseHeader(line)
		if isHeader {
			if current == section && sectionEnd < 0 {
				sectionEnd = i
			}
			current = name
			continue
		}
		if current != section {
			continue
		}
		if k, ok := parseKeyName(line); ok && k == key {
			lines[i] = renderKeyLine(line, key, value)
			return lines
		}
	}
	if current == section {
		sectionEnd = len(lines)
	}
	if sectionEnd < 0 {
		// Section absent entirely; append it.
		lines = append(lines, "", "["+section+"]")
		sectionEnd = len(lines)
	}

	// Insert above the trailing blank lines of the section.
	at := sectionEnd
	for at > 0 && strings.TrimSpace(lines[at-1]) == "" {
		at--
	}
	out := append(lines[:at:at], key+" = "+value)
	return append(out, lines[at:]...)
}

// setPrimarySource rewrites the first [[sources]] block, or appends one
// when the config has none.
func setPrimarySource(lines []string, name, url string) []string {
	start := -1
	for i, line := range lines {
		header, isArray, ok := parseHeader(line)
		if !ok {
			continue
		}
		if start >= 0 {
			return patchSourceBlock(lines, start, i, name, url)
		}
		if isArray && header == "sources" {
			start = i
		}
	}
	if start >= 0 {
		return patchSourceBlock(lines, start, len(lines), name, url)
	}

	out := trimTrailingBlank(lines)
	return append(out,
		"",
		"[[sources]]",
		"name = "+strconv.Quote(name),
		"url = "+strconv.Quote(url),
		"",
	)
}

func patchSourceBlock(lines []string, start, end int, name, url string) []string {
	nameSet, urlSet := false, false
	for i := start + 1; i < end; i++ {
		key, ok := parseKeyName(lines[i])
		if !ok {
			continue
		}
		switch key {
		case "name":
			lines[i] = renderKeyLine(lines[i], "name", strconv.Quote(name))
			nameSet = true
		case "url":
			lines[i] = renderKeyLine(lines[i], "url", strconv.Quote(url))
			urlSet = true
		}
	}
	if nameSet && urlSet {
		return lines
	}

	insert := make([]string, 0, 2)
	if !nameSet {
		insert = append(insert, "name = "+strconv.Quote(name))
	}
	if !urlSet {
		insert = append(insert, "url = "+strconv.Quote(url))
	}
	out := append(lines[:start+1:start+1], insert...)
	return append(out, lines[start+1:]...)
}

// renderKeyLine rebuilds a key line keeping its indentation and any inline
// comment.
func renderKeyLine(line, key, value string) string {
	indentLen := len(line) - len(strings.TrimLeft(line, " \t"))
	rendered := line[:indentLen] + key + " = " + value
	if comment := inlineComment(line); comment != "" {
		rendered += " " + comment
	}
	return rendered
}

// inlineComment returns the trailing # comment of a key line, skipping #
// characters inside quoted values.
func inlineComment(line string) string {
	inDouble, inSingle := false, false
	for i := 0; i < len(line); i++ {
		switch ch := line[i]; {
		case inDouble:
			if ch == '\\' {
				i++
			} else if ch == '"' {
				inDouble = false
			}
		case inSingle:
			if ch == '\'' {
				inSingle = false
			}
		case ch == '"':
			inDouble = true
		case ch == '\'':
			inSingle = true
		case ch == '#':
			return strings.TrimSpace(line[i:])
		}
	}
	return ""
}

// parseKeyName returns the key of an uncommented `key = value` line.
func parseKeyName(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", false
	}
	eq := strings.Index(trimmed, "=")
	if eq <= 0 {
		return "", false
	}
	return strings.TrimSpace(trimmed[:eq]), true
}

// parseHeader detects a TOML table header line. Returns the name, whether
// it is an array-of-table, and a match flag.
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

func trimTrailingBlank(lines []string) []string {
	end := len(lines)
	for end > 0 && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return lines[:end:end]
}
