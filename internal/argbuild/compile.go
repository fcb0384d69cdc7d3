package argbuild

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Source exposes a configuration object's named properties to the compiler.
// Implementations are explicit accessor tables, typically a switch over the
// shape's fields, so no reflection is involved. Nested objects are property
// values that themselves implement Source.
type Source interface {
	// Property returns the named property's value and whether it exists.
	// Name matching is exact-case.
	Property(name string) (any, bool)
	// PropertyNames lists the shape's property names. Used for
	// case-insensitive resolution through a folded table.
	PropertyNames() []string
}

// Compile renders the argument string for one external-tool invocation by
// walking table in insertion order and resolving each descriptor's property
// path against src. Tokens are joined by a single space; an empty table or
// all-skipped descriptors yield the empty string.
func Compile(src Source, table *Table) string {
	var tokens []string
	for _, key := range table.keys {
		token, emit := compileDescriptor(src, table.byKey[key], table.fold)
		if emit && token != "" {
			tokens = append(tokens, token)
		}
	}
	return strings.Join(tokens, " ")
}

// compileDescriptor renders the token for one descriptor and reports whether
// the descriptor emits at all.
func compileDescriptor(src Source, desc Descriptor, fold bool) (string, bool) {
	value, resolved := resolvePath(src, desc.PropertyPath, fold)
	if !resolved {
		if !desc.Required {
			return "", false
		}
		// Absent but required: emit driven purely by the descriptor's own
		// override and option text.
		return renderToken(desc, desc.ValueOverride), true
	}

	if flag, isBool := value.(bool); isBool {
		if !flag && !desc.Required {
			return "", false
		}
		// Booleans emit a bare switch; the value is never rendered.
		return desc.Option, true
	}

	effective := desc.ValueOverride
	if effective == "" {
		effective = stringify(value)
	}
	if effective == "" && !desc.Required {
		return "", false
	}
	return renderToken(desc, effective), true
}

// renderToken assembles the final token from the option text and the value,
// quoting the value when requested or when it contains whitespace. Option
// text is never quoted.
func renderToken(desc Descriptor, value string) string {
	if desc.QuoteValue || containsWhitespace(value) {
		value = `"` + value + `"`
	}
	if desc.UseValueOnly {
		return value
	}
	return desc.Option + value
}

// resolvePath walks each dot-separated segment of path through nested
// Sources. Resolution fails when any segment is missing or when an
// intermediate value is not itself a Source.
func resolvePath(src Source, path string, fold bool) (any, bool) {
	if path == "" {
		return nil, false
	}
	current := any(src)
	for _, segment := range strings.Split(path, ".") {
		node, ok := current.(Source)
		if !ok {
			return nil, false
		}
		value, ok := lookupProperty(node, segment, fold)
		if !ok {
			return nil, false
		}
		current = value
	}
	return current, true
}

// lookupProperty resolves one path segment, falling back to a case-folded
// scan of the shape's property names when the table is case-insensitive.
func lookupProperty(node Source, name string, fold bool) (any, bool) {
	if value, ok := node.Property(name); ok {
		return value, true
	}
	if !fold {
		return nil, false
	}
	for _, candidate := range node.PropertyNames() {
		if strings.EqualFold(candidate, name) {
			return node.Property(candidate)
		}
	}
	return nil, false
}

// stringify renders a scalar property value for emission.
func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// containsWhitespace reports whether s contains any whitespace rune.
func containsWhitespace(s string) bool {
	return strings.IndexFunc(s, unicode.IsSpace) >= 0
}
