package argbuild

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSource is a map-backed Source for compiler tests. Production shapes
// use explicit switch-based accessors; the map keeps test declarations
// compact while preserving exact-case lookup semantics.
type fakeSource struct {
	props map[string]any
}

func (f fakeSource) Property(name string) (any, bool) {
	value, ok := f.props[name]
	return value, ok
}

func (f fakeSource) PropertyNames() []string {
	names := make([]string, 0, len(f.props))
	for name := range f.props {
		names = append(names, name)
	}
	return names
}

func source(props map[string]any) fakeSource {
	return fakeSource{props: props}
}

func TestCompileSimpleOption(t *testing.T) {
	table := NewTable().Add("Sources", Descriptor{PropertyPath: "Sources", Option: "-source "})
	got := Compile(source(map[string]any{"Sources": "yo"}), table)
	require.Equal(t, "-source yo", got)
}

func TestCompileNestedPropertyPath(t *testing.T) {
	table := NewTable().Add("ApiKeyCommand.Key", Descriptor{PropertyPath: "ApiKeyCommand.Key", Option: "-apikey "})
	cfg := source(map[string]any{
		"ApiKeyCommand": source(map[string]any{"Key": "dude"}),
	})
	require.Equal(t, "-apikey dude", Compile(cfg, table))
}

func TestCompileQuoteValue(t *testing.T) {
	table := NewTable().Add("Sources", Descriptor{PropertyPath: "Sources", Option: "-source ", QuoteValue: true})
	got := Compile(source(map[string]any{"Sources": "yo"}), table)
	require.Equal(t, `-source "yo"`, got)
}

func TestCompileEmptyValueSkipped(t *testing.T) {
	table := NewTable().Add("Version", Descriptor{PropertyPath: "Version", Option: "-version "})
	require.Equal(t, "", Compile(source(map[string]any{"Version": ""}), table))
}

func TestCompileRequiredKeywordOrdering(t *testing.T) {
	table := NewTable().
		Add("_install_", Descriptor{PropertyPath: "_install_", Option: "install", Required: true}).
		Add("Sources", Descriptor{PropertyPath: "Sources", Option: "-source "})
	got := Compile(source(map[string]any{"Sources": "yo"}), table)
	require.Equal(t, "install -source yo", got)
}

func TestCompileUnresolvedNotRequiredSkipped(t *testing.T) {
	table := NewTable().Add("Missing", Descriptor{PropertyPath: "Missing", Option: "-missing "})
	require.Equal(t, "", Compile(source(map[string]any{}), table))
}

func TestCompileUnresolvedRequiredEmitsOverride(t *testing.T) {
	table := NewTable().Add("Missing", Descriptor{
		PropertyPath:  "Missing",
		Option:        "-key ",
		ValueOverride: "fallback",
		Required:      true,
	})
	require.Equal(t, "-key fallback", Compile(source(map[string]any{}), table))
}

func TestCompileValueOverrideWins(t *testing.T) {
	table := NewTable().Add("Sources", Descriptor{
		PropertyPath:  "Sources",
		Option:        "-source ",
		ValueOverride: "forced",
	})
	got := Compile(source(map[string]any{"Sources": "ignored"}), table)
	require.Equal(t, "-source forced", got)
}

func TestCompileBooleanSemantics(t *testing.T) {
	t.Run("true emits bare switch", func(t *testing.T) {
		table := NewTable().Add("Verbose", Descriptor{PropertyPath: "Verbose", Option: "-verbose"})
		require.Equal(t, "-verbose", Compile(source(map[string]any{"Verbose": true}), table))
	})
	t.Run("false is omitted", func(t *testing.T) {
		table := NewTable().Add("Verbose", Descriptor{PropertyPath: "Verbose", Option: "-verbose"})
		require.Equal(t, "", Compile(source(map[string]any{"Verbose": false}), table))
	})
	t.Run("false required emits switch anyway", func(t *testing.T) {
		table := NewTable().Add("Verbose", Descriptor{PropertyPath: "Verbose", Option: "-verbose", Required: true})
		require.Equal(t, "-verbose", Compile(source(map[string]any{"Verbose": false}), table))
	})
}

func TestCompileWhitespaceForcesQuoting(t *testing.T) {
	table := NewTable().Add("OutputDirectory", Descriptor{PropertyPath: "OutputDirectory", Option: "-outputdirectory "})
	got := Compile(source(map[string]any{"OutputDirectory": `C:\program files\pakk`}), table)
	require.Equal(t, `-outputdirectory "C:\program files\pakk"`, got)
}

func TestCompileOptionTextNeverQuoted(t *testing.T) {
	table := NewTable().Add("Key", Descriptor{PropertyPath: "Key", Option: "-set name=", QuoteValue: true})
	got := Compile(source(map[string]any{"Key": "value"}), table)
	require.Equal(t, `-set name="value"`, got)
}

func TestCompileUseValueOnly(t *testing.T) {
	table := NewTable().Add("PackageID", Descriptor{PropertyPath: "PackageID", Option: "-ignored ", UseValueOnly: true})
	got := Compile(source(map[string]any{"PackageID": "mypkg"}), table)
	require.Equal(t, "mypkg", got)

	quoted := NewTable().Add("PackageID", Descriptor{PropertyPath: "PackageID", UseValueOnly: true, QuoteValue: true})
	require.Equal(t, `"mypkg"`, Compile(source(map[string]any{"PackageID": "mypkg"}), quoted))
}

func TestCompileTokenJoining(t *testing.T) {
	table := NewTable().
		Add("A", Descriptor{PropertyPath: "A", Option: "-a "}).
		Add("B", Descriptor{PropertyPath: "B", Option: "-b "}).
		Add("C", Descriptor{PropertyPath: "C", Option: "-c "})
	got := Compile(source(map[string]any{"A": "1", "C": "3"}), table)
	require.Equal(t, "-a 1 -c 3", got)
	assert.NotContains(t, got, "  ")
}

func TestCompileOutputOrderFollowsTable(t *testing.T) {
	table := NewTable().
		Add("Second", Descriptor{PropertyPath: "Second", Option: "-second "}).
		Add("First", Descriptor{PropertyPath: "First", Option: "-first "})
	got := Compile(source(map[string]any{"First": "1", "Second": "2"}), table)
	require.Equal(t, "-second 2 -first 1", got)
}

func TestCompileEmptyTable(t *testing.T) {
	require.Equal(t, "", Compile(source(map[string]any{"X": "1"}), NewTable()))
}

func TestCompileExactCaseResolution(t *testing.T) {
	table := NewTable().Add("sources", Descriptor{PropertyPath: "sources", Option: "-source "})
	got := Compile(source(map[string]any{"Sources": "yo"}), table)
	require.Equal(t, "", got, "lowercase path must not match capitalized property")
}

func TestCompileFoldedTableResolvesCaseInsensitively(t *testing.T) {
	table := NewFoldedTable().Add("sources", Descriptor{PropertyPath: "sources", Option: "-source "})
	got := Compile(source(map[string]any{"Sources": "yo"}), table)
	require.Equal(t, "-source yo", got)
}

func TestCompileIntermediateScalarFailsResolution(t *testing.T) {
	table := NewTable().Add("Sources.Key", Descriptor{PropertyPath: "Sources.Key", Option: "-k "})
	got := Compile(source(map[string]any{"Sources": "scalar"}), table)
	require.Equal(t, "", got)
}

func TestCompileIntegerValues(t *testing.T) {
	table := NewTable().Add("PushCommand.Timeout", Descriptor{PropertyPath: "PushCommand.Timeout", Option: "-timeout "})
	cfg := source(map[string]any{
		"PushCommand": source(map[string]any{"Timeout": 300}),
	})
	require.Equal(t, "-timeout 300", Compile(cfg, table))
}
