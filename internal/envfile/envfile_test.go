package envfile

import (
	"strings"
	"testing"
)

func TestParseBasic(t *testing.T) {
	env, err := Parse("PAKK_API_KEY=abc123\n# comment\n\nexport PAKK_SOURCE=https://feed.example.com\n")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := env["PAKK_API_KEY"]; got != "abc123" {
		t.Fatalf("PAKK_API_KEY = %q", got)
	}
	if got := env["PAKK_SOURCE"]; got != "https://feed.example.com" {
		t.Fatalf("PAKK_SOURCE = %q", got)
	}
}

func TestParseEmpty(t *testing.T) {
	env, err := Parse("")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(env) != 0 {
		t.Fatalf("expected empty map, got %v", env)
	}
}

func TestParseQuotedValues(t *testing.T) {
	cases := []struct {
		name string
		line string
		want string
	}{
		{"double quoted", `KEY="hello world" # trailing comment`, "hello world"},
		{"escaped quote", `KEY="say \"hi\""`, `say "hi"`},
		{"escaped newline", `KEY="a\nb"`, "a\nb"},
		{"single quoted literal", `KEY='a\nb'`, `a\nb`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			env, err := Parse(tc.line)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tc.line, err)
			}
			if env["KEY"] != tc.want {
				t.Fatalf("KEY = %q, want %q", env["KEY"], tc.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name string
		line string
	}{
		{"no equals", "JUSTAKEY"},
		{"empty key", "=value"},
		{"unterminated quote", `KEY="oops`},
		{"garbage after quote", `KEY="ok" trailing`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse(tc.line); err == nil {
				t.Fatalf("Parse(%q): expected error", tc.line)
			}
			if _, err := Parse(tc.line); err != nil && !strings.Contains(err.Error(), "line 1") {
				t.Fatalf("error should carry line number: %v", err)
			}
		})
	}
}

func TestPatchReplacesInPlace(t *testing.T) {
	content := "# secrets\nPAKK_API_KEY=old\nOTHER=keep\n"
	got := Patch(content, map[string]string{"PAKK_API_KEY": "new"})
	if !strings.Contains(got, "PAKK_API_KEY=new") {
		t.Fatalf("key not replaced: %q", got)
	}
	if !strings.Contains(got, "# secrets") || !strings.Contains(got, "OTHER=keep") {
		t.Fatalf("unrelated lines lost: %q", got)
	}
	if strings.Contains(got, "old") {
		t.Fatalf("old value survived: %q", got)
	}
}

func TestPatchAppendsNewKeys(t *testing.T) {
	got := Patch("EXISTING=1", map[string]string{"PAKK_API_KEY": "secret"})
	lines := strings.Split(got, "\n")
	if lines[len(lines)-1] != "PAKK_API_KEY=secret" {
		t.Fatalf("new key not appended: %q", got)
	}
}

func TestPatchQuotesValuesWithSpaces(t *testing.T) {
	got := Patch("", map[string]string{"KEY": "two words"})
	if got != `KEY="two words"` {
		t.Fatalf("got %q", got)
	}
}

func TestPatchSkipsEmptyValues(t *testing.T) {
	content := "KEY=present"
	if got := Patch(content, map[string]string{"KEY": ""}); got != content {
		t.Fatalf("empty update should not modify content: %q", got)
	}
}

func TestPatchRemovesDuplicates(t *testing.T) {
	got := Patch("KEY=a\nKEY=b", map[string]string{"KEY": "c"})
	if strings.Count(got, "KEY=") != 1 {
		t.Fatalf("duplicate definitions survived: %q", got)
	}
	if !strings.Contains(got, "KEY=c") {
		t.Fatalf("updated value missing: %q", got)
	}
}

func TestParsePatchRoundTrip(t *testing.T) {
	value := `complex "value" with
newline`
	content := Patch("", map[string]string{"KEY": value})
	env, err := Parse(content)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if env["KEY"] != value {
		t.Fatalf("round trip mismatch: %q", env["KEY"])
	}
}
