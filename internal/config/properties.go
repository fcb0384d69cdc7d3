package config

import (
	"strings"

	"github.com/conn-castle/pakk/internal/argbuild"
)

// The config graph is what the argument tables compile against, so every
// level implements argbuild.Source with explicit accessors.
var (
	_ argbuild.Source = Config{}
	_ argbuild.Source = ApiKeyCommand{}
	_ argbuild.Source = PushCommand{}
	_ argbuild.Source = PackCommand{}
)

// SourceList returns the feed URLs joined with ";", the list syntax the
// wrapped client accepts for its -source option.
func (c Config) SourceList() string {
	if len(c.Sources) == 0 {
		return ""
	}
	urls := make([]string, 0, len(c.Sources))
	for _, s := range c.Sources {
		urls = append(urls, s.URL)
	}
	return strings.Join(urls, ";")
}

// Property implements argbuild.Source.
func (c Config) Property(name string) (any, bool) {
	switch name {
	case "Sources":
		return c.SourceList(), true
	case "Version":
		return c.Version, true
	case "OutputDirectory":
		return c.OutputDirectory, true
	case "Force":
		return c.Force, true
	case "Verbose":
		return c.Verbose, true
	case "Prerelease":
		return c.Prerelease, true
	case "ApiKeyCommand":
		return c.ApiKeyCommand, true
	case "PushCommand":
		return c.PushCommand, true
	case "PackCommand":
		return c.PackCommand, true
	}
	return nil, false
}

// PropertyNames implements argbuild.Source.
func (c Config) PropertyNames() []string {
	return []string{
		"Sources", "Version", "OutputDirectory", "Force", "Verbose",
		"Prerelease", "ApiKeyCommand", "PushCommand", "PackCommand",
	}
}

// Property implements argbuild.Source.
func (a ApiKeyCommand) Property(name string) (any, bool) {
	switch name {
	case "Key":
		return a.Key, true
	case "Source":
		return a.Source, true
	}
	return nil, false
}

// PropertyNames implements argbuild.Source.
func (a ApiKeyCommand) PropertyNames() []string {
	return []string{"Key", "Source"}
}

// Property implements argbuild.Source.
func (p PushCommand) Property(name string) (any, bool) {
	switch name {
	case "Source":
		return p.Source, true
	case "Timeout":
		// Zero means "use the client default": compile to nothing.
		if p.Timeout == 0 {
			return "", true
		}
		return p.Timeout, true
	}
	return nil, false
}

// PropertyNames implements argbuild.Source.
func (p PushCommand) PropertyNames() []string {
	return []string{"Source", "Timeout"}
}

// Property implements argbuild.Source.
func (p PackCommand) Property(name string) (any, bool) {
	switch name {
	case "BasePath":
		return p.BasePath, true
	}
	return nil, false
}

// PropertyNames implements argbuild.Source.
func (p PackCommand) PropertyNames() []string {
	return []string{"BasePath"}
}
