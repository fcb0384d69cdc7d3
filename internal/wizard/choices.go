package wizard

import (
	"fmt"
	"strings"

	"github.com/conn-castle/pakk/internal/config"
)

// Choices holds the wizard selections before they are applied.
type Choices struct {
	SourceName      string
	SourceURL       string
	OutputDirectory string
	Prerelease      bool
	APIKey          string
}

// NewChoices seeds the selections from an existing config.
func NewChoices(cfg *config.Config) *Choices {
	c := &Choices{}
	if cfg == nil {
		return c
	}
	if len(cfg.Sources) > 0 {
		c.SourceName = cfg.Sources[0].Name
		c.SourceURL = cfg.Sources[0].URL
	}
	c.OutputDirectory = cfg.OutputDirectory
	c.Prerelease = cfg.Prerelease
	return c
}

// Clone returns a copy for back-navigation snapshots.
func (c *Choices) Clone() *Choices {
	if c == nil {
		return nil
	}
	copied := *c
	return &copied
}

// Summary renders the selections for the confirmation screen. The API key
// is never echoed.
func (c *Choices) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Source:            %s (%s)\n", c.SourceName, c.SourceURL)
	fmt.Fprintf(&b, "Output directory:  %s\n", c.OutputDirectory)
	fmt.Fprintf(&b, "Prerelease:        %t\n", c.Prerelease)
	if c.APIKey != "" {
		b.WriteString("API key:           (set, written to .pakk.env)\n")
	}
	return b.String()
}
