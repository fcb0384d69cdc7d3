package config

import (
	"fmt"

	"github.com/conn-castle/pakk/internal/messages"
)

// Validate ensures the config is complete and consistent.
func (c *Config) Validate() error {
	seen := make(map[string]struct{}, len(c.Sources))
	for i, source := range c.Sources {
		if source.Name == "" {
			return fmt.Errorf(messages.ConfigSourceNameRequiredFmt, i)
		}
		if source.URL == "" {
			return fmt.Errorf(messages.ConfigSourceURLRequiredFmt, source.Name)
		}
		if _, dup := seen[source.Name]; dup {
			return fmt.Errorf(messages.ConfigDuplicateSourceFmt, source.Name)
		}
		seen[source.Name] = struct{}{}
	}
	if c.PushCommand.Timeout < 0 {
		return fmt.Errorf(messages.ConfigPushTimeoutFmt, c.PushCommand.Timeout)
	}
	return nil
}
