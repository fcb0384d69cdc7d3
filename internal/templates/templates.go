// Package templates embeds the default files that `pakk init` writes.
package templates

import (
	"embed"
	"path"
)

//go:embed files
var content embed.FS

// Read returns the embedded template with the given name.
func Read(name string) ([]byte, error) {
	return content.ReadFile(path.Join("files", name))
}
