// Package config defines the pakk.toml object graph and its loading,
// validation, and in-place patching.
package config

// Default file names resolved relative to the project root.
const (
	FileName    = "pakk.toml"
	EnvFileName = ".pakk.env"
)

// Config is the full pakk.toml object graph. It feeds the argument
// compiler directly, so field names double as property-path segments.
type Config struct {
	Version         string        `toml:"version"`
	OutputDirectory string        `toml:"output_directory"`
	Force           bool          `toml:"force"`
	Verbose         bool          `toml:"verbose"`
	Prerelease      bool          `toml:"prerelease"`
	ApiKeyCommand   ApiKeyCommand `toml:"apikey_command"`
	PushCommand     PushCommand   `toml:"push_command"`
	PackCommand     PackCommand   `toml:"pack_command"`
	Sources         []Source      `toml:"sources"`
}

// Source is one package feed entry.
type Source struct {
	Name string `toml:"name"`
	URL  string `toml:"url"`
}

// ApiKeyCommand holds the feed credential used when pushing packages.
type ApiKeyCommand struct {
	Key    string `toml:"key"`
	Source string `toml:"source"`
}

// PushCommand configures package uploads.
type PushCommand struct {
	Source  string `toml:"source"`
	Timeout int    `toml:"timeout"`
}

// PackCommand configures package creation.
type PackCommand struct {
	BasePath string `toml:"base_path"`
}
