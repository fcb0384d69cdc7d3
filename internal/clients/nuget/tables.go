// Package nuget builds the command lines for the wrapped NuGet-compatible
// feed client and runs it. The descriptor tables here are the single place
// that knows the client's flag syntax; everything else works against the
// config object graph.
package nuget

import (
	"github.com/conn-castle/pakk/internal/argbuild"
	"github.com/conn-castle/pakk/internal/config"
)

// Table keys for call-scoped values that do not live in pakk.toml.
const (
	keyInstall   = "_install_"
	keyPack      = "_pack_"
	keyPush      = "_push_"
	keyPackageID = "PackageID"
	keyManifest  = "Manifest"
	keyPackage   = "Package"
)

// InstallTable maps the config graph onto `install` flags.
func InstallTable() *argbuild.Table {
	return argbuild.NewTable().
		Add(keyInstall, argbuild.Descriptor{PropertyPath: keyInstall, Option: "install", Required: true}).
		Add(keyPackageID, argbuild.Descriptor{PropertyPath: keyPackageID, UseValueOnly: true, Required: true}).
		Add("Sources", argbuild.Descriptor{PropertyPath: "Sources", Option: "-source ", QuoteValue: true}).
		Add("Version", argbuild.Descriptor{PropertyPath: "Version", Option: "-version "}).
		Add("OutputDirectory", argbuild.Descriptor{PropertyPath: "OutputDirectory", Option: "-outputdirectory ", QuoteValue: true}).
		Add("Prerelease", argbuild.Descriptor{PropertyPath: "Prerelease", Option: "-prerelease"}).
		Add("Verbose", argbuild.Descriptor{PropertyPath: "Verbose", Option: "-verbosity detailed"})
}

// PackTable maps the config graph onto `pack` flags.
func PackTable() *argbuild.Table {
	return argbuild.NewTable().
		Add(keyPack, argbuild.Descriptor{PropertyPath: keyPack, Option: "pack", Required: true}).
		Add(keyManifest, argbuild.Descriptor{PropertyPath: keyManifest, UseValueOnly: true, QuoteValue: true, Required: true}).
		Add("PackCommand.BasePath", argbuild.Descriptor{PropertyPath: "PackCommand.BasePath", Option: "-basepath ", QuoteValue: true}).
		Add("OutputDirectory", argbuild.Descriptor{PropertyPath: "OutputDirectory", Option: "-outputdirectory ", QuoteValue: true}).
		Add("Version", argbuild.Descriptor{PropertyPath: "Version", Option: "-version "})
}

// PushTable maps the config graph onto `push` flags.
func PushTable() *argbuild.Table {
	return argbuild.NewTable().
		Add(keyPush, argbuild.Descriptor{PropertyPath: keyPush, Option: "push", Required: true}).
		Add(keyPackage, argbuild.Descriptor{PropertyPath: keyPackage, UseValueOnly: true, QuoteValue: true, Required: true}).
		Add("PushCommand.Source", argbuild.Descriptor{PropertyPath: "PushCommand.Source", Option: "-source "}).
		Add("ApiKeyCommand.Key", argbuild.Descriptor{PropertyPath: "ApiKeyCommand.Key", Option: "-apikey "}).
		Add("PushCommand.Timeout", argbuild.Descriptor{PropertyPath: "PushCommand.Timeout", Option: "-timeout "})
}

// invocation overlays call-scoped values (package id, manifest path) on the
// loaded config. Overlay keys win so a command argument always beats
// pakk.toml.
type invocation struct {
	cfg   config.Config
	extra map[string]any
}

func (v invocation) Property(name string) (any, bool) {
	if value, ok := v.extra[name]; ok {
		return value, true
	}
	return v.cfg.Property(name)
}

func (v invocation) PropertyNames() []string {
	names := make([]string, 0, len(v.extra))
	for name := range v.extra {
		names = append(names, name)
	}
	return append(names, v.cfg.PropertyNames()...)
}

// InstallArgs compiles the argument line for installing a package.
func InstallArgs(cfg config.Config, packageID string) string {
	return argbuild.Compile(invocation{cfg: cfg, extra: map[string]any{keyPackageID: packageID}}, InstallTable())
}

// PackArgs compiles the argument line for packing a manifest.
func PackArgs(cfg config.Config, manifest string) string {
	return argbuild.Compile(invocation{cfg: cfg, extra: map[string]any{keyManifest: manifest}}, PackTable())
}

// PushArgs compiles the argument line for pushing a packed package.
func PushArgs(cfg config.Config, packagePath string) string {
	return argbuild.Compile(invocation{cfg: cfg, extra: map[string]any{keyPackage: packagePath}}, PushTable())
}
