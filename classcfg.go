// Package classcfg holds the utility-class content configuration for the rota
// site templates and the tooling that consumes it.
//
// The configuration record declares which template files are scanned for
// class-name usage, which design-token overrides apply, and which plugins
// load before generation:
//
//	cfg := classcfg.Default()
//	targets, stats, err := classcfg.ScanTargets(os.DirFS("."), cfg)
//
// # Classes
//
// Harvest candidate utility classes from the scan targets:
//
//	plugins, err := classcfg.DefaultRegistry().Load(cfg.Plugins)
//	set := classcfg.ExtractClasses(os.DirFS("."), targets, plugins)
//
// # CLI Tool
//
// classcfg also provides a CLI tool. Install with:
//
//	go install github.com/rota-app/classcfg/cmd/classcfg@latest
package classcfg

import "github.com/knadh/koanf/maps"

// Config is the content configuration record.
type Config struct {
	Content []string `koanf:"content" yaml:"content" json:"content"` // Glob patterns scanned for class usage
	Theme   Theme    `koanf:"theme" yaml:"theme" json:"theme"`       // Design-token overrides
	Plugins []string `koanf:"plugins" yaml:"plugins" json:"plugins"` // Plugin references, loaded in order
}

var defaultConfig = Config{
	Content: []string{
		"./templates/**/*.html",
		"./rota/templates/**/*.html",
		"./**/templates/**/*.html",
	},
	Theme: Theme{
		Extend: map[string]any{},
	},
	Plugins: []string{},
}

// Default returns a copy of the project's configuration record.
func Default() Config {
	return defaultConfig.Clone()
}

// Clone returns a deep copy of c. Nil collections come back empty.
func (c Config) Clone() Config {
	out := Config{
		Content: append([]string{}, c.Content...),
		Plugins: append([]string{}, c.Plugins...),
		Theme:   Theme{Extend: map[string]any{}},
	}
	if len(c.Theme.Extend) > 0 {
		out.Theme.Extend = maps.Copy(c.Theme.Extend)
	}
	return out
}
