package classcfg

import "github.com/knadh/koanf/maps"

// Theme carries design-token customization.
//
// Extend is deliberately untyped: any token category (colors, spacing,
// fontFamily, ...) may appear and nested maps are merged key by key.
type Theme struct {
	Extend map[string]any `koanf:"extend" yaml:"extend" json:"extend"`
}

// IsEmpty reports whether the theme overrides nothing.
func (t Theme) IsEmpty() bool {
	return len(t.Extend) == 0
}

// Resolve merges Extend over defaults and returns the result.
// Neither defaults nor t is modified. Keys present only in defaults survive,
// new keys are added, and leaf values in Extend win.
func (t Theme) Resolve(defaults map[string]any) map[string]any {
	out := map[string]any{}
	if len(defaults) > 0 {
		out = maps.Copy(defaults)
	}
	if t.IsEmpty() {
		return out
	}

	maps.Merge(maps.Copy(t.Extend), out)
	return out
}
