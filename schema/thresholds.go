package schema

import "maps"

// Limits maps threshold keys to a maximum byte count.
// A missing key means there is no ceiling; zero is a valid ceiling.
type Limits map[ThresholdKey]int64

// ThresholdConfig holds every configured ceiling for a run.
type ThresholdConfig struct {
	Global   Limits            // Flat top-level values, including the total row keys
	Wildcard Limits            // Overrides applying to any file without its own entry
	Files    map[string]Limits // Overrides keyed by file label
}

// Resolve returns the ceiling that applies to the key for the given file label.
// Precedence is per-file override, then wildcard override, then the global value.
// An empty label skips the per-file lookup, which is how the total row resolves.
func (c ThresholdConfig) Resolve(key ThresholdKey, label string) (int64, bool) {
	if label != "" {
		if limits, ok := c.Files[label]; ok {
			if v, ok := limits[key]; ok {
				return v, true
			}
		}
	}
	if v, ok := c.Wildcard[key]; ok {
		return v, true
	}
	if v, ok := c.Global[key]; ok {
		return v, true
	}
	return 0, false
}

// IsEmpty reports whether no ceiling is configured at all.
func (c ThresholdConfig) IsEmpty() bool {
	if len(c.Global) > 0 || len(c.Wildcard) > 0 {
		return false
	}
	for _, limits := range c.Files {
		if len(limits) > 0 {
			return false
		}
	}
	return true
}

// Set stores a ceiling for a selector. An empty selector targets the global values.
func (c *ThresholdConfig) Set(selector string, key ThresholdKey, value int64) {
	switch selector {
	case "":
		if c.Global == nil {
			c.Global = Limits{}
		}
		c.Global[key] = value
	case WildcardSelector:
		if c.Wildcard == nil {
			c.Wildcard = Limits{}
		}
		c.Wildcard[key] = value
	default:
		if c.Files == nil {
			c.Files = make(map[string]Limits)
		}
		if c.Files[selector] == nil {
			c.Files[selector] = Limits{}
		}
		c.Files[selector][key] = value
	}
}

// Merge overlays other onto c, key by key. Values in other win.
func (c *ThresholdConfig) Merge(other ThresholdConfig) {
	for k, v := range other.Global {
		c.Set("", k, v)
	}
	for k, v := range other.Wildcard {
		c.Set(WildcardSelector, k, v)
	}
	for label, limits := range other.Files {
		for k, v := range limits {
			c.Set(label, k, v)
		}
	}
}

// Clone returns a deep copy of the configuration.
func (c ThresholdConfig) Clone() ThresholdConfig {
	clone := ThresholdConfig{
		Global:   maps.Clone(c.Global),
		Wildcard: maps.Clone(c.Wildcard),
	}
	if c.Files != nil {
		clone.Files = make(map[string]Limits, len(c.Files))
		for label, limits := range c.Files {
			clone.Files[label] = maps.Clone(limits)
		}
	}
	return clone
}

// Exceeded reports whether size is above a resolved ceiling.
func Exceeded(size, limit int64, hasLimit bool) bool {
	return hasLimit && size > limit
}
