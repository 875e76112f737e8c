// Package paint holds the renderer-side configuration and session state:
// the deep-frozen paint configuration, the mutable global state with its
// preallocated history and sticky-note buffers, and the loader that
// bootstraps both from the bundled JSON documents.
package paint

import (
	"encoding/json"
	"fmt"
)

// Config is the deeply immutable paint configuration: brushes, colors,
// canvas and tools sections loaded from paint_config.json. The backing
// map is never handed out; every accessor returns a deep copy, so no
// caller can mutate what another caller reads.
type Config struct {
	data map[string]interface{}
}

// requiredSections must all be present for a config to load.
var requiredSections = []string{"brushes", "colors", "canvas", "tools"}

// newConfig decodes and freezes a paint configuration document.
func newConfig(raw []byte) (*Config, error) {
	var data map[string]interface{}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("paint config: %w", err)
	}
	for _, section := range requiredSections {
		if _, ok := data[section]; !ok {
			return nil, fmt.Errorf("paint config: missing section %q", section)
		}
	}
	return &Config{data: data}, nil
}

// Section returns a deep copy of one top-level section, or nil when the
// section does not exist.
func (c *Config) Section(name string) map[string]interface{} {
	section, ok := c.data[name].(map[string]interface{})
	if !ok {
		return nil
	}
	return deepCopyMap(section)
}

// Lookup walks a path of nested keys and returns a deep copy of the value
// found there.
func (c *Config) Lookup(path ...string) (interface{}, bool) {
	var current interface{} = c.data
	for _, key := range path {
		m, ok := current.(map[string]interface{})
		if !ok {
			return nil, false
		}
		current, ok = m[key]
		if !ok {
			return nil, false
		}
	}
	return deepCopyValue(current), true
}

// Raw returns a deep copy of the whole document.
func (c *Config) Raw() map[string]interface{} {
	return deepCopyMap(c.data)
}

func deepCopyMap(m map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		out[k] = deepCopyValue(v)
	}
	return out
}

func deepCopyValue(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		return deepCopyMap(val)
	case []interface{}:
		out := make([]interface{}, len(val))
		for i, item := range val {
			out[i] = deepCopyValue(item)
		}
		return out
	default:
		return val
	}
}
