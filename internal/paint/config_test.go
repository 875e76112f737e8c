package paint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConfigDoc = `{
	"brushes": {"default": "smooth", "available": ["smooth", "texture"]},
	"colors": {"palette": ["#000000", "#ff0000"], "default": "#000000"},
	"canvas": {"width": 1920, "height": 1080, "background": "#ffffff"},
	"tools": {"items": ["brush", "eraser"]}
}`

func TestNewConfigRequiresAllSections(t *testing.T) {
	_, err := newConfig([]byte(validConfigDoc))
	require.NoError(t, err)

	_, err = newConfig([]byte(`{"brushes": {}, "colors": {}, "canvas": {}}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tools")

	_, err = newConfig([]byte("{not json"))
	assert.Error(t, err)
}

func TestConfigSectionIsACopy(t *testing.T) {
	cfg, err := newConfig([]byte(validConfigDoc))
	require.NoError(t, err)

	brushes := cfg.Section("brushes")
	require.NotNil(t, brushes)
	brushes["default"] = "mangled"
	brushes["available"].([]interface{})[0] = "mangled"

	again := cfg.Section("brushes")
	assert.Equal(t, "smooth", again["default"])
	assert.Equal(t, "smooth", again["available"].([]interface{})[0])
}

func TestConfigRawIsACopy(t *testing.T) {
	cfg, err := newConfig([]byte(validConfigDoc))
	require.NoError(t, err)

	raw := cfg.Raw()
	raw["canvas"].(map[string]interface{})["background"] = "#000000"

	again := cfg.Raw()
	assert.Equal(t, "#ffffff", again["canvas"].(map[string]interface{})["background"])
}

func TestConfigLookup(t *testing.T) {
	cfg, err := newConfig([]byte(validConfigDoc))
	require.NoError(t, err)

	v, ok := cfg.Lookup("brushes", "default")
	require.True(t, ok)
	assert.Equal(t, "smooth", v)

	_, ok = cfg.Lookup("brushes", "missing")
	assert.False(t, ok)

	_, ok = cfg.Lookup("brushes", "default", "deeper")
	assert.False(t, ok, "cannot descend through a leaf")
}

func TestConfigSectionUnknown(t *testing.T) {
	cfg, err := newConfig([]byte(validConfigDoc))
	require.NoError(t, err)
	assert.Nil(t, cfg.Section("nope"))
}
