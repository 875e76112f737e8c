// Package menus builds native-menu descriptors as pure data. Nothing here
// touches the windowing toolkit; the adapter in this package is the single
// consumer that translates templates into wails menu calls, which keeps
// the factories trivially testable.
package menus

import "github.com/paintapp/paintapp/internal/infrastructure/config"

// Channels the menu items emit toward the renderer. The IPC whitelist
// must include every channel listed here.
const (
	ChannelTriggerAction = "trigger-action"
	ChannelSetBrush      = "set-brush"
)

// Action tags carried on trigger-action.
const (
	ActionUndo        = "undo"
	ActionRedo        = "redo"
	ActionZoomIn      = "zoom-in"
	ActionZoomOut     = "zoom-out"
	ActionZoomReset   = "zoom-reset"
	ActionExportImage = "export-image"
	ActionClear       = "clear"
	ActionSaveProject = "save-project"
)

// Brush tags carried on set-brush.
const (
	BrushSmooth  = "smooth"
	BrushTexture = "texture"
)

// ItemType tags a menu item record.
type ItemType string

const (
	TypeText      ItemType = "text"
	TypeSeparator ItemType = "separator"
	TypeRadio     ItemType = "radio"
	TypeSubmenu   ItemType = "submenu"
	TypeRole      ItemType = "role"
)

// Role names a toolkit-provided menu group.
type Role string

const (
	RoleAppMenu    Role = "appMenu"
	RoleWindowMenu Role = "windowMenu"
)

// Emit describes the message an item posts to the focused window's
// renderer when clicked.
type Emit struct {
	Channel string
	Tag     string
}

// Item is one entry in a menu template. Exactly one of Emit, Click,
// Resize, Role or Items is meaningful, selected by Type.
type Item struct {
	Type        ItemType
	Label       string
	Accelerator string

	// Emit posts a tagged message to the renderer.
	Emit *Emit

	// Click is an imperative thunk (New Window).
	Click func()

	// Resize resizes the focused window to the given size.
	Resize *config.Size

	// Checked marks the selected radio of its group.
	Checked bool

	// Role names a toolkit-provided group for TypeRole items.
	Role Role

	// Items is the submenu content for TypeSubmenu items.
	Items []Item
}

// Template is a whole menu: an ordered list of top-level items.
type Template struct {
	Items []Item
}

// submenu is a small helper for the factories.
func submenu(label string, items ...Item) Item {
	return Item{Type: TypeSubmenu, Label: label, Items: items}
}

func separator() Item {
	return Item{Type: TypeSeparator}
}

func emitItem(label, accel, channel, tag string) Item {
	return Item{
		Type:        TypeText,
		Label:       label,
		Accelerator: accel,
		Emit:        &Emit{Channel: channel, Tag: tag},
	}
}
