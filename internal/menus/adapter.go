package menus

import (
	"strings"

	"github.com/wailsapp/wails/v2/pkg/menu"
	"github.com/wailsapp/wails/v2/pkg/menu/keys"

	"github.com/paintapp/paintapp/internal/infrastructure/config"
	"github.com/paintapp/paintapp/pkg/logger"
)

// Dispatcher posts a tagged message to the focused window's renderer.
type Dispatcher func(channel string, args ...interface{})

// ToNative translates a template into a wails menu. dispatch handles Emit
// items, resize handles Resize items; both may be nil, in which case those
// items become no-ops.
func ToNative(t *Template, dispatch Dispatcher, resize func(config.Size)) *menu.Menu {
	root := menu.NewMenu()
	for _, item := range t.Items {
		root.Append(toNativeItem(item, dispatch, resize))
	}
	return root
}

func toNativeItem(item Item, dispatch Dispatcher, resize func(config.Size)) *menu.MenuItem {
	switch item.Type {
	case TypeSeparator:
		return menu.Separator()

	case TypeRole:
		switch item.Role {
		case RoleAppMenu:
			return menu.AppMenu()
		case RoleWindowMenu:
			return menu.WindowMenu()
		default:
			logger.Warn("unknown menu role", logger.Attrs{"role": string(item.Role)})
			return menu.Separator()
		}

	case TypeSubmenu:
		sub := menu.NewMenu()
		for _, child := range item.Items {
			sub.Append(toNativeItem(child, dispatch, resize))
		}
		return menu.SubMenu(item.Label, sub)

	case TypeRadio:
		return menu.Radio(item.Label, item.Checked, Accel(item.Accelerator),
			clickHandler(item, dispatch, resize))

	default:
		return menu.Text(item.Label, Accel(item.Accelerator),
			clickHandler(item, dispatch, resize))
	}
}

func clickHandler(item Item, dispatch Dispatcher, resize func(config.Size)) menu.Callback {
	return func(*menu.CallbackData) {
		switch {
		case item.Click != nil:
			item.Click()
		case item.Resize != nil && resize != nil:
			resize(*item.Resize)
		case item.Emit != nil && dispatch != nil:
			dispatch(item.Emit.Channel, item.Emit.Tag)
		}
	}
}

// Accel parses a declarative accelerator string like "Shift+CmdOrCtrl+Z"
// into a wails accelerator. Empty input returns nil (no accelerator).
func Accel(s string) *keys.Accelerator {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, "+")
	// "CmdOrCtrl+=": a trailing empty part means the key is '+'-adjacent;
	// splitting eats it, so restore the literal key.
	key := strings.ToLower(parts[len(parts)-1])
	if key == "" {
		key = "+"
	}
	var mods []keys.Modifier
	for _, part := range parts[:len(parts)-1] {
		switch part {
		case "CmdOrCtrl":
			mods = append(mods, keys.CmdOrCtrlKey)
		case "Shift":
			mods = append(mods, keys.ShiftKey)
		case "Alt", "Option":
			mods = append(mods, keys.OptionOrAltKey)
		case "Ctrl", "Control":
			mods = append(mods, keys.ControlKey)
		default:
			logger.Warn("unknown accelerator modifier", logger.Attrs{"modifier": part})
		}
	}
	return &keys.Accelerator{Key: key, Modifiers: mods}
}

// SerialItem is the wire form of a template item, sent to the renderer so
// it can draw the context menu in-page. Clicking an entry there comes back
// over the bridge on the recorded channel/tag.
type SerialItem struct {
	Type    ItemType     `json:"type"`
	Label   string       `json:"label,omitempty"`
	Channel string       `json:"channel,omitempty"`
	Tag     string       `json:"tag,omitempty"`
	Checked bool         `json:"checked,omitempty"`
	Items   []SerialItem `json:"items,omitempty"`
}

// Serialize flattens a template into wire items. Imperative items (Click,
// Resize, roles) have no meaning in-page and are skipped.
func Serialize(t *Template) []SerialItem {
	return serializeItems(t.Items)
}

func serializeItems(items []Item) []SerialItem {
	out := make([]SerialItem, 0, len(items))
	for _, item := range items {
		switch item.Type {
		case TypeSeparator:
			out = append(out, SerialItem{Type: TypeSeparator})
		case TypeSubmenu:
			out = append(out, SerialItem{
				Type:  TypeSubmenu,
				Label: item.Label,
				Items: serializeItems(item.Items),
			})
		case TypeText, TypeRadio:
			if item.Emit == nil {
				continue
			}
			out = append(out, SerialItem{
				Type:    item.Type,
				Label:   item.Label,
				Channel: item.Emit.Channel,
				Tag:     item.Emit.Tag,
				Checked: item.Checked,
			})
		}
	}
	return out
}
