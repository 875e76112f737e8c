// Package ipc defines the typed boundary between the untrusted renderer
// and the privileged host: the channel whitelists, the renderer-facing
// bridge, and the host-side handlers.
//
// The whitelists are the trust boundary. Send and On never accept a
// channel outside their list, matching is exact and case-sensitive, and
// new channels are added here explicitly, never computed.
package ipc

import "github.com/paintapp/paintapp/internal/menus"

// Direction selects which whitelist a channel is checked against.
type Direction string

const (
	// Send covers renderer-to-host traffic.
	Send Direction = "send"

	// Receive covers host-to-renderer traffic.
	Receive Direction = "receive"
)

// Renderer-to-host channels.
const (
	ChannelShowContextMenu = "show-context-menu"
	ChannelSaveImage       = "save-image"
	ChannelCopyImage       = "copy-image"
	ChannelWindowMinimize  = "window-minimize"
	ChannelWindowMaximize  = "window-maximize"
	ChannelWindowClose     = "window-close"
	ChannelSaveFile        = "save-file"
	ChannelOpenFile        = "open-file"
	ChannelExportImage     = "export-image"
)

// Host-to-renderer channels. Everything the menu factories emit is listed
// alongside the file and theme notifications.
const (
	ChannelFileOpened      = "file-opened"
	ChannelFileSaved       = "file-saved"
	ChannelMenuAction      = "menu-action"
	ChannelThemeChanged    = "theme-changed"
	ChannelContextMenuShow = "context-menu-show"
)

var sendAllowed = map[string]struct{}{
	ChannelShowContextMenu: {},
	ChannelSaveImage:       {},
	ChannelCopyImage:       {},
	ChannelWindowMinimize:  {},
	ChannelWindowMaximize:  {},
	ChannelWindowClose:     {},
	ChannelSaveFile:        {},
	ChannelOpenFile:        {},
	ChannelExportImage:     {},
}

var receiveAllowed = map[string]struct{}{
	ChannelFileOpened:          {},
	ChannelFileSaved:           {},
	ChannelMenuAction:          {},
	ChannelThemeChanged:        {},
	ChannelContextMenuShow:     {},
	menus.ChannelTriggerAction: {},
	menus.ChannelSetBrush:      {},
}

// IsValidChannel reports whether channel is whitelisted for the given
// direction. Unknown directions allow nothing.
func IsValidChannel(channel string, dir Direction) bool {
	switch dir {
	case Send:
		_, ok := sendAllowed[channel]
		return ok
	case Receive:
		_, ok := receiveAllowed[channel]
		return ok
	default:
		return false
	}
}
