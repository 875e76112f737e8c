package menus

import "github.com/paintapp/paintapp/internal/infrastructure/config"

// ApplicationMenu builds the mac application menu. It captures nothing but
// the createWindow thunk and the default window size; every other click
// posts a tagged trigger-action message to the focused window's renderer.
//
// Clear is deliberately not on CmdOrCtrl+C: that would shadow copy.
func ApplicationMenu(createWindow func(), defaultSize config.Size) *Template {
	resetSize := defaultSize

	return &Template{
		Items: []Item{
			{Type: TypeRole, Role: RoleAppMenu},

			submenu("File",
				Item{
					Type:        TypeText,
					Label:       "New Window",
					Accelerator: "CmdOrCtrl+N",
					Click:       createWindow,
				},
				separator(),
				emitItem("Export Image...", "CmdOrCtrl+Shift+S", ChannelTriggerAction, ActionExportImage),
			),

			submenu("Edit",
				emitItem("Undo", "CmdOrCtrl+Z", ChannelTriggerAction, ActionUndo),
				emitItem("Redo", "Shift+CmdOrCtrl+Z", ChannelTriggerAction, ActionRedo),
				separator(),
				emitItem("Clear", "CmdOrCtrl+Shift+K", ChannelTriggerAction, ActionClear),
			),

			submenu("View",
				emitItem("Zoom In", "CmdOrCtrl+=", ChannelTriggerAction, ActionZoomIn),
				emitItem("Zoom Out", "CmdOrCtrl+-", ChannelTriggerAction, ActionZoomOut),
				emitItem("Actual Size", "CmdOrCtrl+0", ChannelTriggerAction, ActionZoomReset),
				separator(),
				Item{
					Type:   TypeText,
					Label:  "Reset Window Size",
					Resize: &resetSize,
				},
			),

			{Type: TypeRole, Role: RoleWindowMenu},
		},
	}
}
