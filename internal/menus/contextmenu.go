package menus

// ContextMenu builds the canvas right-click menu. The Brush Style radio
// group reflects currentBrush; clicking a radio posts set-brush with the
// new tag.
func ContextMenu(currentBrush string) *Template {
	return &Template{
		Items: []Item{
			emitItem("Undo", "", ChannelTriggerAction, ActionUndo),
			emitItem("Redo", "", ChannelTriggerAction, ActionRedo),
			separator(),
			emitItem("Save Project", "", ChannelTriggerAction, ActionSaveProject),
			emitItem("Export Image...", "", ChannelTriggerAction, ActionExportImage),
			separator(),
			emitItem("Clear Canvas", "", ChannelTriggerAction, ActionClear),
			separator(),
			submenu("Brush Style",
				brushRadio("Smooth", BrushSmooth, currentBrush),
				brushRadio("Pen Style", BrushTexture, currentBrush),
			),
		},
	}
}

func brushRadio(label, tag, currentBrush string) Item {
	return Item{
		Type:    TypeRadio,
		Label:   label,
		Checked: tag == currentBrush,
		Emit:    &Emit{Channel: ChannelSetBrush, Tag: tag},
	}
}
