package ipc

import (
	"fmt"
	"os"
	"time"

	"github.com/paintapp/paintapp/internal/menus"
	"github.com/paintapp/paintapp/internal/window"
	"github.com/paintapp/paintapp/pkg/events"
	"github.com/paintapp/paintapp/pkg/logger"
)

// WindowResolver locates the window a renderer message originated from.
// With a single main window that is simply the manager's current window;
// the indirection keeps the handlers testable and makes the liveness
// check explicit.
type WindowResolver interface {
	GetMainWindow() window.HostWindow
}

// SaveImagePayload is the save-image request shape.
type SaveImagePayload struct {
	DataURL string `json:"dataUrl"`
	Format  string `json:"format"`
}

// Host registers the privileged request handlers. Every handler resolves
// the sender's window and refuses to act when it is missing or destroyed.
type Host struct {
	bus       *events.Bus
	windows   WindowResolver
	dialogs   Dialogs
	clipboard ClipboardWriter
}

// NewHost wires the host side of the bridge.
func NewHost(bus *events.Bus, windows WindowResolver, dialogs Dialogs, clip ClipboardWriter) *Host {
	return &Host{bus: bus, windows: windows, dialogs: dialogs, clipboard: clip}
}

// Register subscribes the handlers on their channels.
func (h *Host) Register() {
	h.bus.Subscribe(ChannelShowContextMenu, h.handleShowContextMenu)
	h.bus.Subscribe(ChannelSaveImage, h.handleSaveImage)
	h.bus.Subscribe(ChannelCopyImage, h.handleCopyImage)
}

// resolveSender returns the live sender window, or nil (with a warning)
// when it is gone.
func (h *Host) resolveSender(channel string) window.HostWindow {
	win := h.windows.GetMainWindow()
	if win == nil || win.Destroyed() {
		logger.Warn("dropping request, sender window gone", logger.Attrs{"channel": channel})
		return nil
	}
	return win
}

// handleShowContextMenu builds the canvas context menu reflecting the
// current brush and pops it up on the sender's window.
func (h *Host) handleShowContextMenu(msg events.Message) {
	win := h.resolveSender(ChannelShowContextMenu)
	if win == nil {
		return
	}
	currentBrush := menus.BrushSmooth
	if len(msg.Args) > 0 {
		if brush, ok := msg.Args[0].(string); ok && brush != "" {
			currentBrush = brush
		}
	}
	template := menus.ContextMenu(currentBrush)
	win.Emit(ChannelContextMenuShow, menus.Serialize(template))
}

// handleSaveImage runs the export flow: native save dialog, data URL
// decode, optional transcode, file write. Dialog cancel is a normal,
// logged outcome; write failures surface as a modal error dialog.
func (h *Host) handleSaveImage(msg events.Message) {
	win := h.resolveSender(ChannelSaveImage)
	if win == nil {
		return
	}
	payload, err := parseSaveImage(msg.Args)
	if err != nil {
		logger.Warn("rejecting malformed save-image payload", logger.Attrs{"error": err.Error()})
		return
	}

	defaultName := fmt.Sprintf("drawing-%d.%s", time.Now().UnixMilli(), payload.Format)
	path, err := h.dialogs.SaveFile(SaveDialogOptions{
		Title:           "Save Image",
		DefaultFilename: defaultName,
		Filters: []FileFilter{
			{DisplayName: "Images", Pattern: "*." + payload.Format},
			{DisplayName: "All Files", Pattern: "*.*"},
		},
	})
	if err != nil {
		h.failSave(path, err)
		return
	}
	if path == "" {
		logger.Info("image save cancelled")
		return
	}

	data, encodedType, err := DecodeImageDataURL(payload.DataURL)
	if err != nil {
		h.failSave(path, err)
		return
	}
	if encodedType != normalizeFormat(payload.Format) {
		data, err = TranscodeImage(data, payload.Format)
		if err != nil {
			h.failSave(path, err)
			return
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		h.failSave(path, err)
		return
	}
	logger.Info("image saved", logger.Attrs{"path": path, "bytes": len(data)})
}

func (h *Host) failSave(path string, err error) {
	logger.Error("image save failed", logger.Attrs{"path": path, "error": err.Error()})
	h.dialogs.ShowError("Save Failed", err.Error())
}

// handleCopyImage puts the canvas bytes on the OS clipboard.
func (h *Host) handleCopyImage(msg events.Message) {
	win := h.resolveSender(ChannelCopyImage)
	if win == nil {
		return
	}
	if len(msg.Args) == 0 {
		return
	}
	dataURL, ok := msg.Args[0].(string)
	if !ok {
		return
	}
	data, encodedType, err := DecodeImageDataURL(dataURL)
	if err != nil {
		logger.Warn("rejecting malformed copy-image payload", logger.Attrs{"error": err.Error()})
		return
	}
	// The clipboard format is PNG; transcode anything else.
	if encodedType != "png" {
		if data, err = TranscodeImage(data, "png"); err != nil {
			logger.Error("clipboard transcode failed", logger.Attrs{"error": err.Error()})
			return
		}
	}
	if err := h.clipboard.WriteImage(data); err != nil {
		logger.Error("clipboard write failed", logger.Attrs{"error": err.Error()})
		return
	}
	logger.Debug("canvas copied to clipboard", logger.Attrs{"bytes": len(data)})
}

// parseSaveImage accepts either the typed payload or the loose map shape
// the renderer serializes.
func parseSaveImage(args []interface{}) (SaveImagePayload, error) {
	if len(args) == 0 {
		return SaveImagePayload{}, fmt.Errorf("save-image: missing payload")
	}
	switch v := args[0].(type) {
	case SaveImagePayload:
		return validateSaveImage(v)
	case map[string]interface{}:
		payload := SaveImagePayload{}
		if s, ok := v["dataUrl"].(string); ok {
			payload.DataURL = s
		}
		if s, ok := v["format"].(string); ok {
			payload.Format = s
		}
		return validateSaveImage(payload)
	default:
		return SaveImagePayload{}, fmt.Errorf("save-image: unexpected payload type %T", v)
	}
}

func validateSaveImage(p SaveImagePayload) (SaveImagePayload, error) {
	if p.DataURL == "" || p.Format == "" {
		return p, fmt.Errorf("save-image: dataUrl and format are required")
	}
	return p, nil
}
