package ipc

import (
	"fmt"
	"os"
	"time"

	"github.com/paintapp/paintapp/pkg/logger"
)

// projectExtension is the on-disk project format: a JSON document the
// renderer assembles (canvas snapshot plus sticky notes).
const projectExtension = "paintproj"

// SaveProject writes the renderer's serialized project to a user-chosen
// path. Returns the empty path on dialog cancel, which is not an error.
func (h *Host) SaveProject(args ...interface{}) (string, error) {
	win := h.resolveSender(ChannelSaveFile)
	if win == nil {
		return "", fmt.Errorf("save-file: no live window")
	}
	if len(args) == 0 {
		return "", fmt.Errorf("save-file: missing project payload")
	}
	content, ok := args[0].(string)
	if !ok {
		return "", fmt.Errorf("save-file: unexpected payload type %T", args[0])
	}

	defaultName := fmt.Sprintf("project-%d.%s", time.Now().UnixMilli(), projectExtension)
	path, err := h.dialogs.SaveFile(SaveDialogOptions{
		Title:           "Save Project",
		DefaultFilename: defaultName,
		Filters: []FileFilter{
			{DisplayName: "Paint Projects", Pattern: "*." + projectExtension},
			{DisplayName: "All Files", Pattern: "*.*"},
		},
	})
	if err != nil {
		return "", fmt.Errorf("save-file dialog: %w", err)
	}
	if path == "" {
		logger.Info("project save cancelled")
		return "", nil
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		logger.Error("project save failed", logger.Attrs{"path": path, "error": err.Error()})
		h.dialogs.ShowError("Save Failed", err.Error())
		return "", err
	}
	logger.Info("project saved", logger.Attrs{"path": path})
	return path, nil
}

// OpenProject reads a user-chosen project file. Returns empty values on
// dialog cancel.
func (h *Host) OpenProject() (string, string, error) {
	win := h.resolveSender(ChannelOpenFile)
	if win == nil {
		return "", "", fmt.Errorf("open-file: no live window")
	}

	path, err := h.dialogs.OpenFile(OpenDialogOptions{
		Title: "Open Project",
		Filters: []FileFilter{
			{DisplayName: "Paint Projects", Pattern: "*." + projectExtension},
			{DisplayName: "All Files", Pattern: "*.*"},
		},
	})
	if err != nil {
		return "", "", fmt.Errorf("open-file dialog: %w", err)
	}
	if path == "" {
		logger.Info("project open cancelled")
		return "", "", nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		logger.Error("project open failed", logger.Attrs{"path": path, "error": err.Error()})
		h.dialogs.ShowError("Open Failed", err.Error())
		return "", "", err
	}
	logger.Info("project opened", logger.Attrs{"path": path, "bytes": len(raw)})
	return path, string(raw), nil
}
