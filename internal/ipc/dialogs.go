package ipc

import (
	"context"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// FileFilter is one entry of a save dialog's type filter.
type FileFilter struct {
	DisplayName string
	Pattern     string
}

// SaveDialogOptions configures the native save dialog.
type SaveDialogOptions struct {
	Title           string
	DefaultFilename string
	Filters         []FileFilter
}

// OpenDialogOptions configures the native open dialog.
type OpenDialogOptions struct {
	Title   string
	Filters []FileFilter
}

// Dialogs abstracts the native dialogs so the host handlers are testable.
// A cancelled dialog returns an empty path and a nil error.
type Dialogs interface {
	SaveFile(opts SaveDialogOptions) (string, error)
	OpenFile(opts OpenDialogOptions) (string, error)
	ShowError(title, message string)
}

// wailsDialogs is the production implementation over the wails runtime.
type wailsDialogs struct {
	ctx context.Context
}

// NewWailsDialogs builds the dialog layer bound to the runtime context.
func NewWailsDialogs(ctx context.Context) Dialogs {
	return &wailsDialogs{ctx: ctx}
}

func (d *wailsDialogs) SaveFile(opts SaveDialogOptions) (string, error) {
	filters := make([]runtime.FileFilter, 0, len(opts.Filters))
	for _, f := range opts.Filters {
		filters = append(filters, runtime.FileFilter{
			DisplayName: f.DisplayName,
			Pattern:     f.Pattern,
		})
	}
	return runtime.SaveFileDialog(d.ctx, runtime.SaveDialogOptions{
		Title:           opts.Title,
		DefaultFilename: opts.DefaultFilename,
		Filters:         filters,
	})
}

func (d *wailsDialogs) OpenFile(opts OpenDialogOptions) (string, error) {
	filters := make([]runtime.FileFilter, 0, len(opts.Filters))
	for _, f := range opts.Filters {
		filters = append(filters, runtime.FileFilter{
			DisplayName: f.DisplayName,
			Pattern:     f.Pattern,
		})
	}
	return runtime.OpenFileDialog(d.ctx, runtime.OpenDialogOptions{
		Title:   opts.Title,
		Filters: filters,
	})
}

func (d *wailsDialogs) ShowError(title, message string) {
	_, _ = runtime.MessageDialog(d.ctx, runtime.MessageDialogOptions{
		Type:    runtime.ErrorDialog,
		Title:   title,
		Message: message,
	})
}
