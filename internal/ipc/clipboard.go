package ipc

import (
	"fmt"
	"sync"

	"golang.design/x/clipboard"
)

// ClipboardWriter puts image bytes on the OS clipboard.
type ClipboardWriter interface {
	WriteImage(png []byte) error
}

// systemClipboard backs ClipboardWriter with golang.design/x/clipboard.
// Init talks to the display server, so it runs lazily on first write and
// its failure is remembered.
type systemClipboard struct {
	once    sync.Once
	initErr error
}

// NewSystemClipboard returns the production clipboard writer.
func NewSystemClipboard() ClipboardWriter {
	return &systemClipboard{}
}

func (c *systemClipboard) WriteImage(png []byte) error {
	c.once.Do(func() {
		c.initErr = clipboard.Init()
	})
	if c.initErr != nil {
		return fmt.Errorf("clipboard unavailable: %w", c.initErr)
	}
	clipboard.Write(clipboard.FmtImage, png)
	return nil
}
