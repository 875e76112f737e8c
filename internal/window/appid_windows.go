//go:build windows

package window

import (
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/paintapp/paintapp/pkg/logger"
)

var (
	shell32               = windows.NewLazySystemDLL("shell32.dll")
	setAppUserModelIDProc = shell32.NewProc("SetCurrentProcessExplicitAppUserModelID")
)

// setAppUserModelID claims the taskbar identity so pinned shortcuts and
// notifications group under the app id instead of the executable path.
func setAppUserModelID(id string) {
	ptr, err := windows.UTF16PtrFromString(id)
	if err != nil {
		return
	}
	if ret, _, _ := setAppUserModelIDProc.Call(uintptr(unsafe.Pointer(ptr))); ret != 0 {
		logger.Warn("failed to set app user model id", logger.Attrs{"hresult": ret})
	}
}
