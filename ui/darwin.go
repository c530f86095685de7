//go:build darwin

package ui

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework Foundation -framework AppKit

#import <AppKit/AppKit.h>

// setActivationPolicy switches between a regular app (0) with a Dock icon
// and an accessory app (1) without one.
void setActivationPolicy(long policy) {
    [NSApp setActivationPolicy:(NSApplicationActivationPolicy)policy];
    [NSApp activateIgnoringOtherApps:YES];
}
*/
import "C"

const (
	activationRegular   = 0
	activationAccessory = 1
)

// darwinOS implements the OS interface for macOS.
type darwinOS struct{}

// TransformToForeground shows the Dock icon while a window is open.
func (d *darwinOS) TransformToForeground() {
	C.setActivationPolicy(C.long(activationRegular))
}

// TransformToBackground hides the Dock icon again.
func (d *darwinOS) TransformToBackground() {
	C.setActivationPolicy(C.long(activationAccessory))
}

func getOS() OS {
	return &darwinOS{}
}
