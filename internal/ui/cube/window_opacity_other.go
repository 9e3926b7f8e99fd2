//go:build !windows

package cube

// Native opacity and z-order are only wired on Windows; elsewhere ghost mode
// dims the background only.
func (cube *Window) applyNativeOpacity(uint8) {}

func (cube *Window) applyNativeTopmost(bool) {}
