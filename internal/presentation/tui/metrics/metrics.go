// Package metrics centralizes layout constants for the TUI.
package metrics

const (
	HeaderLines             = 2
	SidebarTitleLines       = 2
	MinSidebarWidth         = 16
	SidebarRightBorderWidth = 1
	MainPaddingLeft         = 1
	ModalWidth              = 60
)
