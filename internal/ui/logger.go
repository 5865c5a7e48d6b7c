package ui

import (
	"github.com/pterm/pterm"
)

var (
	Info    = pterm.Info
	Success = pterm.Success
	Warning = pterm.Warning
	Error   = pterm.Error
	Debug   = pterm.Debug
)

// InitLogger toggles debug output
func InitLogger(debugMode bool) {
	if debugMode {
		pterm.EnableDebugMessages()
	} else {
		pterm.DisableDebugMessages()
	}
}
