package cli

import "github.com/fatih/color"

var (
	HeaderColor = color.New(color.FgGreen, color.Bold).SprintFunc()
	InfoColor   = color.New(color.FgCyan).SprintFunc()
	ErrorColor  = color.New(color.FgRed).SprintFunc()
)
