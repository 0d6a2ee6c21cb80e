package commands

import "github.com/fatih/color"

const assistantLabel = "jarvis> "

var (
	promptColor = color.New(color.FgGreen, color.Bold)
	replyColor  = color.New(color.FgCyan)
	hintColor   = color.New(color.FgHiBlack)
	errorColor  = color.New(color.FgRed)
)
