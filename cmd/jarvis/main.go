// Command jarvis is the console front end of the assistant.
package main

import (
	"fmt"
	"os"

	"jarvis-assistant/cmd/jarvis/commands"
)

// version is injected at build time via ldflags.
var version = "dev"

func main() {
	if err := commands.NewRootCmd(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
