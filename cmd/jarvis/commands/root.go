// Package commands implements the jarvis CLI with cobra.
package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCmd builds the root command with every subcommand registered.
func NewRootCmd(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "jarvis",
		Short: "Jarvis - personal assistant console",
		Long: `Talk to your assistant from the terminal.

Examples:
  jarvis chat "what time is it"
  jarvis chat --voice
  jarvis parse "remind me every day at 6pm"
  jarvis classify "search the weather in Hanoi"`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newChatCmd(),
		newParseCmd(),
		newClassifyCmd(),
		newGcalAuthCmd(),
	)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logs")
	return rootCmd
}
