package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"jarvis-assistant/internal/router"
)

func newClassifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <text>",
		Short: "Show the intent and agents a message maps to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := router.New()
			res := r.Classify(args[0])
			agents := r.ResolveAgents(args[0]).Sorted()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "intent:     %s\n", res.Intent)
			fmt.Fprintf(out, "confidence: %.1f\n", res.Confidence)
			if len(agents) == 0 {
				fmt.Fprintln(out, "agents:     none")
			} else {
				fmt.Fprintf(out, "agents:     %s\n", strings.Join(agents, ", "))
			}
			return nil
		},
	}
}
