package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"jarvis-assistant/pkg/datemath"
)

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <text>",
		Short: "Show the schedule a reminder phrase turns into",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tz, _ := cmd.Flags().GetString("timezone")
			parser, err := datemath.NewParser(tz)
			if err != nil {
				return err
			}

			now := time.Now().In(parser.Location())
			desc := parser.ParseSchedule(args[0], now)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "cron:      %s\n", desc.CronExpression)
			fmt.Fprintf(out, "recurring: %t\n", desc.Recurring)
			next, err := desc.Next(now)
			if err != nil {
				return fmt.Errorf("evaluate %q: %w", desc.CronExpression, err)
			}
			fmt.Fprintf(out, "next run:  %s\n", next.Format(time.RFC1123))
			return nil
		},
	}

	cmd.Flags().StringP("timezone", "t", "Local", "IANA timezone to evaluate the phrase in")
	return cmd
}
