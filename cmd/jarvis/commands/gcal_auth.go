package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"

	"jarvis-assistant/pkg/gcalendar"
)

func newGcalAuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gcal-auth",
		Short: "Authorize Google Calendar access and save the OAuth token",
		Long: `Run once to let the assistant mirror reminders into Google Calendar.
Open the printed URL, sign in, and paste the authorization code back here.`,
		Args: cobra.NoArgs,
		RunE: runGcalAuth,
	}

	cmd.Flags().String("credentials", "google-credentials.json", "OAuth desktop app credentials file")
	cmd.Flags().String("token", "token.json", "where to save the token")
	return cmd
}

func runGcalAuth(cmd *cobra.Command, _ []string) error {
	credsPath, _ := cmd.Flags().GetString("credentials")
	tokenPath, _ := cmd.Flags().GetString("token")

	data, err := os.ReadFile(credsPath)
	if err != nil {
		return fmt.Errorf("read credentials %q: %w", credsPath, err)
	}

	oauthCfg, err := gcalendar.OAuthConfigFromJSON(data)
	if err != nil {
		return fmt.Errorf("parse credentials (expected an OAuth desktop app file): %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "1. Open this URL and sign in with your Google account:")
	fmt.Fprintln(out)
	fmt.Fprintln(out, oauthCfg.AuthCodeURL("jarvis-gcal", oauth2.AccessTypeOffline))
	fmt.Fprintln(out)
	fmt.Fprint(out, "2. Paste the authorization code: ")

	code, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	code = strings.TrimSpace(code)
	if code == "" {
		return fmt.Errorf("no authorization code read: %v", err)
	}

	tok, err := oauthCfg.Exchange(cmd.Context(), code)
	if err != nil {
		return fmt.Errorf("exchange authorization code: %w", err)
	}
	if err := gcalendar.SaveToken(tokenPath, tok); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nToken saved to %s. Set google_calendar.token_path to it and restart the assistant.\n", tokenPath)
	return nil
}
