package cmd

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/okibi/sheets-mcp/internal/google"
)

func newAuthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "auth",
		Short: "Authorize read-only Google Sheets and Drive access",
		Long: `Run the interactive OAuth bootstrap: print the authorization URL,
read the pasted authorization code, and save the resulting token.

The token is stored under the user cache directory and is refreshed
automatically by the serve command. Set GOOGLE_CLIENT_ID and
GOOGLE_CLIENT_SECRET to use your own OAuth application.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAuth(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func runAuth(ctx context.Context, in io.Reader, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	fmt.Fprintf(out, "Visit this URL in your browser to authorize access:\n\n  %s\n\n", google.GetAuthURL())
	fmt.Fprint(out, "Paste the authorization code here: ")

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return fmt.Errorf("failed to read authorization code: %w", err)
	}

	authCode := strings.TrimSpace(line)
	if authCode == "" {
		return fmt.Errorf("no authorization code provided")
	}

	if err := google.SaveToken(ctx, authCode); err != nil {
		return err
	}

	fmt.Fprintln(out, "Authorization successful. Token saved.")
	return nil
}
