package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	normalizeScheme string
	normalizeDomain string
)

var normalizeCmd = &cobra.Command{
	Use:   "normalize <text>...",
	Short: "Add the default scheme (and domain) to typed text",
	Long: `Complete address-bar text into a URL.

Text that already has a scheme is printed unchanged. Domain-shaped text gets
the default scheme. Other text becomes a page on the default domain, when one
is configured. Scheme and domain default to the [address] config section.

Examples:
  tinybrowser normalize example.com            # https://example.com
  tinybrowser normalize --scheme http a.io/x   # http://a.io/x
  tinybrowser normalize --domain wiki.lan Home # https://wiki.lan/Home`,
	Args: cobra.MinimumNArgs(1),
	RunE: runNormalize,
}

func init() {
	rootCmd.AddCommand(normalizeCmd)
	normalizeCmd.Flags().StringVar(&normalizeScheme, "scheme", "", "default scheme (default from config)")
	normalizeCmd.Flags().StringVar(&normalizeDomain, "domain", "", "default domain (default from config)")
}

func runNormalize(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	scheme := app.Services.Defaults.Scheme
	if cmd.Flags().Changed("scheme") {
		scheme = normalizeScheme
	}
	domain := app.Services.Defaults.Domain
	if cmd.Flags().Changed("domain") {
		domain = normalizeDomain
	}

	for _, text := range args {
		fmt.Fprintln(cmd.OutOrStdout(), app.Services.Classifier.AddDefaultScheme(text, scheme, domain))
	}
	return nil
}
