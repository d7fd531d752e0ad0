package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/tinybrowser/internal/application/usecase"
	"github.com/bnema/tinybrowser/internal/cli/styles"
)

var resolveJSON bool

var resolveCmd = &cobra.Command{
	Use:   "resolve <text>",
	Short: "Show the URL the address bar would open for text",
	Long: `Resolve address-bar text the way pressing Enter would.

Empty text opens the default engine's main page, "!key query" searches
the engine bound to key, URLs are opened and anything else is searched
with the default engine. Multiple arguments are joined with spaces.

Examples:
  tinybrowser resolve example.com
  tinybrowser resolve golang tutorials
  tinybrowser resolve --json '!gh bubbletea'`,
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
	resolveCmd.Flags().BoolVar(&resolveJSON, "json", false, "print the resolution as JSON")
}

func runResolve(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	out, err := app.Services.ResolveUC.Execute(app.Ctx(), usecase.ResolveInput{Text: strings.Join(args, " ")})
	if err != nil {
		return err
	}

	if resolveJSON {
		return writeJSON(cmd, out.Resolution)
	}

	renderer := styles.NewClassifyRenderer(app.Theme)
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderResolution(out.Resolution))
	return nil
}
