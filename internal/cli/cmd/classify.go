package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/tinybrowser/internal/cli/styles"
)

var classifyJSON bool

var classifyCmd = &cobra.Command{
	Use:   "classify [text...]",
	Short: "Tell whether text is a URL and locate its scheme and host",
	Long: `Classify address-bar text.

For every argument, print whether it is a URL, the scheme and host ranges
(offsets count characters), the IDNA form of the host and the completed URL.
Without arguments, each line of standard input is classified.

Examples:
  tinybrowser classify example.com "golang tutorials"
  tinybrowser classify --json https://пример.рф/
  cat urls.txt | tinybrowser classify`,
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
	classifyCmd.Flags().BoolVar(&classifyJSON, "json", false, "print results as JSON")
}

func runClassify(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	texts := args
	if len(texts) == 0 {
		texts, err = readLines(cmd)
		if err != nil {
			return err
		}
	}

	results, err := app.Services.ClassifyUC.ClassifyBatch(app.Ctx(), texts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if classifyJSON {
		return writeJSON(cmd, results)
	}

	renderer := styles.NewClassifyRenderer(app.Theme)
	for _, c := range results {
		fmt.Fprintln(out, renderer.RenderClassification(c))
	}
	return nil
}

// readLines reads non-empty lines from the command's input.
func readLines(cmd *cobra.Command) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		if line := strings.TrimRight(scanner.Text(), "\r"); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return lines, nil
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}
