package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bnema/tinybrowser/internal/domain/url"
)

var insertCmd = &cobra.Command{
	Use:   "insert <text> <insertion> <index>",
	Short: "Insert a string at a character offset",
	Long: `Insert <insertion> into <text> before the character at <index>.

The index counts characters, not bytes. It may equal the text length to
append. Any other out-of-range index is an error.

Examples:
  tinybrowser insert example.com https:// 0   # https://example.com
  tinybrowser insert héllo X 2                # héXllo`,
	Args: cobra.ExactArgs(3),
	RunE: runInsert,
}

func init() {
	rootCmd.AddCommand(insertCmd)
}

func runInsert(cmd *cobra.Command, args []string) error {
	index, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("invalid index %q: %w", args[2], err)
	}

	out, err := url.InsertString(args[0], args[1], index)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
