package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

// printJSON writes v as indented JSON to the command's output.
func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return sysError(fmt.Errorf("encode JSON: %w", err))
	}
	return nil
}

// writeLine writes one line to the command's output.
func writeLine(cmd *cobra.Command, args ...any) error {
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), args...); err != nil {
		return sysError(err)
	}
	return nil
}

// writef writes formatted text to the command's output.
func writef(cmd *cobra.Command, format string, args ...any) error {
	if _, err := fmt.Fprintf(cmd.OutOrStdout(), format, args...); err != nil {
		return sysError(err)
	}
	return nil
}
