package cli

import (
	"github.com/spf13/cobra"

	"char_frequency/internal/service"
)

// NewRootCommand 建立 charfreq 的根命令
func NewRootCommand(version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "charfreq",
		Short: "charfreq counts how often each character occurs in a string.",
		Long: `charfreq computes per-character occurrence counts, ordered from the
most frequent to the least frequent character, using the same rules as
the HTTP service.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(NewCountCommand(service.DefaultMaxLength))

	return rootCmd
}
