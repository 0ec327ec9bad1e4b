package cli

import (
	"github.com/spf13/cobra"

	"github.com/1broseidon/winctl/internal/engine"
)

var showCmd = &cobra.Command{
	Use:   "show REGEX",
	Short: "Map (show) matching windows",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return apply(args[0], engine.Show{})
	},
}

var hideCmd = &cobra.Command{
	Use:   "hide REGEX",
	Short: "Unmap (hide) matching windows",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return apply(args[0], engine.Hide{})
	},
}

var raiseCmd = &cobra.Command{
	Use:   "raise REGEX",
	Short: "Raise matching windows in the stacking order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return apply(args[0], engine.Raise{})
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(hideCmd)
	rootCmd.AddCommand(raiseCmd)
}
