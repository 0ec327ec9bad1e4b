package cli

import (
	"github.com/spf13/cobra"

	"github.com/1broseidon/winctl/internal/engine"
)

var moveCmd = &cobra.Command{
	Use:   "move REGEX",
	Short: "Move matching windows, keeping their size",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		x, _ := cmd.Flags().GetInt("x")
		y, _ := cmd.Flags().GetInt("y")
		return apply(args[0], engine.Move{X: x, Y: y})
	},
}

func init() {
	rootCmd.AddCommand(moveCmd)
	moveCmd.Flags().IntP("x", "x", 0, "New x position in pixels")
	moveCmd.Flags().IntP("y", "y", 0, "New y position in pixels")
	moveCmd.MarkFlagRequired("x")
	moveCmd.MarkFlagRequired("y")
}
