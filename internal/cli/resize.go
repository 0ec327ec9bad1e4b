package cli

import (
	"github.com/spf13/cobra"

	"github.com/1broseidon/winctl/internal/engine"
)

var resizeCmd = &cobra.Command{
	Use:   "resize REGEX",
	Short: "Resize matching windows, keeping their position",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		width, _ := cmd.Flags().GetInt("width")
		height, _ := cmd.Flags().GetInt("height")
		return apply(args[0], engine.Resize{Width: width, Height: height})
	},
}

func init() {
	rootCmd.AddCommand(resizeCmd)
	resizeCmd.Flags().Int("width", 0, "New width in pixels")
	resizeCmd.Flags().Int("height", 0, "New height in pixels")
	resizeCmd.MarkFlagRequired("width")
	resizeCmd.MarkFlagRequired("height")
}
