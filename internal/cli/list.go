package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/1broseidon/winctl/internal/x11"
)

var listCmd = &cobra.Command{
	Use:   "list [REGEX]",
	Short: "List resolved windows, optionally filtered by name pattern",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().Bool("json", false, "Output as JSON")
}

type windowJSON struct {
	ID     uint32 `json:"id"`
	Name   string `json:"name"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

func runList(cmd *cobra.Command, args []string) error {
	match := func(string) bool { return true }
	if len(args) == 1 {
		var err error
		if match, err = compilePattern(args[0]); err != nil {
			return err
		}
	}

	conn, err := x11.OpenDisplay(cfg.Display)
	if err != nil {
		return err
	}
	defer conn.Release()

	it, err := x11.Enumerate(conn, traversal())
	if err != nil {
		return err
	}

	jsonOut, _ := cmd.Flags().GetBool("json")
	entries := []windowJSON{}
	for {
		w, ok := it.Next()
		if !ok {
			break
		}
		if match(w.Name) {
			if jsonOut {
				entries = append(entries, windowJSON{
					ID:     uint32(w.ID),
					Name:   w.Name,
					X:      w.Geom.X,
					Y:      w.Geom.Y,
					Width:  w.Geom.Width,
					Height: w.Geom.Height,
				})
			} else {
				fmt.Printf("0x%08x %dx%d%+d%+d %s\n",
					uint32(w.ID), w.Geom.Width, w.Geom.Height, w.Geom.X, w.Geom.Y, w.Name)
			}
		}
		w.Release()
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}
	return nil
}
