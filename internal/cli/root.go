// Package cli implements the winctl command surface.
package cli

import (
	"fmt"
	"os"
	"regexp"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/1broseidon/winctl/internal/config"
	"github.com/1broseidon/winctl/internal/engine"
	"github.com/1broseidon/winctl/internal/x11"
)

var rootCmd = &cobra.Command{
	Use:   "winctl",
	Short: "Bulk X11 window manipulation by name pattern",
	Long: "winctl snapshots the X11 window tree, matches window names against a\n" +
		"regular expression, and applies one operation to every match.",
	SilenceUsage: true,
}

// cfg is the effective configuration, resolved before any subcommand runs.
var cfg *config.Config

// Execute runs the CLI, exiting non-zero on any fatal error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Config file path (default: ~/.config/winctl/config.yaml)")
	rootCmd.PersistentFlags().Bool("children", false, "Only consider direct children of the root window")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		path, _ := rootCmd.PersistentFlags().GetString("config")
		var err error
		if path == "" {
			cfg, err = config.Load()
		} else {
			cfg, err = config.LoadFromPath(path)
		}
		if err != nil {
			return err
		}

		log.Logger = zerolog.New(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		}).With().Timestamp().Logger()

		level := cfg.Level()
		if verbose, _ := rootCmd.PersistentFlags().GetBool("verbose"); verbose {
			level = zerolog.DebugLevel
		}
		zerolog.SetGlobalLevel(level)
		return nil
	}
}

// traversal resolves the effective traversal mode from config and flags.
func traversal() x11.Traversal {
	if children, _ := rootCmd.PersistentFlags().GetBool("children"); children {
		return x11.TraverseChildren
	}
	return cfg.Mode()
}

// compilePattern builds the window-name predicate from the REGEX argument.
// A pattern that fails to compile is fatal to the invocation.
func compilePattern(pattern string) (func(string) bool, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %w", pattern, err)
	}
	return re.MatchString, nil
}

// apply runs one action against every window whose name matches pattern.
func apply(pattern string, act engine.Action) error {
	match, err := compilePattern(pattern)
	if err != nil {
		return err
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

	matched := engine.Run(it, match, act)
	log.Debug().Int("matched", matched).Msg("window operation applied")
	return nil
}
