package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/notesbridge"
	"github.com/aretw0/notesbridge/pkg/core"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configPath string
	cfg        notesbridge.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "notesbridge",
	Short: "Drive the macOS Notes application from the command line",
	Long: `notesbridge sends AppleScript payloads to the Notes application through
osascript. Each command issues a single request; errors reported by Notes
are printed as they were received.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, opts))
		slog.SetDefault(logger)

		path := configPath
		if path == "" {
			path = notesbridge.ConfigFilePath()
		}
		loaded, err := notesbridge.LoadConfig(path)
		if err != nil {
			fatal("Failed to load config", err)
		}
		cfg = loaded
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/notesbridge/config.toml)")
}

// newService builds the service from the loaded config.
func newService() *core.Service {
	opts := append(cfg.Options(), notesbridge.WithLogger(slog.Default()))
	svc, err := notesbridge.New(opts...)
	if err != nil {
		fatal("Failed to initialize notesbridge", err)
	}
	return svc
}
