package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/lifecycle"
	"github.com/aretw0/notesbridge"
	"github.com/aretw0/notesbridge/pkg/adapters/inbox"
	notesrc "github.com/aretw0/notesbridge/pkg/adapters/lifecycle"
	"github.com/spf13/cobra"
)

var (
	watchPattern string
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Create a note for every file dropped into a directory",
	Long: `Watch observes a directory (default: inbox_dir from the config file) and
creates one note per matching file that is written into it. Runs until
interrupted.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir := cfg.InboxDir
		if len(args) == 1 {
			dir = args[0]
		}
		if dir == "" {
			fatal("No inbox directory", fmt.Errorf("pass a directory or set inbox_dir in %s", notesbridge.ConfigFilePath()))
		}

		pattern := watchPattern
		if pattern == "" {
			pattern = cfg.InboxPattern
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		w := inbox.New(newService(), inbox.Config{
			Dir:     dir,
			Pattern: pattern,
			Logger:  slog.Default(),
		})
		if err := w.Start(ctx); err != nil {
			fatal("Failed to watch inbox", err)
		}

		router := lifecycle.NewRouter()
		router.AddSource(notesrc.NewSource(w.Events()))
		router.HandleFunc(notesrc.TopicCreate, func(_ context.Context, e lifecycle.Event) error {
			if ne, ok := notesrc.FromEvent(e); ok {
				fmt.Println(ne.String())
			}
			return nil
		})
		router.HandleFunc(notesrc.TopicError, func(_ context.Context, e lifecycle.Event) error {
			if ne, ok := notesrc.FromEvent(e); ok {
				fmt.Fprintln(os.Stderr, ne.String())
			}
			return nil
		})
		if err := router.Start(ctx); err != nil {
			fatal("Failed to route inbox events", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVarP(&watchPattern, "pattern", "p", "", "Glob of files to import (default \"**/*.{md,txt}\")")
}
