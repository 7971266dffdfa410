package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"confgen/internal/logging"
	"confgen/internal/watch"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate whenever an input file changes",
	Long: `Generate once, then watch every declaration, definition and the manifest
itself; each change triggers a full regeneration once the files are quiet for
the debounce period. Stop with Ctrl-C.

Examples:
  confgen watch
  confgen watch --debounce 500ms -v`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	addSourceFlags(watchCmd.Flags())
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", watch.DefaultDebounce, "quiet period before regenerating")
}

func runWatch(cmd *cobra.Command, args []string) error {
	logger := logging.NewLogger("watch")

	m, path, err := loadManifest(cmd)
	if err != nil {
		return err
	}

	if err := generate(m); err != nil {
		_ = newErrorHandler(verbose).Handle(err)
	}

	var inputs []string
	if path != "" {
		inputs = append(inputs, path)
	}

	for _, p := range m.Pairs() {
		inputs = append(inputs, p.Inputs()...)
	}

	// The entity list is re-read on every change; new inputs need a restart.
	w, err := watch.New(inputs, watchDebounce, func(context.Context) error {
		m, _, err := loadManifest(cmd)
		if err != nil {
			return err
		}

		return generate(m)
	}, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.WithField("files", len(inputs)).Info("Watching for changes")

	return w.Run(ctx)
}
