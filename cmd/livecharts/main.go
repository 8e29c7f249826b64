// Package main provides the CLI entry point for livecharts.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/zappabad/livecharts/internal/chart"
	"github.com/zappabad/livecharts/internal/dataset"
	"github.com/zappabad/livecharts/internal/logging"
	"github.com/zappabad/livecharts/internal/session"
	"github.com/zappabad/livecharts/internal/sim"
	"github.com/zappabad/livecharts/tui"
	"golang.org/x/sync/errgroup"
)

var (
	configPath string
	logFile    string
	logLevel   string
	duration   time.Duration
	chartName  string
	properties []string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "livecharts",
		Short: "Live quadrant, area and radar charts in the terminal",
		Long: `livecharts animates three charts over randomly generated data.
Each chart runs in Manual or Auto mode and keeps a short trail of
its recent positions.`,
		SilenceUsage: true,
		RunE:         runTUI,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file (default: built-in settings)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&chartName, "chart", "", "Chart to open in the UI, or the only chart to run in watch: quadrant, area, radar")
	rootCmd.PersistentFlags().StringArrayVarP(&properties, "property", "p", nil, "Initial quadrant weight as key=value, e.g. property2=40 (repeatable)")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "Run the interactive terminal UI (default)",
		Args:  cobra.NoArgs,
		RunE:  runTUI,
	}
	tuiCmd.Flags().StringVar(&logFile, "log-file", "livecharts.log", "File the UI logs to")
	rootCmd.Flags().AddFlagSet(tuiCmd.Flags())

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Run every chart in Auto mode and log each update",
		Args:  cobra.NoArgs,
		RunE:  runWatch,
	}
	watchCmd.Flags().DurationVarP(&duration, "duration", "d", 0, "Stop after this long (default: until interrupted)")

	rootCmd.AddCommand(tuiCmd, watchCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func loadConfig() (session.Config, error) {
	if configPath == "" {
		cfg := session.DefaultConfig()
		if logLevel != "" {
			cfg.LogLevel = logLevel
		}
		return cfg, cfg.Validate()
	}
	cfg, err := session.LoadConfig(configPath)
	if err != nil {
		return cfg, err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	return cfg, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The terminal belongs to the UI, so logs go to a file.
	logger, f, err := logging.OpenFile(logFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer f.Close()

	kind, err := selectedKind()
	if err != nil {
		return err
	}

	s, err := session.New(cfg, sim.WithLogger(logger))
	if err != nil {
		return err
	}
	defer s.Close()

	if err := applyProperties(s.Quadrant, properties); err != nil {
		return err
	}

	model := tui.NewModel(s, logger)
	if kind != "" {
		model.Select(kind)
	}
	logger.Info("starting", "charts", len(s.Charts()))
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	logger.Info("shut down")
	return nil
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := logging.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		return err
	}
	kind, err := selectedKind()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, duration)
		defer cancel()
	}

	s, err := session.New(cfg, sim.WithLogger(logger))
	if err != nil {
		return err
	}
	if err := applyProperties(s.Quadrant, properties); err != nil {
		s.Close()
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return logUpdates(ctx, s, logger)
	})
	g.Go(func() error {
		<-ctx.Done()
		s.Close()
		return nil
	})

	if kind != "" {
		s.SetMode(sim.ModeManual)
		s.Chart(kind).SetMode(sim.ModeAuto)
	} else {
		s.SetMode(sim.ModeAuto)
	}
	logger.Info("watching", "chart", chartName, "duration", duration)

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	logger.Info("stopped", "dropped", s.DroppedUpdates())
	return nil
}

func selectedKind() (chart.Kind, error) {
	if chartName == "" {
		return "", nil
	}
	return chart.ParseKind(chartName)
}

// applyProperties sets quadrant weights from key=value assignments. Keys are
// property names or their numbers; values must lie in [0,100].
func applyProperties(q *chart.Quadrant, assigns []string) error {
	for _, a := range assigns {
		name, value, ok := strings.Cut(a, "=")
		if !ok {
			return fmt.Errorf("property %q: expected key=value", a)
		}
		key, err := dataset.ParseProperty(name)
		if err != nil {
			return err
		}
		if !q.UpdatePropertyText(key, value) {
			return fmt.Errorf("property %s: %q is not a number in [0, 100]", key, value)
		}
	}
	return nil
}

func logUpdates(ctx context.Context, s *session.Session, logger *log.Logger) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case u, ok := <-s.Updates():
			if !ok {
				return nil
			}
			logger.Info("update",
				"chart", u.Chart,
				"seq", u.Seq,
				"source", u.Source,
				"x", fmt.Sprintf("%.2f", u.Point.X),
				"y", fmt.Sprintf("%.2f", u.Point.Y),
				"recorded", u.Recorded,
			)
		}
	}
}
