package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"stillwave.dev/internal/app"
	"stillwave.dev/internal/config"
	"stillwave.dev/internal/perf"
	"stillwave.dev/internal/quality"
	"stillwave.dev/internal/store"
)

var (
	flagConfig        string
	flagPreset        string
	flagLogFile       string
	flagFPS           int
	flagReducedMotion bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "stillwave",
		Short: "Stillwave - Ambient synchronized-breathing visualization for the terminal",
		Long: `Stillwave renders a continuously breathing orb whose rhythm is derived
purely from the wall clock: everyone running it at the same moment sees the
same breath, with no server and no network.

Rendering detail adapts to your terminal's measured frame rate and can be
pinned with a quality preset.`,
		RunE: run,
	}

	rootCmd.Flags().StringVar(&flagConfig, "config", "stillwave.yaml", "Path to the YAML configuration file")
	rootCmd.Flags().StringVar(&flagPreset, "preset", "", "Quality preset for this session (auto|low|medium|high)")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write debug logs to this file (a TUI owns the terminal)")
	rootCmd.Flags().IntVar(&flagFPS, "fps", 0, "Override the target frame rate")
	rootCmd.Flags().BoolVar(&flagReducedMotion, "reduced-motion", false, "Hold the orb still and pulse brightness only")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "stillwave: %v\n", err)
		return err
	}
	if flagFPS > 0 {
		cfg.TargetFPS = flagFPS
	}
	if flagLogFile != "" {
		cfg.LogFile = flagLogFile
	}
	if err := config.Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "stillwave: %v\n", err)
		return err
	}

	log, closeLog, err := newLogger(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "stillwave: %v\n", err)
		return err
	}
	defer closeLog()

	prefs := openPrefs(log)
	controller := buildController(cfg, prefs, log)

	if flagPreset != "" {
		p, err := quality.ParsePreset(flagPreset)
		if err != nil {
			fmt.Fprintf(os.Stderr, "stillwave: %v (valid: auto, low, medium, high)\n", err)
			return err
		}
		if err := controller.SetPreset(p); err != nil {
			return err
		}
	}

	log.Info().
		Int("target_fps", cfg.TargetFPS).
		Float64("cycle_seconds", cfg.Breath.TotalCycle()).
		Str("preset", string(controller.Preset())).
		Msg("stillwave starting")

	model := app.New(cfg, controller, flagReducedMotion, log)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithFPS(cfg.TargetFPS),
	)

	model.StartPresence(p)

	_, err = p.Run()
	return err
}

func buildController(cfg *config.Config, prefs store.Store, log zerolog.Logger) *quality.Controller {
	sampler := perf.NewSampler(cfg.WindowSize, float64(cfg.TargetFPS))
	classifier := quality.NewClassifier(quality.Thresholds{
		HighDowngradeFPS:   cfg.Classifier.HighDowngradeFPS,
		MediumUpgradeFPS:   cfg.Classifier.MediumUpgradeFPS,
		MediumDowngradeFPS: cfg.Classifier.MediumDowngradeFPS,
		LowUpgradeFPS:      cfg.Classifier.LowUpgradeFPS,
		CommitAfter:        cfg.Classifier.CommitAfter(),
		MinSamples:         cfg.Classifier.MinSamples,
	})
	return quality.NewController(sampler, classifier, prefs, log)
}

// openPrefs opens the per-user preference file, degrading to an in-memory
// store when no config directory is usable. Preferences then simply do not
// survive the session; the visualization itself is unaffected.
func openPrefs(log zerolog.Logger) store.Store {
	path, err := store.DefaultPath()
	if err != nil {
		log.Warn().Err(err).Msg("no user config dir, preferences will not persist")
		return store.NewMemStore()
	}
	prefs, err := store.Open(path)
	if err != nil {
		log.Warn().Err(err).Msg("unreadable preference file, preferences will not persist")
		return store.NewMemStore()
	}
	return prefs
}

func newLogger(path string) (zerolog.Logger, func(), error) {
	if path == "" {
		return zerolog.Nop(), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Logger{}, nil, fmt.Errorf("open log file %q: %w", path, err)
	}
	log := zerolog.New(f).With().Timestamp().Logger()
	return log, func() { _ = f.Close() }, nil
}
