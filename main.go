package main

import (
	"context"
	"errors"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	fs := newFlagSet(os.Args[0])
	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		log.Fatal().Err(err).Msg("Invalid arguments")
	}

	settings, err := loadSettings(fs)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load settings")
	}
	logger, err := newLogger(settings.Log, os.Stderr)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to configure logging")
	}
	log.Logger = logger

	if err := run(settings, logger); err != nil {
		logger.Fatal().Err(err).Msg("Simulator stopped")
	}
}

func run(s *Settings, logger zerolog.Logger) error {
	if s.Export.Sweep != "" {
		return exportSweep(s, logger)
	}

	var metrics *frameMetrics
	if s.Metrics.Addr != "" {
		m, err := newFrameMetrics(nil)
		if err != nil {
			return err
		}
		metrics = m
		stop := serveMetrics(s.Metrics.Addr, m, logger)
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), metricsShutdownGrace)
			defer cancel()
			if err := stop(ctx); err != nil {
				logger.Warn().Err(err).Msg("Metrics server shutdown")
			}
		}()
	}

	g := newGame(s, metrics, logger)
	if s.Profile.RecordDefaultPGO {
		rec, err := recordProfile(s.Profile.Path, logger)
		if err != nil {
			return err
		}
		defer func() {
			if err := rec.Stop(); err != nil {
				logger.Error().Err(err).Msg("CPU profile lost")
			}
		}()
		g.exitAfterAutoSweep = true
		g.enableAutoSweep(s.Profile.Duration)
		logger.Info().Str("path", s.Profile.Path).Dur("duration", s.Profile.Duration).Msg("Recording CPU profile")
	}

	logger.Info().
		Float64("baseFrequency", g.params.BaseFrequency).
		Float64("distance", g.params.Distance).
		Float64("angle", g.params.AngleDegrees).
		Float64("speed", g.params.Speed).
		Str("mode", modeLabel(g.params.SourceMoving)).
		Msg("Starting simulator")

	ebiten.SetWindowSize(s.Window.Width, s.Window.Height)
	ebiten.SetWindowTitle(s.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(s.Window.TPS)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
