package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/petscii/snake64/internal/audio"
	"github.com/petscii/snake64/internal/config"
	"github.com/petscii/snake64/internal/core"
	"github.com/petscii/snake64/internal/game"
	"github.com/petscii/snake64/internal/platform/tui"
)

func runPlay(cmd *cobra.Command, args []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "snake64",
	})

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// The playfield is a fixed 40x25 character grid; warn when the
	// terminal cannot show all of it.
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if w < core.ScreenW || h < core.ScreenH {
			logger.Warn("terminal smaller than the playfield",
				"have", fmt.Sprintf("%dx%d", w, h),
				"need", fmt.Sprintf("%dx%d", core.ScreenW, core.ScreenH))
		}
	}

	opts := tui.Options{
		FPS:    cfg.Display.FPS,
		Seed:   flagSeed,
		Tuning: tuningFromConfig(cfg),
		Audio:  audio.NewDriver(&audio.RegisterFile{}),
	}
	if flagFPS > 0 {
		opts.FPS = flagFPS
	}

	switch flagControls {
	case "":
	case "arrows":
		scheme := tui.SchemeArrows
		opts.Scheme = &scheme
	case "wasd":
		scheme := tui.SchemeWASD
		opts.Scheme = &scheme
	default:
		return fmt.Errorf("unknown control scheme %q (want \"arrows\" or \"wasd\")", flagControls)
	}

	if err := tui.Run(opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// tuningFromConfig maps the YAML tuning onto the engine parameters.
func tuningFromConfig(cfg config.Config) game.Tuning {
	return game.Tuning{
		MinDelayFrames:         cfg.Speed.MinDelayFrames,
		MaxDelayFrames:         cfg.Speed.MaxDelayFrames,
		CurveScale:             cfg.Speed.CurveScale,
		ReadyFrames:            cfg.Timing.ReadyFrames,
		CollideFrames:          cfg.Timing.CollideFrames,
		PauseFlashFrames:       cfg.Timing.PauseFlashFrames,
		HighScoreFlashToggles:  cfg.Timing.HighScoreFlashToggles,
		HighScoreFlashInterval: cfg.Timing.HighScoreFlashInterval,
	}
}
