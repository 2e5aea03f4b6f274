package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Garsondee/Pong/internal/audio"
	"github.com/Garsondee/Pong/internal/config"
	"github.com/Garsondee/Pong/internal/pong"
	"github.com/Garsondee/Pong/internal/tui"
)

func main() {
	var logPath string
	flag.StringVar(&logPath, "log", "", "write logs to this file (the terminal is busy drawing)")

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	flag.BoolVar(&cfg.Mute, "mute", cfg.Mute, "disable sound effects")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "serve RNG seed (0 = clock)")
	flag.Parse()

	if err := run(cfg, logPath); err != nil {
		fmt.Fprintf(os.Stderr, "pong-tui: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, logPath string) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	zerolog.SetGlobalLevel(cfg.Level())
	if logPath == "" {
		log.Logger = zerolog.Nop()
	} else {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		log.Logger = zerolog.New(f).With().Timestamp().Logger()
	}

	opts := []pong.Option{
		pong.WithTickPeriod(cfg.TickPeriod),
		pong.WithFadeDuration(cfg.FadeDuration),
	}
	if cfg.Seed != 0 {
		opts = append(opts, pong.WithSeed(cfg.Seed))
	}
	match := pong.NewMatch(opts...)

	if !cfg.Mute {
		sm := audio.NewSoundManager(0.4)
		if err := sm.Initialize(); err != nil {
			log.Warn().Err(err).Msg("audio unavailable")
		} else {
			defer sm.Cleanup()
			match.Subscribe(sm.OnEvent)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().Dur("tick", cfg.TickPeriod).Msg("starting terminal match")
	if err := tui.New(screen, match).Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
