package main

import (
	"flag"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Garsondee/Pong/internal/audio"
	"github.com/Garsondee/Pong/internal/config"
	"github.com/Garsondee/Pong/internal/game"
	"github.com/Garsondee/Pong/internal/pong"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	flag.BoolVar(&cfg.Mute, "mute", cfg.Mute, "disable sound effects")
	flag.Float64Var(&cfg.Scale, "scale", cfg.Scale, "window scale factor")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "serve RNG seed (0 = clock)")
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid settings")
	}
	zerolog.SetGlobalLevel(cfg.Level())

	g := game.New(cfg)

	if !cfg.Mute {
		sm := audio.NewSoundManager(0.4)
		if err := sm.Initialize(); err != nil {
			log.Warn().Err(err).Msg("audio unavailable, continuing without sound")
		} else {
			defer sm.Cleanup()
			g.Match().Subscribe(sm.OnEvent)
		}
	}

	ebiten.SetWindowTitle("Pong")
	ebiten.SetWindowSize(int(pong.DefaultCanvasWidth*cfg.Scale), int(pong.DefaultCanvasHeight*cfg.Scale))
	log.Info().Dur("tick", cfg.TickPeriod).Float64("scale", cfg.Scale).Bool("mute", cfg.Mute).Msg("starting")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal().Err(err).Msg("game exited")
	}
}
