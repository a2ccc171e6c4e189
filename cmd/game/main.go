package main

import (
	"errors"
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Garsondee/Hexagonal-Zero/internal/audio"
	"github.com/Garsondee/Hexagonal-Zero/internal/config"
	"github.com/Garsondee/Hexagonal-Zero/internal/display"
	"github.com/Garsondee/Hexagonal-Zero/internal/game"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (default $"+config.EnvConfig+")")
	flag.Parse()

	_ = godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.FromEnv(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	var sound game.SoundSystem = game.Mute{}
	var audioErr error
	if cfg.Audio.Enabled {
		player, err := audio.NewPlayer(cfg.Audio)
		if err != nil {
			audioErr = err
			log.Warn().Err(err).Msg("audio disabled")
		} else {
			defer player.Close()
			sound = audio.Sound{Player: player}
		}
	}

	session := game.NewSession(cfg, sound, log.Logger)
	if audioErr != nil {
		session.SetMessage("audio unavailable")
	}

	g := display.New(session, log.Logger)
	w, h := g.Size()
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(w, h)
	ebiten.SetTPS(cfg.Timing.FPS)

	log.Info().Int64("seed", session.Seed()).Int("size", cfg.Board.Size).Msg("starting Hexagonal Zero")
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal().Err(err).Msg("game exited")
	}
}
