package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Garsondee/Hexagonal-Zero/internal/audio"
	"github.com/Garsondee/Hexagonal-Zero/internal/config"
	"github.com/Garsondee/Hexagonal-Zero/internal/game"
	"github.com/Garsondee/Hexagonal-Zero/internal/terminal"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (default $"+config.EnvConfig+")")
	logPath := flag.String("log", "hexzero-term.log", "log file; the terminal itself is the screen")
	flag.Parse()

	_ = godotenv.Load()

	// #nosec G304 -- path comes from the operator
	logFile, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: open log: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	log.Logger = zerolog.New(logFile).With().Timestamp().Logger()

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
		spk, err := audio.NewSpeaker(cfg.Audio)
		if err != nil {
			audioErr = err
			log.Warn().Err(err).Msg("audio disabled")
		} else {
			defer spk.Close()
			sound = audio.Sound{Player: spk}
		}
	}

	screen, err := terminal.NewScreen()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open terminal")
	}
	defer screen.Fini()

	session := game.NewSession(cfg, sound, log.Logger)
	if audioErr != nil {
		session.SetMessage("audio unavailable")
	}
	log.Info().Int64("seed", session.Seed()).Msg("starting Hexagonal Zero (terminal)")
	terminal.New(screen, session, log.Logger).Run()
}
