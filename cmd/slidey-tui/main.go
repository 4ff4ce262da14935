package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/urfave/cli/v3"

	"chosenoffset.com/slidey/internal/audio"
	"chosenoffset.com/slidey/internal/config"
	"chosenoffset.com/slidey/internal/game"
	"chosenoffset.com/slidey/internal/logging"
	"chosenoffset.com/slidey/internal/tui"
	"chosenoffset.com/slidey/internal/world/levels"
)

func main() {
	cmd := &cli.Command{
		Name:  "slidey-tui",
		Usage: "play slidey in the terminal",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to a YAML config file",
				Value: "slidey.yaml",
			},
			&cli.StringFlag{
				Name:  "log",
				Usage: "write logs to this file; the terminal is busy drawing the game",
			},
		},
		Action: run,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.LoadConfig(cmd.String("config"))
	if err != nil {
		return err
	}

	var logOut io.Writer = io.Discard
	if path := cmd.String("log"); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	log, err := logging.New(logOut, cfg.LogLevel)
	if err != nil {
		return err
	}

	catalog, err := levels.Open(cfg.LevelsDir)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	sound := audio.NewEngine(cfg.AudioSettings())
	if err := sound.Start(); err != nil {
		// Non-fatal, game can run without sound
		log.Warn().Err(err).Msg("audio unavailable, running silent")
	}
	defer sound.Close()

	input := tui.NewInput()
	manager, err := game.NewManager(game.Options{
		Config:  cfg,
		Catalog: catalog,
		Input:   input,
		Audio:   sound,
		Logger:  log,
	})
	if err != nil {
		return err
	}

	tick := time.Second / time.Duration(cfg.Window.TPS)
	log.Info().Int("levels", catalog.Count()).Dur("tick", tick).Msg("starting terminal game")
	return tui.New(screen, manager, input, tick, log).Run(ctx)
}
