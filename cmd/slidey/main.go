package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"chosenoffset.com/slidey/internal/audio"
	"chosenoffset.com/slidey/internal/config"
	"chosenoffset.com/slidey/internal/game"
	"chosenoffset.com/slidey/internal/logging"
	ebitenrender "chosenoffset.com/slidey/internal/render/ebiten"
	"chosenoffset.com/slidey/internal/world/levels"
)

func main() {
	cmd := &cli.Command{
		Name:  "slidey",
		Usage: "slide through each maze and collect every potion",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to a YAML config file",
				Value: "slidey.yaml",
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	cfg, err := config.LoadConfig(cmd.String("config"))
	if err != nil {
		return err
	}

	log, err := logging.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		return err
	}

	catalog, err := levels.Open(cfg.LevelsDir)
	if err != nil {
		return err
	}
	log.Info().Int("levels", catalog.Count()).Str("dir", cfg.LevelsDir).Msg("level catalog loaded")

	// Initialize the renderer backend (ebiten)
	renderer, err := ebitenrender.NewRenderer()
	if err != nil {
		return err
	}
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	sound := audio.NewEngine(cfg.AudioSettings())
	if err := sound.Start(); err != nil {
		log.Warn().Err(err).Msg("audio unavailable, running silent")
	}
	defer sound.Close()

	gameManager, err := game.NewManager(game.Options{
		Config:   cfg,
		Catalog:  catalog,
		Renderer: renderer,
		Input:    inputMgr,
		Audio:    sound,
		Logger:   log,
	})
	if err != nil {
		return err
	}

	// Set up the window
	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetWindowResizable(false)
	engine.SetTPS(cfg.Window.TPS)

	log.Info().Msg("starting game")
	if err := engine.RunGame(gameManager); err != nil {
		log.Error().Err(err).Msg("game stopped")
		return err
	}
	return nil
}
