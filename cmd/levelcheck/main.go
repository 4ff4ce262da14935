// Command levelcheck validates level files and previews them.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"chosenoffset.com/slidey/internal/config"
	"chosenoffset.com/slidey/internal/placeholders"
	"chosenoffset.com/slidey/internal/world/levels"
	"chosenoffset.com/slidey/internal/world/tilemap"
)

var errInvalidLevels = errors.New("invalid levels found")

func main() {
	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:  "levelcheck",
		Usage: "validate and preview slidey levels",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "dir",
				Usage: "directory of level*.txt files (default: the built-in levels)",
			},
			&cli.StringFlag{
				Name:  "config",
				Usage: "YAML config supplying the grid size",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "validate",
				Usage:  "build every level and report its contents",
				Action: validate,
			},
			{
				Name:      "show",
				Usage:     "print a level as text",
				ArgsUsage: "LEVEL",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "png",
						Usage: "also write a preview image to this path",
					},
				},
				Action: show,
			},
		},
	}
}

// load resolves the catalog and grid size from the root flags.
func load(cmd *cli.Command) (*levels.Catalog, *config.Config, error) {
	cfg, err := config.LoadConfig(cmd.String("config"))
	if err != nil {
		return nil, nil, err
	}
	dir := cmd.String("dir")
	if dir == "" {
		dir = cfg.LevelsDir
	}
	catalog, err := levels.Open(dir)
	if err != nil {
		return nil, nil, err
	}
	return catalog, cfg, nil
}

type report struct {
	potions     int
	teleporters int
	players     int
	err         error
}

func validate(ctx context.Context, cmd *cli.Command) error {
	catalog, cfg, err := load(cmd)
	if err != nil {
		return err
	}

	reports := make([]report, catalog.Count())
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i := range reports {
		level := i + 1
		g.Go(func() error {
			m, err := catalog.Build(level, cfg.Grid.Width, cfg.Grid.Height)
			if err != nil {
				reports[level-1] = report{err: err}
				return nil
			}
			reports[level-1] = report{
				potions:     m.Count(tilemap.Potion),
				teleporters: m.Count(tilemap.Teleport),
				players:     m.Count(tilemap.Player),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	out := cmd.Root().Writer
	failed := 0
	for i, r := range reports {
		level := i + 1
		name := catalog.Name(level)
		switch {
		case r.err != nil:
			failed++
			fmt.Fprintf(out, "FAIL  %v\n", r.err)
		case r.players != 1:
			failed++
			fmt.Fprintf(out, "FAIL  level %d (%s): expected 1 player, found %d\n", level, name, r.players)
		default:
			fmt.Fprintf(out, "ok    level %d (%s): %d potions, %d teleporters\n", level, name, r.potions, r.teleporters)
		}
	}
	fmt.Fprintf(out, "%d levels, %d failed\n", len(reports), failed)

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", errInvalidLevels, failed, len(reports))
	}
	return nil
}

func show(ctx context.Context, cmd *cli.Command) error {
	catalog, cfg, err := load(cmd)
	if err != nil {
		return err
	}

	level, err := strconv.Atoi(cmd.Args().First())
	if err != nil {
		return fmt.Errorf("level number required: %w", err)
	}

	m, err := catalog.Build(level, cfg.Grid.Width, cfg.Grid.Height)
	if err != nil {
		return err
	}

	out := cmd.Root().Writer
	fmt.Fprintf(out, "level %d (%s)\n%s\n", level, catalog.Name(level), m.String())

	if path := cmd.String("png"); path != "" {
		if err := placeholders.SavePNG(placeholders.RenderLevel(m), path); err != nil {
			return fmt.Errorf("failed to write preview: %w", err)
		}
		fmt.Fprintf(out, "preview written to %s\n", path)
	}
	return nil
}
