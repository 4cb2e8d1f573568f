// Package main implements the CLI for foldersim, a file and folder structure simulator.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/klingtnet/foldersim/backend"
	"github.com/klingtnet/foldersim/console"
	"github.com/klingtnet/foldersim/internal/fswatcher"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

const (
	InternalError = iota + 1
	BadArgument
)

const welcome = "Welcome to the file-folder structure simulator, type help for a list of commands.\n"

func runMemory(c *cli.Context) error {
	r, err := setup(c)
	if err != nil {
		return err
	}
	defer r.logger.Sync()

	session, err := r.newSession()
	if err != nil {
		return cli.Exit(fmt.Sprintf("creating session failed: %s", err.Error()), BadArgument)
	}

	fmt.Fprint(c.App.Writer, welcome)
	cons := console.New(
		backend.NewMemory(session),
		c.App.Writer,
		console.WithPrompt(r.config.Prompt),
		console.WithExporter(r.exporter),
		console.WithLogger(r.logger),
	)
	err = cons.Run(c.Context, c.App.Reader)
	if err != nil {
		return cli.Exit(fmt.Sprintf("session failed: %s", err.Error()), InternalError)
	}

	return nil
}

func runDisk(c *cli.Context) error {
	r, err := setup(c)
	if err != nil {
		return err
	}
	defer r.logger.Sync()

	disk, err := backend.NewDisk(r.fs, c.String("dir"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("bad directory: %s", err.Error()), BadArgument)
	}

	fmt.Fprint(c.App.Writer, welcome)
	fmt.Fprintf(c.App.Writer, "Changes are applied to the real file system below %s\n", disk.Location())
	cons := console.New(
		disk,
		c.App.Writer,
		console.WithPrompt(r.config.Prompt),
		console.WithLogger(r.logger),
	)
	err = cons.Run(c.Context, c.App.Reader)
	if err != nil {
		return cli.Exit(fmt.Sprintf("session failed: %s", err.Error()), InternalError)
	}

	return nil
}

func readScripts(r *resources, paths []string) ([]console.Script, error) {
	scripts := make([]console.Script, 0, len(paths))
	for _, path := range paths {
		data, err := afero.ReadFile(r.fs, path)
		if err != nil {
			return nil, err
		}
		scripts = append(scripts, console.Script{Name: path, Data: data})
	}

	return scripts, nil
}

// replayScripts prints the transcripts of all scripts and returns the number of scripts that failed.
func replayScripts(c *cli.Context, r *resources, replayer *console.Replayer, scripts []console.Script) (int, error) {
	transcripts, err := replayer.Replay(c.Context, scripts)
	if err != nil {
		return 0, err
	}

	failed := 0
	for _, transcript := range transcripts {
		fmt.Fprintf(c.App.Writer, "== %s ==\n", transcript.Name)
		if transcript.Err != nil {
			failed++
			fmt.Fprintf(c.App.Writer, "Error: %s\n", transcript.Err)
			continue
		}
		fmt.Fprint(c.App.Writer, transcript.Output)
	}
	r.logger.Info("replayed scripts", zap.Int("scripts", len(transcripts)), zap.Int("failed", failed))

	return failed, nil
}

func runScripts(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.Exit("at least one script is required", BadArgument)
	}
	r, err := setup(c)
	if err != nil {
		return err
	}
	defer r.logger.Sync()

	scripts, err := readScripts(r, c.Args().Slice())
	if err != nil {
		return cli.Exit(fmt.Sprintf("reading script failed: %s", err.Error()), BadArgument)
	}

	replayer := console.NewReplayer(
		r.scriptDefaults(),
		c.Int("concurrency"),
		r.logger,
		console.WithPrompt(r.config.Prompt),
		console.WithEcho(),
		console.WithExporter(r.exporter),
	)
	if c.Bool("watch") {
		return watchScripts(c, r, replayer)
	}

	failed, err := replayScripts(c, r, replayer, scripts)
	if err != nil {
		return cli.Exit(fmt.Sprintf("replaying scripts failed: %s", err.Error()), InternalError)
	}
	if failed > 0 {
		return cli.Exit(fmt.Sprintf("%d of %d scripts failed", failed, len(scripts)), InternalError)
	}

	return nil
}

// watchScripts replays the scripts whenever one of them changes, until the context is canceled.
func watchScripts(c *cli.Context, r *resources, replayer *console.Replayer) error {
	watcher := fswatcher.New(r.fs, c.Args().Slice(), c.Duration("check-interval"))
	for result := range watcher.Watch(c.Context) {
		if result.Err != nil {
			return cli.Exit(fmt.Sprintf("watching scripts failed: %s", result.Err.Error()), InternalError)
		}

		r.logger.Info("scripts have changed, replaying")
		scripts, err := readScripts(r, c.Args().Slice())
		if err != nil {
			r.logger.Warn("reading scripts failed", zap.Error(err))
			continue
		}
		_, err = replayScripts(c, r, replayer, scripts)
		if errors.Is(err, context.Canceled) {
			break
		}
		if err != nil {
			return cli.Exit(fmt.Sprintf("replaying scripts failed: %s", err.Error()), InternalError)
		}
	}

	return nil
}

func newApp() *cli.App {
	return &cli.App{
		Name:        "foldersim",
		Usage:       "simulate a file and folder structure in memory",
		Description: "Builds a tree of files and folders from interactive commands or scripts. Flags overwrite config file settings.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "config file to use",
			},
			&cli.StringFlag{
				Name:  "root-name",
				Usage: "name of the root folder",
			},
			&cli.StringFlag{
				Name:  "order",
				Usage: "position of new children, newest-first or oldest-first",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "one of debug, info, warn, error",
			},
			&cli.StringFlag{
				Name:  "export-dir",
				Usage: "folder the export command writes to",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "memory",
				Usage:  "interactive session on an in-memory tree (default)",
				Action: runMemory,
			},
			{
				Name:  "disk",
				Usage: "interactive session on the real file system",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "dir",
						Usage: "folder to start in",
						Value: ".",
					},
				},
				Action: runDisk,
			},
			{
				Name:      "run",
				Usage:     "replay command scripts, each in its own session",
				ArgsUsage: "SCRIPT...",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "concurrency",
						Usage: "number of scripts replayed at once",
						Value: runtime.NumCPU(),
					},
					&cli.BoolFlag{
						Name:  "watch",
						Usage: "replay the scripts again whenever one of them changes",
					},
					&cli.DurationFlag{
						Name:  "check-interval",
						Usage: "time to wait between looking for changes",
						Value: 1 * time.Second,
					},
				},
				Action: runScripts,
			},
		},
		Action: runMemory,
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := newApp().RunContext(ctx, os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
