package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/orgball2608/x-media-resolver/internal/download"
	"github.com/orgball2608/x-media-resolver/internal/download/downloadimpl"
	"github.com/orgball2608/x-media-resolver/internal/resolver/resolverimpl"
	"github.com/orgball2608/x-media-resolver/internal/server"
	"github.com/orgball2608/x-media-resolver/internal/twitter/twitterimpl"
	"github.com/orgball2608/x-media-resolver/pkg/config"
	"github.com/orgball2608/x-media-resolver/pkg/errors"
	"github.com/orgball2608/x-media-resolver/pkg/formatter"
	"github.com/orgball2608/x-media-resolver/pkg/logger"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v2"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read configuration: %v\n", err)
		os.Exit(1)
	}

	app := &cli.App{
		Name:  "xdl",
		Usage: "resolve and download media from x.com / twitter.com posts",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log debug output to stderr",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "resolve",
				Usage:     "print the media list of a post as JSON",
				ArgsUsage: "POST_URL",
				Action: func(c *cli.Context) error {
					return resolveCmd(ctx, c, cfg)
				},
			},
			{
				Name:      "download",
				Usage:     "download every media item of a post",
				ArgsUsage: "POST_URL",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "dir",
						Value: cfg.Download.Dir,
						Usage: "save downloaded media to `DIR`",
					},
				},
				Action: func(c *cli.Context) error {
					return downloadCmd(ctx, c, cfg)
				},
			},
		},
		HideHelpCommand: true,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger(c *cli.Context) logger.Logger {
	if c.Bool("verbose") {
		return logger.New(logger.Opts{Env: "development"})
	}
	return logger.New(logger.Opts{Env: "production", Output: io.Discard})
}

func newResolver(cfg *config.Config, log logger.Logger) *resolverimpl.ResolverImpl {
	return resolverimpl.New(resolverimpl.Opts{
		Twitter: twitterimpl.New(twitterimpl.Opts{Config: cfg, Logger: log}),
		Logger:  log,
		Config:  cfg,
	})
}

func resolveCmd(ctx context.Context, c *cli.Context, cfg *config.Config) error {
	if c.NArg() != 1 {
		return cli.Exit("usage: xdl resolve POST_URL", 2)
	}
	log := newLogger(c)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")

	result, err := newResolver(cfg, log).Resolve(ctx, c.Args().First())
	if err != nil {
		_ = enc.Encode(server.ErrorResponse{Error: errors.GetMessage(err)})
		return cli.Exit("", 1)
	}
	return enc.Encode(server.NewResolveResponse(result))
}

func downloadCmd(ctx context.Context, c *cli.Context, cfg *config.Config) error {
	if c.NArg() != 1 {
		return cli.Exit("usage: xdl download [--dir DIR] POST_URL", 2)
	}
	log := newLogger(c)

	result, err := newResolver(cfg, log).Resolve(ctx, c.Args().First())
	if err != nil {
		return cli.Exit(errors.GetMessage(err), 1)
	}
	fmt.Printf("%s (@%s): %d item(s)\n", result.Author, result.Username, len(result.Media))

	client := downloadimpl.New(downloadimpl.Opts{
		Settings: downloadimpl.SettingsFromConfig(cfg),
		Saver:    download.FileSaver{Dir: c.String("dir")},
		Opener:   download.NewBrowserOpener(os.Stderr),
		Logger:   log,
		Progress: func(size int64, filename string) io.Writer {
			return progressbar.DefaultBytes(size, filename)
		},
	})

	for _, asset := range result.Media {
		res := client.Download(ctx, asset.URL, asset.Filename)
		if res.Outcome == download.OutcomeSaved {
			fmt.Printf("%s: saved (%s)\n", asset.Filename, formatter.FormatBytes(res.Size))
			continue
		}
		fmt.Printf("%s: %s\n", asset.Filename, res.Outcome)
	}
	return nil
}
