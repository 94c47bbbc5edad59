package app

import (
	"context"
	"time"

	"github.com/orgball2608/x-media-resolver/internal/command"
	"github.com/orgball2608/x-media-resolver/internal/command/commandimpl"
	"github.com/orgball2608/x-media-resolver/internal/download"
	"github.com/orgball2608/x-media-resolver/internal/download/downloadimpl"
	"github.com/orgball2608/x-media-resolver/internal/probe"
	"github.com/orgball2608/x-media-resolver/internal/resolver"
	"github.com/orgball2608/x-media-resolver/internal/resolver/resolverimpl"
	"github.com/orgball2608/x-media-resolver/internal/server"
	"github.com/orgball2608/x-media-resolver/internal/telegram"
	"github.com/orgball2608/x-media-resolver/internal/telegram/telegramimpl"
	"github.com/orgball2608/x-media-resolver/internal/twitter"
	"github.com/orgball2608/x-media-resolver/internal/twitter/twitterimpl"
	"github.com/orgball2608/x-media-resolver/pkg/config"
	"github.com/orgball2608/x-media-resolver/pkg/logger"
	"go.uber.org/fx"
)

const chatRestartDelay = 5 * time.Second

var Module = fx.Options(
	fx.Provide(
		config.New,
		logger.FxOption,
	),
	fx.Provide(
		fx.Annotate(
			twitterimpl.New,
			fx.As(new(twitter.Client)),
		), fx.Annotate(
			resolverimpl.New,
			fx.As(new(resolver.Client)),
		), fx.Annotate(
			downloadimpl.NewFactory,
			fx.As(new(download.Factory)),
		), fx.Annotate(
			probe.New,
			fx.As(new(probe.Status)),
		),
		server.New,
	),
	fx.Invoke(func(*server.Server) {}),
)

// ChatModule adds the Telegram front-end when it is enabled.
func ChatModule(cfg *config.Config) fx.Option {
	if !cfg.Telegram.Enabled {
		return fx.Options()
	}
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				telegramimpl.New,
				fx.As(new(telegram.Client)),
			),
			fx.Annotate(
				commandimpl.New,
				fx.As(new(command.Client)),
			),
		),
		fx.Invoke(runChat),
	)
}

func runChat(lc fx.Lifecycle, log logger.Logger, cmdClient command.Client) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(done)
				for {
					err := cmdClient.HandleCommand(ctx)
					if ctx.Err() != nil {
						return
					}
					log.Error("Command handler stopped, restarting", "error", err)

					select {
					case <-ctx.Done():
						return
					case <-time.After(chatRestartDelay):
					}
				}
			}()
			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}
			return nil
		},
	})
}
