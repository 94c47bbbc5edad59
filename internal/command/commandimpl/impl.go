package commandimpl

import (
	"github.com/orgball2608/x-media-resolver/internal/command"
	"github.com/orgball2608/x-media-resolver/internal/download"
	"github.com/orgball2608/x-media-resolver/internal/resolver"
	"github.com/orgball2608/x-media-resolver/internal/telegram"
	"github.com/orgball2608/x-media-resolver/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Resolver  resolver.Client
	Telegram  telegram.Client
	Downloads download.Factory
	Logger    logger.Logger
}

type CommandImpl struct {
	Resolver  resolver.Client
	Telegram  telegram.Client
	Downloads download.Factory
	Logger    logger.Logger
}

func New(opts Opts) *CommandImpl {
	return &CommandImpl{
		Resolver:  opts.Resolver,
		Telegram:  opts.Telegram,
		Downloads: opts.Downloads,
		Logger:    opts.Logger.WithComponent("Command"),
	}
}

var _ command.Client = (*CommandImpl)(nil)
