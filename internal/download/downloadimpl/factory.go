package downloadimpl

import (
	"net/http"

	"github.com/orgball2608/x-media-resolver/internal/download"
	"github.com/orgball2608/x-media-resolver/pkg/config"
	"github.com/orgball2608/x-media-resolver/pkg/logger"
	"go.uber.org/fx"
)

type FactoryOpts struct {
	fx.In

	Config     *config.Config
	Logger     logger.Logger
	HTTPClient *http.Client `optional:"true"`
}

type Factory struct {
	settings   Settings
	logger     logger.Logger
	httpClient *http.Client
}

var _ download.Factory = (*Factory)(nil)

func NewFactory(opts FactoryOpts) *Factory {
	return &Factory{
		settings:   SettingsFromConfig(opts.Config),
		logger:     opts.Logger,
		httpClient: opts.HTTPClient,
	}
}

func (f *Factory) New(saver download.Saver, opener download.Opener) download.Client {
	return New(Opts{
		Settings:   f.settings,
		Saver:      saver,
		Opener:     opener,
		Logger:     f.logger,
		HTTPClient: f.httpClient,
	})
}
