package probe

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/orgball2608/x-media-resolver/pkg/config"
	"github.com/orgball2608/x-media-resolver/pkg/logger"
	"go.uber.org/fx"
)

type State string

const (
	StateUnknown     State = "unknown"
	StateReachable   State = "reachable"
	StateUnreachable State = "unreachable"
)

// Status is the read side used by the health endpoint.
type Status interface {
	Upstream() (State, time.Time)
}

type Opts struct {
	fx.In

	LC         fx.Lifecycle
	Config     *config.Config
	Logger     logger.Logger
	HTTPClient *http.Client `optional:"true"`
}

// Probe periodically checks that the metadata provider answers at all. It
// only feeds /healthz and never gates resolution.
type Probe struct {
	target     string
	interval   time.Duration
	httpClient *http.Client
	logger     logger.Logger

	mu        sync.RWMutex
	state     State
	checkedAt time.Time
}

var _ Status = (*Probe)(nil)

func New(opts Opts) (*Probe, error) {
	p := newProbe(opts.Config, opts.Logger, opts.HTTPClient)
	if p.interval <= 0 {
		p.logger.Info("Upstream probe disabled")
		return p, nil
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create probe scheduler: %w", err)
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(p.interval),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			p.Check(ctx)
		}),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to schedule upstream probe: %w", err)
	}

	opts.LC.Append(fx.Hook{
		OnStart: func(context.Context) error {
			scheduler.Start()
			p.logger.Info("Upstream probe scheduled", "every", p.interval.String())
			return nil
		},
		OnStop: func(context.Context) error {
			return scheduler.Shutdown()
		},
	})

	return p, nil
}

func newProbe(cfg *config.Config, log logger.Logger, httpClient *http.Client) *Probe {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Probe{
		target:     cfg.Upstream.BaseURL,
		interval:   time.Duration(cfg.Upstream.ProbeMinutes) * time.Minute,
		httpClient: httpClient,
		logger:     log.WithComponent("UpstreamProbe"),
		state:      StateUnknown,
	}
}

// Check issues one request to the provider's base URL. Any HTTP answer,
// including 404, counts as reachable.
func (p *Probe) Check(ctx context.Context) State {
	state := StateReachable

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, p.target, http.NoBody)
	if err == nil {
		var resp *http.Response
		resp, err = p.httpClient.Do(req)
		if err == nil {
			resp.Body.Close()
		}
	}
	if err != nil {
		state = StateUnreachable
		p.logger.Warn("Metadata provider unreachable", "target", p.target, "error", err)
	}

	p.mu.Lock()
	p.state = state
	p.checkedAt = time.Now()
	p.mu.Unlock()

	return state
}

func (p *Probe) Upstream() (State, time.Time) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state, p.checkedAt
}
