package alert

import (
	"context"

	"go.uber.org/zap"

	"github.com/dileepchowdary-git/geolocation/internal/domain"
	"github.com/dileepchowdary-git/geolocation/internal/notify"
)

type DispatcherConfig struct {
	// SummaryThreshold is the minimum down/error count that triggers the
	// end-of-run summary. Zero means the default of 1.
	SummaryThreshold int
}

// Dispatcher decides which notifications a run produces. Delivery is
// fire-and-forget: a failed send is logged and never affects the run or
// the remaining alerts.
type Dispatcher struct {
	logger   *zap.Logger
	notifier notify.Notifier
	cfg      DispatcherConfig
}

func NewDispatcher(logger *zap.Logger, notifier notify.Notifier, cfg DispatcherConfig) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.SummaryThreshold < 1 {
		cfg.SummaryThreshold = 1
	}
	return &Dispatcher{
		logger:   logger,
		notifier: notifier,
		cfg:      cfg,
	}
}

// Dispatch sends the per-target alert for a non-UP result. UP results are
// ignored.
func (d *Dispatcher) Dispatch(ctx context.Context, r domain.CheckResult) {
	if r.Status == domain.StatusUp || d.notifier == nil {
		return
	}
	if err := d.notifier.Alert(ctx, r); err != nil {
		d.logger.Warn("alert_send_failed",
			zap.String("target", r.Target.Name),
			zap.String("status", string(r.Status)),
			zap.Error(err),
		)
		return
	}
	d.logger.Info("alert_sent",
		zap.String("target", r.Target.Name),
		zap.String("status", string(r.Status)),
	)
}

// Summarize sends the aggregate report once the down count reaches the
// configured threshold.
func (d *Dispatcher) Summarize(ctx context.Context, s domain.RunSummary) {
	if s.DownCount < d.cfg.SummaryThreshold || d.notifier == nil {
		return
	}
	if err := d.notifier.Summary(ctx, s); err != nil {
		d.logger.Warn("summary_send_failed",
			zap.Int("down", s.DownCount),
			zap.Int("total", s.Total),
			zap.Error(err),
		)
		return
	}
	d.logger.Info("summary_sent",
		zap.Int("down", s.DownCount),
		zap.Int("total", s.Total),
	)
}
