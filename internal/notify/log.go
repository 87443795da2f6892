package notify

import (
	"context"

	"go.uber.org/zap"

	"github.com/dileepchowdary-git/geolocation/internal/domain"
)

// Log mirrors every notification into the structured log, so alert history
// survives webhook outages.
type Log struct {
	logger *zap.Logger
}

func NewLog(logger *zap.Logger) *Log {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Log{logger: logger}
}

func (l *Log) Alert(ctx context.Context, r domain.CheckResult) error {
	l.logger.Warn("target_alert",
		zap.String("target", r.Target.Name),
		zap.String("address", r.Target.Address),
		zap.String("status", string(r.Status)),
		zap.String("method", r.Method),
		zap.Time("checked_at", r.CheckedAt),
	)
	return nil
}

func (l *Log) Summary(ctx context.Context, s domain.RunSummary) error {
	l.logger.Warn("run_summary",
		zap.Int("down", s.DownCount),
		zap.Int("total", s.Total),
	)
	return nil
}
