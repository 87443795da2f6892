package notify

import (
	"context"

	"go.uber.org/multierr"

	"github.com/dileepchowdary-git/geolocation/internal/domain"
)

// Notifier delivers monitoring notifications. Implementations own the
// payload shape; callers only decide when to send.
type Notifier interface {
	// Alert announces a single non-UP target.
	Alert(ctx context.Context, r domain.CheckResult) error
	// Summary announces the aggregate outcome of a full run.
	Summary(ctx context.Context, s domain.RunSummary) error
}

// Multi fans a notification out to several sinks. Every sink is attempted;
// the combined error carries whichever sends failed.
type Multi []Notifier

func (m Multi) Alert(ctx context.Context, r domain.CheckResult) error {
	var err error
	for _, n := range m {
		if n == nil {
			continue
		}
		err = multierr.Append(err, n.Alert(ctx, r))
	}
	return err
}

func (m Multi) Summary(ctx context.Context, s domain.RunSummary) error {
	var err error
	for _, n := range m {
		if n == nil {
			continue
		}
		err = multierr.Append(err, n.Summary(ctx, s))
	}
	return err
}
