package runner

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/dileepchowdary-git/geolocation/internal/domain"
)

// Classifier decides UP/DOWN for one address. Satisfied by probe.Classifier.
type Classifier interface {
	Classify(ctx context.Context, address string) (domain.Status, string)
}

// Runner fans the classifier out across all targets with a bounded worker
// pool. Each worker runs one target's full probe chain to completion before
// picking up the next target.
type Runner struct {
	Logger      *zap.Logger
	Classifier  Classifier
	Concurrency int
}

func New(logger *zap.Logger, classifier Classifier, concurrency int) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if concurrency < 1 {
		concurrency = 1
	}
	return &Runner{
		Logger:      logger,
		Classifier:  classifier,
		Concurrency: concurrency,
	}
}

// Run checks every target and delivers one CheckResult per target on the
// returned channel in completion order. The channel closes once all targets
// have been checked. An empty target set yields a closed, empty channel.
func (r *Runner) Run(ctx context.Context, targets []domain.Target) <-chan domain.CheckResult {
	out := make(chan domain.CheckResult, len(targets))
	sem := make(chan struct{}, r.Concurrency)
	var wg sync.WaitGroup

	go func() {
		for _, tgt := range targets {
			t := tgt
			sem <- struct{}{}
			wg.Add(1)
			go func() {
				defer func() { <-sem }()
				defer wg.Done()
				out <- r.checkOne(ctx, t)
			}()
		}
		wg.Wait()
		close(out)
	}()
	return out
}

// RunAll drains Run into a summary. The summary is only built after every
// worker has returned, so its counts are consistent.
func (r *Runner) RunAll(ctx context.Context, targets []domain.Target) domain.RunSummary {
	results := make([]domain.CheckResult, 0, len(targets))
	for res := range r.Run(ctx, targets) {
		results = append(results, res)
	}
	return domain.Summarize(results)
}

// checkOne classifies a single target. A panic anywhere in the probe chain
// is contained here and downgraded to an ERROR result so one bad target
// cannot take down the rest of the run.
func (r *Runner) checkOne(ctx context.Context, t domain.Target) (res domain.CheckResult) {
	defer func() {
		if rec := recover(); rec != nil {
			r.Logger.Warn("target_check_fault",
				zap.String("target", t.Name),
				zap.String("address", t.Address),
				zap.Any("panic", rec),
			)
			res = domain.CheckResult{
				Target:    t,
				Status:    domain.StatusError,
				Method:    fmt.Sprint(rec),
				CheckedAt: time.Now().UTC(),
			}
		}
	}()

	status, method := r.Classifier.Classify(ctx, t.Address)
	res = domain.CheckResult{
		Target:    t,
		Status:    status,
		Method:    method,
		CheckedAt: time.Now().UTC(),
	}
	r.Logger.Info("target_checked",
		zap.String("target", t.Name),
		zap.String("address", t.Address),
		zap.String("status", string(status)),
		zap.String("method", method),
	)
	return res
}
