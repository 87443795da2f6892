package main

import (
	"context"
	"fmt"
	"log"

	"go.uber.org/zap"

	"github.com/dileepchowdary-git/geolocation/internal/alert"
	"github.com/dileepchowdary-git/geolocation/internal/config"
	"github.com/dileepchowdary-git/geolocation/internal/domain"
	"github.com/dileepchowdary-git/geolocation/internal/logging"
	"github.com/dileepchowdary-git/geolocation/internal/notify"
	"github.com/dileepchowdary-git/geolocation/internal/probe"
	"github.com/dileepchowdary-git/geolocation/internal/runner"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatal(err)
	}
	if err := cfg.ValidateMonitor(); err != nil {
		log.Fatal(err)
	}

	logger, err := logging.NewLogger(cfg.LogDir, "monitor")
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	targets, ports, err := config.LoadTargets(cfg.TargetsFile)
	if err != nil {
		logger.Error("targets_load_failed", zap.Error(err))
		log.Fatal(err)
	}

	sinks := notify.Multi{notify.NewSlack(cfg.SlackWebhookURL), notify.NewLog(logger)}
	dispatcher := alert.NewDispatcher(logger, sinks, alert.DispatcherConfig{
		SummaryThreshold: cfg.SummaryThreshold,
	})
	run := runner.New(logger, probe.NewDefaultClassifier(ports), cfg.Concurrency)

	logger.Info("monitor_start",
		zap.Int("targets", len(targets)),
		zap.Int("concurrency", cfg.Concurrency),
	)
	fmt.Printf("Checking %d servers (TCP ports + HTTP + ping)...\n", len(targets))

	ctx := context.Background()
	results := make([]domain.CheckResult, 0, len(targets))
	for res := range run.Run(ctx, targets) {
		mark := "✅"
		if res.Status != domain.StatusUp {
			mark = "❌"
		}
		fmt.Printf("  %s %s (%s): %s (%s)\n", mark, res.Target.Name, res.Target.Address, res.Status, res.Method)
		dispatcher.Dispatch(ctx, res)
		results = append(results, res)
	}

	sum := domain.Summarize(results)
	dispatcher.Summarize(ctx, sum)

	fmt.Printf("\nServers UP: %d/%d\n", sum.Total-sum.DownCount, sum.Total)
	if sum.DownCount > 0 {
		fmt.Printf("Servers DOWN/ERROR: %d/%d\n", sum.DownCount, sum.Total)
		for _, r := range sum.Down() {
			fmt.Printf("  - %s (%s) - %s\n", r.Target.Name, r.Target.Address, r.Status)
		}
	} else {
		fmt.Println("All servers are operational.")
	}
	logger.Info("monitor_done",
		zap.Int("total", sum.Total),
		zap.Int("down", sum.DownCount),
	)
}
