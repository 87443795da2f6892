// cmd/preflight/main.go
package main

import (
	"fmt"
	"os"
	"strings"
)

func main() {
	fail := func(msg string) {
		fmt.Fprintln(os.Stderr, "✖", msg)
		os.Exit(1)
	}
	warn := func(msg string) { fmt.Fprintln(os.Stderr, "⚠", msg) }
	ok := func(msg string) { fmt.Println("✔", msg) }

	webhook := strings.TrimSpace(os.Getenv("SLACK_WEBHOOK_URL"))
	targets := strings.TrimSpace(os.Getenv("TARGETS_FILE"))
	db := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	apiKey := strings.TrimSpace(os.Getenv("GOOGLE_API_KEY"))

	if webhook == "" {
		fail("SLACK_WEBHOOK_URL is empty (monitor alerts cannot be delivered).")
	}
	if !strings.HasPrefix(webhook, "https://") {
		warn("SLACK_WEBHOOK_URL does not look like an https webhook URL.")
	} else {
		ok("SLACK_WEBHOOK_URL present")
	}

	if targets == "" {
		warn("TARGETS_FILE empty — monitor falls back to targets.json in the working directory.")
		targets = "targets.json"
	}
	if _, err := os.Stat(targets); err != nil {
		fail("targets file not readable: " + targets)
	}
	ok("targets file " + targets)

	if db == "" {
		warn("DATABASE_URL empty — the geocode batch will refuse to start.")
	} else {
		ok("DATABASE_URL present")
	}

	if apiKey == "" {
		warn("GOOGLE_API_KEY empty — the geocode batch will refuse to start.")
	} else {
		ok("GOOGLE_API_KEY present")
	}

	ok("preflight passed")
}
