package probe

import (
	"context"
	"errors"
	"runtime"
	"slices"
	"testing"
)

func TestPingProber_ExitZeroIsUp(t *testing.T) {
	p := NewPingProber()
	p.run = func(ctx context.Context, name string, args ...string) error {
		return nil
	}
	out := p.Probe(context.Background(), "10.0.0.1")
	if !out.Success {
		t.Fatalf("want success on exit 0, got %+v", out)
	}
	if out.Detail != "ICMP Ping" {
		t.Fatalf("want detail %q, got %q", "ICMP Ping", out.Detail)
	}
}

func TestPingProber_NonZeroExitIsFailure(t *testing.T) {
	p := NewPingProber()
	p.run = func(ctx context.Context, name string, args ...string) error {
		return errors.New("exit status 1")
	}
	out := p.Probe(context.Background(), "10.0.0.1")
	if out.Success {
		t.Fatalf("want failure on non-zero exit, got %+v", out)
	}
}

func TestPingProber_ArgsIncludeAddressAndCount(t *testing.T) {
	p := NewPingProber()
	args := p.args("10.0.0.1")
	if !slices.Contains(args, "10.0.0.1") {
		t.Fatalf("args missing address: %v", args)
	}
	if !slices.Contains(args, "2") {
		t.Fatalf("args missing packet count: %v", args)
	}
	countFlag := "-c"
	if runtime.GOOS == "windows" {
		countFlag = "-n"
	}
	if !slices.Contains(args, countFlag) {
		t.Fatalf("args missing count flag %s: %v", countFlag, args)
	}
}

func TestPingProber_RunReceivesBoundedContext(t *testing.T) {
	p := NewPingProber()
	var gotDeadline bool
	p.run = func(ctx context.Context, name string, args ...string) error {
		_, gotDeadline = ctx.Deadline()
		return nil
	}
	p.Probe(context.Background(), "10.0.0.1")
	if !gotDeadline {
		t.Fatalf("want ping to run under a deadline")
	}
}
