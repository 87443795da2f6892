package probe

import (
	"context"
	"os/exec"
	"runtime"
	"strconv"
	"time"
)

// PingProber shells out to the operating system's ping tool. Raw ICMP
// sockets need elevated privileges; the system ping binary is setuid (or
// has the capability) everywhere this runs.
type PingProber struct {
	Count   int
	Timeout time.Duration

	// run invokes the ping command; swapped out in tests and replaceable
	// with a raw-socket implementation where privileges allow.
	run func(ctx context.Context, name string, args ...string) error
}

func NewPingProber() *PingProber {
	return &PingProber{
		Count:   2,
		Timeout: 10 * time.Second,
		run: func(ctx context.Context, name string, args ...string) error {
			cmd := exec.CommandContext(ctx, name, args...)
			cmd.Stdout = nil
			cmd.Stderr = nil
			return cmd.Run()
		},
	}
}

// Probe reports success if ping exits zero, i.e. at least one echo reply
// came back within the timeout.
func (p *PingProber) Probe(ctx context.Context, address string) Result {
	cctx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()

	if err := p.run(cctx, "ping", p.args(address)...); err != nil {
		return Result{Method: MethodICMP, Success: false}
	}
	return Result{Method: MethodICMP, Success: true, Detail: "ICMP Ping"}
}

// args builds the platform-specific argument list: Windows takes the
// per-reply wait in milliseconds, unix ping in whole seconds.
func (p *PingProber) args(address string) []string {
	count := strconv.Itoa(p.Count)
	if runtime.GOOS == "windows" {
		return []string{"-n", count, "-w", "3000", address}
	}
	return []string{"-c", count, "-W", "3", address}
}
