package probe

import "context"

// Method identifies a liveness-detection technique.
type Method string

const (
	MethodPort Method = "PORT"
	MethodHTTP Method = "HTTP"
	MethodICMP Method = "ICMP"
)

// Result holds the outcome of a single probe attempt. A probe that cannot
// reach the host reports Success=false; probes never return errors.
type Result struct {
	Method  Method `json:"method"`
	Success bool   `json:"success"`
	Detail  string `json:"detail,omitempty"`
}

// Prober attempts one liveness-detection technique against an address
// (hostname or IP, no scheme).
type Prober interface {
	Probe(ctx context.Context, address string) Result
}
