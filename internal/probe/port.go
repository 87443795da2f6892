package probe

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"
)

// DefaultPorts is the ordered set of well-known ports tried by the port
// probe. SSH and HTTP first since they answer fastest on typical servers.
var DefaultPorts = []int{22, 80, 443, 3389, 8080, 3000, 8000}

type PortProber struct {
	Ports       []int
	DialTimeout time.Duration
}

func NewPortProber(ports []int) *PortProber {
	if len(ports) == 0 {
		ports = DefaultPorts
	}
	return &PortProber{
		Ports:       ports,
		DialTimeout: 2 * time.Second,
	}
}

// Probe dials each candidate port in order and reports the first one that
// accepts a connection. Refused, timed out and unreachable all count the
// same: the port is not open.
func (p *PortProber) Probe(ctx context.Context, address string) Result {
	for _, port := range p.Ports {
		if ctx.Err() != nil {
			return Result{Method: MethodPort, Success: false}
		}
		conn, err := net.DialTimeout("tcp", net.JoinHostPort(address, strconv.Itoa(port)), p.DialTimeout)
		if err != nil {
			continue
		}
		_ = conn.Close()
		return Result{
			Method:  MethodPort,
			Success: true,
			Detail:  fmt.Sprintf("TCP Port %d", port),
		}
	}
	return Result{Method: MethodPort, Success: false}
}
