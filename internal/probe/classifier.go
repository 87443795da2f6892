package probe

import (
	"context"

	"github.com/dileepchowdary-git/geolocation/internal/domain"
)

// AllChecksFailed is the method string reported when no probe succeeds.
const AllChecksFailed = "All checks failed"

// Classifier applies probes in a fixed priority order and short-circuits on
// the first success. The order is a design decision, not configuration:
// a TCP connect is the cheapest signal, HTTP is the strongest one for app
// servers, and ICMP comes last because many networks filter it.
type Classifier struct {
	Probers []Prober
}

func NewClassifier(probers ...Prober) *Classifier {
	return &Classifier{Probers: probers}
}

// NewDefaultClassifier wires the standard port -> HTTP -> ping chain.
func NewDefaultClassifier(ports []int) *Classifier {
	return NewClassifier(NewPortProber(ports), NewHTTPProber(), NewPingProber())
}

// Classify runs the probes in order against one address. It returns UP with
// the successful probe's detail, or DOWN with AllChecksFailed.
func (c *Classifier) Classify(ctx context.Context, address string) (domain.Status, string) {
	for _, p := range c.Probers {
		if r := p.Probe(ctx, address); r.Success {
			return domain.StatusUp, r.Detail
		}
	}
	return domain.StatusDown, AllChecksFailed
}
