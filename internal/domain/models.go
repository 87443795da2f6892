package domain

import "time"

// Status is the outcome of one target's liveness classification.
type Status string

const (
	StatusUp    Status = "UP"
	StatusDown  Status = "DOWN"
	StatusError Status = "ERROR"
)

// Target is a named host to health-check. Identity is the name.
type Target struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// CheckResult is produced once per target per run and never mutated after.
// Method carries the probe that succeeded ("TCP Port 22", "HTTP http:80",
// "ICMP Ping"), "All checks failed" for DOWN, or the fault message for ERROR.
type CheckResult struct {
	Target    Target    `json:"target"`
	Status    Status    `json:"status"`
	Method    string    `json:"method"`
	CheckedAt time.Time `json:"checked_at"`
}

// RunSummary aggregates one full pass over the target set.
type RunSummary struct {
	Results   []CheckResult `json:"results"`
	DownCount int           `json:"down_count"`
	Total     int           `json:"total"`
}

// Summarize builds a RunSummary from collected results. Anything that is
// not UP (DOWN and ERROR alike) counts toward DownCount.
func Summarize(results []CheckResult) RunSummary {
	s := RunSummary{Results: results, Total: len(results)}
	for _, r := range results {
		if r.Status != StatusUp {
			s.DownCount++
		}
	}
	return s
}

// Down returns the non-UP results in collection order.
func (s RunSummary) Down() []CheckResult {
	out := make([]CheckResult, 0, s.DownCount)
	for _, r := range s.Results {
		if r.Status != StatusUp {
			out = append(out, r)
		}
	}
	return out
}
