package config

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/dileepchowdary-git/geolocation/internal/domain"
)

// targetsFile is the on-disk shape: a name->address map plus an optional
// ordered port list for the port probe.
type targetsFile struct {
	Targets map[string]string `json:"targets"`
	Ports   []int             `json:"ports,omitempty"`
}

// LoadTargets reads the static target list. Targets come back sorted by
// name so submission order is stable across runs; an empty target map is a
// configuration fault.
func LoadTargets(path string) ([]domain.Target, []int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read targets file: %w", err)
	}
	var tf targetsFile
	if err := json.Unmarshal(raw, &tf); err != nil {
		return nil, nil, fmt.Errorf("parse targets file: %w", err)
	}
	if len(tf.Targets) == 0 {
		return nil, nil, fmt.Errorf("targets file %s lists no targets", path)
	}

	out := make([]domain.Target, 0, len(tf.Targets))
	for name, addr := range tf.Targets {
		if addr == "" {
			return nil, nil, fmt.Errorf("target %q has an empty address", name)
		}
		out = append(out, domain.Target{Name: name, Address: addr})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, tf.Ports, nil
}
