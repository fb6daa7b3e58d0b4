package workload

import (
	"fmt"
	"net/netip"
	"os"

	"gopkg.in/yaml.v3"
)

// ScenarioSpec is the top-level evaluation scenario configuration.
// Loaded from YAML via LoadScenarioSpec(path) or built from CLI flags.
type ScenarioSpec struct {
	Seed    int64 `yaml:"seed"`
	Trials  int   `yaml:"trials"`
	Systems int   `yaml:"systems"`
	Blocks  int   `yaml:"blocks"`

	// PrefixMin and PrefixMax bound the prefix length drawn for each
	// generated block and home prefix, inclusive on both ends.
	PrefixMin int `yaml:"prefix_min"`
	PrefixMax int `yaml:"prefix_max"`

	// BaseNetworks are the networks generated addresses are drawn from.
	BaseNetworks []string `yaml:"base_networks"`
}

// DefaultBaseNetworks are the address pools used when a scenario does not
// name its own: three RFC 1918 ranges plus the TEST-NET-2 documentation range.
var DefaultBaseNetworks = []string{
	"10.0.0.0/16",
	"172.16.0.0/12",
	"192.168.0.0/16",
	"198.51.100.0/24",
}

// DefaultScenarioSpec returns the scenario the original allocation study
// ran: ten trials of ten systems and ten blocks with /22../29 prefixes.
func DefaultScenarioSpec() ScenarioSpec {
	return ScenarioSpec{
		Seed:         42,
		Trials:       10,
		Systems:      10,
		Blocks:       10,
		PrefixMin:    22,
		PrefixMax:    29,
		BaseNetworks: DefaultBaseNetworks,
	}
}

// LoadScenarioSpec reads and validates a ScenarioSpec from a YAML file.
func LoadScenarioSpec(path string) (*ScenarioSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario file: %w", err)
	}
	var spec ScenarioSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parse scenario file %s: %w", path, err)
	}
	if len(spec.BaseNetworks) == 0 {
		spec.BaseNetworks = DefaultBaseNetworks
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("scenario file %s: %w", path, err)
	}
	return &spec, nil
}

// Validate checks the spec for values the generator cannot honor.
func (s *ScenarioSpec) Validate() error {
	if s.Trials <= 0 {
		return fmt.Errorf("trials must be positive, got %d", s.Trials)
	}
	if s.Systems <= 0 {
		return fmt.Errorf("systems must be positive, got %d", s.Systems)
	}
	if s.Blocks <= 0 {
		return fmt.Errorf("blocks must be positive, got %d", s.Blocks)
	}
	if s.PrefixMin < 1 || s.PrefixMax > 30 || s.PrefixMin > s.PrefixMax {
		return fmt.Errorf("prefix range [%d, %d] must satisfy 1 <= min <= max <= 30",
			s.PrefixMin, s.PrefixMax)
	}
	if len(s.BaseNetworks) == 0 {
		return fmt.Errorf("at least one base network required")
	}
	for i, bn := range s.BaseNetworks {
		p, err := netip.ParsePrefix(bn)
		if err != nil {
			return fmt.Errorf("base_networks[%d]: %w", i, err)
		}
		if !p.Addr().Is4() {
			return fmt.Errorf("base_networks[%d]: %s is not IPv4", i, bn)
		}
		if p.Bits() > 30 {
			return fmt.Errorf("base_networks[%d]: %s leaves no host addresses to draw from", i, bn)
		}
	}
	return nil
}
