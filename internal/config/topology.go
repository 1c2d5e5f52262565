package config

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"
)

// Instance is a single node within an instance group.
type Instance struct {
	InstanceName      string `json:"InstanceName"`
	CustomerIPAddress string `json:"CustomerIpAddress"`
}

// InstanceGroup is a named set of instances sharing one cluster role.
type InstanceGroup struct {
	Name      string     `json:"Name"`
	Instances []Instance `json:"Instances"`
}

// Topology is the read-only view over the cluster resource-config document.
// Group order is preserved from the document.
type Topology struct {
	InstanceGroups []InstanceGroup `json:"InstanceGroups"`
}

// LoadTopology reads, parses, and validates the resource-config document.
func LoadTopology(path string) (*Topology, error) {
	// #nosec G304 -- path is an operator-supplied CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resource config: %w", err)
	}

	var t Topology
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse resource config: %w", err)
	}

	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("resource config validation failed: %w", err)
	}

	return &t, nil
}

// Validate checks the topology invariants: group names are unique across the
// document and addresses are unique within each group.
func (t *Topology) Validate() error {
	groups := make(map[string]struct{}, len(t.InstanceGroups))
	for _, g := range t.InstanceGroups {
		if _, dup := groups[g.Name]; dup {
			return fmt.Errorf("duplicate instance group %q", g.Name)
		}
		groups[g.Name] = struct{}{}

		addrs := make(map[string]struct{}, len(g.Instances))
		for _, inst := range g.Instances {
			if inst.CustomerIPAddress == "" {
				continue
			}
			if _, dup := addrs[inst.CustomerIPAddress]; dup {
				return fmt.Errorf("duplicate address %s in group %q", inst.CustomerIPAddress, g.Name)
			}
			addrs[inst.CustomerIPAddress] = struct{}{}
		}
	}
	return nil
}

// AddressesOf returns the addresses of every instance in the named group,
// in document order. An unknown group name yields an empty list.
func (t *Topology) AddressesOf(group string) []string {
	for _, g := range t.InstanceGroups {
		if g.Name != group {
			continue
		}
		addrs := make([]string, 0, len(g.Instances))
		for _, inst := range g.Instances {
			addrs = append(addrs, inst.CustomerIPAddress)
		}
		return addrs
	}
	return nil
}

// FindInstanceByAddress locates the group and instance owning the given
// address. ok is false when no instance matches.
func (t *Topology) FindInstanceByAddress(addr string) (group InstanceGroup, inst Instance, ok bool) {
	for _, g := range t.InstanceGroups {
		for _, i := range g.Instances {
			if i.CustomerIPAddress == addr {
				return g, i, true
			}
		}
	}
	return InstanceGroup{}, Instance{}, false
}
