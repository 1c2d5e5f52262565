package config

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"
)

// WorkloadManagerSlurm is the only workload manager kind that triggers the
// scheduler-specific provisioning steps. Any other value (including empty)
// limits provisioning to filesystem mounts and user accounts.
const WorkloadManagerSlurm = "slurm"

// Parameters is the read-only view over the provisioning parameters document.
// It is loaded once at startup and never mutated.
type Parameters struct {
	WorkloadManager     string         `json:"workload_manager"`
	FsxDNSName          string         `json:"fsx_dns_name"`
	FsxMountName        string         `json:"fsx_mountname"`
	FsxOpenZFSDNSName   string         `json:"fsx_openzfs_dns_name"`
	ControllerGroup     string         `json:"controller_group"`
	LoginGroup          string         `json:"login_group"`
	SlurmConfigurations map[string]any `json:"slurm_configurations"`
}

// LoadParameters reads and parses the provisioning parameters document.
// The document is JSON; sigs.k8s.io/yaml accepts it directly.
func LoadParameters(path string) (*Parameters, error) {
	// #nosec G304 -- path is an operator-supplied CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read provisioning parameters: %w", err)
	}

	var p Parameters
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse provisioning parameters: %w", err)
	}

	return &p, nil
}

// IsSlurm reports whether the cluster uses the supported workload manager.
func (p *Parameters) IsSlurm() bool {
	return p.WorkloadManager == WorkloadManagerSlurm
}

// FsxSettings returns the primary shared-filesystem DNS name and mount name.
func (p *Parameters) FsxSettings() (dnsName, mountName string) {
	return p.FsxDNSName, p.FsxMountName
}

// HasFsx reports whether the primary shared filesystem is fully configured.
// Both the DNS name and the mount name must be present.
func (p *Parameters) HasFsx() bool {
	return p.FsxDNSName != "" && p.FsxMountName != ""
}

// HasOpenZFS reports whether a secondary OpenZFS filesystem is configured.
func (p *Parameters) HasOpenZFS() bool {
	return p.FsxOpenZFSDNSName != ""
}

// HasMultiController reports whether advanced slurm configuration overrides
// are present. When they are, controller nodes run the multi-controller
// setup instead of the single accounting-database setup.
func (p *Parameters) HasMultiController() bool {
	return len(p.SlurmConfigurations) > 0
}
