package config

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Flags holds the feature toggles that gate optional provisioning steps.
// Defaults match the stock lifecycle configuration; an optional YAML file
// overrides individual toggles.
type Flags struct {
	// EnableFsxOpenZFS mounts the secondary OpenZFS filesystem at /home
	// when its DNS name is present in the parameters document.
	EnableFsxOpenZFS bool `mapstructure:"enable_fsx_openzfs" yaml:"enable_fsx_openzfs"`

	// EnableObservability installs metric exporters on compute nodes and
	// the exporter/collector stack on the controller.
	EnableObservability bool `mapstructure:"enable_observability" yaml:"enable_observability"`

	// EnableDockerEnrootPyxis performs container runtime integration.
	EnableDockerEnrootPyxis bool `mapstructure:"enable_docker_enroot_pyxis" yaml:"enable_docker_enroot_pyxis"`

	// EnableUpdateNeuronSDK updates the accelerator SDK on compute nodes.
	EnableUpdateNeuronSDK bool `mapstructure:"enable_update_neuron_sdk" yaml:"enable_update_neuron_sdk"`

	// EnableSSSD runs directory-service (ActiveDirectory/LDAP) integration.
	EnableSSSD bool `mapstructure:"enable_sssd" yaml:"enable_sssd"`

	// EnablePamSlurmAdopt applies the PAM session-adoption configuration.
	EnablePamSlurmAdopt bool `mapstructure:"enable_pam_slurm_adopt" yaml:"enable_pam_slurm_adopt"`

	// EnableMountS3 mounts the configured bucket via the mount helper.
	EnableMountS3 bool `mapstructure:"enable_mount_s3" yaml:"enable_mount_s3"`

	// S3Bucket is the bucket mounted when EnableMountS3 is set.
	S3Bucket string `mapstructure:"s3_bucket" yaml:"s3_bucket"`
}

// DefaultFlags returns the stock toggle set: container runtime integration
// is on (it is a documented no-op on pre-provisioned images), everything
// else is off.
func DefaultFlags() Flags {
	return Flags{
		EnableDockerEnrootPyxis: true,
	}
}

// LoadFlags reads the optional feature-flags file. An empty path returns
// the defaults unchanged.
func LoadFlags(path string) (Flags, error) {
	flags := DefaultFlags()
	if path == "" {
		return flags, nil
	}

	// #nosec G304 -- path is an operator-supplied CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		return flags, fmt.Errorf("failed to read flags file: %w", err)
	}

	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return flags, fmt.Errorf("failed to unmarshal flags file: %w", err)
	}

	if err := mapstructure.Decode(raw, &flags); err != nil {
		return flags, fmt.Errorf("failed to decode flags file: %w", err)
	}

	if err := flags.Validate(); err != nil {
		return flags, fmt.Errorf("flags validation failed: %w", err)
	}

	return flags, nil
}

// Validate rejects toggle combinations that cannot be honored.
func (f Flags) Validate() error {
	if f.EnableMountS3 && f.S3Bucket == "" {
		return fmt.Errorf("enable_mount_s3 requires s3_bucket")
	}
	return nil
}
