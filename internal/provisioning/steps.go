package provisioning

import (
	"fmt"
	"strings"

	"github.com/mkrall/nodeup/internal/role"
)

// FsxMountPoint is where the primary shared filesystem is mounted.
const FsxMountPoint = "/fsx"

// OpenZFSMountPoint is where the secondary OpenZFS filesystem is mounted.
const OpenZFSMountPoint = "/home"

// Step is one conditional entry in the bootstrap catalog.
type Step struct {
	// ID names the step in logs, metrics, and errors.
	ID string

	// When gates the step. A false result is a normal no-op.
	When func(*Context) bool

	// Run resolves the step's arguments from the context and invokes it.
	Run func(*Context) error
}

// predicate helpers shared across catalog entries

func isSlurm(c *Context) bool { return c.Params.IsSlurm() }

func observability(c *Context) bool { return c.Flags.EnableObservability }

func isController(c *Context) bool { return c.Role == role.Controller }

func isCompute(c *Context) bool { return c.Role == role.Compute }

func anySharedFs(c *Context) bool {
	return c.Params.HasFsx() || (c.Flags.EnableFsxOpenZFS && c.Params.HasOpenZFS())
}

func and(preds ...func(*Context) bool) func(*Context) bool {
	return func(c *Context) bool {
		for _, p := range preds {
			if !p(c) {
				return false
			}
		}
		return true
	}
}

// script returns a Run function invoking one fixed script with fixed args.
func script(name string, args ...string) func(*Context) error {
	return func(c *Context) error {
		return c.Runner.Run(c, name, args...)
	}
}

// Catalog returns the fixed, ordered step sequence of a bootstrap run.
// The order is load-bearing: filesystem mounts precede the workload-manager
// start, and controller accounting setup precedes the hotfix and the
// service start.
func Catalog() []Step {
	return []Step{
		{
			ID:   "mount-fsx",
			When: func(c *Context) bool { return c.Params.HasFsx() },
			Run: func(c *Context) error {
				dns, mount := c.Params.FsxSettings()
				c.Observer.Printf("Mount fsx: %s. Mount point: %s", dns, mount)
				return c.Runner.Run(c, "./mount_fsx.sh", dns, mount, FsxMountPoint)
			},
		},
		{
			ID: "mount-fsx-openzfs",
			When: func(c *Context) bool {
				return c.Flags.EnableFsxOpenZFS && c.Params.HasOpenZFS()
			},
			Run: func(c *Context) error {
				c.Observer.Printf("Mount FSx OpenZFS: %s. Mount point: %s", c.Params.FsxOpenZFSDNSName, OpenZFSMountPoint)
				return c.Runner.Run(c, "./mount_fsx_openzfs.sh", c.Params.FsxOpenZFSDNSName, OpenZFSMountPoint)
			},
		},
		{
			ID:   "add-users",
			When: func(*Context) bool { return true },
			Run:  script("./add_users.sh"),
		},
		{
			ID:   "controller-accounting",
			When: and(isSlurm, isController),
			Run: func(c *Context) error {
				if c.Params.HasMultiController() {
					return c.Runner.Run(c, "./multi_headnode_setup/headnode_setup.sh")
				}
				return c.Runner.Run(c, "./setup_mariadb_accounting.sh")
			},
		},
		{
			ID:   "apply-hotfix",
			When: isSlurm,
			Run: func(c *Context) error {
				return c.Runner.Run(c, "./apply_hotfix.sh", c.Role.String())
			},
		},
		{
			ID:   "motd",
			When: isSlurm,
			Run: func(c *Context) error {
				return c.Runner.Run(c, "./utils/motd.sh", c.Role.String(),
					strings.Join(c.Controllers(), ","), strings.Join(c.Logins(), ","))
			},
		},
		{
			ID:   "home-dir-ownership",
			When: and(isSlurm, anySharedFs),
			Run: func(c *Context) error {
				// The argument tells the script whether /home lives on the
				// OpenZFS filesystem instead of the primary one.
				arg := "0"
				if c.Flags.EnableFsxOpenZFS && c.Params.HasOpenZFS() {
					arg = "1"
				}
				return c.Runner.Run(c, "./utils/fsx_ubuntu.sh", arg)
			},
		},
		{
			ID:   "start-workload-manager",
			When: isSlurm,
			Run: func(c *Context) error {
				return c.Runner.Run(c, "./start_slurm.sh", c.Role.String(),
					strings.Join(c.Controllers(), ","))
			},
		},
		{
			ID:   "gen-keypair",
			When: isSlurm,
			Run:  script("./utils/gen-keypair-ubuntu.sh"),
		},
		{
			ID:   "ssh-to-compute",
			When: isSlurm,
			Run:  script("./utils/ssh-to-compute.sh"),
		},
		{
			ID:   "install-dcgm-exporter",
			When: and(isSlurm, observability, isCompute),
			Run:  script("./utils/install_dcgm_exporter.sh"),
		},
		{
			ID:   "install-efa-node-exporter",
			When: and(isSlurm, observability, isCompute),
			Run:  script("./utils/install_efa_node_exporter.sh"),
		},
		{
			ID:   "install-slurm-exporter",
			When: and(isSlurm, observability, isController),
			Run:  script("./utils/install_slurm_exporter.sh"),
		},
		{
			ID:   "install-head-node-exporter",
			When: and(isSlurm, observability, isController),
			Run:  script("./utils/install_head_node_exporter.sh"),
		},
		{
			ID:   "install-prometheus",
			When: and(isSlurm, observability, isController),
			Run:  script("./utils/install_prometheus.sh"),
		},
		{
			ID: "container-runtime",
			When: func(c *Context) bool {
				return c.Params.IsSlurm() && c.Flags.EnableDockerEnrootPyxis
			},
			Run: func(c *Context) error {
				// Runtime integration is provisioned by an earlier image
				// stage; the step exists to keep the toggle observable.
				c.Observer.Printf("Container runtime already provisioned, skipping install")
				return nil
			},
		},
		{
			ID: "update-neuron-sdk",
			When: func(c *Context) bool {
				return c.Params.IsSlurm() && c.Flags.EnableUpdateNeuronSDK && c.Role == role.Compute
			},
			Run: script("./utils/update_neuron_sdk.sh"),
		},
		{
			ID: "directory-service",
			When: func(c *Context) bool {
				return c.Params.IsSlurm() && c.Flags.EnableSSSD
			},
			Run: func(c *Context) error {
				return c.Runner.Run(c, "./setup_sssd.sh", "--node-type", c.Role.String())
			},
		},
		{
			ID: "pam-fix-plugstack",
			When: func(c *Context) bool {
				return c.Params.IsSlurm() && c.Flags.EnablePamSlurmAdopt
			},
			Run: script("./utils/slurm_fix_plugstackconf.sh"),
		},
		{
			ID: "pam-adopt-cgroup",
			When: func(c *Context) bool {
				return c.Params.IsSlurm() && c.Flags.EnablePamSlurmAdopt
			},
			Run: script("./utils/pam_adopt_cgroup_wheel.sh"),
		},
		{
			ID: "mount-s3",
			When: func(c *Context) bool {
				return c.Params.IsSlurm() && c.Flags.EnableMountS3
			},
			Run: func(c *Context) error {
				if c.Bucket != nil {
					ok, err := c.Bucket.BucketAccessible(c, c.Flags.S3Bucket)
					if err != nil {
						return fmt.Errorf("bucket preflight failed: %w", err)
					}
					if !ok {
						return fmt.Errorf("bucket %s does not exist or is not accessible", c.Flags.S3Bucket)
					}
				}
				return c.Runner.Run(c, "./utils/mount-s3.sh", c.Flags.S3Bucket)
			},
		},
	}
}
