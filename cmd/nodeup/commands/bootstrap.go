package commands

import (
	"github.com/spf13/cobra"

	"github.com/mkrall/nodeup/cmd/nodeup/handlers"
)

// Bootstrap returns the command that provisions this node.
//
// Required flags:
//
//	--resource-config, -r: Path to the cluster resource-config JSON document
//	--provisioning-parameters, -p: Path to the provisioning parameters JSON document
//
// Optional flags:
//
//	--flags-file, -f: Path to a feature-flags YAML file
//	--scripts-dir, -d: Directory containing the provisioning scripts
//
// Environment variables:
//
//	NODEUP_ROLE: declared node role (controller/login/anything else)
//	NODEUP_NODE_IP: declared routable address of this node
//	SLURM_CONF: workload-manager config path consulted by the readiness gate
//	NODEUP_ROLE_FROM_TOPOLOGY: resolve the role from topology membership
//	NODEUP_WAIT_FOR_SLURM_CONF: pre-check the workload config signal
//	NODEUP_WAIT_FOR_REGISTRATION: pre-check cluster node registration
func Bootstrap() *cobra.Command {
	var opts handlers.BootstrapOptions

	cmd := &cobra.Command{
		Use:   "bootstrap",
		Short: "Provision this node for its cluster role",
		Long: `Provision this node into a working cluster member.

The command loads the cluster topology and provisioning parameters,
resolves this node's role and address, optionally waits for cluster
readiness signals, and then runs the ordered catalog of provisioning
actions. It exits non-zero as soon as any action fails.

Examples:
  # Bootstrap using the documents dropped by the platform
  nodeup bootstrap -r resource_config.json -p provisioning_parameters.json

  # Bootstrap with feature toggles
  nodeup bootstrap -r resource_config.json -p provisioning_parameters.json -f nodeup.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Bootstrap(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ResourceConfigPath, "resource-config", "r", "", "Path to the resource-config JSON document")
	cmd.Flags().StringVarP(&opts.ParametersPath, "provisioning-parameters", "p", "", "Path to the provisioning parameters JSON document")
	cmd.Flags().StringVarP(&opts.FlagsPath, "flags-file", "f", "", "Path to a feature-flags YAML file")
	cmd.Flags().StringVarP(&opts.ScriptsDir, "scripts-dir", "d", ".", "Directory containing the provisioning scripts")
	_ = cmd.MarkFlagRequired("resource-config")
	_ = cmd.MarkFlagRequired("provisioning-parameters")

	return cmd
}
