package commands

import (
	"github.com/spf13/cobra"

	"github.com/mkrall/nodeup/cmd/nodeup/handlers"
)

// Keypair returns the command that generates an SSH keypair.
//
// Optional flags:
//
//	--output, -o: directory receiving id_rsa and id_rsa.pub (default ~/.ssh)
//	--bits, -b: RSA key size
func Keypair() *cobra.Command {
	var opts handlers.KeypairOptions

	cmd := &cobra.Command{
		Use:   "keypair",
		Short: "Generate an SSH keypair for cluster users",
		Long: `Generate an RSA SSH keypair.

This is the native counterpart of the keypair provisioning action, for
operators who want to pre-generate credentials outside a bootstrap run.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return handlers.Keypair(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.OutputDir, "output", "o", "", "Directory receiving id_rsa and id_rsa.pub (default ~/.ssh)")
	cmd.Flags().IntVarP(&opts.Bits, "bits", "b", 0, "RSA key size (default 4096)")

	return cmd
}
