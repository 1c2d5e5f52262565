package handlers

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mkrall/nodeup/internal/keygen"
)

// KeypairOptions carries the CLI inputs of the keypair command.
type KeypairOptions struct {
	// OutputDir receives id_rsa and id_rsa.pub. Empty means ~/.ssh.
	OutputDir string

	// Bits is the RSA key size; zero picks the default.
	Bits int
}

// generateKeyPair is replaceable in tests.
var generateKeyPair = keygen.GenerateRSAKeyPair

// Keypair generates an RSA SSH keypair and writes it to the output
// directory.
func Keypair(opts KeypairOptions) error {
	dir := opts.OutputDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to locate home directory: %w", err)
		}
		dir = filepath.Join(home, ".ssh")
	}

	kp, err := generateKeyPair(opts.Bits)
	if err != nil {
		return fmt.Errorf("failed to generate keypair: %w", err)
	}

	if err := kp.WriteFiles(dir); err != nil {
		return err
	}

	fmt.Printf("Wrote %s and %s\n", filepath.Join(dir, "id_rsa"), filepath.Join(dir, "id_rsa.pub"))
	return nil
}
