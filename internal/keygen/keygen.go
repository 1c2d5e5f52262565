// Package keygen generates SSH keypairs for cluster users.
//
// It is the native counterpart of the keypair provisioning script, exposed
// through the keypair CLI command so operators can pre-generate credentials
// without a full bootstrap run.
package keygen

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/crypto/ssh"
)

// DefaultBits is the RSA key size used when none is specified.
const DefaultBits = 4096

// KeyPair holds a PEM-encoded private key and its authorized_keys line.
type KeyPair struct {
	PrivateKey []byte
	PublicKey  []byte
}

// GenerateRSAKeyPair generates a new RSA key pair.
func GenerateRSAKeyPair(bits int) (*KeyPair, error) {
	if bits == 0 {
		bits = DefaultBits
	}

	privateKey, err := rsa.GenerateKey(rand.Reader, bits)
	if err != nil {
		return nil, err
	}

	if err := privateKey.Validate(); err != nil {
		return nil, err
	}

	privBlock := pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(privateKey),
	}
	privateKeyPEM := pem.EncodeToMemory(&privBlock)

	publicRsaKey, err := ssh.NewPublicKey(&privateKey.PublicKey)
	if err != nil {
		return nil, err
	}

	return &KeyPair{
		PrivateKey: privateKeyPEM,
		PublicKey:  ssh.MarshalAuthorizedKey(publicRsaKey),
	}, nil
}

// WriteFiles writes the pair as id_rsa and id_rsa.pub under dir, creating
// dir if needed. The private key is written with owner-only permissions.
func (kp *KeyPair) WriteFiles(dir string) error {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create key directory: %w", err)
	}

	privPath := filepath.Join(dir, "id_rsa")
	if err := os.WriteFile(privPath, kp.PrivateKey, 0o600); err != nil {
		return fmt.Errorf("failed to write private key: %w", err)
	}

	pubPath := filepath.Join(dir, "id_rsa.pub")
	if err := os.WriteFile(pubPath, kp.PublicKey, 0o644); err != nil {
		return fmt.Errorf("failed to write public key: %w", err)
	}

	return nil
}
