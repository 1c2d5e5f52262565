package keygen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/ssh"
)

func TestGenerateRSAKeyPair(t *testing.T) {
	kp, err := GenerateRSAKeyPair(2048)
	require.NoError(t, err)

	signer, err := ssh.ParsePrivateKey(kp.PrivateKey)
	require.NoError(t, err)

	pub, _, _, _, err := ssh.ParseAuthorizedKey(kp.PublicKey)
	require.NoError(t, err)
	assert.Equal(t, signer.PublicKey().Marshal(), pub.Marshal())
}

func TestGenerateRSAKeyPair_DefaultBits(t *testing.T) {
	kp, err := GenerateRSAKeyPair(0)
	require.NoError(t, err)
	assert.NotEmpty(t, kp.PrivateKey)
	assert.NotEmpty(t, kp.PublicKey)
}

func TestWriteFiles(t *testing.T) {
	kp, err := GenerateRSAKeyPair(2048)
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), ".ssh")
	require.NoError(t, kp.WriteFiles(dir))

	privInfo, err := os.Stat(filepath.Join(dir, "id_rsa"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), privInfo.Mode().Perm())

	pub, err := os.ReadFile(filepath.Join(dir, "id_rsa.pub"))
	require.NoError(t, err)
	assert.Equal(t, kp.PublicKey, pub)
}
