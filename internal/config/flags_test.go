package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultFlags(t *testing.T) {
	flags := DefaultFlags()

	assert.True(t, flags.EnableDockerEnrootPyxis)
	assert.False(t, flags.EnableFsxOpenZFS)
	assert.False(t, flags.EnableObservability)
	assert.False(t, flags.EnableUpdateNeuronSDK)
	assert.False(t, flags.EnableSSSD)
	assert.False(t, flags.EnablePamSlurmAdopt)
	assert.False(t, flags.EnableMountS3)
	assert.Empty(t, flags.S3Bucket)
}

func TestLoadFlags_EmptyPathReturnsDefaults(t *testing.T) {
	flags, err := LoadFlags("")
	require.NoError(t, err)
	assert.Equal(t, DefaultFlags(), flags)
}

func TestLoadFlags_FileOverrides(t *testing.T) {
	path := writeTempFile(t, "nodeup.yaml", `
enable_observability: true
enable_mount_s3: true
s3_bucket: training-data
`)

	flags, err := LoadFlags(path)
	require.NoError(t, err)

	assert.True(t, flags.EnableObservability)
	assert.True(t, flags.EnableMountS3)
	assert.Equal(t, "training-data", flags.S3Bucket)
	// Untouched toggles keep their defaults.
	assert.True(t, flags.EnableDockerEnrootPyxis)
	assert.False(t, flags.EnableSSSD)
}

func TestLoadFlags_MountS3RequiresBucket(t *testing.T) {
	path := writeTempFile(t, "nodeup.yaml", `enable_mount_s3: true`)

	_, err := LoadFlags(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "s3_bucket")
}

func TestLoadFlags_MissingFile(t *testing.T) {
	_, err := LoadFlags("/nonexistent/nodeup.yaml")
	assert.Error(t, err)
}

func TestLoadFlags_Malformed(t *testing.T) {
	path := writeTempFile(t, "nodeup.yaml", "enable_sssd: [broken")
	_, err := LoadFlags(path)
	assert.Error(t, err)
}
