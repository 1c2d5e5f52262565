package action

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScript(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o700))
}

func newTestRunner(t *testing.T, dir string) (*ScriptRunner, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	r := NewScriptRunner(dir, nil)
	r.Stdout = &out
	r.Stderr = &out
	r.noSudo = true
	return r, &out
}

func TestScriptRunner_Success(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "mount_fsx.sh", "#!/bin/bash\necho mounting $1 at $3\n")

	r, out := newTestRunner(t, dir)
	err := r.Run(context.Background(), "./mount_fsx.sh", "fs-1.example.com", "abcdef", "/fsx")

	require.NoError(t, err)
	assert.Contains(t, out.String(), "mounting fs-1.example.com at /fsx")
}

func TestScriptRunner_NonZeroExit(t *testing.T) {
	dir := t.TempDir()
	writeScript(t, dir, "apply_hotfix.sh", "#!/bin/bash\necho broken >&2\nexit 3\n")

	r, out := newTestRunner(t, dir)
	err := r.Run(context.Background(), "./apply_hotfix.sh", "controller")

	require.Error(t, err)
	var failure *Failure
	require.True(t, errors.As(err, &failure))
	assert.Equal(t, "./apply_hotfix.sh", failure.Script)
	assert.Equal(t, 3, failure.ExitCode)
	assert.Contains(t, out.String(), "broken")
}

func TestScriptRunner_MissingScript(t *testing.T) {
	r, _ := newTestRunner(t, t.TempDir())
	err := r.Run(context.Background(), "./no_such_script.sh")

	// bash reports a missing script file with exit code 127.
	var failure *Failure
	require.True(t, errors.As(err, &failure))
	assert.Equal(t, 127, failure.ExitCode)
}

func TestFailureError(t *testing.T) {
	f := &Failure{Script: "./start_slurm.sh", ExitCode: 1}
	assert.Equal(t, "action ./start_slurm.sh failed with exit code 1", f.Error())
}
