// Package action invokes the external provisioning scripts.
//
// Each script is an opaque action with an exit-status contract: zero means
// the action fully applied its side effects, non-zero is terminal for the
// whole bootstrap run. Scripts run with elevated privilege and their output
// is surfaced to the operator unmodified.
package action

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Runner invokes one external provisioning action.
type Runner interface {
	// Run executes the named script with the given arguments and returns a
	// *Failure when the script exits non-zero.
	Run(ctx context.Context, script string, args ...string) error
}

// Failure reports a provisioning action that exited non-zero.
type Failure struct {
	Script   string
	ExitCode int
}

func (f *Failure) Error() string {
	return fmt.Sprintf("action %s failed with exit code %d", f.Script, f.ExitCode)
}

// ScriptRunner runs provisioning scripts as `sudo bash <script> <args...>`.
type ScriptRunner struct {
	// Dir is the working directory for script execution. Scripts are
	// addressed relative to it, matching their on-disk layout.
	Dir string

	// Stdout and Stderr receive the script's output. Defaults to the
	// process streams.
	Stdout io.Writer
	Stderr io.Writer

	// logf reports invocation starts and completions.
	logf func(format string, v ...any)

	// noSudo drops the sudo prefix; only tests set it.
	noSudo bool
}

// NewScriptRunner creates a ScriptRunner rooted at dir.
func NewScriptRunner(dir string, logf func(format string, v ...any)) *ScriptRunner {
	if logf == nil {
		logf = func(string, ...any) {}
	}
	return &ScriptRunner{
		Dir:    dir,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		logf:   logf,
	}
}

// Run implements Runner.
func (r *ScriptRunner) Run(ctx context.Context, script string, args ...string) error {
	r.logf("Execute script: %s %s", script, strings.Join(args, " "))

	argv := append([]string{"sudo", "bash", script}, args...)
	if r.noSudo {
		argv = argv[1:]
	}
	// #nosec G204 -- script names come from the fixed step catalog
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = r.Dir
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &Failure{Script: script, ExitCode: exitErr.ExitCode()}
		}
		return fmt.Errorf("failed to start action %s: %w", script, err)
	}

	r.logf("Script %s executed successfully", script)
	return nil
}
