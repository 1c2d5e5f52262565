package readiness

import (
	"context"
	"os/exec"
)

// ScontrolNodes queries the workload manager for its registered nodes.
// It is the production QueryNodes implementation for Gate.
func ScontrolNodes(ctx context.Context) (string, error) {
	out, err := exec.CommandContext(ctx, "scontrol", "show", "nodes").Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}
