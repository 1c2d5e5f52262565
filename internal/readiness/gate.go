// Package readiness implements bounded polling for externally produced
// readiness signals.
//
// Both primitives are pure wait loops: they report readiness as a boolean
// and never abort the process. The caller decides what a not-ready result
// means; in the current bootstrap flow both are optional pre-checks.
package readiness

import (
	"context"
	"os"
	"strings"
	"time"
)

// DefaultWorkloadConfigPath is the well-known location of the workload
// manager configuration consulted by the config-signal wait.
const DefaultWorkloadConfigPath = "/opt/slurm/etc/slurm.conf"

// Gate polls for readiness signals with a bounded budget. Time and I/O are
// injectable so tests can simulate the clock.
type Gate struct {
	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time

	// Sleep pauses between polls. Defaults to time.Sleep.
	Sleep func(time.Duration)

	// ReadFile reads the workload config file. Defaults to os.ReadFile.
	ReadFile func(path string) ([]byte, error)

	// StatFile checks the workload config's existence. Defaults to os.Stat.
	StatFile func(path string) (os.FileInfo, error)

	// QueryNodes asks the workload manager for its registered node list.
	// Required for WaitForNodeRegistration.
	QueryNodes func(ctx context.Context) (string, error)

	// Logf reports wait progress. Defaults to a no-op.
	Logf func(format string, v ...any)
}

// NewGate returns a Gate backed by the real clock and filesystem.
func NewGate(queryNodes func(ctx context.Context) (string, error)) *Gate {
	return &Gate{
		Now:        time.Now,
		Sleep:      time.Sleep,
		ReadFile:   os.ReadFile,
		StatFile:   os.Stat,
		QueryNodes: queryNodes,
		Logf:       func(string, ...any) {},
	}
}

// WaitForWorkloadConfig waits until the workload config at path mentions at
// least one of the controller addresses, polling every interval up to
// timeout.
//
// A missing file is itself a terminal state and reports ready immediately:
// login and compute nodes boot before the controller has published its
// config, and their provisioning does not depend on it.
func (g *Gate) WaitForWorkloadConfig(path string, controllers []string, timeout, interval time.Duration) bool {
	deadline := g.Now().Add(timeout)

	for {
		if _, err := g.StatFile(path); err != nil {
			g.Logf("%s is not present. It is fine for login/compute nodes", path)
			return true
		}

		data, err := g.ReadFile(path)
		if err == nil {
			content := string(data)
			for _, addr := range controllers {
				if addr != "" && strings.Contains(content, addr) {
					g.Logf("%s found. It contains at least one controller address", path)
					return true
				}
			}
		}

		if !g.Now().Add(interval).After(deadline) {
			g.Sleep(interval)
			continue
		}
		g.Logf("Exceeded maximum wait of %v for %s", timeout, path)
		return false
	}
}

// WaitForNodeRegistration waits until the cluster-status query returns any
// non-empty result, polling every interval up to timeout. A non-empty result
// means nodes are registered with the workload manager and dependent install
// steps can proceed.
func (g *Gate) WaitForNodeRegistration(ctx context.Context, timeout, interval time.Duration) bool {
	deadline := g.Now().Add(timeout)

	for {
		out, err := g.QueryNodes(ctx)
		if err == nil && strings.TrimSpace(out) != "" {
			g.Logf("Nodes registered with the workload manager, proceeding")
			return true
		}

		if !g.Now().Add(interval).After(deadline) {
			g.Logf("Waiting for node registration, retrying in %v", interval)
			g.Sleep(interval)
			continue
		}
		g.Logf("Exceeded maximum wait of %v for node registration", timeout)
		return false
	}
}
