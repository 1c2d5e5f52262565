// Package handlers implements the business logic for CLI commands.
//
// This package contains handler functions that are called by command
// definitions in the commands package. Handlers are framework-agnostic and
// can be tested independently of the CLI framework.
package handlers

import (
	"context"
	"os"

	"github.com/mkrall/nodeup/internal/action"
	"github.com/mkrall/nodeup/internal/config"
	"github.com/mkrall/nodeup/internal/netutil"
	"github.com/mkrall/nodeup/internal/platform/s3"
	"github.com/mkrall/nodeup/internal/provisioning"
	"github.com/mkrall/nodeup/internal/readiness"
	"github.com/mkrall/nodeup/internal/role"
	"github.com/mkrall/nodeup/internal/util/prerequisites"
)

// BootstrapOptions carries the CLI inputs of a bootstrap run.
type BootstrapOptions struct {
	// ResourceConfigPath locates the cluster topology document.
	ResourceConfigPath string

	// ParametersPath locates the provisioning parameters document.
	ParametersPath string

	// FlagsPath optionally locates the feature-flags file.
	FlagsPath string

	// ScriptsDir is the working directory for provisioning scripts.
	ScriptsDir string
}

// Factory function variables - can be replaced in tests for dependency injection.
var (
	// loadParameters loads the provisioning parameters document.
	loadParameters = config.LoadParameters

	// loadTopology loads the resource-config document.
	loadTopology = config.LoadTopology

	// loadFlags loads the optional feature-flags file.
	loadFlags = config.LoadFlags

	// newObserver creates the run observer.
	newObserver = func() provisioning.Observer { return provisioning.NewConsoleObserver() }

	// newRunner creates the action runner rooted at the scripts directory.
	newRunner = func(dir string, logf func(string, ...any)) action.Runner {
		return action.NewScriptRunner(dir, logf)
	}

	// newSelfAddressResolver creates the address discovery resolver.
	newSelfAddressResolver = func(timeouts *config.Timeouts, logf func(string, ...any)) interface{ SelfAddress() string } {
		return netutil.NewResolver(
			netutil.WithMaxAttempts(timeouts.AddressMaxAttempts),
			netutil.WithInitialDelay(timeouts.AddressInitialDelay),
			netutil.WithLogf(logf),
		)
	}

	// newGate creates the readiness gate.
	newGate = func(logf func(string, ...any)) *readiness.Gate {
		g := readiness.NewGate(readiness.ScontrolNodes)
		g.Logf = logf
		return g
	}

	// newBucketChecker creates the object-storage preflight client.
	newBucketChecker = func(ctx context.Context) (provisioning.BucketChecker, error) {
		return s3.NewClient(ctx)
	}

	// checkPrereqs runs host tool checks.
	checkPrereqs = prerequisites.CheckForSlurm

	// runSteps executes the step catalog.
	runSteps = provisioning.Run

	// getenv reads the process environment; read once here, never in components.
	getenv = os.Getenv
)

// Bootstrap provisions this node into a working cluster member.
//
// The flow is strictly sequential:
//  1. Load and validate the two input documents and the feature flags
//     (fatal before any action runs).
//  2. Resolve this node's address (declared override, else UDP probe with
//     bounded backoff, degrading to loopback).
//  3. Resolve the role (declared override is authoritative; topology
//     membership is the explicit alternate strategy).
//  4. Optionally wait for readiness signals; a not-ready result is logged
//     and recorded, never escalated.
//  5. Walk the ordered step catalog, aborting on the first failed action.
func Bootstrap(ctx context.Context, opts BootstrapOptions) error {
	observer := newObserver()
	logf := observer.Printf

	params, err := loadParameters(opts.ParametersPath)
	if err != nil {
		return err
	}
	topo, err := loadTopology(opts.ResourceConfigPath)
	if err != nil {
		return err
	}
	flags, err := loadFlags(opts.FlagsPath)
	if err != nil {
		return err
	}
	timeouts := config.LoadTimeouts()

	prereqs := checkPrereqs()
	for _, missing := range prereqs.Missing {
		logf("Tool %s not found in PATH: %s", missing.Name, missing.Description)
	}
	if err := prereqs.Error(); err != nil {
		return err
	}

	selfAddr := getenv("NODEUP_NODE_IP")
	if selfAddr == "" {
		selfAddr = newSelfAddressResolver(timeouts, logf).SelfAddress()
	}
	logf("This node ip address is %s", selfAddr)

	nodeRole := resolveRole(selfAddr, params, topo, observer)

	if params.IsSlurm() {
		waitForReadiness(ctx, params, topo, timeouts, observer)
	}

	pctx := &provisioning.Context{
		Context:     ctx,
		Params:      params,
		Topology:    topo,
		Flags:       flags,
		Timeouts:    timeouts,
		Role:        nodeRole,
		SelfAddress: selfAddr,
		Runner:      newRunner(opts.ScriptsDir, logf),
		Observer:    observer.WithFields(map[string]string{"role": nodeRole.String()}),
	}

	if flags.EnableMountS3 {
		checker, err := newBucketChecker(ctx)
		if err != nil {
			// The mount script still runs; it carries its own credential
			// handling and will fail the step if the bucket is unusable.
			logf("Object-storage preflight unavailable: %v", err)
		} else {
			pctx.Bucket = checker
		}
	}

	return runSteps(pctx, provisioning.Catalog())
}

// resolveRole picks the node role. A declared role is authoritative;
// topology membership is the alternate strategy behind explicit selection,
// and an address found in no group falls back to compute.
func resolveRole(selfAddr string, params *config.Parameters, topo *config.Topology, observer provisioning.Observer) role.Role {
	declared := getenv("NODEUP_ROLE")
	if declared == "" && getenv("NODEUP_ROLE_FROM_TOPOLOGY") == "1" {
		r, ok := role.FromTopology(selfAddr, topo, params.ControllerGroup, params.LoginGroup)
		if !ok {
			observer.Printf("Address %s not found in any instance group, defaulting to compute", selfAddr)
		}
		return r
	}
	return role.FromDeclared(declared)
}

// waitForReadiness runs the optional pre-checks. Both are opt-in and their
// not-ready results are recorded but deliberately not escalated: the active
// bootstrap path has never blocked on them, and downstream steps carry
// their own failure modes.
func waitForReadiness(ctx context.Context, params *config.Parameters, topo *config.Topology, timeouts *config.Timeouts, observer provisioning.Observer) {
	gate := newGate(observer.Printf)

	if getenv("NODEUP_WAIT_FOR_SLURM_CONF") == "1" {
		confPath := getenv("SLURM_CONF")
		if confPath == "" {
			confPath = readiness.DefaultWorkloadConfigPath
		}
		controllers := topo.AddressesOf(params.ControllerGroup)
		ready := gate.WaitForWorkloadConfig(confPath, controllers, timeouts.ConfigSignal, timeouts.ConfigSignalInterval)
		observer.Event(provisioning.Event{
			Type:    provisioning.EventReadinessWait,
			Message: "workload config signal",
			Fields:  map[string]string{"ready": boolString(ready), "path": confPath},
		})
	}

	if getenv("NODEUP_WAIT_FOR_REGISTRATION") == "1" {
		ready := gate.WaitForNodeRegistration(ctx, timeouts.Registration, timeouts.RegistrationInterval)
		observer.Event(provisioning.Event{
			Type:    provisioning.EventReadinessWait,
			Message: "cluster node registration",
			Fields:  map[string]string{"ready": boolString(ready)},
		})
	}
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
