package provisioning

import (
	"context"

	"github.com/mkrall/nodeup/internal/action"
	"github.com/mkrall/nodeup/internal/config"
	"github.com/mkrall/nodeup/internal/role"
)

// BucketChecker verifies object-storage buckets before the mount step.
// Implemented by internal/platform/s3.Client.
type BucketChecker interface {
	// BucketAccessible reports whether the bucket exists and is reachable.
	BucketAccessible(ctx context.Context, bucketName string) (bool, error)
}

// Context wraps all dependencies and state needed by the step catalog.
// Everything is resolved once before the run; steps only read it.
type Context struct {
	context.Context

	Params   *config.Parameters
	Topology *config.Topology
	Flags    config.Flags
	Timeouts *config.Timeouts

	// Role is the resolved role of this node.
	Role role.Role

	// SelfAddress is this node's resolved routable address.
	SelfAddress string

	// Runner invokes the external provisioning actions.
	Runner action.Runner

	// Bucket is consulted by the object-storage mount step. A nil checker
	// skips the preflight and mounts directly.
	Bucket BucketChecker

	Observer Observer
}

// NewContext creates a bootstrap context.
func NewContext(ctx context.Context, params *config.Parameters, topo *config.Topology, flags config.Flags, r role.Role, selfAddr string, runner action.Runner) *Context {
	return &Context{
		Context:     ctx,
		Params:      params,
		Topology:    topo,
		Flags:       flags,
		Timeouts:    config.LoadTimeouts(),
		Role:        r,
		SelfAddress: selfAddr,
		Runner:      runner,
		Observer:    NewConsoleObserver(),
	}
}

// Controllers returns the addresses of the controller instance group.
func (c *Context) Controllers() []string {
	return c.Topology.AddressesOf(c.Params.ControllerGroup)
}

// Logins returns the addresses of the login instance group.
func (c *Context) Logins() []string {
	return c.Topology.AddressesOf(c.Params.LoginGroup)
}
