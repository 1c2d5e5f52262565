// Package role resolves the cluster role of the local node.
//
// Two strategies exist: [FromDeclared] maps an externally declared role
// string (the authoritative path), and [FromTopology] derives the role from
// instance-group membership. The topology strategy is an explicit alternate,
// selected by the bootstrap handler when no role is declared and topology
// lookup is enabled.
package role

import "github.com/mkrall/nodeup/internal/config"

// Role is the cluster role of a node. The zero value is Compute.
type Role int

const (
	// Compute executes scheduled jobs.
	Compute Role = iota
	// Controller runs the workload manager's scheduling and accounting service.
	Controller
	// Login accepts user job submissions.
	Login
)

// String returns the role name as passed to provisioning scripts.
func (r Role) String() string {
	switch r {
	case Controller:
		return "controller"
	case Login:
		return "login"
	default:
		return "compute"
	}
}

// FromDeclared maps a declared role string to a Role. The mapping is total:
// any value other than "controller" or "login", including the empty string,
// resolves to Compute.
func FromDeclared(declared string) Role {
	switch declared {
	case "controller":
		return Controller
	case "login":
		return Login
	default:
		return Compute
	}
}

// FromTopology resolves the role from instance-group membership: the group
// owning addr is compared against the configured controller and login group
// names, any other group means Compute. ok is false when addr belongs to no
// group; callers fall back to Compute in that case.
func FromTopology(addr string, topo *config.Topology, controllerGroup, loginGroup string) (r Role, ok bool) {
	group, _, found := topo.FindInstanceByAddress(addr)
	if !found {
		return Compute, false
	}

	switch group.Name {
	case controllerGroup:
		return Controller, true
	case loginGroup:
		return Login, true
	default:
		return Compute, true
	}
}
