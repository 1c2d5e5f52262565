// Package provisioning walks the ordered catalog of bootstrap steps.
//
// The catalog is constant data: a fixed sequence of steps, each gated by a
// predicate over the node's role, the provisioning parameters, and the
// feature toggles. [Run] evaluates the catalog strictly in order, since
// later steps assume the filesystem and service side effects of earlier
// ones, and aborts on the first failed action. Skipped steps are normal
// no-ops, not failures.
package provisioning
