// Package main is the entry point for the nodeup CLI.
//
// nodeup turns a freshly launched cluster node into a working member of a
// workload-manager cluster. It resolves the node's role from the cluster
// topology, optionally waits for cluster readiness signals, and runs the
// ordered catalog of provisioning actions for that role.
//
// Commands: bootstrap, keypair, version.
//
// For detailed usage information, run:
//
//	nodeup --help
package main

import (
	"fmt"
	"os"

	"github.com/mkrall/nodeup/cmd/nodeup/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
