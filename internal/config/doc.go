// Package config holds the read-only inputs of a bootstrap run.
//
// Two documents are loaded once at process start and never mutated: the
// cluster resource config ([Topology], instance groups and their
// addresses) and the provisioning parameters ([Parameters], workload
// manager kind, shared-filesystem settings, and group names). Feature
// toggles ([Flags]) and wait tunables ([Timeouts]) complete the
// configuration; no component reads ambient state after startup.
package config
