// Package prerequisites provides utilities for checking required host tools.
//
// The bootstrap depends on a handful of binaries being present before any
// provisioning action runs; checking them up front turns a mid-sequence
// "command not found" into a clear startup error.
package prerequisites

import (
	"fmt"
	"os/exec"
	"strings"
)

// Tool represents a host tool that may be required.
type Tool struct {
	// Name is the binary name to look for in PATH.
	Name string

	// Required indicates if this tool is mandatory.
	Required bool

	// Description explains what the tool is used for.
	Description string
}

// DefaultTools returns the tools every bootstrap run needs.
func DefaultTools() []Tool {
	return []Tool{
		{
			Name:        "sudo",
			Required:    true,
			Description: "Provisioning actions run with elevated privilege",
		},
		{
			Name:        "bash",
			Required:    true,
			Description: "Provisioning actions are bash scripts",
		},
	}
}

// SlurmTools returns the additional tools a slurm cluster bootstrap uses.
// scontrol is optional: only the registration readiness gate consults it.
func SlurmTools() []Tool {
	return []Tool{
		{
			Name:        "scontrol",
			Required:    false,
			Description: "Used by the node-registration readiness gate",
		},
	}
}

// CheckResult contains the result of checking a single tool.
type CheckResult struct {
	Tool  Tool
	Found bool
	Path  string
}

// CheckResults contains the results of checking multiple tools.
type CheckResults struct {
	Results []CheckResult
	Missing []Tool
}

// HasErrors returns true if any required tools are missing.
func (r *CheckResults) HasErrors() bool {
	for _, tool := range r.Missing {
		if tool.Required {
			return true
		}
	}
	return false
}

// Error returns an error if any required tools are missing.
func (r *CheckResults) Error() error {
	var missing []string
	for _, tool := range r.Missing {
		if tool.Required {
			missing = append(missing, fmt.Sprintf("%s (%s)", tool.Name, tool.Description))
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("missing required tools: %s", strings.Join(missing, ", "))
}

// Check verifies that the specified tools are available.
func Check(tools []Tool) *CheckResults {
	results := &CheckResults{}

	for _, tool := range tools {
		result := CheckResult{Tool: tool}

		path, err := exec.LookPath(tool.Name)
		if err == nil {
			result.Found = true
			result.Path = path
		} else {
			results.Missing = append(results.Missing, tool)
		}

		results.Results = append(results.Results, result)
	}

	return results
}

// CheckDefault checks the default required tools.
func CheckDefault() *CheckResults {
	return Check(DefaultTools())
}

// CheckForSlurm checks the default tools plus the slurm extras.
func CheckForSlurm() *CheckResults {
	defaults := DefaultTools()
	slurm := SlurmTools()
	all := make([]Tool, 0, len(defaults)+len(slurm))
	all = append(all, defaults...)
	all = append(all, slurm...)
	return Check(all)
}
