// Package cli coordinates a slashgen run: expanding directory arguments,
// parsing each package, writing generated files, and reporting the
// outcome.
package cli

import (
	"fmt"

	"github.com/toyz/slashgen/internal/utils"
)

// Config is the resolved command line.
type Config struct {
	// Paths are the directory arguments, possibly with /... suffixes.
	Paths []string

	// Module overrides the module path read from go.mod. Informational
	// only; generation is path-independent but the summary names it.
	Module string

	Verbose bool
	Quiet   bool

	// Clean removes generated files instead of producing them.
	Clean bool
}

// Validate rejects contradictory settings before any work starts.
func (c *Config) Validate() error {
	if len(c.Paths) == 0 {
		return fmt.Errorf("no directory paths given")
	}
	if c.Verbose && c.Quiet {
		return fmt.Errorf("verbose and quiet are mutually exclusive")
	}
	return nil
}

// Diagnostics builds the diagnostic system matching the configured
// verbosity.
func (c *Config) Diagnostics() *utils.DiagnosticSystem {
	switch {
	case c.Quiet:
		return utils.NewQuietDiagnostics()
	case c.Verbose:
		return utils.NewVerboseDiagnostics()
	default:
		return utils.NewDiagnosticSystem(utils.DiagnosticInfo)
	}
}
