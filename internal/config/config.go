// Package config handles application configuration and setup
package config

import (
	"github.com/retroenv/chip8goemu/chip8"
	"github.com/retroenv/chip8goemu/internal/options"
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates a logger with appropriate settings
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()
	if debug {
		cfg.Level = log.DebugLevel
	} else if quiet {
		cfg.Level = log.ErrorLevel
	}
	return log.NewWithConfig(cfg)
}

// CreateSystemOptions maps the program options to a machine configuration.
func CreateSystemOptions(opts options.Program) chip8.Options {
	sysOpts := chip8.DefaultOptions()
	quirks := chip8.DefaultQuirks()

	if opts.ShiftVY {
		quirks.ShiftSourceY = true
	}
	if opts.KeepIndex {
		quirks.LoadStoreIncrementI = false
	}
	if opts.JumpVX {
		quirks.JumpOffsetVX = true
	}
	if opts.KeepFlags {
		quirks.ResetVF = false
	}
	if opts.ClipSprites {
		quirks.ClipSprites = true
	}
	if opts.DisplayWait {
		quirks.DisplayWait = true
	}

	sysOpts.Quirks = quirks
	return sysOpts
}
