// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/retroenv/chip8goemu/internal/options"
)

// ParseFlags parses command line flags and returns the program options.
func ParseFlags() (options.Program, error) {
	return parseFlags(os.Args[0], os.Args[1:])
}

func parseFlags(name string, args []string) (options.Program, error) {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(args)
	positional := flags.Args()
	if err != nil || len(positional) == 0 {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(positional); err != nil {
		return opts, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}

	opts.Input = positional[0]
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: chip8goemu [options] <ROM file to run>\n\n")
	e.flags.PrintDefaults()
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after ROM file, please pass the ROM file as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	if opts.Clock <= 0 {
		return fmt.Errorf("instructions per frame must be positive, got %d", opts.Clock)
	}
	if opts.Steps < 0 {
		return fmt.Errorf("step limit must not be negative, got %d", opts.Steps)
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.IntVar(&opts.Steps, "steps", 0, "maximum number of instructions to execute, 0 runs until halt")
	flags.IntVar(&opts.Clock, "clock", 11, "instructions executed per 60 Hz frame")
	flags.BoolVar(&opts.Fast, "fast", false, "run at full speed without frame pacing")
	flags.BoolVar(&opts.DumpScreen, "screen", false, "print the final framebuffer as ASCII art")
	flags.BoolVar(&opts.DumpTrace, "trace", false, "print the execution trace after the run")
	flags.BoolVar(&opts.ShiftVY, "quirk-shift-vy", false, "shift instructions operate on Vy instead of Vx")
	flags.BoolVar(&opts.KeepIndex, "quirk-keep-index", false, "register store/load instructions leave I unchanged")
	flags.BoolVar(&opts.JumpVX, "quirk-jump-vx", false, "jump with offset uses Vx instead of V0")
	flags.BoolVar(&opts.KeepFlags, "quirk-keep-flags", false, "bitwise instructions leave VF unchanged")
	flags.BoolVar(&opts.ClipSprites, "quirk-clip", false, "clip sprites at the screen border instead of wrapping")
	flags.BoolVar(&opts.DisplayWait, "quirk-display-wait", false, "draw instructions wait for the next frame")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
