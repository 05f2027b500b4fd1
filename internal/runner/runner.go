// Package runner drives a machine instance from a loaded ROM until it
// halts, the step budget is exhausted or the context is cancelled.
package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/retroenv/chip8goemu/chip8"
	"github.com/retroenv/chip8goemu/internal/config"
	"github.com/retroenv/chip8goemu/internal/options"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// frameRate is the timer tick rate in frames per second.
const frameRate = 60

// Runner executes a ROM on a machine instance. It owns the frame pacing,
// the host runs without any window or audio device, the framebuffer and
// the execution trace can be dumped as text after the run.
type Runner struct {
	logger *log.Logger
	opts   options.Program
	sys    *chip8.System
	output io.Writer

	sound bool
}

// New creates a runner with the ROM loaded into a fresh machine instance.
func New(logger *log.Logger, opts options.Program, rom []byte) (*Runner, error) {
	sys := chip8.New(config.CreateSystemOptions(opts))
	if err := sys.Load(rom); err != nil {
		return nil, fmt.Errorf("loading ROM: %w", err)
	}

	return &Runner{
		logger: logger,
		opts:   opts,
		sys:    sys,
		output: os.Stdout,
	}, nil
}

// Run executes the loaded ROM. It returns nil when the step budget is
// reached and the halt reason when the machine halts. The configured
// dumps are printed in both cases.
func (r *Runner) Run(ctx context.Context) error {
	err := r.run(ctx)

	if r.opts.DumpScreen {
		fmt.Fprint(r.output, r.screenString())
	}
	if r.opts.DumpTrace {
		r.dumpTrace()
	}

	return err
}

func (r *Runner) run(ctx context.Context) error {
	var ticker *time.Ticker
	if !r.opts.Fast {
		ticker = time.NewTicker(time.Second / frameRate)
		defer ticker.Stop()
	}

	executed := 0
	for {
		if ticker == nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
		} else {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
			}
		}

		steps := r.opts.Clock
		if r.opts.Steps > 0 && executed+steps > r.opts.Steps {
			steps = r.opts.Steps - executed
		}

		ran, err := r.sys.RunSteps(steps)
		executed += ran
		r.sys.Tick()
		r.updateSound()

		if err != nil {
			v, i := r.sys.Registers()
			r.logger.Debug("Registers at halt",
				log.String("v", fmt.Sprintf("% X", v[:])),
				log.Uint16("i", i))
			return fmt.Errorf("execution halted after %d instructions at $%04X: %w",
				executed, r.sys.PC(), err)
		}
		if r.opts.Steps > 0 && executed >= r.opts.Steps {
			r.logger.Debug("Step budget reached", log.Int("steps", executed))
			return nil
		}
	}
}

// updateSound logs sound state transitions, there is no audio device to
// play the tone on.
func (r *Runner) updateSound() {
	sound := r.sys.Sound()
	if sound == r.sound {
		return
	}
	r.sound = sound

	if sound {
		r.logger.Debug("Sound on", log.Uint8("timer", r.sys.SoundTimer()))
	} else {
		r.logger.Debug("Sound off")
	}
}

// screenString renders the framebuffer as ASCII art, one character per
// pixel and one line per row.
func (r *Runner) screenString() string {
	var sb strings.Builder
	sb.Grow((chip8.DisplayWidth + 1) * chip8.DisplayHeight)

	for y := 0; y < chip8.DisplayHeight; y++ {
		for x := 0; x < chip8.DisplayWidth; x++ {
			if r.sys.Pixel(x, y) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// dumpTrace prints the most recently executed instructions, newest first.
func (r *Runner) dumpTrace() {
	for _, entry := range r.sys.Trace() {
		fmt.Fprintf(r.output, "%04X  %04X  %s\n", entry.Address, entry.Opcode, entry.Text)
	}
}

// PrintBanner prints application version information.
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	logger.Info("chip8goemu", log.String("version", buildinfo.Version(version, commit, date)))
}
