// Package chip8 implements the CHIP-8 virtual machine core: memory,
// register file, timers, keypad state, display buffer and the
// fetch-decode-execute interpreter.
//
// The core is an embeddable component without any host I/O. The caller
// drives execution by calling Step (one instruction per call) and Tick
// (conventionally at 60 Hz) and observes the framebuffer, the sound flag
// and the halt state through read-only accessors. All state lives in an
// explicit System instance, multiple instances can run side by side.
package chip8

import (
	"math/rand"
)

// Options configures a System instance.
type Options struct {
	// Quirks selects the interpreter behavior variants.
	Quirks Quirks

	// TraceSize is the number of executed instructions kept in the trace
	// ring buffer, 0 disables tracing.
	TraceSize int

	// Foreground and Background are the colors used for the RGB8 snapshot.
	Foreground RGB
	Background RGB

	// Random overrides the random byte source of the Cxnn instruction,
	// useful for deterministic tests. Nil selects a time-seeded source.
	Random func() uint8
}

// DefaultOptions returns the default system configuration: COSMAC VIP
// quirks, a 100 entry trace buffer and white-on-black snapshot colors.
func DefaultOptions() Options {
	return Options{
		Quirks:     DefaultQuirks(),
		TraceSize:  100,
		Foreground: DefaultForeground,
		Background: DefaultBackground,
	}
}

// System is one CHIP-8 virtual machine instance. It owns all machine
// state, no other component may mutate it except through the documented
// host-facing calls: Load, Step, Tick and SetKey.
//
// System is not safe for concurrent use, a multi-threaded host has to
// serialize all calls since nearly every instruction can touch nearly
// every piece of state.
type System struct {
	cpu     cpu
	memory  memory
	display display
	keypad  keypad
	timers  timers

	quirks Quirks
	random func() uint8
	trace  *traceBuffer
	halted error
}

// New creates a new System with the given options. The machine has no
// program loaded, call Load before stepping.
func New(opts Options) *System {
	random := opts.Random
	if random == nil {
		rng := rand.New(rand.NewSource(rand.Int63()))
		random = func() uint8 { return uint8(rng.Intn(256)) }
	}

	sys := &System{
		quirks: opts.Quirks,
		random: random,
		trace:  newTraceBuffer(opts.TraceSize),
	}
	sys.display.foreground = opts.Foreground
	sys.display.background = opts.Background
	sys.Reset()
	return sys
}

// Reset returns the machine to its initial state: memory cleared except
// for the font sprites, registers, stack, timers, keypad and display
// zeroed, program counter at the start address. Quirks and snapshot
// colors are preserved.
func (s *System) Reset() {
	s.cpu.reset()
	s.memory.reset()
	s.display.clear()
	s.keypad.reset()
	s.timers.reset()
	s.trace.reset()
	s.halted = nil
}

// Load resets the machine and copies the ROM into the program space.
// It fails with a CapacityError if the ROM does not fit between the
// program start address and the top of memory.
func (s *System) Load(rom []byte) error {
	s.Reset()
	if err := s.memory.loadROM(rom); err != nil {
		return err
	}
	return nil
}

// Step executes exactly one instruction: it fetches the 16 bit word at
// the program counter, advances the program counter by 2 before dispatch
// and executes the decoded instruction.
//
// Waiting conditions (key wait, display wait) are not errors: the program
// counter is left on the waiting instruction and Step returns nil, the
// caller re-invokes Step after updating the keypad or ticking the timers.
//
// Any illegal condition halts the system: the typed error is returned now
// and by every further Step call.
func (s *System) Step() error {
	if s.halted != nil {
		return s.halted
	}

	address := s.cpu.pc
	opcode, err := s.fetch()
	if err != nil {
		return s.halt(err)
	}

	ins, err := decode(opcode)
	if err != nil {
		return s.halt(err)
	}

	s.cpu.pc += 2

	switch err := s.execute(ins); {
	case err == errWaiting:
		s.cpu.pc = address
		return nil
	case err != nil:
		return s.halt(err)
	}

	s.trace.add(TraceEntry{Address: address, Opcode: opcode, Text: Disassemble(opcode)})
	return nil
}

// RunSteps executes up to n instructions and returns how many were
// executed. It stops early when the system halts, returning the halt
// reason.
func (s *System) RunSteps(n int) (int, error) {
	for executed := 0; executed < n; executed++ {
		if err := s.Step(); err != nil {
			return executed, err
		}
	}
	return n, nil
}

// Tick decrements the delay and sound timers if they are nonzero. The
// host calls this at a fixed rate, conventionally 60 Hz, independent of
// the instruction rate.
func (s *System) Tick() {
	s.timers.tick()
}

// Sound reports whether the sound timer is running, the host plays a tone
// while this is true.
func (s *System) Sound() bool {
	return s.timers.soundActive()
}

// DelayTimer returns the current delay timer value.
func (s *System) DelayTimer() uint8 {
	return s.timers.delay
}

// SoundTimer returns the current sound timer value.
func (s *System) SoundTimer() uint8 {
	return s.timers.sound
}

// SetKey updates the pressed state of one of the 16 keypad keys.
func (s *System) SetKey(key uint8, pressed bool) error {
	if key >= KeyCount {
		return KeyError{Key: key}
	}
	s.keypad.set(key, pressed)
	return nil
}

// Key returns the pressed state of one of the 16 keypad keys.
func (s *System) Key(key uint8) (bool, error) {
	if key >= KeyCount {
		return false, KeyError{Key: key}
	}
	return s.keypad.isPressed(key), nil
}

// Pixel reports whether the display pixel at the given coordinates is on.
func (s *System) Pixel(x, y int) bool {
	return s.display.pixel(x, y)
}

// Screen returns a copy of the framebuffer as a row-major array of
// DisplayWidth*DisplayHeight pixels.
func (s *System) Screen() [DisplayWidth * DisplayHeight]bool {
	return s.display.snapshot()
}

// RGB8 renders the framebuffer as a flat array of 8 bit RGB values,
// 3 bytes per pixel, using the configured snapshot colors.
func (s *System) RGB8() []byte {
	return s.display.rgb8()
}

// SetForeground changes the color used for lit pixels in RGB8 snapshots.
func (s *System) SetForeground(color RGB) {
	s.display.foreground = color
}

// SetBackground changes the color used for unlit pixels in RGB8 snapshots.
func (s *System) SetBackground(color RGB) {
	s.display.background = color
}

// Halted returns the error that halted the system, or nil while it is
// running. The halted state is terminal, only Load or Reset clear it.
func (s *System) Halted() error {
	return s.halted
}

// PC returns the current program counter, for debugging output.
func (s *System) PC() uint16 {
	return s.cpu.pc
}

// Registers returns a copy of the general purpose registers and the index
// register, for debugging output.
func (s *System) Registers() ([registerCount]uint8, uint16) {
	return s.cpu.v, s.cpu.i
}

// Trace returns the most recently executed instructions, newest first.
func (s *System) Trace() []TraceEntry {
	return s.trace.entries()
}

// fetch reads the big-endian instruction word at the program counter.
func (s *System) fetch() (uint16, error) {
	hi, err := s.memory.readByte(s.cpu.pc)
	if err != nil {
		return 0, err
	}
	lo, err := s.memory.readByte(s.cpu.pc + 1)
	if err != nil {
		return 0, err
	}
	return uint16(hi)<<8 | uint16(lo), nil
}

// halt transitions the system to the terminal halted state.
func (s *System) halt(err error) error {
	s.halted = err
	return err
}
