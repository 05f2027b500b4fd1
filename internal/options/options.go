// Package options contains the program options.
package options

// Parameters contains file path options.
type Parameters struct {
	Input string // ROM file to run
}

// Flags contains behavior options.
type Flags struct {
	Steps int // maximum number of instructions to execute, 0 runs until halt
	Clock int // instructions executed per 60 Hz frame

	Fast       bool // run without frame pacing
	DumpScreen bool // print the final framebuffer as ASCII art
	DumpTrace  bool // print the execution trace after the run

	Debug bool
	Quiet bool
}

// QuirkFlags contains interpreter behavior variant options.
type QuirkFlags struct {
	ShiftVY     bool // 8xy6/8xyE shift Vy instead of Vx
	KeepIndex   bool // Fx55/Fx65 leave I unchanged
	JumpVX      bool // Bnnn jumps to nnn+Vx instead of nnn+V0
	KeepFlags   bool // 8xy1/8xy2/8xy3 leave VF unchanged
	ClipSprites bool // clip sprites at the screen border instead of wrapping
	DisplayWait bool // draw instructions wait for the next frame tick
}

// Program options of the emulator.
type Program struct {
	Parameters
	Flags
	QuirkFlags
}
