package chip8

import (
	"encoding/json"
	"fmt"
)

// state is the serializable snapshot of the full machine: the entity set
// of registers, stack, memory, display, timers and keypad, plus the quirk
// configuration the snapshot was taken with.
type state struct {
	V     [registerCount]uint8 `json:"v"`
	I     uint16               `json:"i"`
	PC    uint16               `json:"pc"`
	SP    uint8                `json:"sp"`
	Stack [stackSize]uint16    `json:"stack"`

	Memory []byte `json:"memory"`
	Pixels []bool `json:"pixels"`

	DelayTimer uint8 `json:"delayTimer"`
	SoundTimer uint8 `json:"soundTimer"`

	Keys [KeyCount]bool `json:"keys"`

	Quirks     Quirks `json:"quirks"`
	Foreground RGB    `json:"foreground"`
	Background RGB    `json:"background"`
}

// SaveState serializes the complete machine state. A halted system cannot
// be saved, the snapshot would re-execute the faulting instruction.
func (s *System) SaveState() ([]byte, error) {
	if s.halted != nil {
		return nil, fmt.Errorf("saving state of halted system: %w", s.halted)
	}

	st := state{
		V:          s.cpu.v,
		I:          s.cpu.i,
		PC:         s.cpu.pc,
		SP:         s.cpu.sp,
		Stack:      s.cpu.stack,
		Memory:     s.memory.data[:],
		Pixels:     s.display.pixels[:],
		DelayTimer: s.timers.delay,
		SoundTimer: s.timers.sound,
		Keys:       s.keypad.pressed,
		Quirks:     s.quirks,
		Foreground: s.display.foreground,
		Background: s.display.background,
	}

	data, err := json.Marshal(st)
	if err != nil {
		return nil, fmt.Errorf("marshaling state: %w", err)
	}
	return data, nil
}

// RestoreState replaces the complete machine state with a previously
// saved snapshot, including the quirk configuration. The trace buffer is
// cleared and a halted system returns to running.
func (s *System) RestoreState(data []byte) error {
	var st state
	if err := json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("unmarshaling state: %w", err)
	}

	if len(st.Memory) != memorySize {
		return fmt.Errorf("invalid state: memory size %d, want %d", len(st.Memory), memorySize)
	}
	if len(st.Pixels) != pixelCount {
		return fmt.Errorf("invalid state: pixel count %d, want %d", len(st.Pixels), pixelCount)
	}
	if st.SP > stackSize {
		return fmt.Errorf("invalid state: stack pointer %d, want <= %d", st.SP, stackSize)
	}

	s.cpu.v = st.V
	s.cpu.i = st.I
	s.cpu.pc = st.PC
	s.cpu.sp = st.SP
	s.cpu.stack = st.Stack
	copy(s.memory.data[:], st.Memory)
	copy(s.display.pixels[:], st.Pixels)
	s.timers.delay = st.DelayTimer
	s.timers.sound = st.SoundTimer
	s.timers.vblank = false
	s.keypad.pressed = st.Keys
	s.quirks = st.Quirks
	s.display.foreground = st.Foreground
	s.display.background = st.Background
	s.trace.reset()
	s.halted = nil
	return nil
}
