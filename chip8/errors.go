package chip8

import (
	"errors"
	"fmt"
)

// Stack errors returned by CALL and RET when the 16 entry call stack limit
// is violated. Both are terminal, the system transitions to the halted state.
var (
	ErrStackOverflow  = errors.New("stack overflow")
	ErrStackUnderflow = errors.New("stack underflow")
)

// OpcodeError reports an instruction word that does not decode to any
// CHIP-8 instruction. The raw word is preserved so that test ROMs probing
// unimplemented instructions stay observable.
type OpcodeError struct {
	Opcode uint16
}

func (e OpcodeError) Error() string {
	return fmt.Sprintf("illegal opcode $%04X", e.Opcode)
}

// AddressError reports a memory access outside of the 4KB address space.
// The original hardware had no memory protection and would wrap or read
// garbage, failing loudly instead keeps ROM bugs visible.
type AddressError struct {
	Address uint16
}

func (e AddressError) Error() string {
	return fmt.Sprintf("memory access out of range: $%04X", e.Address)
}

// CapacityError reports a ROM that does not fit into the program space
// between the program start address and the top of memory.
type CapacityError struct {
	Size int
}

func (e CapacityError) Error() string {
	return fmt.Sprintf("ROM size %d exceeds program space of %d bytes", e.Size, programSpace)
}

// KeyError reports a key index outside of the 16 key keypad.
type KeyError struct {
	Key uint8
}

func (e KeyError) Error() string {
	return fmt.Sprintf("invalid key index %d", e.Key)
}

// errWaiting is returned by handlers that wait for an external condition,
// like a key press. The program counter is rewound so that the instruction
// re-executes on the next step, it never halts the system.
var errWaiting = errors.New("waiting")
