package chip8

// Register and stack dimensions.
const (
	registerCount = 16
	stackSize     = 16

	flagRegister = 0xF
)

// cpu holds the register file: 16 general-purpose 8 bit registers (VF
// doubles as the flags register), the 16 bit index register, the program
// counter and the call stack.
type cpu struct {
	v     [registerCount]uint8
	i     uint16
	pc    uint16
	sp    uint8
	stack [stackSize]uint16
}

// reset zeroes all registers and points the program counter at the
// program start address.
func (c *cpu) reset() {
	*c = cpu{pc: ProgramStart}
}

// push stores a return address on the call stack.
func (c *cpu) push(address uint16) error {
	if int(c.sp) >= stackSize {
		return ErrStackOverflow
	}
	c.stack[c.sp] = address
	c.sp++
	return nil
}

// pop removes and returns the most recent return address.
func (c *cpu) pop() (uint16, error) {
	if c.sp == 0 {
		return 0, ErrStackUnderflow
	}
	c.sp--
	return c.stack[c.sp], nil
}
