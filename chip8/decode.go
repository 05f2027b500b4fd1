package chip8

// operation identifies one decoded CHIP-8 instruction variant.
type operation uint8

const (
	opCls         operation = iota // 00E0: clear the display
	opRet                          // 00EE: return from subroutine
	opJp                           // 1nnn: jump to address
	opCall                         // 2nnn: call subroutine
	opSeByte                       // 3xnn: skip if Vx == nn
	opSneByte                      // 4xnn: skip if Vx != nn
	opSeReg                        // 5xy0: skip if Vx == Vy
	opLdByte                       // 6xnn: Vx = nn
	opAddByte                      // 7xnn: Vx += nn
	opLdReg                        // 8xy0: Vx = Vy
	opOr                           // 8xy1: Vx |= Vy
	opAnd                          // 8xy2: Vx &= Vy
	opXor                          // 8xy3: Vx ^= Vy
	opAddReg                       // 8xy4: Vx += Vy, VF = carry
	opSub                          // 8xy5: Vx -= Vy, VF = not borrow
	opShr                          // 8xy6: Vx >>= 1, VF = shifted out bit
	opSubn                         // 8xy7: Vx = Vy - Vx, VF = not borrow
	opShl                          // 8xyE: Vx <<= 1, VF = shifted out bit
	opSneReg                       // 9xy0: skip if Vx != Vy
	opLdI                          // Annn: I = nnn
	opJpOffset                     // Bnnn: jump to nnn + offset register
	opRnd                          // Cxnn: Vx = random byte AND nn
	opDrw                          // Dxyn: draw n byte sprite at (Vx, Vy)
	opSkp                          // Ex9E: skip if key Vx pressed
	opSknp                         // ExA1: skip if key Vx not pressed
	opLdFromDelay                  // Fx07: Vx = delay timer
	opLdKey                        // Fx0A: wait for key press, Vx = key
	opLdToDelay                    // Fx15: delay timer = Vx
	opLdToSound                    // Fx18: sound timer = Vx
	opAddI                         // Fx1E: I += Vx
	opLdFont                       // Fx29: I = font sprite address of digit Vx
	opBCD                          // Fx33: memory[I..I+2] = BCD of Vx
	opStoreRegs                    // Fx55: memory[I..I+x] = V0..Vx
	opLoadRegs                     // Fx65: V0..Vx = memory[I..I+x]
)

// instruction is the tagged decode of one 16 bit instruction word. Decoding
// happens once per step, execution dispatches over the operation tag.
type instruction struct {
	op  operation
	x   uint8  // second nibble, register index
	y   uint8  // third nibble, register index
	n   uint8  // low nibble
	nn  uint8  // low byte
	nnn uint16 // low 12 bits, address
}

// decode splits the raw instruction word into its fields and identifies the
// instruction variant. Unknown bit patterns, including SYS machine calls
// (0nnn), fail with an OpcodeError.
func decode(opcode uint16) (instruction, error) {
	ins := instruction{
		x:   uint8(opcode >> 8 & 0x0F),
		y:   uint8(opcode >> 4 & 0x0F),
		n:   uint8(opcode & 0x000F),
		nn:  uint8(opcode & 0x00FF),
		nnn: opcode & 0x0FFF,
	}

	switch opcode >> 12 {
	case 0x0:
		switch opcode {
		case 0x00E0:
			ins.op = opCls
		case 0x00EE:
			ins.op = opRet
		default:
			return ins, OpcodeError{Opcode: opcode}
		}
	case 0x1:
		ins.op = opJp
	case 0x2:
		ins.op = opCall
	case 0x3:
		ins.op = opSeByte
	case 0x4:
		ins.op = opSneByte
	case 0x5:
		if ins.n != 0 {
			return ins, OpcodeError{Opcode: opcode}
		}
		ins.op = opSeReg
	case 0x6:
		ins.op = opLdByte
	case 0x7:
		ins.op = opAddByte
	case 0x8:
		switch ins.n {
		case 0x0:
			ins.op = opLdReg
		case 0x1:
			ins.op = opOr
		case 0x2:
			ins.op = opAnd
		case 0x3:
			ins.op = opXor
		case 0x4:
			ins.op = opAddReg
		case 0x5:
			ins.op = opSub
		case 0x6:
			ins.op = opShr
		case 0x7:
			ins.op = opSubn
		case 0xE:
			ins.op = opShl
		default:
			return ins, OpcodeError{Opcode: opcode}
		}
	case 0x9:
		if ins.n != 0 {
			return ins, OpcodeError{Opcode: opcode}
		}
		ins.op = opSneReg
	case 0xA:
		ins.op = opLdI
	case 0xB:
		ins.op = opJpOffset
	case 0xC:
		ins.op = opRnd
	case 0xD:
		ins.op = opDrw
	case 0xE:
		switch ins.nn {
		case 0x9E:
			ins.op = opSkp
		case 0xA1:
			ins.op = opSknp
		default:
			return ins, OpcodeError{Opcode: opcode}
		}
	case 0xF:
		switch ins.nn {
		case 0x07:
			ins.op = opLdFromDelay
		case 0x0A:
			ins.op = opLdKey
		case 0x15:
			ins.op = opLdToDelay
		case 0x18:
			ins.op = opLdToSound
		case 0x1E:
			ins.op = opAddI
		case 0x29:
			ins.op = opLdFont
		case 0x33:
			ins.op = opBCD
		case 0x55:
			ins.op = opStoreRegs
		case 0x65:
			ins.op = opLoadRegs
		default:
			return ins, OpcodeError{Opcode: opcode}
		}
	}
	return ins, nil
}
