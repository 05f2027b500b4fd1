package chip8

// execute applies the state changes of one decoded instruction. It runs
// with the program counter already advanced past the instruction, so skip
// and jump semantics compose without special cases.
func (s *System) execute(ins instruction) error {
	switch ins.op {
	case opCls:
		s.display.clear()

	case opRet:
		address, err := s.cpu.pop()
		if err != nil {
			return err
		}
		s.cpu.pc = address

	case opJp:
		s.cpu.pc = ins.nnn

	case opCall:
		if err := s.cpu.push(s.cpu.pc); err != nil {
			return err
		}
		s.cpu.pc = ins.nnn

	case opSeByte:
		if s.cpu.v[ins.x] == ins.nn {
			s.cpu.pc += 2
		}

	case opSneByte:
		if s.cpu.v[ins.x] != ins.nn {
			s.cpu.pc += 2
		}

	case opSeReg:
		if s.cpu.v[ins.x] == s.cpu.v[ins.y] {
			s.cpu.pc += 2
		}

	case opLdByte:
		s.cpu.v[ins.x] = ins.nn

	case opAddByte:
		s.cpu.v[ins.x] += ins.nn

	case opLdReg:
		s.cpu.v[ins.x] = s.cpu.v[ins.y]

	case opOr:
		s.cpu.v[ins.x] |= s.cpu.v[ins.y]
		s.resetFlags()

	case opAnd:
		s.cpu.v[ins.x] &= s.cpu.v[ins.y]
		s.resetFlags()

	case opXor:
		s.cpu.v[ins.x] ^= s.cpu.v[ins.y]
		s.resetFlags()

	case opAddReg:
		sum := uint16(s.cpu.v[ins.x]) + uint16(s.cpu.v[ins.y])
		s.cpu.v[ins.x] = uint8(sum)
		s.setFlag(sum > 0xFF)

	case opSub:
		noBorrow := s.cpu.v[ins.x] >= s.cpu.v[ins.y]
		s.cpu.v[ins.x] -= s.cpu.v[ins.y]
		s.setFlag(noBorrow)

	case opShr:
		if s.quirks.ShiftSourceY {
			s.cpu.v[ins.x] = s.cpu.v[ins.y]
		}
		bit := s.cpu.v[ins.x] & 0x01
		s.cpu.v[ins.x] >>= 1
		s.cpu.v[flagRegister] = bit

	case opSubn:
		noBorrow := s.cpu.v[ins.y] >= s.cpu.v[ins.x]
		s.cpu.v[ins.x] = s.cpu.v[ins.y] - s.cpu.v[ins.x]
		s.setFlag(noBorrow)

	case opShl:
		if s.quirks.ShiftSourceY {
			s.cpu.v[ins.x] = s.cpu.v[ins.y]
		}
		bit := s.cpu.v[ins.x] >> 7
		s.cpu.v[ins.x] <<= 1
		s.cpu.v[flagRegister] = bit

	case opSneReg:
		if s.cpu.v[ins.x] != s.cpu.v[ins.y] {
			s.cpu.pc += 2
		}

	case opLdI:
		s.cpu.i = ins.nnn

	case opJpOffset:
		offset := s.cpu.v[0]
		if s.quirks.JumpOffsetVX {
			offset = s.cpu.v[ins.x]
		}
		s.cpu.pc = ins.nnn + uint16(offset)

	case opRnd:
		s.cpu.v[ins.x] = s.random() & ins.nn

	case opDrw:
		return s.draw(ins)

	case opSkp:
		// only the low nibble of Vx selects a key
		if s.keypad.isPressed(s.cpu.v[ins.x] & 0x0F) {
			s.cpu.pc += 2
		}

	case opSknp:
		if !s.keypad.isPressed(s.cpu.v[ins.x] & 0x0F) {
			s.cpu.pc += 2
		}

	case opLdFromDelay:
		s.cpu.v[ins.x] = s.timers.delay

	case opLdKey:
		key, pressed := s.keypad.firstPressed()
		if !pressed {
			return errWaiting
		}
		s.cpu.v[ins.x] = key

	case opLdToDelay:
		s.timers.delay = s.cpu.v[ins.x]

	case opLdToSound:
		s.timers.sound = s.cpu.v[ins.x]

	case opAddI:
		s.cpu.i += uint16(s.cpu.v[ins.x])

	case opLdFont:
		// the digit is the low nibble of Vx
		s.cpu.i = fontAddress + glyphSize*uint16(s.cpu.v[ins.x]&0x0F)

	case opBCD:
		value := s.cpu.v[ins.x]
		digits := [3]byte{value / 100 % 10, value / 10 % 10, value % 10}
		for offset, digit := range digits {
			if err := s.memory.writeByte(s.cpu.i+uint16(offset), digit); err != nil {
				return err
			}
		}

	case opStoreRegs:
		for reg := uint16(0); reg <= uint16(ins.x); reg++ {
			if err := s.memory.writeByte(s.cpu.i+reg, s.cpu.v[reg]); err != nil {
				return err
			}
		}
		if s.quirks.LoadStoreIncrementI {
			s.cpu.i += uint16(ins.x) + 1
		}

	case opLoadRegs:
		for reg := uint16(0); reg <= uint16(ins.x); reg++ {
			value, err := s.memory.readByte(s.cpu.i + reg)
			if err != nil {
				return err
			}
			s.cpu.v[reg] = value
		}
		if s.quirks.LoadStoreIncrementI {
			s.cpu.i += uint16(ins.x) + 1
		}
	}
	return nil
}

// draw XOR-blits the n byte sprite at memory[I] onto the display at
// (Vx, Vy) and records the collision flag in VF. Start coordinates wrap,
// overflowing sprite rows and columns wrap or clip per the quirk setting.
func (s *System) draw(ins instruction) error {
	if s.quirks.DisplayWait {
		if !s.timers.vblank {
			return errWaiting
		}
		s.timers.vblank = false
	}

	x := int(s.cpu.v[ins.x]) % DisplayWidth
	y := int(s.cpu.v[ins.y]) % DisplayHeight

	collision := false
	for row := 0; row < int(ins.n); row++ {
		data, err := s.memory.readByte(s.cpu.i + uint16(row))
		if err != nil {
			return err
		}
		if s.display.drawByte(x, y+row, data, s.quirks.ClipSprites) {
			collision = true
		}
	}
	s.setFlag(collision)
	return nil
}

// setFlag stores an arithmetic or collision flag in VF. Flags are written
// after the result register so that VF as destination keeps the flag.
func (s *System) setFlag(flag bool) {
	if flag {
		s.cpu.v[flagRegister] = 1
	} else {
		s.cpu.v[flagRegister] = 0
	}
}

// resetFlags clears VF after the bitwise instructions when the quirk
// is enabled.
func (s *System) resetFlags() {
	if s.quirks.ResetVF {
		s.cpu.v[flagRegister] = 0
	}
}
