package chip8

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		opcode uint16
		want   instruction
	}{
		{0x00E0, instruction{op: opCls, y: 0xE, nn: 0xE0, nnn: 0x0E0}},
		{0x00EE, instruction{op: opRet, y: 0xE, n: 0xE, nn: 0xEE, nnn: 0x0EE}},
		{0x1234, instruction{op: opJp, x: 2, y: 3, n: 4, nn: 0x34, nnn: 0x234}},
		{0x2345, instruction{op: opCall, x: 3, y: 4, n: 5, nn: 0x45, nnn: 0x345}},
		{0x3A42, instruction{op: opSeByte, x: 0xA, y: 4, n: 2, nn: 0x42, nnn: 0xA42}},
		{0x4B10, instruction{op: opSneByte, x: 0xB, y: 1, nn: 0x10, nnn: 0xB10}},
		{0x5120, instruction{op: opSeReg, x: 1, y: 2, nn: 0x20, nnn: 0x120}},
		{0x6C0F, instruction{op: opLdByte, x: 0xC, n: 0xF, nn: 0x0F, nnn: 0xC0F}},
		{0x7D01, instruction{op: opAddByte, x: 0xD, n: 1, nn: 0x01, nnn: 0xD01}},
		{0x8120, instruction{op: opLdReg, x: 1, y: 2, nn: 0x20, nnn: 0x120}},
		{0x8121, instruction{op: opOr, x: 1, y: 2, n: 1, nn: 0x21, nnn: 0x121}},
		{0x8122, instruction{op: opAnd, x: 1, y: 2, n: 2, nn: 0x22, nnn: 0x122}},
		{0x8123, instruction{op: opXor, x: 1, y: 2, n: 3, nn: 0x23, nnn: 0x123}},
		{0x8124, instruction{op: opAddReg, x: 1, y: 2, n: 4, nn: 0x24, nnn: 0x124}},
		{0x8125, instruction{op: opSub, x: 1, y: 2, n: 5, nn: 0x25, nnn: 0x125}},
		{0x8126, instruction{op: opShr, x: 1, y: 2, n: 6, nn: 0x26, nnn: 0x126}},
		{0x8127, instruction{op: opSubn, x: 1, y: 2, n: 7, nn: 0x27, nnn: 0x127}},
		{0x812E, instruction{op: opShl, x: 1, y: 2, n: 0xE, nn: 0x2E, nnn: 0x12E}},
		{0x9120, instruction{op: opSneReg, x: 1, y: 2, nn: 0x20, nnn: 0x120}},
		{0xA123, instruction{op: opLdI, x: 1, y: 2, n: 3, nn: 0x23, nnn: 0x123}},
		{0xB123, instruction{op: opJpOffset, x: 1, y: 2, n: 3, nn: 0x23, nnn: 0x123}},
		{0xC142, instruction{op: opRnd, x: 1, y: 4, n: 2, nn: 0x42, nnn: 0x142}},
		{0xD125, instruction{op: opDrw, x: 1, y: 2, n: 5, nn: 0x25, nnn: 0x125}},
		{0xE19E, instruction{op: opSkp, x: 1, y: 9, n: 0xE, nn: 0x9E, nnn: 0x19E}},
		{0xE1A1, instruction{op: opSknp, x: 1, y: 0xA, n: 1, nn: 0xA1, nnn: 0x1A1}},
		{0xF107, instruction{op: opLdFromDelay, x: 1, n: 7, nn: 0x07, nnn: 0x107}},
		{0xF10A, instruction{op: opLdKey, x: 1, n: 0xA, nn: 0x0A, nnn: 0x10A}},
		{0xF115, instruction{op: opLdToDelay, x: 1, y: 1, n: 5, nn: 0x15, nnn: 0x115}},
		{0xF118, instruction{op: opLdToSound, x: 1, y: 1, n: 8, nn: 0x18, nnn: 0x118}},
		{0xF11E, instruction{op: opAddI, x: 1, y: 1, n: 0xE, nn: 0x1E, nnn: 0x11E}},
		{0xF129, instruction{op: opLdFont, x: 1, y: 2, n: 9, nn: 0x29, nnn: 0x129}},
		{0xF133, instruction{op: opBCD, x: 1, y: 3, n: 3, nn: 0x33, nnn: 0x133}},
		{0xF155, instruction{op: opStoreRegs, x: 1, y: 5, n: 5, nn: 0x55, nnn: 0x155}},
		{0xF165, instruction{op: opLoadRegs, x: 1, y: 6, n: 5, nn: 0x65, nnn: 0x165}},
	}

	for _, tt := range tests {
		ins, err := decode(tt.opcode)
		assert.NoError(t, err, "opcode $%04X", tt.opcode)
		assert.Equal(t, tt.want, ins, "opcode $%04X", tt.opcode)
	}
}

func TestDecodeIllegal(t *testing.T) {
	opcodes := []uint16{
		0x0000, // no instruction
		0x0123, // sys call, not supported
		0x00E1,
		0x5121, // 5xy0 with nonzero low nibble
		0x8128, // no 8xy8
		0x812F,
		0x9121, // 9xy0 with nonzero low nibble
		0xE19F,
		0xE1A0,
		0xF100,
		0xF166,
		0xFFFF,
	}

	for _, opcode := range opcodes {
		_, err := decode(opcode)
		assert.Error(t, err, "opcode $%04X", opcode)

		var opErr OpcodeError
		assert.True(t, errors.As(err, &opErr))
		assert.Equal(t, opcode, opErr.Opcode)
	}
}
