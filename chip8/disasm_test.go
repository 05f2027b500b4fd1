package chip8

import (
	"testing"

	chip8cpu "github.com/retroenv/retrogolib/arch/cpu/chip8"
	"github.com/retroenv/retrogolib/assert"
)

func TestDisassemble(t *testing.T) {
	tests := []struct {
		opcode uint16
		name   string
		params string
	}{
		{0x00E0, chip8cpu.ClsInst.Name, ""},
		{0x00EE, chip8cpu.RetInst.Name, ""},
		{0x1234, chip8cpu.JpInst.Name, "$234"},
		{0x2345, chip8cpu.CallInst.Name, "$345"},
		{0x3A42, chip8cpu.SeInst.Name, "VA, $42"},
		{0x4B10, chip8cpu.SneInst.Name, "VB, $10"},
		{0x5120, chip8cpu.SeInst.Name, "V1, V2"},
		{0x6C0F, chip8cpu.LdInst.Name, "VC, $0F"},
		{0x7D01, chip8cpu.AddInst.Name, "VD, $01"},
		{0x8120, chip8cpu.LdInst.Name, "V1, V2"},
		{0x8121, chip8cpu.OrInst.Name, "V1, V2"},
		{0x8122, chip8cpu.AndInst.Name, "V1, V2"},
		{0x8123, chip8cpu.XorInst.Name, "V1, V2"},
		{0x8124, chip8cpu.AddInst.Name, "V1, V2"},
		{0x8125, chip8cpu.SubInst.Name, "V1, V2"},
		{0x8126, chip8cpu.ShrInst.Name, "V1"},
		{0x8127, chip8cpu.SubnInst.Name, "V1, V2"},
		{0x812E, chip8cpu.ShlInst.Name, "V1"},
		{0x9120, chip8cpu.SneInst.Name, "V1, V2"},
		{0xA123, chip8cpu.LdInst.Name, "I, $123"},
		{0xB123, chip8cpu.JpInst.Name, "V0, $123"},
		{0xC142, chip8cpu.RndInst.Name, "V1, $42"},
		{0xD125, chip8cpu.DrwInst.Name, "V1, V2, $5"},
		{0xE19E, chip8cpu.SkpInst.Name, "V1"},
		{0xE1A1, chip8cpu.SknpInst.Name, "V1"},
		{0xF107, chip8cpu.LdInst.Name, "V1, DT"},
		{0xF10A, chip8cpu.LdInst.Name, "V1, K"},
		{0xF115, chip8cpu.LdInst.Name, "DT, V1"},
		{0xF118, chip8cpu.LdInst.Name, "ST, V1"},
		{0xF11E, chip8cpu.AddInst.Name, "I, V1"},
		{0xF129, chip8cpu.LdInst.Name, "F, V1"},
		{0xF133, chip8cpu.LdInst.Name, "B, V1"},
		{0xF155, chip8cpu.LdInst.Name, "[I], V1"},
		{0xF165, chip8cpu.LdInst.Name, "V1, [I]"},
	}

	for _, tt := range tests {
		want := tt.name
		if tt.params != "" {
			want += " " + tt.params
		}
		assert.Equal(t, want, Disassemble(tt.opcode), "opcode $%04X", tt.opcode)
	}
}

func TestDisassembleUnknown(t *testing.T) {
	assert.Equal(t, ".byte $FF, $FF", Disassemble(0xFFFF))
}

func TestLookupOpcode(t *testing.T) {
	op, ok := lookupOpcode(0x1234)
	assert.True(t, ok)
	assert.NotNil(t, op.Instruction)
	assert.Equal(t, chip8cpu.JpInst.Name, op.Instruction.Name)

	_, ok = lookupOpcode(0xFFFF)
	assert.False(t, ok)
}
