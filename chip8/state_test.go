package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestSaveRestoreRoundTrip(t *testing.T) {
	sys := newTestSystem(t, DefaultQuirks(),
		0x60, 0x42, // ld V0, $42
		0xA3, 0x00, // ld I, $300
		0x22, 0x08, // call $208
		0x00, 0x00,
		0x63, 0x05, // $208: ld V3, $05
		0xF3, 0x18, // ld ST, V3
		0xF0, 0x29, // ld F, V0
		0x6A, 0x00, // ld VA, $00
		0xDA, 0xA5, // drw VA, VA, $5
		0x12, 0x00, // jp $200
	)
	steps(t, sys, 8)
	assert.NoError(t, sys.SetKey(5, true))

	data, err := sys.SaveState()
	assert.NoError(t, err)

	// mutate the machine, then restore the snapshot
	restored := New(DefaultOptions())
	assert.NoError(t, restored.Load([]byte{0x00, 0xE0}))
	assert.NoError(t, restored.RestoreState(data))

	assert.Equal(t, sys.cpu.v, restored.cpu.v)
	assert.Equal(t, sys.cpu.i, restored.cpu.i)
	assert.Equal(t, sys.cpu.pc, restored.cpu.pc)
	assert.Equal(t, sys.cpu.sp, restored.cpu.sp)
	assert.Equal(t, sys.cpu.stack, restored.cpu.stack)
	assert.Equal(t, sys.memory.data, restored.memory.data)
	assert.Equal(t, sys.display.pixels, restored.display.pixels)
	assert.Equal(t, sys.SoundTimer(), restored.SoundTimer())
	assert.Equal(t, sys.quirks, restored.quirks)

	pressed, err := restored.Key(5)
	assert.NoError(t, err)
	assert.True(t, pressed)

	// both machines continue identically
	assert.NoError(t, sys.Step())
	assert.NoError(t, restored.Step())
	assert.Equal(t, sys.cpu.pc, restored.cpu.pc)
	assert.Equal(t, sys.display.pixels, restored.display.pixels)
}

func TestSaveStateHalted(t *testing.T) {
	sys := newTestSystem(t, DefaultQuirks(), 0x00, 0x00)
	assert.Error(t, sys.Step())

	_, err := sys.SaveState()
	assert.Error(t, err)
}

func TestRestoreStateInvalid(t *testing.T) {
	sys := New(DefaultOptions())

	tests := []struct {
		name string
		data string
	}{
		{"not json", "garbage"},
		{"wrong memory size", `{"memory":"AAAA","pixels":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, sys.RestoreState([]byte(tt.data)))
		})
	}
}
