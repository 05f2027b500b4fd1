package chip8

// CHIP-8 memory layout constants.
//
// CHIP-8 memory map (4KB total):
//
//	0x000-0x1FF: interpreter reserved region holding the font sprites
//	0x200-0xFFF: user program space (3584 bytes)
const (
	// ProgramStart is the memory address where CHIP-8 programs begin execution.
	ProgramStart = 0x200

	// MaxAddress is the highest valid address in CHIP-8 memory space.
	MaxAddress = 0xFFF

	memorySize   = 4096
	programSpace = memorySize - ProgramStart

	// fontAddress is where the built-in font sprites are stored, each
	// hexadecimal digit glyph is 5 bytes tall.
	fontAddress = 0x000
	glyphSize   = 5
)

// font contains the built-in sprites for the hexadecimal digits 0-F,
// 8 pixels wide and 5 pixels tall each.
var font = [16 * glyphSize]byte{
	0xF0, 0x90, 0x90, 0x90, 0xF0, // 0
	0x20, 0x60, 0x20, 0x20, 0x70, // 1
	0xF0, 0x10, 0xF0, 0x80, 0xF0, // 2
	0xF0, 0x10, 0xF0, 0x10, 0xF0, // 3
	0x90, 0x90, 0xF0, 0x10, 0x10, // 4
	0xF0, 0x80, 0xF0, 0x10, 0xF0, // 5
	0xF0, 0x80, 0xF0, 0x90, 0xF0, // 6
	0xF0, 0x10, 0x20, 0x40, 0x40, // 7
	0xF0, 0x90, 0xF0, 0x90, 0xF0, // 8
	0xF0, 0x90, 0xF0, 0x10, 0xF0, // 9
	0xF0, 0x90, 0xF0, 0x90, 0x90, // A
	0xE0, 0x90, 0xE0, 0x90, 0xE0, // B
	0xF0, 0x80, 0x80, 0x80, 0xF0, // C
	0xE0, 0x90, 0x90, 0x90, 0xE0, // D
	0xF0, 0x80, 0xF0, 0x80, 0xF0, // E
	0xF0, 0x80, 0xF0, 0x80, 0x80, // F
}

// memory is the flat 4KB address space of the machine.
type memory struct {
	data [memorySize]byte
}

// reset clears all memory and copies the font sprites into the reserved
// low region.
func (m *memory) reset() {
	m.data = [memorySize]byte{}
	copy(m.data[fontAddress:], font[:])
}

// loadROM resets the memory and copies the ROM bytes into the program
// space starting at ProgramStart.
func (m *memory) loadROM(rom []byte) error {
	if len(rom) > programSpace {
		return CapacityError{Size: len(rom)}
	}
	m.reset()
	copy(m.data[ProgramStart:], rom)
	return nil
}

// readByte returns the byte at the given address, out of range addresses
// are an error instead of wrapping silently.
func (m *memory) readByte(address uint16) (byte, error) {
	if address > MaxAddress {
		return 0, AddressError{Address: address}
	}
	return m.data[address], nil
}

// writeByte stores a byte at the given address, bounds-checked like readByte.
func (m *memory) writeByte(address uint16, value byte) error {
	if address > MaxAddress {
		return AddressError{Address: address}
	}
	m.data[address] = value
	return nil
}
