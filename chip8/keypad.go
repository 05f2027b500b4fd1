package chip8

// KeyCount is the number of keys on the CHIP-8 hex keypad, 0x0-0xF.
const KeyCount = 16

// keypad tracks the pressed state of all 16 keys. It is written by the
// host and read-only to the executing program.
type keypad struct {
	pressed [KeyCount]bool
}

// reset releases all keys.
func (k *keypad) reset() {
	k.pressed = [KeyCount]bool{}
}

func (k *keypad) set(key uint8, pressed bool) {
	k.pressed[key] = pressed
}

func (k *keypad) isPressed(key uint8) bool {
	return k.pressed[key]
}

// firstPressed returns the lowest-indexed pressed key, used by the
// key-wait instruction to latch a deterministic key when several are down.
func (k *keypad) firstPressed() (uint8, bool) {
	for key, pressed := range k.pressed {
		if pressed {
			return uint8(key), true
		}
	}
	return 0, false
}
