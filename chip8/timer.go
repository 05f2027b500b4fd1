package chip8

// timers holds the delay and sound timers. Both are 8 bit counters that
// decrement towards zero, driven by an external fixed-rate tick. The core
// imposes no wall-clock timing itself.
type timers struct {
	delay uint8
	sound uint8

	// vblank is set by each tick and consumed by the sprite draw
	// instruction when the display wait quirk is enabled.
	vblank bool
}

// reset zeroes both timers and clears the vblank flag.
func (t *timers) reset() {
	t.delay = 0
	t.sound = 0
	t.vblank = false
}

// tick decrements both timers by one if they are nonzero. Conventionally
// called at 60 Hz by the host clock driver.
func (t *timers) tick() {
	if t.delay > 0 {
		t.delay--
	}
	if t.sound > 0 {
		t.sound--
	}
	t.vblank = true
}

// soundActive reports whether the host should play a tone.
func (t *timers) soundActive() bool {
	return t.sound > 0
}
