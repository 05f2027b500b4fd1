package chip8

// Quirks selects between historically divergent interpreter behaviors.
// Different original interpreters disagreed on these instruction details
// and real ROMs depend on either variant, so each is an explicit flag
// instead of a hardcoded choice.
type Quirks struct {
	// ShiftSourceY makes 8xy6/8xyE copy Vy into Vx before shifting, like
	// the original COSMAC VIP interpreter. When off, Vx is shifted in place.
	ShiftSourceY bool

	// LoadStoreIncrementI makes Fx55/Fx65 leave I pointing past the last
	// register slot (I + x + 1). When off, I is unchanged.
	LoadStoreIncrementI bool

	// JumpOffsetVX makes Bnnn jump to nnn + Vx (where x is the high nibble
	// of nnn) instead of nnn + V0.
	JumpOffsetVX bool

	// ResetVF makes 8xy1/8xy2/8xy3 clear the flags register as a side
	// effect, matching the COSMAC VIP.
	ResetVF bool

	// ClipSprites drops sprite pixels beyond the display edges instead of
	// wrapping them around. Sprite start coordinates always wrap.
	ClipSprites bool

	// DisplayWait makes Dxyn wait for the next timer tick before drawing,
	// limiting draws to one per frame like the original hardware. The wait
	// is expressed as a non-advancing program counter.
	DisplayWait bool
}

// DefaultQuirks returns the quirk configuration of the COSMAC VIP
// interpreter, the most common baseline for CHIP-8 ROMs.
func DefaultQuirks() Quirks {
	return Quirks{
		LoadStoreIncrementI: true,
		ResetVF:             true,
	}
}
