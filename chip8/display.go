package chip8

// Display dimensions in pixels.
const (
	DisplayWidth  = 64
	DisplayHeight = 32

	pixelCount = DisplayWidth * DisplayHeight
)

// RGB represents a color with 8 bits per channel.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// Default colors used for the RGB8 snapshot.
var (
	DefaultForeground = RGB{R: 255, G: 255, B: 255}
	DefaultBackground = RGB{}
)

// display is the monochrome 64x32 framebuffer. Pixels are stored row-major
// and are mutated only by the sprite draw and clear screen instructions.
type display struct {
	pixels     [pixelCount]bool
	foreground RGB
	background RGB
}

// clear switches all pixels off.
func (d *display) clear() {
	d.pixels = [pixelCount]bool{}
}

// pixel returns whether the pixel at the given coordinates is on.
// Coordinates outside of the display are off.
func (d *display) pixel(x, y int) bool {
	if x < 0 || x >= DisplayWidth || y < 0 || y >= DisplayHeight {
		return false
	}
	return d.pixels[y*DisplayWidth+x]
}

// drawByte XOR-blits one 8 pixel wide sprite row at the given coordinates
// and reports whether any pixel was flipped from on to off. The x
// coordinate must already be normalized to the display width. Depending on
// clip, pixels beyond the display edges either wrap around or are dropped.
func (d *display) drawByte(x, y int, data byte, clip bool) bool {
	if clip {
		if y >= DisplayHeight {
			return false
		}
	} else {
		y %= DisplayHeight
	}

	collision := false
	for bit := 0; bit < 8; bit++ {
		if data&(0x80>>bit) == 0 {
			continue
		}
		px := x + bit
		if px >= DisplayWidth {
			if clip {
				continue
			}
			px %= DisplayWidth
		}
		pos := y*DisplayWidth + px
		if d.pixels[pos] {
			collision = true
		}
		d.pixels[pos] = !d.pixels[pos]
	}
	return collision
}

// snapshot returns a copy of the framebuffer, row-major.
func (d *display) snapshot() [pixelCount]bool {
	return d.pixels
}

// rgb8 renders the framebuffer as a flat array of 8 bit RGB values using
// the configured foreground and background colors.
func (d *display) rgb8() []byte {
	data := make([]byte, pixelCount*3)
	for i, on := range d.pixels {
		color := d.background
		if on {
			color = d.foreground
		}
		offset := i * 3
		data[offset] = color.R
		data[offset+1] = color.G
		data[offset+2] = color.B
	}
	return data
}
