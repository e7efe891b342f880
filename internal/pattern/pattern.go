// Package pattern computes the animated XOR/tangent pattern into an RGBA
// byte buffer.
package pattern

import (
	"encoding/binary"
	"math"

	"github.com/iburimskiy/triangles/internal/config"
	"github.com/iburimskiy/triangles/internal/view"
)

const opaque = 0xFF000000

// FrameCounter drives the animation. It is owned by the render loop and
// advanced once per rendered frame.
type FrameCounter struct {
	n uint32
}

func (c *FrameCounter) Value() uint32 { return c.n }

// Advance wraps at 2^32.
func (c *FrameCounter) Advance() { c.n++ }

// Pixel returns the color of the cell at (col, row) for frame f. The top
// byte is forced on before the final mix, so it is not guaranteed to be
// 0xFF in the result.
func Pixel(col, row uint32, st view.State, f uint32) uint32 {
	base, s := mix(col, row, st, f)
	return base ^ ((base << s) * 2)
}

// mix returns the pre-mix color and the shift amount for a cell.
func mix(col, row uint32, st view.State, f uint32) (base, s uint32) {
	zoom := st.Scale()
	x := (col + st.X) / zoom
	y := (row + st.Y) / zoom
	base = (f + (x ^ y)) | opaque
	s = shift(x | y)
	return base, s
}

// shift derives the shift amount from tan(v). The float result saturates
// into the uint32 range (NaN and negatives give 0) and is then taken
// modulo 32.
func shift(v uint32) uint32 {
	t := float32(math.Tan(float64(float32(v))))
	return saturate(t) & 31
}

func saturate(t float32) uint32 {
	switch {
	case math.IsNaN(float64(t)), t <= 0:
		return 0
	case t >= math.MaxUint32:
		return math.MaxUint32
	}
	return uint32(t)
}

// Render fills every complete 4-byte chunk of buf for the frame held by fc
// and then advances fc by one. Pixels are stored big-endian, row-major
// from the top-left corner.
func Render(buf []byte, st view.State, fc *FrameCounter) {
	f := fc.Value()
	fill(buf, 0, st, f)
	fc.Advance()
}

// fill writes buf as the run of pixels starting at linear index first.
func fill(buf []byte, first uint32, st view.State, f uint32) {
	n := len(buf) / config.BytesPerPixel
	for k := 0; k < n; k++ {
		i := first + uint32(k)
		p := Pixel(i%config.Width, i/config.Width, st, f)
		binary.BigEndian.PutUint32(buf[k*config.BytesPerPixel:], p)
	}
}
