// Package view holds the pan/zoom state that the pattern is sampled through.
package view

import "github.com/iburimskiy/triangles/internal/config"

// State is the pan offset and zoom factor. X and Y are unsigned and wrap
// on over/underflow, so panning past the origin lands on the far side of
// the 2^32 plane.
type State struct {
	X, Y uint32
	Zoom uint32
}

// New returns the initial state: no pan, zoom 1.
func New() State {
	return State{Zoom: 1}
}

// Scale returns the zoom factor, treating the zero value as 1.
func (s State) Scale() uint32 {
	if s.Zoom < 1 {
		return 1
	}
	return s.Zoom
}

// Pan moves the view by (dx, dy) with modular arithmetic.
func (s *State) Pan(dx, dy int32) {
	s.normalize()
	s.X += uint32(dx)
	s.Y += uint32(dy)
}

func (s *State) ZoomIn() {
	s.normalize()
	s.Zoom++
}

// ZoomOut is a no-op at zoom 1.
func (s *State) ZoomOut() {
	s.normalize()
	if s.Zoom > 1 {
		s.Zoom--
	}
}

// PanSpeed is the distance moved by one directional key press. It shrinks
// as the zoom grows and reaches 0 past zoom Width/2.
func (s State) PanSpeed() uint32 {
	return config.Width / s.Scale() / 2
}

func (s *State) PanLeft()  { s.Pan(-int32(s.PanSpeed()), 0) }
func (s *State) PanRight() { s.Pan(int32(s.PanSpeed()), 0) }
func (s *State) PanUp()    { s.Pan(0, -int32(s.PanSpeed())) }
func (s *State) PanDown()  { s.Pan(0, int32(s.PanSpeed())) }

func (s *State) normalize() {
	if s.Zoom < 1 {
		s.Zoom = 1
	}
}
