package view

import (
	"testing"

	"github.com/iburimskiy/triangles/internal/config"
)

func TestNew(t *testing.T) {
	s := New()
	if s.X != 0 || s.Y != 0 || s.Zoom != 1 {
		t.Errorf("Expected {0 0 1}, got %+v", s)
	}
}

func TestZoomClamp(t *testing.T) {
	s := New()
	for i := 0; i < 3; i++ {
		s.ZoomIn()
	}
	if s.Zoom != 4 {
		t.Fatalf("Expected zoom 4 after three zoom-ins, got %d", s.Zoom)
	}
	for i := 0; i < 10; i++ {
		s.ZoomOut()
		if s.Zoom < 1 {
			t.Fatalf("Zoom dropped below 1: %d", s.Zoom)
		}
	}
	if s.Zoom != 1 {
		t.Errorf("Expected zoom clamped at 1, got %d", s.Zoom)
	}
}

func TestPanSpeed(t *testing.T) {
	tests := []struct {
		zoom     uint32
		expected uint32
	}{
		{1, 256},
		{2, 128},
		{3, 85},
		{7, 36},
		{256, 1},
		{257, 0},
		{1000, 0},
	}

	for _, tt := range tests {
		s := State{Zoom: tt.zoom}
		if got := s.PanSpeed(); got != tt.expected {
			t.Errorf("zoom %d: expected speed %d, got %d", tt.zoom, tt.expected, got)
		}
		if got := s.PanSpeed(); got != config.Width/tt.zoom/2 {
			t.Errorf("zoom %d: speed %d does not match Width/zoom/2", tt.zoom, got)
		}
	}
}

func TestPanWraps(t *testing.T) {
	tests := []struct {
		name     string
		start    State
		move     func(*State)
		expected State
	}{
		{
			name:     "Left from origin wraps",
			start:    New(),
			move:     (*State).PanLeft,
			expected: State{X: 0xFFFFFF00, Zoom: 1},
		},
		{
			name:     "Left from 100 wraps",
			start:    State{X: 100, Zoom: 1},
			move:     (*State).PanLeft,
			expected: State{X: 4294967140, Zoom: 1},
		},
		{
			name:     "Right past max wraps",
			start:    State{X: 0xFFFFFFFF, Zoom: 1},
			move:     (*State).PanRight,
			expected: State{X: 255, Zoom: 1},
		},
		{
			name:     "Up at zoom 2",
			start:    State{Y: 1000, Zoom: 2},
			move:     (*State).PanUp,
			expected: State{Y: 872, Zoom: 2},
		},
		{
			name:     "Down at zoom 4",
			start:    State{Zoom: 4},
			move:     (*State).PanDown,
			expected: State{Y: 64, Zoom: 4},
		},
		{
			name:     "Deep zoom does not move",
			start:    State{X: 5, Zoom: 600},
			move:     (*State).PanLeft,
			expected: State{X: 5, Zoom: 600},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.start
			tt.move(&s)
			if s != tt.expected {
				t.Errorf("Expected %+v, got %+v", tt.expected, s)
			}
		})
	}
}

func TestZeroValueNormalized(t *testing.T) {
	var s State
	if s.PanSpeed() != 256 {
		t.Errorf("Expected zero value to pan like zoom 1, got %d", s.PanSpeed())
	}
	s.ZoomOut()
	if s.Zoom != 1 {
		t.Errorf("Expected zoom 1 after ZoomOut on zero value, got %d", s.Zoom)
	}
}
