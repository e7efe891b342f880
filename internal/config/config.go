package config

import "time"

const (
	// Logical framebuffer size. The window may be resized; these never change.
	Width  = 512
	Height = 512

	BytesPerPixel = 4
	BufferSize    = Width * Height * BytesPerPixel

	WindowTitle = "Triangles"
	LogPrefix   = "triangles: "

	// HUD placement
	HUDX = 8
	HUDY = 8

	// Audio feedback
	SampleRate    = 44100
	AudioBuffer   = time.Second / 20
	BlipDuration  = 40 * time.Millisecond
	BlipVolume    = -1.5 // beep effects.Volume exponent, base 2
	PanPitch      = 330.0
	ZoomBasePitch = 440.0
	ZoomStepRatio = 1.0594630943592953 // one semitone per zoom level
	MaxZoomPitch  = 3520.0
)
