package game

import (
	"fmt"
	"math"
	"time"

	"github.com/iburimskiy/triangles/internal/config"
	"github.com/iburimskiy/triangles/internal/view"
)

// blipPitch picks the feedback frequency for an applied action. Zoom in
// climbs a semitone per level, zoom out mirrors it below the base pitch.
func blipPitch(a Action, st view.State) float64 {
	switch a {
	case ActionZoomIn:
		p := config.ZoomBasePitch * math.Pow(config.ZoomStepRatio, float64(st.Scale()-1))
		return math.Min(p, config.MaxZoomPitch)
	case ActionZoomOut:
		return config.ZoomBasePitch / math.Pow(config.ZoomStepRatio, float64(st.Scale()))
	}
	return config.PanPitch
}

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

func hudText(st view.State, frame uint32, tps, fps float64, elapsed time.Duration) string {
	return fmt.Sprintf(
		"x: %d  y: %d\nzoom: %d  speed: %d\nframe: %d\nTPS: %0.1f  FPS: %0.1f\n%s",
		st.X, st.Y,
		st.Scale(), st.PanSpeed(),
		frame,
		tps, fps,
		formatDuration(elapsed),
	)
}
