// Package game hosts the pattern in an ebiten window: it decodes key
// presses into view changes and blits a freshly rendered frame each draw.
package game

import (
	"log"
	"runtime"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/triangles/internal/config"
	"github.com/iburimskiy/triangles/internal/pattern"
	"github.com/iburimskiy/triangles/internal/sound"
	"github.com/iburimskiy/triangles/internal/view"
)

type Game struct {
	state    view.State
	frames   pattern.FrameCounter
	renderer pattern.Renderer
	pix      []byte

	keys []ebiten.Key

	player  *sound.Player
	showHUD bool
	started time.Time
}

// New builds a game at the initial view. Audio is optional; when the
// speaker cannot be opened the game runs silently.
func New() *Game {
	g := &Game{
		state:    view.New(),
		renderer: pattern.Renderer{Workers: runtime.NumCPU()},
		pix:      make([]byte, config.BufferSize),
		started:  time.Now(),
	}

	player, err := sound.New(config.SampleRate)
	if err != nil {
		// Non-fatal, the pattern doesn't need sound
		log.Printf("Audio initialization failed: %v", err)
	}
	g.player = player

	return g
}

// State returns the current view.
func (g *Game) State() view.State { return g.state }

func (g *Game) Update() error {
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		a := actionFor(k)
		if a == ActionQuit {
			g.player.Close()
			return ebiten.Termination
		}
		g.handle(a)
	}
	return nil
}

func (g *Game) handle(a Action) {
	switch a {
	case ActionNone:
		return
	case ActionToggleHUD:
		g.showHUD = !g.showHUD
		return
	}
	if Apply(a, &g.state) {
		g.player.Play(blipPitch(a, g.state))
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Render(g.pix, g.state, &g.frames)
	screen.WritePixels(g.pix)

	if g.showHUD {
		text := hudText(g.state, g.frames.Value(), ebiten.ActualTPS(), ebiten.ActualFPS(), time.Since(g.started))
		ebitenutil.DebugPrintAt(screen, text, config.HUDX, config.HUDY)
	}
}

// Layout pins the logical screen; ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.Width, config.Height
}
