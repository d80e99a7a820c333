// Package ebiten integrates the Dear ImGui stats overlay with the Ebiten
// game engine.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/JMANN240/particula/particle"
	"github.com/JMANN240/particula/particle/debugui"
)

// Overlay owns the ImGui Ebiten backend plus a stats window for one
// particle system. Wire its Update, Draw, and Layout methods into the
// corresponding ebiten.Game methods.
type Overlay struct {
	backend *ebitenbackend.EbitenBackend
	stats   *debugui.StatsOverlay
	timer   *debugui.FrameTimer
}

// NewOverlay creates the backend window and a stats overlay keeping
// historyFrames of frame-time history.
func NewOverlay(title string, width, height, historyFrames int) *Overlay {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("") // Disable imgui.ini

	return &Overlay{
		backend: backend,
		stats:   debugui.NewStatsOverlay(historyFrames),
		timer:   debugui.NewFrameTimer(),
	}
}

// Update renders the stats window for sys. Call from ebiten.Game.Update
// after updating the system.
func (o *Overlay) Update(sys *particle.System) {
	o.backend.BeginFrame()
	o.stats.Render(sys, float32(o.timer.GetDeltaTime()))
	o.backend.EndFrame()
}

// Draw composites the overlay onto screen. Call from ebiten.Game.Draw
// after drawing the game content.
func (o *Overlay) Draw(screen *ebiten.Image) {
	o.backend.Draw(screen)
}

// Layout forwards Ebiten's layout to the backend.
func (o *Overlay) Layout(outsideWidth, outsideHeight int) (int, int) {
	o.backend.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
