// Package debugui provides an immediate-mode Dear ImGui overlay for
// inspecting a live particle system: population counters, spawn and cull
// totals, and a frame-time history graph.
package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/JMANN240/particula/particle"
)

// StatsOverlay renders a Dear ImGui window with live System statistics.
type StatsOverlay struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

// NewStatsOverlay creates an overlay keeping historyFrames of frame-time
// history for the graph. Values below 1 are clamped to 1.
func NewStatsOverlay(historyFrames int) *StatsOverlay {
	if historyFrames < 1 {
		historyFrames = 1
	}
	return &StatsOverlay{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
	}
}

// Render draws the stats window for sys. Call once per frame between the
// ImGui backend's BeginFrame and EndFrame.
func (o *StatsOverlay) Render(sys *particle.System, deltaTime float32) {
	if !imgui.BeginV("Particle Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	o.frameHistory[o.frameIndex] = deltaTime * 1000.0
	o.frameIndex = (o.frameIndex + 1) % o.historyFrames

	stats := sys.CollectStats()

	imgui.Text(fmt.Sprintf("Particles: %d", stats.ParticleCount))
	imgui.Text(fmt.Sprintf("Emitters: %d", stats.EmitterCount))
	imgui.Text(fmt.Sprintf("Spawned: %d", stats.TotalEmitted))
	imgui.Text(fmt.Sprintf("Culled: %d particles, %d emitters",
		stats.TotalParticlesCulled, stats.TotalEmittersCulled))

	var avgFrameTime float32
	for _, ft := range o.frameHistory {
		avgFrameTime += ft
	}
	avgFrameTime /= float32(o.historyFrames)

	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &o.frameHistory[0], int32(len(o.frameHistory)))

	if imgui.TreeNodeStr("Update Timings") {
		imgui.BulletText(fmt.Sprintf("Updates: %d", stats.UpdateCount))
		imgui.BulletText(fmt.Sprintf("Last: %s", stats.LastUpdate))
		imgui.BulletText(fmt.Sprintf("Avg: %s", stats.AvgUpdate))
		imgui.BulletText(fmt.Sprintf("Min: %s", stats.MinUpdate))
		imgui.BulletText(fmt.Sprintf("Max: %s", stats.MaxUpdate))
		imgui.TreePop()
	}

	imgui.End()
}

// FrameTimer measures the wall-clock delta between frames, the per-frame
// time source a windowed loop feeds into System.Update.
type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) GetDeltaTime() float64 {
	now := time.Now()
	delta := now.Sub(ft.lastFrameTime).Seconds()
	ft.lastFrameTime = now
	return delta
}
