// Package viewer renders the objective landscape and the current population
// in a raylib window. It implements the optimizer's reporting hook; headless
// runs never touch it.
package viewer

import (
	"fmt"
	"image/color"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/petri/config"
	"github.com/pthm-cable/petri/evolve"
	"github.com/pthm-cable/petri/objective"
)

// Viewer draws the landscape heatmap once and overlays each reported
// population on top of it.
type Viewer struct {
	width    int32
	height   int32
	gridSize int
	bound    float64

	texture rl.Texture2D
	minPt   evolve.Point
	cam     *Camera

	generation int
	paused     bool
}

// New opens the window and rasterizes the landscape. Call Close when done.
func New(cfg config.ViewerConfig, objf evolve.Objective, bound float64) (*Viewer, error) {
	v := &Viewer{
		width:      int32(cfg.Width),
		height:     int32(cfg.Height),
		gridSize:   cfg.GridSize,
		bound:      bound,
		cam:        NewCamera(cfg.Width, cfg.Height, bound),
		generation: -1,
	}

	rl.InitWindow(v.width, v.height, "petri")
	rl.SetTargetFPS(int32(cfg.TargetFPS))

	pixels, err := rasterize(objf, bound, v.gridSize)
	if err != nil {
		rl.CloseWindow()
		return nil, fmt.Errorf("rasterizing landscape: %w", err)
	}

	img := rl.GenImageColor(v.gridSize, v.gridSize, rl.Black)
	v.texture = rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	rl.UpdateTexture(v.texture, pixels)

	// Approximate global minimum, marked so convergence is easy to judge.
	minPt, _, err := objective.GridMin(objf, bound, v.gridSize)
	if err != nil {
		rl.UnloadTexture(v.texture)
		rl.CloseWindow()
		return nil, fmt.Errorf("locating landscape minimum: %w", err)
	}
	v.minPt = minPt

	return v, nil
}

// rasterize samples the objective on a grid and maps values to a blue-to-red
// color ramp (blue = low = good).
func rasterize(objf evolve.Objective, bound float64, size int) ([]color.RGBA, error) {
	pts := make([]evolve.Point, 0, size*size)
	cell := bound / float64(size)
	for iy := 0; iy < size; iy++ {
		for ix := 0; ix < size; ix++ {
			pts = append(pts, evolve.Point{
				X: (float64(ix) + 0.5) * cell,
				Y: (float64(iy) + 0.5) * cell,
			})
		}
	}

	fvals, err := objf.Evaluate(pts)
	if err != nil {
		return nil, err
	}

	minVal, maxVal := fvals[0], fvals[0]
	for _, f := range fvals {
		if f < minVal {
			minVal = f
		}
		if f > maxVal {
			maxVal = f
		}
	}
	span := maxVal - minVal
	if span == 0 {
		span = 1
	}

	pixels := make([]color.RGBA, len(fvals))
	for i, f := range fvals {
		pixels[i] = rampColor((f - minVal) / span)
	}
	return pixels, nil
}

// rampColor maps t in [0,1] through blue → white → red.
func rampColor(t float64) color.RGBA {
	lerp := func(a, b float64, t float64) uint8 {
		return uint8(a + (b-a)*t)
	}
	if t < 0.5 {
		s := t * 2
		return color.RGBA{R: lerp(60, 245, s), G: lerp(80, 245, s), B: lerp(200, 245, s), A: 255}
	}
	s := (t - 0.5) * 2
	return color.RGBA{R: lerp(245, 200, s), G: lerp(245, 60, s), B: lerp(245, 50, s), A: 255}
}

// Report draws the population over the landscape. While paused it keeps
// redrawing the same generation until resumed or the window is closed. It
// matches the optimizer's Reporter hook.
func (v *Viewer) Report(pop evolve.Population, bound float64) {
	v.generation++
	for {
		if rl.WindowShouldClose() {
			return
		}
		v.handleInput()
		v.drawFrame(pop)
		if !v.paused {
			return
		}
	}
}

// handleInput applies mouse wheel zoom (anchored at the cursor), right-drag
// pan, and R to reset the view.
func (v *Viewer) handleInput() {
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		pos := rl.GetMousePosition()
		v.cam.ZoomBy(1+0.1*float64(wheel), float64(pos.X), float64(pos.Y))
	}
	if rl.IsMouseButtonDown(rl.MouseButtonRight) {
		delta := rl.GetMouseDelta()
		v.cam.Pan(float64(delta.X), float64(delta.Y))
	}
	if rl.IsKeyPressed(rl.KeyR) {
		v.cam.Reset()
	}
}

func (v *Viewer) drawFrame(pop evolve.Population) {
	rl.BeginDrawing()
	rl.ClearBackground(rl.RayWhite)

	// Only the camera's visible square of the heatmap is stretched over the
	// viewport.
	minX, minY, size := v.cam.Visible()
	texScale := float64(v.gridSize) / v.bound
	rl.DrawTexturePro(
		v.texture,
		rl.Rectangle{
			X:      float32(minX * texScale),
			Y:      float32(minY * texScale),
			Width:  float32(size * texScale),
			Height: float32(size * texScale),
		},
		rl.Rectangle{X: 0, Y: 0, Width: float32(v.width), Height: float32(v.height)},
		rl.Vector2{X: 0, Y: 0},
		0,
		rl.White,
	)

	// Landscape minimum marker
	mx, my := v.toScreen(v.minPt)
	rl.DrawCircle(mx, my, 7, rl.Gold)
	rl.DrawCircleLines(mx, my, 7, rl.DarkGray)

	// Current population
	for _, p := range pop {
		sx, sy := v.toScreen(p)
		rl.DrawCircle(sx, sy, 3, rl.Red)
	}

	rl.DrawText(fmt.Sprintf("Generation %d  |  Population %d  |  Zoom %.1fx", v.generation, len(pop), v.cam.Zoom), 10, 10, 18, rl.DarkGray)

	label := "Pause"
	if v.paused {
		label = "Resume"
	}
	if gui.Button(rl.Rectangle{X: float32(v.width) - 90, Y: 10, Width: 80, Height: 26}, label) {
		v.paused = !v.paused
	}

	rl.EndDrawing()
}

func (v *Viewer) toScreen(p evolve.Point) (int32, int32) {
	sx, sy := v.cam.WorldToScreen(p)
	return int32(sx), int32(sy)
}

// Close releases the texture and window.
func (v *Viewer) Close() {
	rl.UnloadTexture(v.texture)
	rl.CloseWindow()
}
