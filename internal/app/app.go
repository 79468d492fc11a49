//go:build ebiten

package app

import (
	"image/color"
	"time"

	"vitality-ca/internal/core"
	"vitality-ca/internal/display"
	"vitality-ca/internal/monitoring"
	"vitality-ca/internal/render"
	"vitality-ca/internal/sim"
	"vitality-ca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	hudWidth = 220
	panStep  = 8
)

// Game adapts the engine to the ebiten.Game interface. The engine stays the
// only owner of cell state; drawing reads from the mirror.
type Game struct {
	engine  *sim.Engine
	mirror  *display.Mirror
	view    display.Viewport
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	stepper *core.FixedStep

	w, h     int
	running  bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided engine and view size.
func New(engine *sim.Engine, w, h int) *Game {
	g := &Game{
		engine:  engine,
		mirror:  display.NewMirror(),
		view:    display.NewViewport(float64(w), float64(h), engine.CellWidth()),
		painter: render.NewGridPainter(w, h, color.Black),
		stepper: core.NewFixedStep(engine.Config().TickPeriod),
		w:       w,
		h:       h,
		seed:    engine.Config().Seed,
	}
	g.overlay = ui.NewOverlay(engine.CellWidth())
	g.hud = ui.NewHUD(engine, hudWidth)
	engine.Subscribe(g.mirror)
	g.mirror.Observe(sim.Frame{Tick: engine.Tick(), Cells: engine.Snapshot(), Full: true})
	return g
}

// Reset reinitializes the simulation with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	if err := g.engine.Reset(seed); err != nil {
		monitoring.Logf("app: reset: %v", err)
	}
	g.tickOnce = false
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.running = !g.running
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	g.handlePan()
	g.handlePointer()

	g.overlay.Update()
	g.hud.Update(g.w)

	g.stepper.SetPeriod(g.engine.Config().TickPeriod)
	held := ebiten.IsKeyPressed(ebiten.KeySpace)
	if g.tickOnce || ((g.running || held) && g.stepper.ShouldStep()) {
		g.tick()
		g.tickOnce = false
	}
	return nil
}

func (g *Game) tick() {
	if err := g.engine.Step(); err != nil {
		monitoring.Logf("app: %v", err)
		return
	}
	if err := g.mirror.Verify(g.engine.Snapshot()); err != nil {
		monitoring.Logf("app: %v", err)
	}
}

func (g *Game) handlePan() {
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		g.view.Pan(panStep, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		g.view.Pan(-panStep, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		g.view.Pan(0, panStep)
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		g.view.Pan(0, -panStep)
	}
}

func (g *Game) handlePointer() {
	mx, my := ebiten.CursorPosition()
	if mx < 0 || my < 0 || mx >= g.w || my >= g.h {
		return
	}
	at := g.view.ToLattice(float64(mx), float64(my))
	g.overlay.SetCursor(at)

	var in []display.Intent
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		in = append(in, display.Intent{Kind: display.IntentSpawn, At: at})
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		in = append(in, display.Intent{Kind: display.IntentClear, At: at})
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle) || inpututil.IsKeyJustPressed(ebiten.KeyT) {
		in = append(in, display.Intent{Kind: display.IntentToggle, At: at})
	}
	for _, intent := range in {
		if _, err := display.Dispatch(g.engine, intent); err != nil {
			monitoring.Logf("app: %v", err)
		}
	}
}

// Draw renders the mirrored cells, the overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	rule := g.engine.Config().Rule
	g.painter.Blit(screen, g.mirror.Cells(), g.view, func(v float64) color.NRGBA {
		return display.Shade(v, rule)
	})
	g.overlay.Draw(screen, g.view, sim.Summarize(g.mirror.Tick(), g.mirror.Cells()))
	g.hud.Draw(screen, g.w, g.h)
}

// Layout returns the logical screen size: the lattice view plus the HUD panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w + hudWidth, g.h
}

// WindowSize reports the size the window should open at.
func (g *Game) WindowSize() (int, int) { return g.w + hudWidth, g.h }
