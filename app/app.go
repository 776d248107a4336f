package app

import (
	"fmt"
	"image/color"
	"io"
	"strings"

	"gamedebug/debug"
	"gamedebug/hal"
	"gamedebug/overlay"
)

type Config struct {
	StartEnabled bool
	Echo         bool
	Producers    int
	Entities     int
}

var (
	colorBG     = color.RGBA{R: 0x10, G: 0x14, B: 0x1c, A: 0xff}
	colorEntity = color.RGBA{R: 0x4a, G: 0xdf, B: 0x6a, A: 0xff}
	colorBounds = color.RGBA{R: 0xff, G: 0x30, B: 0x30, A: 0x80}
	colorVel    = color.RGBA{R: 0xff, G: 0xdd, B: 0x66, A: 0xc0}
)

const camStep = 8

// Game is the demo driver: a tiny simulation instrumented through a
// debug.Instrument and drawn into the HAL framebuffer once per Step.
type Game struct {
	h      hal.HAL
	in     *debug.Instrument
	cfg    Config
	canvas *hal.FBCanvas

	entities   []entity
	camX, camY float32
	workers    *workerPool
}

// New wires the game to h. The caller owns in and must call Close when done.
func New(h hal.HAL, in *debug.Instrument, cfg Config) *Game {
	g := &Game{
		h:      h,
		in:     in,
		cfg:    cfg,
		canvas: hal.NewFBCanvas(h.Display().Framebuffer()),
	}
	in.Gate.Set(cfg.StartEnabled)
	if cfg.Echo {
		if w, ok := h.Logger().(io.Writer); ok {
			in.Persistent.SetEcho(w)
		}
	}
	installPoisonHandler(h, in)

	fb := h.Display().Framebuffer()
	g.entities = spawnEntities(cfg.Entities, float32(fb.Width()), float32(fb.Height()))
	g.workers = newWorkerPool(in, cfg.Producers)
	in.Persistf("started: %d entities, %d producers", len(g.entities), cfg.Producers)
	return g
}

// Step runs one loop iteration: input, simulation (recording), world and overlay
// drawing, then the immediate clear and clock advance.
func (g *Game) Step() error {
	if err := g.handleInput(); err != nil {
		return err
	}

	g.update()
	g.workers.run(g.in.Frame())

	g.draw()

	g.in.EndFrame()
	return nil
}

// Close stops the producer goroutines.
func (g *Game) Close() {
	g.workers.close()
}

// Instrument returns the instrument the game records into.
func (g *Game) Instrument() *debug.Instrument { return g.in }

func (g *Game) handleInput() error {
	kbd := g.h.Input().Keyboard()
	if kbd == nil {
		return nil
	}
	for {
		select {
		case ev := <-kbd.Events():
			if !ev.Press {
				continue
			}
			switch ev.Code {
			case hal.KeyEscape:
				g.in.Persistf("quit requested")
				return hal.ErrQuit
			case hal.KeyF1:
				g.in.Toggle()
				g.in.Persistf("overlay %s", onOff(g.in.Enabled()))
			case hal.KeyF2:
				g.dumpLog()
			case hal.KeyLeft:
				g.camX -= camStep
			case hal.KeyRight:
				g.camX += camStep
			case hal.KeyUp:
				g.camY -= camStep
			case hal.KeyDown:
				g.camY += camStep
			}
		default:
			return nil
		}
	}
}

func (g *Game) update() {
	fb := g.h.Display().Framebuffer()
	w, h := float32(fb.Width()), float32(fb.Height())

	g.in.Msgf("entities: %d", len(g.entities))
	debug.Inspect(g.in, "camera", [2]float32{g.camX, g.camY})

	for i := range g.entities {
		e := &g.entities[i]
		if e.step(w, h) {
			g.in.Persistf("entity %d bounced at %.0f,%.0f", i, e.x, e.y)
		}
		g.in.Rect(e.x-1, e.y-1, e.w+2, e.h+2, colorBounds)
		g.in.Rect(e.x+e.w/2, e.y+e.h/2, e.vx*4, e.vy*4, colorVel)
	}
}

func (g *Game) draw() {
	g.canvas.Clear(colorBG)

	world := overlay.Offset(g.canvas, -g.camX, -g.camY)
	for _, e := range g.entities {
		world.DrawRectangle(e.x, e.y, e.w, e.h, colorEntity)
	}
	overlay.DrawWorld(world, g.in)
	overlay.DrawOverlay(g.canvas, g.in)

	_ = g.canvas.Display()
}

func (g *Game) dumpLog() {
	l := g.h.Logger()
	if l == nil {
		return
	}
	var b strings.Builder
	_ = g.in.Persistent.Tail(&b, debug.PersistentCapacity)
	for _, line := range strings.Split(strings.TrimRight(b.String(), "\n"), "\n") {
		if line != "" {
			l.WriteLineString(line)
		}
	}
}

// DumpLog writes the last n persistent records to w, oldest first.
func (g *Game) DumpLog(w io.Writer, n int) error {
	if n <= 0 {
		return nil
	}
	if _, err := fmt.Fprintf(w, "last %d debug records (frame %d):\n", min(n, g.in.Persistent.Len()), g.in.Frame()); err != nil {
		return fmt.Errorf("dump log: %w", err)
	}
	if err := g.in.Persistent.Tail(w, n); err != nil {
		return fmt.Errorf("dump log: %w", err)
	}
	return nil
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
