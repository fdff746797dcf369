// centipede: desktop viewer for a simulated arthropod. The mouse
// cursor drives the head; the body, gait and decorations follow.
//
// Keys: space toggles the autonomous drive path, digits switch
// presets, R re-seeds the body at the cursor, Q or Escape quits.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/SkyPlay-Code/centipede/internal/config"
	"github.com/SkyPlay-Code/centipede/pkg/anatomy"
	"github.com/SkyPlay-Code/centipede/pkg/bestiary"
	"github.com/SkyPlay-Code/centipede/pkg/creature"
	"github.com/SkyPlay-Code/centipede/pkg/driver"
	"github.com/SkyPlay-Code/centipede/pkg/geom"
)

const screenW, screenH = 1000, 700

var (
	startPreset = flag.String("preset", config.Preset(), "starting creature preset")
	presetDir   = flag.String("preset-dir", config.PresetDir(), "directory of extra preset files")
	pathName    = flag.String("path", "lissajous", "auto-drive path: orbit, lissajous or wander")
)

var (
	colBody     = color.RGBA{23, 53, 31, 255}
	colEdge     = color.RGBA{111, 221, 139, 255}
	colLeg      = color.RGBA{43, 70, 55, 255}
	colStance   = color.RGBA{63, 127, 84, 255}
	colFeeler   = color.RGBA{86, 160, 108, 255}
	colBackdrop = color.RGBA{11, 14, 17, 255}
)

// Game drives one creature from the cursor or an autonomous path.
type Game struct {
	registry *bestiary.Registry
	names    []string
	current  int

	beast *creature.Creature
	snap  *creature.Snapshot

	autoDrive bool
	path      driver.Path
	pathStart time.Time
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.autoDrive = !g.autoDrive
		if g.autoDrive {
			g.pathStart = time.Now()
		}
	}

	for i := 0; i < len(g.names) && i < 9; i++ {
		if inpututil.IsKeyJustPressed(ebiten.KeyDigit1 + ebiten.Key(i)) {
			g.switchPreset(i)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.beast.Reset(g.cursor())
	}

	drive := g.cursor()
	if g.autoDrive {
		drive = g.path.At(time.Since(g.pathStart))
	}

	g.snap = g.beast.Tick(drive)
	return nil
}

// cursor returns the mouse position in arena coordinates.
func (g *Game) cursor() geom.Vec {
	x, y := ebiten.CursorPosition()
	return geom.V(float64(x), float64(y))
}

// switchPreset swaps the creature, keeping the head where it was.
func (g *Game) switchPreset(i int) {
	if i == g.current {
		return
	}

	beast, err := g.registry.Spawn(g.names[i])
	if err != nil {
		log.Printf("switch preset: %v", err)
		return
	}

	head := geom.V(screenW/2, screenH/2)
	if g.snap != nil && len(g.snap.Segments) > 0 {
		head = g.snap.Segments[0].Position
	}
	beast.Reset(head)

	g.beast = beast
	g.current = i
	g.snap = nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colBackdrop)
	if g.snap == nil {
		return
	}

	g.drawLegs(screen)
	g.drawBody(screen)
	g.drawFeelers(screen)
	g.drawHUD(screen)
}

func (g *Game) drawLegs(screen *ebiten.Image) {
	for _, leg := range g.snap.Legs {
		col := color.Color(colLeg)
		if leg.State == creature.Stance {
			col = colStance
		}
		strokeSeg(screen, leg.Attach, leg.Knee, 2, col)
		strokeSeg(screen, leg.Knee, leg.Foot, 2, col)

		if leg.State == creature.Stance {
			vector.DrawFilledCircle(screen, float32(leg.Foot.X), float32(leg.Foot.Y), 2, colEdge, false)
		}
	}
}

func (g *Game) drawBody(screen *ebiten.Image) {
	// Tapered disc per segment, tail to head so the head sits on top.
	for i := len(g.snap.Segments) - 1; i >= 0; i-- {
		seg := g.snap.Segments[i]
		vector.DrawFilledCircle(screen, float32(seg.Position.X), float32(seg.Position.Y), float32(seg.Width/2), colBody, false)
	}

	// Hull outline ties the discs into one silhouette.
	hull := anatomy.Outline(g.snap)
	for i := 0; i < len(hull); i++ {
		strokeSeg(screen, hull[i], hull[(i+1)%len(hull)], 1.5, colEdge)
	}

	head := g.snap.Segments[0]
	vector.DrawFilledCircle(screen, float32(head.Position.X), float32(head.Position.Y), float32(head.Width/3), colEdge, false)
}

func (g *Game) drawFeelers(screen *ebiten.Image) {
	for _, curve := range anatomy.Antennae(g.snap) {
		strokePolyline(screen, curve, 1.5, colFeeler)
	}
	for _, curve := range anatomy.TailCerci(g.snap) {
		strokePolyline(screen, curve, 1.5, colFeeler)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	mode := "cursor"
	if g.autoDrive {
		mode = g.path.Name()
	}
	hud := fmt.Sprintf("%s | drive: %s | activity %.2f | speed %.1f",
		g.names[g.current], mode, g.snap.Activity, g.snap.Speed)
	ebitenutil.DebugPrintAt(screen, hud, 8, 8)
	ebitenutil.DebugPrintAt(screen, "space auto-drive | 1-9 presets | R reset | Q quit", 8, screenH-20)
}

func (g *Game) Layout(outW, outH int) (int, int) {
	return screenW, screenH
}

func strokeSeg(screen *ebiten.Image, a, b geom.Vec, width float32, col color.Color) {
	vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), width, col, true)
}

func strokePolyline(screen *ebiten.Image, line anatomy.Polyline, width float32, col color.Color) {
	for i := 0; i+1 < len(line); i++ {
		strokeSeg(screen, line[i], line[i+1], width, col)
	}
}

func buildPath(name string) driver.Path {
	center := geom.V(screenW/2, screenH/2)
	switch name {
	case "orbit":
		return driver.NewOrbit(center, screenH*0.33, 20*time.Second)
	case "wander":
		return driver.NewWander(center, geom.V(screenW*0.4, screenH*0.38), 0.4)
	default:
		return driver.NewLissajous(center, geom.V(screenW*0.38, screenH*0.34), 40*time.Second)
	}
}

func main() {
	flag.Parse()

	registry := bestiary.NewRegistry()
	if err := registry.LoadBuiltIn(); err != nil {
		log.Fatalf("load built-in presets: %v", err)
	}
	if *presetDir != "" {
		if err := registry.LoadCustomDir(*presetDir); err != nil {
			log.Fatalf("load presets from %s: %v", *presetDir, err)
		}
	}

	names := registry.List()
	current := 0
	for i, n := range names {
		if n == *startPreset {
			current = i
		}
	}

	beast, err := registry.Spawn(names[current])
	if err != nil {
		log.Fatalf("spawn %s: %v", names[current], err)
	}
	beast.Reset(geom.V(screenW/2, screenH/2))

	game := &Game{
		registry: registry,
		names:    names,
		current:  current,
		beast:    beast,
		path:     buildPath(*pathName),
	}

	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle("centipede")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
