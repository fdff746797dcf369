// centipede-tty: renders a simulated arthropod in the terminal. The
// mouse drives the head when the terminal reports it; otherwise an
// autonomous path takes over.
//
// Keys: space toggles the autonomous drive path, digits switch
// presets, r re-centers the body, q or Escape quits.
package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/SkyPlay-Code/centipede/internal/config"
	"github.com/SkyPlay-Code/centipede/pkg/anatomy"
	"github.com/SkyPlay-Code/centipede/pkg/bestiary"
	"github.com/SkyPlay-Code/centipede/pkg/creature"
	"github.com/SkyPlay-Code/centipede/pkg/driver"
	"github.com/SkyPlay-Code/centipede/pkg/geom"
)

// The simulation runs in a fixed arena and is projected onto however
// many cells the terminal has.
const (
	arenaW = 800
	arenaH = 600

	frameInterval = 33 * time.Millisecond
)

var (
	startPreset = flag.String("preset", config.Preset(), "starting creature preset")
	presetDir   = flag.String("preset-dir", config.PresetDir(), "directory of extra preset files")
	pathName    = flag.String("path", "wander", "auto-drive path: orbit, lissajous or wander")
)

var (
	styleBody   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleBright = tcell.StyleDefault.Foreground(tcell.ColorLightGreen)
	styleDim    = tcell.StyleDefault.Foreground(tcell.ColorDarkGreen)
	styleHUD    = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

type app struct {
	screen        tcell.Screen
	width, height int

	registry *bestiary.Registry
	names    []string
	current  int

	beast *creature.Creature
	snap  *creature.Snapshot

	auto      bool
	path      driver.Path
	pathStart time.Time

	pointer     geom.Vec
	havePointer bool
}

func newApp(registry *bestiary.Registry, names []string, current int, path driver.Path) (*app, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()

	beast, err := registry.Spawn(names[current])
	if err != nil {
		screen.Fini()
		return nil, err
	}
	beast.Reset(geom.V(arenaW/2, arenaH/2))

	a := &app{
		screen:    screen,
		registry:  registry,
		names:     names,
		current:   current,
		beast:     beast,
		auto:      true,
		path:      path,
		pathStart: time.Now(),
	}
	a.width, a.height = screen.Size()
	return a, nil
}

// toCell projects arena coordinates onto the terminal grid, leaving
// the top row free for the HUD.
func (a *app) toCell(p geom.Vec) (int, int) {
	x := int(p.X / arenaW * float64(a.width))
	y := 1 + int(p.Y/arenaH*float64(a.height-2))
	return x, y
}

// toArena maps a terminal cell back into arena coordinates.
func (a *app) toArena(cx, cy int) geom.Vec {
	x := (float64(cx) + 0.5) / float64(a.width) * arenaW
	y := (float64(cy) - 0.5) / float64(a.height-2) * arenaH
	return geom.V(x, y)
}

func (a *app) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyRune {
			switch r := ev.Rune(); {
			case r == 'q':
				return false
			case r == ' ':
				a.auto = !a.auto
				if a.auto {
					a.pathStart = time.Now()
				}
			case r == 'r':
				a.beast.Reset(geom.V(arenaW/2, arenaH/2))
			case r >= '1' && r <= '9':
				a.switchPreset(int(r - '1'))
			}
		}

	case *tcell.EventMouse:
		cx, cy := ev.Position()
		a.pointer = a.toArena(cx, cy)
		a.havePointer = true
		a.auto = false

	case *tcell.EventResize:
		a.width, a.height = a.screen.Size()
		a.screen.Sync()
	}

	return true
}

func (a *app) switchPreset(i int) {
	if i >= len(a.names) || i == a.current {
		return
	}

	beast, err := a.registry.Spawn(a.names[i])
	if err != nil {
		return
	}

	head := geom.V(arenaW/2, arenaH/2)
	if a.snap != nil && len(a.snap.Segments) > 0 {
		head = a.snap.Segments[0].Position
	}
	beast.Reset(head)

	a.beast = beast
	a.current = i
	a.snap = nil
}

func (a *app) tick() {
	drive := a.pointer
	if a.auto || !a.havePointer {
		drive = a.path.At(time.Since(a.pathStart))
	}
	a.snap = a.beast.Tick(drive)
}

func (a *app) plot(p geom.Vec, r rune, style tcell.Style) {
	x, y := a.toCell(p)
	if x < 0 || x >= a.width || y < 1 || y >= a.height-1 {
		return
	}
	a.screen.SetContent(x, y, r, nil, style)
}

func (a *app) draw() {
	a.screen.Clear()
	if a.snap == nil {
		a.screen.Show()
		return
	}

	// Legs under the body.
	for _, leg := range a.snap.Legs {
		a.plot(leg.Knee, '\'', styleDim)
		if leg.State == creature.Stance {
			a.plot(leg.Foot, 'x', styleBright)
		} else {
			a.plot(leg.Foot, '.', styleDim)
		}
	}

	// Feelers.
	for _, curve := range anatomy.Antennae(a.snap) {
		for _, p := range curve[1:] {
			a.plot(p, '~', styleDim)
		}
	}
	for _, curve := range anatomy.TailCerci(a.snap) {
		for _, p := range curve[1:] {
			a.plot(p, '~', styleDim)
		}
	}

	// Body, tail to head.
	for i := len(a.snap.Segments) - 1; i >= 0; i-- {
		seg := a.snap.Segments[i]
		a.plot(seg.Position, bodyRune(seg.Width), styleBody)
	}
	a.plot(a.snap.Segments[0].Position, '@', styleBright)

	a.drawHUD()
	a.screen.Show()
}

func bodyRune(width float64) rune {
	switch {
	case width >= 8:
		return 'O'
	case width >= 5:
		return 'o'
	case width >= 2:
		return '*'
	default:
		return '.'
	}
}

func (a *app) drawHUD() {
	mode := "mouse"
	if a.auto || !a.havePointer {
		mode = a.path.Name()
	}
	top := fmt.Sprintf("%s | drive: %s | activity %.2f | speed %.1f",
		a.names[a.current], mode, a.snap.Activity, a.snap.Speed)
	bottom := "space auto-drive | 1-9 presets | r reset | q quit"

	a.drawText(0, 0, top)
	a.drawText(0, a.height-1, bottom)
}

func (a *app) drawText(x, y int, s string) {
	for i, r := range s {
		if x+i >= a.width {
			return
		}
		a.screen.SetContent(x+i, y, r, nil, styleHUD)
	}
}

func (a *app) run() {
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			eventChan <- a.screen.PollEvent()
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !a.handleEvent(ev) {
				return
			}

		case <-ticker.C:
			a.tick()
			a.draw()
		}
	}
}

func buildPath(name string) driver.Path {
	center := geom.V(arenaW/2, arenaH/2)
	switch name {
	case "orbit":
		return driver.NewOrbit(center, arenaH*0.33, 20*time.Second)
	case "lissajous":
		return driver.NewLissajous(center, geom.V(arenaW*0.38, arenaH*0.34), 40*time.Second)
	default:
		return driver.NewWander(center, geom.V(arenaW*0.4, arenaH*0.37), 0.4)
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

	a, err := newApp(registry, names, current, buildPath(*pathName))
	if err != nil {
		log.Fatalf("init terminal: %v", err)
	}
	defer a.screen.Fini()

	a.run()
}
