// Package viewer serves a creature over HTTP: a canvas front end, a
// small JSON API, and a websocket stream of pose frames. The server
// owns the simulation clock; it ticks the creature at a fixed rate,
// broadcasts every frame, and folds pointer samples from any
// connected client back into the drive position.
package viewer

import (
	"embed"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/SkyPlay-Code/centipede/internal/log"
	"github.com/SkyPlay-Code/centipede/pkg/bestiary"
	"github.com/SkyPlay-Code/centipede/pkg/creature"
	"github.com/SkyPlay-Code/centipede/pkg/driver"
	"github.com/SkyPlay-Code/centipede/pkg/geom"
	"github.com/SkyPlay-Code/centipede/pkg/hub"
	"github.com/SkyPlay-Code/centipede/pkg/telemetry"
)

//go:embed web/index.html
var webFS embed.FS

const (
	// arenaWidth and arenaHeight define the logical coordinate space
	// shared by the server and every client canvas.
	arenaWidth  = 800
	arenaHeight = 600

	// pointerStaleAfter is how long the last pointer sample keeps
	// steering before the wander path takes over.
	pointerStaleAfter = 5 * time.Second
)

// Server drives one creature and publishes it to websocket clients.
type Server struct {
	app       *fiber.App
	hub       *hub.Hub
	registry  *bestiary.Registry
	collector *telemetry.Collector
	tickHz    int
	fallback  driver.Path

	// beast and lastHead belong to the tick loop goroutine only.
	beast    *creature.Creature
	lastHead geom.Vec

	mu            sync.Mutex
	preset        string
	pointer       geom.Vec
	pointerAt     time.Time
	pendingPreset string
	pendingReset  *geom.Vec

	started time.Time
	stop    chan struct{}
	done    chan struct{}
}

// NewServer builds a server around a preset registry. The named
// preset is spawned immediately; tickHz sets the simulation rate.
func NewServer(registry *bestiary.Registry, preset string, tickHz int) (*Server, error) {
	beast, err := registry.Spawn(preset)
	if err != nil {
		return nil, err
	}
	if tickHz <= 0 {
		tickHz = 60
	}

	center := geom.V(arenaWidth/2, arenaHeight/2)
	s := &Server{
		hub:       hub.New(),
		registry:  registry,
		collector: telemetry.New(),
		tickHz:    tickHz,
		fallback:  driver.NewWander(center, geom.V(arenaWidth*0.4, arenaHeight*0.37), 0.4),
		beast:     beast,
		preset:    preset,
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}
	s.beast.Reset(center)
	s.lastHead = center

	s.wireHub()
	s.buildApp()
	return s, nil
}

// App exposes the fiber app, mainly for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Hub exposes the websocket hub.
func (s *Server) Hub() *hub.Hub {
	return s.hub
}

// Preset returns the active preset name.
func (s *Server) Preset() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.preset
}

func (s *Server) buildApp() {
	app := fiber.New(fiber.Config{
		AppName:               "centipede",
		DisableStartupMessage: true,
	})

	// CORS for local development
	app.Use(cors.New())

	app.Get("/", s.handleIndex)

	api := app.Group("/api")
	api.Get("/state", s.handleState)
	api.Get("/presets", s.handlePresets)
	api.Get("/stats", s.handleStats)
	api.Post("/preset/:name", s.handleSwitchPreset)
	api.Post("/reset", s.handleReset)

	s.hub.RegisterRoutes(app, "/ws/creature")

	s.app = app
}

// Start runs the hub, the tick loop and the HTTP listener. It blocks
// until the listener stops.
func (s *Server) Start(addr string) error {
	logger := log.Component("viewer")
	logger.Info("starting", "addr", addr, "preset", s.Preset(), "tick_hz", s.tickHz)

	s.started = time.Now()
	go s.hub.Run()
	go s.runLoop()

	return s.app.Listen(addr)
}

// Shutdown stops the tick loop and the HTTP listener.
func (s *Server) Shutdown() error {
	close(s.stop)
	<-s.done
	return s.app.Shutdown()
}
