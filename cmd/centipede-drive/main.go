// centipede-drive: streams synthetic pointer samples to a running
// centipede server, steering its creature along a chosen path. Useful
// for soak-testing a server or for demos with no human at the mouse.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/websocket"

	"github.com/SkyPlay-Code/centipede/internal/config"
	"github.com/SkyPlay-Code/centipede/pkg/driver"
	"github.com/SkyPlay-Code/centipede/pkg/geom"
	"github.com/SkyPlay-Code/centipede/pkg/protocol"
)

// Samples target the same logical arena the server simulates in.
const (
	arenaW = 800
	arenaH = 600
)

var (
	server   = flag.String("server", "ws://localhost"+config.DefaultAddr+"/ws/creature", "server websocket URL")
	pathName = flag.String("path", "wander", "drive path: orbit, lissajous or wander")
	rate     = flag.Int("rate", 30, "pointer samples per second")
	duration = flag.Duration("duration", 0, "how long to stream (0 = until interrupted)")
)

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

	if *rate <= 0 {
		log.Fatal("rate must be positive")
	}
	path := buildPath(*pathName)

	fmt.Printf("🐛 centipede drive: %s path → %s at %d Hz\n", path.Name(), *server, *rate)

	ws, _, err := websocket.DefaultDialer.Dial(*server, nil)
	if err != nil {
		log.Fatalf("dial %s: %v", *server, err)
	}
	defer ws.Close()

	// Drain the pose stream so the server never sees us as a slow
	// client.
	go func() {
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				return
			}
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	var expire <-chan time.Time
	if *duration > 0 {
		expire = time.After(*duration)
	}

	ticker := time.NewTicker(time.Second / time.Duration(*rate))
	defer ticker.Stop()

	start := time.Now()
	sent := 0

loop:
	for {
		select {
		case <-quit:
			fmt.Println("\n👋 interrupted")
			break loop

		case <-expire:
			break loop

		case <-ticker.C:
			pos := path.At(time.Since(start))
			msg, err := protocol.NewPointerMessage(pos.X, pos.Y)
			if err != nil {
				log.Fatalf("build pointer message: %v", err)
			}
			if err := ws.WriteJSON(msg); err != nil {
				log.Fatalf("write: %v", err)
			}
			sent++
		}
	}

	ws.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))

	fmt.Printf("✅ sent %d samples over %s\n", sent, time.Since(start).Round(time.Second))
}
