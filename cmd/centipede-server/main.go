// centipede-server: serves a simulated arthropod to browser clients.
// Ticks the creature at a fixed rate, streams pose frames over
// websocket, and exposes a JSON API for presets and telemetry.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SkyPlay-Code/centipede/internal/config"
	clog "github.com/SkyPlay-Code/centipede/internal/log"
	"github.com/SkyPlay-Code/centipede/pkg/bestiary"
	"github.com/SkyPlay-Code/centipede/pkg/viewer"
)

var (
	version   = "1.0.0"
	addr      = flag.String("addr", config.Addr(), "listen address")
	preset    = flag.String("preset", config.Preset(), "starting creature preset")
	tickHz    = flag.Int("tick-hz", config.TickHz(), "simulation ticks per second")
	presetDir = flag.String("preset-dir", config.PresetDir(), "directory of extra preset files")
)

func main() {
	flag.Parse()
	clog.Init(config.LogLevel())

	fmt.Println()
	fmt.Println("🐛 centipede server v" + version)
	fmt.Println()

	registry := bestiary.NewRegistry()
	if err := registry.LoadBuiltIn(); err != nil {
		log.Fatalf("load built-in presets: %v", err)
	}
	if *presetDir != "" {
		if err := registry.LoadCustomDir(*presetDir); err != nil {
			log.Fatalf("load presets from %s: %v", *presetDir, err)
		}
	}

	server, err := viewer.NewServer(registry, *preset, *tickHz)
	if err != nil {
		log.Fatalf("create server: %v", err)
	}

	go func() {
		log.Printf("🚀 Listening on %s", *addr)
		log.Printf("   Viewer:    http://localhost%s/", *addr)
		log.Printf("   WebSocket: ws://localhost%s/ws/creature", *addr)
		log.Printf("   Presets:   %v", registry.List())
		log.Println()

		if err := server.Start(*addr); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("\n👋 Shutting down...")

	done := make(chan error, 1)
	go func() { done <- server.Shutdown() }()

	select {
	case err := <-done:
		if err != nil {
			log.Printf("Shutdown error: %v", err)
		}
	case <-time.After(5 * time.Second):
		log.Println("Shutdown timed out")
	}

	log.Println("✅ Goodbye!")
}
