package viewer

import (
	"time"

	"github.com/SkyPlay-Code/centipede/internal/log"
	"github.com/SkyPlay-Code/centipede/pkg/geom"
	"github.com/SkyPlay-Code/centipede/pkg/protocol"
)

// wireHub routes inbound client messages into the pending-command
// slots. Callbacks run on client goroutines; the tick loop applies
// them between frames so the creature only ever sees one caller.
func (s *Server) wireHub() {
	s.hub.OnPointer(func(clientID string, p *protocol.PointerData) {
		s.mu.Lock()
		s.pointer = geom.V(p.X, p.Y)
		s.pointerAt = time.Now()
		s.mu.Unlock()
	})

	s.hub.OnPreset(func(clientID string, cmd *protocol.PresetCommand) {
		if err := s.requestPreset(cmd.Name); err != nil {
			log.Component("viewer").Warn("preset request rejected", "client", clientID, "name", cmd.Name, "error", err)
		}
	})

	s.hub.OnReset(func(clientID string, cmd *protocol.ResetCommand) {
		s.requestReset(geom.V(cmd.X, cmd.Y))
	})
}

// requestPreset validates the name and queues a switch for the next
// tick. Unknown names are rejected without touching the simulation.
func (s *Server) requestPreset(name string) error {
	if _, err := s.registry.Get(name); err != nil {
		return err
	}

	s.mu.Lock()
	s.pendingPreset = name
	s.mu.Unlock()
	return nil
}

// requestReset queues a head teleport for the next tick.
func (s *Server) requestReset(head geom.Vec) {
	s.mu.Lock()
	s.pendingReset = &head
	s.mu.Unlock()
}

// runLoop ticks the creature at the configured rate until Shutdown.
// Stats flush once per second.
func (s *Server) runLoop() {
	defer close(s.done)

	ticker := time.NewTicker(time.Second / time.Duration(s.tickHz))
	defer ticker.Stop()

	tickCount := 0
	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			s.tick()
			tickCount++
			if tickCount%s.tickHz == 0 {
				s.broadcastStats()
			}
		}
	}
}

// tick advances the simulation one frame and broadcasts the pose.
func (s *Server) tick() {
	logger := log.Component("viewer")
	start := time.Now()

	s.mu.Lock()
	pointer := s.pointer
	pointerAt := s.pointerAt
	pendingPreset := s.pendingPreset
	s.pendingPreset = ""
	pendingReset := s.pendingReset
	s.pendingReset = nil
	preset := s.preset
	s.mu.Unlock()

	if pendingPreset != "" && pendingPreset != preset {
		if beast, err := s.registry.Spawn(pendingPreset); err != nil {
			logger.Warn("preset switch failed", "name", pendingPreset, "error", err)
		} else {
			beast.Reset(s.lastHead)
			s.beast = beast
			preset = pendingPreset

			s.mu.Lock()
			s.preset = preset
			s.mu.Unlock()

			logger.Info("preset switched", "name", preset)
			s.broadcastState()
		}
	}

	if pendingReset != nil {
		s.beast.Reset(*pendingReset)
		s.lastHead = *pendingReset
	}

	drive := pointer
	if pointerAt.IsZero() || time.Since(pointerAt) > pointerStaleAfter {
		drive = s.fallback.At(time.Since(s.started))
	}

	snap := s.beast.Tick(drive)
	if len(snap.Segments) > 0 {
		s.lastHead = snap.Segments[0].Position
	}
	s.collector.Record(time.Since(start), snap.Speed, snap.Activity)

	msg, err := protocol.NewPoseMessage(preset, snap)
	if err != nil {
		logger.Error("encode pose", "error", err)
		return
	}
	if err := s.hub.BroadcastJSON(msg); err != nil {
		logger.Error("broadcast pose", "error", err)
	}
}

// broadcastStats flushes the telemetry window to all clients.
func (s *Server) broadcastStats() {
	stats := s.collector.Flush()

	msg, err := protocol.NewStatsMessage(protocol.StatsData{
		Ticks:         stats.Ticks,
		TickMeanMs:    float64(stats.TickMean) / float64(time.Millisecond),
		TickMaxMs:     float64(stats.TickMax) / float64(time.Millisecond),
		SpeedMean:     stats.SpeedMean,
		SpeedStddev:   stats.SpeedStddev,
		ActivityMean:  stats.ActivityMean,
		UptimeSeconds: stats.Uptime.Seconds(),
	})
	if err != nil {
		log.Component("viewer").Error("encode stats", "error", err)
		return
	}
	s.hub.BroadcastJSON(msg)
}

// broadcastState pushes the current server summary to all clients.
func (s *Server) broadcastState() {
	msg, err := protocol.NewStateMessage(s.stateData())
	if err != nil {
		log.Component("viewer").Error("encode state", "error", err)
		return
	}
	s.hub.BroadcastJSON(msg)
}

// stateData assembles the server summary payload.
func (s *Server) stateData() protocol.StateData {
	return protocol.StateData{
		Preset:  s.Preset(),
		Presets: s.registry.List(),
		TickHz:  s.tickHz,
		Clients: s.hub.ClientCount(),
	}
}
