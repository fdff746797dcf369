// Package protocol defines the WebSocket message types for viewer-client
// communication. This package is shared between the server (pkg/viewer) and
// headless drivers (cmd/centipede-drive).
package protocol

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/SkyPlay-Code/centipede/pkg/creature"
)

// MessageType identifies the type of WebSocket message
type MessageType string

const (
	// Client → Server messages
	TypePointer MessageType = "pointer" // Driver position sample
	TypePreset  MessageType = "preset"  // Switch creature preset
	TypeReset   MessageType = "reset"   // Re-seed the creature

	// Server → Client messages
	TypePose  MessageType = "pose"  // Pose snapshot for one tick
	TypeStats MessageType = "stats" // Locomotion statistics
	TypeState MessageType = "state" // Server state summary

	// Bidirectional
	TypePing MessageType = "ping" // Health check
	TypePong MessageType = "pong" // Health check response
)

// Message is the base wrapper for all WebSocket messages
type Message struct {
	Type      MessageType     `json:"type"`
	Timestamp int64           `json:"ts,omitempty"` // Unix milliseconds
	Data      json.RawMessage `json:"data,omitempty"`
}

// NewMessage creates a new message with the current timestamp
func NewMessage(msgType MessageType, data interface{}) (*Message, error) {
	var rawData json.RawMessage
	if data != nil {
		var err error
		rawData, err = json.Marshal(data)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal message data: %w", err)
		}
	}

	return &Message{
		Type:      msgType,
		Timestamp: time.Now().UnixMilli(),
		Data:      rawData,
	}, nil
}

// ParseData unmarshals the message data into the provided struct
func (m *Message) ParseData(v interface{}) error {
	if m.Data == nil {
		return nil
	}
	return json.Unmarshal(m.Data, v)
}

// Bytes returns the JSON-encoded message
func (m *Message) Bytes() ([]byte, error) {
	return json.Marshal(m)
}

// ParseMessage parses a JSON message from bytes
func ParseMessage(data []byte) (*Message, error) {
	var msg Message
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("failed to parse message: %w", err)
	}
	return &msg, nil
}

// =============================================================================
// Client → Server Message Types
// =============================================================================

// PointerData is one driver position sample in world coordinates.
type PointerData struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PresetCommand switches the live creature to a named preset.
type PresetCommand struct {
	Name string `json:"name"`
}

// ResetCommand re-seeds the creature with its head at the given point.
type ResetCommand struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// =============================================================================
// Server → Client Message Types
// =============================================================================

// PoseSegment is one spine element of a pose frame. Keys are short because
// a frame goes out every tick.
type PoseSegment struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	A float64 `json:"a"` // heading in radians
	W float64 `json:"w"` // render width
}

// PoseLeg is one solved limb of a pose frame.
type PoseLeg struct {
	AX      float64 `json:"ax"`
	AY      float64 `json:"ay"`
	KX      float64 `json:"kx"`
	KY      float64 `json:"ky"`
	FX      float64 `json:"fx"`
	FY      float64 `json:"fy"`
	Side    float64 `json:"side"`
	Planted bool    `json:"planted"`
}

// PoseData is the complete drawable pose for one tick.
type PoseData struct {
	Preset   string        `json:"preset"`
	Segments []PoseSegment `json:"segments"`
	Legs     []PoseLeg     `json:"legs"`
	Activity float64       `json:"activity"`
	Speed    float64       `json:"speed"`
}

// NewPoseData converts a creature snapshot into its wire form. The snapshot
// is copied, so the result stays valid after the next Tick.
func NewPoseData(preset string, snap *creature.Snapshot) PoseData {
	pose := PoseData{
		Preset:   preset,
		Segments: make([]PoseSegment, len(snap.Segments)),
		Legs:     make([]PoseLeg, len(snap.Legs)),
		Activity: snap.Activity,
		Speed:    snap.Speed,
	}
	for i, seg := range snap.Segments {
		pose.Segments[i] = PoseSegment{
			X: seg.Position.X,
			Y: seg.Position.Y,
			A: seg.Angle,
			W: seg.Width,
		}
	}
	for i, lp := range snap.Legs {
		pose.Legs[i] = PoseLeg{
			AX:      lp.Attach.X,
			AY:      lp.Attach.Y,
			KX:      lp.Knee.X,
			KY:      lp.Knee.Y,
			FX:      lp.Foot.X,
			FY:      lp.Foot.Y,
			Side:    lp.Side,
			Planted: lp.State == creature.Stance,
		}
	}
	return pose
}

// StatsData carries locomotion statistics, published once per second.
type StatsData struct {
	Ticks         uint64  `json:"ticks"`
	TickMeanMs    float64 `json:"tick_mean_ms"`
	TickMaxMs     float64 `json:"tick_max_ms"`
	SpeedMean     float64 `json:"speed_mean"`
	SpeedStddev   float64 `json:"speed_stddev"`
	ActivityMean  float64 `json:"activity_mean"`
	UptimeSeconds float64 `json:"uptime_s"`
}

// StateData summarizes the server for newly connected clients.
type StateData struct {
	Preset  string   `json:"preset"`
	Presets []string `json:"presets"`
	TickHz  int      `json:"tick_hz"`
	Clients int      `json:"clients"`
}

// =============================================================================
// Bidirectional Message Types
// =============================================================================

// PingData contains ping information
type PingData struct {
	ID        string `json:"id"`
	Timestamp int64  `json:"ts"`
}

// PongData contains pong response
type PongData struct {
	ID        string `json:"id"`
	PingTS    int64  `json:"ping_ts"`
	PongTS    int64  `json:"pong_ts"`
	LatencyMs int64  `json:"latency_ms"`
}
