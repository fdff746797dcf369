package protocol

import (
	"time"

	"github.com/SkyPlay-Code/centipede/pkg/creature"
)

// =============================================================================
// Helper functions for creating messages
// =============================================================================

// NewPointerMessage creates a driver sample message
func NewPointerMessage(x, y float64) (*Message, error) {
	return NewMessage(TypePointer, PointerData{X: x, Y: y})
}

// NewPresetMessage creates a preset switch message
func NewPresetMessage(name string) (*Message, error) {
	return NewMessage(TypePreset, PresetCommand{Name: name})
}

// NewResetMessage creates a creature reset message
func NewResetMessage(x, y float64) (*Message, error) {
	return NewMessage(TypeReset, ResetCommand{X: x, Y: y})
}

// NewPoseMessage creates a pose frame message from a creature snapshot
func NewPoseMessage(preset string, snap *creature.Snapshot) (*Message, error) {
	return NewMessage(TypePose, NewPoseData(preset, snap))
}

// NewStatsMessage creates a statistics message
func NewStatsMessage(stats StatsData) (*Message, error) {
	return NewMessage(TypeStats, stats)
}

// NewStateMessage creates a server state message
func NewStateMessage(state StateData) (*Message, error) {
	return NewMessage(TypeState, state)
}

// NewPingMessage creates a ping message
func NewPingMessage(id string) (*Message, error) {
	return NewMessage(TypePing, PingData{
		ID:        id,
		Timestamp: time.Now().UnixMilli(),
	})
}

// NewPongMessage creates a pong response message
func NewPongMessage(id string, pingTS, pongTS int64) (*Message, error) {
	return NewMessage(TypePong, PongData{
		ID:        id,
		PingTS:    pingTS,
		PongTS:    pongTS,
		LatencyMs: pongTS - pingTS,
	})
}

// =============================================================================
// Helper functions for parsing messages
// =============================================================================

// GetPointerData extracts a driver sample from a message
func (m *Message) GetPointerData() (*PointerData, error) {
	var data PointerData
	if err := m.ParseData(&data); err != nil {
		return nil, err
	}
	return &data, nil
}

// GetPresetCommand extracts a preset switch from a message
func (m *Message) GetPresetCommand() (*PresetCommand, error) {
	var data PresetCommand
	if err := m.ParseData(&data); err != nil {
		return nil, err
	}
	return &data, nil
}

// GetResetCommand extracts a reset command from a message
func (m *Message) GetResetCommand() (*ResetCommand, error) {
	var data ResetCommand
	if err := m.ParseData(&data); err != nil {
		return nil, err
	}
	return &data, nil
}

// GetPoseData extracts a pose frame from a message
func (m *Message) GetPoseData() (*PoseData, error) {
	var data PoseData
	if err := m.ParseData(&data); err != nil {
		return nil, err
	}
	return &data, nil
}

// GetStatsData extracts statistics from a message
func (m *Message) GetStatsData() (*StatsData, error) {
	var data StatsData
	if err := m.ParseData(&data); err != nil {
		return nil, err
	}
	return &data, nil
}

// GetStateData extracts server state from a message
func (m *Message) GetStateData() (*StateData, error) {
	var data StateData
	if err := m.ParseData(&data); err != nil {
		return nil, err
	}
	return &data, nil
}

// GetPingData extracts ping data from a message
func (m *Message) GetPingData() (*PingData, error) {
	var data PingData
	if err := m.ParseData(&data); err != nil {
		return nil, err
	}
	return &data, nil
}

// GetPongData extracts pong data from a message
func (m *Message) GetPongData() (*PongData, error) {
	var data PongData
	if err := m.ParseData(&data); err != nil {
		return nil, err
	}
	return &data, nil
}
