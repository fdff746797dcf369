// Package hub provides a thread-safe websocket broadcast hub for pose
// frames, using the channel-based fan-out pattern. Inbound messages from
// clients (pointer samples, preset switches, resets) are decoded and handed
// to callbacks; slow clients are dropped rather than allowed to stall the
// frame stream.
package hub

// Message is one pre-encoded frame queued for delivery. Everything on this
// wire is JSON text; pose frames are ephemeral and may be dropped under
// backpressure.
type Message struct {
	Data []byte
}

// NewJSONMessage wraps pre-encoded JSON bytes for broadcast.
func NewJSONMessage(data []byte) Message {
	return Message{Data: data}
}
