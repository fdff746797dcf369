// Package creature implements the procedural locomotion core: a segmented
// body that chases a driver point through a single-pass distance-follow
// chain, a traveling undulation wave, and a gaited leg solver built on
// closed-form two-bone IK.
//
// The package is pure math. It never draws, sleeps, or spawns goroutines;
// a renderer owns the frame clock and calls Tick once per frame with the
// latest driver sample:
//
//	c, err := creature.New(creature.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for each frame {
//	    snap := c.Tick(pointer)
//	    draw(snap) // snapshot buffers are reused on the next Tick
//	}
//
// A Creature is not safe for concurrent use. Reset re-seeds the body
// wholesale and must happen between ticks, never during one.
package creature
