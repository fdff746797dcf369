package creature

import (
	"math"
	"testing"

	"github.com/SkyPlay-Code/centipede/pkg/geom"
)

func TestGait_LegLayout(t *testing.T) {
	cfg := DefaultConfig()
	c := mustNew(t, cfg)

	if got, want := len(c.gait.legs), cfg.LegPairs*2; got != want {
		t.Fatalf("leg count = %d, want %d", got, want)
	}

	for pair := 0; pair < cfg.LegPairs; pair++ {
		right := c.gait.legs[pair*2]
		left := c.gait.legs[pair*2+1]
		wantIdx := cfg.FirstLegIndex + pair*cfg.LegSpacing

		if right.attachIndex != wantIdx || left.attachIndex != wantIdx {
			t.Errorf("pair %d attach = %d/%d, want %d", pair, right.attachIndex, left.attachIndex, wantIdx)
		}
		if right.side != 1 || left.side != -1 {
			t.Errorf("pair %d sides = %v/%v, want +1/-1", pair, right.side, left.side)
		}
		// The two legs of a pair run half a cycle apart.
		if diff := math.Abs(frac(left.offset-right.offset+1) - 0.5); diff > floatTolerance {
			t.Errorf("pair %d offsets %v/%v not half a cycle apart", pair, right.offset, left.offset)
		}
	}
}

func TestGait_MetachronalWaveTravels(t *testing.T) {
	cfg := DefaultConfig()
	c := mustNew(t, cfg)

	// Consecutive same-side legs are offset by a constant phase step, so
	// stepping ripples down the body instead of firing all at once.
	wantStep := frac(cfg.Metachronal * float64(cfg.LegSpacing))
	for pair := 1; pair < cfg.LegPairs; pair++ {
		prev := c.gait.legs[(pair-1)*2]
		cur := c.gait.legs[pair*2]
		step := frac(cur.offset - prev.offset + 1)
		if !floatEquals(step, wantStep) {
			t.Errorf("pair %d phase step = %v, want %v", pair, step, wantStep)
		}
	}
}

func TestGait_PlantedFootHoldsStill(t *testing.T) {
	c := mustNew(t, DefaultConfig())
	walk(c, 40, 5, 0) // warm up to full stride

	type hold struct {
		phase float64
		state LegState
		plant geom.Vec
	}
	prev := make([]hold, len(c.gait.legs))
	for i, l := range c.gait.legs {
		prev[i] = hold{l.phase, l.state, l.plant}
	}

	head := c.chain.segs[0].pos
	for tick := 0; tick < 300; tick++ {
		head = head.Add(geom.V(4, 1))
		c.Tick(head)
		for i := range c.gait.legs {
			l := &c.gait.legs[i]
			// Within one uninterrupted stance interval the hold is fixed.
			if l.state == Stance && prev[i].state == Stance && l.phase > prev[i].phase {
				if !vecEquals(l.plant, prev[i].plant) {
					t.Fatalf("tick %d leg %d: plant moved %v -> %v during stance",
						tick, i, prev[i].plant, l.plant)
				}
			}
			prev[i] = hold{l.phase, l.state, l.plant}
		}
	}
}

func TestGait_StanceFootPinnedToHold(t *testing.T) {
	cfg := DefaultConfig()
	c := mustNew(t, cfg)

	head := geom.Zero
	reach := cfg.UpperLength + cfg.LowerLength
	fold := math.Abs(cfg.UpperLength - cfg.LowerLength)
	for tick := 0; tick < 300; tick++ {
		head = head.Add(geom.V(2, 0.5))
		snap := c.Tick(head)
		// No legs are skipped here, so snapshot order matches leg order.
		for i, lp := range snap.Legs {
			if lp.State != Stance {
				continue
			}
			if got := lp.Attach.Dist(lp.Knee); !floatEquals(got, cfg.UpperLength) {
				t.Fatalf("tick %d: stance upper bone %v, want %v", tick, got, cfg.UpperLength)
			}
			plant := c.gait.legs[i].plant
			d := lp.Attach.Dist(plant)
			if d > fold && d < reach {
				// Reachable hold: the drawn foot sits exactly on it.
				if !vecEquals(lp.Foot, plant) {
					t.Fatalf("tick %d leg %d: foot %v off its hold %v", tick, i, lp.Foot, plant)
				}
			}
		}
	}
}

func TestGait_PairNeverBothSwinging(t *testing.T) {
	cfg := DefaultConfig() // stance ratio 0.65: stance intervals must overlap
	c := mustNew(t, cfg)

	head := geom.Zero
	for tick := 0; tick < 600; tick++ {
		head = head.Add(geom.V(6, 0))
		c.Tick(head)
		for pair := 0; pair < cfg.LegPairs; pair++ {
			right := c.gait.legs[pair*2]
			left := c.gait.legs[pair*2+1]
			if right.state == Swing && left.state == Swing {
				t.Fatalf("tick %d pair %d: both legs airborne (phases %v/%v)",
					tick, pair, right.phase, left.phase)
			}
		}
	}
}

func TestGait_AntiPhaseAtHalfDuty(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StanceRatio = 0.5
	c := mustNew(t, cfg)

	// At half duty, legs half a cycle apart alternate exactly: never both
	// planted, never both airborne.
	head := geom.Zero
	for tick := 0; tick < 600; tick++ {
		head = head.Add(geom.V(6, 0))
		c.Tick(head)
		for pair := 0; pair < cfg.LegPairs; pair++ {
			right := c.gait.legs[pair*2]
			left := c.gait.legs[pair*2+1]
			if right.state == left.state {
				t.Fatalf("tick %d pair %d: both %v (phases %v/%v)",
					tick, pair, right.state, right.phase, left.phase)
			}
		}
	}
}

func TestGait_ClockFrozenAtRest(t *testing.T) {
	c := mustNew(t, DefaultConfig())
	walk(c, 30, 5, 0)

	head := c.chain.segs[0].pos
	for i := 0; i < 60; i++ {
		c.Tick(head)
	}
	clock := c.gait.clock
	for i := 0; i < 20; i++ {
		c.Tick(head)
	}
	if c.gait.clock != clock {
		t.Fatalf("gait clock advanced at rest: %v -> %v", clock, c.gait.clock)
	}
}

func TestGait_OutOfRangeAttachSkipped(t *testing.T) {
	cfg := DefaultConfig()
	c := mustNew(t, cfg)
	walk(c, 10, 5, 0)

	// Point one leg outside the chain, as a mid-reset tick would see it.
	c.gait.legs[0].attachIndex = cfg.Segments + 50

	snap := walk(c, 1, 5, 0)
	if got, want := len(snap.Legs), cfg.LegPairs*2-1; got != want {
		t.Fatalf("snapshot legs = %d, want %d with one leg out of range", got, want)
	}
	for _, lp := range snap.Legs {
		if lp.AttachIndex >= cfg.Segments {
			t.Fatalf("out-of-range leg leaked into the snapshot: %+v", lp)
		}
	}
}

func TestGait_LeglessBody(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LegPairs = 0
	c := mustNew(t, cfg)

	snap := walk(c, 50, 5, 2)
	if len(snap.Legs) != 0 {
		t.Fatalf("legless creature produced %d leg poses", len(snap.Legs))
	}
}

func TestGait_SwingLegBonesStayRigid(t *testing.T) {
	cfg := DefaultConfig()
	c := mustNew(t, cfg)

	head := geom.Zero
	for tick := 0; tick < 200; tick++ {
		head = head.Add(geom.V(5, -1))
		snap := c.Tick(head)
		for _, lp := range snap.Legs {
			if lp.State != Swing {
				continue
			}
			if got := lp.Attach.Dist(lp.Knee); !floatEquals(got, cfg.UpperLength) {
				t.Fatalf("tick %d: swing upper bone %v, want %v", tick, got, cfg.UpperLength)
			}
			if got := lp.Knee.Dist(lp.Foot); got > cfg.LowerLength+floatTolerance {
				t.Fatalf("tick %d: swing lower bone %v exceeds %v", tick, got, cfg.LowerLength)
			}
		}
	}
}
