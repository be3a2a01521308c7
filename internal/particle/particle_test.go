package particle

import (
	"math/rand/v2"
	"testing"

	"github.com/lox/nimbus/internal/models"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestDropUpdate(t *testing.T) {
	rng := testRand()
	b := Bounds{MaxX: 80, MaxY: 24}
	d := newDrop(rng, b)

	respawns := 0
	for i := 0; i < 500; i++ {
		before := d
		d.Update(rng, Calm.Wind, b)

		if before.Y+before.Speed > b.MaxY || before.X+Calm.Wind > b.MaxX {
			respawns++
			if d.Y != 0 {
				t.Fatalf("tick %d: respawned Y = %v, want 0", i, d.Y)
			}
			if d.Speed < Calm.MinSpeed || d.Speed >= Calm.MaxSpeed {
				t.Fatalf("tick %d: respawned speed = %v, want in [%v, %v)", i, d.Speed, Calm.MinSpeed, Calm.MaxSpeed)
			}
			if d.X < 0 || d.X > b.MaxX {
				t.Fatalf("tick %d: respawned X = %v, want in [0, %v]", i, d.X, b.MaxX)
			}
			continue
		}
		if d.Y != before.Y+before.Speed {
			t.Fatalf("tick %d: Y = %v, want %v", i, d.Y, before.Y+before.Speed)
		}
		if d.X != before.X+Calm.Wind {
			t.Fatalf("tick %d: X = %v, want %v", i, d.X, before.X+Calm.Wind)
		}
	}
	if respawns == 0 {
		t.Fatal("drop never respawned")
	}
}

func TestDropRespawnsPastRightEdge(t *testing.T) {
	rng := testRand()
	b := Bounds{MaxX: 10, MaxY: 100}
	d := Drop{X: 9.95, Y: 5, Speed: 1.5, Glyph: '|'}

	d.Update(rng, Storm.Wind, b)
	if d.Y != 0 {
		t.Errorf("Y = %v, want 0 after crossing MaxX", d.Y)
	}
}

func TestDropAdopt(t *testing.T) {
	tests := []struct {
		name          string
		speed         float64
		regime        Regime
		wantUnchanged bool
	}{
		{name: "calm drop joins storm", speed: 1.5, regime: Storm},
		{name: "storm drop stays in storm", speed: 3.0, regime: Storm, wantUnchanged: true},
		{name: "storm drop calms down", speed: 3.0, regime: Calm},
		{name: "calm drop stays calm", speed: 1.9, regime: Calm, wantUnchanged: true},
		{name: "slightly fast drop is left alone", speed: 2.3, regime: Calm, wantUnchanged: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Drop{Speed: tt.speed}
			d.adopt(testRand(), tt.regime)

			if tt.wantUnchanged {
				if d.Speed != tt.speed {
					t.Errorf("Speed = %v, want unchanged %v", d.Speed, tt.speed)
				}
				return
			}
			if d.Speed < tt.regime.MinSpeed || d.Speed > tt.regime.MaxSpeed {
				t.Errorf("Speed = %v, want in [%v, %v]", d.Speed, tt.regime.MinSpeed, tt.regime.MaxSpeed)
			}
		})
	}
}

func TestFlakeUpdate(t *testing.T) {
	rng := testRand()
	b := Bounds{MaxX: 80, MaxY: 24}
	f := newFlake(rng, b)

	respawns := 0
	for i := 0; i < 1000; i++ {
		before := f
		f.Update(rng, b)

		if before.Y+before.Speed > b.MaxY {
			respawns++
			if f.Y != flakeReentryY {
				t.Fatalf("tick %d: respawned Y = %v, want %v", i, f.Y, flakeReentryY)
			}
			continue
		}
		dx := f.X - before.X
		if dx < -swayAmplitude || dx > swayAmplitude {
			t.Fatalf("tick %d: sway %v outside ±%v", i, dx, swayAmplitude)
		}
		if f.Y != before.Y+before.Speed {
			t.Fatalf("tick %d: Y = %v, want %v", i, f.Y, before.Y+before.Speed)
		}
	}
	if respawns == 0 {
		t.Fatal("flake never respawned")
	}
}

func TestCloudWrapIsAbsolute(t *testing.T) {
	b := Bounds{MaxX: 80, MaxY: 24}

	for _, start := range []float64{80 + 14, 200, 10000} {
		c := newCloud(testRand(), b, 2, []string{"  .--.  ", " (    ) ", "  '--'  ", "ab"})
		if c.Width != 8 {
			t.Fatalf("Width = %d, want 8", c.Width)
		}
		c.X = start
		c.Update(b)
		if want := -float64(c.Width + 5); c.X != want {
			t.Errorf("from X=%v: wrapped X = %v, want %v", start, c.X, want)
		}
	}
}

func TestCloudDrifts(t *testing.T) {
	b := Bounds{MaxX: 80, MaxY: 24}
	c := newCloud(testRand(), b, 3, []string{"(  )"})
	if c.X < -5 || c.X > 80 {
		t.Fatalf("initial X = %v, want in [-5, 80]", c.X)
	}
	if c.Speed < 0.05 || c.Speed >= 0.15 {
		t.Fatalf("Speed = %v, want in [0.05, 0.15)", c.Speed)
	}

	c.X = 10
	c.Update(b)
	if c.X != 10+c.Speed {
		t.Errorf("X = %v, want %v", c.X, 10+c.Speed)
	}
}

func TestSpawnSizing(t *testing.T) {
	tests := []struct {
		width, height int
		wantDrops     int
		wantFlakes    int
		wantClouds    int
	}{
		{width: 10, height: 30, wantDrops: 5, wantFlakes: 5, wantClouds: 5},
		{width: 200, height: 30, wantDrops: 60, wantFlakes: 40, wantClouds: 5},
		{width: 100, height: 30, wantDrops: 50, wantFlakes: 40, wantClouds: 5},
		{width: 1, height: 30, wantDrops: 0, wantFlakes: 0, wantClouds: 5},
		{width: 0, height: 30, wantDrops: 0, wantFlakes: 0, wantClouds: 0},
		{width: -3, height: 30, wantDrops: 0, wantFlakes: 0, wantClouds: 0},
	}

	for _, tt := range tests {
		p := Spawn(tt.width, tt.height, testRand())
		if len(p.Drops) != tt.wantDrops {
			t.Errorf("Spawn(%d, %d): drops = %d, want %d", tt.width, tt.height, len(p.Drops), tt.wantDrops)
		}
		if len(p.Flakes) != tt.wantFlakes {
			t.Errorf("Spawn(%d, %d): flakes = %d, want %d", tt.width, tt.height, len(p.Flakes), tt.wantFlakes)
		}
		if len(p.Clouds) != tt.wantClouds {
			t.Errorf("Spawn(%d, %d): clouds = %d, want %d", tt.width, tt.height, len(p.Clouds), tt.wantClouds)
		}
	}
}

func TestSpawnStaggersEntry(t *testing.T) {
	p := Spawn(120, 40, testRand())

	for i, d := range p.Drops {
		if d.Y > 0 || d.Y < -20 {
			t.Errorf("drop %d: initial Y = %v, want in [-20, 0]", i, d.Y)
		}
	}
	for i, f := range p.Flakes {
		if f.Y > 0 || f.Y < -12 {
			t.Errorf("flake %d: initial Y = %v, want in [-12, 0]", i, f.Y)
		}
	}
	for i, c := range p.Clouds {
		if c.Row < fleet[i].minRow || c.Row > fleet[i].maxRow {
			t.Errorf("cloud %d: row = %d, want in [%d, %d]", i, c.Row, fleet[i].minRow, fleet[i].maxRow)
		}
	}
}

func TestPoolTickKeepsSlots(t *testing.T) {
	p := Spawn(80, 24, testRand())
	drops := &p.Drops[0]

	for i := 0; i < 200; i++ {
		p.Tick(models.Rain)
	}
	if len(p.Drops) != 40 || len(p.Flakes) != 40 || len(p.Clouds) != 5 {
		t.Fatalf("pool size changed: %d drops, %d flakes, %d clouds", len(p.Drops), len(p.Flakes), len(p.Clouds))
	}
	if drops != &p.Drops[0] {
		t.Error("drop slots were reallocated")
	}
}

func TestPoolTickThunderUsesStormWind(t *testing.T) {
	p := Spawn(200, 1000, testRand())
	before := append([]Drop(nil), p.Drops...)

	p.Tick(models.Thunder)

	for i, d := range p.Drops {
		if d.Y == 0 {
			continue
		}
		if got := d.X - before[i].X; got < Storm.Wind-1e-9 || got > Storm.Wind+1e-9 {
			t.Errorf("drop %d: moved %v sideways, want %v", i, got, Storm.Wind)
		}
		if d.Speed < Storm.MinSpeed || d.Speed > Storm.MaxSpeed {
			t.Errorf("drop %d: speed %v not in storm band", i, d.Speed)
		}
	}
}

func TestEmptyPoolTick(t *testing.T) {
	p := Spawn(0, 0, testRand())
	if !p.Empty() {
		t.Fatal("Spawn(0, 0) should be empty")
	}
	p.Tick(models.Snow)
}
