package game

import (
	"math/rand"
	"testing"

	"github.com/nightwell/stardrift/config"
)

func testRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func TestNewOrbsLayout(t *testing.T) {
	cfg := config.Default()
	orbs, err := NewOrbs(cfg, 50, testRand(1))
	if err != nil {
		t.Fatalf("NewOrbs failed: %v", err)
	}
	if len(orbs) != 50 {
		t.Fatalf("got %d orbs, want 50", len(orbs))
	}
	for i, o := range orbs {
		if o.ID != i {
			t.Errorf("orb %d has id %d", i, o.ID)
		}
		if o.Collected {
			t.Errorf("orb %d starts collected", i)
		}
		if o.X < cfg.SpawnInset || o.X > cfg.SectorWidth-cfg.SpawnInset {
			t.Errorf("orb %d x=%g outside spawn inset", i, o.X)
		}
		if o.Y < cfg.SpawnInset || o.Y > cfg.SectorHeight-cfg.SpawnInset {
			t.Errorf("orb %d y=%g outside spawn inset", i, o.Y)
		}
	}
}

func TestNewPowerUpsKindParity(t *testing.T) {
	cfg := config.Default()
	ups, err := NewPowerUps(cfg, 6, testRand(2))
	if err != nil {
		t.Fatalf("NewPowerUps failed: %v", err)
	}
	for i, p := range ups {
		want := PowerHullRestore
		if i%2 == 1 {
			want = PowerSpeedBoost
		}
		if p.Kind != want {
			t.Errorf("power-up %d kind = %v, want %v", i, p.Kind, want)
		}
		if p.Claimed {
			t.Errorf("power-up %d starts claimed", i)
		}
	}
}

func TestNewStarsRanges(t *testing.T) {
	cfg := config.Default()
	stars, err := NewStars(cfg, 200, testRand(3))
	if err != nil {
		t.Fatalf("NewStars failed: %v", err)
	}
	for i, st := range stars {
		if st.X < 0 || st.X > cfg.SectorWidth || st.Y < 0 || st.Y > cfg.SectorHeight {
			t.Errorf("star %d at (%g, %g) outside sector", i, st.X, st.Y)
		}
		if st.Radius < 1 || st.Radius > 3 {
			t.Errorf("star %d radius %g outside [1, 3]", i, st.Radius)
		}
		if st.Opacity < 0.5 || st.Opacity > 1.0 {
			t.Errorf("star %d opacity %g outside [0.5, 1.0]", i, st.Opacity)
		}
		mag := st.Delta
		if mag < 0 {
			mag = -mag
		}
		if mag < 0.005 || mag > 0.015 {
			t.Errorf("star %d delta magnitude %g outside [0.005, 0.015]", i, mag)
		}
	}
}

func TestFactoriesReproducibleWithSeed(t *testing.T) {
	cfg := config.Default()
	a, err := NewState(cfg, testRand(42))
	if err != nil {
		t.Fatalf("NewState failed: %v", err)
	}
	b, err := NewState(cfg, testRand(42))
	if err != nil {
		t.Fatalf("NewState failed: %v", err)
	}
	for i := range a.Orbs {
		if a.Orbs[i] != b.Orbs[i] {
			t.Fatalf("orb %d differs across identical seeds: %+v vs %+v", i, a.Orbs[i], b.Orbs[i])
		}
	}
	for i := range a.Stars {
		if a.Stars[i] != b.Stars[i] {
			t.Fatalf("star %d differs across identical seeds", i)
		}
	}
}

func TestFactoriesRejectNegativeCounts(t *testing.T) {
	cfg := config.Default()
	if _, err := NewOrbs(cfg, -1, testRand(0)); err == nil {
		t.Error("NewOrbs accepted a negative count")
	}
	if _, err := NewPowerUps(cfg, -1, testRand(0)); err == nil {
		t.Error("NewPowerUps accepted a negative count")
	}
	if _, err := NewStars(cfg, -1, testRand(0)); err == nil {
		t.Error("NewStars accepted a negative count")
	}
}

func TestNewStateInitialValues(t *testing.T) {
	cfg := config.Default()
	s, err := NewState(cfg, testRand(7))
	if err != nil {
		t.Fatalf("NewState failed: %v", err)
	}
	if s.Score != 0 || s.GameOver {
		t.Errorf("fresh state has score %d gameOver %v", s.Score, s.GameOver)
	}
	if s.Ship.Hull != cfg.MaxHull {
		t.Errorf("fresh ship hull = %g, want %g", s.Ship.Hull, cfg.MaxHull)
	}
	if s.Ship.BoostTimer != 0 {
		t.Errorf("fresh ship boost timer = %d, want 0", s.Ship.BoostTimer)
	}
	if len(s.Drones) != 3 {
		t.Fatalf("got %d drones, want 3", len(s.Drones))
	}
	behaviors := map[DroneBehavior]bool{}
	for _, d := range s.Drones {
		behaviors[d.Behavior] = true
		if d.Direction != 1 {
			t.Errorf("%v drone starts with direction %g, want +1", d.Behavior, d.Direction)
		}
	}
	for _, b := range []DroneBehavior{PatrolHorizontal, PatrolVertical, PatrolDiagonal} {
		if !behaviors[b] {
			t.Errorf("no drone with behavior %v", b)
		}
	}
}
