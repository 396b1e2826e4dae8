package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// PatrolBounds is the axis-aligned rectangle drones reflect inside.
type PatrolBounds struct {
	Left   float64
	Right  float64
	Top    float64
	Bottom float64
}

// Config holds every gameplay tunable. The zero value is unusable; start
// from Default() and override via environment or a .env file.
type Config struct {
	// Sector
	SectorWidth  float64
	SectorHeight float64
	SpawnInset   float64 // keeps orbs and power-ups away from the edges

	// Ship
	ShipWidth  float64
	ShipHeight float64
	BaseSpeed  float64
	BoostSpeed float64
	// BoostDuration is the boost timer value in frames set by a speed-boost
	// power-up. A fresh claim always overwrites a running timer.
	BoostDuration int
	MaxHull       float64

	// Drones
	DroneWidth           float64
	DroneHeight          float64
	HorizontalDroneSpeed float64
	VerticalDroneSpeed   float64
	DiagonalDroneSpeed   float64
	Patrol               PatrolBounds

	// Collisions and scoring
	ContactDamage   float64 // hull lost per frame of drone overlap
	OrbPickupRadius float64
	OrbScore        int
	PowerUpBoxSize  float64 // side of the square pickup zone around a power-up
	HullRestore     float64

	// Entity counts
	OrbCount     int
	PowerUpCount int
	StarCount    int

	// Frame loop
	FrameInterval time.Duration
	// KeyHoldFrames is how many frames a direction stays pressed after its
	// last key event. Terminal input has no key-release, so held keys are
	// sustained by autorepeat refreshing the hold window.
	KeyHoldFrames int
}

// Default returns the reference tuning.
func Default() *Config {
	return &Config{
		SectorWidth:  800,
		SectorHeight: 600,
		SpawnInset:   40,

		ShipWidth:     30,
		ShipHeight:    20,
		BaseSpeed:     4,
		BoostSpeed:    7,
		BoostDuration: 200,
		MaxHull:       100,

		DroneWidth:           26,
		DroneHeight:          26,
		HorizontalDroneSpeed: 2.2,
		VerticalDroneSpeed:   1.8,
		DiagonalDroneSpeed:   1.6,
		Patrol: PatrolBounds{
			Left:   60,
			Right:  700,
			Top:    60,
			Bottom: 520,
		},

		ContactDamage:   0.3,
		OrbPickupRadius: 20,
		OrbScore:        10,
		PowerUpBoxSize:  30,
		HullRestore:     20,

		OrbCount:     12,
		PowerUpCount: 4,
		StarCount:    80,

		FrameInterval: 16 * time.Millisecond,
		KeyHoldFrames: 6,
	}
}

// Load builds a Config from defaults layered with a .env file (optional,
// missing file is not an error) and STARDRIFT_* environment variables.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
			}
		}
	} else {
		// Default .env in the working directory, if present
		_ = godotenv.Load()
	}

	cfg := Default()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	var err error
	setF := func(key string, dst *float64) {
		if err != nil {
			return
		}
		v, ok := os.LookupEnv(key)
		if !ok {
			return
		}
		f, perr := strconv.ParseFloat(v, 64)
		if perr != nil {
			err = fmt.Errorf("invalid value for %s: %w", key, perr)
			return
		}
		*dst = f
	}
	setI := func(key string, dst *int) {
		if err != nil {
			return
		}
		v, ok := os.LookupEnv(key)
		if !ok {
			return
		}
		n, perr := strconv.Atoi(v)
		if perr != nil {
			err = fmt.Errorf("invalid value for %s: %w", key, perr)
			return
		}
		*dst = n
	}

	setF("STARDRIFT_SECTOR_WIDTH", &c.SectorWidth)
	setF("STARDRIFT_SECTOR_HEIGHT", &c.SectorHeight)
	setF("STARDRIFT_SPAWN_INSET", &c.SpawnInset)
	setF("STARDRIFT_BASE_SPEED", &c.BaseSpeed)
	setF("STARDRIFT_BOOST_SPEED", &c.BoostSpeed)
	setI("STARDRIFT_BOOST_DURATION", &c.BoostDuration)
	setF("STARDRIFT_MAX_HULL", &c.MaxHull)
	setF("STARDRIFT_CONTACT_DAMAGE", &c.ContactDamage)
	setF("STARDRIFT_ORB_PICKUP_RADIUS", &c.OrbPickupRadius)
	setI("STARDRIFT_ORB_SCORE", &c.OrbScore)
	setF("STARDRIFT_POWERUP_BOX_SIZE", &c.PowerUpBoxSize)
	setF("STARDRIFT_HULL_RESTORE", &c.HullRestore)
	setI("STARDRIFT_ORB_COUNT", &c.OrbCount)
	setI("STARDRIFT_POWERUP_COUNT", &c.PowerUpCount)
	setI("STARDRIFT_STAR_COUNT", &c.StarCount)
	setF("STARDRIFT_DRONE_SPEED_HORIZONTAL", &c.HorizontalDroneSpeed)
	setF("STARDRIFT_DRONE_SPEED_VERTICAL", &c.VerticalDroneSpeed)
	setF("STARDRIFT_DRONE_SPEED_DIAGONAL", &c.DiagonalDroneSpeed)
	setI("STARDRIFT_KEY_HOLD_FRAMES", &c.KeyHoldFrames)

	return err
}

// Validate rejects configurations the simulation cannot run with.
// Precondition violations surface here, never in the per-frame step.
func (c *Config) Validate() error {
	if c.SectorWidth <= 0 || c.SectorHeight <= 0 {
		return fmt.Errorf("sector dimensions must be positive, got %gx%g", c.SectorWidth, c.SectorHeight)
	}
	if c.ShipWidth <= 0 || c.ShipHeight <= 0 {
		return fmt.Errorf("ship dimensions must be positive, got %gx%g", c.ShipWidth, c.ShipHeight)
	}
	if c.ShipWidth > c.SectorWidth || c.ShipHeight > c.SectorHeight {
		return fmt.Errorf("ship %gx%g does not fit in sector %gx%g", c.ShipWidth, c.ShipHeight, c.SectorWidth, c.SectorHeight)
	}
	if c.BaseSpeed <= 0 || c.BoostSpeed <= 0 {
		return fmt.Errorf("ship speeds must be positive, got base %g boost %g", c.BaseSpeed, c.BoostSpeed)
	}
	if c.BoostDuration < 0 {
		return fmt.Errorf("boost duration must not be negative, got %d", c.BoostDuration)
	}
	if c.MaxHull <= 0 {
		return fmt.Errorf("max hull must be positive, got %g", c.MaxHull)
	}
	if c.ContactDamage < 0 || c.HullRestore < 0 {
		return fmt.Errorf("damage and restore amounts must not be negative, got %g and %g", c.ContactDamage, c.HullRestore)
	}
	if c.OrbPickupRadius <= 0 || c.PowerUpBoxSize <= 0 {
		return fmt.Errorf("pickup geometry must be positive, got radius %g box %g", c.OrbPickupRadius, c.PowerUpBoxSize)
	}
	if c.OrbCount < 0 || c.PowerUpCount < 0 || c.StarCount < 0 {
		return fmt.Errorf("entity counts must not be negative, got orbs %d power-ups %d stars %d", c.OrbCount, c.PowerUpCount, c.StarCount)
	}
	if c.Patrol.Left >= c.Patrol.Right || c.Patrol.Top >= c.Patrol.Bottom {
		return fmt.Errorf("patrol bounds are degenerate: %+v", c.Patrol)
	}
	if c.FrameInterval <= 0 {
		return fmt.Errorf("frame interval must be positive, got %v", c.FrameInterval)
	}
	if c.KeyHoldFrames < 1 {
		return fmt.Errorf("key hold frames must be at least 1, got %d", c.KeyHoldFrames)
	}
	return nil
}
