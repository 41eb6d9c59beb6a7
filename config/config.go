package config

import "math"

// Config holds general engine configuration
type Config struct {
	Width    int
	Height   int
	TickRate int // fixed simulation ticks per second
}

// DeltaTime is the fixed tick length in seconds.
func (c *Config) DeltaTime() float64 {
	return 1.0 / float64(c.TickRate)
}

// ArenaConfig describes the play field. World coordinates are centered on
// the origin with +Y pointing up.
type ArenaConfig struct {
	Width  float64
	Height float64

	// Bullets outside this half-extent around the origin are despawned.
	DespawnExtent float64

	// Resolv broad-phase cell size
	CellSize int

	// Off-map spawn lines used by wall and rain patterns
	WallTopY     float64
	WallRightX   float64
	FloodX       float64
	FloodSpreadY float64
}

// PlayerConfig contains the player's starting stats
type PlayerConfig struct {
	StartX, StartY  float64
	Radius          float64
	Lives           int
	Ammo            int
	Speed           float64
	InvulnSeconds   float64
	AltFireSlowdown float64 // speed divisor while alt-fire is held

	// Vertical spacing between parallel weapons
	WeaponSpacing float64
}

// CombatConfig contains hit resolution constants
type CombatConfig struct {
	// Enemy damage multiplier for non-phasing player bullets
	SolidDamageMultiplier int
	// Enemy damage multiplier for phasing player bullets
	PhasingDamageMultiplier int
	// Minimum speed for homing guidance
	HomingMinSpeed float64
}

// BossMovementConfig contains the boss wander behaviour
type BossMovementConfig struct {
	FirstMoveSeconds float64
	MoveSeconds      float64
	ExtraDelayMin    float64
	ExtraDelayMax    float64
	MinX, MaxX       float64
	MinY, MaxY       float64
}

// TentacleConfig contains the armed companion of the tentacle ring
type TentacleConfig struct {
	Delay         float64
	Radius        float64
	SeekingTime   float64
	RotationSpeed float64
}

// CircularHomingSlots is the number of turret arms the homing ring cycles through.
const CircularHomingSlots = 4

// Global configuration instances
var C *Config
var Arena ArenaConfig
var Player PlayerConfig
var Combat CombatConfig
var BossMovement BossMovementConfig
var Tentacle TentacleConfig

func init() {
	C = &Config{
		Width:    1280,
		Height:   720,
		TickRate: 64,
	}

	Arena = ArenaConfig{
		Width:         1920,
		Height:        1080,
		DespawnExtent: 1500,
		CellSize:      64,

		WallTopY:     600,
		WallRightX:   1000,
		FloodX:       920,
		FloodSpreadY: 540,
	}

	Player = PlayerConfig{
		StartX:          -1920.0 / 3.0,
		StartY:          0,
		Radius:          7.5,
		Lives:           3,
		Ammo:            1000,
		Speed:           6.5,
		InvulnSeconds:   3.0,
		AltFireSlowdown: 2.0,
		WeaponSpacing:   50,
	}

	Combat = CombatConfig{
		SolidDamageMultiplier:   2,
		PhasingDamageMultiplier: 1,
		HomingMinSpeed:          0.01,
	}

	BossMovement = BossMovementConfig{
		FirstMoveSeconds: 10.0,
		MoveSeconds:      3.0,
		ExtraDelayMin:    0.5,
		ExtraDelayMax:    10.0,
		MinX:             200,
		MaxX:             900,
		MinY:             -500,
		MaxY:             500,
	}

	Tentacle = TentacleConfig{
		Delay:         1.0,
		Radius:        5.0,
		SeekingTime:   2.0,
		RotationSpeed: 2 * math.Pi,
	}
}
