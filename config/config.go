package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

const (
	Default ecs.LayerID = iota
)

// Config holds window and loop settings.
type Config struct {
	Title    string
	Width    int
	Height   int
	TickRate int
}

// DT is the fixed simulation step in seconds.
func (c *Config) DT() float64 {
	return 1 / float64(c.TickRate)
}

// PhysicsConfig contains the shared kinematics constants. Velocities are in
// pixels per tick.
type PhysicsConfig struct {
	Gravity         float64 `yaml:"gravity"`
	Friction        float64 `yaml:"friction"`
	MoveSpeed       float64 `yaml:"move_speed"`
	MaxSpeed        float64 `yaml:"max_speed"`
	JumpForce       float64 `yaml:"jump_force"`
	DoubleJumpForce float64 `yaml:"double_jump_force"`
	FastFallSpeed   float64 `yaml:"fast_fall_speed"`
	RunThreshold    float64 `yaml:"run_threshold"`
}

// PlayerSpawn is the start-of-match placement for one player.
type PlayerSpawn struct {
	ID          PlayerID
	X, Y        float64
	FacingRight bool
	Color       color.RGBA
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Width       float64
	Height      float64
	MaxHP       int
	RespawnTime float64
	RespawnX    float64
	RespawnY    float64
	Spawns      []PlayerSpawn
}

// BombConfig contains the bomb timings and impulses. Timers are in seconds.
type BombConfig struct {
	Radius             float64 `yaml:"radius"`
	FuseTime           float64 `yaml:"fuse_time"`
	SpawnInterval      float64 `yaml:"spawn_interval"`
	FirstSpawnDelay    float64 `yaml:"first_spawn_delay"`
	StickDelay         float64 `yaml:"stick_delay"`
	StuckTransferDelay float64 `yaml:"stuck_transfer_delay"`
	TransferCooldown   float64 `yaml:"transfer_cooldown"`
	TransferKnockback  float64 `yaml:"transfer_knockback"`
	ThrowSpeedX        float64 `yaml:"throw_speed_x"`
	ThrowSpeedY        float64 `yaml:"throw_speed_y"`
	WallDamping        float64 `yaml:"wall_damping"`
	ExplosionDamage    int     `yaml:"explosion_damage"`
	ExplosionKnockback float64 `yaml:"explosion_knockback"`
}

// MatchConfig holds the default match rules and their accepted ranges.
type MatchConfig struct {
	Duration    float64 `yaml:"duration"`
	WinScore    int     `yaml:"win_score"`
	MinDuration float64 `yaml:"-"`
	MaxDuration float64 `yaml:"-"`
	MinWinScore int     `yaml:"-"`
	MaxWinScore int     `yaml:"-"`
}

// ParticleConfig contains effect burst settings.
type ParticleConfig struct {
	Decay          float64
	Spread         float64 // velocity components are uniform in [-Spread, Spread)
	MinSize        float64
	SizeRange      float64
	MaxLive        int
	RespawnCount   int
	PoofCount      int
	ExplosionCount int
	RespawnColor   color.RGBA
	PoofColor      color.RGBA
	ExplosionColor color.RGBA
}

// Bounds is the playable area. Bodies are clamped to it.
type Bounds struct {
	Left, Right, Top, Bottom float64
}

// PlatformSpec describes one static platform of the arena.
type PlatformSpec struct {
	X, Y, W, H float64
	Kind       PlatformKind
}

type Point struct {
	X, Y float64
}

// ArenaConfig is the fixed level layout.
type ArenaConfig struct {
	Bounds     Bounds
	Platforms  []PlatformSpec
	SpawnNodes []Point
	CellSize   int
}

// AnimationConfig controls sprite sheet phase advance.
type AnimationConfig struct {
	Frames       int
	FrameSeconds float64
}

// HUDConfig holds draw colors for the host renderer.
type HUDConfig struct {
	Background     color.RGBA
	GroundColor    color.RGBA
	PlatformColor  color.RGBA
	SpawnNodeColor color.RGBA
	BombColor      color.RGBA
	FuseColor      color.RGBA
	TextColor      color.RGBA
	OverlayColor   color.RGBA
	HealthBack     color.RGBA
	HealthHigh     color.RGBA
	HealthMid      color.RGBA
	HealthLow      color.RGBA
	SweatColor     color.RGBA
	WarnColor      color.RGBA
	WarnTime       float64 // seconds left at which the timer turns WarnColor
	LowTime        float64 // seconds left at which the timer starts pulsing
	PulseSeconds   float64
	FontSize       float64
	TitleFontSize  float64
}

var (
	C         *Config
	Physics   PhysicsConfig
	Player    PlayerConfig
	Bomb      BombConfig
	Match     MatchConfig
	Particles ParticleConfig
	Arena     ArenaConfig
	Animation AnimationConfig
	HUD       HUDConfig
)

func init() {
	SetDefaults()
}

// SetDefaults restores every global configuration value to its built-in value.
func SetDefaults() {
	C = &Config{
		Title:    "Sticky Bomb",
		Width:    1280,
		Height:   720,
		TickRate: 60,
	}

	Physics = PhysicsConfig{
		Gravity:         0.6,
		Friction:        0.85,
		MoveSpeed:       1.2,
		MaxSpeed:        8,
		JumpForce:       -14,
		DoubleJumpForce: -12,
		FastFallSpeed:   1.5,
		RunThreshold:    0.5,
	}

	Player = PlayerConfig{
		Width:       40,
		Height:      60,
		MaxHP:       100,
		RespawnTime: 3,
		RespawnX:    float64(C.Width)/2 - 20,
		RespawnY:    150,
		Spawns: []PlayerSpawn{
			{ID: Player1, X: 200, Y: 500, FacingRight: true, Color: color.RGBA{0x3b, 0x82, 0xf6, 0xff}},
			{ID: Player2, X: 1000, Y: 500, FacingRight: false, Color: color.RGBA{0xef, 0x44, 0x44, 0xff}},
		},
	}

	Bomb = BombConfig{
		Radius:             12,
		FuseTime:           10,
		SpawnInterval:      15,
		FirstSpawnDelay:    1,
		StickDelay:         0.25,
		StuckTransferDelay: 0.5,
		TransferCooldown:   1,
		TransferKnockback:  10,
		ThrowSpeedX:        15,
		ThrowSpeedY:        -5,
		WallDamping:        0.8,
		ExplosionDamage:    50,
		ExplosionKnockback: -10,
	}

	Match = MatchConfig{
		Duration:    180,
		WinScore:    3,
		MinDuration: 30,
		MaxDuration: 600,
		MinWinScore: 1,
		MaxWinScore: 20,
	}

	Particles = ParticleConfig{
		Decay:          0.02,
		Spread:         5,
		MinSize:        2,
		SizeRange:      5,
		MaxLive:        512,
		RespawnCount:   20,
		PoofCount:      10,
		ExplosionCount: 50,
		RespawnColor:   color.RGBA{0xff, 0xff, 0xff, 0xff},
		PoofColor:      color.RGBA{0x9c, 0xa3, 0xaf, 0xff},
		ExplosionColor: color.RGBA{0xff, 0xa5, 0x00, 0xff},
	}

	Arena = ArenaConfig{
		Bounds: Bounds{Left: 50, Right: float64(C.Width) - 50, Top: 0, Bottom: float64(C.Height)},
		Platforms: []PlatformSpec{
			{X: 140, Y: 600, W: 1000, H: 40, Kind: PlatformGround},
			{X: 200, Y: 400, W: 250, H: 20, Kind: PlatformOneWay},
			{X: 830, Y: 400, W: 250, H: 20, Kind: PlatformOneWay},
			{X: 515, Y: 250, W: 250, H: 20, Kind: PlatformOneWay},
		},
		SpawnNodes: []Point{
			{X: 640, Y: 580},
			{X: 325, Y: 380},
			{X: 955, Y: 380},
			{X: 640, Y: 230},
		},
		CellSize: 16,
	}

	Animation = AnimationConfig{
		Frames:       6,
		FrameSeconds: 0.1,
	}

	HUD = HUDConfig{
		Background:     color.RGBA{0x0f, 0x17, 0x2a, 0xff},
		GroundColor:    color.RGBA{0x33, 0x41, 0x55, 0xff},
		PlatformColor:  color.RGBA{0x47, 0x55, 0x69, 0xff},
		SpawnNodeColor: color.RGBA{0x33, 0x41, 0x55, 0xff},
		BombColor:      color.RGBA{0x1f, 0x29, 0x37, 0xff},
		FuseColor:      color.RGBA{0xef, 0x44, 0x44, 0xff},
		TextColor:      color.RGBA{0xff, 0xff, 0xff, 0xff},
		OverlayColor:   color.RGBA{0x00, 0x00, 0x00, 0xb4},
		HealthBack:     color.RGBA{0x1e, 0x29, 0x3b, 0xff},
		HealthHigh:     color.RGBA{0x10, 0xb9, 0x81, 0xff},
		HealthMid:      color.RGBA{0xfb, 0xbf, 0x24, 0xff},
		HealthLow:      color.RGBA{0xef, 0x44, 0x44, 0xff},
		SweatColor:     color.RGBA{0x00, 0xcc, 0xff, 0x99},
		WarnColor:      color.RGBA{0xef, 0x44, 0x44, 0xff},
		WarnTime:       30,
		LowTime:        10,
		PulseSeconds:   1,
		FontSize:       18,
		TitleFontSize:  40,
	}
}
