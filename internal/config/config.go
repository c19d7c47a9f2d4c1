// Package config provides YAML-based game configuration loading and
// difficulty management for the shooter.
package config

// ShooterConfig contains all tunable parameters of the simulation.
type ShooterConfig struct {
	World      WorldConfig      `yaml:"world"`
	Player     PlayerConfig     `yaml:"player"`
	Enemies    EnemyConfig      `yaml:"enemies"`
	Scroll     ScrollConfig     `yaml:"scroll"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Boss       BossConfig       `yaml:"boss"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the simulation coordinate space. World units are
// independent of the terminal cell grid; the renderer maps between them.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines player craft parameters.
type PlayerConfig struct {
	Speed           float64 `yaml:"speed"`            // world units per second
	BulletSpeed     float64 `yaml:"bullet_speed"`     // world units per second
	ShootCooldown   float64 `yaml:"shoot_cooldown"`   // seconds between shots
	Lives           int     `yaml:"lives"`
	InvincibleTime  float64 `yaml:"invincible_time"`  // seconds of grace after a hit
	EdgeMargin      float64 `yaml:"edge_margin"`      // clamp distance from world edges
	ShieldCharges   int     `yaml:"shield_charges"`   // hits a fresh shield absorbs
}

// EnemyConfig defines enemy spawn and movement parameters.
type EnemyConfig struct {
	BaseSpeed     float64 `yaml:"base_speed"`     // world units per second
	SpawnInterval float64 `yaml:"spawn_interval"` // seconds between spawn waves
	BulletSpeed   float64 `yaml:"bullet_speed"`   // world units per second
	SpawnMargin   float64 `yaml:"spawn_margin"`   // keep spawns this far from side edges
	DespawnMargin float64 `yaml:"despawn_margin"` // cull entities this far past the bottom
}

// ScrollConfig defines the auto-scrolling world parameters.
type ScrollConfig struct {
	Speed float64 `yaml:"speed"` // world units per second
}

// GameplayConfig defines rule toggles and drop rates.
type GameplayConfig struct {
	// MultiHitBullets lets one bullet damage every enemy it overlaps in a
	// tick; when false the bullet spends itself on the first hit in event
	// order.
	MultiHitBullets  bool    `yaml:"multi_hit_bullets"`
	CoinDropChance   float64 `yaml:"coin_drop_chance"`   // per destroyed enemy
	ShieldDropChance float64 `yaml:"shield_drop_chance"` // per destroyed enemy, rolled before the coin
	PowerUpCoins     int     `yaml:"power_up_coins"`     // coins granted per pickup
}

// BossConfig defines the end-of-run boss encounter. The boss warps in once
// the score threshold is crossed; destroying it ends the run as a victory.
type BossConfig struct {
	Enabled        bool    `yaml:"enabled"`
	ScoreThreshold int     `yaml:"score_threshold"` // score at which the boss warps in
	HoldDistance   float64 `yaml:"hold_distance"`   // how far below the top edge the boss holds
	EntrySpeed     float64 `yaml:"entry_speed"`     // descent speed while entering
	StrafeSpeed    float64 `yaml:"strafe_speed"`    // horizontal weave speed at the hold line
	ShootInterval  float64 `yaml:"shoot_interval"`  // seconds between volleys at full hull
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // Multiplier added to speed at max difficulty
	SpawnAcceleration float64 `yaml:"spawn_acceleration"` // Fraction shaved off the spawn interval at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
