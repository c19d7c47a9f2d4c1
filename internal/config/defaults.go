package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

// DefaultShooterConfig returns the default shooter configuration.
func DefaultShooterConfig() ShooterConfig {
	return ShooterConfig{
		World: WorldConfig{
			Width:  480,
			Height: 720,
		},
		Player: PlayerConfig{
			Speed:          300,
			BulletSpeed:    500,
			ShootCooldown:  0.15,
			Lives:          3,
			InvincibleTime: 2.0,
			EdgeMargin:     30,
			ShieldCharges:  3,
		},
		Enemies: EnemyConfig{
			BaseSpeed:     150,
			SpawnInterval: 1.5,
			BulletSpeed:   300,
			SpawnMargin:   50,
			DespawnMargin: 100,
		},
		Scroll: ScrollConfig{
			Speed: 50,
		},
		Gameplay: GameplayConfig{
			MultiHitBullets:  false,
			CoinDropChance:   0.02,
			ShieldDropChance: 0.005,
			PowerUpCoins:     10,
		},
		Boss: BossConfig{
			Enabled:        true,
			ScoreThreshold: 5000,
			HoldDistance:   120,
			EntrySpeed:     40,
			StrafeSpeed:    60,
			ShootInterval:  2.0,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 5000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   1.0,
				SpawnAcceleration: 0.6,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultShooterYAML
}
