package geometry

import "math"

// Built-in blueprint names.
const (
	BlueprintPlayer       = "player"
	BlueprintEnemyDiamond = "enemy_diamond"
	BlueprintEnemyHexagon = "enemy_hexagon"
	BlueprintBullet       = "bullet"
	BlueprintEnemyBullet  = "enemy_bullet"
	BlueprintShield       = "shield"
	BlueprintPowerUp      = "power_up"
	BlueprintCoin         = "coin"
	BlueprintEliteScout   = "elite_scout"
	BlueprintEliteGunship = "elite_gunship"
	BlueprintEliteGuard   = "elite_guard"

	BlueprintBossDiamondKing = "boss_diamond_king"
	BlueprintBossHexFortress = "boss_hex_fortress"
	BlueprintBossTriangle    = "boss_triangle_fighter"
)

func init() {
	Register(playerBlueprint())
	Register(enemyDiamondBlueprint())
	Register(enemyHexagonBlueprint())
	Register(bulletBlueprint())
	Register(enemyBulletBlueprint())
	Register(shieldBlueprint())
	Register(powerUpBlueprint())
	Register(coinBlueprint())
	Register(eliteScoutBlueprint())
	Register(eliteGunshipBlueprint())
	Register(eliteGuardBlueprint())
	Register(bossDiamondKingBlueprint())
	Register(bossHexFortressBlueprint())
	Register(bossTriangleBlueprint())
}

// playerBlueprint is the player craft: a cyan triangular hull, two blue
// wings, and a white cockpit dot.
func playerBlueprint() *Blueprint {
	return &Blueprint{
		Name: BlueprintPlayer,
		Shapes: []Shape{
			{
				Kind: ShapePolygon,
				Vertices: []Vec2{
					V(0, 20),
					V(-15, -15),
					V(15, -15),
				},
				Color:       Cyan,
				Fill:        true,
				StrokeWidth: 2,
			},
			{
				Kind: ShapePolygon,
				Vertices: []Vec2{
					V(-15, -10),
					V(-25, -20),
					V(-10, -15),
				},
				Color:       Blue,
				Fill:        true,
				StrokeWidth: 2,
			},
			{
				Kind: ShapePolygon,
				Vertices: []Vec2{
					V(15, -10),
					V(25, -20),
					V(10, -15),
				},
				Color:       Blue,
				Fill:        true,
				StrokeWidth: 2,
			},
			{
				Kind:        ShapeCircle,
				Radius:      5,
				Color:       White,
				Fill:        true,
				StrokeWidth: 1,
			},
		},
		Collision: CollisionCircle(15),
		Scale:     1,
	}
}

// enemyDiamondBlueprint is the basic enemy: a red diamond with a yellow core.
func enemyDiamondBlueprint() *Blueprint {
	return &Blueprint{
		Name: BlueprintEnemyDiamond,
		Shapes: []Shape{
			{
				Kind: ShapePolygon,
				Vertices: []Vec2{
					V(0, 15),
					V(-12, 0),
					V(0, -15),
					V(12, 0),
				},
				Color:       Red,
				Fill:        true,
				StrokeWidth: 2,
			},
			{
				Kind:        ShapeCircle,
				Radius:      4,
				Color:       Yellow,
				Fill:        true,
				StrokeWidth: 1,
			},
		},
		Collision: CollisionCircle(12),
		Scale:     1,
	}
}

// enemyHexagonBlueprint is the tougher enemy: an orange hexagon with a
// red core.
func enemyHexagonBlueprint() *Blueprint {
	return &Blueprint{
		Name: BlueprintEnemyHexagon,
		Shapes: []Shape{
			{
				Kind:        ShapePolygon,
				Vertices:    regularPolygon(6, 18),
				Color:       Orange,
				Fill:        true,
				StrokeWidth: 2,
			},
			{
				Kind:        ShapeCircle,
				Radius:      6,
				Color:       Red,
				Fill:        true,
				StrokeWidth: 1,
			},
		},
		Collision: CollisionCircle(18),
		Scale:     1,
	}
}

func bulletBlueprint() *Blueprint {
	return &Blueprint{
		Name: BlueprintBullet,
		Shapes: []Shape{
			{
				Kind:        ShapeCircle,
				Radius:      4,
				Color:       Yellow,
				Fill:        true,
				StrokeWidth: 1,
			},
		},
		Collision: CollisionCircle(4),
		Scale:     1,
	}
}

func enemyBulletBlueprint() *Blueprint {
	return &Blueprint{
		Name: BlueprintEnemyBullet,
		Shapes: []Shape{
			{
				Kind:        ShapeCircle,
				Radius:      5,
				Color:       Magenta,
				Fill:        true,
				StrokeWidth: 1,
			},
		},
		Collision: CollisionCircle(5),
		Scale:     1,
	}
}

// shieldBlueprint is a translucent arc sweeping most of the way around the
// wearer, open at the rear.
func shieldBlueprint() *Blueprint {
	return &Blueprint{
		Name: BlueprintShield,
		Shapes: []Shape{
			{
				Kind:        ShapeArc,
				Radius:      25,
				StartAngle:  -math.Pi * 0.75,
				EndAngle:    math.Pi * 0.75,
				Color:       Color{R: 0, G: 0.8, B: 1, A: 0.6},
				StrokeWidth: 4,
			},
		},
		Collision: CollisionCircle(25),
		Scale:     1,
	}
}

// powerUpBlueprint is a green five-pointed star.
func powerUpBlueprint() *Blueprint {
	return &Blueprint{
		Name: BlueprintPowerUp,
		Shapes: []Shape{
			{
				Kind:        ShapePolygon,
				Vertices:    starPolygon(5, 12, 6),
				Color:       Green,
				Fill:        true,
				StrokeWidth: 2,
			},
		},
		Collision: CollisionCircle(12),
		Scale:     1,
	}
}

// coinBlueprint is the currency drop: a small yellow ring around a dot.
func coinBlueprint() *Blueprint {
	return &Blueprint{
		Name: BlueprintCoin,
		Shapes: []Shape{
			{
				Kind:        ShapeCircle,
				Radius:      8,
				Color:       Yellow,
				StrokeWidth: 2,
			},
			{
				Kind:        ShapeCircle,
				Radius:      3,
				Color:       Yellow,
				Fill:        true,
				StrokeWidth: 1,
			},
		},
		Collision: CollisionCircle(8),
		Scale:     1,
	}
}

// eliteScoutBlueprint is a slow, large pentagon craft with a cyan sensor dome.
func eliteScoutBlueprint() *Blueprint {
	return &Blueprint{
		Name: BlueprintEliteScout,
		Shapes: []Shape{
			{
				Kind:        ShapePolygon,
				Vertices:    regularPolygon(5, 24),
				Color:       Magenta,
				Fill:        true,
				StrokeWidth: 2,
			},
			{
				Kind:        ShapeCircle,
				Radius:      8,
				Color:       Cyan,
				Fill:        true,
				StrokeWidth: 1,
			},
		},
		Collision: CollisionCircle(24),
		Scale:     1,
	}
}

// eliteGunshipBlueprint is a wide armored hull with two gun pods.
func eliteGunshipBlueprint() *Blueprint {
	return &Blueprint{
		Name: BlueprintEliteGunship,
		Shapes: []Shape{
			{
				Kind: ShapePolygon,
				Vertices: []Vec2{
					V(-30, 8),
					V(30, 8),
					V(22, -12),
					V(-22, -12),
				},
				Color:       Red,
				Fill:        true,
				StrokeWidth: 2,
			},
			{
				Kind:        ShapeCircle,
				Center:      V(-14, -8),
				Radius:      5,
				Color:       Orange,
				Fill:        true,
				StrokeWidth: 1,
			},
			{
				Kind:        ShapeCircle,
				Center:      V(14, -8),
				Radius:      5,
				Color:       Orange,
				Fill:        true,
				StrokeWidth: 1,
			},
		},
		Collision: CollisionRect(60, 20),
		Scale:     1,
	}
}

// eliteGuardBlueprint is a heavy octagon ringed by a stroke shell.
func eliteGuardBlueprint() *Blueprint {
	return &Blueprint{
		Name: BlueprintEliteGuard,
		Shapes: []Shape{
			{
				Kind:        ShapePolygon,
				Vertices:    regularPolygon(8, 26),
				Color:       Orange,
				Fill:        true,
				StrokeWidth: 2,
			},
			{
				Kind:        ShapeCircle,
				Radius:      30,
				Color:       Red,
				StrokeWidth: 2,
			},
			{
				Kind:        ShapeCircle,
				Radius:      7,
				Color:       Yellow,
				Fill:        true,
				StrokeWidth: 1,
			},
		},
		Collision: CollisionPolygon(regularPolygon(8, 26)...),
		Scale:     1,
	}
}

// bossDiamondKingBlueprint is a huge red diamond hull with a nested inner
// diamond and a yellow core.
func bossDiamondKingBlueprint() *Blueprint {
	const size = 60.0
	outer := []Vec2{V(0, size), V(-size, 0), V(0, -size), V(size, 0)}
	inner := []Vec2{V(0, size/2), V(-size/2, 0), V(0, -size/2), V(size/2, 0)}
	return &Blueprint{
		Name: BlueprintBossDiamondKing,
		Shapes: []Shape{
			{
				Kind:        ShapePolygon,
				Vertices:    outer,
				Color:       Red,
				Fill:        true,
				StrokeWidth: 3,
			},
			{
				Kind:        ShapePolygon,
				Vertices:    inner,
				Color:       Orange,
				Fill:        true,
				StrokeWidth: 2,
			},
			{
				Kind:        ShapeCircle,
				Radius:      10,
				Color:       Yellow,
				Fill:        true,
				StrokeWidth: 1,
			},
		},
		Collision: CollisionPolygon(outer...),
		Scale:     1,
	}
}

// bossHexFortressBlueprint is a double-walled orange hexagon fortress.
func bossHexFortressBlueprint() *Blueprint {
	return &Blueprint{
		Name: BlueprintBossHexFortress,
		Shapes: []Shape{
			{
				Kind:        ShapePolygon,
				Vertices:    regularPolygon(6, 60),
				Color:       Orange,
				Fill:        true,
				StrokeWidth: 3,
			},
			{
				Kind:        ShapePolygon,
				Vertices:    regularPolygon(6, 36),
				Color:       Red,
				Fill:        true,
				StrokeWidth: 2,
			},
			{
				Kind:        ShapeCircle,
				Radius:      12,
				Color:       Yellow,
				Fill:        true,
				StrokeWidth: 1,
			},
		},
		Collision: CollisionPolygon(regularPolygon(6, 60)...),
		Scale:     1,
	}
}

// bossTriangleBlueprint is a fast magenta attack wedge pointed at the player.
func bossTriangleBlueprint() *Blueprint {
	hull := []Vec2{V(0, -60), V(-50, 40), V(50, 40)}
	return &Blueprint{
		Name: BlueprintBossTriangle,
		Shapes: []Shape{
			{
				Kind:        ShapePolygon,
				Vertices:    hull,
				Color:       Magenta,
				Fill:        true,
				StrokeWidth: 3,
			},
			{
				Kind:        ShapeCircle,
				Center:      V(0, 10),
				Radius:      14,
				Color:       White,
				Fill:        true,
				StrokeWidth: 1,
			},
		},
		Collision: CollisionPolygon(hull...),
		Scale:     1,
	}
}

// regularPolygon generates n vertices on a circle of the given radius,
// starting from the bottom and winding counterclockwise.
func regularPolygon(n int, radius float64) []Vec2 {
	vertices := make([]Vec2, 0, n)
	for i := 0; i < n; i++ {
		angle := float64(i)*2*math.Pi/float64(n) - math.Pi/2
		vertices = append(vertices, V(radius*math.Cos(angle), radius*math.Sin(angle)))
	}
	return vertices
}

// starPolygon generates a star with the given number of points,
// alternating between the outer and inner radius.
func starPolygon(points int, outer, inner float64) []Vec2 {
	vertices := make([]Vec2, 0, points*2)
	for i := 0; i < points*2; i++ {
		angle := float64(i)*math.Pi/float64(points) - math.Pi/2
		r := outer
		if i%2 == 1 {
			r = inner
		}
		vertices = append(vertices, V(r*math.Cos(angle), r*math.Sin(angle)))
	}
	return vertices
}
