// Package geometry defines the procedural shapes the shooter is drawn with
// and the collision primitives the simulation tests against. Everything here
// is immutable value data plus pure geometric queries; blueprints are shared
// by reference across every entity of the same kind.
package geometry

import (
	"errors"
	"fmt"
	"math"
)

// ErrMalformedBlueprint marks shape or blueprint data that violates a
// structural invariant. Malformed blueprints are rejected at load time and
// never reach the simulation.
var ErrMalformedBlueprint = errors.New("malformed blueprint")

// Color is a normalized RGBA color as authored in blueprints.
type Color struct {
	R float64 `yaml:"r"`
	G float64 `yaml:"g"`
	B float64 `yaml:"b"`
	A float64 `yaml:"a"`
}

// Common blueprint colors.
var (
	White   = Color{1, 1, 1, 1}
	Red     = Color{1, 0, 0, 1}
	Green   = Color{0, 1, 0, 1}
	Blue    = Color{0, 0, 1, 1}
	Yellow  = Color{1, 1, 0, 1}
	Cyan    = Color{0, 1, 1, 1}
	Magenta = Color{1, 0, 1, 1}
	Orange  = Color{1, 0.5, 0, 1}
)

// Valid reports whether every channel is within [0, 1].
func (c Color) Valid() bool {
	for _, v := range []float64{c.R, c.G, c.B, c.A} {
		if v < 0 || v > 1 || math.IsNaN(v) {
			return false
		}
	}
	return true
}

// ShapeKind discriminates the visual shape variants.
type ShapeKind string

const (
	ShapePolygon ShapeKind = "polygon"
	ShapeArc     ShapeKind = "arc"
	ShapeCircle  ShapeKind = "circle"
	ShapeLine    ShapeKind = "line"
)

// Shape is one visual primitive of a blueprint. The Kind field selects the
// variant; only the fields for that variant are meaningful. A flat struct
// keeps shapes trivially serializable to YAML.
type Shape struct {
	Kind ShapeKind `yaml:"kind"`

	// Polygon: ordered vertices relative to the entity center.
	Vertices []Vec2 `yaml:"vertices,omitempty"`

	// Arc and Circle: center offset and radius.
	Center Vec2    `yaml:"center,omitempty"`
	Radius float64 `yaml:"radius,omitempty"`

	// Arc: sweep in radians.
	StartAngle float64 `yaml:"start_angle,omitempty"`
	EndAngle   float64 `yaml:"end_angle,omitempty"`

	// Line: endpoints relative to the entity center.
	Start Vec2 `yaml:"start,omitempty"`
	End   Vec2 `yaml:"end,omitempty"`

	Color       Color   `yaml:"color"`
	Fill        bool    `yaml:"fill,omitempty"`
	StrokeWidth float64 `yaml:"stroke_width,omitempty"`
}

// Validate checks the variant's structural invariants.
func (s Shape) Validate() error {
	if !s.Color.Valid() {
		return fmt.Errorf("geometry: shape %s has out-of-range color: %w", s.Kind, ErrMalformedBlueprint)
	}

	switch s.Kind {
	case ShapePolygon:
		if len(s.Vertices) < 3 {
			return fmt.Errorf("geometry: polygon has %d vertices, need at least 3: %w", len(s.Vertices), ErrMalformedBlueprint)
		}
	case ShapeArc:
		if s.Radius <= 0 {
			return fmt.Errorf("geometry: arc radius %v must be positive: %w", s.Radius, ErrMalformedBlueprint)
		}
	case ShapeCircle:
		if s.Radius <= 0 {
			return fmt.Errorf("geometry: circle radius %v must be positive: %w", s.Radius, ErrMalformedBlueprint)
		}
	case ShapeLine:
		if s.Start == s.End {
			return fmt.Errorf("geometry: line has zero length: %w", ErrMalformedBlueprint)
		}
	default:
		return fmt.Errorf("geometry: unknown shape kind %q: %w", s.Kind, ErrMalformedBlueprint)
	}
	return nil
}

// CollisionKind discriminates the collision shape variants.
type CollisionKind string

const (
	CollideCircle    CollisionKind = "circle"
	CollideRectangle CollisionKind = "rectangle"
	CollidePolygon   CollisionKind = "polygon"
)

// CollisionShape is the simplified geometry used only for intersection
// tests, decoupled from a blueprint's visual shapes.
type CollisionShape struct {
	Kind CollisionKind `yaml:"kind"`

	// Circle.
	Radius float64 `yaml:"radius,omitempty"`

	// Rectangle, centered on the entity position.
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`

	// Polygon: convex, ordered vertices relative to the entity center.
	Vertices []Vec2 `yaml:"vertices,omitempty"`
}

// CollisionCircle builds a circular collision shape.
func CollisionCircle(radius float64) CollisionShape {
	return CollisionShape{Kind: CollideCircle, Radius: radius}
}

// CollisionRect builds a rectangular collision shape centered on the entity.
func CollisionRect(width, height float64) CollisionShape {
	return CollisionShape{Kind: CollideRectangle, Width: width, Height: height}
}

// CollisionPolygon builds a convex polygonal collision shape.
func CollisionPolygon(vertices ...Vec2) CollisionShape {
	return CollisionShape{Kind: CollidePolygon, Vertices: vertices}
}

// Validate checks the variant's structural invariants.
func (c CollisionShape) Validate() error {
	switch c.Kind {
	case CollideCircle:
		if c.Radius <= 0 {
			return fmt.Errorf("geometry: collision circle radius %v must be positive: %w", c.Radius, ErrMalformedBlueprint)
		}
	case CollideRectangle:
		if c.Width <= 0 || c.Height <= 0 {
			return fmt.Errorf("geometry: collision rectangle %vx%v must have positive extent: %w", c.Width, c.Height, ErrMalformedBlueprint)
		}
	case CollidePolygon:
		if len(c.Vertices) < 3 {
			return fmt.Errorf("geometry: collision polygon has %d vertices, need at least 3: %w", len(c.Vertices), ErrMalformedBlueprint)
		}
		for i, v := range c.Vertices {
			if v == c.Vertices[(i+1)%len(c.Vertices)] {
				return fmt.Errorf("geometry: collision polygon repeats vertex %v: %w", v, ErrMalformedBlueprint)
			}
		}
	default:
		return fmt.Errorf("geometry: unknown collision kind %q: %w", c.Kind, ErrMalformedBlueprint)
	}
	return nil
}

// BoundingRadius returns the radius of the smallest origin-centered circle
// that encloses the shape in local space. Used to size broad-phase buckets.
func (c CollisionShape) BoundingRadius() float64 {
	switch c.Kind {
	case CollideCircle:
		return c.Radius
	case CollideRectangle:
		return math.Hypot(c.Width/2, c.Height/2)
	case CollidePolygon:
		max := 0.0
		for _, v := range c.Vertices {
			if l := v.Length(); l > max {
				max = l
			}
		}
		return max
	}
	return 0
}
