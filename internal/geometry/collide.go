package geometry

import "math"

// Transform places a shape in world space: local coordinates are scaled,
// rotated counterclockwise, then translated.
type Transform struct {
	Position Vec2
	Rotation float64
	Scale    float64
}

// NewTransform builds an unrotated, unit-scale transform at the
// given position.
func NewTransform(pos Vec2) Transform {
	return Transform{Position: pos, Scale: 1}
}

// Apply maps a local-space point into world space.
func (t Transform) Apply(p Vec2) Vec2 {
	return p.Scale(t.Scale).Rotate(t.Rotation).Add(t.Position)
}

// Intersects reports whether two collision shapes overlap in world space
// after applying their transforms. Exact edge contact counts as
// non-colliding: every distance comparison is a strict inequality, so
// shapes at rest contact do not flicker in and out of collision.
//
// Polygonal collision shapes must be convex; the separating-axis test
// does not handle concave outlines.
func Intersects(a CollisionShape, ta Transform, b CollisionShape, tb Transform) bool {
	aCircle := a.Kind == CollideCircle
	bCircle := b.Kind == CollideCircle

	switch {
	case aCircle && bCircle:
		return circlesOverlap(ta.Position, a.Radius*ta.Scale, tb.Position, b.Radius*tb.Scale)
	case aCircle:
		return circlePolygonOverlap(ta.Position, a.Radius*ta.Scale, worldPolygon(b, tb))
	case bCircle:
		return circlePolygonOverlap(tb.Position, b.Radius*tb.Scale, worldPolygon(a, ta))
	default:
		return polygonsOverlap(worldPolygon(a, ta), worldPolygon(b, tb))
	}
}

// worldPolygon returns the shape's outline as world-space vertices.
// Rectangles become their four corners.
func worldPolygon(c CollisionShape, t Transform) []Vec2 {
	var local []Vec2
	if c.Kind == CollideRectangle {
		hw, hh := c.Width/2, c.Height/2
		local = []Vec2{V(-hw, -hh), V(hw, -hh), V(hw, hh), V(-hw, hh)}
	} else {
		local = c.Vertices
	}

	world := make([]Vec2, len(local))
	for i, v := range local {
		world[i] = t.Apply(v)
	}
	return world
}

func circlesOverlap(ca Vec2, ra float64, cb Vec2, rb float64) bool {
	sum := ra + rb
	return ca.DistanceSq(cb) < sum*sum
}

// circlePolygonOverlap tests a circle against a convex polygon: overlap if
// the center lies inside the polygon, or if any edge passes strictly
// closer to the center than the radius.
func circlePolygonOverlap(center Vec2, radius float64, poly []Vec2) bool {
	if pointInPolygon(center, poly) {
		return true
	}
	for i := range poly {
		j := (i + 1) % len(poly)
		if distPointSegmentSq(center, poly[i], poly[j]) < radius*radius {
			return true
		}
	}
	return false
}

// polygonsOverlap runs a separating-axis test over the edge normals of both
// convex polygons. A separating axis where the projection intervals merely
// touch still separates.
func polygonsOverlap(a, b []Vec2) bool {
	return !hasSeparatingAxis(a, b) && !hasSeparatingAxis(b, a)
}

func hasSeparatingAxis(edges, other []Vec2) bool {
	for i := range edges {
		j := (i + 1) % len(edges)
		axis := edges[j].Sub(edges[i]).Perp()

		minA, maxA := projectOnto(edges, axis)
		minB, maxB := projectOnto(other, axis)
		if maxA <= minB || maxB <= minA {
			return true
		}
	}
	return false
}

func projectOnto(poly []Vec2, axis Vec2) (min, max float64) {
	min = math.Inf(1)
	max = math.Inf(-1)
	for _, v := range poly {
		d := v.Dot(axis)
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	return min, max
}

// pointInPolygon is a ray-crossing test against the polygon edges.
func pointInPolygon(p Vec2, poly []Vec2) bool {
	inside := false
	for i := range poly {
		j := (i + 1) % len(poly)
		vi, vj := poly[i], poly[j]
		if (vi.Y > p.Y) != (vj.Y > p.Y) {
			x := vi.X + (p.Y-vi.Y)/(vj.Y-vi.Y)*(vj.X-vi.X)
			if p.X < x {
				inside = !inside
			}
		}
	}
	return inside
}

// distPointSegmentSq returns the squared distance from p to the segment ab.
// A zero-length segment degrades to point distance.
func distPointSegmentSq(p, a, b Vec2) float64 {
	ab := b.Sub(a)
	lenSq := ab.LengthSq()
	if lenSq == 0 {
		return p.DistanceSq(a)
	}
	t := p.Sub(a).Dot(ab) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return p.DistanceSq(a.Add(ab.Scale(t)))
}
