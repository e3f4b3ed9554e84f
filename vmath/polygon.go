package vmath

import "math"

// Polygon operations assume convex, counter-clockwise vertex order.
// Split results preserve both properties by construction; validity is
// re-checked anyway so degenerate output is rejected rather than emitted.

// PolygonArea returns the signed shoelace area (positive for CCW)
func PolygonArea(poly []Vec2) float64 {
	if len(poly) < 3 {
		return 0
	}
	area := 0.0
	for i := range poly {
		j := (i + 1) % len(poly)
		area += poly[i].Cross(poly[j])
	}
	return area / 2
}

// PolygonCentroid returns the area-weighted centroid
// Falls back to the vertex mean for near-zero areas
func PolygonCentroid(poly []Vec2) Vec2 {
	area := PolygonArea(poly)
	if math.Abs(area) < Epsilon {
		var sum Vec2
		for _, p := range poly {
			sum = sum.Add(p)
		}
		if len(poly) == 0 {
			return Vec2{}
		}
		return sum.Scale(1 / float64(len(poly)))
	}
	var c Vec2
	for i := range poly {
		j := (i + 1) % len(poly)
		cross := poly[i].Cross(poly[j])
		c.X += (poly[i].X + poly[j].X) * cross
		c.Y += (poly[i].Y + poly[j].Y) * cross
	}
	return c.Scale(1 / (6 * area))
}

// PolygonBoundingRadius returns the largest vertex distance from center
func PolygonBoundingRadius(poly []Vec2, center Vec2) float64 {
	max := 0.0
	for _, p := range poly {
		if d := p.DistanceTo(center); d > max {
			max = d
		}
	}
	return max
}

// IsConvex reports whether poly is convex with CCW winding and no
// zero-length edges or collinear-triple collapse beyond tolerance
func IsConvex(poly []Vec2, minEdge float64) bool {
	n := len(poly)
	if n < 3 {
		return false
	}
	for i := 0; i < n; i++ {
		a := poly[i]
		b := poly[(i+1)%n]
		c := poly[(i+2)%n]
		edge := b.Sub(a)
		if edge.LengthSq() < minEdge*minEdge {
			return false
		}
		if edge.Cross(c.Sub(b)) < Epsilon {
			return false
		}
	}
	return true
}

// SplitConvex cuts a convex CCW polygon with the directed line through
// point along dir. It returns either two valid convex pieces or ok=false;
// it never emits self-intersecting or zero-area output.
// minArea rejects sliver pieces, minEdge rejects degenerate edges.
func SplitConvex(poly []Vec2, point, dir Vec2, minArea, minEdge float64) (left, right []Vec2, ok bool) {
	n := len(poly)
	if n < 3 || dir.LengthSq() < Epsilon {
		return nil, nil, false
	}

	side := make([]float64, n)
	for i, p := range poly {
		side[i] = dir.Cross(p.Sub(point))
	}

	left = make([]Vec2, 0, n+2)
	right = make([]Vec2, 0, n+2)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		a, b := poly[i], poly[j]
		sa, sb := side[i], side[j]

		if sa >= 0 {
			left = append(left, a)
		}
		if sa <= 0 {
			right = append(right, a)
		}

		// Edge crosses the cut line: insert the intersection in both pieces
		if (sa > Epsilon && sb < -Epsilon) || (sa < -Epsilon && sb > Epsilon) {
			t := sa / (sa - sb)
			hit := a.Add(b.Sub(a).Scale(t))
			left = append(left, hit)
			right = append(right, hit)
		}
	}

	if !IsConvex(left, minEdge) || !IsConvex(right, minEdge) {
		return nil, nil, false
	}
	if PolygonArea(left) < minArea || PolygonArea(right) < minArea {
		return nil, nil, false
	}
	return left, right, true
}

// GenerateOutline builds a jittered convex outline around the origin with
// the requested vertex count and base radius. Radial jitter starts in
// [0.8, 1.2] and shrinks toward a regular polygon until the result passes
// the convexity check, so the convex-body invariant holds at creation.
func GenerateOutline(vertexCount int, baseRadius float64, rng *FastRand) []Vec2 {
	if vertexCount < 3 {
		vertexCount = 3
	}
	poly := make([]Vec2, vertexCount)
	spread := 0.2
	for attempt := 0; attempt < 8; attempt++ {
		for i := range poly {
			theta := (float64(i) / float64(vertexCount)) * 2 * math.Pi
			jitter := rng.Range(1-spread, 1+spread)
			poly[i] = FromAngle(theta).Scale(baseRadius * jitter)
		}
		if IsConvex(poly, baseRadius*0.01) {
			return poly
		}
		spread *= 0.5
	}
	for i := range poly {
		theta := (float64(i) / float64(vertexCount)) * 2 * math.Pi
		poly[i] = FromAngle(theta).Scale(baseRadius)
	}
	return poly
}

// TranslatePolygon returns poly offset by delta
func TranslatePolygon(poly []Vec2, delta Vec2) []Vec2 {
	out := make([]Vec2, len(poly))
	for i, p := range poly {
		out[i] = p.Add(delta)
	}
	return out
}

// ScalePolygon returns poly with every vertex scaled about the origin.
// Area scales by factor squared.
func ScalePolygon(poly []Vec2, factor float64) []Vec2 {
	out := make([]Vec2, len(poly))
	for i, p := range poly {
		out[i] = p.Scale(factor)
	}
	return out
}

// TransformPolygon returns local-space poly rotated by angle then offset
// to position, producing arena-space vertices
func TransformPolygon(poly []Vec2, angle float64, position Vec2) []Vec2 {
	out := make([]Vec2, len(poly))
	for i, p := range poly {
		out[i] = p.Rotated(angle).Add(position)
	}
	return out
}
