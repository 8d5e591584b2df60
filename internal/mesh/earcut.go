package mesh

// EarClipper triangulates simple polygons by ear clipping in float64.
// Rings whose points only differ below float32 precision need it instead of
// Tess2.
//
// Either winding is accepted; output triangles are counter-clockwise.
// Collinear and repeated vertices are skipped. Self-intersecting rings and
// rings that enclose no area fail with ErrTriangulationFailed.
type EarClipper struct{}

// Triangulate implements Triangulator.
func (EarClipper) Triangulate(ring [][2]float64) ([]int, error) {
	n := len(ring)
	if n < 3 {
		return nil, &ErrTriangulationFailed{Points: n, Reason: "fewer than 3 points"}
	}

	area := signedArea(ring)
	if area == 0 {
		return nil, &ErrTriangulationFailed{Points: n, Reason: "ring encloses no area"}
	}

	// Work on a counter-clockwise list of live vertex ids.
	live := make([]int, n)
	for i := range live {
		if area > 0 {
			live[i] = i
		} else {
			live[i] = n - 1 - i
		}
	}

	indices := make([]int, 0, 3*(n-2))
	for len(live) > 3 {
		clipped := false
		for i := range live {
			prev := live[(i+len(live)-1)%len(live)]
			cur := live[i]
			next := live[(i+1)%len(live)]

			turn := cross(ring[prev], ring[cur], ring[next])
			if turn == 0 {
				// Collinear or repeated: drop without emitting a triangle.
				live = append(live[:i], live[i+1:]...)
				clipped = true
				break
			}
			if turn < 0 {
				continue // reflex
			}
			if containsOther(ring, live, prev, cur, next) {
				continue
			}

			indices = append(indices, prev, cur, next)
			live = append(live[:i], live[i+1:]...)
			clipped = true
			break
		}
		if !clipped {
			return nil, &ErrTriangulationFailed{Points: n, Reason: "no ear found, ring may self-intersect"}
		}
	}

	if cross(ring[live[0]], ring[live[1]], ring[live[2]]) > 0 {
		indices = append(indices, live[0], live[1], live[2])
	}

	if len(indices) == 0 {
		return nil, &ErrTriangulationFailed{Points: n, Reason: "ring encloses no area"}
	}
	return indices, nil
}

// containsOther reports whether any live vertex other than the triangle's
// corners lies inside or on the triangle (a, b, c).
func containsOther(ring [][2]float64, live []int, a, b, c int) bool {
	pa, pb, pc := ring[a], ring[b], ring[c]
	for _, id := range live {
		if id == a || id == b || id == c {
			continue
		}
		p := ring[id]
		if p == pa || p == pb || p == pc {
			continue
		}
		if cross(pa, pb, p) >= 0 && cross(pb, pc, p) >= 0 && cross(pc, pa, p) >= 0 {
			return true
		}
	}
	return false
}

// cross is the z component of (b-a) x (c-b): positive for a left turn.
func cross(a, b, c [2]float64) float64 {
	return (b[0]-a[0])*(c[1]-b[1]) - (b[1]-a[1])*(c[0]-b[0])
}

// signedArea is twice the shoelace area: positive for counter-clockwise rings.
func signedArea(ring [][2]float64) float64 {
	var sum float64
	for i := range ring {
		j := (i + 1) % len(ring)
		sum += ring[i][0]*ring[j][1] - ring[j][0]*ring[i][1]
	}
	return sum
}
