package mesh

import (
	"math"
)

// MeshLine extrudes a polyline into a ribbon mesh.
//
// Every point yields two vertices, "up" then "down", offset perpendicular to
// the heading by the full width on each side (the ribbon is 2*width wide).
// Endpoints take the offsets of their only segment; interior points are
// mitered. Segment i is the quad (2i, 2i+1, 2i+2, 2i+3) split into the
// triangles (2i, 2i+1, 2i+2) and (2i+2, 2i+1, 2i+3).
//
// Miters are not clamped: very sharp turns produce long spikes.
//
// Fewer than 2 points returns an empty mesh with ErrDegenerateInput.
func MeshLine(points [][2]float64, width float64) (*Mesh, error) {
	n := len(points)
	if n < 2 {
		return &Mesh{}, &ErrDegenerateInput{Kind: "line", Points: n, Minimum: 2}
	}

	headings := make([]float64, n-1)
	for i := range headings {
		dx := points[i+1][0] - points[i][0]
		dy := points[i+1][1] - points[i][1]
		headings[i] = math.Atan2(dy, dx)
	}

	m := &Mesh{
		Vertices: make([]Vertex, 0, 2*n),
		Indices:  make([]int, 0, 6*(n-1)),
	}

	for i, p := range points {
		var up, down [2]float64
		switch i {
		case 0:
			up, down = offsets(p, headings[0], width)
		case n - 1:
			up, down = offsets(p, headings[n-2], width)
		default:
			up, down = miter(p, headings[i-1], headings[i], width)
		}
		m.Vertices = append(m.Vertices, vertex(up), vertex(down))
	}

	for s := 0; s < n-1; s++ {
		v := 2 * s
		m.Indices = append(m.Indices,
			v, v+1, v+2,
			v+2, v+1, v+3,
		)
	}

	return m, nil
}

// offsets returns p displaced by ±width along the right-hand normal of
// heading theta.
func offsets(p [2]float64, theta, width float64) (up, down [2]float64) {
	nx := width * math.Sin(theta)
	ny := -width * math.Cos(theta)
	return [2]float64{p[0] + nx, p[1] + ny}, [2]float64{p[0] - nx, p[1] - ny}
}

// parallelTolerance bounds |sin(next-prev)| below which two headings count
// as parallel. atan2 rounding leaves collinear segments around 1e-17 apart.
const parallelTolerance = 1e-9

// miter joins the segments entering and leaving p. Each side's vertex is the
// intersection of the two offset lines on that side. When the headings are
// parallel within parallelTolerance it is the midpoint of the two offset
// points instead.
func miter(p [2]float64, prev, next, width float64) (up, down [2]float64) {
	upPrev, downPrev := offsets(p, prev, width)
	upNext, downNext := offsets(p, next, width)

	sinPrev, cosPrev := math.Sincos(prev)
	sinNext, cosNext := math.Sincos(next)

	det := -sinPrev*cosNext + sinNext*cosPrev
	if math.Abs(det) < parallelTolerance {
		return midpoint(upPrev, upNext), midpoint(downPrev, downNext)
	}

	up = intersect(upPrev, sinPrev, cosPrev, upNext, sinNext, cosNext, det)
	down = intersect(downPrev, sinPrev, cosPrev, downNext, sinNext, cosNext, det)
	return up, down
}

// intersect solves for the crossing of two lines in the form a*x + b*y + c = 0
// with a = -sin, b = cos and c fixed by a point q on the line.
func intersect(q1 [2]float64, sin1, cos1 float64, q2 [2]float64, sin2, cos2, det float64) [2]float64 {
	a1, b1 := -sin1, cos1
	a2, b2 := -sin2, cos2
	c1 := q1[0]*sin1 - q1[1]*cos1
	c2 := q2[0]*sin2 - q2[1]*cos2

	return [2]float64{
		(b1*c2 - b2*c1) / det,
		(a2*c1 - a1*c2) / det,
	}
}

func midpoint(a, b [2]float64) [2]float64 {
	return [2]float64{(a[0] + b[0]) / 2, (a[1] + b[1]) / 2}
}
