package charts

import (
	"fmt"
	"strings"
)

// tension is the cardinal-spline coefficient used for all smoothed
// curves. Neighboring points set the tangent at each end of a segment.
const tension = 0.3

// Point is a position in chart coordinate space.
type Point struct {
	X float64
	Y float64
}

// BuildPath converts an ordered point sequence into an SVG path
// descriptor of cubic Bézier segments interpolating every point. For a
// pair (p1,p2) the control points come from the clamped neighbors p0
// and p3:
//
//	cp1 = p1 + (p2-p0)*tension
//	cp2 = p2 - (p3-p1)*tension
//
// With closed true the path drops straight to baseline under the last
// point, runs back under the first and closes, forming a silhouette for
// area fill. Fewer than two points yields an empty path, not an error.
func BuildPath(points []Point, closed bool, baseline float64) string {
	if len(points) < 2 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "M %s,%s", coord(points[0].X), coord(points[0].Y))

	for i := 0; i < len(points)-1; i++ {
		p1 := points[i]
		p2 := points[i+1]
		p0 := points[clamp(i-1, len(points))]
		p3 := points[clamp(i+2, len(points))]

		cp1x := p1.X + (p2.X-p0.X)*tension
		cp1y := p1.Y + (p2.Y-p0.Y)*tension
		cp2x := p2.X - (p3.X-p1.X)*tension
		cp2y := p2.Y - (p3.Y-p1.Y)*tension

		fmt.Fprintf(&b, " C %s,%s %s,%s %s,%s",
			coord(cp1x), coord(cp1y), coord(cp2x), coord(cp2y), coord(p2.X), coord(p2.Y))
	}

	if closed {
		last := points[len(points)-1]
		first := points[0]
		fmt.Fprintf(&b, " L %s,%s L %s,%s Z",
			coord(last.X), coord(baseline), coord(first.X), coord(baseline))
	}

	return b.String()
}

// clamp bounds an index into [0, n).
func clamp(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// coord formats a coordinate with fixed precision so identical input
// always renders the identical path.
func coord(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
