package geometry

import "github.com/prahaas123/RC-Plane-Calculator/pkg/geo"

// station is one spanwise chord station of a surface: the leading-edge X,
// the spanwise Y, and the local chord.
type station struct {
	leX   float64
	y     float64
	chord float64
}

// stations walks the panel chain and returns the chord stations from root
// to tip, including the root itself.
func stations(rootChord float64, panels []Panel) []station {
	out := make([]station, 0, len(panels)+1)
	out = append(out, station{leX: 0, y: 0, chord: rootChord})

	leX, y := 0.0, 0.0
	for _, p := range panels {
		leX += p.SweepOffset
		y += p.Span
		out = append(out, station{leX: leX, y: y, chord: p.TipChord})
	}
	return out
}

// Outline returns the closed planform outline of the full surface, both
// halves, in surface-local coordinates (root leading edge at the origin,
// X aft, Y toward the right tip). The outline traces the leading edge from
// the left tip to the right tip and the trailing edge back.
func Outline(rootChord float64, panels []Panel) []geo.Point {
	st := stations(rootChord, panels)
	n := len(st)

	outline := make([]geo.Point, 0, 4*n)

	// Leading edge, left tip to root.
	for i := n - 1; i >= 1; i-- {
		outline = append(outline, geo.Pt(st[i].leX, -st[i].y))
	}
	// Leading edge, root to right tip.
	for i := 0; i < n; i++ {
		outline = append(outline, geo.Pt(st[i].leX, st[i].y))
	}
	// Trailing edge, right tip to root.
	for i := n - 1; i >= 0; i-- {
		outline = append(outline, geo.Pt(st[i].leX+st[i].chord, st[i].y))
	}
	// Trailing edge, root to left tip.
	for i := 1; i < n; i++ {
		outline = append(outline, geo.Pt(st[i].leX+st[i].chord, -st[i].y))
	}

	return outline
}
