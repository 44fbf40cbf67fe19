// Package render draws a scene2d.Scene as a standalone SVG document.
// The drawing is a top view: span runs horizontally, the nose points up.
package render

import (
	"fmt"
	"strings"

	"github.com/prahaas123/RC-Plane-Calculator/pkg/scene2d"
)

const (
	marginCm     = 5.0
	pxPerCm      = 4.0
	strokeWidth  = 0.5
	markerStroke = 0.4
)

var surfaceFill = map[string]string{
	"wing": "#9ec5e8",
	"tail": "#c5e8a0",
}

var markerColor = map[string]string{
	"wing_ac":       "#888888",
	"neutral_point": "#d9822b",
	"cg_target":     "#c0392b",
}

// SVG renders the scene as an SVG document. Scene coordinates are in cm;
// span maps to the horizontal axis and chordwise position to the vertical
// axis, so the aircraft is drawn nose-up.
func SVG(scene *scene2d.Scene) []byte {
	b := scene.Bounds
	width := (b.MaxY - b.MinY) + 2*marginCm
	height := (b.MaxX - b.MinX) + 2*marginCm

	var sb strings.Builder
	fmt.Fprintf(&sb,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="%.2f %.2f %.2f %.2f">`+"\n",
		width*pxPerCm, height*pxPerCm,
		b.MinY-marginCm, b.MinX-marginCm, width, height)

	fmt.Fprintf(&sb, `<title>%s</title>`+"\n", escape(scene.Metadata.Name))

	// Centerline.
	fmt.Fprintf(&sb,
		`<line x1="0" y1="%.2f" x2="0" y2="%.2f" stroke="#bbbbbb" stroke-width="%.2f" stroke-dasharray="2 2"/>`+"\n",
		b.MinX-marginCm/2, b.MaxX+marginCm/2, markerStroke)

	for _, s := range scene.Surfaces {
		writeSurface(&sb, s)
	}
	for _, m := range scene.Markers {
		writeMarker(&sb, m, scene)
	}

	sb.WriteString("</svg>\n")
	return []byte(sb.String())
}

func writeSurface(sb *strings.Builder, s scene2d.Surface) {
	fill, ok := surfaceFill[s.Name]
	if !ok {
		fill = "#cccccc"
	}

	var pts strings.Builder
	for i, c := range s.Outline {
		if i > 0 {
			pts.WriteByte(' ')
		}
		// Scene (x=chordwise, y=spanwise) to SVG (x=span, y=chord).
		fmt.Fprintf(&pts, "%.2f,%.2f", c[1], c[0])
	}
	fmt.Fprintf(sb,
		`<polygon points="%s" fill="%s" fill-opacity="0.6" stroke="#334455" stroke-width="%.2f"/>`+"\n",
		pts.String(), fill, strokeWidth)

	mac := s.MACLine
	fmt.Fprintf(sb,
		`<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="#334455" stroke-width="%.2f" stroke-dasharray="1 1"/>`+"\n",
		mac[0][1], mac[0][0], mac[1][1], mac[1][0], markerStroke)
}

func writeMarker(sb *strings.Builder, m scene2d.Marker, scene *scene2d.Scene) {
	color, ok := markerColor[m.Kind]
	if !ok {
		color = "#000000"
	}

	// Markers span a short horizontal bar across the centerline.
	half := scene.Metadata.WingSpanCm / 8
	if half <= 0 {
		half = marginCm
	}

	fmt.Fprintf(sb,
		`<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%.2f"/>`+"\n",
		-half, m.X, half, m.X, color, markerStroke)
	fmt.Fprintf(sb,
		`<text x="%.2f" y="%.2f" font-size="3" fill="%s">%s %.1f</text>`+"\n",
		half+1, m.X+1, color, escape(m.Label), m.X)
}

func escape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	return r.Replace(s)
}
