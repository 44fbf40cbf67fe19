package scene2d

import (
	"time"

	"github.com/google/uuid"

	"github.com/prahaas123/RC-Plane-Calculator/pkg/analysis"
	"github.com/prahaas123/RC-Plane-Calculator/pkg/balance"
	"github.com/prahaas123/RC-Plane-Calculator/pkg/geo"
	"github.com/prahaas123/RC-Plane-Calculator/pkg/geometry"
	"github.com/prahaas123/RC-Plane-Calculator/pkg/spec"
)

// Assemble projects the resolved aircraft into a 2D scene suitable for
// SVG rendering. The projector only consumes analysis output; it produces
// no data the analysis depends on.
func Assemble(s *spec.AircraftSpec, resolved *analysis.ResolvedAircraft) *Scene {
	scene := &Scene{
		Metadata: assembleMetadata(s, resolved),
	}

	wing := assembleSurface("wing", s.Wing, resolved.Wing, 0)
	scene.Surfaces = append(scene.Surfaces, wing)

	// The tail is drawn only for conventional layouts; a flying wing
	// ignores any tail data supplied.
	if resolved.Topology == balance.TopologyConventional && resolved.Tail != nil && s.HasTail() {
		tail := assembleSurface("tail", *s.Tail, *resolved.Tail, s.Layout.WingTailDistance)
		scene.Surfaces = append(scene.Surfaces, tail)
	}

	scene.Markers = assembleMarkers(resolved)
	scene.Bounds = assembleBounds(scene)

	return scene
}

func assembleMetadata(s *spec.AircraftSpec, resolved *analysis.ResolvedAircraft) Metadata {
	return Metadata{
		ID:          uuid.NewString(),
		Name:        s.Name,
		Topology:    string(resolved.Topology),
		Units:       "cm",
		WingSpanCm:  resolved.Wing.Span,
		WingAreaCm2: resolved.Wing.Area,
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
	}
}

func assembleSurface(name string, def spec.SurfaceDef, sa geometry.SurfaceAnalysis, datumX float64) Surface {
	outline := geometry.Outline(def.RootChord, def.Panels)

	coords := make([][2]float64, len(outline))
	for i, p := range outline {
		coords[i] = [2]float64{p.X + datumX, p.Y}
	}

	macStart := geo.Pt(sa.MACLeadingEdgeX+datumX, sa.MACSpanY)
	macEnd := geo.Pt(sa.MACLeadingEdgeX+sa.MAC+datumX, sa.MACSpanY)

	return Surface{
		Name:    name,
		Outline: coords,
		MACLine: [2][2]float64{{macStart.X, macStart.Y}, {macEnd.X, macEnd.Y}},
		DatumX:  datumX,
		AreaCm2: sa.Area,
		SpanCm:  sa.Span,
		MACCm:   sa.MAC,
	}
}

func assembleMarkers(resolved *analysis.ResolvedAircraft) []Marker {
	return []Marker{
		{Kind: "wing_ac", Label: "AC", X: resolved.Wing.ACPosition, Y: 0},
		{Kind: "neutral_point", Label: "NP", X: resolved.Balance.NeutralPoint, Y: 0},
		{Kind: "cg_target", Label: "CG", X: resolved.CGTarget, Y: 0},
	}
}

func assembleBounds(scene *Scene) Bounds {
	var pts []geo.Point
	for _, s := range scene.Surfaces {
		for _, c := range s.Outline {
			pts = append(pts, geo.Pt(c[0], c[1]))
		}
	}
	for _, m := range scene.Markers {
		pts = append(pts, geo.Pt(m.X, m.Y))
	}

	min, max := geo.Bounds(pts)
	return Bounds{MinX: min.X, MinY: min.Y, MaxX: max.X, MaxY: max.Y}
}
