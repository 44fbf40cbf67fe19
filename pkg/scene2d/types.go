package scene2d

// Scene is the complete 2D scene output for a top-down planform renderer.
// Coordinates are centimeters in the wing datum: X aft from the wing root
// leading edge, Y spanwise from the centerline.
type Scene struct {
	Metadata Metadata  `json:"metadata"`
	Surfaces []Surface `json:"surfaces"`
	Markers  []Marker  `json:"markers"`
	Bounds   Bounds    `json:"bounds"`
}

// Metadata holds aircraft-level summary data.
type Metadata struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Topology    string  `json:"topology"`
	Units       string  `json:"units"`
	WingSpanCm  float64 `json:"wing_span_cm"`
	WingAreaCm2 float64 `json:"wing_area_cm2"`
	GeneratedAt string  `json:"generated_at"`
}

// Surface describes one lifting surface in the 2D view.
type Surface struct {
	Name    string       `json:"name"`
	Outline [][2]float64 `json:"outline"`
	// MACLine is the MAC chord segment drawn at the spanwise MAC station.
	MACLine [2][2]float64 `json:"mac_line"`
	// DatumX is the chordwise offset of this surface's root leading edge
	// from the wing datum.
	DatumX  float64 `json:"datum_x"`
	AreaCm2 float64 `json:"area_cm2"`
	SpanCm  float64 `json:"span_cm"`
	MACCm   float64 `json:"mac_cm"`
}

// Marker is a labeled longitudinal position on the centerline.
type Marker struct {
	Kind  string  `json:"kind"` // "neutral_point", "cg_target", "wing_ac"
	Label string  `json:"label"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

// Bounds is the axis-aligned extent of the scene, used for viewports.
type Bounds struct {
	MinX float64 `json:"min_x"`
	MinY float64 `json:"min_y"`
	MaxX float64 `json:"max_x"`
	MaxY float64 `json:"max_y"`
}
