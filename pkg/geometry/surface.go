package geometry

// Panel is one trapezoidal segment of a lifting surface. Panels chain
// root-to-tip: a panel's root chord is the previous panel's tip chord,
// and the first panel's root chord is the surface root chord.
type Panel struct {
	// TipChord is the chord length at the outer edge of the panel, in cm.
	TipChord float64 `yaml:"tip_chord" json:"tip_chord"`
	// SweepOffset is the leading-edge X displacement of the panel tip
	// relative to its own root, in cm. Positive is aft.
	SweepOffset float64 `yaml:"sweep_offset" json:"sweep_offset"`
	// Span is the half-span contribution of the panel, in cm.
	Span float64 `yaml:"span" json:"span"`
}

// SurfaceAnalysis holds the aggregate planform properties of one lifting
// surface. Lengths are in cm and areas in cm²; Area and Span cover both
// sides of the symmetric surface.
type SurfaceAnalysis struct {
	Area        float64 `json:"area"`
	Span        float64 `json:"span"`
	MAC         float64 `json:"mac"`
	ACPosition  float64 `json:"ac_position"`
	AspectRatio float64 `json:"aspect_ratio"`
	RootChord   float64 `json:"root_chord"`
	// MACLeadingEdgeX is the chordwise position of the MAC leading edge,
	// measured from the surface root leading edge. Used for %MAC readouts.
	MACLeadingEdgeX float64 `json:"mac_leading_edge_x"`
	// MACSpanY is the spanwise station of the MAC on one half of the
	// surface, used to place the MAC chord line in drawings.
	MACSpanY float64 `json:"mac_span_y"`
}

// acChordFraction places the aerodynamic center at quarter-chord of the
// MAC. Thin-airfoil approximation; deliberately not configurable.
const acChordFraction = 0.25

// Analyze reduces a root chord plus an ordered root-to-tip panel sequence
// into aggregate planform properties. It is deterministic and total:
// zero-area or zero-span panels contribute zero weight, and every division
// is guarded so transient zero inputs from interactive editing never
// produce NaN or Inf.
func Analyze(rootChord float64, panels []Panel) SurfaceAnalysis {
	if len(panels) == 0 {
		return SurfaceAnalysis{RootChord: rootChord}
	}

	var (
		sumArea      float64 // one side
		sumSpan      float64 // one side
		sumAreaMAC   float64
		sumAreaAC    float64
		sumAreaMACLE float64
		sumAreaMACY  float64
	)

	currentRoot := rootChord
	currentLeadingEdgeX := 0.0
	currentRootY := 0.0

	for _, p := range panels {
		panelArea := (currentRoot + p.TipChord) / 2 * p.Span

		// Taper ratio, with λ := 1 when the local root chord is zero.
		taper := 1.0
		if currentRoot != 0 {
			taper = p.TipChord / currentRoot
		}

		// MAC length and its spanwise station local to the panel root.
		mac := 0.0
		yMAC := 0.0
		if denom := 1 + taper; denom != 0 {
			mac = (2.0 / 3.0) * currentRoot * (1 + taper + taper*taper) / denom
			yMAC = p.Span / 6 * (1 + 2*taper) / denom
		}

		// Sweep interpolated linearly along the panel span.
		macLeadingEdgeX := currentLeadingEdgeX
		if p.Span > 0 {
			macLeadingEdgeX += yMAC * (p.SweepOffset / p.Span)
		}

		ac := macLeadingEdgeX + acChordFraction*mac

		sumArea += panelArea
		sumSpan += p.Span
		sumAreaMAC += panelArea * mac
		sumAreaAC += panelArea * ac
		sumAreaMACLE += panelArea * macLeadingEdgeX
		sumAreaMACY += panelArea * (currentRootY + yMAC)

		currentRoot = p.TipChord
		currentLeadingEdgeX += p.SweepOffset
		currentRootY += p.Span
	}

	result := SurfaceAnalysis{
		Area:      2 * sumArea,
		Span:      2 * sumSpan,
		RootChord: rootChord,
	}

	if sumArea != 0 {
		result.MAC = sumAreaMAC / sumArea
		result.ACPosition = sumAreaAC / sumArea
		result.MACLeadingEdgeX = sumAreaMACLE / sumArea
		result.MACSpanY = sumAreaMACY / sumArea
	}
	if result.Area != 0 {
		result.AspectRatio = result.Span * result.Span / result.Area
	}

	return result
}
