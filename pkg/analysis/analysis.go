// Package analysis runs the full resolution pipeline on an aircraft spec:
// surface geometry, balance point, CG policy, loading metrics, and the
// propulsion estimate. Everything is recomputed from scratch on each call;
// there is no cached or mutated state.
package analysis

import (
	"fmt"

	"github.com/prahaas123/RC-Plane-Calculator/pkg/balance"
	"github.com/prahaas123/RC-Plane-Calculator/pkg/geometry"
	"github.com/prahaas123/RC-Plane-Calculator/pkg/propulsion"
	"github.com/prahaas123/RC-Plane-Calculator/pkg/spec"
	"github.com/prahaas123/RC-Plane-Calculator/pkg/validation"
)

const (
	cm2PerDm2 = 100.0
	cm2PerFt2 = 929.0304
	gPerOz    = 28.3495
)

// ResolvedAircraft holds the computed values for one aircraft configuration.
type ResolvedAircraft struct {
	Name string `json:"name"`

	Wing geometry.SurfaceAnalysis  `json:"wing"`
	Tail *geometry.SurfaceAnalysis `json:"tail,omitempty"`

	Topology balance.Topology `json:"topology"`
	Balance  balance.Result   `json:"balance"`

	StaticMarginPercent float64 `json:"static_margin_percent"`
	CGTarget            float64 `json:"cg_target"`
	CGPercentMAC        float64 `json:"cg_percent_mac"`

	AllUpWeightG     float64 `json:"all_up_weight_g"`
	WingLoadingGDm2  float64 `json:"wing_loading_g_dm2"`
	CubicWingLoading float64 `json:"cubic_wing_loading_oz_ft3"`

	Propulsion     *propulsion.Report `json:"propulsion,omitempty"`
	ThrustToWeight float64            `json:"thrust_to_weight"`
}

// Resolve runs the analysis pipeline on the spec. It computes surface
// geometry for wing and tail, solves the balance point, applies the
// static-margin policy, and derives loading and propulsion figures.
// Returns the resolved aircraft and an analytical validation report.
func Resolve(s *spec.AircraftSpec) (*ResolvedAircraft, *validation.Report, error) {
	report := validation.NewReport()

	// 1. Surface geometry
	wing := geometry.Analyze(s.Wing.RootChord, s.Wing.Panels)

	var tail *geometry.SurfaceAnalysis
	if s.HasTail() {
		t := geometry.Analyze(s.Tail.RootChord, s.Tail.Panels)
		tail = &t
	}

	// 2. Balance point
	topology := balance.Topology(s.Layout.Topology)
	layout := balance.Layout{
		Topology:         topology,
		WingTailDistance: s.Layout.WingTailDistance,
		TailEfficiency:   s.Layout.TailEfficiency,
	}
	result, err := balance.Solve(wing, tail, layout)
	if err != nil {
		return nil, report, fmt.Errorf("solving balance point: %w", err)
	}

	// 3. CG policy
	cg := balance.TargetCG(result.NeutralPoint, wing.MAC, s.Balance.StaticMarginPercent)

	cgPercentMAC := 0.0
	if wing.MAC != 0 {
		cgPercentMAC = (cg - wing.MACLeadingEdgeX) / wing.MAC * 100
	}

	// 4. Loading metrics
	wingLoading := 0.0
	cubicLoading := 0.0
	if wing.Area > 0 {
		wingLoading = s.Weight.AllUpWeightG / (wing.Area / cm2PerDm2)

		areaFt2 := wing.Area / cm2PerFt2
		weightOz := s.Weight.AllUpWeightG / gPerOz
		cubicLoading = weightOz / (areaFt2 * sqrtPos(areaFt2))
	}

	// 5. Propulsion
	prop := propulsion.Estimate(s.Propulsion)
	thrustToWeight := 0.0
	if s.Weight.AllUpWeightG > 0 {
		thrustToWeight = prop.Summary.TotalThrustG / s.Weight.AllUpWeightG
	}

	resolved := &ResolvedAircraft{
		Name:                s.Name,
		Wing:                wing,
		Tail:                tail,
		Topology:            topology,
		Balance:             result,
		StaticMarginPercent: s.Balance.StaticMarginPercent,
		CGTarget:            cg,
		CGPercentMAC:        cgPercentMAC,
		AllUpWeightG:        s.Weight.AllUpWeightG,
		WingLoadingGDm2:     wingLoading,
		CubicWingLoading:    cubicLoading,
		Propulsion:          prop,
		ThrustToWeight:      thrustToWeight,
	}

	// 6. Analytical validation
	validateAnalytical(resolved, report)

	return resolved, report, nil
}
