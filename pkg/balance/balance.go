// Package balance combines wing and tail surface analyses into a neutral
// point, tail volume coefficient, and recommended center of gravity.
package balance

import (
	"errors"

	"github.com/prahaas123/RC-Plane-Calculator/pkg/geometry"
)

// Topology is the longitudinal layout of the aircraft.
type Topology string

const (
	TopologyConventional Topology = "conventional"
	TopologyFlyingWing   Topology = "flying_wing"
)

// Valid reports whether t is a known topology.
func (t Topology) Valid() bool {
	return t == TopologyConventional || t == TopologyFlyingWing
}

// ErrMissingTail is returned when a conventional layout is solved without
// a tail surface. Callers must supply a tail (even a zeroed one) whenever
// the topology is conventional.
var ErrMissingTail = errors.New("conventional topology requires a tail surface")

// fuselageCorrectionFraction shifts the neutral point forward by 1.5% of
// the wing MAC to account for the destabilizing fuselage moment. Empirical
// constant, not derived from fuselage geometry.
const fuselageCorrectionFraction = 0.015

// Layout holds the parameters relating the tail to the wing.
type Layout struct {
	Topology Topology `json:"topology"`
	// WingTailDistance is the distance from the wing root leading edge to
	// the tail root leading edge, in cm.
	WingTailDistance float64 `json:"wing_tail_distance"`
	// TailEfficiency discounts the tail's effectiveness for downwash and
	// dynamic pressure loss, typically 0.8-1.0.
	TailEfficiency float64 `json:"tail_efficiency"`
}

// Result is the solved balance state of one aircraft configuration.
// NeutralPoint is measured from the wing root leading edge.
type Result struct {
	NeutralPoint          float64 `json:"neutral_point"`
	TailVolumeCoefficient float64 `json:"tail_volume_coefficient"`
	FuselageCorrection    float64 `json:"fuselage_correction"`
}

// Solve computes the neutral point and tail volume coefficient for the
// given wing, optional tail, and layout. For a flying wing the tail is
// ignored even when supplied. All divisions are zero-guarded; the only
// error condition is a missing tail under conventional topology.
func Solve(wing geometry.SurfaceAnalysis, tail *geometry.SurfaceAnalysis, layout Layout) (Result, error) {
	if layout.Topology == TopologyFlyingWing {
		return Result{NeutralPoint: wing.ACPosition}, nil
	}

	if tail == nil {
		return Result{}, ErrMissingTail
	}

	// Tail AC translated into wing-datum coordinates.
	tailACGlobal := layout.WingTailDistance + tail.ACPosition

	effectiveTailArea := tail.Area * layout.TailEfficiency
	npRaw := 0.0
	if total := wing.Area + effectiveTailArea; total != 0 {
		npRaw = (wing.ACPosition*wing.Area + tailACGlobal*effectiveTailArea) / total
	}

	correction := wing.MAC * fuselageCorrectionFraction

	tailArm := tailACGlobal - wing.ACPosition
	vbar := 0.0
	if wing.Area != 0 && wing.MAC != 0 {
		vbar = tail.Area * tailArm / (wing.Area * wing.MAC)
	}

	return Result{
		NeutralPoint:          npRaw - correction,
		TailVolumeCoefficient: vbar,
		FuselageCorrection:    correction,
	}, nil
}

// TargetCG applies a static-margin policy to the neutral point. The
// recommended margin is 5-10% MAC for flying wings and 10-15% for
// conventional layouts; the range is advisory and not enforced here.
func TargetCG(neutralPoint, wingMAC, staticMarginPercent float64) float64 {
	return neutralPoint - staticMarginPercent/100*wingMAC
}
