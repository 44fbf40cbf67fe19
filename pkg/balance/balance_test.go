package balance

import (
	"errors"
	"math"
	"testing"

	"github.com/prahaas123/RC-Plane-Calculator/pkg/geometry"
)

const tol = 1e-6

func TestSolveFlyingWing(t *testing.T) {
	wing := geometry.SurfaceAnalysis{Area: 2400, MAC: 22, ACPosition: 9.5}
	// A tail is supplied but must be ignored for a flying wing.
	tail := &geometry.SurfaceAnalysis{Area: 500, ACPosition: 4}

	result, err := Solve(wing, tail, Layout{Topology: TopologyFlyingWing})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.NeutralPoint != wing.ACPosition {
		t.Errorf("NP = %v, want wing AC %v", result.NeutralPoint, wing.ACPosition)
	}
	if result.TailVolumeCoefficient != 0 {
		t.Errorf("VBar = %v, want 0", result.TailVolumeCoefficient)
	}
	if result.FuselageCorrection != 0 {
		t.Errorf("fuselage correction = %v, want 0", result.FuselageCorrection)
	}
}

func TestSolveConventionalMissingTail(t *testing.T) {
	wing := geometry.SurfaceAnalysis{Area: 1000, MAC: 20, ACPosition: 6}

	_, err := Solve(wing, nil, Layout{Topology: TopologyConventional, TailEfficiency: 0.9})
	if !errors.Is(err, ErrMissingTail) {
		t.Fatalf("err = %v, want ErrMissingTail", err)
	}
}

func TestSolveConventionalScenario(t *testing.T) {
	// Wing AC 6 cm, tail AC 68 cm global, areas 1000/250 cm², efficiency 0.9.
	wing := geometry.SurfaceAnalysis{Area: 1000, MAC: 20, ACPosition: 6}
	tail := &geometry.SurfaceAnalysis{Area: 250, ACPosition: 0}
	layout := Layout{
		Topology:         TopologyConventional,
		WingTailDistance: 68,
		TailEfficiency:   0.9,
	}

	result, err := Solve(wing, tail, layout)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantRaw := (6.0*1000 + 68.0*250*0.9) / (1000 + 250*0.9) // ≈ 17.3878
	wantCorrection := 20.0 * 0.015                          // 0.3
	wantNP := wantRaw - wantCorrection

	if math.Abs(result.NeutralPoint-wantNP) > tol {
		t.Errorf("NP = %.6f, want %.6f", result.NeutralPoint, wantNP)
	}
	if math.Abs(result.FuselageCorrection-wantCorrection) > tol {
		t.Errorf("correction = %.6f, want %.6f", result.FuselageCorrection, wantCorrection)
	}

	wantVBar := 250.0 * (68.0 - 6.0) / (1000.0 * 20.0) // 0.775
	if math.Abs(result.TailVolumeCoefficient-wantVBar) > tol {
		t.Errorf("VBar = %.6f, want %.6f", result.TailVolumeCoefficient, wantVBar)
	}
}

func TestSolveConventionalZeroAreaTail(t *testing.T) {
	wing := geometry.SurfaceAnalysis{Area: 1000, MAC: 20, ACPosition: 6}
	tail := &geometry.SurfaceAnalysis{}
	layout := Layout{Topology: TopologyConventional, WingTailDistance: 50, TailEfficiency: 0.9}

	result, err := Solve(wing, tail, layout)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// With no tail area the NP collapses to the wing AC minus the
	// fuselage correction.
	wantNP := 6.0 - 20.0*0.015
	if math.Abs(result.NeutralPoint-wantNP) > tol {
		t.Errorf("NP = %.6f, want %.6f", result.NeutralPoint, wantNP)
	}
	if result.TailVolumeCoefficient != 0 {
		t.Errorf("VBar = %v, want 0", result.TailVolumeCoefficient)
	}
}

func TestSolveDegenerateGeometry(t *testing.T) {
	// Everything zero: guarded divisions, no NaN, no error.
	result, err := Solve(geometry.SurfaceAnalysis{}, &geometry.SurfaceAnalysis{},
		Layout{Topology: TopologyConventional})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for name, v := range map[string]float64{
		"NP":   result.NeutralPoint,
		"VBar": result.TailVolumeCoefficient,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Errorf("%s = %v, want finite", name, v)
		}
	}
}

func TestSolveIdempotent(t *testing.T) {
	wing := geometry.SurfaceAnalysis{Area: 1200, MAC: 18, ACPosition: 7}
	tail := &geometry.SurfaceAnalysis{Area: 300, ACPosition: 3}
	layout := Layout{Topology: TopologyConventional, WingTailDistance: 55, TailEfficiency: 0.85}

	a, err1 := Solve(wing, tail, layout)
	b, err2 := Solve(wing, tail, layout)
	if err1 != nil || err2 != nil {
		t.Fatalf("unexpected errors: %v, %v", err1, err2)
	}
	if a != b {
		t.Errorf("repeated solve differs: %+v vs %+v", a, b)
	}
}

func TestTargetCG(t *testing.T) {
	cg := TargetCG(17.09, 20, 10)
	if math.Abs(cg-15.09) > tol {
		t.Errorf("CG = %.6f, want 15.09", cg)
	}

	// Zero margin puts the CG on the neutral point.
	if got := TargetCG(12.5, 20, 0); got != 12.5 {
		t.Errorf("CG at zero margin = %v, want 12.5", got)
	}
}

func TestTopologyValid(t *testing.T) {
	cases := []struct {
		topology Topology
		want     bool
	}{
		{TopologyConventional, true},
		{TopologyFlyingWing, true},
		{Topology("canard"), false},
		{Topology(""), false},
	}
	for _, c := range cases {
		if got := c.topology.Valid(); got != c.want {
			t.Errorf("Valid(%q) = %v, want %v", c.topology, got, c.want)
		}
	}
}
