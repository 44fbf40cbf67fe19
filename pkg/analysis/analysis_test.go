package analysis

import (
	"errors"
	"math"
	"testing"

	"github.com/prahaas123/RC-Plane-Calculator/pkg/balance"
	"github.com/prahaas123/RC-Plane-Calculator/pkg/geometry"
	"github.com/prahaas123/RC-Plane-Calculator/pkg/spec"
)

func trainerSpec() *spec.AircraftSpec {
	return &spec.AircraftSpec{
		Name: "Trainer",
		Wing: spec.SurfaceDef{
			RootChord: 22,
			Panels: []geometry.Panel{
				{TipChord: 22, SweepOffset: 0, Span: 45},
				{TipChord: 14, SweepOffset: 4, Span: 25},
			},
		},
		Tail: &spec.SurfaceDef{
			RootChord: 15,
			Panels:    []geometry.Panel{{TipChord: 10, SweepOffset: 2, Span: 25}},
		},
		Layout: spec.LayoutDef{
			Topology:         "conventional",
			WingTailDistance: 60,
			TailEfficiency:   0.9,
		},
		Balance: spec.BalanceDef{StaticMarginPercent: 12},
		Weight:  spec.WeightDef{AllUpWeightG: 1400},
		Propulsion: spec.PropulsionDef{
			MotorCount:     1,
			MotorKV:        1000,
			BatteryVoltage: 11.1,
			PropDiameterIn: 10,
			PropPitchIn:    6,
		},
	}
}

func TestResolveConventional(t *testing.T) {
	resolved, report, err := Resolve(trainerSpec())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if resolved.Topology != balance.TopologyConventional {
		t.Errorf("topology = %v", resolved.Topology)
	}

	// Wing: 2*(22*45 + (22+14)/2*25) = 2*(990+450) = 2880 cm².
	if math.Abs(resolved.Wing.Area-2880) > 1e-9 {
		t.Errorf("wing area = %.4f, want 2880", resolved.Wing.Area)
	}
	if math.Abs(resolved.Wing.Span-140) > 1e-9 {
		t.Errorf("wing span = %.4f, want 140", resolved.Wing.Span)
	}

	// CG target must sit the configured margin ahead of the NP.
	wantCG := resolved.Balance.NeutralPoint - 0.12*resolved.Wing.MAC
	if math.Abs(resolved.CGTarget-wantCG) > 1e-9 {
		t.Errorf("CG = %.4f, want %.4f", resolved.CGTarget, wantCG)
	}
	if resolved.CGTarget >= resolved.Balance.NeutralPoint {
		t.Error("CG target must be ahead of the neutral point")
	}

	// Wing loading: 1400 g / 28.8 dm².
	wantLoading := 1400.0 / 28.8
	if math.Abs(resolved.WingLoadingGDm2-wantLoading) > 1e-6 {
		t.Errorf("wing loading = %.4f, want %.4f", resolved.WingLoadingGDm2, wantLoading)
	}

	if resolved.ThrustToWeight <= 0 {
		t.Error("thrust-to-weight should be positive with a power system defined")
	}
	if report == nil {
		t.Fatal("nil report")
	}
}

func TestResolveFlyingWingIgnoresTail(t *testing.T) {
	s := trainerSpec()
	s.Layout.Topology = "flying_wing"
	s.Balance.StaticMarginPercent = 8

	resolved, _, err := Resolve(s)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if resolved.Balance.NeutralPoint != resolved.Wing.ACPosition {
		t.Errorf("flying wing NP = %.4f, want wing AC %.4f",
			resolved.Balance.NeutralPoint, resolved.Wing.ACPosition)
	}
	if resolved.Balance.TailVolumeCoefficient != 0 {
		t.Errorf("VBar = %v, want 0", resolved.Balance.TailVolumeCoefficient)
	}
}

func TestResolveMissingTail(t *testing.T) {
	s := trainerSpec()
	s.Tail = nil

	_, _, err := Resolve(s)
	if !errors.Is(err, balance.ErrMissingTail) {
		t.Fatalf("err = %v, want ErrMissingTail", err)
	}
}

func TestResolveCGPercentMAC(t *testing.T) {
	resolved, _, err := Resolve(trainerSpec())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	want := (resolved.CGTarget - resolved.Wing.MACLeadingEdgeX) / resolved.Wing.MAC * 100
	if math.Abs(resolved.CGPercentMAC-want) > 1e-9 {
		t.Errorf("CG %%MAC = %.4f, want %.4f", resolved.CGPercentMAC, want)
	}
	// A sane conventional design balances in the front quarter-to-half MAC.
	if resolved.CGPercentMAC < 0 || resolved.CGPercentMAC > 60 {
		t.Errorf("CG %%MAC = %.2f, outside plausible range", resolved.CGPercentMAC)
	}
}

func TestResolveAnalyticalWarnings(t *testing.T) {
	s := trainerSpec()
	s.Weight.AllUpWeightG = 50000 // absurdly heavy

	_, report, err := Resolve(s)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(report.Warnings) == 0 {
		t.Error("expected a wing loading warning")
	}
	if !report.Valid {
		t.Error("analytical findings must not invalidate the report")
	}
}

func TestResolveZeroWeight(t *testing.T) {
	s := trainerSpec()
	s.Weight.AllUpWeightG = 0

	resolved, _, err := Resolve(s)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if resolved.WingLoadingGDm2 != 0 || resolved.ThrustToWeight != 0 {
		t.Errorf("zero weight should zero the loading metrics, got %+v", resolved)
	}
}
