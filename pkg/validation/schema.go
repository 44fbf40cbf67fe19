package validation

import (
	"fmt"

	"github.com/prahaas123/RC-Plane-Calculator/pkg/balance"
	"github.com/prahaas123/RC-Plane-Calculator/pkg/spec"
)

// maxPanels is the recommended limit on panels per surface. The solver
// accepts any panel count; more than this is almost always an input error.
const maxPanels = 5

// ValidateSchema performs schema validation on a parsed AircraftSpec.
// It checks structural correctness before any computation. The geometric
// core computes through any numbers it is given; plausibility lives here.
func ValidateSchema(s *spec.AircraftSpec) *Report {
	r := NewReport()

	validateSurface(&s.Wing, "wing", r)
	validateLayout(s, r)
	validateBalance(s, r)
	validateWeight(s, r)
	validatePropulsion(s, r)

	return r
}

func validateSurface(sd *spec.SurfaceDef, path string, r *Report) {
	if sd.RootChord <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("%s.root_chord must be greater than 0", path),
			SpecPath:    path + ".root_chord",
			ActualValue: sd.RootChord,
			Expected:    "> 0",
		})
	}

	if len(sd.Panels) == 0 {
		r.AddError(Result{
			Level:    LevelSchema,
			Message:  fmt.Sprintf("%s.panels must contain at least one panel", path),
			SpecPath: path + ".panels",
			Expected: "at least 1 panel",
		})
		return
	}

	if len(sd.Panels) > maxPanels {
		r.AddWarning(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("%s has %d panels; more than %d is rarely intentional", path, len(sd.Panels), maxPanels),
			SpecPath:    path + ".panels",
			ActualValue: len(sd.Panels),
			Expected:    fmt.Sprintf("1-%d", maxPanels),
		})
	}

	for i, p := range sd.Panels {
		if p.TipChord <= 0 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("%s.panels[%d]: tip_chord must be > 0", path, i),
				SpecPath:    fmt.Sprintf("%s.panels[%d].tip_chord", path, i),
				ActualValue: p.TipChord,
				Expected:    "> 0",
			})
		}
		if p.Span <= 0 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("%s.panels[%d]: span must be > 0", path, i),
				SpecPath:    fmt.Sprintf("%s.panels[%d].span", path, i),
				ActualValue: p.Span,
				Expected:    "> 0",
			})
		}
		if p.SweepOffset < 0 {
			r.AddWarning(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("%s.panels[%d]: negative sweep_offset means forward sweep", path, i),
				SpecPath:    fmt.Sprintf("%s.panels[%d].sweep_offset", path, i),
				ActualValue: p.SweepOffset,
			})
		}
	}
}

func validateLayout(s *spec.AircraftSpec, r *Report) {
	topology := balance.Topology(s.Layout.Topology)
	if !topology.Valid() {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("layout.topology %q is not recognized", s.Layout.Topology),
			SpecPath:    "layout.topology",
			ActualValue: s.Layout.Topology,
			Expected:    fmt.Sprintf("%q or %q", balance.TopologyConventional, balance.TopologyFlyingWing),
		})
		return
	}

	switch topology {
	case balance.TopologyConventional:
		if !s.HasTail() {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     "conventional topology requires a tail surface",
				SpecPath:    "tail",
				Expected:    "tail section present",
				Suggestions: []string{"Add a tail section, or set layout.topology to flying_wing"},
			})
			return
		}
		validateSurface(s.Tail, "tail", r)

		if s.Layout.WingTailDistance <= 0 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     "layout.wing_tail_distance must be > 0 for a conventional layout",
				SpecPath:    "layout.wing_tail_distance",
				ActualValue: s.Layout.WingTailDistance,
				Expected:    "> 0",
			})
		}
		if s.Layout.TailEfficiency <= 0 || s.Layout.TailEfficiency > 1.2 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("layout.tail_efficiency %.2f is outside valid range (0-1.2]", s.Layout.TailEfficiency),
				SpecPath:    "layout.tail_efficiency",
				ActualValue: s.Layout.TailEfficiency,
				Expected:    "0 < efficiency <= 1.2",
				Suggestions: []string{"Typical values are 0.8-1.0"},
			})
		}

	case balance.TopologyFlyingWing:
		if s.HasTail() {
			r.AddInfo(Result{
				Level:    LevelSchema,
				Message:  "tail section is ignored for flying_wing topology",
				SpecPath: "tail",
			})
		}
	}
}

func validateBalance(s *spec.AircraftSpec, r *Report) {
	margin := s.Balance.StaticMarginPercent
	if margin <= 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "balance.static_margin_percent must be > 0",
			SpecPath:    "balance.static_margin_percent",
			ActualValue: margin,
			Expected:    "> 0",
		})
		return
	}

	// Advisory ranges only; the policy function applies whatever it is given.
	low, high := 10.0, 15.0
	if balance.Topology(s.Layout.Topology) == balance.TopologyFlyingWing {
		low, high = 5.0, 10.0
	}
	if margin < low || margin > high {
		r.AddWarning(Result{
			Level:       LevelSchema,
			Message:     fmt.Sprintf("static margin %.1f%% is outside the recommended %.0f-%.0f%% range for this topology", margin, low, high),
			SpecPath:    "balance.static_margin_percent",
			ActualValue: margin,
			Expected:    fmt.Sprintf("%.0f-%.0f", low, high),
		})
	}
}

func validateWeight(s *spec.AircraftSpec, r *Report) {
	if s.Weight.AllUpWeightG < 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "weight.all_up_weight_g must be non-negative",
			SpecPath:    "weight.all_up_weight_g",
			ActualValue: s.Weight.AllUpWeightG,
			Expected:    ">= 0",
		})
	}
}

func validatePropulsion(s *spec.AircraftSpec, r *Report) {
	p := s.Propulsion
	if p.MotorCount == 0 {
		return // propulsion section is optional
	}

	if p.MotorCount < 0 {
		r.AddError(Result{
			Level:       LevelSchema,
			Message:     "propulsion.motor_count must be non-negative",
			SpecPath:    "propulsion.motor_count",
			ActualValue: p.MotorCount,
			Expected:    ">= 0",
		})
	}
	fields := []struct {
		name  string
		value float64
	}{
		{"motor_kv", p.MotorKV},
		{"battery_voltage", p.BatteryVoltage},
		{"prop_diameter_in", p.PropDiameterIn},
		{"prop_pitch_in", p.PropPitchIn},
	}
	for _, f := range fields {
		if f.value <= 0 {
			r.AddError(Result{
				Level:       LevelSchema,
				Message:     fmt.Sprintf("propulsion.%s must be > 0 when motors are defined", f.name),
				SpecPath:    "propulsion." + f.name,
				ActualValue: f.value,
				Expected:    "> 0",
			})
		}
	}
}
