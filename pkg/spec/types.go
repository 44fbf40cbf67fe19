package spec

import "github.com/prahaas123/RC-Plane-Calculator/pkg/geometry"

// AircraftSpec is the top-level specification for one aircraft design.
// All lengths are centimeters, areas cm², weights grams.
type AircraftSpec struct {
	SpecVersion string        `yaml:"spec_version" json:"spec_version"`
	Name        string        `yaml:"name" json:"name"`
	Wing        SurfaceDef    `yaml:"wing" json:"wing"`
	Tail        *SurfaceDef   `yaml:"tail,omitempty" json:"tail,omitempty"`
	Layout      LayoutDef     `yaml:"layout" json:"layout"`
	Balance     BalanceDef    `yaml:"balance" json:"balance"`
	Weight      WeightDef     `yaml:"weight" json:"weight"`
	Propulsion  PropulsionDef `yaml:"propulsion" json:"propulsion"`
}

// SurfaceDef describes one lifting surface as a root chord plus an
// ordered root-to-tip chain of trapezoidal panels.
type SurfaceDef struct {
	RootChord float64          `yaml:"root_chord" json:"root_chord"`
	Panels    []geometry.Panel `yaml:"panels" json:"panels"`
}

// LayoutDef relates the tail to the wing.
type LayoutDef struct {
	Topology         string  `yaml:"topology" json:"topology"`
	WingTailDistance float64 `yaml:"wing_tail_distance" json:"wing_tail_distance"`
	TailEfficiency   float64 `yaml:"tail_efficiency" json:"tail_efficiency"`
}

// BalanceDef holds the static-margin policy.
type BalanceDef struct {
	StaticMarginPercent float64 `yaml:"static_margin_percent" json:"static_margin_percent"`
}

// WeightDef holds the mass inputs used for loading metrics.
type WeightDef struct {
	AllUpWeightG float64 `yaml:"all_up_weight_g" json:"all_up_weight_g"`
}

// PropulsionDef describes the power system for the static thrust estimate.
type PropulsionDef struct {
	MotorCount     int     `yaml:"motor_count" json:"motor_count"`
	MotorKV        float64 `yaml:"motor_kv" json:"motor_kv"`
	BatteryVoltage float64 `yaml:"battery_voltage" json:"battery_voltage"`
	PropDiameterIn float64 `yaml:"prop_diameter_in" json:"prop_diameter_in"`
	PropPitchIn    float64 `yaml:"prop_pitch_in" json:"prop_pitch_in"`
}

// HasTail reports whether a tail surface is defined.
func (s *AircraftSpec) HasTail() bool {
	return s.Tail != nil
}
