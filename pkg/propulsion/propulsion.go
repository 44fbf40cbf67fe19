// Package propulsion estimates static thrust, RPM, and current draw for
// an electric power system from closed-form empirical formulas. It is a
// per-motor estimate, not a simulation; constants are hobby-grade
// approximations good to roughly ±15%.
package propulsion

import (
	"math"

	"github.com/prahaas123/RC-Plane-Calculator/pkg/spec"
)

const (
	airDensityKgM3 = 1.225 // sea level standard atmosphere

	// loadedRPMFactor discounts the no-load Kv*V speed for the RPM drop
	// under propeller load.
	loadedRPMFactor = 0.85

	// thrustTaperExponent and thrustTaperScale shape the (d/pitch)
	// correction term of the static thrust formula.
	thrustTaperScale    = 3.29527
	thrustTaperExponent = 1.5

	// propPowerConstant is the Kp of the standard prop power formula
	// P = Kp * D_ft^4 * pitch_ft * (RPM/1000)^3, for typical sport props.
	propPowerConstant = 1.25

	inchesToMeters = 0.0254
	inchesToFeet   = 1.0 / 12.0
	gravityMS2     = 9.81
)

// MotorEstimate holds the per-motor closed-form results.
type MotorEstimate struct {
	RPM           float64 `json:"rpm"`
	StaticThrustG float64 `json:"static_thrust_g"`
	PowerW        float64 `json:"power_w"`
	CurrentA      float64 `json:"current_a"`
}

// Report is the complete propulsion output.
type Report struct {
	PerMotor MotorEstimate `json:"per_motor"`

	Summary struct {
		MotorCount    int     `json:"motor_count"`
		TotalThrustG  float64 `json:"total_thrust_g"`
		TotalPowerW   float64 `json:"total_power_w"`
		TotalCurrentA float64 `json:"total_current_a"`
	} `json:"summary"`
}

// Estimate computes the static thrust report for the given power system.
// A zero motor count (propulsion section omitted) yields a zero report.
func Estimate(p spec.PropulsionDef) *Report {
	report := &Report{}
	if p.MotorCount <= 0 {
		return report
	}

	rpm := p.MotorKV * p.BatteryVoltage * loadedRPMFactor
	thrustG := staticThrustGrams(rpm, p.PropDiameterIn, p.PropPitchIn)
	powerW := propPowerW(rpm, p.PropDiameterIn, p.PropPitchIn)

	currentA := 0.0
	if p.BatteryVoltage > 0 {
		currentA = powerW / p.BatteryVoltage
	}

	report.PerMotor = MotorEstimate{
		RPM:           rpm,
		StaticThrustG: thrustG,
		PowerW:        powerW,
		CurrentA:      currentA,
	}

	n := float64(p.MotorCount)
	report.Summary.MotorCount = p.MotorCount
	report.Summary.TotalThrustG = thrustG * n
	report.Summary.TotalPowerW = powerW * n
	report.Summary.TotalCurrentA = currentA * n

	return report
}

// staticThrustGrams applies the empirical static thrust formula for a
// propeller of the given diameter and pitch (inches) at the given RPM.
// Thrust in newtons is density * disk area * pitch speed² * taper term;
// the result is converted to grams-force.
func staticThrustGrams(rpm, diameterIn, pitchIn float64) float64 {
	if pitchIn <= 0 || diameterIn <= 0 {
		return 0
	}

	diameterM := diameterIn * inchesToMeters
	diskArea := math.Pi * diameterM * diameterM / 4
	pitchSpeedMS := rpm * pitchIn * inchesToMeters / 60

	taper := math.Pow(diameterIn/(thrustTaperScale*pitchIn), thrustTaperExponent)
	thrustN := airDensityKgM3 * diskArea * pitchSpeedMS * pitchSpeedMS * taper

	return thrustN / gravityMS2 * 1000
}

// propPowerW applies the prop power-constant formula with diameter and
// pitch in inches.
func propPowerW(rpm, diameterIn, pitchIn float64) float64 {
	dFt := diameterIn * inchesToFeet
	pFt := pitchIn * inchesToFeet
	kRPM := rpm / 1000
	return propPowerConstant * math.Pow(dFt, 4) * pFt * kRPM * kRPM * kRPM
}
