package analysis

import (
	"fmt"
	"math"

	"github.com/prahaas123/RC-Plane-Calculator/pkg/balance"
	"github.com/prahaas123/RC-Plane-Calculator/pkg/validation"
)

// Plausibility bounds for the analytical checks. These flag designs that
// compute fine but usually will not fly well.
const (
	minTailVolume = 0.30
	maxTailVolume = 0.80

	minAspectRatio = 3.0
	maxAspectRatio = 15.0

	heavyWingLoadingGDm2 = 100.0
)

func sqrtPos(v float64) float64 {
	if v <= 0 {
		return 0
	}
	return math.Sqrt(v)
}

// validateAnalytical checks the resolved values for aerodynamic
// plausibility. Findings are warnings and info, never errors: the numbers
// are already computed and the caller may be mid-edit.
func validateAnalytical(a *ResolvedAircraft, r *validation.Report) {
	if a.Topology == balance.TopologyConventional {
		vbar := a.Balance.TailVolumeCoefficient
		if vbar > 0 && (vbar < minTailVolume || vbar > maxTailVolume) {
			r.AddWarning(validation.Result{
				Level:       validation.LevelAnalytical,
				Message:     fmt.Sprintf("tail volume coefficient %.2f is outside the typical %.2f-%.2f range", vbar, minTailVolume, maxTailVolume),
				SpecPath:    "tail",
				ActualValue: vbar,
				Expected:    fmt.Sprintf("%.2f-%.2f", minTailVolume, maxTailVolume),
				Suggestions: []string{"Adjust tail area or wing-to-tail distance"},
			})
		}
	}

	if ar := a.Wing.AspectRatio; ar > 0 && (ar < minAspectRatio || ar > maxAspectRatio) {
		r.AddWarning(validation.Result{
			Level:       validation.LevelAnalytical,
			Message:     fmt.Sprintf("wing aspect ratio %.1f is outside the typical %.0f-%.0f range", ar, minAspectRatio, maxAspectRatio),
			SpecPath:    "wing",
			ActualValue: ar,
			Expected:    fmt.Sprintf("%.0f-%.0f", minAspectRatio, maxAspectRatio),
		})
	}

	if a.CGTarget < 0 {
		r.AddWarning(validation.Result{
			Level:       validation.LevelAnalytical,
			Message:     fmt.Sprintf("CG target %.1f cm is ahead of the wing root leading edge", a.CGTarget),
			SpecPath:    "balance.static_margin_percent",
			ActualValue: a.CGTarget,
		})
	}

	if a.WingLoadingGDm2 > heavyWingLoadingGDm2 {
		r.AddWarning(validation.Result{
			Level:       validation.LevelAnalytical,
			Message:     fmt.Sprintf("wing loading %.0f g/dm² is very high for a model aircraft", a.WingLoadingGDm2),
			SpecPath:    "weight.all_up_weight_g",
			ActualValue: a.WingLoadingGDm2,
			Expected:    fmt.Sprintf("<= %.0f", heavyWingLoadingGDm2),
		})
	}

	if a.ThrustToWeight > 0 {
		r.AddInfo(validation.Result{
			Level:    validation.LevelAnalytical,
			Message:  fmt.Sprintf("estimated thrust-to-weight ratio %.2f", a.ThrustToWeight),
			SpecPath: "propulsion",
		})
	}
}
