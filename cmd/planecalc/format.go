package main

import (
	"fmt"

	"github.com/prahaas123/RC-Plane-Calculator/pkg/analysis"
	"github.com/prahaas123/RC-Plane-Calculator/pkg/balance"
	"github.com/prahaas123/RC-Plane-Calculator/pkg/validation"
)

func printValidationReport(r *validation.Report) {
	if len(r.Errors) > 0 {
		fmt.Printf("ERRORS (%d):\n", len(r.Errors))
		for _, e := range r.Errors {
			fmt.Printf("  [%s] %s\n", e.Level, e.Message)
			if e.SpecPath != "" {
				fmt.Printf("    -> %s = %v\n", e.SpecPath, e.ActualValue)
			}
			if e.Expected != "" {
				fmt.Printf("    expected: %s\n", e.Expected)
			}
			for _, s := range e.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Warnings) > 0 {
		fmt.Printf("WARNINGS (%d):\n", len(r.Warnings))
		for _, w := range r.Warnings {
			fmt.Printf("  [%s] %s\n", w.Level, w.Message)
			if w.SpecPath != "" {
				fmt.Printf("    -> %s = %v\n", w.SpecPath, w.ActualValue)
			}
			if w.Expected != "" {
				fmt.Printf("    expected: %s\n", w.Expected)
			}
			for _, s := range w.Suggestions {
				fmt.Printf("    * %s\n", s)
			}
		}
		fmt.Println()
	}

	if len(r.Info) > 0 {
		fmt.Printf("INFO (%d):\n", len(r.Info))
		for _, i := range r.Info {
			fmt.Printf("  [%s] %s\n", i.Level, i.Message)
		}
		fmt.Println()
	}

	if r.Valid {
		fmt.Printf("Result: VALID (%s)\n", r.Summary)
	} else {
		fmt.Printf("Result: INVALID (%s)\n", r.Summary)
	}
}

func printAnalysis(a *analysis.ResolvedAircraft) {
	name := a.Name
	if name == "" {
		name = "(unnamed aircraft)"
	}
	fmt.Printf("Balance Analysis: %s\n", name)
	fmt.Println("==================================")
	fmt.Println()

	fmt.Println("Wing")
	fmt.Println("----")
	printRow("Area", "%.1f cm²", a.Wing.Area)
	printRow("Span", "%.1f cm", a.Wing.Span)
	printRow("Aspect ratio", "%.2f", a.Wing.AspectRatio)
	printRow("MAC", "%.2f cm", a.Wing.MAC)
	printRow("MAC leading edge", "%.2f cm", a.Wing.MACLeadingEdgeX)
	printRow("Aerodynamic center", "%.2f cm", a.Wing.ACPosition)

	if a.Tail != nil && a.Topology == balance.TopologyConventional {
		fmt.Println()
		fmt.Println("Tail")
		fmt.Println("----")
		printRow("Area", "%.1f cm²", a.Tail.Area)
		printRow("Span", "%.1f cm", a.Tail.Span)
		printRow("MAC", "%.2f cm", a.Tail.MAC)
		printRow("Volume coefficient", "%.3f", a.Balance.TailVolumeCoefficient)
	}

	fmt.Println()
	fmt.Println("Balance")
	fmt.Println("-------")
	fmt.Printf("  %-22s %s\n", "Topology:", a.Topology)
	printRow("Neutral point", "%.2f cm", a.Balance.NeutralPoint)
	printRow("Fuselage correction", "%.2f cm", a.Balance.FuselageCorrection)
	printRow("Static margin", "%.1f %% MAC", a.StaticMarginPercent)
	printRow("CG target", "%.2f cm", a.CGTarget)
	printRow("CG position", "%.1f %% MAC", a.CGPercentMAC)

	if a.AllUpWeightG > 0 {
		fmt.Println()
		fmt.Println("Loading")
		fmt.Println("-------")
		printRow("All-up weight", "%.0f g", a.AllUpWeightG)
		printRow("Wing loading", "%.1f g/dm²", a.WingLoadingGDm2)
		printRow("Cubic wing loading", "%.1f oz/ft³", a.CubicWingLoading)
	}

	if p := a.Propulsion; p != nil && p.Summary.MotorCount > 0 {
		fmt.Println()
		fmt.Println("Propulsion (static estimate)")
		fmt.Println("----------------------------")
		fmt.Printf("  %-22s %d\n", "Motors:", p.Summary.MotorCount)
		printRow("RPM (loaded)", "%.0f", p.PerMotor.RPM)
		printRow("Thrust per motor", "%.0f g", p.PerMotor.StaticThrustG)
		printRow("Total thrust", "%.0f g", p.Summary.TotalThrustG)
		printRow("Total current", "%.1f A", p.Summary.TotalCurrentA)
		if a.ThrustToWeight > 0 {
			printRow("Thrust-to-weight", "%.2f", a.ThrustToWeight)
		}
	}
}

func printRow(label, format string, v float64) {
	fmt.Printf("  %-22s "+format+"\n", label+":", v)
}
