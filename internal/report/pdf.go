// Package report renders the analysis results as a one-page PDF summary.
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/phpdave11/gofpdf"

	"github.com/prahaas123/RC-Plane-Calculator/pkg/analysis"
	"github.com/prahaas123/RC-Plane-Calculator/pkg/balance"
	"github.com/prahaas123/RC-Plane-Calculator/pkg/validation"
)

// Generate writes a PDF balance report for the resolved aircraft to w.
func Generate(w io.Writer, resolved *analysis.ResolvedAircraft, report *validation.Report) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	title := resolved.Name
	if title == "" {
		title = "Aircraft Balance Report"
	}
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, title)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Generated: %s", time.Now().Format("2006-01-02 15:04")))
	pdf.Ln(5)
	pdf.Cell(0, 6, fmt.Sprintf("Report ID: %s", uuid.NewString()))
	pdf.Ln(10)

	writeSection(pdf, "Wing")
	writeRow(pdf, "Area", fmt.Sprintf("%.1f cm²", resolved.Wing.Area))
	writeRow(pdf, "Span", fmt.Sprintf("%.1f cm", resolved.Wing.Span))
	writeRow(pdf, "Aspect ratio", fmt.Sprintf("%.2f", resolved.Wing.AspectRatio))
	writeRow(pdf, "MAC", fmt.Sprintf("%.2f cm", resolved.Wing.MAC))
	writeRow(pdf, "Aerodynamic center", fmt.Sprintf("%.2f cm", resolved.Wing.ACPosition))
	pdf.Ln(4)

	if resolved.Tail != nil && resolved.Topology == balance.TopologyConventional {
		writeSection(pdf, "Tail")
		writeRow(pdf, "Area", fmt.Sprintf("%.1f cm²", resolved.Tail.Area))
		writeRow(pdf, "Span", fmt.Sprintf("%.1f cm", resolved.Tail.Span))
		writeRow(pdf, "MAC", fmt.Sprintf("%.2f cm", resolved.Tail.MAC))
		writeRow(pdf, "Tail volume coefficient", fmt.Sprintf("%.3f", resolved.Balance.TailVolumeCoefficient))
		pdf.Ln(4)
	}

	writeSection(pdf, "Balance")
	writeRow(pdf, "Topology", string(resolved.Topology))
	writeRow(pdf, "Neutral point", fmt.Sprintf("%.2f cm from wing root LE", resolved.Balance.NeutralPoint))
	writeRow(pdf, "Static margin", fmt.Sprintf("%.1f %% MAC", resolved.StaticMarginPercent))
	writeRow(pdf, "CG target", fmt.Sprintf("%.2f cm (%.1f %% MAC)", resolved.CGTarget, resolved.CGPercentMAC))
	pdf.Ln(4)

	if resolved.AllUpWeightG > 0 {
		writeSection(pdf, "Loading")
		writeRow(pdf, "All-up weight", fmt.Sprintf("%.0f g", resolved.AllUpWeightG))
		writeRow(pdf, "Wing loading", fmt.Sprintf("%.1f g/dm²", resolved.WingLoadingGDm2))
		writeRow(pdf, "Cubic wing loading", fmt.Sprintf("%.1f oz/ft³", resolved.CubicWingLoading))
		if resolved.ThrustToWeight > 0 {
			writeRow(pdf, "Thrust-to-weight", fmt.Sprintf("%.2f", resolved.ThrustToWeight))
		}
		pdf.Ln(4)
	}

	if p := resolved.Propulsion; p != nil && p.Summary.MotorCount > 0 {
		writeSection(pdf, "Propulsion (static estimate)")
		writeRow(pdf, "Motors", fmt.Sprintf("%d", p.Summary.MotorCount))
		writeRow(pdf, "RPM (loaded)", fmt.Sprintf("%.0f", p.PerMotor.RPM))
		writeRow(pdf, "Thrust per motor", fmt.Sprintf("%.0f g", p.PerMotor.StaticThrustG))
		writeRow(pdf, "Total thrust", fmt.Sprintf("%.0f g", p.Summary.TotalThrustG))
		writeRow(pdf, "Total current", fmt.Sprintf("%.1f A", p.Summary.TotalCurrentA))
		pdf.Ln(4)
	}

	if report != nil && (len(report.Warnings) > 0 || len(report.Errors) > 0) {
		writeSection(pdf, fmt.Sprintf("Validation (%s)", report.Summary))
		pdf.SetFont("Helvetica", "", 9)
		for _, e := range report.Errors {
			pdf.MultiCell(0, 5, "ERROR: "+e.Message, "", "L", false)
		}
		for _, warn := range report.Warnings {
			pdf.MultiCell(0, 5, "WARNING: "+warn.Message, "", "L", false)
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("writing PDF: %w", err)
	}
	return nil
}

func writeSection(pdf *gofpdf.Fpdf, name string) {
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, name)
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
}

func writeRow(pdf *gofpdf.Fpdf, label, value string) {
	pdf.Cell(60, 6, label)
	pdf.Cell(0, 6, value)
	pdf.Ln(6)
}
