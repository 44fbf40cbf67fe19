package geometry

import (
	"math"
	"testing"
)

const tol = 1e-6

func relClose(got, want float64) bool {
	if want == 0 {
		return math.Abs(got) < tol
	}
	return math.Abs(got-want)/math.Abs(want) < tol
}

func TestAnalyzeUntaperedPanel(t *testing.T) {
	// Constant-chord panel: MAC equals the chord, AC sits at the
	// sweep-interpolated leading edge plus quarter chord.
	const (
		chord = 20.0
		span  = 50.0
		sweep = 4.0
	)
	sa := Analyze(chord, []Panel{{TipChord: chord, SweepOffset: sweep, Span: span}})

	if !relClose(sa.MAC, chord) {
		t.Errorf("MAC = %.6f, want %.6f", sa.MAC, chord)
	}
	if !relClose(sa.Area, 2*chord*span) {
		t.Errorf("area = %.6f, want %.6f", sa.Area, 2*chord*span)
	}
	if !relClose(sa.Span, 2*span) {
		t.Errorf("span = %.6f, want %.6f", sa.Span, 2*span)
	}

	// λ=1: MAC station is span/4, sweep interpolates to sweep/4.
	wantLE := span / 4 * (sweep / span)
	wantAC := wantLE + 0.25*chord
	if !relClose(sa.MACLeadingEdgeX, wantLE) {
		t.Errorf("MAC leading edge = %.6f, want %.6f", sa.MACLeadingEdgeX, wantLE)
	}
	if !relClose(sa.ACPosition, wantAC) {
		t.Errorf("AC = %.6f, want %.6f", sa.ACPosition, wantAC)
	}
}

func TestAnalyzeSinglePanelScenario(t *testing.T) {
	// Wing root chord 25, one panel tip 10, sweep 8, span 70.
	sa := Analyze(25, []Panel{{TipChord: 10, SweepOffset: 8, Span: 70}})

	wantArea := 2 * ((25.0 + 10.0) / 2 * 70.0) // 2450
	if !relClose(sa.Area, wantArea) {
		t.Errorf("area = %.6f, want %.6f", sa.Area, wantArea)
	}

	taper := 10.0 / 25.0
	wantMAC := (2.0 / 3.0) * 25.0 * (1 + taper + taper*taper) / (1 + taper)
	if !relClose(sa.MAC, wantMAC) {
		t.Errorf("MAC = %.6f, want %.6f", sa.MAC, wantMAC)
	}

	yMAC := 70.0 / 6.0 * (1 + 2*taper) / (1 + taper)
	wantLE := yMAC * (8.0 / 70.0)
	wantAC := wantLE + 0.25*wantMAC
	if !relClose(sa.ACPosition, wantAC) {
		t.Errorf("AC = %.6f, want %.6f", sa.ACPosition, wantAC)
	}
	if !relClose(sa.MACSpanY, yMAC) {
		t.Errorf("MAC span station = %.6f, want %.6f", sa.MACSpanY, yMAC)
	}

	wantAR := (2 * 70.0) * (2 * 70.0) / wantArea
	if !relClose(sa.AspectRatio, wantAR) {
		t.Errorf("aspect ratio = %.6f, want %.6f", sa.AspectRatio, wantAR)
	}
}

func TestAnalyzeMultiPanelSums(t *testing.T) {
	// Area and span are plain sums over the panel trapezoids, both sides.
	root := 18.0
	panels := []Panel{
		{TipChord: 15, SweepOffset: 1, Span: 30},
		{TipChord: 11, SweepOffset: 3, Span: 25},
		{TipChord: 6, SweepOffset: 5, Span: 15},
	}
	sa := Analyze(root, panels)

	wantArea := 2 * ((18.0+15.0)/2*30 + (15.0+11.0)/2*25 + (11.0+6.0)/2*15)
	if !relClose(sa.Area, wantArea) {
		t.Errorf("area = %.6f, want %.6f", sa.Area, wantArea)
	}
	if !relClose(sa.Span, 2*(30.0+25+15)) {
		t.Errorf("span = %.6f, want %.6f", sa.Span, 2*(30.0+25+15))
	}

	// MAC of a tapered chain lies between tip and root chords.
	if sa.MAC <= 6 || sa.MAC >= 18 {
		t.Errorf("MAC = %.4f, want within (6, 18)", sa.MAC)
	}
	// AC moves aft of the root-panel quarter chord due to sweep.
	if sa.ACPosition <= 0 {
		t.Errorf("AC = %.4f, want > 0", sa.ACPosition)
	}
}

func TestAnalyzeZeroRootChord(t *testing.T) {
	sa := Analyze(0, []Panel{{TipChord: 0, SweepOffset: 0, Span: 0}})

	for name, v := range map[string]float64{
		"area":         sa.Area,
		"span":         sa.Span,
		"mac":          sa.MAC,
		"ac":           sa.ACPosition,
		"aspect ratio": sa.AspectRatio,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Errorf("%s = %v, want finite", name, v)
		}
		if v != 0 {
			t.Errorf("%s = %v, want 0", name, v)
		}
	}
}

func TestAnalyzeZeroSpanPanel(t *testing.T) {
	// A transient zero-span panel mid-edit contributes nothing and must
	// not poison the aggregate.
	with := Analyze(20, []Panel{
		{TipChord: 14, SweepOffset: 2, Span: 40},
		{TipChord: 10, SweepOffset: 1, Span: 0},
	})
	without := Analyze(20, []Panel{{TipChord: 14, SweepOffset: 2, Span: 40}})

	if !relClose(with.Area, without.Area) {
		t.Errorf("area with zero-span panel = %.6f, want %.6f", with.Area, without.Area)
	}
	if math.IsNaN(with.MAC) || math.IsNaN(with.ACPosition) {
		t.Error("zero-span panel produced NaN")
	}
}

func TestAnalyzeEmptyPanels(t *testing.T) {
	sa := Analyze(25, nil)
	if sa.Area != 0 || sa.MAC != 0 || sa.ACPosition != 0 {
		t.Errorf("empty panel list should produce zero analysis, got %+v", sa)
	}
	if sa.RootChord != 25 {
		t.Errorf("root chord = %v, want echoed 25", sa.RootChord)
	}
}

func TestAnalyzeIdempotent(t *testing.T) {
	panels := []Panel{
		{TipChord: 10, SweepOffset: 8, Span: 70},
		{TipChord: 5, SweepOffset: 3, Span: 20},
	}
	a := Analyze(25, panels)
	b := Analyze(25, panels)
	if a != b {
		t.Errorf("repeated analysis differs: %+v vs %+v", a, b)
	}
}
