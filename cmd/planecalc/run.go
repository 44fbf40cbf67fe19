package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/prahaas123/RC-Plane-Calculator/internal/config"
	"github.com/prahaas123/RC-Plane-Calculator/internal/report"
	"github.com/prahaas123/RC-Plane-Calculator/internal/server"
	"github.com/prahaas123/RC-Plane-Calculator/pkg/analysis"
	"github.com/prahaas123/RC-Plane-Calculator/pkg/render"
	"github.com/prahaas123/RC-Plane-Calculator/pkg/scene2d"
	"github.com/prahaas123/RC-Plane-Calculator/pkg/spec"
	"github.com/prahaas123/RC-Plane-Calculator/pkg/validation"
)

// loadAndValidate loads the project spec, applies tool defaults, and runs
// schema validation.
func loadAndValidate(logger *log.Logger, projectPath string) (*spec.AircraftSpec, *validation.Report, error) {
	cfg, err := config.LoadProject(projectPath)
	if err != nil {
		return nil, nil, err
	}

	aircraft, err := spec.LoadProject(projectPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading spec: %w", err)
	}
	cfg.ApplyDefaults(aircraft)

	logger.Debug("loaded spec", "name", aircraft.Name, "topology", aircraft.Layout.Topology)
	return aircraft, validation.ValidateSchema(aircraft), nil
}

// resolve runs the full pipeline: load, validate, analyze.
func resolve(logger *log.Logger, projectPath string) (*spec.AircraftSpec, *analysis.ResolvedAircraft, *validation.Report, error) {
	aircraft, schemaReport, err := loadAndValidate(logger, projectPath)
	if err != nil {
		return nil, nil, nil, err
	}
	if !schemaReport.Valid {
		printValidationReport(schemaReport)
		return nil, nil, nil, fmt.Errorf("spec has validation errors")
	}

	resolved, analyticalReport, err := analysis.Resolve(aircraft)
	if err != nil {
		return nil, nil, nil, err
	}
	schemaReport.Merge(analyticalReport)

	logger.Debug("analysis complete",
		"wing_area_cm2", resolved.Wing.Area,
		"neutral_point_cm", resolved.Balance.NeutralPoint,
		"cg_target_cm", resolved.CGTarget)

	return aircraft, resolved, schemaReport, nil
}

func runValidate(logger *log.Logger, projectPath string) error {
	aircraft, schemaReport, err := loadAndValidate(logger, projectPath)
	if err != nil {
		return err
	}

	// Analytical findings only make sense on a structurally valid spec.
	if schemaReport.Valid {
		_, analyticalReport, err := analysis.Resolve(aircraft)
		if err != nil {
			return err
		}
		schemaReport.Merge(analyticalReport)
	}

	printValidationReport(schemaReport)

	if !schemaReport.Valid {
		os.Exit(1)
	}
	return nil
}

func runAnalyze(logger *log.Logger, projectPath string, asJSON bool) error {
	_, resolved, validationReport, err := resolve(logger, projectPath)
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"aircraft":   resolved,
			"validation": validationReport,
		})
	}

	printAnalysis(resolved)
	if len(validationReport.Warnings) > 0 || len(validationReport.Info) > 0 {
		fmt.Println()
		printValidationReport(validationReport)
	}
	return nil
}

func runSVG(logger *log.Logger, projectPath, output string) error {
	aircraft, resolved, _, err := resolve(logger, projectPath)
	if err != nil {
		return err
	}

	scene := scene2d.Assemble(aircraft, resolved)
	data := render.SVG(scene)

	if output == "-" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(output, data, 0o644); err != nil {
		return fmt.Errorf("writing SVG: %w", err)
	}
	logger.Info("wrote planform drawing", "path", output, "surfaces", len(scene.Surfaces))
	return nil
}

func runReport(logger *log.Logger, projectPath, output string) error {
	_, resolved, validationReport, err := resolve(logger, projectPath)
	if err != nil {
		return err
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating report file: %w", err)
	}
	defer f.Close()

	if err := report.Generate(f, resolved, validationReport); err != nil {
		return err
	}
	logger.Info("wrote balance report", "path", output)
	return nil
}

func runServe(logger *log.Logger, projectPath string, port int) error {
	cfg, err := config.LoadProject(projectPath)
	if err != nil {
		return err
	}
	if port != 0 {
		cfg.Server.Port = port
	}

	return server.New(projectPath, cfg, logger).Start()
}
