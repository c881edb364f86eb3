package runner

import (
	"fmt"
	"io"
	"strings"

	"pipecalc/calculator"
	"pipecalc/model"
	"pipecalc/standard"
)

const (
	fullWidth  = 70
	briefWidth = 60
)

// WriteReport 按算例的风格输出结果, 一次性写入 w
func WriteReport(w io.Writer, c Case, cfg calculator.Config, res *model.Analysis) error {
	var b strings.Builder
	switch c.Style {
	case Brief:
		writeBrief(&b, c, res)
	default:
		writeFull(&b, c, cfg, res)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func banner(b *strings.Builder, title string, width int) {
	line := strings.Repeat("=", width)
	fmt.Fprintln(b, line)
	fmt.Fprintln(b, title)
	fmt.Fprintln(b, line)
}

func writeFull(b *strings.Builder, c Case, cfg calculator.Config, res *model.Analysis) {
	banner(b, c.Title, fullWidth)

	in := res.Input
	fmt.Fprintln(b, "\n[INPUT PARAMETERS]")
	fmt.Fprintf(b, "  flow_rate_m3_s: %g\n", in.FlowRateM3s)
	fmt.Fprintf(b, "  pipe_od_mm: %g\n", in.PipeODMM)
	fmt.Fprintf(b, "  wall_thickness_mm: %g\n", in.WallThicknessMM)
	fmt.Fprintf(b, "  pipe_length_km: %g\n", in.PipeLengthKM)
	fmt.Fprintf(b, "  elevation_start: %g\n", in.ElevationStartM)
	fmt.Fprintf(b, "  elevation_end: %g\n", in.ElevationEndM)
	fmt.Fprintf(b, "  operating_pressure_bar: %g\n", in.OperatingPressureBar)
	fmt.Fprintf(b, "  pipe_grade: %s\n", in.PipeGrade)

	d := res.PipeDimensions
	fmt.Fprintln(b, "\n[PIPE DIMENSIONS]")
	fmt.Fprintf(b, "  outside_diameter_mm: %.2f\n", d.OutsideDiameterMM)
	fmt.Fprintf(b, "  wall_thickness_mm: %.2f\n", d.WallThicknessMM)
	fmt.Fprintf(b, "  internal_diameter_mm: %.2f\n", d.InternalDiameterMM)
	fmt.Fprintf(b, "  internal_diameter_m: %.4f\n", d.InternalDiameterM)

	fp := res.FlowProperties
	fmt.Fprintln(b, "\n[FLOW PROPERTIES]")
	fmt.Fprintf(b, "  Velocity: %.3f m/s\n", fp.VelocityMs)
	fmt.Fprintf(b, "  Reynolds Number: %.1f\n", fp.ReynoldsNumber)
	fmt.Fprintf(b, "  Flow Regime: %s\n", fp.FlowRegime)
	fmt.Fprintf(b, "  Friction Factor: %.5f (%s)\n", res.Friction.FrictionFactor, res.Friction.CalculationMethod)

	pd := res.PressureDrop
	elevation := "uphill"
	if pd.ElevationChangePa < 0 {
		elevation = "downhill"
	}
	fmt.Fprintln(b, "\n[PRESSURE DROP ANALYSIS]")
	fmt.Fprintf(b, "  Friction Loss: %.3f bar (%.2f bar/100km)\n", pd.FrictionLossBar, pd.BarPer100KM)
	fmt.Fprintf(b, "  Elevation Loss: %.3f bar (%s)\n", pd.ElevationChangeBar, elevation)
	fmt.Fprintf(b, "  Minor Losses: %.3f bar\n", pd.MinorLossesBar)
	fmt.Fprintf(b, "  TOTAL: %.3f bar\n", pd.TotalPressureDropBar)

	op := res.OutletPressure
	fmt.Fprintln(b, "\n[OUTLET PRESSURE]")
	fmt.Fprintf(b, "  Inlet: %.2f bar (%.1f psi)\n", op.InletPressureBar, calculator.BarToPsi(op.InletPressureBar))
	fmt.Fprintf(b, "  Outlet: %.2f bar (%.1f psi)\n", op.OutletPressureBar, calculator.BarToPsi(op.OutletPressureBar))
	fmt.Fprintf(b, "  Loss %%: %.1f%%\n", op.PressureLossPercent)

	pc := res.PressureContainment
	fmt.Fprintf(b, "\n[PRESSURE CONTAINMENT - %s]\n", cfg.DesignCode)
	fmt.Fprintf(b, "  %s\n", pc.ComplianceMessage)
	fmt.Fprintf(b, "  Safety Margin: %.1f%%\n", pc.SafetyMarginPercent)

	vc := res.VelocityCheck
	status := "✓ OK"
	if !vc.WithinLimit {
		status = "✗ EXCESSIVE"
	}
	fmt.Fprintln(b, "\n[VELOCITY CHECK]")
	fmt.Fprintf(b, "  %.3f m/s (limit: %g m/s) - %s\n", vc.VelocityMs, vc.VelocityLimit, status)
	if vc.Warning != "" {
		fmt.Fprintf(b, "  %s\n", vc.Warning)
	}

	fmt.Fprintln(b, "\n[FORMULA REFERENCES]")
	for _, f := range standard.Formulas() {
		fmt.Fprintf(b, "  %-16s %s\n", f.Key+":", f.Equation)
	}

	fmt.Fprintln(b, "\n"+strings.Repeat("=", fullWidth))
}

func writeBrief(b *strings.Builder, c Case, res *model.Analysis) {
	banner(b, c.Title, briefWidth)

	safe := "NO"
	if res.PressureContainment.Safe {
		safe = "YES"
	}
	fmt.Fprintln(b)
	fmt.Fprintf(b, "Inlet pressure (bar):  %.2f\n", res.OutletPressure.InletPressureBar)
	fmt.Fprintf(b, "Outlet pressure (bar): %.3f\n", res.OutletPressure.OutletPressureBar)
	fmt.Fprintf(b, "Total ΔP (bar):        %.3f\n", res.PressureDrop.TotalPressureDropBar)
	fmt.Fprintf(b, "Velocity (m/s):        %.3f\n", res.FlowProperties.VelocityMs)
	fmt.Fprintf(b, "Safe?                  %s\n", safe)
	fmt.Fprintf(b, "Safety margin (%%):     %.1f\n", res.PressureContainment.SafetyMarginPercent)
}
