package main

import (
	"fmt"
	"time"

	vessel "github.com/mlutz-eng/vesseldesign"
	"github.com/phpdave11/gofpdf"
)

// writeDatasheet renders a one-page PDF datasheet for a completed design.
func writeDatasheet(path string, res *vessel.Result) error {
	p := res.Params()

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Pressure Vessel Design Datasheet")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("EN 13445-3 preliminary sizing, %s", time.Now().Format("2006-01-02")))
	pdf.Ln(12)

	section := func(title string, rows [][2]string) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, title)
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 11)
		for _, r := range rows {
			pdf.Cell(80, 6, r[0])
			pdf.Cell(0, 6, r[1])
			pdf.Ln(6)
		}
		pdf.Ln(4)
	}

	section("Design inputs", [][2]string{
		{"Inner diameter D_i", fmt.Sprintf("%.0f mm", p.InnerDiameterMM())},
		{"Cylindrical length L", fmt.Sprintf("%.0f mm", p.LengthMM())},
		{"Design pressure", fmt.Sprintf("%.2f bar (%.3f MPa)", p.DesignPressureBar(), p.DesignPressureMPa())},
		{"Design temperature", fmt.Sprintf("%.1f deg C", p.DesignTemperatureC())},
		{"Material grade", p.Material().String()},
		{"Joint efficiency z", fmt.Sprintf("%.2f", p.JointEfficiency())},
		{"Corrosion allowance", fmt.Sprintf("%.2f mm", p.CorrosionAllowanceMM())},
		{"Allowable design stress f", fmt.Sprintf("%.1f MPa", p.DesignStressMPa())},
	})
	section("Results", [][2]string{
		{"Required shell thickness", fmt.Sprintf("%.2f mm", res.EShellRequiredMM())},
		{"Required head thickness", fmt.Sprintf("%.2f mm", res.EHeadRequiredMM())},
		{"Recommended nominal plate", fmt.Sprintf("%.0f mm", res.ENominalMM())},
	})

	pdf.SetFont("Helvetica", "I", 9)
	pdf.Cell(0, 6, "Preliminary sizing only. Not a substitute for a certified design calculation.")

	return pdf.OutputFileAndClose(path)
}
