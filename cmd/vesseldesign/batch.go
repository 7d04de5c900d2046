package main

import (
	"fmt"
	"strconv"
	"strings"

	vessel "github.com/mlutz-eng/vesseldesign"
	"github.com/mlutz-eng/vesseldesign/material"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

// runBatch reads one design point per row from the first sheet of an XLSX
// workbook and writes a results workbook. Expected columns, after a header
// row: inner diameter mm, length mm, pressure bar, temperature deg C, then
// optionally material grade, joint efficiency and corrosion allowance mm.
// Rows that fail to parse or to design are carried into the output with the
// error message and skipped otherwise.
func runBatch(inPath, outPath string) (designed, skipped int, err error) {
	f, err := excelize.OpenFile(inPath)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return 0, 0, err
	}
	if len(rows) < 2 {
		return 0, 0, fmt.Errorf("no data rows in %s", inPath)
	}

	out := excelize.NewFile()
	const sheet = "Results"
	out.SetSheetName(out.GetSheetName(0), sheet)
	header := []interface{}{
		"inner_diameter_mm", "length_mm", "pressure_bar", "temperature_c",
		"material", "joint_efficiency", "corrosion_allowance_mm",
		"e_shell_required_mm", "e_head_required_mm", "e_nominal_mm", "error",
	}
	if err := out.SetSheetRow(sheet, "A1", &header); err != nil {
		return 0, 0, err
	}

	line := 1
	for i, row := range rows[1:] {
		line++
		cell, _ := excelize.CoordinatesToCellName(1, line)
		params, perr := parseRow(row)
		if perr != nil {
			skipped++
			log.WithField("row", i+2).WithError(perr).Warn("row skipped")
			rec := append(rawColumns(row), "", "", "", perr.Error())
			if err := out.SetSheetRow(sheet, cell, &rec); err != nil {
				return designed, skipped, err
			}
			continue
		}
		res, derr := vessel.Design(params)
		if derr != nil {
			skipped++
			log.WithField("row", i+2).WithError(derr).Warn("design failed")
			rec := append(paramColumns(params), "", "", "", derr.Error())
			if err := out.SetSheetRow(sheet, cell, &rec); err != nil {
				return designed, skipped, err
			}
			continue
		}
		designed++
		rec := append(paramColumns(params),
			res.EShellRequiredMM(), res.EHeadRequiredMM(), res.ENominalMM(), "")
		if err := out.SetSheetRow(sheet, cell, &rec); err != nil {
			return designed, skipped, err
		}
	}
	return designed, skipped, out.SaveAs(outPath)
}

func parseRow(row []string) (*vessel.Parameters, error) {
	if len(row) < 4 {
		return nil, fmt.Errorf("need at least 4 columns, got %d", len(row))
	}
	num := func(i int, name string) (float64, error) {
		v, err := strconv.ParseFloat(strings.TrimSpace(row[i]), 64)
		if err != nil {
			return 0, fmt.Errorf("column %s: %w", name, err)
		}
		return v, nil
	}
	di, err := num(0, "inner_diameter_mm")
	if err != nil {
		return nil, err
	}
	l, err := num(1, "length_mm")
	if err != nil {
		return nil, err
	}
	pBar, err := num(2, "pressure_bar")
	if err != nil {
		return nil, err
	}
	tC, err := num(3, "temperature_c")
	if err != nil {
		return nil, err
	}

	var opts []vessel.Option
	if len(row) > 4 && strings.TrimSpace(row[4]) != "" {
		g, err := material.ParseGrade(strings.TrimSpace(row[4]))
		if err != nil {
			return nil, err
		}
		opts = append(opts, vessel.WithMaterial(g))
	}
	if len(row) > 5 && strings.TrimSpace(row[5]) != "" {
		z, err := num(5, "joint_efficiency")
		if err != nil {
			return nil, err
		}
		opts = append(opts, vessel.WithJointEfficiency(z))
	}
	if len(row) > 6 && strings.TrimSpace(row[6]) != "" {
		c, err := num(6, "corrosion_allowance_mm")
		if err != nil {
			return nil, err
		}
		opts = append(opts, vessel.WithCorrosionAllowance(c))
	}
	return vessel.NewParameters(di, l, pBar, tC, opts...)
}

func rawColumns(row []string) []interface{} {
	cols := make([]interface{}, 7)
	for i := range cols {
		if i < len(row) {
			cols[i] = row[i]
		} else {
			cols[i] = ""
		}
	}
	return cols
}

func paramColumns(p *vessel.Parameters) []interface{} {
	return []interface{}{
		p.InnerDiameterMM(), p.LengthMM(), p.DesignPressureBar(), p.DesignTemperatureC(),
		p.Material().String(), p.JointEfficiency(), p.CorrosionAllowanceMM(),
	}
}
