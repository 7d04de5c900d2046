// Command vesseldesign sizes a cylindrical pressure vessel with Kloepper
// heads from the command line. It is a thin shell over the vessel package:
// it collects inputs from flags (optionally defaulted from an INI file),
// runs one design or a spreadsheet batch, and renders the results as text,
// PDF datasheet or XLSX workbook.
package main

import (
	"flag"
	"fmt"
	"os"

	vessel "github.com/mlutz-eng/vesseldesign"
	"github.com/mlutz-eng/vesseldesign/geometry"
	"github.com/mlutz-eng/vesseldesign/material"
	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"
)

func main() {
	var (
		configPath  = flag.String("config", "", "INI file with a [vessel] section providing input defaults")
		diameter    = flag.Float64("diameter", 1200, "inner diameter D_i in mm")
		length      = flag.Float64("length", 3000, "cylindrical shell length L in mm")
		pressure    = flag.Float64("pressure", 3.0, "design pressure in bar")
		temperature = flag.Float64("temperature", 100, "design temperature in degrees Celsius")
		grade       = flag.String("material", material.Grade14404.String(), "material grade (1.4404, P265GH)")
		joint       = flag.Float64("joint-efficiency", 1.0, "weld joint coefficient z in (0, 1]")
		corrosion   = flag.Float64("corrosion", 0, "corrosion allowance in mm")
		showGeom    = flag.Bool("geometry", false, "print the Kloepper head geometry summary")
		pdfPath     = flag.String("pdf", "", "write a PDF datasheet to this path")
		batchIn     = flag.String("batch", "", "XLSX workbook with one design point per row")
		batchOut    = flag.String("out", "design_results.xlsx", "output path for -batch results")
	)
	flag.Parse()

	if *configPath != "" {
		if err := applyConfig(*configPath); err != nil {
			log.WithError(err).Fatal("cannot apply config file")
		}
	}

	if *batchIn != "" {
		n, skipped, err := runBatch(*batchIn, *batchOut)
		if err != nil {
			log.WithError(err).Fatal("batch run failed")
		}
		log.WithFields(log.Fields{"designed": n, "skipped": skipped, "out": *batchOut}).Info("batch run finished")
		return
	}

	g, err := material.ParseGrade(*grade)
	if err != nil {
		log.WithError(err).Fatal("unknown material")
	}
	params, err := vessel.NewParameters(*diameter, *length, *pressure, *temperature,
		vessel.WithMaterial(g),
		vessel.WithJointEfficiency(*joint),
		vessel.WithCorrosionAllowance(*corrosion),
	)
	if err != nil {
		log.WithError(err).Fatal("invalid design inputs")
	}
	res, err := vessel.Design(params)
	if err != nil {
		log.WithError(err).Fatal("design failed")
	}

	log.WithFields(log.Fields{
		"material": params.Material().String(),
		"f_mpa":    params.DesignStressMPa(),
		"p_mpa":    params.DesignPressureMPa(),
	}).Info("design point resolved")

	fmt.Printf("Required shell thickness: %8.2f mm\n", res.EShellRequiredMM())
	fmt.Printf("Required head thickness:  %8.2f mm\n", res.EHeadRequiredMM())
	fmt.Printf("Nominal plate thickness:  %8.2f mm\n", res.ENominalMM())

	if *showGeom {
		fmt.Println()
		fmt.Print(geometry.Kloepper(params.InnerDiameterMM()).Summary())
	}
	if *pdfPath != "" {
		if err := writeDatasheet(*pdfPath, res); err != nil {
			log.WithError(err).Fatal("cannot write datasheet")
		}
		log.WithField("path", *pdfPath).Info("datasheet written")
	}
}

// applyConfig overrides flag defaults from the [vessel] section of an INI
// file. Flags given explicitly on the command line win over the file.
func applyConfig(path string) error {
	cfg, err := ini.Load(path)
	if err != nil {
		return err
	}
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })

	sec := cfg.Section("vessel")
	for _, name := range []string{
		"diameter", "length", "pressure", "temperature",
		"material", "joint-efficiency", "corrosion",
	} {
		if set[name] || !sec.HasKey(name) {
			continue
		}
		if err := flag.Set(name, sec.Key(name).String()); err != nil {
			return fmt.Errorf("config key %s: %w", name, err)
		}
	}
	return nil
}

func init() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
}
