package main

import (
	"flag"
	"fmt"
	"os"

	grisu "github.com/iact-sim/corsika2grisu/pkg"
)

// atmprofile prints a height/thickness table for an atmosphere model, to
// cross-check the slant depths written on converted "C" lines.
func main() {
	atmID := flag.Int("atm", 1, "Atmosphere model id")
	profile := flag.String("profile", "", "Tabulated atmosphere profile file")
	hmin := flag.Float64("hmin", 0, "Lowest height [km]")
	hmax := flag.Float64("hmax", 50, "Highest height [km]")
	step := flag.Float64("step", 1, "Height step [km]")
	flag.Parse()

	var model *grisu.AtmosphereModel
	var err error
	if *profile != "" {
		model, err = grisu.LoadProfile(*profile, grisu.DEFAULT_OBS_HEIGHT)
	} else {
		model, err = grisu.NewModel(*atmID, grisu.DEFAULT_OBS_HEIGHT)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println("height [km]   thickness [g/cm2]")
	for h := *hmin; h <= *hmax; h += *step {
		fmt.Printf("%11.2f   %15.4f\n", h, model.Thickness(h*1.e5))
	}
}
