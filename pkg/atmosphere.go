package grisu

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/interp"
)

// atmLayer is one layer of a Linsley-style parameterization. Below the
// top layer the overburden follows T(h) = a + b*exp(-h/c); in the top
// layer it falls off linearly as T(h) = a - b*h/c. Heights in cm,
// thickness in g/cm2.
type atmLayer struct {
	hlow    float64
	a, b, c float64
	linear  bool
}

// U.S. standard atmosphere after Linsley, as parameterized in CORSIKA.
var usStandardLayers = []atmLayer{
	{0., -186.555305, 1222.6562, 994186.38, false},
	{4.e5, -94.919, 1144.9069, 878153.55, false},
	{10.e5, 0.61289, 1305.5948, 636143.04, false},
	{40.e5, 0.0, 540.1778, 772170.16, false},
	{100.e5, 0.01128292, 1., 1.e9, true},
}

var builtinAtmospheres = map[int][]atmLayer{
	1: usStandardLayers,
}

// AtmosphereModel converts a height to the atmospheric overburden along
// the vertical, either from a built-in layered parameterization or from a
// tabulated profile.
type AtmosphereModel struct {
	id        int
	obsHeight float64 // m
	layers    []atmLayer
	profile   *interp.AkimaSpline // fitted over log thickness
	hmin      float64
	hmax      float64
}

// NewModel selects a built-in atmosphere parameterization.
func NewModel(id int, obsHeight float64) (*AtmosphereModel, error) {
	layers, ok := builtinAtmospheres[id]
	if !ok {
		return nil, &ErrUnknownAtmosphere{ID: id}
	}
	if configuration.Verbosity > 0 {
		logger.Info(fmt.Sprintf("Atmosphere model %d, observation height %.1f m", id, obsHeight), "atmosphere")
	}
	return &AtmosphereModel{id: id, obsHeight: obsHeight, layers: layers}, nil
}

// LoadProfile reads a tabulated atmosphere profile (atmprof style: one
// row per altitude with altitude [km], density and vertical thickness
// [g/cm2] columns, '#' comments) and fits an interpolating spline.
func LoadProfile(filename string, obsHeight float64) (*AtmosphereModel, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, &ErrOpenFile{Filename: filename, Err: err}
	}
	defer file.Close()

	var heights, logThickness []float64
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}
		altitude, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("error parsing altitude in %q: %w", filename, err)
		}
		thickness, err := strconv.ParseFloat(fields[2], 64)
		if err != nil {
			return nil, fmt.Errorf("error parsing thickness in %q: %w", filename, err)
		}
		if thickness <= 0 {
			continue
		}
		heights = append(heights, altitude*1.e5) // km -> cm
		logThickness = append(logThickness, math.Log(thickness))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading profile %q: %w", filename, err)
	}
	if len(heights) < 3 {
		return nil, fmt.Errorf("profile %q has only %d usable rows", filename, len(heights))
	}

	var spline interp.AkimaSpline
	if err := spline.Fit(heights, logThickness); err != nil {
		return nil, fmt.Errorf("error fitting profile %q: %w", filename, err)
	}
	if configuration.Verbosity > 0 {
		message := fmt.Sprintf("Atmosphere profile %s with %d levels", filename, len(heights))
		logger.Info(message, "atmosphere")
	}
	return &AtmosphereModel{
		id:        -1,
		obsHeight: obsHeight,
		profile:   &spline,
		hmin:      heights[0],
		hmax:      heights[len(heights)-1],
	}, nil
}

// ID returns the built-in atmosphere id, or -1 for tabulated profiles.
func (m *AtmosphereModel) ID() int {
	return m.id
}

// ObsHeight returns the observation height in m.
func (m *AtmosphereModel) ObsHeight() float64 {
	return m.obsHeight
}

// Thickness returns the vertical atmospheric overburden in g/cm2 above
// the given height in cm.
func (m *AtmosphereModel) Thickness(height float64) float64 {
	if m.profile != nil {
		if height < m.hmin {
			height = m.hmin
		}
		if height > m.hmax {
			return 0.
		}
		return math.Exp(m.profile.Predict(height))
	}

	layer := m.layers[0]
	for _, l := range m.layers[1:] {
		if height < l.hlow {
			break
		}
		layer = l
	}
	if layer.linear {
		thickness := layer.a - layer.b*height/layer.c
		if thickness < 0 {
			return 0.
		}
		return thickness
	}
	return layer.a + layer.b*math.Exp(-height/layer.c)
}
