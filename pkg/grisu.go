package grisu

import (
	"fmt"
	"io"
	"math"
)

const degrad = 180 / math.Pi

// default observation height in m, kept unless an atmosphere model
// supplies one
const DEFAULT_OBS_HEIGHT = 100.

// RunHeaderInfo renders a descriptive block about the simulation run.
// The writer frames the block with CORSIKA RUN HEADER (START)/(END)
// markers and tolerates a nil collaborator.
type RunHeaderInfo interface {
	PrintHeader(w io.Writer) error
}

// Writer emits a grisu readable photon list from CORSIKA records.
//
// Coordinate transformations:
//   - CORSIKA: x to north, y to west, z upwards (azimuth counterclockwise)
//   - kascade: x to east, y to south, z downwards (azimuth clockwise)
type Writer struct {
	sink      *sink
	version   string
	qeff      float64
	obsHeight float64 // m
	atm       *AtmosphereModel
	particles ParticleMap
	xoff      float64
	yoff      float64
}

// NewWriter selects the output destination from the configured file name
// ("stdout" selects the standard output) and initializes the atmosphere
// model when a non-negative atm_id is configured. A destination that
// cannot be opened is fatal to the whole run; callers must not fall back
// to another destination.
func NewWriter(filename string) (*Writer, error) {
	s, err := openSink(filename)
	if err != nil {
		return nil, err
	}
	w := &Writer{
		sink:      s,
		version:   configuration.Version,
		qeff:      configuration.Qeff,
		obsHeight: DEFAULT_OBS_HEIGHT,
		particles: NewParticleMap(),
	}
	if w.qeff == 0 {
		w.qeff = 1.
	}
	if configuration.AtmID >= 0 {
		if configuration.AtmProfile != "" {
			w.atm, err = LoadProfile(configuration.AtmProfile, w.obsHeight)
		} else {
			w.atm, err = NewModel(configuration.AtmID, w.obsHeight)
		}
		if err != nil {
			s.Close()
			return nil, err
		}
	}
	return w, nil
}

// WriteRunHeader writes the grisu header block. Expected once per output
// file, before any shower line.
func (w *Writer) WriteRunHeader(buf RunHeaderBuffer, info RunHeaderInfo) error {
	out := w.sink.out
	fmt.Fprintln(out, "* HEADF  <-- Start of header flag")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "photon list created with %s\n", w.version)
	fmt.Fprintln(out)
	fmt.Fprintf(out, "       Photons generated by CORSIKA  (date: %d)\n", buf.Date())
	fmt.Fprintln(out)
	fmt.Fprintf(out, "\t CORSIKA run number: %d\n", buf.RunNumber())
	fmt.Fprintf(out, "\t CORSIKA version: %s\n", headerFloat(buf.Version()))
	fmt.Fprintln(out)
	fmt.Fprintln(out)

	fmt.Fprintln(out, " TITLE OF RUN: ")
	fmt.Fprintf(out, "\t\t\t Primary energy<min.,max.> TeV = %s\t%s\n",
		headerFloat(buf.EnergyMin()/1.E3), headerFloat(buf.EnergyMax()/1.E3))
	fmt.Fprintf(out, "\t\t\t Slope of energy spectrum: %s\n", headerFloat(buf.Slope()))
	fmt.Fprintf(out, "\t\t\t Type code for primary particle (CORSIKA ID) %d\n", buf.PrimaryID())
	fmt.Fprintf(out, "PTYPE: %d\n", buf.PrimaryID())

	if kascadeID, ok := w.particles.Lookup(buf.PrimaryID()); ok {
		fmt.Fprintf(out, "\t\t\t Type code for primary particle (kascade ID) %d\n", kascadeID)
	} else {
		fmt.Fprintf(out, "\t\t\t Type code for primary particle (kascade ID) \t unknown particle (for kascade)\n")
	}
	fmt.Fprintf(out, "\t\t\t Primary zenith angle  (CORSIKA coord.): %s\n", headerFloat(buf.Zenith()*degrad))
	fmt.Fprintf(out, "\t\t\t Primary azimuth angle (CORSIKA coord.): %s\n", headerFloat(buf.Azimuth()*degrad))
	az, _, _ := TransformCoord(buf.Azimuth(), 0, 0)
	fmt.Fprintf(out, "\t\t\t Primary zenith angle  (kascade coord.): %s\n", headerFloat(buf.Zenith()*degrad))
	fmt.Fprintf(out, "\t\t\t Primary azimuth angle (kascade coord.): %s\n", headerFloat(az*degrad))
	fmt.Fprintf(out, "\t\t\t Magnetic field (x/z): %s\t%s\n",
		headerFloat(buf.MagneticX()), headerFloat(buf.MagneticZ()))
	fmt.Fprintf(out, "\t\t\t Observation height [m]: %s\n", headerFloat(buf.ObsHeightCM()*0.01))
	hadr, muon, elec, phot := buf.EnergyCuts()
	fmt.Fprintf(out, "\t\t\t Energy cuts (hadr./muon/el./phot.) [GeV]: %s\t%s\t%s\t%s\n",
		headerFloat(hadr), headerFloat(muon), headerFloat(elec), headerFloat(phot))

	fmt.Fprintln(out, "CORSIKA RUN HEADER (START)")
	if info != nil {
		if err := info.PrintHeader(out); err != nil {
			return err
		}
	}
	fmt.Fprintln(out, "CORSIKA RUN HEADER (END)")

	fmt.Fprintln(out)
	fmt.Fprintln(out, "* DATAF  <-- end of header flag")
	fmt.Fprintf(out, "R %s\n", headerFloat(w.qeff))
	// observation height in [m]
	fmt.Fprintf(out, "H %s\n", headerFloat(w.obsHeight))
	return nil
}

// WriteEvent writes the shower line ("S") and, when printMoreInfo is set,
// an additional "C" line with the first interaction height, its slant
// depth and the CORSIKA shower id.
func (w *Writer) WriteEvent(event ShowerEvent, printMoreInfo bool) error {
	phi := event.Azimuth / degrad
	ze := (90. - event.Altitude) / degrad

	w.xoff = event.XCore
	w.yoff = event.YCore

	// transform CORSIKA to grisu coordinates
	phi, x, y := TransformCoord(phi, event.XCore, event.YCore)

	dcos := math.Sin(ze) * math.Cos(phi)
	if math.Abs(dcos) < 1.e-8 {
		dcos = 0. // rounding error
	}
	dsin := math.Sin(ze) * math.Sin(phi)
	if math.Abs(dsin) < 1.e-8 {
		dsin = 0. // rounding error
	}

	f := eventFormat
	fmt.Fprintf(w.sink.out, "S %s %s %s %s %s %s -1 -1 -1\n",
		f.float(event.Energy), // energy in TeV
		f.float(x), f.float(y),
		f.float(dcos), f.float(dsin),
		f.float(event.FirstInt))

	if printMoreInfo {
		if w.atm == nil {
			return &ErrNoAtmosphere{}
		}
		thick := w.atm.Thickness(100.*event.FirstInt) / math.Cos(ze)
		fmt.Fprintf(w.sink.out, "C %s %s %d\n",
			f.float(event.FirstInt), f.float(thick), event.ShowerID)
	}
	return nil
}

// WritePhoton writes the photon line ("P") for one bunch hitting the
// telescope with the given index. Sign display is local to this line.
func (w *Writer) WritePhoton(bunch PhotonBunch, tel int) error {
	az := math.Atan2(bunch.CY, bunch.CX)
	ze := 1. - (bunch.CX*bunch.CX + bunch.CY*bunch.CY)
	if ze > 0. {
		ze = math.Sqrt(ze)
	} else {
		ze = 0.
	}
	ze = math.Acos(ze)

	az, x, y := TransformCoord(az, bunch.X, bunch.Y)

	f := photonFormat
	fmt.Fprintf(w.sink.out, "P %s %s %s %s %s %s %s %s %s\n",
		f.float(x), f.float(y),
		f.float(math.Sin(ze)*math.Cos(az)),
		f.float(math.Sin(ze)*math.Sin(az)),
		f.float(bunch.Zem),
		f.float(bunch.CTime), // time since first interaction, not since emission
		f.int(int(bunch.Lambda)), // in nanometer
		f.int(3),                 // emitting particle type, not known from CORSIKA
		f.int(tel+1))
	return nil
}

// Offset reports the core position of the most recent shower, in the
// CORSIKA frame.
func (w *Writer) Offset() (float64, float64) {
	return w.xoff, w.yoff
}

func (w *Writer) Close() error {
	return w.sink.Close()
}
