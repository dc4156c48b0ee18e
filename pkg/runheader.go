package grisu

import (
	"fmt"
	"io"
)

// RawRunHeader is the fallback RunHeaderInfo collaborator: it dumps the
// run header words the converter itself consumes, labeled with their
// CORSIKA steering keywords.
type RawRunHeader struct {
	Buffer RunHeaderBuffer
}

func (r RawRunHeader) PrintHeader(w io.Writer) error {
	buf := r.Buffer
	hadr, muon, elec, phot := buf.EnergyCuts()
	_, err := fmt.Fprintf(w,
		"RUNNR %d\n"+
			"DATE %d\n"+
			"VERSION %s\n"+
			"PRMPAR %d\n"+
			"ESLOPE %s\n"+
			"ERANGE [GeV] %s %s\n"+
			"THETAP [deg] %s\n"+
			"PHIP [deg] %s\n"+
			"OBSLEV [cm] %s\n"+
			"MAGNET %s %s\n"+
			"ECUTS [GeV] %s %s %s %s\n",
		buf.RunNumber(),
		buf.Date(),
		headerFloat(buf.Version()),
		buf.PrimaryID(),
		headerFloat(buf.Slope()),
		headerFloat(buf.EnergyMin()), headerFloat(buf.EnergyMax()),
		headerFloat(buf.Zenith()*degrad),
		headerFloat(buf.Azimuth()*degrad),
		headerFloat(buf.ObsHeightCM()),
		headerFloat(buf.MagneticX()), headerFloat(buf.MagneticZ()),
		headerFloat(hadr), headerFloat(muon), headerFloat(elec), headerFloat(phot))
	return err
}
