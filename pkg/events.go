package grisu

// RunHeaderBuffer holds the 273 words of a CORSIKA run header block.
// The word positions are a fixed CORSIKA contract; only the words the
// converter consumes have named accessors.
type RunHeaderBuffer []float32

const RUN_HEADER_WORDS = 273

const (
	idxPrimaryID   = 2
	idxZenith      = 10
	idxAzimuth     = 11
	idxRunNumber   = 43
	idxDate        = 44
	idxVersion     = 45
	idxObsHeight   = 47
	idxSlope       = 57
	idxEnergyMin   = 58
	idxEnergyMax   = 59
	idxCutHadron   = 60
	idxCutMuon     = 61
	idxCutElectron = 62
	idxCutPhoton   = 63
	idxMagneticX   = 70
	idxMagneticZ   = 71
)

func (b RunHeaderBuffer) PrimaryID() int       { return int(b[idxPrimaryID]) }
func (b RunHeaderBuffer) Zenith() float64      { return float64(b[idxZenith]) }
func (b RunHeaderBuffer) Azimuth() float64     { return float64(b[idxAzimuth]) }
func (b RunHeaderBuffer) RunNumber() int       { return int(b[idxRunNumber]) }
func (b RunHeaderBuffer) Date() int            { return int(b[idxDate]) }
func (b RunHeaderBuffer) Version() float64     { return float64(b[idxVersion]) }
func (b RunHeaderBuffer) ObsHeightCM() float64 { return float64(b[idxObsHeight]) }
func (b RunHeaderBuffer) Slope() float64       { return float64(b[idxSlope]) }
func (b RunHeaderBuffer) EnergyMin() float64   { return float64(b[idxEnergyMin]) }
func (b RunHeaderBuffer) EnergyMax() float64   { return float64(b[idxEnergyMax]) }
func (b RunHeaderBuffer) MagneticX() float64   { return float64(b[idxMagneticX]) }
func (b RunHeaderBuffer) MagneticZ() float64   { return float64(b[idxMagneticZ]) }

// EnergyCuts returns the hadron, muon, electron and photon cuts in GeV.
func (b RunHeaderBuffer) EnergyCuts() (float64, float64, float64, float64) {
	return float64(b[idxCutHadron]), float64(b[idxCutMuon]),
		float64(b[idxCutElectron]), float64(b[idxCutPhoton])
}

// ShowerEvent describes one simulated air shower.
type ShowerEvent struct {
	Energy   float64 // TeV
	Azimuth  float64 // deg, CORSIKA convention
	Altitude float64 // deg
	XCore    float64
	YCore    float64
	FirstInt float64 // height of first interaction
	ShowerID int
}

// PhotonBunch describes one Cherenkov photon bunch hitting a telescope.
type PhotonBunch struct {
	X, Y   float64
	CX, CY float64 // direction cosines, CORSIKA convention
	Zem    float64 // emission height
	CTime  float64 // time since first interaction
	Lambda float64 // wavelength in nm
}
