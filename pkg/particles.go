package grisu

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// ParticleMap translates CORSIKA particle IDs to kascade particle IDs.
// The table is fixed at construction.
type ParticleMap struct {
	particles map[int]int
}

func NewParticleMap() ParticleMap {
	return ParticleMap{particles: map[int]int{
		1:  1,  // gamma
		2:  2,  // e-
		3:  3,  // e+
		5:  4,  // mu+
		6:  5,  // mu-
		7:  6,  // pi0
		8:  7,  // pi+
		9:  8,  // pi-
		11: 9,  // K+
		12: 10, // K-
		10: 11, // K0 long
		16: 12, // K0 short
		14: 13, // proton
		13: 14, // neutron
	}}
}

// Lookup returns the kascade ID for a CORSIKA particle ID. The second
// return value is false for particles without a kascade equivalent.
func (m ParticleMap) Lookup(corsikaID int) (int, bool) {
	kascadeID, ok := m.particles[corsikaID]
	return kascadeID, ok
}

// Codes returns the known CORSIKA IDs in ascending order.
func (m ParticleMap) Codes() []int {
	codes := maps.Keys(m.particles)
	slices.Sort(codes)
	return codes
}
