package grisu

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferWriter(buf *bytes.Buffer) *Writer {
	return &Writer{
		sink:      &sink{out: buf},
		version:   "corsika2grisu test",
		qeff:      1.,
		obsHeight: DEFAULT_OBS_HEIGHT,
		particles: NewParticleMap(),
	}
}

func outputLines(buf *bytes.Buffer) []string {
	return strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
}

func TestWriteEventVertical(t *testing.T) {
	var buf bytes.Buffer
	w := newBufferWriter(&buf)

	event := ShowerEvent{
		Energy:   1.0,
		Azimuth:  0,
		Altitude: 90,
		XCore:    0,
		YCore:    0,
		FirstInt: 10,
		ShowerID: 5,
	}
	require.NoError(t, w.WriteEvent(event, false))

	lines := outputLines(&buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "S 1 0 0 0 0 10 -1 -1 -1", lines[0])
}

func TestWriteEventSnapping(t *testing.T) {
	var buf bytes.Buffer
	w := newBufferWriter(&buf)

	// almost vertical: sin(ze) is well below the 1e-8 snap threshold
	event := ShowerEvent{
		Energy:   0.5,
		Azimuth:  30,
		Altitude: 90 - 1e-7,
		FirstInt: 20,
	}
	require.NoError(t, w.WriteEvent(event, false))

	fields := strings.Fields(outputLines(&buf)[0])
	require.Len(t, fields, 10)
	assert.Equal(t, "0", fields[4], "dcos must snap to exactly 0")
	assert.Equal(t, "0", fields[5], "dsin must snap to exactly 0")
}

func TestWriteEventCorePosition(t *testing.T) {
	var buf bytes.Buffer
	w := newBufferWriter(&buf)

	event := ShowerEvent{
		Energy:   2.5,
		Azimuth:  0,
		Altitude: 90,
		XCore:    120.5,
		YCore:    -30.25,
		FirstInt: 25,
	}
	require.NoError(t, w.WriteEvent(event, false))

	fields := strings.Fields(outputLines(&buf)[0])
	assert.Equal(t, "30.25", fields[2])
	assert.Equal(t, "-120.5", fields[3])

	// the cached offset keeps the untransformed core
	x, y := w.Offset()
	assert.Equal(t, 120.5, x)
	assert.Equal(t, -30.25, y)
}

func TestWriteEventMoreInfoWithoutAtmosphere(t *testing.T) {
	var buf bytes.Buffer
	w := newBufferWriter(&buf)

	err := w.WriteEvent(ShowerEvent{Energy: 1, Altitude: 90, FirstInt: 10}, true)
	var noAtm *ErrNoAtmosphere
	require.ErrorAs(t, err, &noAtm)

	lines := outputLines(&buf)
	require.Len(t, lines, 1)
	assert.True(t, strings.HasPrefix(lines[0], "S "))
}

func TestWriteEventMoreInfo(t *testing.T) {
	var buf bytes.Buffer
	w := newBufferWriter(&buf)

	model, err := NewModel(1, DEFAULT_OBS_HEIGHT)
	require.NoError(t, err)
	w.atm = model

	event := ShowerEvent{
		Energy:   1.0,
		Azimuth:  0,
		Altitude: 60,
		FirstInt: 20000,
		ShowerID: 5,
	}
	require.NoError(t, w.WriteEvent(event, true))

	lines := outputLines(&buf)
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "S "))

	fields := strings.Fields(lines[1])
	require.Len(t, fields, 4)
	assert.Equal(t, "C", fields[0])
	assert.Equal(t, "20000", fields[1])
	assert.Equal(t, "5", fields[3])

	ze := 30. / degrad
	want := model.Thickness(100.*20000) / math.Cos(ze)
	thick, err := strconv.ParseFloat(fields[2], 64)
	require.NoError(t, err)
	assert.InDelta(t, want, thick, math.Abs(want)*1e-5)
}

func TestWritePhoton(t *testing.T) {
	var buf bytes.Buffer
	w := newBufferWriter(&buf)

	bunch := PhotonBunch{
		X:      5,
		Y:      -2.5,
		CX:     0.1,
		CY:     -0.2,
		Zem:    1.2e6,
		CTime:  350.5,
		Lambda: 450.7,
	}
	require.NoError(t, w.WritePhoton(bunch, 2))

	fields := strings.Fields(outputLines(&buf)[0])
	require.Len(t, fields, 10)
	assert.Equal(t, "P", fields[0])
	for _, field := range fields[1:] {
		signed := strings.HasPrefix(field, "+") || strings.HasPrefix(field, "-")
		assert.True(t, signed, "field %q must carry an explicit sign", field)
	}
	// position is swap-negated into the kascade frame
	assert.Equal(t, "+2.5", fields[1])
	assert.Equal(t, "-5", fields[2])
	// wavelength truncated to whole nanometers
	assert.Equal(t, "+450", fields[7])
	// emitting particle type is not known from CORSIKA
	assert.Equal(t, "+3", fields[8])
	assert.Equal(t, "+3", fields[9])
}

func TestPhotonSignDisplayDoesNotLeak(t *testing.T) {
	var buf bytes.Buffer
	w := newBufferWriter(&buf)

	bunch := PhotonBunch{X: 1, Y: 2, CX: 0.05, CY: 0.05, Zem: 8e5, CTime: 10, Lambda: 400}
	require.NoError(t, w.WritePhoton(bunch, 0))

	event := ShowerEvent{Energy: 1.5, Azimuth: 10, Altitude: 70, XCore: 3, YCore: 4, FirstInt: 30}
	require.NoError(t, w.WriteEvent(event, false))

	lines := outputLines(&buf)
	require.Len(t, lines, 2)
	for _, field := range strings.Fields(lines[0])[1:] {
		signed := strings.HasPrefix(field, "+") || strings.HasPrefix(field, "-")
		assert.True(t, signed, "photon field %q", field)
	}
	for _, field := range strings.Fields(lines[1])[1:] {
		assert.False(t, strings.HasPrefix(field, "+"), "shower field %q", field)
	}
}

func testRunHeaderBuffer() RunHeaderBuffer {
	buf := make(RunHeaderBuffer, RUN_HEADER_WORDS)
	buf[idxPrimaryID] = 14
	buf[idxZenith] = float32(20. / degrad)
	buf[idxAzimuth] = 0
	buf[idxRunNumber] = 12
	buf[idxDate] = 20260828
	buf[idxVersion] = 7.65
	buf[idxObsHeight] = 220000 // cm
	buf[idxSlope] = -2.7
	buf[idxEnergyMin] = 100
	buf[idxEnergyMax] = 10000
	buf[idxCutHadron] = 0.3
	buf[idxCutMuon] = 0.3
	buf[idxCutElectron] = 0.02
	buf[idxCutPhoton] = 0.02
	buf[idxMagneticX] = 20.5
	buf[idxMagneticZ] = 43.2
	return buf
}

func TestWriteRunHeader(t *testing.T) {
	var buf bytes.Buffer
	w := newBufferWriter(&buf)

	require.NoError(t, w.WriteRunHeader(testRunHeaderBuffer(), nil))
	out := buf.String()

	assert.Contains(t, out, "* HEADF  <-- Start of header flag")
	assert.Contains(t, out, "* DATAF  <-- end of header flag")
	assert.Contains(t, out, "photon list created with corsika2grisu test")
	assert.Contains(t, out, "CORSIKA run number: 12")
	assert.Contains(t, out, "(date: 20260828)")
	assert.Contains(t, out, "PTYPE: 14")
	assert.Contains(t, out, "(CORSIKA ID) 14")
	assert.Contains(t, out, "(kascade ID) 13")
	assert.Contains(t, out, "Primary energy<min.,max.> TeV = 0.1000\t10.0000")
	assert.Contains(t, out, "Primary zenith angle  (CORSIKA coord.): 20.0000")
	assert.Contains(t, out, "Primary azimuth angle (CORSIKA coord.): 0.0000")
	// azimuth 0 in CORSIKA is 270 deg in the kascade frame
	assert.Contains(t, out, "Primary azimuth angle (kascade coord.): 270.0000")
	assert.Contains(t, out, "Observation height [m]: 2200.0000")
	assert.Contains(t, out, "CORSIKA RUN HEADER (START)\nCORSIKA RUN HEADER (END)")
	assert.True(t, strings.HasSuffix(out, "R 1.0000\nH 100.0000\n"))
}

func TestWriteRunHeaderUnknownPrimary(t *testing.T) {
	var buf bytes.Buffer
	w := newBufferWriter(&buf)

	header := testRunHeaderBuffer()
	header[idxPrimaryID] = 26
	require.NoError(t, w.WriteRunHeader(header, nil))

	assert.Contains(t, buf.String(), "unknown particle (for kascade)")
	assert.Contains(t, buf.String(), "PTYPE: 26")
}

func TestWriteRunHeaderWithInfo(t *testing.T) {
	var buf bytes.Buffer
	w := newBufferWriter(&buf)

	header := testRunHeaderBuffer()
	require.NoError(t, w.WriteRunHeader(header, RawRunHeader{Buffer: header}))
	out := buf.String()

	start := strings.Index(out, "CORSIKA RUN HEADER (START)")
	end := strings.Index(out, "CORSIKA RUN HEADER (END)")
	require.Greater(t, end, start)
	assert.Contains(t, out[start:end], "RUNNR 12")
	assert.Contains(t, out[start:end], "PRMPAR 14")
}

func TestNewWriter(t *testing.T) {
	SetConfiguration(Configuration{Version: "test", Qeff: 1, AtmID: -1})

	t.Run("file destination", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "run12.grisu")
		w, err := NewWriter(path)
		require.NoError(t, err)
		require.NoError(t, w.WriteEvent(ShowerEvent{Energy: 1, Altitude: 90, FirstInt: 10}, false))
		require.NoError(t, w.Close())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(data), "S "))
	})

	t.Run("stdout sentinel", func(t *testing.T) {
		w, err := NewWriter(STDOUT_SENTINEL)
		require.NoError(t, err)
		assert.Equal(t, os.Stdout, w.sink.out)
		require.NoError(t, w.Close())
	})

	t.Run("unopenable destination", func(t *testing.T) {
		_, err := NewWriter(filepath.Join(t.TempDir(), "missing", "run.grisu"))
		var openErr *ErrOpenFile
		require.True(t, errors.As(err, &openErr))
	})
}
