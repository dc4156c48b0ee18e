package grisu

import (
	"io"
	"os"
	"strconv"
	"strings"
)

// STDOUT_SENTINEL selects the process standard output instead of a file.
const STDOUT_SENTINEL = "stdout"

type sink struct {
	out    io.Writer
	closer io.Closer
}

func openSink(filename string) (*sink, error) {
	if filename == STDOUT_SENTINEL {
		return &sink{out: os.Stdout}, nil
	}
	file, err := os.Create(filename)
	if err != nil {
		return nil, &ErrOpenFile{Filename: filename, Err: err}
	}
	return &sink{out: file, closer: file}, nil
}

func (s *sink) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// lineFormat carries the numeric rendering options of one output line, so
// that sign display on photon lines cannot leak into other records.
type lineFormat struct {
	precision int // significant digits
	showPos   bool
}

var (
	eventFormat  = lineFormat{precision: 7}
	photonFormat = lineFormat{precision: 7, showPos: true}
)

func (f lineFormat) float(v float64) string {
	if v == 0 {
		v = 0 // drop the sign of negative zero
	}
	s := strconv.FormatFloat(v, 'g', f.precision, 64)
	if f.showPos && !strings.HasPrefix(s, "-") {
		s = "+" + s
	}
	return s
}

func (f lineFormat) int(v int) string {
	if f.showPos && v >= 0 {
		return "+" + strconv.Itoa(v)
	}
	return strconv.Itoa(v)
}

// headerFloat renders run header values with the fixed 4-decimal default
// formatting of the destination.
func headerFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
