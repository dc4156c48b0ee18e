package grisu

import "fmt"

// ErrOpenFile represents an error when opening a file.
type ErrOpenFile struct {
	Filename string
	Err      error
}

func (e *ErrOpenFile) Error() string {
	return fmt.Sprintf("error opening file %q: %v", e.Filename, e.Err)
}

// ErrBadRecord represents an error when decoding a simulation record.
type ErrBadRecord struct {
	RecordType uint32
	Err        error
}

func (e *ErrBadRecord) Error() string {
	return fmt.Sprintf("error decoding record of type %d: %v", e.RecordType, e.Err)
}

// ErrUnknownAtmosphere represents a request for an atmosphere id without
// a built-in parameterization.
type ErrUnknownAtmosphere struct {
	ID int
}

func (e *ErrUnknownAtmosphere) Error() string {
	return fmt.Sprintf("unknown atmosphere model id %d", e.ID)
}

// ErrNoAtmosphere is returned when a slant depth is requested but the
// writer was built without an atmosphere model (atm_id < 0).
type ErrNoAtmosphere struct{}

func (e *ErrNoAtmosphere) Error() string {
	return "atmosphere model not initialized"
}
