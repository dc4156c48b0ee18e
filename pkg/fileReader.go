package grisu

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"unsafe"
)

// Record tags of the framed simulation stream produced by the upstream
// CORSIKA extractor.
const (
	RUN_HEADER_RECORD uint32 = 1
	SHOWER_RECORD     uint32 = 2
	BUNCH_RECORD      uint32 = 3
)

// RecordHeaderStruct frames every record: a type tag followed by the
// payload size in bytes. Little endian on the wire.
type RecordHeaderStruct struct {
	RecordType uint32
	RecordSize uint32
}

type ShowerRecordStruct struct {
	Energy   float32
	Azimuth  float32
	Altitude float32
	XCore    float32
	YCore    float32
	FirstInt float32
	ShowerID int32
}

type BunchRecordStruct struct {
	Telescope int32
	X         float32
	Y         float32
	CX        float32
	CY        float32
	Zem       float32
	CTime     float32
	Lambda    float32
}

// Record is one decoded entry of the stream. Exactly one of RunHeader,
// Shower and Bunch is set, matching Header.RecordType.
type Record struct {
	Header    RecordHeaderStruct
	RunHeader RunHeaderBuffer
	Shower    *ShowerEvent
	Bunch     *PhotonBunch
	Telescope int
}

// ReadRecordFromFile reads and decodes the next record. io.EOF marks a
// clean end of the stream; a truncated or unknown record surfaces as
// ErrBadRecord.
func ReadRecordFromFile(file *os.File) (Record, error) {
	var header RecordHeaderStruct
	headerSize := unsafe.Sizeof(header)
	headerBinary := make([]byte, headerSize)
	if _, err := io.ReadFull(file, headerBinary); err != nil {
		if err == io.ErrUnexpectedEOF {
			return Record{}, io.EOF
		}
		return Record{}, err
	}
	headerReader := bytes.NewReader(headerBinary)
	binary.Read(headerReader, binary.LittleEndian, &header)

	payload := make([]byte, header.RecordSize)
	if _, err := io.ReadFull(file, payload); err != nil {
		return Record{}, &ErrBadRecord{RecordType: header.RecordType, Err: err}
	}
	return decodeRecord(header, payload)
}

func decodeRecord(header RecordHeaderStruct, payload []byte) (Record, error) {
	record := Record{Header: header}
	payloadReader := bytes.NewReader(payload)

	switch header.RecordType {
	case RUN_HEADER_RECORD:
		buf := make(RunHeaderBuffer, RUN_HEADER_WORDS)
		if err := binary.Read(payloadReader, binary.LittleEndian, buf); err != nil {
			return record, &ErrBadRecord{RecordType: header.RecordType, Err: err}
		}
		record.RunHeader = buf
	case SHOWER_RECORD:
		var shower ShowerRecordStruct
		if err := binary.Read(payloadReader, binary.LittleEndian, &shower); err != nil {
			return record, &ErrBadRecord{RecordType: header.RecordType, Err: err}
		}
		record.Shower = &ShowerEvent{
			Energy:   float64(shower.Energy),
			Azimuth:  float64(shower.Azimuth),
			Altitude: float64(shower.Altitude),
			XCore:    float64(shower.XCore),
			YCore:    float64(shower.YCore),
			FirstInt: float64(shower.FirstInt),
			ShowerID: int(shower.ShowerID),
		}
	case BUNCH_RECORD:
		var bunch BunchRecordStruct
		if err := binary.Read(payloadReader, binary.LittleEndian, &bunch); err != nil {
			return record, &ErrBadRecord{RecordType: header.RecordType, Err: err}
		}
		record.Bunch = &PhotonBunch{
			X:      float64(bunch.X),
			Y:      float64(bunch.Y),
			CX:     float64(bunch.CX),
			CY:     float64(bunch.CY),
			Zem:    float64(bunch.Zem),
			CTime:  float64(bunch.CTime),
			Lambda: float64(bunch.Lambda),
		}
		record.Telescope = int(bunch.Telescope)
	default:
		return record, &ErrBadRecord{
			RecordType: header.RecordType,
			Err:        fmt.Errorf("unknown record type"),
		}
	}
	return record, nil
}

// FileReader iterates over a record stream applying the configured Skip
// and MaxEvents limits to shower records. Bunch records belonging to a
// skipped shower are dropped with it.
type FileReader struct {
	File     *os.File
	EvtCount int
	skipping bool
}

func NewFileReader(file *os.File) *FileReader {
	return &FileReader{File: file, EvtCount: -1}
}

func (f *FileReader) NextRecord() (Record, error) {
	for {
		record, err := ReadRecordFromFile(f.File)
		if err != nil {
			return record, err
		}
		switch record.Header.RecordType {
		case SHOWER_RECORD:
			f.EvtCount++
			if f.EvtCount >= configuration.MaxEvents {
				if configuration.Verbosity > 0 {
					logger.Info("Max events reached", "fileReader")
				}
				return record, io.EOF
			}
			f.skipping = f.EvtCount < configuration.Skip
			if f.skipping {
				if configuration.Verbosity > 0 {
					message := fmt.Sprintf("Skipping event %d with ID %d", f.EvtCount, record.Shower.ShowerID)
					logger.Info(message, "fileReader")
				}
				continue
			}
			if configuration.Verbosity > 0 {
				message := fmt.Sprintf("Reading event %d with ID %d", f.EvtCount, record.Shower.ShowerID)
				logger.Info(message, "fileReader")
			}
			return record, nil
		case BUNCH_RECORD:
			if f.skipping {
				continue
			}
			return record, nil
		default:
			return record, nil
		}
	}
}

// CountShowers scans the whole stream counting shower records, then
// rewinds the file.
func CountShowers(file *os.File) (int, error) {
	evtCount := 0
	for {
		record, err := ReadRecordFromFile(file)
		if err != nil {
			if err != io.EOF {
				return evtCount, err
			}
			break
		}
		if record.Header.RecordType == SHOWER_RECORD {
			evtCount++
		}
	}
	// Go back to the beginning of the file
	if _, err := file.Seek(0, 0); err != nil {
		return evtCount, err
	}
	return evtCount, nil
}
