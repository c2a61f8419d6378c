// Package wavefmt defines the boundary between the waveform viewer and a
// concrete waveform file reader. No file format is implemented here.
package wavefmt

import (
	"fmt"
	"github.com/celskeggs/waveview/wave/model"
	"github.com/pkg/errors"
)

var (
	ErrUnsupported = errors.New("unsupported file type")
	ErrMalformed   = errors.New("malformed record")
)

type FieldType uint8

const (
	FieldTimestamp FieldType = iota
	FieldDigital
	FieldDigiBus
	FieldAnalog
)

func (ft FieldType) String() string {
	switch ft {
	case FieldTimestamp:
		return "Timestamp"
	case FieldDigital:
		return "Digital"
	case FieldDigiBus:
		return "DigiBus"
	case FieldAnalog:
		return "Analog"
	default:
		return fmt.Sprintf("FieldType(%d)", uint8(ft))
	}
}

type FieldInfo struct {
	Name string
	Type FieldType
	// Width is the bus width in bits; only meaningful for FieldDigiBus.
	Width int
}

type WaveFile interface {
	// CheckFormat reads the file header and reports whether the file matches
	// the reader's format.
	CheckFormat() (bool, error)
	// RecordSize is the size of one record in bytes, if records are fixed size.
	RecordSize() (int, bool)
	Range() model.TimeRange
	NumFields() int
	FieldInfo(field int) FieldInfo
	NumRows() (int, bool)
	// PrepareRange seeks to the first record at or before rng.Start and
	// returns the [start, end] record indices covering rng.
	PrepareRange(rng model.TimeRange) ([2]int, error)
}

type DigitalReader interface {
	WaveFile
	// ReadNext decodes the next record into buf and returns the value of the
	// given field along with the record's timestamp.
	ReadNext(buf []byte, field int) (bool, model.Time, error)
}

// MalformedError reports a record that could not be decoded.
func MalformedError(record int, reason string) error {
	return errors.Wrapf(ErrMalformed, "record %d: %s", record, reason)
}

// Open selects a reader for the file at path. No formats are registered, so
// this always fails with ErrUnsupported.
func Open(path string) (DigitalReader, error) {
	return nil, errors.Wrapf(ErrUnsupported, "open %q", path)
}
