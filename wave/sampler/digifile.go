package sampler

import (
	"github.com/celskeggs/waveview/wave/model"
	"github.com/celskeggs/waveview/wave/wavefmt"
	"io"
)

// DigiFile samples one digital field of a waveform file.
type DigiFile struct {
	NoIterScale
	wave  wavefmt.DigitalReader
	field int
}

func MakeDigiFile(wave wavefmt.DigitalReader, field int) *DigiFile {
	if field < 0 || field >= wave.NumFields() {
		panic("field index out of range")
	}
	return &DigiFile{
		wave:  wave,
		field: field,
	}
}

var _ DigitalSampler = &DigiFile{}

func (d *DigiFile) Height() float64 {
	return HeightDigital
}

func (d *DigiFile) YScale() float64 {
	return 1
}

func (d *DigiFile) Label() string {
	return d.wave.FieldInfo(d.field).Name
}

// ValueAt is not answerable through the file boundary without a seek, so it
// always reports a low level.
func (d *DigiFile) ValueAt(model.Time, model.TimeScale) bool {
	return false
}

func (d *DigiFile) IterRange(rng model.TimeRange) DigitalIter {
	it := &digiFileIter{
		smpl: d,
		rng:  rng,
	}
	if _, err := d.wave.PrepareRange(rng); err != nil {
		it.err = err
		return it
	}
	if size, ok := d.wave.RecordSize(); ok {
		it.recbuf = make([]byte, size)
	}
	return it
}

type digiFileIter struct {
	smpl   *DigiFile
	rng    model.TimeRange
	recbuf []byte
	done   bool
	err    error
}

func (it *digiFileIter) Err() error {
	return it.err
}

// Next reads records until one lies past the end of the range. A read error
// ends the iteration early; running out of records does not count as one.
// A record from before the range holds its value from rng.Start.
func (it *digiFileIter) Next() (DigitalSample, bool) {
	if it.done || it.err != nil {
		return DigitalSample{}, false
	}
	value, t, err := it.smpl.wave.ReadNext(it.recbuf, it.smpl.field)
	if err == io.EOF {
		it.done = true
		return DigitalSample{}, false
	} else if err != nil {
		it.err = err
		return DigitalSample{}, false
	}
	if t > it.rng.End {
		it.done = true
		return DigitalSample{}, false
	}
	if t < it.rng.Start {
		t = it.rng.Start
	}
	return DigitalSample{Value: value, Time: t}, true
}
