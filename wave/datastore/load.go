package datastore

import (
	"github.com/celskeggs/waveview/wave/sampler"
	"github.com/celskeggs/waveview/wave/wavefmt"
	"github.com/pkg/errors"
	"log"
)

// FromWaveFile builds a store with one signal per digital field of wf. Fields
// of other types have no sampler yet and are skipped.
func FromWaveFile(wf wavefmt.DigitalReader) (*Store, error) {
	ok, err := wf.CheckFormat()
	if err != nil {
		return nil, errors.Wrap(err, "check format")
	}
	if !ok {
		return nil, wavefmt.ErrUnsupported
	}
	rng := wf.Range()
	if !rng.Valid() {
		return nil, errors.Wrapf(wavefmt.ErrMalformed, "time range %v", rng)
	}
	s := NewStore(rng)
	for field := 0; field < wf.NumFields(); field++ {
		fi := wf.FieldInfo(field)
		switch fi.Type {
		case wavefmt.FieldDigital:
			s.AddDigital(sampler.MakeDigiFile(wf, field))
		case wavefmt.FieldTimestamp:
			// implicit in every sample
		default:
			log.Printf("skipping field %q: no sampler for %v fields", fi.Name, fi.Type)
		}
	}
	return s, nil
}

// Load replaces the store's contents with the signals in the file at path. On
// failure the store is left unchanged.
func (s *Store) Load(path string) error {
	wf, err := wavefmt.Open(path)
	if err != nil {
		return err
	}
	loaded, err := FromWaveFile(wf)
	if err != nil {
		return errors.Wrapf(err, "load %q", path)
	}
	*s = *loaded
	return nil
}
