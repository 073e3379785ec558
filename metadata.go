package mvault

import "github.com/mvault/mvault/errors"

// Metadata is carried by every persisted entity and message. Schema
// versions the binary layout of the record, so that a future layout change
// can migrate old payloads instead of misreading them. The current and
// only schema version is 1.
type Metadata struct {
	Schema uint32
}

// Validate returns an error if the metadata is not valid. A zero schema
// means the envelope was never initialized.
func (m *Metadata) Validate() error {
	if m == nil {
		return errors.Wrap(errors.ErrMetadata, "no metadata")
	}
	if m.Schema < 1 {
		return errors.Wrap(errors.ErrMetadata, "schema version missing")
	}
	return nil
}

// Copy returns a copy of this object. This method is helpful when making a
// deep copy of the record header.
func (m *Metadata) Copy() *Metadata {
	if m == nil {
		return nil
	}
	cpy := *m
	return &cpy
}
