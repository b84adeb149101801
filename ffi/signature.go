package ffi

import (
	"fortio.org/safecast"

	"github.com/singlestore-labs/to-wit/errors"
	"github.com/singlestore-labs/to-wit/wai"
)

// SigPartLength writes the number of core words in the given signature
// part.
func (s *Session) SigPartLength(sig *Signature, part wai.SigPart, out *uint64) bool {
	return s.capture("sig part length", func() error {
		if err := sig.live(); err != nil {
			return err
		}
		if out == nil {
			return errNilOut("sig part length")
		}
		n, err := sig.sig.Length(part)
		if err != nil {
			return err
		}
		u, err := safecast.Conv[uint64](n)
		if err != nil {
			return errors.Internal(errors.PhaseBoundary, "sig part length conversion", err)
		}
		*out = u
		return nil
	})
}

// SigPartWord writes the word kind at the given position of the part.
func (s *Session) SigPartWord(sig *Signature, part wai.SigPart, index uint64, out *wai.WordKind) bool {
	return s.capture("sig part word", func() error {
		if err := sig.live(); err != nil {
			return err
		}
		if out == nil {
			return errNilOut("sig part word")
		}
		i, err := safecast.Conv[int](index)
		if err != nil {
			return errors.InvalidArgument(errors.PhaseBoundary, "signature word index does not fit")
		}
		w, err := sig.sig.Word(part, i)
		if err != nil {
			return err
		}
		*out = w
		return nil
	})
}

// SigPartIndirect writes whether the given part travels through memory.
func (s *Session) SigPartIndirect(sig *Signature, part wai.SigPart, out *bool) bool {
	return s.capture("sig part indirect", func() error {
		if err := sig.live(); err != nil {
			return err
		}
		if out == nil {
			return errNilOut("sig part indirect")
		}
		ind, err := sig.sig.Indirect(part)
		if err != nil {
			return err
		}
		*out = ind
		return nil
	})
}
