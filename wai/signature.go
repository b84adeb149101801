package wai

import (
	"github.com/singlestore-labs/to-wit/abi"
	"github.com/singlestore-labs/to-wit/errors"
)

// SigPart selects one of the three word sequences of a signature.
type SigPart uint8

const (
	SigParams SigPart = iota
	SigResults
	SigRetPtr
)

func (p SigPart) String() string {
	switch p {
	case SigParams:
		return "params"
	case SigResults:
		return "results"
	case SigRetPtr:
		return "retptr"
	}
	return "unknown"
}

// WordKind is one flat machine word of a signature.
type WordKind uint8

const (
	WordI32 WordKind = iota
	WordI64
	WordF32
	WordF64
)

func (w WordKind) String() string {
	switch w {
	case WordI32:
		return "i32"
	case WordI64:
		return "i64"
	case WordF32:
		return "f32"
	case WordF64:
		return "f64"
	}
	return "unknown"
}

// Signature is the flat calling-convention view of one function, owned by
// its Function and immutable.
type Signature struct {
	sig abi.Signature
}

func newSignature(sig abi.Signature) *Signature {
	return &Signature{sig: sig}
}

func (s *Signature) part(p SigPart) ([]abi.CoreValType, error) {
	switch p {
	case SigParams:
		return s.sig.Params, nil
	case SigResults:
		return s.sig.Results, nil
	case SigRetPtr:
		return s.sig.RetPtr, nil
	default:
		return nil, errors.InvalidArgument(errors.PhaseQuery, "invalid signature part")
	}
}

// Length returns the number of words in the given part.
func (s *Signature) Length(p SigPart) (int, error) {
	words, err := s.part(p)
	if err != nil {
		return 0, err
	}
	return len(words), nil
}

// Word returns the i-th word kind of the given part.
func (s *Signature) Word(p SigPart, i int) (WordKind, error) {
	words, err := s.part(p)
	if err != nil {
		return 0, err
	}
	if i < 0 || i >= len(words) {
		return 0, errors.OutOfBounds(errors.PhaseQuery, "signature word index out of range")
	}
	switch words[i] {
	case abi.CoreI32:
		return WordI32, nil
	case abi.CoreI64:
		return WordI64, nil
	case abi.CoreF32:
		return WordF32, nil
	case abi.CoreF64:
		return WordF64, nil
	default:
		return 0, errors.Internal(errors.PhaseQuery, "unexpected core value type", nil)
	}
}

// Indirect reports whether the given part travels through memory instead
// of flat words: parameters spilled behind a pointer, or results written
// behind a return pointer. The retptr part is indirect by definition
// whenever it is present.
func (s *Signature) Indirect(p SigPart) (bool, error) {
	switch p {
	case SigParams:
		return s.sig.IndirectParams, nil
	case SigResults, SigRetPtr:
		return s.sig.IndirectResults, nil
	default:
		return false, errors.InvalidArgument(errors.PhaseQuery, "invalid signature part")
	}
}
